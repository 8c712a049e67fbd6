package controls

// gammaTable holds the 16 gamma curve points written to sensor registers
// 0x7e-0x8d for each gamma control value.
var gammaTable = [256][16]uint8{
	{0, 0, 0, 0, 0, 0, 1, 1, 2, 2, 5, 9, 26, 58, 113, 190},
	{0, 0, 0, 0, 0, 0, 1, 1, 2, 3, 6, 11, 29, 63, 118, 184},
	{0, 0, 0, 0, 0, 1, 1, 2, 3, 4, 8, 13, 33, 68, 123, 177},
	{0, 0, 0, 0, 0, 1, 1, 2, 3, 5, 9, 16, 37, 72, 128, 170},
	{0, 0, 0, 0, 1, 1, 2, 3, 4, 6, 11, 18, 40, 77, 132, 165},
	{0, 0, 0, 0, 1, 1, 2, 4, 5, 7, 12, 20, 44, 81, 136, 160},
	{0, 0, 0, 1, 1, 2, 3, 4, 6, 8, 14, 22, 47, 85, 140, 154},
	{0, 0, 0, 1, 1, 2, 3, 5, 7, 10, 16, 25, 51, 89, 143, 150},
	{0, 0, 0, 1, 2, 3, 4, 6, 8, 11, 18, 27, 54, 93, 147, 145},
	{0, 0, 0, 1, 2, 3, 5, 7, 9, 12, 20, 30, 57, 97, 150, 141},
	{0, 0, 0, 1, 2, 4, 6, 8, 11, 14, 22, 32, 60, 100, 153, 137},
	{0, 0, 0, 2, 3, 4, 6, 9, 12, 15, 24, 35, 64, 104, 155, 134},
	{0, 0, 0, 2, 3, 5, 7, 10, 13, 17, 26, 37, 67, 107, 158, 130},
	{0, 0, 0, 2, 4, 6, 8, 11, 15, 18, 28, 40, 70, 110, 161, 126},
	{0, 0, 1, 3, 4, 7, 9, 12, 16, 20, 30, 42, 73, 113, 163, 124},
	{0, 0, 1, 3, 5, 7, 10, 14, 17, 22, 32, 44, 76, 116, 165, 121},
	{0, 0, 1, 4, 6, 8, 11, 15, 19, 23, 34, 47, 79, 119, 168, 117},
	{0, 0, 1, 4, 6, 9, 12, 16, 20, 25, 36, 49, 81, 121, 170, 114},
	{0, 0, 1, 5, 7, 10, 13, 17, 22, 27, 38, 52, 84, 124, 172, 112},
	{0, 0, 1, 5, 8, 11, 15, 19, 23, 29, 40, 54, 87, 127, 174, 109},
	{0, 0, 2, 6, 8, 12, 16, 20, 25, 30, 42, 56, 89, 129, 175, 108},
	{0, 1, 2, 6, 9, 13, 17, 21, 27, 32, 44, 58, 92, 131, 177, 105},
	{0, 1, 2, 7, 10, 14, 18, 23, 28, 34, 46, 61, 94, 134, 179, 102},
	{0, 1, 2, 7, 11, 15, 19, 24, 30, 36, 48, 63, 97, 136, 180, 101},
	{0, 1, 3, 8, 12, 16, 21, 26, 31, 37, 50, 65, 99, 138, 182, 98},
	{0, 1, 3, 9, 13, 17, 22, 27, 33, 39, 52, 67, 101, 140, 183, 97},
	{0, 1, 3, 10, 14, 18, 23, 29, 35, 41, 54, 69, 103, 142, 185, 94},
	{0, 1, 4, 10, 15, 19, 24, 30, 36, 43, 56, 72, 105, 144, 186, 93},
	{0, 1, 4, 11, 16, 20, 26, 32, 38, 44, 58, 74, 108, 146, 187, 92},
	{1, 2, 4, 12, 16, 22, 27, 33, 39, 46, 60, 76, 110, 147, 189, 89},
	{1, 2, 5, 13, 17, 23, 28, 35, 41, 48, 62, 78, 112, 149, 190, 88},
	{1, 2, 5, 13, 18, 24, 30, 36, 43, 49, 64, 79, 113, 151, 191, 86},
	{1, 2, 5, 14, 20, 25, 31, 37, 44, 51, 66, 81, 115, 152, 192, 85},
	{1, 2, 6, 15, 21, 26, 32, 39, 46, 53, 68, 83, 117, 154, 193, 84},
	{1, 3, 6, 16, 22, 28, 34, 40, 47, 54, 69, 85, 119, 156, 194, 82},
	{1, 3, 7, 17, 23, 29, 35, 42, 49, 56, 71, 87, 121, 157, 195, 81},
	{1, 3, 7, 18, 24, 30, 36, 43, 50, 58, 73, 89, 122, 158, 196, 80},
	{1, 3, 8, 19, 25, 31, 38, 45, 52, 59, 75, 90, 124, 160, 197, 78},
	{1, 4, 8, 20, 26, 32, 39, 46, 53, 61, 76, 92, 126, 161, 198, 77},
	{2, 4, 9, 21, 27, 34, 40, 48, 55, 62, 78, 94, 127, 163, 199, 76},
	{2, 4, 9, 21, 28, 35, 42, 49, 56, 64, 80, 96, 129, 164, 200, 74},
	{2, 4, 10, 22, 29, 36, 43, 50, 58, 66, 81, 97, 130, 165, 201, 73},
	{2, 5, 10, 23, 30, 37, 44, 52, 59, 67, 83, 99, 132, 166, 202, 72},
	{2, 5, 11, 24, 31, 38, 46, 53, 61, 69, 84, 100, 133, 168, 202, 72},
	{2, 5, 12, 25, 32, 40, 47, 55, 62, 70, 86, 102, 135, 169, 203, 70},
	{3, 6, 12, 26, 33, 41, 48, 56, 64, 72, 87, 103, 136, 170, 204, 69},
	{3, 6, 13, 27, 35, 42, 50, 57, 65, 73, 89, 105, 138, 171, 205, 68},
	{3, 6, 13, 28, 36, 43, 51, 59, 67, 74, 90, 106, 139, 172, 205, 68},
	{3, 7, 14, 29, 37, 44, 52, 60, 68, 76, 92, 108, 140, 173, 206, 66},
	{4, 7, 15, 30, 38, 46, 53, 61, 69, 77, 93, 109, 142, 174, 207, 65},
	{4, 8, 15, 31, 39, 47, 55, 63, 71, 79, 95, 111, 143, 175, 207, 65},
	{4, 8, 16, 32, 40, 48, 56, 64, 72, 80, 96, 112, 144, 176, 208, 64},
	{4, 8, 17, 33, 41, 49, 57, 65, 73, 81, 97, 113, 145, 177, 209, 62},
	{5, 9, 17, 34, 42, 50, 58, 67, 75, 83, 99, 115, 146, 178, 209, 62},
	{5, 9, 18, 35, 43, 52, 60, 68, 76, 84, 100, 116, 148, 179, 210, 61},
	{5, 10, 19, 36, 44, 53, 61, 69, 77, 85, 101, 117, 149, 180, 210, 61},
	{5, 10, 19, 37, 45, 54, 62, 70, 79, 87, 103, 118, 150, 181, 211, 60},
	{6, 11, 20, 38, 46, 55, 63, 72, 80, 88, 104, 120, 151, 181, 211, 60},
	{6, 11, 21, 39, 48, 56, 65, 73, 81, 89, 105, 121, 152, 182, 212, 58},
	{6, 12, 21, 40, 49, 57, 66, 74, 82, 90, 106, 122, 153, 183, 213, 57},
	{7, 12, 22, 41, 50, 58, 67, 75, 83, 92, 108, 123, 154, 184, 213, 57},
	{7, 12, 23, 42, 51, 59, 68, 76, 85, 93, 109, 124, 155, 185, 214, 56},
	{7, 13, 24, 43, 52, 61, 69, 78, 86, 94, 110, 126, 156, 185, 214, 56},
	{7, 13, 24, 44, 53, 62, 70, 79, 87, 95, 111, 127, 157, 186, 214, 56},
	{8, 14, 25, 45, 54, 63, 71, 80, 88, 96, 112, 128, 158, 187, 215, 54},
	{8, 14, 26, 46, 55, 64, 73, 81, 89, 98, 113, 129, 159, 188, 215, 54},
	{8, 15, 26, 47, 56, 65, 74, 82, 90, 99, 115, 130, 160, 188, 216, 53},
	{9, 15, 27, 48, 57, 66, 75, 83, 92, 100, 116, 131, 161, 189, 216, 53},
	{9, 16, 28, 48, 58, 67, 76, 84, 93, 101, 117, 132, 161, 190, 217, 52},
	{10, 17, 29, 49, 59, 68, 77, 85, 94, 102, 118, 133, 162, 190, 217, 52},
	{10, 17, 29, 50, 60, 69, 78, 87, 95, 103, 119, 134, 163, 191, 217, 52},
	{10, 18, 30, 51, 61, 70, 79, 88, 96, 104, 120, 135, 164, 191, 218, 50},
	{11, 18, 31, 52, 62, 71, 80, 89, 97, 105, 121, 136, 165, 192, 218, 50},
	{11, 19, 31, 53, 63, 72, 81, 90, 98, 106, 122, 137, 166, 193, 219, 49},
	{11, 19, 32, 54, 64, 73, 82, 91, 99, 107, 123, 138, 166, 193, 219, 49},
	{12, 20, 33, 55, 65, 74, 83, 92, 100, 108, 124, 139, 167, 194, 219, 49},
	{12, 20, 34, 56, 66, 75, 84, 93, 101, 109, 125, 140, 168, 194, 220, 48},
	{13, 21, 34, 57, 67, 76, 85, 94, 102, 110, 126, 141, 169, 195, 220, 48},
	{13, 21, 35, 58, 68, 77, 86, 95, 103, 111, 127, 142, 169, 196, 220, 48},
	{13, 22, 36, 59, 69, 78, 87, 96, 104, 112, 128, 142, 170, 196, 221, 46},
	{14, 23, 37, 60, 70, 79, 88, 97, 105, 113, 129, 143, 171, 197, 221, 46},
	{14, 23, 37, 60, 71, 80, 89, 98, 106, 114, 129, 144, 172, 197, 221, 46},
	{15, 24, 38, 61, 71, 81, 90, 99, 107, 115, 130, 145, 172, 198, 222, 45},
	{15, 24, 39, 62, 72, 82, 91, 100, 108, 116, 131, 146, 173, 198, 222, 45},
	{16, 25, 40, 63, 73, 83, 92, 101, 109, 117, 132, 147, 174, 199, 222, 45},
	{16, 25, 40, 64, 74, 84, 93, 101, 110, 118, 133, 147, 174, 199, 223, 44},
	{16, 26, 41, 65, 75, 85, 94, 102, 111, 119, 134, 148, 175, 200, 223, 44},
	{17, 27, 42, 66, 76, 86, 95, 103, 112, 119, 135, 149, 175, 200, 223, 44},
	{17, 27, 42, 66, 77, 86, 96, 104, 112, 120, 135, 150, 176, 201, 223, 44},
	{18, 28, 43, 67, 78, 87, 96, 105, 113, 121, 136, 150, 177, 201, 224, 42},
	{18, 28, 44, 68, 79, 88, 97, 106, 114, 122, 137, 151, 177, 201, 224, 42},
	{19, 29, 45, 69, 79, 89, 98, 107, 115, 123, 138, 152, 178, 202, 224, 42},
	{19, 29, 45, 70, 80, 90, 99, 108, 116, 124, 139, 153, 179, 202, 225, 41},
	{20, 30, 46, 71, 81, 91, 100, 108, 117, 125, 139, 153, 179, 203, 225, 41},
	{20, 31, 47, 72, 82, 92, 101, 109, 118, 125, 140, 154, 180, 203, 225, 41},
	{20, 31, 47, 72, 83, 93, 102, 110, 118, 126, 141, 155, 180, 204, 225, 41},
	{21, 32, 48, 73, 84, 93, 102, 111, 119, 127, 142, 155, 181, 204, 226, 40},
	{21, 32, 49, 74, 84, 94, 103, 112, 120, 128, 142, 156, 181, 204, 226, 40},
	{22, 33, 50, 75, 85, 95, 104, 113, 121, 128, 143, 157, 182, 205, 226, 40},
	{22, 34, 50, 76, 86, 96, 105, 113, 122, 129, 144, 157, 182, 205, 226, 40},
	{23, 34, 51, 76, 87, 97, 106, 114, 122, 130, 145, 158, 183, 206, 227, 38},
	{23, 35, 52, 77, 88, 97, 106, 115, 123, 131, 145, 159, 183, 206, 227, 38},
	{24, 35, 52, 78, 88, 98, 107, 116, 124, 131, 146, 159, 184, 206, 227, 38},
	{24, 36, 53, 79, 89, 99, 108, 117, 125, 132, 147, 160, 184, 207, 227, 38},
	{25, 36, 54, 79, 90, 100, 109, 117, 125, 133, 147, 161, 185, 207, 227, 38},
	{25, 37, 54, 80, 91, 101, 110, 118, 126, 134, 148, 161, 185, 207, 228, 37},
	{26, 38, 55, 81, 92, 101, 110, 119, 127, 134, 149, 162, 186, 208, 228, 37},
	{26, 38, 56, 82, 92, 102, 111, 119, 127, 135, 149, 162, 186, 208, 228, 37},
	{27, 39, 57, 82, 93, 103, 112, 120, 128, 136, 150, 163, 187, 208, 228, 37},
	{27, 39, 57, 83, 94, 104, 113, 121, 129, 136, 151, 164, 187, 209, 228, 37},
	{28, 40, 58, 84, 95, 104, 113, 122, 130, 137, 151, 164, 188, 209, 229, 36},
	{28, 41, 59, 85, 95, 105, 114, 122, 130, 138, 152, 165, 188, 209, 229, 36},
	{29, 41, 59, 85, 96, 106, 115, 123, 131, 138, 152, 165, 189, 210, 229, 36},
	{29, 42, 60, 86, 97, 106, 115, 124, 132, 139, 153, 166, 189, 210, 229, 36},
	{30, 42, 61, 87, 97, 107, 116, 124, 132, 140, 154, 166, 190, 210, 229, 36},
	{30, 43, 61, 88, 98, 108, 117, 125, 133, 140, 154, 167, 190, 211, 230, 34},
	{30, 43, 62, 88, 99, 109, 117, 126, 134, 141, 155, 167, 190, 211, 230, 34},
	{31, 44, 63, 89, 100, 109, 118, 126, 134, 142, 155, 168, 191, 211, 230, 34},
	{31, 45, 63, 90, 100, 110, 119, 127, 135, 142, 156, 168, 191, 212, 230, 34},
	{32, 45, 64, 90, 101, 111, 119, 128, 135, 143, 156, 169, 192, 212, 230, 34},
	{32, 46, 65, 91, 102, 111, 120, 128, 136, 143, 157, 170, 192, 212, 230, 34},
	{33, 46, 65, 92, 102, 112, 121, 129, 137, 144, 158, 170, 192, 212, 231, 33},
	{33, 47, 66, 92, 103, 113, 121, 130, 137, 145, 158, 171, 193, 213, 231, 33},
	{34, 47, 66, 93, 104, 113, 122, 130, 138, 145, 159, 171, 193, 213, 231, 33},
	{34, 48, 67, 94, 104, 114, 123, 131, 139, 146, 159, 171, 194, 213, 231, 33},
	{35, 49, 68, 94, 105, 115, 123, 132, 139, 146, 160, 172, 194, 214, 231, 33},
	{35, 49, 68, 95, 106, 115, 124, 132, 140, 147, 160, 172, 194, 214, 231, 33},
	{36, 50, 69, 96, 106, 116, 125, 133, 140, 148, 161, 173, 195, 214, 232, 32},
	{36, 50, 70, 96, 107, 117, 125, 133, 141, 148, 161, 173, 195, 214, 232, 32},
	{37, 51, 70, 97, 108, 117, 126, 134, 141, 149, 162, 174, 195, 215, 232, 32},
	{37, 51, 71, 98, 108, 118, 126, 135, 142, 149, 162, 174, 196, 215, 232, 32},
	{38, 52, 71, 98, 109, 118, 127, 135, 143, 150, 163, 175, 196, 215, 232, 32},
	{38, 53, 72, 99, 109, 119, 128, 136, 143, 150, 163, 175, 196, 215, 232, 32},
	{39, 53, 73, 100, 110, 120, 128, 136, 144, 151, 164, 176, 197, 216, 233, 30},
	{39, 54, 73, 100, 111, 120, 129, 137, 144, 151, 164, 176, 197, 216, 233, 30},
	{40, 54, 74, 101, 111, 121, 129, 137, 145, 152, 165, 176, 197, 216, 233, 30},
	{40, 55, 74, 101, 112, 121, 130, 138, 145, 152, 165, 177, 198, 216, 233, 30},
	{41, 55, 75, 102, 113, 122, 131, 138, 146, 153, 166, 177, 198, 216, 233, 30},
	{41, 56, 76, 103, 113, 123, 131, 139, 146, 153, 166, 178, 198, 217, 233, 30},
	{42, 56, 76, 103, 114, 123, 132, 140, 147, 154, 167, 178, 199, 217, 233, 30},
	{42, 57, 77, 104, 114, 124, 132, 140, 147, 154, 167, 179, 199, 217, 233, 30},
	{43, 57, 77, 104, 115, 124, 133, 141, 148, 155, 167, 179, 199, 217, 234, 29},
	{43, 58, 78, 105, 115, 125, 133, 141, 148, 155, 168, 179, 200, 218, 234, 29},
	{44, 59, 79, 106, 116, 125, 134, 142, 149, 156, 168, 180, 200, 218, 234, 29},
	{44, 59, 79, 106, 117, 126, 134, 142, 149, 156, 169, 180, 200, 218, 234, 29},
	{45, 60, 80, 107, 117, 127, 135, 143, 150, 157, 169, 181, 201, 218, 234, 29},
	{45, 60, 80, 107, 118, 127, 135, 143, 150, 157, 170, 181, 201, 218, 234, 29},
	{46, 61, 81, 108, 118, 128, 136, 144, 151, 158, 170, 181, 201, 219, 234, 29},
	{46, 61, 81, 108, 119, 128, 137, 144, 151, 158, 170, 182, 201, 219, 234, 29},
	{46, 62, 82, 109, 119, 129, 137, 145, 152, 159, 171, 182, 202, 219, 235, 28},
	{47, 62, 83, 110, 120, 129, 138, 145, 152, 159, 171, 182, 202, 219, 235, 28},
	{47, 63, 83, 110, 120, 130, 138, 146, 153, 160, 172, 183, 202, 219, 235, 28},
	{48, 63, 84, 111, 121, 130, 139, 146, 153, 160, 172, 183, 203, 220, 235, 28},
	{48, 64, 84, 111, 122, 131, 139, 147, 154, 160, 173, 183, 203, 220, 235, 28},
	{49, 64, 85, 112, 122, 131, 140, 147, 154, 161, 173, 184, 203, 220, 235, 28},
	{49, 65, 85, 112, 123, 132, 140, 148, 155, 161, 173, 184, 203, 220, 235, 28},
	{50, 65, 86, 113, 123, 132, 141, 148, 155, 162, 174, 185, 204, 220, 235, 28},
	{50, 66, 86, 113, 124, 133, 141, 149, 156, 162, 174, 185, 204, 221, 235, 28},
	{51, 66, 87, 114, 124, 133, 141, 149, 156, 163, 174, 185, 204, 221, 236, 26},
	{51, 67, 87, 114, 125, 134, 142, 149, 156, 163, 175, 186, 204, 221, 236, 26},
	{52, 67, 88, 115, 125, 134, 142, 150, 157, 163, 175, 186, 205, 221, 236, 26},
	{52, 68, 89, 115, 126, 135, 143, 150, 157, 164, 176, 186, 205, 221, 236, 26},
	{53, 68, 89, 116, 126, 135, 143, 151, 158, 164, 176, 187, 205, 221, 236, 26},
	{53, 69, 90, 116, 127, 136, 144, 151, 158, 165, 176, 187, 205, 222, 236, 26},
	{54, 69, 90, 117, 127, 136, 144, 152, 159, 165, 177, 187, 206, 222, 236, 26},
	{54, 70, 91, 117, 128, 137, 145, 152, 159, 165, 177, 188, 206, 222, 236, 26},
	{54, 70, 91, 118, 128, 137, 145, 153, 159, 166, 177, 188, 206, 222, 236, 26},
	{55, 71, 92, 118, 129, 138, 146, 153, 160, 166, 178, 188, 206, 222, 237, 25},
	{55, 71, 92, 119, 129, 138, 146, 153, 160, 167, 178, 188, 207, 223, 237, 25},
	{56, 72, 93, 119, 130, 138, 147, 154, 161, 167, 178, 189, 207, 223, 237, 25},
	{56, 72, 93, 120, 130, 139, 147, 154, 161, 167, 179, 189, 207, 223, 237, 25},
	{57, 73, 94, 120, 130, 139, 147, 155, 161, 168, 179, 189, 207, 223, 237, 25},
	{57, 73, 94, 121, 131, 140, 148, 155, 162, 168, 179, 190, 208, 223, 237, 25},
	{58, 74, 95, 121, 131, 140, 148, 155, 162, 168, 180, 190, 208, 223, 237, 25},
	{58, 74, 95, 122, 132, 141, 149, 156, 163, 169, 180, 190, 208, 223, 237, 25},
	{59, 75, 96, 122, 132, 141, 149, 156, 163, 169, 180, 191, 208, 224, 237, 25},
	{59, 75, 96, 123, 133, 142, 149, 157, 163, 169, 181, 191, 208, 224, 237, 25},
	{59, 76, 97, 123, 133, 142, 150, 157, 164, 170, 181, 191, 209, 224, 237, 25},
	{60, 76, 97, 124, 134, 142, 150, 157, 164, 170, 181, 191, 209, 224, 238, 24},
	{60, 77, 98, 124, 134, 143, 151, 158, 164, 171, 182, 192, 209, 224, 238, 24},
	{61, 77, 98, 125, 135, 143, 151, 158, 165, 171, 182, 192, 209, 224, 238, 24},
	{61, 78, 99, 125, 135, 144, 152, 159, 165, 171, 182, 192, 210, 225, 238, 24},
	{62, 78, 99, 125, 135, 144, 152, 159, 166, 172, 183, 193, 210, 225, 238, 24},
	{62, 79, 99, 126, 136, 145, 152, 159, 166, 172, 183, 193, 210, 225, 238, 24},
	{63, 79, 100, 126, 136, 145, 153, 160, 166, 172, 183, 193, 210, 225, 238, 24},
	{63, 80, 100, 127, 137, 145, 153, 160, 167, 173, 184, 193, 210, 225, 238, 24},
	{63, 80, 101, 127, 137, 146, 153, 160, 167, 173, 184, 194, 211, 225, 238, 24},
	{64, 80, 101, 128, 138, 146, 154, 161, 167, 173, 184, 194, 211, 225, 238, 24},
	{64, 81, 102, 128, 138, 147, 154, 161, 168, 174, 184, 194, 211, 225, 238, 24},
	{65, 81, 102, 129, 138, 147, 155, 162, 168, 174, 185, 194, 211, 226, 238, 24},
	{65, 82, 103, 129, 139, 147, 155, 162, 168, 174, 185, 195, 211, 226, 238, 24},
	{66, 82, 103, 129, 139, 148, 155, 162, 169, 175, 185, 195, 212, 226, 239, 22},
	{66, 83, 104, 130, 140, 148, 156, 163, 169, 175, 186, 195, 212, 226, 239, 22},
	{66, 83, 104, 130, 140, 148, 156, 163, 169, 175, 186, 195, 212, 226, 239, 22},
	{67, 84, 104, 131, 140, 149, 156, 163, 170, 176, 186, 196, 212, 226, 239, 22},
	{67, 84, 105, 131, 141, 149, 157, 164, 170, 176, 186, 196, 212, 226, 239, 22},
	{68, 84, 105, 131, 141, 150, 157, 164, 170, 176, 187, 196, 212, 227, 239, 22},
	{68, 85, 106, 132, 142, 150, 158, 164, 171, 176, 187, 196, 213, 227, 239, 22},
	{69, 85, 106, 132, 142, 150, 158, 165, 171, 177, 187, 197, 213, 227, 239, 22},
	{69, 86, 107, 133, 142, 151, 158, 165, 171, 177, 187, 197, 213, 227, 239, 22},
	{69, 86, 107, 133, 143, 151, 159, 165, 172, 177, 188, 197, 213, 227, 239, 22},
	{70, 87, 108, 133, 143, 151, 159, 166, 172, 178, 188, 197, 213, 227, 239, 22},
	{70, 87, 108, 134, 143, 152, 159, 166, 172, 178, 188, 198, 214, 227, 239, 22},
	{71, 87, 108, 134, 144, 152, 160, 166, 172, 178, 189, 198, 214, 227, 239, 22},
	{71, 88, 109, 135, 144, 153, 160, 167, 173, 178, 189, 198, 214, 228, 240, 21},
	{71, 88, 109, 135, 145, 153, 160, 167, 173, 179, 189, 198, 214, 228, 240, 21},
	{72, 89, 110, 135, 145, 153, 161, 167, 173, 179, 189, 198, 214, 228, 240, 21},
	{72, 89, 110, 136, 145, 154, 161, 168, 174, 179, 190, 199, 214, 228, 240, 21},
	{73, 90, 110, 136, 146, 154, 161, 168, 174, 180, 190, 199, 215, 228, 240, 21},
	{73, 90, 111, 137, 146, 154, 162, 168, 174, 180, 190, 199, 215, 228, 240, 21},
	{73, 90, 111, 137, 146, 155, 162, 169, 175, 180, 190, 199, 215, 228, 240, 21},
	{74, 91, 112, 137, 147, 155, 162, 169, 175, 180, 191, 200, 215, 228, 240, 21},
	{74, 91, 112, 138, 147, 155, 163, 169, 175, 181, 191, 200, 215, 228, 240, 21},
	{75, 92, 112, 138, 147, 156, 163, 169, 175, 181, 191, 200, 215, 229, 240, 21},
	{75, 92, 113, 138, 148, 156, 163, 170, 176, 181, 191, 200, 216, 229, 240, 21},
	{75, 92, 113, 139, 148, 156, 164, 170, 176, 182, 192, 200, 216, 229, 240, 21},
	{76, 93, 114, 139, 149, 157, 164, 170, 176, 182, 192, 201, 216, 229, 240, 21},
	{76, 93, 114, 140, 149, 157, 164, 171, 177, 182, 192, 201, 216, 229, 240, 21},
	{77, 94, 114, 140, 149, 157, 164, 171, 177, 182, 192, 201, 216, 229, 240, 21},
	{77, 94, 115, 140, 150, 158, 165, 171, 177, 183, 192, 201, 216, 229, 240, 21},
	{77, 94, 115, 141, 150, 158, 165, 172, 177, 183, 193, 201, 216, 229, 241, 20},
	{78, 95, 116, 141, 150, 158, 165, 172, 178, 183, 193, 202, 217, 229, 241, 20},
	{78, 95, 116, 141, 151, 159, 166, 172, 178, 183, 193, 202, 217, 229, 241, 20},
	{79, 96, 116, 142, 151, 159, 166, 172, 178, 184, 193, 202, 217, 230, 241, 20},
	{79, 96, 117, 142, 151, 159, 166, 173, 178, 184, 194, 202, 217, 230, 241, 20},
	{79, 96, 117, 142, 152, 159, 167, 173, 179, 184, 194, 202, 217, 230, 241, 20},
	{80, 97, 118, 143, 152, 160, 167, 173, 179, 184, 194, 203, 217, 230, 241, 20},
	{80, 97, 118, 143, 152, 160, 167, 173, 179, 185, 194, 203, 217, 230, 241, 20},
	{80, 98, 118, 143, 152, 160, 167, 174, 180, 185, 194, 203, 218, 230, 241, 20},
	{81, 98, 119, 144, 153, 161, 168, 174, 180, 185, 195, 203, 218, 230, 241, 20},
	{81, 98, 119, 144, 153, 161, 168, 174, 180, 185, 195, 203, 218, 230, 241, 20},
	{82, 99, 119, 144, 153, 161, 168, 175, 180, 186, 195, 204, 218, 230, 241, 20},
	{82, 99, 120, 145, 154, 162, 169, 175, 181, 186, 195, 204, 218, 230, 241, 20},
	{82, 99, 120, 145, 154, 162, 169, 175, 181, 186, 195, 204, 218, 231, 241, 20},
	{83, 100, 120, 145, 154, 162, 169, 175, 181, 186, 196, 204, 218, 231, 241, 20},
	{83, 100, 121, 146, 155, 162, 169, 176, 181, 187, 196, 204, 219, 231, 241, 20},
	{83, 101, 121, 146, 155, 163, 170, 176, 182, 187, 196, 204, 219, 231, 241, 20},
	{84, 101, 122, 146, 155, 163, 170, 176, 182, 187, 196, 205, 219, 231, 241, 20},
	{84, 101, 122, 147, 156, 163, 170, 176, 182, 187, 197, 205, 219, 231, 242, 18},
	{85, 102, 122, 147, 156, 164, 170, 177, 182, 187, 197, 205, 219, 231, 242, 18},
	{85, 102, 123, 147, 156, 164, 171, 177, 182, 188, 197, 205, 219, 231, 242, 18},
	{85, 102, 123, 148, 156, 164, 171, 177, 183, 188, 197, 205, 219, 231, 242, 18},
	{86, 103, 123, 148, 157, 164, 171, 177, 183, 188, 197, 205, 219, 231, 242, 18},
	{86, 103, 124, 148, 157, 165, 172, 178, 183, 188, 198, 206, 220, 231, 242, 18},
	{86, 103, 124, 148, 157, 165, 172, 178, 183, 189, 198, 206, 220, 232, 242, 18},
	{87, 104, 124, 149, 158, 165, 172, 178, 184, 189, 198, 206, 220, 232, 242, 18},
	{87, 104, 125, 149, 158, 166, 172, 178, 184, 189, 198, 206, 220, 232, 242, 18},
	{87, 105, 125, 149, 158, 166, 173, 179, 184, 189, 198, 206, 220, 232, 242, 18},
	{88, 105, 125, 150, 159, 166, 173, 179, 184, 189, 198, 206, 220, 232, 242, 18},
	{88, 105, 126, 150, 159, 166, 173, 179, 185, 190, 199, 207, 220, 232, 242, 18},
	{89, 106, 126, 150, 159, 167, 173, 179, 185, 190, 199, 207, 220, 232, 242, 18},
	{89, 106, 126, 151, 159, 167, 174, 180, 185, 190, 199, 207, 221, 232, 242, 18},
	{89, 106, 127, 151, 160, 167, 174, 180, 185, 190, 199, 207, 221, 232, 242, 18},
	{90, 107, 127, 151, 160, 167, 174, 180, 185, 190, 199, 207, 221, 232, 242, 18},
	{90, 107, 127, 151, 160, 168, 174, 180, 186, 191, 200, 207, 221, 232, 242, 18},
	{90, 107, 128, 152, 160, 168, 175, 180, 186, 191, 200, 208, 221, 232, 242, 18},
}
