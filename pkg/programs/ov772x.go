package programs

// Register programs for the OV772x sensor family (variant B) in YUYV output.

var BridgeInit772x = Program{
	{0xc2, 0x0c},
	{0x88, 0xf8},
	{0xc3, 0x69},
	{0x89, 0xff},
	{0x76, 0x03},
	{0x92, 0x01},
	{0x93, 0x18},
	{0x94, 0x10},
	{0x95, 0x10},
	{0xe2, 0x00},
	{0xe7, 0x3e},
	{0x96, 0x00},
	{0x97, 0x20},
	{0x97, 0x20},
	{0x97, 0x20},
	{0x97, 0x0a},
	{0x97, 0x3f},
	{0x97, 0x4a},
	{0x97, 0x20},
	{0x97, 0x15},
	{0x97, 0x0b},
	{0x8e, 0x40},
	{0x1f, 0x81},
	{0x34, 0x05},
	{0xe3, 0x04},
	{0x88, 0x00},
	{0x89, 0x00},
	{0x76, 0x00},
	{0xe7, 0x2e},
	{0x31, 0xf9},
	{0x25, 0x42},
	{0x21, 0xf0},
	{0x1c, 0x00}, // video format block
	{0x1d, 0x40},
	{0x1d, 0x02}, // payload size in words: 0x0200 * 4 = 2048
	{0x1d, 0x00},
	{0x1d, 0x02}, // frame size in words: 0x025800 * 4 = 614400
	{0x1d, 0x58},
	{0x1d, 0x00},
	{0x1c, 0x0a}, // video control block
	{0x1d, 0x08}, // payload headers on
	{0x1d, 0x0e},
	{0x8d, 0x1c},
	{0x8e, 0x80},
	{0xe5, 0x04},
	{0xc0, 0x50},
	{0xc1, 0x3c},
	{0xc2, 0x0c},
}

var SensorInit772x = Program{
	{0x12, 0x80},
	{0x11, 0x01},
	{0x11, 0x01},
	{0x11, 0x01},
	{0x11, 0x01},
	{0x11, 0x01},
	{0x11, 0x01},
	{0x11, 0x01},
	{0x11, 0x01},
	{0x11, 0x01},
	{0x11, 0x01},
	{0x11, 0x01},
	{0x3d, 0x03},
	{0x17, 0x26},
	{0x18, 0xa0},
	{0x19, 0x07},
	{0x1a, 0xf0},
	{0x32, 0x00},
	{0x29, 0xa0},
	{0x2c, 0xf0},
	{0x65, 0x20},
	{0x11, 0x01},
	{0x42, 0x7f},
	{0x63, 0xaa},
	{0x64, 0xff},
	{0x66, 0x00},
	{0x13, 0xf0},
	{0x0d, 0x41},
	{0x0f, 0xc5},
	{0x14, 0x11},
	{0x22, 0x7f},
	{0x23, 0x03},
	{0x24, 0x40},
	{0x25, 0x30},
	{0x26, 0xa1},
	{0x2a, 0x00},
	{0x2b, 0x00},
	{0x6b, 0xaa},
	{0x13, 0xff},
	{0x90, 0x05},
	{0x91, 0x01},
	{0x92, 0x03},
	{0x93, 0x00},
	{0x94, 0x60},
	{0x95, 0x3c},
	{0x96, 0x24},
	{0x97, 0x1e},
	{0x98, 0x62},
	{0x99, 0x80},
	{0x9a, 0x1e},
	{0x9b, 0x08},
	{0x9c, 0x20},
	{0x9e, 0x81},
	{0xa6, 0x07},
	{0x7e, 0x0c},
	{0x7f, 0x16},
	{0x80, 0x2a},
	{0x81, 0x4e},
	{0x82, 0x61},
	{0x83, 0x6f},
	{0x84, 0x7b},
	{0x85, 0x86},
	{0x86, 0x8e},
	{0x87, 0x97},
	{0x88, 0xa4},
	{0x89, 0xaf},
	{0x8a, 0xc5},
	{0x8b, 0xd7},
	{0x8c, 0xe8},
	{0x8d, 0x20},
	{0x0c, 0x90},
	{0x2b, 0x00},
	{0x22, 0x7f},
	{0x23, 0x03},
	{0x11, 0x01},
	{0x0c, 0xd0},
	{0x64, 0xff},
	{0x0d, 0x41},
	{0x14, 0x41},
	{0x0e, 0xcd},
	{0xac, 0xbf},
	{0x8e, 0x00},
	{0x0c, 0xd0},
}

var BridgeStartVGA772x = Program{
	{0x1c, 0x00},
	{0x1d, 0x40},
	{0x1d, 0x02},
	{0x1d, 0x00},
	{0x1d, 0x02},
	{0x1d, 0x58},
	{0x1d, 0x00},
	{0xc0, 0x50},
	{0xc1, 0x3c},
}

var SensorStartVGA772x = Program{
	{0x12, 0x00},
	{0x17, 0x26},
	{0x18, 0xa0},
	{0x19, 0x07},
	{0x1a, 0xf0},
	{0x29, 0xa0},
	{0x2c, 0xf0},
	{0x65, 0x20},
}

var BridgeStartQVGA772x = Program{
	{0x1c, 0x00},
	{0x1d, 0x40},
	{0x1d, 0x02},
	{0x1d, 0x00},
	{0x1d, 0x00},
	{0x1d, 0x96},
	{0x1d, 0x00},
	{0xc0, 0x28},
	{0xc1, 0x1e},
}

var SensorStartQVGA772x = Program{
	{0x12, 0x40},
	{0x17, 0x3f},
	{0x18, 0x50},
	{0x19, 0x03},
	{0x1a, 0x78},
	{0x29, 0x50},
	{0x2c, 0x78},
	{0x65, 0x2f},
}
