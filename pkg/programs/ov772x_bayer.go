package programs

// Register programs for the OV772x sensor family (variant B) in raw 8-bit
// GRBG Bayer output.

var BridgeInit772xBayer = Program{
	{0xe7, 0x3a},
	{0xf1, 0x42},
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
	{0xc0, 0x50},
	{0xc1, 0x3c},
	{0xc2, 0x01},
	{0xc3, 0x01},
	{0x50, 0x89},
	{0x88, 0x08},
	{0x8d, 0x00},
	{0x8e, 0x00},
	{0x1c, 0x00},
	{0x1d, 0x00},
	{0x1d, 0x02},
	{0x1d, 0x00},
	{0x1d, 0x01},
	{0x1d, 0x2c},
	{0x1d, 0x00},
	{0x1c, 0x0a},
	{0x1d, 0x08},
	{0x1d, 0x0e},
	{0x34, 0x05},
	{0xe3, 0x04},
	{0x89, 0x00},
	{0x76, 0x00},
	{0xe7, 0x2e},
	{0x31, 0xf9},
	{0x25, 0x42},
	{0x21, 0xf0},
	{0xe5, 0x04},
}

var SensorInit772xBayer = Program{
	{0x12, 0x80},
	{0x3d, 0x00},
	{0x12, 0x01},
	{0x11, 0x01},
	{0x14, 0x40},
	{0x15, 0x00},
	{0x63, 0xaa},
	{0x64, 0x87},
	{0x66, 0x00},
	{0x67, 0x02},
	{0x17, 0x26},
	{0x18, 0xa0},
	{0x19, 0x07},
	{0x1a, 0xf0},
	{0x29, 0xa0},
	{0x2a, 0x00},
	{0x2c, 0xf0},
	{0x20, 0x10},
	{0x4e, 0x0f},
	{0x3e, 0xf3},
	{0x0d, 0x41},
	{0x32, 0x00},
	{0x13, 0xf0},
	{0x22, 0x7f},
	{0x23, 0x03},
	{0x24, 0x40},
	{0x25, 0x30},
	{0x26, 0xa1},
	{0x2a, 0x00},
	{0x2b, 0x00},
	{0x13, 0xf7},
	{0x0c, 0xc0},
	{0x11, 0x00},
	{0x0d, 0x41},
	{0x8e, 0x00},
}

var BridgeStartVGA772xBayer = Program{
	{0x1c, 0x00},
	{0x1d, 0x00},
	{0x1d, 0x02},
	{0x1d, 0x00},
	{0x1d, 0x01},
	{0x1d, 0x2c},
	{0x1d, 0x00},
	{0xc0, 0x50},
	{0xc1, 0x3c},
}

var SensorStartVGA772xBayer = Program{
	{0x12, 0x01},
	{0x17, 0x26},
	{0x18, 0xa0},
	{0x19, 0x07},
	{0x1a, 0xf0},
	{0x29, 0xa0},
	{0x2c, 0xf0},
	{0x65, 0x20},
}

var BridgeStartQVGA772xBayer = Program{
	{0x1c, 0x00},
	{0x1d, 0x00},
	{0x1d, 0x02},
	{0x1d, 0x00},
	{0x1d, 0x00},
	{0x1d, 0x4b},
	{0x1d, 0x00},
	{0xc0, 0x28},
	{0xc1, 0x1e},
}

var SensorStartQVGA772xBayer = Program{
	{0x12, 0x41},
	{0x17, 0x3f},
	{0x18, 0x50},
	{0x19, 0x03},
	{0x1a, 0x78},
	{0x29, 0x50},
	{0x2c, 0x78},
	{0x65, 0x2f},
}
