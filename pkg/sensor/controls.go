package sensor

// ControlID names a logical camera control.
type ControlID int

const (
	Hue ControlID = iota
	Saturation
	Brightness
	Contrast
	AutoGain
	Gain
	AutoWhiteBalance
	AutoExposure
	Exposure
	Sharpness
	HFlip
	VFlip
	PowerLineFrequency
	Gamma
)

var controlNames = [...]string{
	Hue:                "hue",
	Saturation:         "saturation",
	Brightness:         "brightness",
	Contrast:           "contrast",
	AutoGain:           "autogain",
	Gain:               "gain",
	AutoWhiteBalance:   "awb",
	AutoExposure:       "autoexposure",
	Exposure:           "exposure",
	Sharpness:          "sharpness",
	HFlip:              "hflip",
	VFlip:              "vflip",
	PowerLineFrequency: "plfreq",
	Gamma:              "gamma",
}

func (id ControlID) String() string {
	if id >= 0 && int(id) < len(controlNames) {
		return controlNames[id]
	}
	return "unknown"
}

// ParseControl is the inverse of ControlID.String.
func ParseControl(name string) (ControlID, bool) {
	for i, n := range controlNames {
		if n == name {
			return ControlID(i), true
		}
	}
	return 0, false
}

// AutoExposure menu entries.
const (
	ExposureAuto   = 0
	ExposureManual = 1
)

// PowerLineFrequency menu entries.
const (
	PowerLineDisabled = 0
	PowerLine50Hz     = 1
)

// ControlSpec is the range and default of a control on one sensor family.
type ControlSpec struct {
	ID      ControlID
	Min     int32
	Max     int32
	Default int32
}

func (c ControlSpec) Contains(v int32) bool {
	return v >= c.Min && v <= c.Max
}

var controls767x = []ControlSpec{
	{Saturation, 0, 6, 3},
	{Brightness, -127, 127, 0},
	{Contrast, 0, 0x80, 0x40},
	{AutoExposure, ExposureAuto, ExposureManual, ExposureAuto},
	{Exposure, 0x08, 0x60, 0x13},
	{AutoWhiteBalance, 0, 1, 1},
	{HFlip, 0, 1, 1},
	{VFlip, 0, 1, 0},
	{PowerLineFrequency, PowerLineDisabled, PowerLine50Hz, PowerLineDisabled},
}

var controls772x = []ControlSpec{
	{Hue, -90, 90, 0},
	{Saturation, 0, 255, 64},
	{Brightness, 0, 255, 0},
	{Contrast, 0, 255, 32},
	{AutoGain, 0, 1, 1},
	{Gain, 0, 63, 20},
	{AutoExposure, ExposureAuto, ExposureManual, ExposureAuto},
	{Exposure, 0, 255, 120},
	{AutoWhiteBalance, 0, 1, 1},
	{Sharpness, 0, 63, 0},
	{HFlip, 0, 1, 0},
	{VFlip, 0, 1, 0},
	{PowerLineFrequency, PowerLineDisabled, PowerLine50Hz, PowerLineDisabled},
	{Gamma, 0, 255, 128},
}
