package formats

import "github.com/google/uuid"

// Format is the pixel format carried in frame payloads.
type Format int

const (
	FormatJPEG Format = iota
	FormatYUYV
	FormatSGRBG8
)

// Media subtype GUIDs, FourCC in the first field.
var (
	GUIDMJPG = uuid.MustParse("47504A4D-0000-0010-8000-00AA00389B71")
	GUIDYUY2 = uuid.MustParse("32595559-0000-0010-8000-00AA00389B71")
	GUIDGRBG = uuid.MustParse("47425247-0000-0010-8000-00AA00389B71")
)

func (f Format) String() string {
	switch f {
	case FormatJPEG:
		return "JPEG"
	case FormatYUYV:
		return "YUYV"
	case FormatSGRBG8:
		return "SGRBG8"
	}
	return "unknown"
}

// Fixed reports whether every frame of the format has the same size.
func (f Format) Fixed() bool {
	return f != FormatJPEG
}

// BytesPerPixel is zero for compressed formats.
func (f Format) BytesPerPixel() int {
	switch f {
	case FormatYUYV:
		return 2
	case FormatSGRBG8:
		return 1
	}
	return 0
}

func (f Format) GUID() uuid.UUID {
	switch f {
	case FormatJPEG:
		return GUIDMJPG
	case FormatYUYV:
		return GUIDYUY2
	case FormatSGRBG8:
		return GUIDGRBG
	}
	return uuid.Nil
}

// FourCC returns the four character code of the format.
func (f Format) FourCC() string {
	g := f.GUID()
	return string([]byte{g[3], g[2], g[1], g[0]})
}
