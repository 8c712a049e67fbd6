// Package sensor describes the two sensor families that sit behind the OV534
// bridge and everything that differs between them.
package sensor

import (
	"fmt"

	"github.com/kevmo314/go-ov534/pkg/formats"
	"github.com/kevmo314/go-ov534/pkg/programs"
)

// Tag selects a sensor family.
type Tag int

const (
	// A is the OV767x family: JPEG output over isochronous transfers.
	A Tag = iota
	// B is the OV772x family: uncompressed output over bulk transfers.
	B
)

func (t Tag) String() string {
	switch t {
	case A:
		return "OV767x"
	case B:
		return "OV772x"
	}
	return fmt.Sprintf("Tag(%d)", int(t))
}

const (
	// BusAddress is the sensor's SCCB address.
	BusAddress uint8 = 0x42

	RegReset  uint8 = 0x12
	RegIDHigh uint8 = 0x0a
	RegIDLow  uint8 = 0x0b

	ResetValue uint8 = 0x80

	idMask   = 0xfff0
	idOV767x = 0x7670
)

// Identify maps a probed 16-bit sensor identifier to its family.
func Identify(id uint16) Tag {
	if id&idMask == idOV767x {
		return A
	}
	return B
}

type TransportKind int

const (
	Isochronous TransportKind = iota
	Bulk
)

func (k TransportKind) String() string {
	if k == Bulk {
		return "bulk"
	}
	return "isochronous"
}

// Transport describes how payload arrives from the bridge.
type Transport struct {
	Kind TransportKind
	// QuantumSize is the maximum size of one header-prefixed payload.
	QuantumSize int
	// BulkSize and Depth size the bulk transfer ring.
	BulkSize int
	Depth    int
	Endpoint uint8
}

// Mode is one supported resolution.
type Mode struct {
	Width, Height int
	Format        formats.Format
	BytesPerLine  int
	SizeImage     int
	// Rates is nil when the family has no selectable frame rate.
	Rates RateTable

	BridgeStart programs.Program
	SensorStart programs.Program
}

// FrameSize is the exact frame length for fixed-size formats, else zero.
func (m Mode) FrameSize() int {
	return m.Width * m.Height * m.Format.BytesPerPixel()
}

func (m Mode) String() string {
	return fmt.Sprintf("%dx%d %s", m.Width, m.Height, m.Format)
}

// Variant is the configuration selected once at bring-up. It is never
// modified afterwards.
type Variant struct {
	Tag       Tag
	Name      string
	Modes     []Mode
	Transport Transport
	Controls  []ControlSpec

	BridgeInit programs.Program
	SensorInit programs.Program
}

// Has reports whether the family exposes the control.
func (v *Variant) Has(id ControlID) bool {
	_, ok := v.Control(id)
	return ok
}

// Control returns the range and default of id.
func (v *Variant) Control(id ControlID) (ControlSpec, bool) {
	for _, c := range v.Controls {
		if c.ID == id {
			return c, true
		}
	}
	return ControlSpec{}, false
}

// Mode returns the mode at index i.
func (v *Variant) Mode(i int) (Mode, error) {
	if i < 0 || i >= len(v.Modes) {
		return Mode{}, fmt.Errorf("%s: mode %d out of range [0,%d)", v.Name, i, len(v.Modes))
	}
	return v.Modes[i], nil
}

type Options struct {
	// RawBayer switches the OV772x output to 8-bit GRBG Bayer.
	RawBayer bool
}

// Lookup returns the variant for tag.
func Lookup(tag Tag, opts Options) *Variant {
	if tag == A {
		return ov767x()
	}
	if opts.RawBayer {
		return ov772xBayer()
	}
	return ov772x()
}

func jpegSize(w, h int) int {
	return w*h*3/8 + 590
}

func ov767x() *Variant {
	return &Variant{
		Tag:  A,
		Name: "OV767x",
		Modes: []Mode{
			{Width: 320, Height: 240, Format: formats.FormatJPEG, BytesPerLine: 320, SizeImage: jpegSize(320, 240),
				BridgeStart: programs.BridgeStartQVGA767x, SensorStart: programs.SensorStartQVGA767x},
			{Width: 640, Height: 480, Format: formats.FormatJPEG, BytesPerLine: 640, SizeImage: jpegSize(640, 480),
				BridgeStart: programs.BridgeStartVGA767x, SensorStart: programs.SensorStartVGA767x},
		},
		Transport:  Transport{Kind: Isochronous, QuantumSize: 2040, Endpoint: 0x81},
		Controls:   controls767x,
		BridgeInit: programs.BridgeInit767x,
		SensorInit: programs.SensorInit767x,
	}
}

var bulkTransport = Transport{Kind: Bulk, QuantumSize: 2048, BulkSize: 16384, Depth: 2, Endpoint: 0x81}

func ov772x() *Variant {
	return &Variant{
		Tag:  B,
		Name: "OV772x",
		Modes: []Mode{
			{Width: 320, Height: 240, Format: formats.FormatYUYV, BytesPerLine: 320 * 2, SizeImage: 320 * 240 * 2,
				Rates: RatesQVGA, BridgeStart: programs.BridgeStartQVGA772x, SensorStart: programs.SensorStartQVGA772x},
			{Width: 640, Height: 480, Format: formats.FormatYUYV, BytesPerLine: 640 * 2, SizeImage: 640 * 480 * 2,
				Rates: RatesVGA, BridgeStart: programs.BridgeStartVGA772x, SensorStart: programs.SensorStartVGA772x},
		},
		Transport:  bulkTransport,
		Controls:   controls772x,
		BridgeInit: programs.BridgeInit772x,
		SensorInit: programs.SensorInit772x,
	}
}

func ov772xBayer() *Variant {
	return &Variant{
		Tag:  B,
		Name: "OV772x (raw)",
		Modes: []Mode{
			{Width: 320, Height: 240, Format: formats.FormatSGRBG8, BytesPerLine: 320, SizeImage: 320 * 240,
				Rates: RatesQVGA, BridgeStart: programs.BridgeStartQVGA772xBayer, SensorStart: programs.SensorStartQVGA772xBayer},
			{Width: 640, Height: 480, Format: formats.FormatSGRBG8, BytesPerLine: 640, SizeImage: 640 * 480,
				Rates: RatesVGA, BridgeStart: programs.BridgeStartVGA772xBayer, SensorStart: programs.SensorStartVGA772xBayer},
		},
		Transport:  bulkTransport,
		Controls:   controls772x,
		BridgeInit: programs.BridgeInit772xBayer,
		SensorInit: programs.SensorInit772xBayer,
	}
}
