package sensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevmo314/go-ov534/pkg/formats"
)

func TestIdentify(t *testing.T) {
	tests := []struct {
		id   uint16
		want Tag
	}{
		{0x7670, A},
		{0x7673, A},
		{0x767f, A},
		{0x7721, B},
		{0x7725, B},
		{0x7680, B},
		{0x0000, B},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, Identify(tt.id), "id 0x%04x", tt.id)
	}
}

func TestCapabilities(t *testing.T) {
	a := Lookup(A, Options{})
	b := Lookup(B, Options{})

	for _, id := range []ControlID{Hue, AutoGain, Gain, Sharpness, Gamma} {
		assert.Falsef(t, a.Has(id), "%s on %s", id, a.Name)
		assert.Truef(t, b.Has(id), "%s on %s", id, b.Name)
	}
	for _, id := range []ControlID{Saturation, Brightness, Contrast, AutoWhiteBalance, AutoExposure, Exposure, HFlip, VFlip, PowerLineFrequency} {
		assert.Truef(t, a.Has(id), "%s on %s", id, a.Name)
		assert.Truef(t, b.Has(id), "%s on %s", id, b.Name)
	}

	hflip, ok := a.Control(HFlip)
	require.True(t, ok)
	assert.Equal(t, int32(1), hflip.Default)
	hflip, _ = b.Control(HFlip)
	assert.Equal(t, int32(0), hflip.Default)

	exp, _ := a.Control(Exposure)
	assert.Equal(t, ControlSpec{Exposure, 8, 96, 19}, exp)
}

func TestModes(t *testing.T) {
	a := Lookup(A, Options{})
	assert.Equal(t, Isochronous, a.Transport.Kind)
	assert.Equal(t, 2040, a.Transport.QuantumSize)
	m, err := a.Mode(1)
	require.NoError(t, err)
	assert.Equal(t, formats.FormatJPEG, m.Format)
	assert.Equal(t, 640*480*3/8+590, m.SizeImage)
	assert.Zero(t, m.FrameSize())
	assert.Nil(t, m.Rates)

	b := Lookup(B, Options{})
	assert.Equal(t, Transport{Kind: Bulk, QuantumSize: 2048, BulkSize: 16384, Depth: 2, Endpoint: 0x81}, b.Transport)
	m, err = b.Mode(0)
	require.NoError(t, err)
	assert.Equal(t, 153600, m.FrameSize())
	assert.Equal(t, "320x240 YUYV", m.String())

	raw := Lookup(B, Options{RawBayer: true})
	m, _ = raw.Mode(1)
	assert.Equal(t, formats.FormatSGRBG8, m.Format)
	assert.Equal(t, 640*480, m.FrameSize())

	_, err = b.Mode(2)
	assert.Error(t, err)
	_, err = b.Mode(-1)
	assert.Error(t, err)
}

func TestNearestRate(t *testing.T) {
	r, ok := RatesVGA.Nearest(1, 30)
	require.True(t, ok)
	assert.Equal(t, Rate{1, 30, 0x04, 0x81, 0x02}, r)

	r, _ = RatesVGA.Nearest(10, 9)
	assert.Equal(t, uint8(0x31), r.R11)

	// 33 fps is closest to 30
	r, _ = RatesVGA.Nearest(1, 33)
	assert.Equal(t, uint32(30), r.Den)

	// 2/1 is half a frame per second
	r, _ = RatesVGA.Nearest(2, 1)
	assert.Equal(t, Rate{10, 5, 0x31, 0x01, 0x02}, r)

	r, _ = RatesQVGA.Nearest(1, 1000)
	assert.Equal(t, uint32(187), r.Den)

	r, _ = RatesQVGA.Nearest(0, 0)
	assert.Equal(t, uint32(30), r.Den)

	_, ok = RateTable(nil).Nearest(1, 30)
	assert.False(t, ok)
}

func TestParseControl(t *testing.T) {
	for id := Hue; id <= Gamma; id++ {
		got, ok := ParseControl(id.String())
		require.True(t, ok)
		assert.Equal(t, id, got)
	}
	_, ok := ParseControl("zoom")
	assert.False(t, ok)
}
