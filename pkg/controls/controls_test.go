package controls

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevmo314/go-ov534/internal/fakedev"
	"github.com/kevmo314/go-ov534/pkg/regbus"
	"github.com/kevmo314/go-ov534/pkg/sccb"
	"github.com/kevmo314/go-ov534/pkg/sensor"
)

func newMapper(t *testing.T, tag sensor.Tag) (*fakedev.Device, *Mapper) {
	t.Helper()
	id := uint16(0x7721)
	if tag == sensor.A {
		id = 0x7673
	}
	dev := fakedev.New(id)
	bus := sccb.New(regbus.New(dev, regbus.NewSession()))
	bus.Sleep = func(time.Duration) {}
	return dev, NewMapper(sensor.Lookup(tag, sensor.Options{}), bus)
}

// sensorOrder lists the distinct sensor registers written, in first-write order.
func sensorOrder(dev *fakedev.Device) []uint8 {
	seen := map[uint8]bool{}
	var order []uint8
	for _, op := range dev.SensorWrites {
		if !seen[op.Addr] {
			seen[op.Addr] = true
			order = append(order, op.Addr)
		}
	}
	return order
}

func TestRangeAndApplicability(t *testing.T) {
	_, m := newMapper(t, sensor.A)
	assert.ErrorIs(t, m.Set(sensor.Hue, 0), ErrInapplicable)
	assert.ErrorIs(t, m.Set(sensor.Gamma, 0), ErrInapplicable)
	assert.ErrorIs(t, m.Set(sensor.Gain, 0), ErrInapplicable)
	_, err := m.Get(sensor.Sharpness)
	assert.ErrorIs(t, err, ErrInapplicable)

	assert.ErrorIs(t, m.Set(sensor.Saturation, 7), ErrOutOfRange)
	assert.ErrorIs(t, m.Set(sensor.Exposure, 0x07), ErrOutOfRange)
	v, err := m.Get(sensor.Saturation)
	require.NoError(t, err)
	assert.Equal(t, int32(3), v, "rejected values are not stored")

	_, m = newMapper(t, sensor.B)
	assert.ErrorIs(t, m.Set(sensor.Hue, 91), ErrOutOfRange)
	assert.NoError(t, m.Set(sensor.Hue, -90))
	assert.Len(t, m.Controls(), 14)
}

func TestSetWhileStoppedStoresOnly(t *testing.T) {
	dev, m := newMapper(t, sensor.B)
	require.NoError(t, m.Set(sensor.Brightness, 200))
	require.NoError(t, m.Set(sensor.AutoGain, 0))
	assert.Empty(t, dev.Ops)

	v, err := m.Get(sensor.Brightness)
	require.NoError(t, err)
	assert.Equal(t, int32(200), v)

	m.SetStreaming(true)
	require.NoError(t, m.ApplyAll())
	assert.Equal(t, []uint8{200}, dev.SensorValues(regBright772x))
}

func TestClusterPushesOnce(t *testing.T) {
	dev, m := newMapper(t, sensor.B)
	m.SetStreaming(true)

	// auto: manual gain is stored, not written
	require.NoError(t, m.Set(sensor.Gain, 0x25))
	assert.Empty(t, dev.SensorValues(regGain))

	// switching to manual pushes the stored gain
	require.NoError(t, m.Set(sensor.AutoGain, 0))
	assert.Equal(t, []uint8{bandGain(0x25)}, dev.SensorValues(regGain))

	// staying manual does not push again
	require.NoError(t, m.Set(sensor.AutoGain, 0))
	assert.Len(t, dev.SensorValues(regGain), 1)

	require.NoError(t, m.Set(sensor.Gain, 0x10))
	assert.Equal(t, []uint8{bandGain(0x25), bandGain(0x10)}, dev.SensorValues(regGain))

	cl, ok := m.Cluster(sensor.Gain)
	require.True(t, ok)
	assert.Equal(t, Manual, cl.State())
	v, err := m.Get(sensor.Gain)
	require.NoError(t, err)
	assert.Equal(t, int32(0x10), v)
}

func TestExposureCluster(t *testing.T) {
	dev, m := newMapper(t, sensor.A)
	m.SetStreaming(true)

	require.NoError(t, m.Set(sensor.Exposure, 0x40))
	assert.Empty(t, dev.SensorValues(regExposure))

	require.NoError(t, m.Set(sensor.AutoExposure, sensor.ExposureManual))
	assert.Equal(t, []uint8{0x40}, dev.SensorValues(regExposure))
	assert.Zero(t, dev.Sensor[regCom8]&0x05)

	require.NoError(t, m.Set(sensor.AutoExposure, sensor.ExposureAuto))
	assert.Equal(t, uint8(0x05), dev.Sensor[regCom8]&0x05)
}

func TestHue(t *testing.T) {
	tests := []struct {
		deg      int32
		cos, sin uint8
		negative bool
	}{
		{0, 0x80, 0, false},
		// sin 30 is 0x3fff in 16 bit fixed point, one short of half scale,
		// while sin -30 rounds down to -0x4000.
		{30, 110, 63, false},
		{-30, 110, 64, true},
		{90, 0, 0x80, false},
	}
	for _, tt := range tests {
		dev, m := newMapper(t, sensor.B)
		m.SetStreaming(true)
		if tt.deg == 90 {
			dev.Sensor[regHueSign] = 0x02
		}
		require.NoError(t, m.Set(sensor.Hue, tt.deg))
		assert.Equalf(t, tt.sin, dev.Sensor[regHueSin], "sin %d", tt.deg)
		assert.Equalf(t, tt.cos, dev.Sensor[regHueCos], "cos %d", tt.deg)
		assert.Equalf(t, tt.negative, dev.Sensor[regHueSign]&0x02 != 0, "sign %d", tt.deg)
	}
}

func TestFixedSin16(t *testing.T) {
	// fixp_sin16 values of the kernel's degree table
	for deg, want := range map[int32]int32{
		0:   0,
		30:  0x3fff,
		45:  0x5a82,
		60:  0x6ed9,
		90:  0x7fff,
		180: 0,
		-30: -0x4000,
		-90: -0x8000,
	} {
		assert.Equalf(t, want, fixedSin16(deg), "sin %d", deg)
	}
	assert.Equal(t, int32(0x6ed9), fixedCos16(30))
}

func TestGainBanding(t *testing.T) {
	tests := []struct {
		gain int32
		reg  uint8
	}{
		{0x05, 0x05},
		{0x15, 0x35},
		{0x2a, 0x7a},
		{0x3f, 0xff},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.reg, bandGain(tt.gain), "band %#x", tt.gain)
		assert.Equalf(t, tt.gain, unbandGain(tt.reg), "unband %#x", tt.reg)
	}
}

func TestVolatileReadBack(t *testing.T) {
	dev, m := newMapper(t, sensor.B)

	// not streaming: the stored value
	v, err := m.Get(sensor.Gain)
	require.NoError(t, err)
	assert.Equal(t, int32(20), v)

	m.SetStreaming(true)
	dev.Sensor[regGain] = 0x7a
	v, err = m.Get(sensor.Gain)
	require.NoError(t, err)
	assert.Equal(t, int32(0x2a), v)

	dev.Sensor[regExposureHi] = 0x02
	dev.Sensor[regExposure] = 0x20
	v, err = m.Get(sensor.Exposure)
	require.NoError(t, err)
	assert.Equal(t, int32(0xff), v, "clamped to range")

	dev.Sensor[regExposureHi] = 0x00
	v, err = m.Get(sensor.Exposure)
	require.NoError(t, err)
	assert.Equal(t, int32(0x10), v)

	// manual: the last value read back is kept and pushed
	require.NoError(t, m.Set(sensor.AutoGain, 0))
	assert.Equal(t, []uint8{0x7a}, dev.SensorValues(regGain))
	dev.ClearLog()
	v, err = m.Get(sensor.Gain)
	require.NoError(t, err)
	assert.Equal(t, int32(0x2a), v)
	assert.Empty(t, dev.Ops)
}

func TestExposureSplit(t *testing.T) {
	dev, m := newMapper(t, sensor.B)
	m.SetStreaming(true)
	require.NoError(t, m.Set(sensor.AutoExposure, sensor.ExposureManual))
	require.NoError(t, m.Set(sensor.Exposure, 0xc8))
	assert.Equal(t, uint8(0x01), dev.Sensor[regExposureHi])
	assert.Equal(t, uint8(0x90), dev.Sensor[regExposure])
}

func TestFlip(t *testing.T) {
	dev, m := newMapper(t, sensor.A)
	m.SetStreaming(true)
	dev.Sensor[regFlip767x] = 0x3f
	require.NoError(t, m.Set(sensor.HFlip, 1))
	require.NoError(t, m.Set(sensor.VFlip, 0))
	assert.Equal(t, uint8(0x2f), dev.Sensor[regFlip767x])

	dev, m = newMapper(t, sensor.B)
	m.SetStreaming(true)
	dev.Sensor[regFlip772x] = 0x01
	require.NoError(t, m.Set(sensor.HFlip, 1))
	assert.Equal(t, uint8(0x81), dev.Sensor[regFlip772x])
	require.NoError(t, m.Set(sensor.VFlip, 1))
	assert.Equal(t, uint8(0x01), dev.Sensor[regFlip772x])
}

func TestLightFrequency(t *testing.T) {
	dev, m := newMapper(t, sensor.A)
	m.SetStreaming(true)
	require.NoError(t, m.Set(sensor.PowerLineFrequency, sensor.PowerLine50Hz))
	assert.Equal(t, []uint8{0x00}, dev.SensorValues(regDummyLo))
	assert.Equal(t, []uint8{0x9d}, dev.SensorValues(regDummyHi))

	dev, m = newMapper(t, sensor.B)
	m.SetStreaming(true)
	require.NoError(t, m.Set(sensor.PowerLineFrequency, sensor.PowerLine50Hz))
	require.NoError(t, m.Set(sensor.PowerLineFrequency, sensor.PowerLineDisabled))
	assert.Empty(t, dev.SensorValues(regDummyLo))
	assert.Equal(t, []uint8{0x9e, 0x00}, dev.SensorValues(regDummyHi))
}

func TestGamma(t *testing.T) {
	dev, m := newMapper(t, sensor.B)
	m.SetStreaming(true)
	require.NoError(t, m.Set(sensor.Gamma, 200))
	require.Len(t, dev.SensorWrites, 16)
	for i, op := range dev.SensorWrites {
		assert.Equal(t, regGamma+uint8(i), op.Addr)
		assert.Equal(t, gammaTable[200][i], op.Value)
	}
}

func TestSaturation767x(t *testing.T) {
	dev, m := newMapper(t, sensor.A)
	m.SetStreaming(true)
	require.NoError(t, m.Set(sensor.Saturation, 6))
	for i, want := range colorMatrix767x[6] {
		assert.Equal(t, want, dev.Sensor[regColor767x+uint8(i)])
	}

	require.NoError(t, m.Set(sensor.Brightness, -10))
	assert.Equal(t, uint8(0x8a), dev.Sensor[regBright767x])
}

func TestApplyAllOrder(t *testing.T) {
	dev, m := newMapper(t, sensor.B)
	m.SetStreaming(true)
	require.NoError(t, m.ApplyAll())

	gamma := make([]uint8, 16)
	for i := range gamma {
		gamma[i] = regGamma + uint8(i)
	}
	want := append([]uint8{
		regHueSign, regHueCos, regHueSin,
		regSatU, regSatV,
		regCom8, regAGCCtrl,
		regAWBCtrl,
		regGain,
		regExposureHi, regExposure,
		regBright772x,
		regContr772x,
		regAutoDenois, regDenoise,
		regFlip772x,
		regDummyHi,
	}, gamma...)
	assert.Equal(t, want, sensorOrder(dev))
}

func TestApplyAll767x(t *testing.T) {
	dev, m := newMapper(t, sensor.A)
	m.SetStreaming(true)
	require.NoError(t, m.ApplyAll())

	want := []uint8{
		regColor767x, regColor767x + 1, regColor767x + 2, regColor767x + 3, regColor767x + 4, regColor767x + 5,
		regCom8,
		regExposure,
		regBright767x,
		regContr767x,
		regFlip767x,
		regDummyLo, regDummyHi,
	}
	assert.Equal(t, want, sensorOrder(dev))
	assert.Equal(t, uint8(0x20), dev.Sensor[regFlip767x]&0x30, "hflip defaults on")
}

func TestFailureSurfaces(t *testing.T) {
	dev, m := newMapper(t, sensor.B)
	m.SetStreaming(true)
	dev.Fail = fakedev.FailAfter(0)
	err := m.Set(sensor.Contrast, 10)
	assert.ErrorIs(t, err, regbus.ErrTransport)
}
