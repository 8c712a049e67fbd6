package controls

import (
	"math"
	"math/bits"

	"github.com/kevmo314/go-ov534/pkg/sensor"
)

// Sensor registers touched by controls.
const (
	regGain       uint8 = 0x00
	regExposureHi uint8 = 0x08
	regFlip772x   uint8 = 0x0c
	regExposure   uint8 = 0x10
	regCom8       uint8 = 0x13
	regFlip767x   uint8 = 0x1e
	regDummyLo    uint8 = 0x2a
	regDummyHi    uint8 = 0x2b
	regColor767x  uint8 = 0x4f
	regBright767x uint8 = 0x55
	regContr767x  uint8 = 0x56
	regAWBCtrl    uint8 = 0x63
	regAGCCtrl    uint8 = 0x64
	regGamma      uint8 = 0x7e
	regDenoise    uint8 = 0x8e
	regAutoDenois uint8 = 0x91
	regBright772x uint8 = 0x9b
	regContr772x  uint8 = 0x9c
	regSatU       uint8 = 0xa7
	regSatV       uint8 = 0xa8
	regHueCos     uint8 = 0xa9
	regHueSin     uint8 = 0xaa
	regHueSign    uint8 = 0xab
)

// colorMatrix767x is indexed by the saturation value.
var colorMatrix767x = [7][6]uint8{
	{0x42, 0x42, 0x00, 0x11, 0x30, 0x41},
	{0x52, 0x52, 0x00, 0x16, 0x3c, 0x52},
	{0x66, 0x66, 0x00, 0x1b, 0x4b, 0x66},
	{0x80, 0x80, 0x00, 0x22, 0x5e, 0x80},
	{0x9a, 0x9a, 0x00, 0x29, 0x71, 0x9a},
	{0xb8, 0xb8, 0x00, 0x31, 0x87, 0xb8},
	{0xdd, 0xdd, 0x00, 0x3b, 0xa2, 0xdd},
}

func (m *Mapper) is767x() bool {
	return m.variant.Tag == sensor.A
}

// fixedSin16 is sin(deg) in signed 16 bit fixed point, full scale 0x7fff.
func fixedSin16(deg int32) int32 {
	return int32(math.Round(math.Sin(float64(deg)*math.Pi/180)*math.MaxInt32)) >> 16
}

func fixedCos16(deg int32) int32 {
	return fixedSin16(deg + 90)
}

// hueTerms scales the hue angle's sine and cosine to the register range.
func hueTerms(deg int32) (sin, cos int32) {
	return fixedSin16(deg) * 0x80 / 0x7fff, fixedCos16(deg) * 0x80 / 0x7fff
}

func (m *Mapper) setHue(v int32) {
	sin, cos := hueTerms(v)
	if sin < 0 {
		m.bus.Update(regHueSign, 0, 0x02)
		sin = -sin
	} else {
		m.bus.Update(regHueSign, 0x02, 0)
	}
	m.bus.Write(regHueCos, uint8(cos))
	m.bus.Write(regHueSin, uint8(sin))
}

func (m *Mapper) setSaturation(v int32) {
	if m.is767x() {
		for i, c := range colorMatrix767x[v] {
			m.bus.Write(regColor767x+uint8(i), c)
		}
		return
	}
	m.bus.Write(regSatU, uint8(v))
	m.bus.Write(regSatV, uint8(v))
}

func (m *Mapper) setBrightness(v int32) {
	if m.is767x() {
		if v < 0 {
			v = 0x80 - v
		}
		m.bus.Write(regBright767x, uint8(v))
		return
	}
	m.bus.Write(regBright772x, uint8(v))
}

func (m *Mapper) setContrast(v int32) {
	if m.is767x() {
		m.bus.Write(regContr767x, uint8(v))
		return
	}
	m.bus.Write(regContr772x, uint8(v))
}

// gainBands maps the top two bits of a 6 bit gain to the register's high
// nibble.
var gainBands = [4]uint8{0x00, 0x30, 0x70, 0xf0}

func bandGain(v int32) uint8 {
	return uint8(v)&0x0f | gainBands[(v>>4)&0x03]
}

func unbandGain(reg uint8) int32 {
	band := max(bits.OnesCount8(reg>>4)-1, 0)
	return int32(band)<<4 | int32(reg&0x0f)
}

func (m *Mapper) setGain(v int32) {
	m.bus.Write(regGain, bandGain(v))
}

func (m *Mapper) getGain() (int32, error) {
	reg, err := m.bus.Read(regGain)
	return unbandGain(reg), err
}

func (m *Mapper) setExposure(v int32) {
	if m.is767x() {
		m.bus.Write(regExposure, uint8(v))
		return
	}
	m.bus.Write(regExposureHi, uint8(v>>7))
	m.bus.Write(regExposure, uint8(v<<1))
}

func (m *Mapper) getExposure() (int32, error) {
	if m.is767x() {
		v, err := m.bus.Read(regExposure)
		return int32(v), err
	}
	hi, err := m.bus.Read(regExposureHi)
	if err != nil {
		return 0, err
	}
	lo, err := m.bus.Read(regExposure)
	return (int32(hi)<<8 | int32(lo)) >> 1, err
}

// update sets or clears mask in reg.
func (m *Mapper) update(reg, mask uint8, on bool) {
	if on {
		m.bus.Update(reg, 0, mask)
	} else {
		m.bus.Update(reg, mask, 0)
	}
}

func (m *Mapper) setAGC(v int32) {
	m.update(regCom8, 0x04, v != 0)
	m.update(regAGCCtrl, 0x03, v != 0)
}

func (m *Mapper) setAWB(v int32) {
	m.update(regCom8, 0x02, v != 0)
	if !m.is767x() {
		m.update(regAWBCtrl, 0xc0, v != 0)
	}
}

func (m *Mapper) setAEC(v int32) {
	mask := uint8(0x01)
	if m.is767x() {
		mask = 0x05
	}
	m.update(regCom8, mask, v == sensor.ExposureAuto)
}

func (m *Mapper) setSharpness(v int32) {
	m.bus.Write(regAutoDenois, uint8(v))
	m.bus.Write(regDenoise, uint8(v))
}

func (m *Mapper) setFlip(hflip, vflip int32) {
	if m.is767x() {
		var set uint8
		if hflip != 0 {
			set |= 0x20
		}
		if vflip != 0 {
			set |= 0x10
		}
		m.bus.Update(regFlip767x, 0x30, set)
		return
	}
	// the OV772x bits are mirror-disable
	var set uint8
	if hflip == 0 {
		set |= 0x40
	}
	if vflip == 0 {
		set |= 0x80
	}
	m.bus.Update(regFlip772x, 0xc0, set)
}

func (m *Mapper) setLightFreq(v int32) {
	var dummy uint8
	if v != 0 {
		dummy = 0x9e
	}
	if m.is767x() {
		m.bus.Write(regDummyLo, 0x00)
		if dummy != 0 {
			dummy = 0x9d
		}
	}
	m.bus.Write(regDummyHi, dummy)
}

func (m *Mapper) setGamma(v int32) {
	for i, g := range gammaTable[v] {
		m.bus.Write(regGamma+uint8(i), g)
	}
}
