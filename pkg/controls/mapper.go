package controls

import (
	"fmt"

	"github.com/kevmo314/go-ov534/internal/logging"
	"github.com/kevmo314/go-ov534/pkg/sccb"
	"github.com/kevmo314/go-ov534/pkg/sensor"
)

var logger = logging.NewLogger("ov534/controls")

// applyOrder is the order controls are pushed at stream start.
var applyOrder = []sensor.ControlID{
	sensor.Hue,
	sensor.Saturation,
	sensor.AutoGain,
	sensor.AutoWhiteBalance,
	sensor.AutoExposure,
	sensor.Gain,
	sensor.Exposure,
	sensor.Brightness,
	sensor.Contrast,
	sensor.Sharpness,
	sensor.HFlip, // VFlip is written together with HFlip
	sensor.PowerLineFrequency,
	sensor.Gamma,
}

// Mapper holds the current control values for one device and writes them to
// the sensor. It is not safe for concurrent use.
type Mapper struct {
	variant *sensor.Variant
	bus     *sccb.Bus

	controls  map[sensor.ControlID]*Control
	clusters  map[sensor.ControlID]*Cluster
	streaming bool
}

func NewMapper(v *sensor.Variant, bus *sccb.Bus) *Mapper {
	m := &Mapper{
		variant:  v,
		bus:      bus,
		controls: make(map[sensor.ControlID]*Control, len(v.Controls)),
		clusters: make(map[sensor.ControlID]*Cluster),
	}
	for _, spec := range v.Controls {
		m.controls[spec.ID] = &Control{ControlSpec: spec, Value: spec.Default}
	}
	m.cluster(sensor.AutoGain, sensor.Gain, 0)
	m.cluster(sensor.AutoExposure, sensor.Exposure, sensor.ExposureManual)
	return m
}

func (m *Mapper) cluster(auto, manual sensor.ControlID, manualSetting int32) {
	a, ok := m.controls[auto]
	if !ok {
		return
	}
	if _, ok := m.controls[manual]; !ok {
		return
	}
	c := NewCluster(auto, manual, manualSetting, a.Value)
	m.clusters[auto] = c
	m.clusters[manual] = c
}

// SetStreaming selects whether Set writes to hardware.
func (m *Mapper) SetStreaming(on bool) {
	m.streaming = on
}

func (m *Mapper) lookup(id sensor.ControlID) (*Control, error) {
	c, ok := m.controls[id]
	if !ok {
		return nil, fmt.Errorf("%s on %s: %w", id, m.variant.Name, ErrInapplicable)
	}
	return c, nil
}

func (m *Mapper) value(id sensor.ControlID) int32 {
	if c, ok := m.controls[id]; ok {
		return c.Value
	}
	return 0
}

// Set stores v and, while streaming, writes its effect to the sensor.
func (m *Mapper) Set(id sensor.ControlID, v int32) error {
	c, err := m.lookup(id)
	if err != nil {
		return err
	}
	if !c.Contains(v) {
		return fmt.Errorf("%s=%d not in [%d, %d]: %w", id, v, c.Min, c.Max, ErrOutOfRange)
	}
	c.Value = v

	push := false
	if cl, ok := m.clusters[id]; ok {
		if id == cl.AutoID {
			push = cl.SetAuto(v)
		} else {
			push = cl.SetManual()
		}
	}
	if !m.streaming {
		return nil
	}

	switch id {
	case sensor.AutoGain:
		m.setAGC(v)
		if push {
			m.setGain(m.value(sensor.Gain))
		}
	case sensor.AutoExposure:
		m.setAEC(v)
		if push {
			m.setExposure(m.value(sensor.Exposure))
		}
	case sensor.Gain, sensor.Exposure:
		if push {
			m.apply(id, v)
		}
	default:
		m.apply(id, v)
	}
	return m.err()
}

// Get returns the current value of id. Gain and exposure under automatic
// control are read back from the sensor while streaming.
func (m *Mapper) Get(id sensor.ControlID) (int32, error) {
	c, err := m.lookup(id)
	if err != nil {
		return 0, err
	}
	cl, ok := m.clusters[id]
	if !ok || id != cl.ManualID || cl.State() != Auto || !m.streaming {
		return c.Value, nil
	}
	var v int32
	if id == sensor.Gain {
		v, err = m.getGain()
	} else {
		v, err = m.getExposure()
	}
	if err != nil {
		return c.Value, err
	}
	c.Value = min(max(v, c.Min), c.Max)
	return c.Value, nil
}

// Controls returns a snapshot of every control the sensor supports.
func (m *Mapper) Controls() []Control {
	out := make([]Control, 0, len(m.variant.Controls))
	for _, spec := range m.variant.Controls {
		out = append(out, *m.controls[spec.ID])
	}
	return out
}

// Cluster returns the auto cluster id belongs to, if any.
func (m *Mapper) Cluster(id sensor.ControlID) (*Cluster, bool) {
	c, ok := m.clusters[id]
	return c, ok
}

// ApplyAll writes every current value in stream-start order.
func (m *Mapper) ApplyAll() error {
	for _, id := range applyOrder {
		if c, ok := m.controls[id]; ok {
			m.apply(id, c.Value)
		}
	}
	return m.err()
}

func (m *Mapper) apply(id sensor.ControlID, v int32) {
	logger.Debugf("%s = %d", id, v)
	switch id {
	case sensor.Hue:
		m.setHue(v)
	case sensor.Saturation:
		m.setSaturation(v)
	case sensor.Brightness:
		m.setBrightness(v)
	case sensor.Contrast:
		m.setContrast(v)
	case sensor.AutoGain:
		m.setAGC(v)
	case sensor.Gain:
		m.setGain(v)
	case sensor.AutoWhiteBalance:
		m.setAWB(v)
	case sensor.AutoExposure:
		m.setAEC(v)
	case sensor.Exposure:
		m.setExposure(v)
	case sensor.Sharpness:
		m.setSharpness(v)
	case sensor.HFlip:
		m.setFlip(v, m.value(sensor.VFlip))
	case sensor.VFlip:
		m.setFlip(m.value(sensor.HFlip), v)
	case sensor.PowerLineFrequency:
		m.setLightFreq(v)
	case sensor.Gamma:
		m.setGamma(v)
	}
}

func (m *Mapper) err() error {
	return m.bus.Registers().Session().Err()
}
