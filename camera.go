// Package ov534 drives USB cameras built on the OmniVision OV534 bridge with an
// OV767x or OV772x sensor, such as the PlayStation Eye.
package ov534

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/kevmo314/go-ov534/internal/logging"
	"github.com/kevmo314/go-ov534/pkg/bringup"
	"github.com/kevmo314/go-ov534/pkg/controls"
	"github.com/kevmo314/go-ov534/pkg/programs"
	"github.com/kevmo314/go-ov534/pkg/regbus"
	"github.com/kevmo314/go-ov534/pkg/sccb"
	"github.com/kevmo314/go-ov534/pkg/sensor"
	"github.com/kevmo314/go-ov534/pkg/transfers"
)

var logger = logging.NewLogger("ov534")

var (
	ErrStreaming    = errors.New("camera is streaming")
	ErrNotStreaming = errors.New("camera is not streaming")
	ErrClosed       = errors.New("camera closed")
)

// Sensor registers written outside of programs and controls.
const (
	regSensorFlip  uint8 = 0x1e
	regSensorClock uint8 = 0x11
	regSensorPLL   uint8 = 0x0d

	flipStartValue uint8 = 0x04
)

const DefaultFrameDepth = 4

type Options struct {
	Sensor sensor.Options
	// FrameDepth is the number of completed frames buffered for Frames.
	FrameDepth int
	// Sleep implements bus delays. Defaults to time.Sleep.
	Sleep func(time.Duration)
}

// Camera is a brought-up device. Bus operations are serialized; HandlePayload
// never touches the bus and may run concurrently with them.
type Camera struct {
	mu sync.Mutex

	regs     *regbus.Bus
	sccb     *sccb.Bus
	sensorID uint16
	variant  *sensor.Variant
	mapper   *controls.Mapper

	opts    Options
	mode    int
	rate    sensor.Rate
	closed  bool
	closers []func() error
	frames  *transfers.FrameCollector

	newReader readerFunc

	streaming atomic.Bool
	assembler atomic.Pointer[transfers.Assembler]
}

// New brings up the bridge reachable through tx. The returned camera is
// stopped with the largest mode selected.
func New(tx regbus.Transport, opts Options) (*Camera, error) {
	if opts.FrameDepth <= 0 {
		opts.FrameDepth = DefaultFrameDepth
	}
	if opts.Sleep == nil {
		opts.Sleep = time.Sleep
	}
	regs := regbus.New(tx, regbus.NewSession())
	bus := sccb.New(regs)
	bus.Sleep = opts.Sleep

	m := bringup.New(bus, opts.Sensor)
	m.Sleep = opts.Sleep
	res, err := m.Run()
	if err != nil {
		return nil, err
	}

	c := &Camera{
		regs:     regs,
		sccb:     bus,
		sensorID: res.SensorID,
		variant:  res.Variant,
		mapper:   controls.NewMapper(res.Variant, bus),
		frames:   transfers.NewFrameCollector(opts.FrameDepth),
		rate:     sensor.DefaultRate,
		opts:     opts,
	}
	if err := c.configure(len(c.variant.Modes) - 1); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Camera) SensorID() uint16 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sensorID
}

func (c *Camera) Variant() *sensor.Variant {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.variant
}

func (c *Camera) Session() *regbus.Session {
	return c.regs.Session()
}

// Mode returns the selected mode and its index.
func (c *Camera) Mode() (sensor.Mode, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.variant.Modes[c.mode], c.mode
}

// Frames delivers completed frames. The channel is closed by Close.
func (c *Camera) Frames() <-chan *transfers.Frame {
	return c.frames.Frames()
}

func (c *Camera) Collector() *transfers.FrameCollector {
	return c.frames
}

// Stats returns the counters since the last Start or Configure.
func (c *Camera) Stats() *transfers.Stats {
	return &c.assembler.Load().Stats
}

func (c *Camera) Streaming() bool {
	return c.streaming.Load()
}

// Configure selects the mode used by the next Start.
func (c *Camera) Configure(modeIndex int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	if c.streaming.Load() {
		return ErrStreaming
	}
	return c.configure(modeIndex)
}

func (c *Camera) configure(modeIndex int) error {
	mode, err := c.variant.Mode(modeIndex)
	if err != nil {
		return err
	}
	c.mode = modeIndex
	if r, ok := mode.Rates.Nearest(c.rate.Num, c.rate.Den); ok {
		c.rate = r
	} else {
		c.rate = sensor.DefaultRate
	}
	c.assembler.Store(transfers.NewAssembler(c.frames, mode.FrameSize()))
	logger.Debugf("mode %d: %s at %d/%d", modeIndex, mode, c.rate.Num, c.rate.Den)
	return nil
}

// Start programs the selected mode and enables the stream.
func (c *Camera) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	if c.streaming.Load() {
		return ErrStreaming
	}
	if err := c.regs.Session().Err(); err != nil {
		return fmt.Errorf("start: %w", err)
	}
	mode := c.variant.Modes[c.mode]
	// The receive path may still be scanning into the previous assembler.
	c.assembler.Store(transfers.NewAssembler(c.frames, mode.FrameSize()))

	if c.variant.Tag == sensor.A {
		c.sccb.Write(regSensorFlip, flipStartValue)
	}
	programs.ApplyBridge(c.regs, mode.BridgeStart)
	programs.ApplySensor(c.sccb, mode.SensorStart)
	c.applyRate()

	c.mapper.SetStreaming(true)
	c.mapper.ApplyAll()
	c.regs.SetLED(true)
	c.regs.Write(regbus.RegStreamControl, regbus.StreamRun)

	if err := c.regs.Session().Err(); err != nil {
		c.mapper.SetStreaming(false)
		return fmt.Errorf("start: %w", err)
	}
	c.streaming.Store(true)
	logger.Infof("streaming %s at %d/%d", mode, c.rate.Num, c.rate.Den)
	return nil
}

// Reinit reruns bring-up on a stopped camera, clearing a latched session
// error. Control values survive when the sensor family is unchanged.
func (c *Camera) Reinit() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	if c.streaming.Load() {
		return ErrStreaming
	}
	m := bringup.New(c.sccb, c.opts.Sensor)
	m.Sleep = c.opts.Sleep
	res, err := m.Run()
	if err != nil {
		return err
	}
	c.sensorID = res.SensorID
	mode := c.mode
	if res.Variant.Tag != c.variant.Tag {
		c.variant = res.Variant
		c.mapper = controls.NewMapper(res.Variant, c.sccb)
		mode = len(c.variant.Modes) - 1
	}
	return c.configure(mode)
}

// applyRate writes the selected rate. The OV767x runs at a fixed rate.
func (c *Camera) applyRate() {
	if c.variant.Modes[c.mode].Rates == nil {
		return
	}
	c.sccb.Write(regSensorClock, c.rate.R11)
	c.sccb.Write(regSensorPLL, c.rate.R0D)
	c.regs.Write(regbus.RegFrameRate, c.rate.RE5)
}

// Stop halts the stream and turns the LED off.
func (c *Camera) Stop() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stop()
}

func (c *Camera) stop() error {
	if !c.streaming.Load() {
		return ErrNotStreaming
	}
	c.streaming.Store(false)
	c.mapper.SetStreaming(false)
	c.regs.Write(regbus.RegStreamControl, regbus.StreamHalt)
	if err := c.regs.SetLED(false); err != nil {
		return fmt.Errorf("stop: %w", err)
	}
	return nil
}

// HandlePayload feeds one quantum to the reassembler. Quanta arriving while
// stopped are dropped. It must be called from a single goroutine.
func (c *Camera) HandlePayload(quantum []byte) transfers.Outcome {
	if !c.streaming.Load() {
		return transfers.Discarded
	}
	return c.assembler.Load().Scan(quantum)
}

// FrameInterval returns the frame interval in seconds as num/den.
func (c *Camera) FrameInterval() (num, den uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rate.Num, c.rate.Den
}

// SetFrameInterval selects the preset nearest num/den and returns the interval
// actually in effect. A zero num or den selects the default of 1/30.
func (c *Camera) SetFrameInterval(num, den uint32) (uint32, uint32, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return 0, 0, ErrClosed
	}
	if num == 0 || den == 0 {
		num, den = sensor.DefaultRate.Num, sensor.DefaultRate.Den
	}
	r, ok := c.variant.Modes[c.mode].Rates.Nearest(num, den)
	if !ok {
		return c.rate.Num, c.rate.Den, nil
	}
	c.rate = r
	if c.streaming.Load() {
		c.applyRate()
		if err := c.regs.Session().Err(); err != nil {
			return r.Num, r.Den, fmt.Errorf("frame rate: %w", err)
		}
	}
	return r.Num, r.Den, nil
}

// Get returns the current value of a control.
func (c *Camera) Get(id sensor.ControlID) (int32, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mapper.Get(id)
}

// Set changes a control. While stopped the value is applied at the next Start.
func (c *Camera) Set(id sensor.ControlID, v int32) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	return c.mapper.Set(id, v)
}

// Controls lists the controls the sensor supports with their current values.
func (c *Camera) Controls() []controls.Control {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mapper.Controls()
}

// Close stops the stream if needed, releases the device and closes Frames.
func (c *Camera) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true

	var errs []error
	if c.streaming.Load() {
		errs = append(errs, c.stop())
	}
	for i := len(c.closers) - 1; i >= 0; i-- {
		errs = append(errs, c.closers[i]())
	}
	errs = append(errs, c.frames.Close())
	return errors.Join(errs...)
}
