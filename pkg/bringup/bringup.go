// Package bringup resets the bridge, probes the sensor and loads the init
// programs for the family it finds.
package bringup

import (
	"fmt"
	"time"

	"github.com/kevmo314/go-ov534/internal/logging"
	"github.com/kevmo314/go-ov534/pkg/programs"
	"github.com/kevmo314/go-ov534/pkg/regbus"
	"github.com/kevmo314/go-ov534/pkg/sccb"
	"github.com/kevmo314/go-ov534/pkg/sensor"
)

var logger = logging.NewLogger("ov534/bringup")

type State int

const (
	Reset State = iota
	AddressSelect
	SensorReset
	SensorProbe
	VariantSelect
	BridgeProgram
	LEDOn
	SensorProgram
	Stopped
)

var stateNames = [...]string{
	Reset:         "RESET",
	AddressSelect: "ADDRESS_SELECT",
	SensorReset:   "SENSOR_RESET",
	SensorProbe:   "SENSOR_PROBE",
	VariantSelect: "VARIANT_SELECT",
	BridgeProgram: "BRIDGE_PROGRAM",
	LEDOn:         "LED_ON",
	SensorProgram: "SENSOR_PROGRAM",
	Stopped:       "STOPPED",
}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", int(s))
}

const (
	ResetDelay       = 100 * time.Millisecond
	SensorResetDelay = 10 * time.Millisecond

	resetRegValue uint8 = 0x3a
)

// Result is what bring-up learned about the device.
type Result struct {
	SensorID uint16
	Variant  *sensor.Variant
	// State is the last state entered. It is Stopped after a complete run.
	State State
}

// Machine runs bring-up over a pair of buses that share one session.
type Machine struct {
	regs *regbus.Bus
	sccb *sccb.Bus
	opts sensor.Options

	// Sleep implements the fixed delays. Defaults to time.Sleep.
	Sleep func(time.Duration)

	result Result
}

func New(s *sccb.Bus, opts sensor.Options) *Machine {
	return &Machine{regs: s.Registers(), sccb: s, opts: opts, Sleep: time.Sleep}
}

type step func(m *Machine) error

var steps = [...]step{
	Reset:         (*Machine).reset,
	AddressSelect: (*Machine).selectAddress,
	SensorReset:   (*Machine).resetSensor,
	SensorProbe:   (*Machine).probe,
	VariantSelect: (*Machine).selectVariant,
	BridgeProgram: (*Machine).bridgeProgram,
	LEDOn:         (*Machine).ledOn,
	SensorProgram: (*Machine).sensorProgram,
	Stopped:       (*Machine).stop,
}

// Run walks every state in order. Step errors do not stop the walk; writes
// after a failure short-circuit on the session latch, and the latched error is
// returned together with whatever was learned.
func (m *Machine) Run() (Result, error) {
	m.result = Result{}
	for s, fn := range steps {
		m.result.State = State(s)
		if err := fn(m); err != nil {
			logger.Debugf("%s: %v", State(s), err)
		}
	}
	err := m.regs.Session().Err()
	if err != nil {
		logger.Errorf("bring-up of session %s failed: %v", m.regs.Session(), err)
		return m.result, fmt.Errorf("bring-up: %w", err)
	}
	logger.Infof("sensor %04x, %s", m.result.SensorID, m.result.Variant.Name)
	return m.result, nil
}

func (m *Machine) reset() error {
	m.regs.Session().Reset()
	m.regs.Write(regbus.RegReset, resetRegValue)
	err := m.regs.Write(regbus.RegStreamControl, regbus.StreamReset)
	m.Sleep(ResetDelay)
	return err
}

func (m *Machine) selectAddress() error {
	return m.sccb.SetAddress(sensor.BusAddress)
}

func (m *Machine) resetSensor() error {
	err := m.sccb.Write(sensor.RegReset, sensor.ResetValue)
	m.Sleep(SensorResetDelay)
	return err
}

// readTwice discards the first read of reg, which returns stale data.
func (m *Machine) readTwice(reg uint8) (uint8, error) {
	m.sccb.Read(reg)
	return m.sccb.Read(reg)
}

func (m *Machine) probe() error {
	hi, err := m.readTwice(sensor.RegIDHigh)
	lo, err2 := m.readTwice(sensor.RegIDLow)
	m.result.SensorID = uint16(hi)<<8 | uint16(lo)
	logger.Debugf("sensor id %04x", m.result.SensorID)
	if err != nil {
		return err
	}
	return err2
}

func (m *Machine) selectVariant() error {
	m.result.Variant = sensor.Lookup(sensor.Identify(m.result.SensorID), m.opts)
	return nil
}

func (m *Machine) bridgeProgram() error {
	return programs.ApplyBridge(m.regs, m.result.Variant.BridgeInit)
}

func (m *Machine) ledOn() error {
	return m.regs.SetLED(true)
}

func (m *Machine) sensorProgram() error {
	return programs.ApplySensor(m.sccb, m.result.Variant.SensorInit)
}

func (m *Machine) stop() error {
	m.regs.Write(regbus.RegStreamControl, regbus.StreamHalt)
	return m.regs.SetLED(false)
}
