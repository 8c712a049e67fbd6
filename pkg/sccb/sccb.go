// Package sccb talks to the image sensor over the SCCB bus tunnelled through
// the bridge registers 0xf1-0xf6.
package sccb

import (
	"time"

	"github.com/kevmo314/go-ov534/internal/logging"
	"github.com/kevmo314/go-ov534/pkg/regbus"
)

var logger = logging.NewLogger("ov534/sccb")

// Tunnel registers on the bridge.
const (
	RegAddress   uint8 = 0xf1 // sensor bus address
	RegSubAddr   uint8 = 0xf2
	RegWrite     uint8 = 0xf3
	RegRead      uint8 = 0xf4
	RegOperation uint8 = 0xf5
	RegStatus    uint8 = 0xf6
)

// Operation opcodes written to RegOperation.
const (
	OpWrite3 uint8 = 0x37
	OpWrite2 uint8 = 0x33
	OpRead2  uint8 = 0xf9
)

// Values read back from RegStatus.
const (
	StatusIdle uint8 = 0x00
	StatusBusy uint8 = 0x03
	StatusFail uint8 = 0x04
)

const (
	PollAttempts = 5
	PollDelay    = 10 * time.Millisecond
)

// Bus is the SCCB master. It shares the session latch of the underlying
// register bus.
type Bus struct {
	regs *regbus.Bus

	// Sleep is called before every status poll. Defaults to time.Sleep.
	Sleep func(time.Duration)
}

func New(regs *regbus.Bus) *Bus {
	return &Bus{regs: regs, Sleep: time.Sleep}
}

func (s *Bus) Registers() *regbus.Bus {
	return s.regs
}

// SetAddress selects the sensor's bus address.
func (s *Bus) SetAddress(addr uint8) error {
	return s.regs.Write(RegAddress, addr)
}

// poll waits for the pending operation to finish. It reports success and the
// last status seen.
func (s *Bus) poll() (bool, uint8) {
	var status uint8
	for i := 0; i < PollAttempts; i++ {
		s.Sleep(PollDelay)
		data, err := s.regs.Read(RegStatus)
		if err != nil {
			return false, status
		}
		status = data
		switch data {
		case StatusIdle:
			return true, data
		case StatusFail:
			return false, data
		case StatusBusy:
		default:
			logger.Warnf("sccb status 0x%02x, attempt %d/%d", data, i+1, PollAttempts)
		}
	}
	return false, status
}

// Write sets sensor register reg to val. A write that does not complete
// latches a *regbus.ProtocolError on the session.
func (s *Bus) Write(reg, val uint8) error {
	logger.Tracef("sccb write: %02x %02x", reg, val)
	s.regs.Write(RegSubAddr, reg)
	s.regs.Write(RegWrite, val)
	s.regs.Write(RegOperation, OpWrite3)

	if ok, status := s.poll(); !ok {
		if err := s.regs.Session().Err(); err != nil {
			return err
		}
		logger.Errorf("sccb write 0x%02x failed", reg)
		return s.regs.Session().Latch(&regbus.ProtocolError{Reg: reg, Status: status})
	}
	return nil
}

// Read returns sensor register reg. Unlike Write, a phase that does not
// complete is only logged: the result register is read regardless and its
// content returned. The error is non-nil only when the session is latched.
func (s *Bus) Read(reg uint8) (uint8, error) {
	s.regs.Write(RegSubAddr, reg)
	s.regs.Write(RegOperation, OpWrite2)
	if ok, _ := s.poll(); !ok {
		logger.Errorf("sccb read 0x%02x failed in address phase", reg)
	}

	s.regs.Write(RegOperation, OpRead2)
	if ok, _ := s.poll(); !ok {
		logger.Errorf("sccb read 0x%02x failed in data phase", reg)
	}

	return s.regs.Read(RegRead)
}

// Update performs a read-modify-write of sensor register reg.
func (s *Bus) Update(reg, clear, set uint8) error {
	v, err := s.Read(reg)
	if err != nil {
		return err
	}
	return s.Write(reg, v&^clear|set)
}
