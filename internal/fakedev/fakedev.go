// Package fakedev emulates an OV534 bridge and its SCCB-attached sensor as a
// register file behind the control-transfer interface used by regbus.
package fakedev

import (
	"errors"
	"sync"
	"time"

	"github.com/kevmo314/go-ov534/pkg/requests"
)

var ErrInjected = errors.New("injected fault")

const (
	regSubAddr   = 0xf2
	regWrite     = 0xf3
	regRead      = 0xf4
	regOperation = 0xf5
	regStatus    = 0xf6

	opWrite3 = 0x37
	opWrite2 = 0x33
	opRead2  = 0xf9
)

// Op is one bridge register access as seen on the wire.
type Op struct {
	Write bool
	Addr  uint8
	Value uint8
}

// Device is a fake bridge. The zero value is not usable; call New.
type Device struct {
	mu sync.Mutex

	Bridge [256]uint8
	Sensor [256]uint8

	// Ops records every bridge access that reached the device.
	Ops []Op
	// SensorWrites records every completed SCCB write as (reg, value).
	SensorWrites []Op

	// Fail, when set, is consulted before every transfer; a non-nil return
	// fails the transfer without touching the register file.
	Fail func(op Op) error
	// Status, when non-empty, is consumed one value per status register read
	// instead of the emulated status.
	Status []uint8
	// ReadOnly lists sensor registers that ignore SCCB writes.
	ReadOnly map[uint8]bool
	// Drop lists SCCB opcodes the bridge silently ignores.
	Drop map[uint8]bool
}

// New returns a fake device whose sensor reports the given 16-bit identifier.
func New(sensorID uint16) *Device {
	d := &Device{
		ReadOnly: map[uint8]bool{0x0a: true, 0x0b: true},
		Drop:     map[uint8]bool{},
	}
	d.Sensor[0x0a] = uint8(sensorID >> 8)
	d.Sensor[0x0b] = uint8(sensorID)
	return d
}

func (d *Device) ControlTransfer(requestType, request uint8, value, index uint16, data []byte, timeout time.Duration) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if request != uint8(requests.RequestCodeRegister) || len(data) != 1 {
		return 0, errors.New("unsupported request")
	}
	op := Op{Write: requestType == uint8(requests.RequestTypeVendorDeviceSetRequest), Addr: uint8(index)}
	if op.Write {
		op.Value = data[0]
	}
	if d.Fail != nil {
		if err := d.Fail(op); err != nil {
			return 0, err
		}
	}
	if op.Write {
		d.write(op.Addr, op.Value)
	} else {
		op.Value = d.read(op.Addr)
		data[0] = op.Value
	}
	d.Ops = append(d.Ops, op)
	return 1, nil
}

func (d *Device) write(addr, val uint8) {
	d.Bridge[addr] = val
	if addr != regOperation {
		return
	}
	if d.Drop[val] {
		return
	}
	reg := d.Bridge[regSubAddr]
	switch val {
	case opWrite3:
		if !d.ReadOnly[reg] {
			d.Sensor[reg] = d.Bridge[regWrite]
		}
		d.SensorWrites = append(d.SensorWrites, Op{Write: true, Addr: reg, Value: d.Bridge[regWrite]})
	case opWrite2:
	case opRead2:
		d.Bridge[regRead] = d.Sensor[reg]
	}
	d.Bridge[regStatus] = 0x00
}

func (d *Device) read(addr uint8) uint8 {
	if addr == regStatus && len(d.Status) > 0 {
		v := d.Status[0]
		d.Status = d.Status[1:]
		return v
	}
	return d.Bridge[addr]
}

// Writes returns the recorded bridge writes to addr in order.
func (d *Device) Writes(addr uint8) []uint8 {
	d.mu.Lock()
	defer d.mu.Unlock()
	var vals []uint8
	for _, op := range d.Ops {
		if op.Write && op.Addr == addr {
			vals = append(vals, op.Value)
		}
	}
	return vals
}

// SensorValues returns the recorded SCCB writes to reg in order.
func (d *Device) SensorValues(reg uint8) []uint8 {
	d.mu.Lock()
	defer d.mu.Unlock()
	var vals []uint8
	for _, op := range d.SensorWrites {
		if op.Addr == reg {
			vals = append(vals, op.Value)
		}
	}
	return vals
}

// ClearLog forgets recorded operations.
func (d *Device) ClearLog() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Ops = nil
	d.SensorWrites = nil
}

// FailAfter returns a Fail hook that lets n transfers through and fails the rest.
func FailAfter(n int) func(Op) error {
	count := 0
	return func(Op) error {
		count++
		if count > n {
			return ErrInjected
		}
		return nil
	}
}
