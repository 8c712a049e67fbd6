package sccb_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevmo314/go-ov534/internal/fakedev"
	"github.com/kevmo314/go-ov534/pkg/regbus"
	"github.com/kevmo314/go-ov534/pkg/sccb"
)

func newBus(t *testing.T) (*fakedev.Device, *regbus.Session, *sccb.Bus, *[]time.Duration) {
	t.Helper()
	dev := fakedev.New(0x7721)
	session := regbus.NewSession()
	bus := sccb.New(regbus.New(dev, session))
	var sleeps []time.Duration
	bus.Sleep = func(d time.Duration) { sleeps = append(sleeps, d) }
	return dev, session, bus, &sleeps
}

func TestWriteThenRead(t *testing.T) {
	dev, session, bus, _ := newBus(t)

	require.NoError(t, bus.Write(0x10, 0x42))
	v, err := bus.Read(0x10)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x42), v)
	assert.NoError(t, session.Err())
	assert.Equal(t, []uint8{0x42}, dev.SensorValues(0x10))
}

func TestWriteSequence(t *testing.T) {
	dev, _, bus, sleeps := newBus(t)

	require.NoError(t, bus.Write(0x12, 0x80))
	assert.Equal(t, []fakedev.Op{
		{Write: true, Addr: sccb.RegSubAddr, Value: 0x12},
		{Write: true, Addr: sccb.RegWrite, Value: 0x80},
		{Write: true, Addr: sccb.RegOperation, Value: sccb.OpWrite3},
		{Write: false, Addr: sccb.RegStatus, Value: 0x00},
	}, dev.Ops)
	assert.Equal(t, []time.Duration{sccb.PollDelay}, *sleeps)
}

func TestWritePolling(t *testing.T) {
	tests := []struct {
		name     string
		status   []uint8
		wantErr  bool
		wantPoll int
	}{
		{"idle", []uint8{0x00}, false, 1},
		{"busy then idle", []uint8{0x03, 0x03, 0x00}, false, 3},
		{"unknown then idle", []uint8{0x01, 0x00}, false, 2},
		{"fail", []uint8{0x03, 0x04}, true, 2},
		{"busy forever", []uint8{0x03, 0x03, 0x03, 0x03, 0x03, 0x00}, true, 5},
		{"garbage forever", []uint8{0x07, 0x07, 0x07, 0x07, 0x07}, true, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev, session, bus, sleeps := newBus(t)
			dev.Status = append([]uint8(nil), tt.status...)

			err := bus.Write(0x13, 0xf0)
			assert.Len(t, *sleeps, tt.wantPoll)
			if !tt.wantErr {
				require.NoError(t, err)
				assert.NoError(t, session.Err())
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, regbus.ErrProtocol))
			assert.Equal(t, err, session.Err())

			var pe *regbus.ProtocolError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, uint8(0x13), pe.Reg)
		})
	}
}

func TestWriteFailureIsSticky(t *testing.T) {
	dev, _, bus, _ := newBus(t)
	dev.Status = []uint8{0x04}
	first := bus.Write(0x13, 0xf0)
	require.Error(t, first)

	before := len(dev.Ops)
	assert.Equal(t, first, bus.Write(0x14, 0x11))
	_, err := bus.Read(0x0a)
	assert.Equal(t, first, err)
	assert.Len(t, dev.Ops, before)
}

func TestReadSoftFailure(t *testing.T) {
	dev, session, bus, sleeps := newBus(t)
	dev.Sensor[0x55] = 0x99
	// both phases report failure; the result register still holds the data
	// latched by the read opcode.
	dev.Status = []uint8{0x04, 0x04}

	v, err := bus.Read(0x55)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x99), v)
	assert.NoError(t, session.Err(), "read failures must not latch")
	assert.Len(t, *sleeps, 2)
}

func TestReadStaleBuffer(t *testing.T) {
	dev, session, bus, _ := newBus(t)
	dev.Bridge[sccb.RegRead] = 0x5a
	dev.Sensor[0x20] = 0x11
	dev.Drop[sccb.OpRead2] = true
	dev.Status = []uint8{0x00, 0x03, 0x03, 0x03, 0x03, 0x03}

	v, err := bus.Read(0x20)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x5a), v, "stale result register is returned as is")
	assert.NoError(t, session.Err())
}

func TestReadTransportFailure(t *testing.T) {
	dev, session, bus, _ := newBus(t)
	dev.Fail = func(op fakedev.Op) error {
		if !op.Write && op.Addr == sccb.RegRead {
			return fakedev.ErrInjected
		}
		return nil
	}
	v, err := bus.Read(0x0a)
	assert.Equal(t, uint8(0), v)
	assert.ErrorIs(t, err, regbus.ErrTransport)
	assert.Equal(t, err, session.Err())
}
