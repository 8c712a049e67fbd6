package regbus_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevmo314/go-ov534/internal/fakedev"
	"github.com/kevmo314/go-ov534/pkg/regbus"
)

func TestWriteReadBack(t *testing.T) {
	dev := fakedev.New(0x7721)
	bus := regbus.New(dev, regbus.NewSession())

	require.NoError(t, bus.Write(0x1c, 0x0a))
	v, err := bus.Read(0x1c)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x0a), v)
}

func TestLatchShortCircuits(t *testing.T) {
	dev := fakedev.New(0x7721)
	session := regbus.NewSession()
	bus := regbus.New(dev, session)

	dev.Fail = func(op fakedev.Op) error {
		if op.Write && op.Addr == 0x10 {
			return fakedev.ErrInjected
		}
		return nil
	}
	require.NoError(t, bus.Write(0x01, 0x01))
	err := bus.Write(0x10, 0x02)
	require.Error(t, err)
	assert.True(t, errors.Is(err, regbus.ErrTransport))
	assert.True(t, errors.Is(err, fakedev.ErrInjected))

	var te *regbus.TransportError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, "write", te.Op)
	assert.Equal(t, uint8(0x10), te.Addr)

	dev.Fail = nil
	before := len(dev.Ops)

	err2 := bus.Write(0x02, 0x02)
	assert.Same(t, err, err2)
	v, err3 := bus.Read(0x01)
	assert.Same(t, err, err3)
	assert.Equal(t, uint8(0), v)
	assert.Len(t, dev.Ops, before, "latched session must not perform I/O")

	session.Reset()
	require.NoError(t, bus.Write(0x02, 0x02))
	assert.Len(t, dev.Ops, before+1)
}

func TestReadFailureLatches(t *testing.T) {
	dev := fakedev.New(0x7721)
	session := regbus.NewSession()
	bus := regbus.New(dev, session)
	dev.Bridge[0x21] = 0x55
	dev.Fail = fakedev.FailAfter(0)

	v, err := bus.Read(0x21)
	assert.Equal(t, uint8(0), v)
	require.Error(t, err)
	assert.Equal(t, err, session.Err())

	var te *regbus.TransportError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, "read", te.Op)
}

type shortTransport struct{}

func (shortTransport) ControlTransfer(requestType, request uint8, value, index uint16, data []byte, timeout time.Duration) (int, error) {
	return 0, nil
}

func TestShortTransferIsTransportError(t *testing.T) {
	bus := regbus.New(shortTransport{}, regbus.NewSession())
	err := bus.Write(0xe0, 0x09)
	assert.ErrorIs(t, err, regbus.ErrShortTransfer)
	assert.ErrorIs(t, err, regbus.ErrTransport)
}

func TestSetLED(t *testing.T) {
	dev := fakedev.New(0x7721)
	bus := regbus.New(dev, regbus.NewSession())
	dev.Bridge[0x21] = 0x70
	dev.Bridge[0x23] = 0x01

	require.NoError(t, bus.SetLED(true))
	assert.Equal(t, uint8(0xf0), dev.Bridge[0x21])
	assert.Equal(t, uint8(0x81), dev.Bridge[0x23])

	require.NoError(t, bus.SetLED(false))
	assert.Equal(t, uint8(0x70), dev.Bridge[0x21])
	assert.Equal(t, uint8(0x01), dev.Bridge[0x23])
	assert.Equal(t, []uint8{0xf0, 0xf0, 0x70}, dev.Writes(0x21))
}
