package ov534_test

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ov534 "github.com/kevmo314/go-ov534"
	"github.com/kevmo314/go-ov534/internal/fakedev"
	"github.com/kevmo314/go-ov534/pkg/controls"
	"github.com/kevmo314/go-ov534/pkg/regbus"
	"github.com/kevmo314/go-ov534/pkg/sensor"
	"github.com/kevmo314/go-ov534/pkg/transfers"
)

func open(t *testing.T, id uint16) (*fakedev.Device, *ov534.Camera) {
	t.Helper()
	dev := fakedev.New(id)
	c, err := ov534.New(dev, ov534.Options{Sleep: func(time.Duration) {}})
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	dev.ClearLog()
	return dev, c
}

func lastOp(dev *fakedev.Device) fakedev.Op {
	return dev.Ops[len(dev.Ops)-1]
}

func TestNew(t *testing.T) {
	_, c := open(t, 0x7721)
	assert.Equal(t, uint16(0x7721), c.SensorID())
	assert.Equal(t, sensor.B, c.Variant().Tag)

	mode, idx := c.Mode()
	assert.Equal(t, 1, idx)
	assert.Equal(t, 640, mode.Width)

	num, den := c.FrameInterval()
	assert.Equal(t, []uint32{1, 30}, []uint32{num, den})
	assert.False(t, c.Streaming())
}

func TestNewFailure(t *testing.T) {
	dev := fakedev.New(0x7721)
	dev.Fail = fakedev.FailAfter(3)
	_, err := ov534.New(dev, ov534.Options{Sleep: func(time.Duration) {}})
	assert.ErrorIs(t, err, regbus.ErrTransport)
}

func TestStart772x(t *testing.T) {
	dev, c := open(t, 0x7721)
	require.NoError(t, c.Start())
	assert.True(t, c.Streaming())

	// VGA at 1/30
	assert.Equal(t, uint8(0x04), dev.Sensor[0x11])
	assert.Equal(t, uint8(0x81), dev.Sensor[0x0d])
	assert.Equal(t, []uint8{0x02}, dev.Writes(regbus.RegFrameRate)[len(dev.Writes(regbus.RegFrameRate))-1:])

	assert.Equal(t, fakedev.Op{Write: true, Addr: regbus.RegStreamControl, Value: regbus.StreamRun}, lastOp(dev))
	assert.Equal(t, uint8(0x80), dev.Bridge[regbus.RegGPIOOutput]&0x80, "led on")
	// gamma is pushed
	assert.NotEmpty(t, dev.SensorValues(0x7e))

	assert.ErrorIs(t, c.Start(), ov534.ErrStreaming)
}

func TestStart767x(t *testing.T) {
	dev, c := open(t, 0x7673)
	require.NoError(t, c.Start())

	require.NotEmpty(t, dev.SensorWrites)
	assert.Equal(t, fakedev.Op{Write: true, Addr: 0x1e, Value: 0x04}, dev.SensorWrites[0])
	assert.Equal(t, fakedev.Op{Write: true, Addr: regbus.RegStreamControl, Value: regbus.StreamRun}, lastOp(dev))
	assert.Empty(t, dev.SensorValues(0x7e), "no gamma on OV767x")
}

func TestStop(t *testing.T) {
	dev, c := open(t, 0x7721)
	assert.ErrorIs(t, c.Stop(), ov534.ErrNotStreaming)

	require.NoError(t, c.Start())
	dev.ClearLog()
	require.NoError(t, c.Stop())

	assert.Equal(t, fakedev.Op{Write: true, Addr: regbus.RegStreamControl, Value: regbus.StreamHalt}, dev.Ops[0])
	assert.Equal(t, regbus.RegGPIODirection, lastOp(dev).Addr)
	assert.Zero(t, dev.Bridge[regbus.RegGPIOOutput]&0x80, "led off")
	assert.False(t, c.Streaming())
}

func TestStartAfterFailure(t *testing.T) {
	dev, c := open(t, 0x7721)
	dev.Fail = fakedev.FailAfter(10)
	err := c.Start()
	assert.ErrorIs(t, err, regbus.ErrTransport)
	assert.False(t, c.Streaming())

	// the session stays latched until a fresh bring-up
	dev.Fail = nil
	dev.ClearLog()
	assert.ErrorIs(t, c.Start(), regbus.ErrTransport)
	assert.Empty(t, dev.Ops)

	require.NoError(t, c.Set(sensor.Brightness, 40))
	require.NoError(t, c.Reinit())
	assert.NoError(t, c.Session().Err())
	assert.Equal(t, uint16(0x7721), c.SensorID())
	require.NoError(t, c.Start())
	assert.True(t, c.Streaming())
	v, err := c.Get(sensor.Brightness)
	require.NoError(t, err)
	assert.Equal(t, int32(40), v)
}

func TestReinitWhileStreaming(t *testing.T) {
	_, c := open(t, 0x7721)
	require.NoError(t, c.Start())
	assert.ErrorIs(t, c.Reinit(), ov534.ErrStreaming)
}

func TestRestartWhileReceiving(t *testing.T) {
	_, c := open(t, 0x7721)
	require.NoError(t, c.Configure(0))
	require.NoError(t, c.Start())

	done := make(chan struct{})
	received := make(chan struct{})
	go func() {
		defer close(received)
		for pts := uint32(1); ; pts++ {
			select {
			case <-done:
				return
			default:
			}
			c.HandlePayload(quantum(0x04, pts, 16))
		}
	}()
	go func() {
		for range c.Frames() {
		}
	}()

	for range 500 {
		require.NoError(t, c.Stop())
		require.NoError(t, c.Start())
	}
	close(done)
	<-received
	assert.True(t, c.Streaming())
}

func TestConfigure(t *testing.T) {
	_, c := open(t, 0x7721)
	require.Error(t, c.Configure(2))
	require.Error(t, c.Configure(-1))

	_, _, err := c.SetFrameInterval(1, 25)
	require.NoError(t, err)
	require.NoError(t, c.Configure(0))

	// 1/25 is not a QVGA preset
	num, den := c.FrameInterval()
	assert.Equal(t, []uint32{1, 30}, []uint32{num, den})
	mode, _ := c.Mode()
	assert.Equal(t, 320, mode.Width)

	require.NoError(t, c.Start())
	assert.ErrorIs(t, c.Configure(1), ov534.ErrStreaming)
}

func TestSetFrameInterval(t *testing.T) {
	dev, c := open(t, 0x7721)

	num, den, err := c.SetFrameInterval(1, 60)
	require.NoError(t, err)
	assert.Equal(t, []uint32{1, 60}, []uint32{num, den})
	assert.Empty(t, dev.Ops, "stored only while stopped")

	num, den, err = c.SetFrameInterval(0, 0)
	require.NoError(t, err)
	assert.Equal(t, []uint32{1, 30}, []uint32{num, den})

	num, den, err = c.SetFrameInterval(1, 14)
	require.NoError(t, err)
	assert.Equal(t, []uint32{1, 15}, []uint32{num, den})

	require.NoError(t, c.Start())
	dev.ClearLog()
	_, _, err = c.SetFrameInterval(1, 10)
	require.NoError(t, err)
	assert.Equal(t, []uint8{0x09}, dev.SensorValues(0x11))
	assert.Equal(t, []uint8{0x41}, dev.SensorValues(0x0d))
	assert.Equal(t, []uint8{0x02}, dev.Writes(regbus.RegFrameRate))
}

func TestFrameInterval767x(t *testing.T) {
	dev, c := open(t, 0x7673)
	require.NoError(t, c.Start())
	dev.ClearLog()

	num, den, err := c.SetFrameInterval(1, 60)
	require.NoError(t, err)
	assert.Equal(t, []uint32{1, 30}, []uint32{num, den})
	assert.Empty(t, dev.Ops)
}

func TestControls(t *testing.T) {
	dev, c := open(t, 0x7721)
	require.NoError(t, c.Set(sensor.Contrast, 99))
	assert.Empty(t, dev.Ops)
	assert.ErrorIs(t, c.Set(sensor.Contrast, 256), controls.ErrOutOfRange)

	require.NoError(t, c.Start())
	assert.Equal(t, []uint8{99}, dev.SensorValues(0x9c))

	require.NoError(t, c.Set(sensor.Contrast, 7))
	assert.Equal(t, []uint8{99, 7}, dev.SensorValues(0x9c))
	v, err := c.Get(sensor.Contrast)
	require.NoError(t, err)
	assert.Equal(t, int32(7), v)
	assert.Len(t, c.Controls(), 14)

	_, c = open(t, 0x7673)
	assert.ErrorIs(t, c.Set(sensor.Gamma, 1), controls.ErrInapplicable)
	assert.Len(t, c.Controls(), 9)
}

func quantum(flags uint8, pts uint32, n int) []byte {
	q := make([]byte, transfers.HeaderLength+n)
	q[0] = transfers.HeaderLength
	q[1] = 0x80 | flags
	binary.LittleEndian.PutUint32(q[2:6], pts)
	return q
}

func TestHandlePayload(t *testing.T) {
	_, c := open(t, 0x7721)
	require.NoError(t, c.Configure(0))

	const (
		fid = 0x01
		eof = 0x02
		pts = 0x04
	)
	assert.Equal(t, transfers.Discarded, c.HandlePayload(quantum(pts, 1, 100)), "stopped")

	require.NoError(t, c.Start())
	size := 320 * 240 * 2
	chunk := 2048 - transfers.HeaderLength
	assert.Equal(t, transfers.FirstChunk, c.HandlePayload(quantum(pts, 7, chunk)))
	sent := chunk
	for size-sent > chunk {
		assert.Equal(t, transfers.InterChunk, c.HandlePayload(quantum(pts, 7, chunk)))
		sent += chunk
	}
	assert.Equal(t, transfers.LastChunk, c.HandlePayload(quantum(pts|eof, 7, size-sent)))

	select {
	case f := <-c.Frames():
		assert.Equal(t, size, f.Len())
		assert.False(t, f.Truncated)
	default:
		t.Fatal("no frame delivered")
	}
	assert.Equal(t, uint64(1), c.Stats().Frames.Load())

	// a restart begins discarding again
	require.NoError(t, c.Stop())
	require.NoError(t, c.Start())
	assert.Equal(t, transfers.Discarded, c.HandlePayload(quantum(pts|eof, 0, 10)))
	assert.Equal(t, transfers.FirstChunk, c.HandlePayload(quantum(pts|fid, 8, 10)))
}

func TestClose(t *testing.T) {
	_, c := open(t, 0x7721)
	require.NoError(t, c.Start())
	require.NoError(t, c.Close())
	assert.False(t, c.Streaming())

	_, ok := <-c.Frames()
	assert.False(t, ok)
	assert.ErrorIs(t, c.Start(), ov534.ErrClosed)
	assert.NoError(t, c.Close())
}

func TestSupported(t *testing.T) {
	d, ok := ov534.Supported(0x1415, 0x2000)
	require.True(t, ok)
	assert.Equal(t, "1415:2000", d.String())
	_, ok = ov534.Supported(0x1415, 0x2001)
	assert.False(t, ok)
}
