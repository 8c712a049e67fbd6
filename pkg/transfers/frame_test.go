package transfers

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameCollector(t *testing.T) {
	c := NewFrameCollector(4)
	a := NewAssembler(c, 0)

	a.Scan(quantum(flagPTS, 1, 3))
	a.Scan(quantum(flagPTS, 1, 2))
	a.Scan(quantum(flagPTS|flagEOF, 1, 1))

	f := <-c.Frames()
	assert.Equal(t, uint64(1), f.Seq)
	assert.Equal(t, 6, f.Len())
	assert.Equal(t, []byte{0, 1, 2, 0, 1, 0}, f.Bytes())
	assert.False(t, f.Truncated)
	assert.False(t, f.Time.IsZero())
}

func TestFrameCollectorCopiesChunks(t *testing.T) {
	c := NewFrameCollector(1)
	q := quantum(flagPTS, 1, 2)
	c.BeginFrame(q[HeaderLength:])
	q[HeaderLength] = 0xff
	c.EndFrame([]byte{})

	f := <-c.Frames()
	assert.Equal(t, []byte{0, 1}, f.Bytes())
}

func TestFrameCollectorTruncated(t *testing.T) {
	c := NewFrameCollector(4)
	a := NewAssembler(c, 0)

	a.Scan(quantum(flagPTS, 1, 3))
	a.Scan(quantum(flagPTS, 2, 3))

	f := <-c.Frames()
	assert.True(t, f.Truncated)
	assert.Equal(t, 3, f.Len())
}

func TestFrameCollectorDrops(t *testing.T) {
	c := NewFrameCollector(1)
	for i := range 3 {
		c.BeginFrame([]byte{byte(i)})
		c.EndFrame([]byte{})
	}
	assert.Equal(t, uint64(2), c.Dropped.Load())
	f := <-c.Frames()
	assert.Equal(t, uint64(1), f.Seq)
}

func TestFrameCollectorAbandoned(t *testing.T) {
	c := NewFrameCollector(1)
	c.BeginFrame([]byte{1})
	c.BeginFrame([]byte{2})
	c.EndFrame([]byte{3})
	assert.Equal(t, uint64(1), c.Abandoned.Load())
	f := <-c.Frames()
	assert.Equal(t, []byte{2, 3}, f.Bytes())
}

func TestFrameCollectorClose(t *testing.T) {
	c := NewFrameCollector(1)
	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
	c.BeginFrame([]byte{1})
	c.EndFrame(nil)
	_, ok := <-c.Frames()
	assert.False(t, ok)
}

func TestFrameRead(t *testing.T) {
	f := &Frame{Payloads: [][]byte{{1, 2, 3}, {4, 5}}}
	b, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4, 5}, b)
}

type scriptedReader struct {
	chunks [][]byte
	err    error
	closed bool
	block  chan struct{}
}

func (r *scriptedReader) Read(buf []byte) (int, error) {
	if len(r.chunks) == 0 {
		if r.block != nil {
			<-r.block
			return 0, ErrReaderClosed
		}
		return 0, r.err
	}
	n := copy(buf, r.chunks[0])
	r.chunks = r.chunks[1:]
	return n, nil
}

func (r *scriptedReader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	if r.block != nil {
		close(r.block)
	}
	return nil
}

func TestPump(t *testing.T) {
	transfer := append(quantum(flagPTS, 1, 2036), quantum(flagPTS|flagEOF, 1, 100)...)
	r := &scriptedReader{chunks: [][]byte{transfer}, err: io.ErrUnexpectedEOF}

	var sizes []int
	err := Pump(context.Background(), r, 16384, 2048, func(q []byte) { sizes = append(sizes, len(q)) })
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Equal(t, []int{2048, 112}, sizes)
}

func TestPumpCancel(t *testing.T) {
	r := &scriptedReader{block: make(chan struct{})}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error)
	go func() { done <- Pump(ctx, r, 2048, 2048, func([]byte) {}) }()
	cancel()

	select {
	case err := <-done:
		assert.True(t, errors.Is(err, context.Canceled))
	case <-time.After(time.Second):
		t.Fatal("Pump did not return after cancel")
	}
	assert.True(t, r.closed)
}
