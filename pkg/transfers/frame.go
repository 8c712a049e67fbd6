package transfers

import (
	"io"
	"sync"
	"sync/atomic"
	"time"
)

type Frame struct {
	Seq      uint64
	Time     time.Time
	Payloads [][]byte
	// Truncated is set on frames closed by the start of the next frame
	// instead of an end-of-frame marker.
	Truncated bool

	index, offset int
}

// Len is the total payload length.
func (f *Frame) Len() int {
	total := 0
	for _, p := range f.Payloads {
		total += len(p)
	}
	return total
}

// Bytes returns the payloads concatenated together.
func (f *Frame) Bytes() []byte {
	buf := make([]byte, 0, f.Len())
	for _, p := range f.Payloads {
		buf = append(buf, p...)
	}
	return buf
}

// Read reads the payload datas concatenated together.
func (f *Frame) Read(buf []byte) (int, error) {
	n := 0
	for n < len(buf) {
		if f.index == len(f.Payloads) {
			if n == 0 {
				return 0, io.EOF
			}
			return n, nil
		}
		p := f.Payloads[f.index]
		m := copy(buf[n:], p[f.offset:])
		f.offset += m
		n += m
		if f.offset >= len(p) {
			f.index++
			f.offset = 0
		}
	}
	return n, nil
}

// FrameCollector is a Sink that copies chunks into frames and delivers them on
// a channel. When the consumer falls behind, completed frames are dropped.
type FrameCollector struct {
	frames chan *Frame
	now    func() time.Time

	cur *Frame
	seq uint64

	mu     sync.Mutex
	closed bool

	Dropped atomic.Uint64
	// Abandoned counts open frames thrown away by a new BeginFrame.
	Abandoned atomic.Uint64
}

func NewFrameCollector(depth int) *FrameCollector {
	return &FrameCollector{frames: make(chan *Frame, depth), now: time.Now}
}

func (c *FrameCollector) Frames() <-chan *Frame {
	return c.frames
}

func (c *FrameCollector) BeginFrame(data []byte) {
	if c.cur != nil {
		c.Abandoned.Add(1)
	}
	c.seq++
	c.cur = &Frame{Seq: c.seq}
	c.cur.push(data)
}

func (c *FrameCollector) AppendFrame(data []byte) {
	if c.cur != nil {
		c.cur.push(data)
	}
}

func (c *FrameCollector) EndFrame(data []byte) {
	if c.cur == nil {
		return
	}
	f := c.cur
	c.cur = nil
	if data == nil {
		f.Truncated = true
	} else {
		f.push(data)
	}
	f.Time = c.now()
	c.deliver(f)
}

func (f *Frame) push(data []byte) {
	if len(data) > 0 {
		f.Payloads = append(f.Payloads, append([]byte(nil), data...))
	}
}

func (c *FrameCollector) deliver(f *Frame) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	select {
	case c.frames <- f:
	default:
		c.Dropped.Add(1)
		logger.Debugf("frame %d dropped", f.Seq)
	}
}

// Close closes the frame channel. Later frames are discarded.
func (c *FrameCollector) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.frames)
	}
	return nil
}
