package transfers

import (
	"sync/atomic"

	"github.com/kevmo314/go-ov534/internal/logging"
)

var logger = logging.NewLogger("ov534/transfers")

// Outcome is what Scan did with one quantum.
type Outcome int

const (
	Discarded Outcome = iota
	FirstChunk
	InterChunk
	LastChunk
)

func (o Outcome) String() string {
	switch o {
	case FirstChunk:
		return "first"
	case InterChunk:
		return "inter"
	case LastChunk:
		return "last"
	}
	return "discarded"
}

// SyncReason classifies a discarded quantum.
type SyncReason int

const (
	BadHeader SyncReason = iota
	PayloadError
	MissingPTS
	SizeMismatch
	// OutOfFrame is a quantum that continues no open frame.
	OutOfFrame
	numSyncReasons
)

func (r SyncReason) String() string {
	switch r {
	case BadHeader:
		return "bad header"
	case PayloadError:
		return "payload error"
	case MissingPTS:
		return "PTS not present"
	case SizeMismatch:
		return "wrong sized frame"
	case OutOfFrame:
		return "out of frame"
	}
	return "unknown"
}

// Sink receives frame events. Slices passed to it alias the quantum and are
// only valid for the duration of the call.
type Sink interface {
	BeginFrame(data []byte)
	AppendFrame(data []byte)
	// EndFrame closes the frame. A nil data closes a frame that was cut
	// short by the start of the next one.
	EndFrame(data []byte)
}

// Cursor is the state carried between quanta.
type Cursor struct {
	LastPTS uint32
	LastFID bool
	// Discarding is set while no frame is open: at start, after a discard
	// and after a frame closes.
	Discarding bool
}

// Stats counts assembler events. Fields are updated atomically.
type Stats struct {
	Frames    atomic.Uint64
	Truncated atomic.Uint64
	Discarded [numSyncReasons]atomic.Uint64
}

func (s *Stats) DiscardedBy(r SyncReason) uint64 {
	return s.Discarded[r].Load()
}

// Assembler turns quanta into frame events. It does no I/O and holds no
// payload data; it must be driven from a single goroutine.
type Assembler struct {
	sink Sink
	// frameSize is the exact frame length, or zero for variable size formats.
	frameSize int

	cursor      Cursor
	accumulated int
	payload     Payload

	Stats Stats
}

// NewAssembler returns an assembler feeding sink. frameSize is zero for
// compressed formats.
func NewAssembler(sink Sink, frameSize int) *Assembler {
	a := &Assembler{sink: sink, frameSize: frameSize}
	a.Reset()
	return a
}

// Reset forgets the current frame. Call it whenever streaming restarts.
func (a *Assembler) Reset() {
	a.cursor = Cursor{Discarding: true}
	a.accumulated = 0
}

func (a *Assembler) Cursor() Cursor {
	return a.cursor
}

func (a *Assembler) discard(r SyncReason) Outcome {
	logger.Debugf("discard: %s", r)
	a.Stats.Discarded[r].Add(1)
	a.cursor.Discarding = true
	return Discarded
}

// Scan consumes one quantum. Buffers holding several quanta must be cut with
// Split first.
func (a *Assembler) Scan(quantum []byte) Outcome {
	p := &a.payload
	if err := p.UnmarshalBinary(quantum); err != nil {
		return a.discard(BadHeader)
	}
	if p.Error() {
		return a.discard(PayloadError)
	}
	if !p.HasPTS() {
		return a.discard(MissingPTS)
	}

	if p.PTS != a.cursor.LastPTS || p.FrameID() != a.cursor.LastFID {
		if !a.cursor.Discarding {
			a.Stats.Truncated.Add(1)
			a.sink.EndFrame(nil)
		}
		a.cursor = Cursor{LastPTS: p.PTS, LastFID: p.FrameID()}
		a.accumulated = len(p.Data)
		a.sink.BeginFrame(p.Data)
		return FirstChunk
	}

	if p.EndOfFrame() {
		a.cursor.LastPTS = 0
	}
	if a.cursor.Discarding {
		return a.discard(OutOfFrame)
	}

	if p.EndOfFrame() {
		if a.frameSize > 0 && a.accumulated+len(p.Data) != a.frameSize {
			logger.Debugf("frame of %d bytes, want %d", a.accumulated+len(p.Data), a.frameSize)
			return a.discard(SizeMismatch)
		}
		a.cursor.Discarding = true
		a.accumulated = 0
		a.Stats.Frames.Add(1)
		a.sink.EndFrame(p.Data)
		return LastChunk
	}

	a.accumulated += len(p.Data)
	a.sink.AppendFrame(p.Data)
	return InterChunk
}
