// Package record stores captured frames as length-prefixed msgpack records:
// a 4 byte big-endian length followed by the encoded Record.
package record

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/kevmo314/go-ov534/pkg/sensor"
	"github.com/kevmo314/go-ov534/pkg/transfers"
)

// MaxRecordSize bounds a single record when reading.
const MaxRecordSize = 8 << 20

var ErrRecordTooLarge = errors.New("record too large")

type Record struct {
	Seq       uint64    `msgpack:"seq"`
	Timestamp time.Time `msgpack:"timestamp"`
	Width     int       `msgpack:"width"`
	Height    int       `msgpack:"height"`
	Format    string    `msgpack:"format"`
	GUID      string    `msgpack:"guid"`
	Truncated bool      `msgpack:"truncated"`
	Data      []byte    `msgpack:"data"`
}

// New builds the record for a frame captured in mode.
func New(f *transfers.Frame, mode sensor.Mode) *Record {
	return &Record{
		Seq:       f.Seq,
		Timestamp: f.Time,
		Width:     mode.Width,
		Height:    mode.Height,
		Format:    mode.Format.String(),
		GUID:      mode.Format.GUID().String(),
		Truncated: f.Truncated,
		Data:      f.Bytes(),
	}
}

type Writer struct {
	w      io.Writer
	prefix [4]byte
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (w *Writer) Write(r *Record) error {
	b, err := msgpack.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal record %d: %w", r.Seq, err)
	}
	binary.BigEndian.PutUint32(w.prefix[:], uint32(len(b)))
	if _, err := w.w.Write(w.prefix[:]); err != nil {
		return fmt.Errorf("failed to write length prefix: %w", err)
	}
	if _, err := w.w.Write(b); err != nil {
		return fmt.Errorf("failed to write record %d: %w", r.Seq, err)
	}
	return nil
}

type Reader struct {
	r      io.Reader
	prefix [4]byte
	buf    []byte
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Read returns the next record, or io.EOF at a clean end of stream.
func (r *Reader) Read() (*Record, error) {
	if _, err := io.ReadFull(r.r, r.prefix[:]); err != nil {
		return nil, err
	}
	n := binary.BigEndian.Uint32(r.prefix[:])
	if n > MaxRecordSize {
		return nil, fmt.Errorf("%d bytes: %w", n, ErrRecordTooLarge)
	}
	if cap(r.buf) < int(n) {
		r.buf = make([]byte, n)
	}
	r.buf = r.buf[:n]
	if _, err := io.ReadFull(r.r, r.buf); err != nil {
		return nil, fmt.Errorf("failed to read record: %w", io.ErrUnexpectedEOF)
	}
	rec := &Record{}
	if err := msgpack.Unmarshal(r.buf, rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record: %w", err)
	}
	return rec, nil
}
