package transfers

import (
	"fmt"
	"sync/atomic"

	usb "github.com/kevmo314/go-usb"
)

// MaxURBBufferSize matches the kernel's MAX_USBFS_BUFFER_SIZE; larger
// requests fail with ENOMEM.
const MaxURBBufferSize = 16384

// AsyncBulkReader keeps a ring of bulk transfers in flight. Each Read returns
// the data of one completed transfer, which holds whole quanta back to back.
// Read must be called from one goroutine; Close may be called from any.
type AsyncBulkReader struct {
	ring   []*usb.AsyncBulkTransfer
	cur    int
	closed atomic.Bool
}

// NewAsyncBulkReader queues depth transfers of size bytes on endpoint ep.
func NewAsyncBulkReader(handle *usb.DeviceHandle, ep uint8, size, depth int) (*AsyncBulkReader, error) {
	depth = max(depth, 1)
	size = min(size, MaxURBBufferSize)

	r := &AsyncBulkReader{}
	for i := range depth {
		t, err := handle.NewAsyncBulkTransfer(ep, size)
		if err == nil {
			err = t.Submit()
		}
		if err != nil {
			r.cancel()
			return nil, fmt.Errorf("bulk transfer %d of %d: %w", i+1, depth, err)
		}
		r.ring = append(r.ring, t)
	}
	logger.Debugf("bulk ep 0x%02x: %d transfers of %d bytes", ep, depth, size)
	return r, nil
}

func (r *AsyncBulkReader) Read(buf []byte) (int, error) {
	if r.closed.Load() {
		return 0, ErrReaderClosed
	}

	t := r.ring[r.cur]
	data, err := t.Wait()
	if err != nil {
		if r.closed.Load() {
			return 0, ErrReaderClosed
		}
		return 0, fmt.Errorf("bulk transfer: %w", err)
	}
	if len(data) > len(buf) {
		return 0, fmt.Errorf("bulk transfer of %d bytes into %d byte buffer", len(data), len(buf))
	}
	// the kernel owns the buffer again once resubmitted
	n := copy(buf, data)
	if err := t.Submit(); err != nil {
		return n, fmt.Errorf("resubmit bulk transfer: %w", err)
	}
	r.cur = (r.cur + 1) % len(r.ring)
	return n, nil
}

func (r *AsyncBulkReader) cancel() {
	for _, t := range r.ring {
		t.Cancel()
	}
}

// Close cancels every transfer and waits for them to retire.
func (r *AsyncBulkReader) Close() error {
	if r.closed.Swap(true) {
		return nil
	}
	r.cancel()
	for _, t := range r.ring {
		t.Wait()
	}
	return nil
}
