package transfers

import (
	"fmt"
	"io"
	"sync/atomic"

	usb "github.com/kevmo314/go-usb"
)

// DefaultIsoTransfers is the number of isochronous transfers kept in flight.
const DefaultIsoTransfers = 8

// IsochronousReader returns one isochronous packet per Read. On the OV767x a
// packet carries exactly one quantum.
type IsochronousReader struct {
	ring       []*usb.IsochronousTransfer
	cur        int // transfer being drained
	next       int // packet index within it
	packetSize int
	closed     atomic.Bool

	// Skipped counts packets dropped for a bad status.
	Skipped atomic.Uint64
}

// NewIsochronousReader submits numTransfers transfers of packets packets of
// packetSize bytes each on endpoint ep.
func NewIsochronousReader(handle *usb.DeviceHandle, ep uint8, packets, packetSize, numTransfers int) (*IsochronousReader, error) {
	if numTransfers < 1 {
		numTransfers = DefaultIsoTransfers
	}
	r := &IsochronousReader{packetSize: packetSize}
	for i := range numTransfers {
		tx, err := handle.NewIsochronousTransfer(ep, packets, packetSize)
		if err == nil {
			err = tx.Submit()
		}
		if err != nil {
			r.cancel()
			return nil, fmt.Errorf("isochronous transfer %d of %d: %w", i+1, numTransfers, err)
		}
		r.ring = append(r.ring, tx)
	}
	logger.Debugf("iso ep 0x%02x: %d transfers of %dx%d bytes", ep, numTransfers, packets, packetSize)
	return r, nil
}

// PacketSize is the largest packet a Read can return.
func (r *IsochronousReader) PacketSize() int {
	return r.packetSize
}

// rotate hands the drained transfer back to the kernel and moves to the next.
func (r *IsochronousReader) rotate() error {
	if err := r.ring[r.cur].Submit(); err != nil {
		return fmt.Errorf("resubmit isochronous transfer: %w", err)
	}
	r.cur = (r.cur + 1) % len(r.ring)
	r.next = 0
	return nil
}

func (r *IsochronousReader) Read(buf []byte) (int, error) {
	for !r.closed.Load() {
		tx := r.ring[r.cur]
		if err := tx.Wait(); err != nil {
			if r.closed.Load() {
				break
			}
			return 0, fmt.Errorf("isochronous transfer: %w", err)
		}
		packets := tx.Packets()
		if r.next >= len(packets) {
			if err := r.rotate(); err != nil {
				return 0, err
			}
			continue
		}

		i := r.next
		r.next++
		switch pkt := packets[i]; {
		case pkt.Status != 0:
			r.Skipped.Add(1)
			logger.Tracef("iso packet %d status %d", i, pkt.Status)
			continue
		case pkt.ActualLength == 0:
			continue
		case int(pkt.ActualLength) > len(buf):
			return 0, io.ErrShortBuffer
		}
		data, err := tx.IsoPacketBuffer(i)
		if err != nil {
			continue
		}
		return copy(buf, data), nil
	}
	return 0, ErrReaderClosed
}

func (r *IsochronousReader) cancel() {
	for _, tx := range r.ring {
		tx.Cancel()
	}
}

// Close cancels every transfer and waits for them to retire.
func (r *IsochronousReader) Close() error {
	if r.closed.Swap(true) {
		return nil
	}
	r.cancel()
	for _, tx := range r.ring {
		tx.Wait()
	}
	return nil
}
