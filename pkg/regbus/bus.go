package regbus

import (
	"time"

	"github.com/kevmo314/go-ov534/internal/logging"
	"github.com/kevmo314/go-ov534/pkg/requests"
)

var logger = logging.NewLogger("ov534/regbus")

// Transport issues a USB control transfer. *usb.DeviceHandle from
// github.com/kevmo314/go-usb satisfies it directly.
type Transport interface {
	ControlTransfer(requestType, request uint8, value, index uint16, data []byte, timeout time.Duration) (int, error)
}

// Bus reads and writes 8-bit bridge registers. Calls are synchronous and block
// for at most requests.ControlTimeout.
type Bus struct {
	tx      Transport
	session *Session
	buf     [1]byte
}

func New(tx Transport, session *Session) *Bus {
	return &Bus{tx: tx, session: session}
}

func (b *Bus) Session() *Session {
	return b.session
}

// Write sets bridge register addr to val.
func (b *Bus) Write(addr, val uint8) error {
	if err := b.session.Err(); err != nil {
		return err
	}
	logger.Tracef("[%s] SET 01 0000 %04x %02x", b.session, addr, val)
	b.buf[0] = val
	n, err := b.tx.ControlTransfer(
		uint8(requests.RequestTypeVendorDeviceSetRequest), /* bmRequestType */
		uint8(requests.RequestCodeRegister),               /* bRequest */
		0x0000,                                            /* wValue */
		uint16(addr),                                      /* wIndex */
		b.buf[:],                                          /* data */
		requests.ControlTimeout,                           /* timeout */
	)
	if err == nil && n != 1 {
		err = ErrShortTransfer
	}
	if err != nil {
		logger.Errorf("[%s] write 0x%02x failed: %v", b.session, addr, err)
		return b.session.Latch(&TransportError{Op: "write", Addr: addr, Err: err})
	}
	return nil
}

// Read returns the value of bridge register addr. On failure the returned
// value is 0.
func (b *Bus) Read(addr uint8) (uint8, error) {
	if err := b.session.Err(); err != nil {
		return 0, err
	}
	b.buf[0] = 0
	n, err := b.tx.ControlTransfer(
		uint8(requests.RequestTypeVendorDeviceGetRequest), /* bmRequestType */
		uint8(requests.RequestCodeRegister),               /* bRequest */
		0x0000,                                            /* wValue */
		uint16(addr),                                      /* wIndex */
		b.buf[:],                                          /* data */
		requests.ControlTimeout,                           /* timeout */
	)
	if err == nil && n != 1 {
		err = ErrShortTransfer
	}
	if err != nil {
		logger.Errorf("[%s] read 0x%02x failed: %v", b.session, addr, err)
		return 0, b.session.Latch(&TransportError{Op: "read", Addr: addr, Err: err})
	}
	logger.Tracef("[%s] GET 01 0000 %04x %02x", b.session, addr, b.buf[0])
	return b.buf[0], nil
}

// Update performs a read-modify-write of addr, clearing the clear bits and
// then setting the set bits.
func (b *Bus) Update(addr, clear, set uint8) error {
	v, err := b.Read(addr)
	if err != nil {
		return err
	}
	return b.Write(addr, v&^clear|set)
}
