package regbus

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

var (
	// ErrTransport matches every *TransportError with errors.Is.
	ErrTransport = errors.New("transport error")
	// ErrProtocol matches every *ProtocolError with errors.Is.
	ErrProtocol = errors.New("sccb protocol error")
	// ErrShortTransfer is wrapped when the device moved fewer bytes than requested.
	ErrShortTransfer = errors.New("short control transfer")
)

// TransportError reports a failed register control transfer.
type TransportError struct {
	Op   string // "read" or "write"
	Addr uint8
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("register %s 0x%02x: %v", e.Op, e.Addr, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// ProtocolError reports an SCCB operation whose status never reached idle.
type ProtocolError struct {
	Reg    uint8
	Status uint8
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("sccb write 0x%02x: status 0x%02x", e.Reg, e.Status)
}

func (e *ProtocolError) Is(target error) bool { return target == ErrProtocol }

// Session holds the sticky error latch shared by all bus calls for one device.
// Once an error is latched, every further bus call returns it without I/O
// until Reset is called by a fresh bring-up.
type Session struct {
	ID uuid.UUID

	mu  sync.Mutex
	err error
}

func NewSession() *Session {
	return &Session{ID: uuid.New()}
}

// Err returns the latched error, or nil.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Latch records err unless an earlier error is already latched. The error that
// ends up latched is returned.
func (s *Session) Latch(err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err == nil {
		s.err = err
	}
	return s.err
}

// Reset clears the latch.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = nil
}

func (s *Session) String() string {
	return s.ID.String()[:8]
}
