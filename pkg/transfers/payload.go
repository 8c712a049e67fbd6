package transfers

import (
	"encoding/binary"
	"errors"
)

// HeaderLength is the fixed size of the header prefixing every payload.
const HeaderLength = 12

var ErrBadHeader = errors.New("bad payload header")

// Payload is one header-prefixed quantum. Data aliases the buffer it was
// decoded from.
type Payload struct {
	HeaderInfoBitmask uint8
	PTS               uint32
	SCR               struct {
		SourceTimeClock uint32
		TokenCounter    uint16
	}
	Data []byte
}

func (f *Payload) FrameID() bool {
	return f.HeaderInfoBitmask&0b00000001 != 0
}

func (f *Payload) EndOfFrame() bool {
	return f.HeaderInfoBitmask&0b00000010 != 0
}

func (f *Payload) HasPTS() bool {
	return f.HeaderInfoBitmask&0b00000100 != 0
}

func (f *Payload) HasSCR() bool {
	return f.HeaderInfoBitmask&0b00001000 != 0
}

func (f *Payload) StillImage() bool {
	return f.HeaderInfoBitmask&0b00100000 != 0
}

func (f *Payload) Error() bool {
	return f.HeaderInfoBitmask&0b01000000 != 0
}

func (f *Payload) EndOfHeader() bool {
	return f.HeaderInfoBitmask&0b10000000 != 0
}

// UnmarshalBinary decodes a quantum. The header length byte must be exactly
// HeaderLength. PTS and SCR are decoded only when flagged.
func (f *Payload) UnmarshalBinary(buf []byte) error {
	if len(buf) < HeaderLength || buf[0] != HeaderLength {
		return ErrBadHeader
	}
	f.HeaderInfoBitmask = buf[1]
	f.PTS = 0
	if f.HasPTS() {
		f.PTS = binary.LittleEndian.Uint32(buf[2:6])
	}
	f.SCR.SourceTimeClock, f.SCR.TokenCounter = 0, 0
	if f.HasSCR() {
		f.SCR.SourceTimeClock = binary.LittleEndian.Uint32(buf[6:10])
		f.SCR.TokenCounter = binary.LittleEndian.Uint16(buf[10:12])
	}
	f.Data = buf[HeaderLength:]
	return nil
}

// Split cuts buf into quanta of at most size bytes. The last quantum may be
// shorter.
func Split(buf []byte, size int) [][]byte {
	if size <= 0 {
		return nil
	}
	quanta := make([][]byte, 0, (len(buf)+size-1)/size)
	for len(buf) > 0 {
		n := min(len(buf), size)
		quanta = append(quanta, buf[:n])
		buf = buf[n:]
	}
	return quanta
}
