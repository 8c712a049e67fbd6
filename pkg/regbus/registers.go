package regbus

// Bridge registers used outside of the static register programs.
const (
	RegGPIODirection uint8 = 0x21
	RegGPIOOutput    uint8 = 0x23
	RegFrameRate     uint8 = 0xe5
	RegStreamControl uint8 = 0xe0
	RegReset         uint8 = 0xe7
)

// Values written to RegStreamControl.
const (
	StreamRun   uint8 = 0x00
	StreamReset uint8 = 0x08
	StreamHalt  uint8 = 0x09
)

const ledMask uint8 = 0x80
