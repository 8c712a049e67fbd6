package requests

import "time"

type RequestType uint8

const (
	// host-to-device, vendor, recipient device
	RequestTypeVendorDeviceSetRequest RequestType = 0b01000000
	// device-to-host, vendor, recipient device
	RequestTypeVendorDeviceGetRequest RequestType = 0b11000000
)

type RequestCode uint8

const (
	RequestCodeUndefined RequestCode = 0x00
	// RequestCodeRegister reads or writes one bridge register. The register
	// address travels in wIndex and the value in a one byte data stage.
	RequestCodeRegister RequestCode = 0x01
)

// ControlTimeout bounds every register control transfer.
const ControlTimeout = 500 * time.Millisecond
