package ov534

import "fmt"

// DeviceID is a USB vendor and product pair known to carry an OV534 bridge.
type DeviceID struct {
	Vendor  uint16
	Product uint16
	Name    string
}

func (d DeviceID) String() string {
	return fmt.Sprintf("%04x:%04x", d.Vendor, d.Product)
}

var SupportedDevices = []DeviceID{
	{0x1415, 0x2000, "Sony PlayStation Eye"},
	{0x06f8, 0x3002, "Hercules Blog Webcam"},
}

// Supported looks up a vendor and product pair.
func Supported(vendor, product uint16) (DeviceID, bool) {
	for _, d := range SupportedDevices {
		if d.Vendor == vendor && d.Product == product {
			return d, true
		}
	}
	return DeviceID{}, false
}
