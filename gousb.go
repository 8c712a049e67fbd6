package ov534

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/gousb"

	"github.com/kevmo314/go-ov534/pkg/requests"
	"github.com/kevmo314/go-ov534/pkg/sensor"
	"github.com/kevmo314/go-ov534/pkg/transfers"
)

var ErrNoDevice = errors.New("no matching device")

// gousbTransport adapts a gousb device to regbus.Transport. gousb applies
// the timeout configured on the device rather than a per-call one.
type gousbTransport struct {
	dev *gousb.Device
}

func (t gousbTransport) ControlTransfer(requestType, request uint8, value, index uint16, data []byte, timeout time.Duration) (int, error) {
	return t.dev.Control(requestType, request, value, index, data)
}

// OpenGoUSB opens the first device matching id through libusb. Only bulk
// streaming is available on this path.
func OpenGoUSB(ctx *gousb.Context, id DeviceID, opts Options) (*Camera, error) {
	dev, err := ctx.OpenDeviceWithVIDPID(gousb.ID(id.Vendor), gousb.ID(id.Product))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", id, err)
	}
	if dev == nil {
		return nil, fmt.Errorf("%s: %w", id, ErrNoDevice)
	}
	if err := dev.SetAutoDetach(true); err != nil {
		dev.Close()
		return nil, fmt.Errorf("auto detach: %w", err)
	}
	dev.ControlTimeout = requests.ControlTimeout

	intf, done, err := dev.DefaultInterface()
	if err != nil {
		dev.Close()
		return nil, fmt.Errorf("claim interface: %w", err)
	}
	c, err := New(gousbTransport{dev: dev}, opts)
	if err != nil {
		done()
		dev.Close()
		return nil, err
	}
	c.closers = append(c.closers, dev.Close, func() error {
		done()
		return nil
	})
	c.newReader = func(t sensor.Transport, cfg StreamConfig) (transfers.PayloadReader, int, error) {
		if t.Kind != sensor.Bulk {
			return nil, 0, fmt.Errorf("%s streaming over gousb: %w", t.Kind, errors.ErrUnsupported)
		}
		ep, err := intf.InEndpoint(int(t.Endpoint & 0x0f))
		if err != nil {
			return nil, 0, err
		}
		s, err := ep.NewStream(t.BulkSize, cfg.BulkDepth)
		if err != nil {
			return nil, 0, err
		}
		return s, t.BulkSize, nil
	}
	return c, nil
}
