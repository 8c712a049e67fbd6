package ov534

import (
	"fmt"

	usb "github.com/kevmo314/go-usb"
	"golang.org/x/sys/unix"

	"github.com/kevmo314/go-ov534/pkg/sensor"
	"github.com/kevmo314/go-ov534/pkg/transfers"
)

const controlInterface uint8 = 0

// Open claims interface 0 of handle, detaching the kernel driver if one is
// bound, and brings the camera up.
func Open(handle *usb.DeviceHandle, opts Options) (*Camera, error) {
	if active, err := handle.KernelDriverActive(controlInterface); err == nil && active {
		if err := handle.DetachKernelDriver(controlInterface); err != nil {
			return nil, fmt.Errorf("detach kernel driver: %w", err)
		}
	}
	if err := handle.ClaimInterface(controlInterface); err != nil {
		return nil, fmt.Errorf("claim interface: %w", err)
	}
	c, err := New(handle, opts)
	if err != nil {
		handle.ReleaseInterface(controlInterface)
		return nil, err
	}
	c.closers = append(c.closers, func() error {
		return handle.ReleaseInterface(controlInterface)
	})
	c.newReader = func(t sensor.Transport, cfg StreamConfig) (transfers.PayloadReader, int, error) {
		if t.Kind == sensor.Bulk {
			r, err := transfers.NewAsyncBulkReader(handle, t.Endpoint, t.BulkSize, cfg.BulkDepth)
			return r, t.BulkSize, err
		}
		if cfg.AltSetting != 0 {
			if err := handle.SetAltSetting(controlInterface, cfg.AltSetting); err != nil {
				return nil, 0, fmt.Errorf("set alt setting %d: %w", cfg.AltSetting, err)
			}
		}
		r, err := transfers.NewIsochronousReader(handle, t.Endpoint, cfg.IsoPackets, cfg.IsoPacketSize, cfg.IsoTransfers)
		return r, cfg.IsoPacketSize, err
	}
	return c, nil
}

// OpenFD wraps an already opened usbfs file descriptor, as handed out by
// Android's UsbManager, and opens the camera behind it. OpenFD takes
// ownership of fd: it is closed by Close, or before OpenFD returns an error.
func OpenFD(fd int, opts Options) (*Camera, error) {
	handle, err := usb.WrapSysDevice(fd)
	if err != nil {
		unix.Close(fd)
		return nil, err
	}
	c, err := Open(handle, opts)
	if err != nil {
		handle.Close()
		return nil, err
	}
	c.closers = append([]func() error{handle.Close}, c.closers...)
	return c, nil
}
