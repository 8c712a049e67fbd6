package cmd

import (
	"errors"
	"fmt"

	"github.com/google/gousb"
	usb "github.com/kevmo314/go-usb"
	"golang.org/x/sys/unix"

	ov534 "github.com/kevmo314/go-ov534"
	"github.com/kevmo314/go-ov534/internal/config"
)

// device is an opened camera and whatever must be released after it.
type device struct {
	*ov534.Camera
	release func()
}

func (d *device) Close() error {
	err := d.Camera.Close()
	d.release()
	return err
}

// findPath returns the usbfs node of the first attached device matching id.
func findPath(id ov534.DeviceID) (string, error) {
	devices, err := usb.DeviceList()
	if err != nil {
		return "", fmt.Errorf("list devices: %w", err)
	}
	for _, dev := range devices {
		if dev.Descriptor.VendorID == id.Vendor && dev.Descriptor.ProductID == id.Product {
			return dev.Path, nil
		}
	}
	return "", fmt.Errorf("%s: %w", id, ov534.ErrNoDevice)
}

// openCamera opens and brings up the configured camera.
func openCamera(cfg *config.Config) (*device, error) {
	id, err := cfg.DeviceID()
	if err != nil {
		return nil, err
	}

	if cfg.Device.Backend == config.BackendGoUSB {
		ctx := gousb.NewContext()
		cam, err := ov534.OpenGoUSB(ctx, id, cfg.Options())
		if err != nil {
			ctx.Close()
			return nil, err
		}
		return &device{Camera: cam, release: func() { ctx.Close() }}, nil
	}

	path := cfg.Device.Path
	if path == "" {
		if path, err = findPath(id); err != nil {
			return nil, err
		}
	}
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		if errors.Is(err, unix.EACCES) {
			return nil, fmt.Errorf("open %s: %w (is a udev rule granting access installed?)", path, err)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	// the camera owns fd from here on
	cam, err := ov534.OpenFD(fd, cfg.Options())
	if err != nil {
		return nil, err
	}
	return &device{Camera: cam, release: func() {}}, nil
}
