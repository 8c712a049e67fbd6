package ov534

import (
	"context"
	"errors"
	"fmt"

	"github.com/kevmo314/go-ov534/pkg/sensor"
	"github.com/kevmo314/go-ov534/pkg/transfers"
)

var ErrNoTransport = errors.New("camera has no payload transport")

// StreamConfig tunes the payload transport. Zero fields take the sensor
// family's defaults.
type StreamConfig struct {
	BulkDepth int

	// AltSetting is selected on interface 0 before isochronous streaming.
	// Zero leaves the interface as it is.
	AltSetting    uint8
	IsoPackets    int
	IsoPacketSize int
	IsoTransfers  int
}

const (
	DefaultIsoPackets    = 32
	DefaultIsoPacketSize = 3072
)

func (s StreamConfig) withDefaults(t sensor.Transport) StreamConfig {
	if s.BulkDepth <= 0 {
		s.BulkDepth = t.Depth
	}
	if s.IsoPackets <= 0 {
		s.IsoPackets = DefaultIsoPackets
	}
	if s.IsoPacketSize <= 0 {
		s.IsoPacketSize = DefaultIsoPacketSize
	}
	if s.IsoTransfers <= 0 {
		s.IsoTransfers = transfers.DefaultIsoTransfers
	}
	return s
}

// readerFunc opens a payload reader and reports the buffer size a Read needs.
type readerFunc func(t sensor.Transport, cfg StreamConfig) (r transfers.PayloadReader, bufSize int, err error)

// Stream starts the camera, feeds payload to HandlePayload until ctx is done
// or the transport fails, and stops the camera again. Frames arrive on Frames.
func (c *Camera) Stream(ctx context.Context, cfg StreamConfig) error {
	if c.newReader == nil {
		return ErrNoTransport
	}
	t := c.variant.Transport
	cfg = cfg.withDefaults(t)

	if err := c.Start(); err != nil {
		return err
	}
	defer c.Stop()

	r, bufSize, err := c.newReader(t, cfg)
	if err != nil {
		return fmt.Errorf("open %s reader: %w", t.Kind, err)
	}
	defer r.Close()

	err = transfers.Pump(ctx, r, bufSize, t.QuantumSize, func(q []byte) {
		c.HandlePayload(q)
	})
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}
