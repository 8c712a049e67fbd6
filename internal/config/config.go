// Package config loads the YAML configuration shared by the ov534 commands.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	ov534 "github.com/kevmo314/go-ov534"
	"github.com/kevmo314/go-ov534/pkg/sensor"
)

type Config struct {
	Device        DeviceConfig     `yaml:"device"`
	Mode          int              `yaml:"mode"` // index into the sensor's mode table, -1 for the largest
	FrameInterval Interval         `yaml:"frame_interval"`
	RawBayer      bool             `yaml:"raw_bayer"` // OV772x only
	FrameDepth    int              `yaml:"frame_depth"`
	Controls      map[string]int32 `yaml:"controls"`
	Transport     TransportConfig  `yaml:"transport"`
	Timeouts      TimeoutConfig    `yaml:"timeouts"`
}

type DeviceConfig struct {
	ID      string `yaml:"id"`      // vendor:product in hex
	Path    string `yaml:"path"`    // usbfs node, e.g. /dev/bus/usb/001/004
	Backend string `yaml:"backend"` // usbfs or gousb
}

type Interval struct {
	Num uint32 `yaml:"num"`
	Den uint32 `yaml:"den"`
}

type TransportConfig struct {
	BulkDepth     int   `yaml:"bulk_depth"`
	AltSetting    uint8 `yaml:"alt_setting"`
	IsoPackets    int   `yaml:"iso_packets"`
	IsoPacketSize int   `yaml:"iso_packet_size"`
	IsoTransfers  int   `yaml:"iso_transfers"`
}

type TimeoutConfig struct {
	// FirstFrame bounds the wait for the first frame after start.
	FirstFrame time.Duration `yaml:"first_frame"`
	// Capture bounds a whole capture run. Zero means unbounded.
	Capture time.Duration `yaml:"capture"`
}

const (
	BackendUSBFS = "usbfs"
	BackendGoUSB = "gousb"
)

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Device:        DeviceConfig{Backend: BackendUSBFS},
		Mode:          -1,
		FrameInterval: Interval{Num: sensor.DefaultRate.Num, Den: sensor.DefaultRate.Den},
		FrameDepth:    ov534.DefaultFrameDepth,
		Timeouts:      TimeoutConfig{FirstFrame: 5 * time.Second},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration and fills in defaults for zero values.
func (c *Config) Validate() error {
	if c.Device.ID != "" {
		if _, err := c.DeviceID(); err != nil {
			return err
		}
	}
	switch c.Device.Backend {
	case "":
		c.Device.Backend = BackendUSBFS
	case BackendUSBFS:
	case BackendGoUSB:
		if c.Device.Path != "" {
			return fmt.Errorf("device.path is not supported by the %s backend", BackendGoUSB)
		}
	default:
		return fmt.Errorf("device.backend must be %s or %s, got %q", BackendUSBFS, BackendGoUSB, c.Device.Backend)
	}
	if c.Mode < -1 {
		return fmt.Errorf("mode must be >= -1, got %d", c.Mode)
	}
	if (c.FrameInterval.Num == 0) != (c.FrameInterval.Den == 0) {
		return fmt.Errorf("frame_interval needs both num and den")
	}
	if c.FrameDepth <= 0 {
		c.FrameDepth = ov534.DefaultFrameDepth
	}
	if _, err := c.ControlValues(); err != nil {
		return err
	}
	t := c.Transport
	if t.BulkDepth < 0 || t.IsoPackets < 0 || t.IsoPacketSize < 0 || t.IsoTransfers < 0 {
		return fmt.Errorf("transport values must not be negative")
	}
	if c.Timeouts.FirstFrame < 0 || c.Timeouts.Capture < 0 {
		return fmt.Errorf("timeouts must not be negative")
	}
	return nil
}

// DeviceID parses device.id. Without one, the first supported device is used.
func (c *Config) DeviceID() (ov534.DeviceID, error) {
	if c.Device.ID == "" {
		return ov534.SupportedDevices[0], nil
	}
	vid, pid, ok := strings.Cut(c.Device.ID, ":")
	if !ok {
		return ov534.DeviceID{}, fmt.Errorf("device.id %q is not vendor:product", c.Device.ID)
	}
	v, err := strconv.ParseUint(vid, 16, 16)
	if err != nil {
		return ov534.DeviceID{}, fmt.Errorf("device.id vendor: %w", err)
	}
	p, err := strconv.ParseUint(pid, 16, 16)
	if err != nil {
		return ov534.DeviceID{}, fmt.Errorf("device.id product: %w", err)
	}
	if d, ok := ov534.Supported(uint16(v), uint16(p)); ok {
		return d, nil
	}
	return ov534.DeviceID{Vendor: uint16(v), Product: uint16(p)}, nil
}

// ControlValues resolves the control names of the controls section.
func (c *Config) ControlValues() (map[sensor.ControlID]int32, error) {
	out := make(map[sensor.ControlID]int32, len(c.Controls))
	for name, v := range c.Controls {
		id, ok := sensor.ParseControl(name)
		if !ok {
			return nil, fmt.Errorf("controls: unknown control %q", name)
		}
		out[id] = v
	}
	return out, nil
}

func (c *Config) Options() ov534.Options {
	return ov534.Options{
		Sensor:     sensor.Options{RawBayer: c.RawBayer},
		FrameDepth: c.FrameDepth,
	}
}

func (c *Config) Stream() ov534.StreamConfig {
	return ov534.StreamConfig{
		BulkDepth:     c.Transport.BulkDepth,
		AltSetting:    c.Transport.AltSetting,
		IsoPackets:    c.Transport.IsoPackets,
		IsoPacketSize: c.Transport.IsoPacketSize,
		IsoTransfers:  c.Transport.IsoTransfers,
	}
}

// Apply selects the configured mode, frame interval and control values on c.
// Controls the sensor does not have are skipped.
func (c *Config) Apply(cam *ov534.Camera) error {
	mode := c.Mode
	if mode < 0 {
		mode = len(cam.Variant().Modes) - 1
	}
	if err := cam.Configure(mode); err != nil {
		return err
	}
	if _, _, err := cam.SetFrameInterval(c.FrameInterval.Num, c.FrameInterval.Den); err != nil {
		return err
	}
	values, err := c.ControlValues()
	if err != nil {
		return err
	}
	// in declaration order, which puts each auto control before its manual one
	for _, id := range sortedControls(values) {
		if !cam.Variant().Has(id) {
			continue
		}
		if err := cam.Set(id, values[id]); err != nil {
			return fmt.Errorf("controls.%s: %w", id, err)
		}
	}
	return nil
}

func sortedControls(values map[sensor.ControlID]int32) []sensor.ControlID {
	ids := make([]sensor.ControlID, 0, len(values))
	for id := sensor.Hue; id <= sensor.Gamma; id++ {
		if _, ok := values[id]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}
