package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kevmo314/go-ov534/internal/config"
)

var (
	configPath string
	devicePath string
	deviceID   string
	backend    string
)

var rootCmd = &cobra.Command{
	Use:   "ov534",
	Short: "Userspace driver for OV534 bridge cameras",
	Long: `Bring up and stream from USB cameras built on the OV534 bridge with an
OV767x or OV772x sensor, such as the PlayStation Eye.

Examples:
  ov534 list                                   # List attached cameras
  ov534 probe --path /dev/bus/usb/001/004      # Identify the sensor
  ov534 capture -n 30 -o frames.msgpack        # Capture 30 frames
  ov534 controls --stream                      # Adjust controls while streaming`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&devicePath, "path", "", "usbfs device node, overrides device.path")
	rootCmd.PersistentFlags().StringVar(&deviceID, "device", "", "vendor:product, overrides device.id")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "", "usbfs or gousb, overrides device.backend")
}

// loadConfig reads the configuration file and applies the persistent flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if devicePath != "" {
		cfg.Device.Path = devicePath
	}
	if deviceID != "" {
		cfg.Device.ID = deviceID
	}
	if backend != "" {
		cfg.Device.Backend = backend
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
