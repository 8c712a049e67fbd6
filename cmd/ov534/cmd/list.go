package cmd

import (
	"fmt"

	usb "github.com/kevmo314/go-usb"
	"github.com/spf13/cobra"

	ov534 "github.com/kevmo314/go-ov534"
)

var listAll bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List attached OV534 cameras",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVarP(&listAll, "all", "a", false, "list every USB device")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	devices, err := usb.DeviceList()
	if err != nil {
		return fmt.Errorf("list devices: %w", err)
	}

	found := 0
	for _, dev := range devices {
		vid, pid := dev.Descriptor.VendorID, dev.Descriptor.ProductID
		known, ok := ov534.Supported(vid, pid)
		if !ok && !listAll {
			continue
		}
		found++
		name := known.Name
		if !ok {
			name = "(unsupported)"
		}
		fmt.Printf("%s  %04x:%04x  %s\n", dev.Path, vid, pid, name)
		if s := dev.SysfsStrings; s != nil && (s.Manufacturer != "" || s.Product != "") {
			fmt.Printf("    %s %s\n", s.Manufacturer, s.Product)
		}
	}
	if found == 0 {
		fmt.Println("No cameras found.")
	}
	return nil
}
