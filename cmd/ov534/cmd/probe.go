package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Bring the camera up and print the sensor, modes and controls",
	Args:  cobra.NoArgs,
	RunE:  runProbe,
}

func init() {
	rootCmd.AddCommand(probeCmd)
}

func runProbe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cam, err := openCamera(cfg)
	if err != nil {
		return err
	}
	defer cam.Close()

	v := cam.Variant()
	fmt.Printf("Sensor:    %04x (%s)\n", cam.SensorID(), v.Name)
	fmt.Printf("Session:   %s\n", cam.Session().ID)
	fmt.Printf("Transport: %s, %d byte quanta\n", v.Transport.Kind, v.Transport.QuantumSize)

	fmt.Println("Modes:")
	for i, m := range v.Modes {
		fmt.Printf("  %d: %s, %d bytes/line, %d bytes/image\n", i, m, m.BytesPerLine, m.SizeImage)
		if len(m.Rates) > 0 {
			fmt.Printf("     rates:")
			for _, r := range m.Rates {
				fmt.Printf(" %d/%d", r.Num, r.Den)
			}
			fmt.Println()
		}
	}

	fmt.Println("Controls:")
	for _, c := range cam.Controls() {
		fmt.Printf("  %-12s %4d  [%d, %d] default %d\n", c.ID, c.Value, c.Min, c.Max, c.Default)
	}
	return nil
}
