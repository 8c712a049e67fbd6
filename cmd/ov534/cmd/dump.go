package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kevmo314/go-ov534/pkg/record"
)

var dumpCmd = &cobra.Command{
	Use:   "dump FILE",
	Short: "Summarize a capture file",
	Args:  cobra.ExactArgs(1),
	RunE:  runDump,
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	r := record.NewReader(f)
	n := 0
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("record %d: %w", n, err)
		}
		n++
		flag := ""
		if rec.Truncated {
			flag = " truncated"
		}
		fmt.Printf("%6d  %s  %dx%d %s  %d bytes%s\n",
			rec.Seq, rec.Timestamp.Format("15:04:05.000"), rec.Width, rec.Height, rec.Format, len(rec.Data), flag)
	}
	fmt.Printf("%d records\n", n)
	return nil
}
