package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/kevmo314/go-ov534/pkg/record"
	"github.com/kevmo314/go-ov534/pkg/transfers"
)

var (
	captureCount     int
	captureOutput    string
	captureTruncated bool
)

var captureCmd = &cobra.Command{
	Use:   "capture",
	Short: "Capture frames into a msgpack record file",
	Long: `Start streaming, collect frames and write each one as a length-prefixed
msgpack record holding the sequence number, timestamp, geometry, pixel format
GUID and raw frame bytes. Frames are not converted.`,
	Args: cobra.NoArgs,
	RunE: runCapture,
}

func init() {
	captureCmd.Flags().IntVarP(&captureCount, "count", "n", 10, "number of frames to capture, 0 for unbounded")
	captureCmd.Flags().StringVarP(&captureOutput, "output", "o", "frames.msgpack", "output file")
	captureCmd.Flags().BoolVar(&captureTruncated, "keep-truncated", false, "also write frames cut short by the next one")
	rootCmd.AddCommand(captureCmd)
}

func runCapture(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cam, err := openCamera(cfg)
	if err != nil {
		return err
	}
	defer cam.Close()
	if err := cfg.Apply(cam.Camera); err != nil {
		return err
	}

	f, err := os.Create(captureOutput)
	if err != nil {
		return err
	}
	defer f.Close()
	w := record.NewWriter(f)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	if cfg.Timeouts.Capture > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeouts.Capture)
		defer cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	streamErr := make(chan error, 1)
	go func() {
		streamErr <- cam.Stream(ctx, cfg.Stream())
	}()

	mode, _ := cam.Mode()
	var firstFrame <-chan time.Time
	if cfg.Timeouts.FirstFrame > 0 {
		t := time.NewTimer(cfg.Timeouts.FirstFrame)
		defer t.Stop()
		firstFrame = t.C
	}
	received, written := 0, 0
	for captureCount == 0 || written < captureCount {
		var (
			frame *transfers.Frame
			ok    bool
		)
		select {
		case frame, ok = <-cam.Frames():
			if !ok {
				return transfers.ErrReaderClosed
			}
		case err := <-streamErr:
			return err
		case <-firstFrame:
			if received == 0 {
				cancel()
				<-streamErr
				return fmt.Errorf("no frame within %s", cfg.Timeouts.FirstFrame)
			}
			continue
		case <-ctx.Done():
			cancel()
			err := <-streamErr
			fmt.Fprintf(os.Stderr, "wrote %d frames to %s\n", written, captureOutput)
			return err
		}
		received++
		if frame.Truncated && !captureTruncated {
			continue
		}
		if err := w.Write(record.New(frame, mode)); err != nil {
			cancel()
			<-streamErr
			return err
		}
		written++
	}
	cancel()
	if err := <-streamErr; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	stats := cam.Stats()
	fmt.Fprintf(os.Stderr, "wrote %d frames to %s (%d truncated, %d dropped)\n",
		written, captureOutput, stats.Truncated.Load(), cam.Collector().Dropped.Load())
	return nil
}
