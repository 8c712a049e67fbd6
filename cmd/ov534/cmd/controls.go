package cmd

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/spf13/cobra"

	"github.com/kevmo314/go-ov534/pkg/controls"
	"github.com/kevmo314/go-ov534/pkg/transfers"
)

var controlsStream bool

var controlsCmd = &cobra.Command{
	Use:   "controls",
	Short: "Interactive control panel",
	Long: `Show every control of the sensor and edit its value. With --stream the camera
streams in the background (frames are discarded) so changes reach the sensor
immediately; otherwise they are stored for the next start.`,
	Args: cobra.NoArgs,
	RunE: runControls,
}

func init() {
	controlsCmd.Flags().BoolVar(&controlsStream, "stream", false, "stream while editing")
	rootCmd.AddCommand(controlsCmd)
}

func controlSummary(c controls.Control) string {
	return fmt.Sprintf("%d  [%d, %d] default %d", c.Value, c.Min, c.Max, c.Default)
}

func runControls(cmd *cobra.Command, args []string) error {
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

	app := tview.NewApplication()

	list := tview.NewList()
	list.SetBorder(true).SetTitle(fmt.Sprintf("Controls: %s", cam.Variant().Name))

	status := tview.NewTextView()
	status.SetBorder(true).SetTitle("Stream")

	logText := tview.NewTextView()
	logText.SetMaxLines(10).SetBorder(true).SetTitle("Log")
	logf := func(format string, a ...any) {
		fmt.Fprintf(logText, format+"\n", a...)
	}

	column := tview.NewFlex().SetDirection(tview.FlexRow).AddItem(list, 0, 1, true)

	var refresh func()
	refresh = func() {
		current := list.GetCurrentItem()
		list.Clear()
		for _, c := range cam.Controls() {
			id := c.ID
			if v, err := cam.Get(id); err == nil {
				c.Value = v
			}
			list.AddItem(id.String(), controlSummary(c), 0, func() {
				input := tview.NewInputField()
				input.SetLabel(fmt.Sprintf("%s [%d, %d]: ", id, c.Min, c.Max)).
					SetText(strconv.Itoa(int(c.Value))).
					SetFieldWidth(8).
					SetAcceptanceFunc(tview.InputFieldInteger).
					SetDoneFunc(func(key tcell.Key) {
						if key == tcell.KeyEnter {
							v, err := strconv.ParseInt(input.GetText(), 10, 32)
							if err != nil {
								logf("failed parsing value %s", err)
							} else if err := cam.Set(id, int32(v)); err != nil {
								logf("%s: %s", id, err)
							} else {
								logf("%s = %d", id, v)
							}
						}
						column.RemoveItem(input)
						refresh()
						app.SetFocus(list)
					})
				column.AddItem(input, 1, 0, false)
				app.SetFocus(input)
			})
		}
		list.SetCurrentItem(current)
	}
	refresh()

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch {
		case event.Key() == tcell.KeyEscape, event.Rune() == 'q':
			app.Stop()
			return nil
		case event.Rune() == 'r':
			refresh()
			return nil
		}
		return event
	})

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	if controlsStream {
		go func() {
			if err := cam.Stream(ctx, cfg.Stream()); err != nil {
				app.QueueUpdateDraw(func() { logf("stream: %s", err) })
			}
		}()
		go func() {
			for range cam.Frames() {
			}
		}()
		go func() {
			ticker := time.NewTicker(time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
				}
				stats := cam.Stats()
				num, den := cam.FrameInterval()
				app.QueueUpdateDraw(func() {
					status.SetText(fmt.Sprintf("streaming %t at %d/%d\nframes %d, truncated %d\nout of frame %d, bad size %d",
						cam.Streaming(), num, den, stats.Frames.Load(), stats.Truncated.Load(),
						stats.DiscardedBy(transfers.OutOfFrame), stats.DiscardedBy(transfers.SizeMismatch)))
					// auto-controlled values change under us
					refresh()
				})
			}
		}()
	}

	flex := tview.NewFlex().
		AddItem(column, 0, 2, true).
		AddItem(status, 0, 1, false)
	root := tview.NewFlex().SetDirection(tview.FlexRow).AddItem(flex, 0, 1, true).AddItem(logText, 10, 0, false)
	if err := app.SetRoot(root, true).Run(); err != nil {
		return err
	}
	cancel()
	return nil
}
