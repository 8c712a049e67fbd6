// Package controls maps logical camera controls onto sensor register writes.
package controls

import (
	"errors"

	"github.com/kevmo314/go-ov534/pkg/sensor"
)

var (
	ErrInapplicable = errors.New("control not supported by this sensor")
	ErrOutOfRange   = errors.New("control value out of range")
)

// Control is a control's range together with its current value.
type Control struct {
	sensor.ControlSpec
	Value int32
}

type ClusterState int

const (
	Auto ClusterState = iota
	Manual
)

func (s ClusterState) String() string {
	if s == Manual {
		return "manual"
	}
	return "auto"
}

// Cluster pairs an auto control with the manual control it overrides. In
// Auto, manual values are stored by the mapper and not pushed; switching to
// Manual pushes the stored value once.
type Cluster struct {
	AutoID   sensor.ControlID
	ManualID sensor.ControlID
	// manualSetting is the auto control's value that selects Manual.
	manualSetting int32

	state ClusterState
}

func NewCluster(auto, manual sensor.ControlID, manualSetting, autoValue int32) *Cluster {
	c := &Cluster{AutoID: auto, ManualID: manual, manualSetting: manualSetting}
	if autoValue == manualSetting {
		c.state = Manual
	}
	return c
}

func (c *Cluster) State() ClusterState { return c.state }

// SetAuto applies a new value of the auto control and reports whether the
// manual value must be pushed.
func (c *Cluster) SetAuto(v int32) bool {
	next := Auto
	if v == c.manualSetting {
		next = Manual
	}
	push := next == Manual && c.state == Auto
	c.state = next
	return push
}

// SetManual reports whether a new manual value must be pushed.
func (c *Cluster) SetManual() bool {
	return c.state == Manual
}
