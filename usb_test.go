//go:build linux

package ov534_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	ov534 "github.com/kevmo314/go-ov534"
)

func TestOpenFDClosesOnError(t *testing.T) {
	var p [2]int
	require.NoError(t, unix.Pipe2(p[:], unix.O_CLOEXEC))
	defer unix.Close(p[1])

	_, err := ov534.OpenFD(p[0], ov534.Options{Sleep: func(time.Duration) {}})
	require.Error(t, err, "a pipe is not a usbfs node")

	_, err = unix.FcntlInt(uintptr(p[0]), unix.F_GETFD, 0)
	assert.ErrorIs(t, err, unix.EBADF)
}
