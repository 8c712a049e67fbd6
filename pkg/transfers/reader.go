package transfers

import (
	"context"
	"errors"
	"io"
)

var ErrReaderClosed = errors.New("reader closed")

// PayloadReader yields transfers of back to back quanta.
type PayloadReader interface {
	io.Reader
	io.Closer
}

// Pump reads from r into a buffer of bufSize bytes and hands every quantum to
// handle, until r fails or ctx is done. Cancelling ctx closes r.
func Pump(ctx context.Context, r PayloadReader, bufSize, quantumSize int, handle func(quantum []byte)) error {
	stop := context.AfterFunc(ctx, func() { r.Close() })
	defer stop()

	buf := make([]byte, bufSize)
	for {
		n, err := r.Read(buf)
		for _, q := range Split(buf[:n], quantumSize) {
			handle(q)
		}
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}
	}
}
