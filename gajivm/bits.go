package gajivm

import (
	"errors"
	"fmt"
	"io"
)

var ErrStreamIO = errors.New("stream io failure")

type flusher interface {
	Flush() error
}

// bitWriter packs bits most significant first and writes whole bytes only.
type bitWriter struct {
	w       io.Writer
	buf     byte
	n       int
	written int
}

func (b *bitWriter) WriteBit(bit int) error {
	b.buf = b.buf<<1 | byte(bit&1)
	b.n++
	if b.n < 8 {
		return nil
	}
	n, err := b.w.Write([]byte{b.buf})
	if err == nil && n != 1 {
		err = io.ErrShortWrite
	}
	if err != nil {
		return fmt.Errorf("%w: write output: %w", ErrStreamIO, err)
	}
	b.buf = 0
	b.n = 0
	b.written++
	return nil
}

// Flush flushes the sink if it buffers. A pending partial byte is never written.
func (b *bitWriter) Flush() error {
	if f, ok := b.w.(flusher); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("%w: flush output: %w", ErrStreamIO, err)
		}
	}
	return nil
}

// bitReader yields bits least significant first, refilling one byte at a time.
type bitReader struct {
	r   io.Reader
	buf [1]byte
	n   int
	eof bool
}

// ReadBit reports ok=false at end of input. Each call after that tries the source again.
func (b *bitReader) ReadBit() (bit int, ok bool, err error) {
	if b.n == 0 {
		_, err := io.ReadFull(b.r, b.buf[:])
		if errors.Is(err, io.EOF) {
			b.eof = true
			return 0, false, nil
		}
		if err != nil {
			return 0, false, fmt.Errorf("%w: read input: %w", ErrStreamIO, err)
		}
		b.eof = false
		b.n = 8
	}
	bit = int(b.buf[0] & 1)
	b.buf[0] >>= 1
	b.n--
	return bit, true, nil
}
