// Package drain implements the reliable write loop: it drives a buffer
// into a sink to completion, looping over partial transfers and retrying
// calls interrupted before any I/O happened.
package drain

import (
	"errors"
	"fmt"
	"io"
	"syscall"
)

// Reporter observes one successful transfer: the bytes moved by that call
// and the bytes still unwritten after it.
type Reporter func(wrote, remaining int)

// Options configure a single WriteAll pass.
type Options struct {
	// ChunkSize caps the bytes offered to the sink per call. Zero offers
	// the whole remainder every time.
	ChunkSize int

	// MaxStall aborts the pass after this many consecutive successful
	// zero-byte transfers. Zero disables the guard and retries forever,
	// matching the classic write(2) loop.
	MaxStall int

	// Report, when set, is invoked once per successful transfer. It is
	// diagnostic only and must not write to the sink.
	Report Reporter
}

// ErrStalled means the sink kept reporting success without accepting any
// bytes for Options.MaxStall consecutive calls.
var ErrStalled = errors.New("sink accepts no bytes but reports success")

// SinkError is a fatal sink failure. Written is the number of bytes the
// sink had accepted before failing.
type SinkError struct {
	Written int
	Err     error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("sink failed after %d bytes: %v", e.Written, e.Err)
}

func (e *SinkError) Unwrap() error {
	return e.Err
}

// WriteAll writes buf to w until every byte is accepted or the sink fails.
// Partial transfers advance the cursor and loop; interrupted calls retry
// with nothing counted beyond what the sink reported. The returned count
// is the bytes the sink accepted; it equals len(buf) exactly when the
// error is nil. A nil error is returned for an empty buf without touching
// the sink.
func WriteAll(w io.Writer, buf []byte, opts Options) (int, error) {
	written := 0
	stall := 0
	for written < len(buf) {
		chunk := buf[written:]
		if opts.ChunkSize > 0 && len(chunk) > opts.ChunkSize {
			chunk = chunk[:opts.ChunkSize]
		}

		n, err := w.Write(chunk)
		if n < 0 {
			// Misbehaving writers must not rewind the cursor.
			n = 0
		}
		written += n

		if err != nil {
			if transient(err) {
				continue
			}
			return written, &SinkError{Written: written, Err: err}
		}

		if opts.Report != nil {
			opts.Report(n, len(buf)-written)
		}

		if n == 0 {
			stall++
			if opts.MaxStall > 0 && stall >= opts.MaxStall {
				return written, &SinkError{Written: written, Err: ErrStalled}
			}
		} else {
			stall = 0
		}
	}
	return written, nil
}

// transient reports whether err means the call was interrupted before any
// I/O happened and retrying is safe. Only EINTR qualifies; every other
// error is fatal.
func transient(err error) bool {
	return errors.Is(err, syscall.EINTR)
}
