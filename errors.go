package myterm

import "errors"

// Sentinel errors for the fatal conditions the PTY conduit can surface to
// the host. Non-fatal parser/screen conditions (parse overflow, invalid
// UTF-8, unknown CSI/OSC, unknown key bindings) never surface past the
// core; they are recovered locally.
var (
	// ErrPtyOpenFailed is returned by NewPTY when opening the PTY pair or
	// starting the child process fails; the two causes are not told apart.
	ErrPtyOpenFailed = errors.New("myterm: pty open failed")
	// ErrForkFailed names a failure to fork/start the child process.
	// NewPTY reports such failures as ErrPtyOpenFailed, so no function in
	// this package returns ErrForkFailed.
	ErrForkFailed = errors.New("myterm: fork failed")
	// ErrIoError wraps a read/write failure on the PTY master.
	ErrIoError = errors.New("myterm: io error")
	// ErrChildExited is returned on EOF from the PTY master, signaling a
	// clean shutdown rather than a fault.
	ErrChildExited = errors.New("myterm: child exited")
	// ErrPTYWriteTimeout is returned when a write to the PTY master does
	// not complete within the caller's deadline.
	ErrPTYWriteTimeout = errors.New("myterm: pty write timeout")
)
