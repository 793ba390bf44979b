package myterm

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"
	"time"

	"github.com/creack/pty"
)

// PTY owns the lifecycle of a forked PTY pair and the shell running in it:
// the master file descriptor, the child process, and the environment
// variables a well-behaved terminal sets for the child.
type PTY struct {
	master *os.File
	cmd    *exec.Cmd
}

// PTYOption configures NewPTY.
type PTYOption func(*exec.Cmd)

// WithTrueColor sets COLORTERM=truecolor in the child's environment, in
// addition to the TERM=xterm-256color every PTY gets.
func WithTrueColor() PTYOption {
	return func(cmd *exec.Cmd) {
		cmd.Env = append(cmd.Env, "COLORTERM=truecolor")
	}
}

// WithEnv appends additional KEY=VALUE entries to the child's environment.
func WithEnv(env ...string) PTYOption {
	return func(cmd *exec.Cmd) {
		cmd.Env = append(cmd.Env, env...)
	}
}

// WithDir sets the child's starting working directory.
func WithDir(dir string) PTYOption {
	return func(cmd *exec.Cmd) { cmd.Dir = dir }
}

// NewPTY forks shell (with args) behind a new PTY sized rows x cols,
// inheriting the current environment plus TERM=xterm-256color.
func NewPTY(shell string, args []string, rows, cols int, opts ...PTYOption) (*PTY, error) {
	cmd := exec.Command(shell, args...)
	cmd.Env = append(os.Environ(), "TERM=xterm-256color")

	for _, opt := range opts {
		opt(cmd)
	}

	master, err := pty.StartWithSize(cmd, &pty.Winsize{
		Rows: uint16(rows),
		Cols: uint16(cols),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPtyOpenFailed, err)
	}

	return &PTY{master: master, cmd: cmd}, nil
}

// Resize updates the PTY's window size (TIOCSWINSZ); the kernel delivers
// SIGWINCH to the foreground process group of the child.
func (p *PTY) Resize(rows, cols int) error {
	return pty.Setsize(p.master, &pty.Winsize{
		Rows: uint16(rows),
		Cols: uint16(cols),
	})
}

// Read reads child output from the PTY master. An EOF from the kernel
// (child exited, slave closed) is translated to ErrChildExited rather than
// propagating io.EOF, so callers can distinguish a clean exit from a real
// I/O fault.
func (p *PTY) Read(buf []byte) (int, error) {
	n, err := p.master.Read(buf)
	if err == io.EOF {
		return n, ErrChildExited
	}
	if err != nil {
		return n, fmt.Errorf("%w: %v", ErrIoError, err)
	}
	return n, nil
}

// Write writes to the PTY master, returning ErrPTYWriteTimeout if the
// write does not complete before deadline. A zero deadline means no
// timeout.
func (p *PTY) Write(data []byte, deadline time.Time) (int, error) {
	if !deadline.IsZero() {
		if err := p.master.SetWriteDeadline(deadline); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrIoError, err)
		}
		defer p.master.SetWriteDeadline(time.Time{})
	}

	n, err := p.master.Write(data)
	if err != nil {
		if os.IsTimeout(err) {
			return n, ErrPTYWriteTimeout
		}
		return n, fmt.Errorf("%w: %v", ErrIoError, err)
	}
	return n, nil
}

// Close sends SIGTERM to the child and closes the master descriptor. It
// does not wait for the child to exit; reaping is the caller's
// responsibility (typically via (*exec.Cmd).Wait in a goroutine).
func (p *PTY) Close() error {
	if p.cmd.Process != nil {
		_ = p.cmd.Process.Signal(syscall.SIGTERM)
	}
	return p.master.Close()
}

// Pid returns the child process's PID, or 0 if it never started.
func (p *PTY) Pid() int {
	if p.cmd.Process == nil {
		return 0
	}
	return p.cmd.Process.Pid
}

// Wait blocks until the child exits and returns its error, if any. It must
// be called exactly once, typically from a goroutine spawned right after
// NewPTY returns.
func (p *PTY) Wait() error {
	return p.cmd.Wait()
}
