package myterm

import (
	"context"
	"sync"
	"time"
)

// ResizeEvent carries a new terminal size in character cells, as computed
// by SubmitResize from the pixel sizes a host window system reports.
type ResizeEvent struct {
	Rows, Cols int
}

// Engine drives the single-mutator loop between a PTY and a Screen: one
// goroutine (Run) is the only caller of Screen's mutating methods, and it
// reads PTY output, host key/resize events, and a close signal off
// channels fed by other goroutines. This matches go-ansicode's Decoder,
// which is not safe for concurrent Write calls, and keeps the PTY reader
// goroutine from ever touching the Screen directly.
type Engine struct {
	pty    *PTY
	screen *Screen

	output chan []byte
	input  chan Key
	resize chan ResizeEvent
	closed chan struct{}

	closeOnce sync.Once

	writeTimeout time.Duration
}

// NewEngine wires a PTY to a Screen. writeTimeout bounds each PTY write
// issued for a submitted key; zero disables the deadline.
func NewEngine(p *PTY, s *Screen, writeTimeout time.Duration) *Engine {
	return &Engine{
		pty:          p,
		screen:       s,
		output:       make(chan []byte, 64),
		input:        make(chan Key, 16),
		resize:       make(chan ResizeEvent, 4),
		closed:       make(chan struct{}),
		writeTimeout: writeTimeout,
	}
}

// SubmitKey enqueues a keystroke for encoding and writing to the PTY. Safe
// to call from any goroutine.
func (e *Engine) SubmitKey(k Key) {
	select {
	case e.input <- k:
	case <-e.closed:
	}
}

// SubmitResize enqueues a terminal resize computed from the host window's
// pixel dimensions and the renderer's cell metrics: cols = widthPx/cellW,
// rows = heightPx/cellH, each floored to at least 1 so a tiny or
// not-yet-measured window never collapses the grid to zero. Safe to call
// from any goroutine.
func (e *Engine) SubmitResize(widthPx, heightPx, cellW, cellH int) {
	cols := 1
	if cellW > 0 {
		cols = max(1, widthPx/cellW)
	}
	rows := 1
	if cellH > 0 {
		rows = max(1, heightPx/cellH)
	}
	select {
	case e.resize <- ResizeEvent{Rows: rows, Cols: cols}:
	case <-e.closed:
	}
}

// SubmitClose signals Run to stop. Safe to call from any goroutine,
// including from within Run's own callbacks; idempotent.
func (e *Engine) SubmitClose() {
	e.closeOnce.Do(func() { close(e.closed) })
}

// readPTY is the single goroutine allowed to call pty.Read; it only ever
// hands bytes across output, never touching Screen itself.
func (e *Engine) readPTY() {
	buf := make([]byte, 4096)
	for {
		n, err := e.pty.Read(buf)
		if n > 0 {
			chunk := append([]byte(nil), buf[:n]...)
			select {
			case e.output <- chunk:
			case <-e.closed:
				return
			}
		}
		if err != nil {
			e.SubmitClose()
			return
		}
	}
}

// Run is the event loop: it reads PTY output (applying it to Screen),
// encodes and forwards submitted keys, applies resizes to both the PTY and
// the Screen, and returns when ctx is canceled or SubmitClose is called.
// Only this goroutine calls Screen's mutating methods.
func (e *Engine) Run(ctx context.Context) error {
	go e.readPTY()

	for {
		select {
		case <-ctx.Done():
			e.SubmitClose()
			return ctx.Err()

		case <-e.closed:
			return nil

		case chunk := <-e.output:
			e.screen.Write(chunk)

		case key := <-e.input:
			bytes := key.Encode()
			if len(bytes) == 0 {
				continue
			}
			var deadline time.Time
			if e.writeTimeout > 0 {
				deadline = time.Now().Add(e.writeTimeout)
			}
			if _, err := e.pty.Write(bytes, deadline); err != nil {
				return err
			}

		case r := <-e.resize:
			e.screen.Resize(r.Rows, r.Cols)
			if err := e.pty.Resize(r.Rows, r.Cols); err != nil {
				return err
			}
		}
	}
}
