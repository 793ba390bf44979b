package myterm

import "io"

// ResponseProvider writes terminal responses (cursor position reports,
// DSR replies, OSC color queries) back to the PTY. Typically an io.Writer
// connected to the PTY's write side.
type ResponseProvider = io.Writer

// NoopResponse discards all response data.
type NoopResponse struct{}

func (NoopResponse) Write(p []byte) (n int, err error) { return len(p), nil }

// BellProvider handles bell events triggered by BEL (0x07).
type BellProvider interface {
	Ring()
}

// NoopBell ignores bell events.
type NoopBell struct{}

func (NoopBell) Ring() {}

// TitleProvider handles window title changes (OSC 0/1/2) and the DECSC/
// DECRC-style title stack some terminals extend OSC with.
type TitleProvider interface {
	SetTitle(title string)
	PushTitle()
	PopTitle()
}

// NoopTitle ignores title operations.
type NoopTitle struct{}

func (NoopTitle) SetTitle(title string) {}
func (NoopTitle) PushTitle()            {}
func (NoopTitle) PopTitle()             {}

// APCProvider handles Application Program Command payloads.
type APCProvider interface {
	Receive(data []byte)
}

// NoopAPC ignores APC payloads.
type NoopAPC struct{}

func (NoopAPC) Receive(data []byte) {}

// PMProvider handles Privacy Message payloads.
type PMProvider interface {
	Receive(data []byte)
}

// NoopPM ignores PM payloads.
type NoopPM struct{}

func (NoopPM) Receive(data []byte) {}

// SOSProvider handles Start-of-String payloads.
type SOSProvider interface {
	Receive(data []byte)
}

// NoopSOS ignores SOS payloads.
type NoopSOS struct{}

func (NoopSOS) Receive(data []byte) {}

// ClipboardProvider handles clipboard read/write requests (OSC 52).
type ClipboardProvider interface {
	Read(clipboard byte) string
	Write(clipboard byte, data []byte)
}

// NoopClipboard ignores clipboard operations.
type NoopClipboard struct{}

func (NoopClipboard) Read(clipboard byte) string        { return "" }
func (NoopClipboard) Write(clipboard byte, data []byte) {}

// ScrollbackProvider stores fully-formed rows scrolled off the top of the
// primary grid. Push is called with the oldest-evicted row each time the
// grid scrolls from scroll_region.top == 0; implementations decide how
// (and whether) to persist it.
type ScrollbackProvider interface {
	// Push appends a row, discarding the oldest stored row if MaxLines is
	// exceeded.
	Push(line []Cell)
	// Len returns the number of stored rows.
	Len() int
	// Line returns the row at index (0 is the oldest), or nil if out of range.
	Line(index int) []Cell
	// Clear discards all stored rows.
	Clear()
	// SetMaxLines sets the retention limit, trimming the oldest rows if needed.
	SetMaxLines(max int)
	// MaxLines returns the current retention limit.
	MaxLines() int
}

// NoopScrollback discards every row. Used by the alternate screen, which
// never retains scrollback.
type NoopScrollback struct{}

func (NoopScrollback) Push(line []Cell)      {}
func (NoopScrollback) Len() int              { return 0 }
func (NoopScrollback) Line(index int) []Cell { return nil }
func (NoopScrollback) Clear()                {}
func (NoopScrollback) SetMaxLines(max int)   {}
func (NoopScrollback) MaxLines() int         { return 0 }

var (
	_ ResponseProvider   = NoopResponse{}
	_ BellProvider       = (*NoopBell)(nil)
	_ TitleProvider      = (*NoopTitle)(nil)
	_ APCProvider        = (*NoopAPC)(nil)
	_ PMProvider         = (*NoopPM)(nil)
	_ SOSProvider        = (*NoopSOS)(nil)
	_ ClipboardProvider  = (*NoopClipboard)(nil)
	_ ScrollbackProvider = (*NoopScrollback)(nil)
)
