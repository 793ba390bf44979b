package myterm

import (
	"sync"

	"github.com/danielgatis/go-ansicode"
)

// Mode is a bitmask of terminal modes toggled by DECSET/DECRST and ANSI
// SM/RM sequences.
type Mode uint32

const (
	ModeCursorKeys Mode = 1 << iota
	ModeInsert
	ModeOrigin
	ModeAutoWrap
	ModeBlinkingCursor
	ModeLineFeedNewLine
	ModeShowCursor
	ModeMouseX10
	ModeMouseNormal
	ModeMouseButton
	ModeMouseAny
	ModeMouseSGR
	ModeBracketedPaste
	ModeKeypadApplication
	ModeAltScreen
)

// defaultModes enables auto-wrap, a visible cursor, and LNM (line feed
// implies carriage return). LNM on by default matches how this core is
// actually driven: the PTY conduit never sees a bare LF from a real shell
// (the pty line discipline expands outgoing "\n" to "\r\n"), but the
// Screen is also usable standalone against raw byte streams, where a
// plain LF is expected to start a clean new line rather than drift the
// column sideways.
func defaultModes() Mode {
	return ModeAutoWrap | ModeShowCursor | ModeLineFeedNewLine
}

// Selection marks a range of cells for copy/highlight purposes. It is a
// renderer-facing convenience, not part of the VT state machine itself.
type Selection struct {
	Start, End Position
	Active     bool
}

// Screen is the full terminal screen model: a primary and alternate Grid,
// the active cursor and rendition state, scroll region, modes, and the
// provider hooks a host wires up to receive bell/title/clipboard/etc
// events. It implements ansicode.Handler (see handler.go) and is the
// target of every Print/CSI/OSC/DCS event the VT parser produces.
type Screen struct {
	// mu guards every field below against concurrent access from a renderer
	// goroutine reading Cell/Snapshot/etc. while Write drives the VT parser.
	// Write and the Resize/selection/scrollback mutators take it exclusively;
	// ansicode.Handler methods (handler.go) run only from inside Write and
	// must use the unlocked s.active()/s.dimensions()/s.cellAt()/etc. helpers
	// rather than the public locking accessors, or they would deadlock.
	mu sync.RWMutex

	primary, alternate *Grid
	altActive          bool

	cursor      *Cursor
	savedCursor *SavedCursor

	scrollTop, scrollBottom int // inclusive, in the active grid's row space

	modes    Mode
	template CellTemplate

	palette Palette

	charsets      [4]Charset
	activeCharset int

	title      string
	titleStack []string

	selection Selection

	keyboardModes   []ansicode.KeyboardMode
	modifyOtherKeys ansicode.ModifyOtherKeys
	workingDir      string

	response  ResponseProvider
	bell      BellProvider
	titleProv TitleProvider
	apc       APCProvider
	pm        PMProvider
	sos       SOSProvider
	clipboard ClipboardProvider

	dec *ansicode.Decoder
}

// Option configures a Screen at construction time.
type Option func(*Screen)

// WithScrollback installs a bounded RingScrollback of maxLines on the
// primary grid. Without this option the primary grid retains no history.
func WithScrollback(maxLines int) Option {
	return func(s *Screen) {
		s.primary.SetScrollbackProvider(NewRingScrollback(maxLines))
	}
}

// WithScrollbackProvider installs a caller-supplied scrollback store on the
// primary grid.
func WithScrollbackProvider(p ScrollbackProvider) Option {
	return func(s *Screen) { s.primary.SetScrollbackProvider(p) }
}

func WithResponseProvider(p ResponseProvider) Option { return func(s *Screen) { s.response = p } }
func WithBellProvider(p BellProvider) Option         { return func(s *Screen) { s.bell = p } }
func WithTitleProvider(p TitleProvider) Option       { return func(s *Screen) { s.titleProv = p } }
func WithAPCProvider(p APCProvider) Option           { return func(s *Screen) { s.apc = p } }
func WithPMProvider(p PMProvider) Option             { return func(s *Screen) { s.pm = p } }
func WithSOSProvider(p SOSProvider) Option           { return func(s *Screen) { s.sos = p } }
func WithClipboardProvider(p ClipboardProvider) Option {
	return func(s *Screen) { s.clipboard = p }
}

// New creates a Screen sized rows x cols with default modes, palette, and
// no-op providers, then applies opts.
func New(rows, cols int, opts ...Option) *Screen {
	if rows <= 0 {
		rows = 24
	}
	if cols <= 0 {
		cols = 80
	}

	s := &Screen{
		primary:       NewGrid(rows, cols),
		alternate:     NewGrid(rows, cols),
		cursor:        NewCursor(),
		scrollTop:     0,
		scrollBottom:  rows - 1,
		modes:         defaultModes(),
		template:      NewCellTemplate(),
		palette:       DefaultPalette,
		response:      NoopResponse{},
		bell:          NoopBell{},
		titleProv:     NoopTitle{},
		apc:           NoopAPC{},
		pm:            NoopPM{},
		sos:           NoopSOS{},
		clipboard:     NoopClipboard{},
		keyboardModes: []ansicode.KeyboardMode{0},
	}
	s.alternate.SetScrollbackProvider(NoopScrollback{})

	for _, opt := range opts {
		opt(s)
	}
	s.dec = ansicode.NewDecoder(s)
	return s
}

func (s *Screen) decoder() *ansicode.Decoder { return s.dec }

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// effectiveRow translates a row given to an absolute cursor-positioning
// sequence (CUP, HVP, VPA) into grid space, offsetting by the scroll
// region's top when origin mode (DECOM) is enabled.
func (s *Screen) effectiveRow(row int) int {
	if s.modes&ModeOrigin != 0 {
		return row + s.scrollTop
	}
	return row
}

func (s *Screen) writeResponseString(str string) {
	if s.response != nil {
		s.response.Write([]byte(str))
	}
}

func (s *Screen) active() *Grid {
	if s.altActive {
		return s.alternate
	}
	return s.primary
}

// dimensions returns the active grid's size without locking. Callers that
// already hold mu (handler.go methods, and Snapshot's internal helpers)
// must use this instead of Dimensions.
func (s *Screen) dimensions() (rows, cols int) {
	g := s.active()
	return g.Rows(), g.Cols()
}

// Dimensions returns the active grid's size.
func (s *Screen) Dimensions() (rows, cols int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dimensions()
}

// cellAt returns the cell at (row, col) of the active grid without locking.
func (s *Screen) cellAt(row, col int) Cell {
	if c := s.active().Cell(row, col); c != nil {
		return *c
	}
	return NewCell()
}

// Cell returns the cell at (row, col) of the active grid, or a blank Cell
// if out of bounds.
func (s *Screen) Cell(row, col int) Cell {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cellAt(row, col)
}

// Cursor returns a copy of the current cursor state.
func (s *Screen) Cursor() Cursor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return *s.cursor
}

// Title returns the current window title.
func (s *Screen) Title() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.title
}

// IsAlternateScreen reports whether the alternate buffer is active.
func (s *Screen) IsAlternateScreen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.altActive
}

// ScrollRegion returns the current scroll region as inclusive row bounds.
func (s *Screen) ScrollRegion() (top, bottom int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scrollTop, s.scrollBottom
}

// Modes returns the current mode bitmask.
func (s *Screen) Modes() Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.modes
}

// GetSelection returns the current selection state.
func (s *Screen) GetSelection() Selection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selection
}

// SetSelection marks [start, end) as selected.
func (s *Screen) SetSelection(start, end Position) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = Selection{Start: start, End: end, Active: true}
}

// ClearSelection discards the current selection.
func (s *Screen) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = Selection{}
}

// HasSelection reports whether a selection is active.
func (s *Screen) HasSelection() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selection.Active
}

// IsSelected reports whether (row, col) falls within the active selection.
func (s *Screen) IsSelected(row, col int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.selection.Active {
		return false
	}
	p := Position{Row: row, Col: col}
	return !p.Before(s.selection.Start) && p.Before(s.selection.End)
}

// GetSelectedText extracts the selected text, one line per row joined by
// newlines.
func (s *Screen) GetSelectedText() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.selection.Active {
		return ""
	}
	start, end := s.selection.Start, s.selection.End
	if end.Before(start) {
		start, end = end, start
	}
	g := s.active()
	var out []byte
	for row := start.Row; row <= end.Row; row++ {
		line := g.LineContent(row)
		from, to := 0, len([]rune(line))
		if row == start.Row {
			from = start.Col
		}
		if row == end.Row {
			to = end.Col
		}
		runes := []rune(line)
		if from < 0 {
			from = 0
		}
		if to > len(runes) {
			to = len(runes)
		}
		if from < to {
			out = append(out, []byte(string(runes[from:to]))...)
		}
		if row != end.Row {
			out = append(out, '\n')
		}
	}
	return string(out)
}

// lineContentAt returns the trimmed text of row on the active grid without
// locking.
func (s *Screen) lineContentAt(row int) string { return s.active().LineContent(row) }

// LineContent returns the trimmed text of row on the active grid.
func (s *Screen) LineContent(row int) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lineContentAt(row)
}

// String renders every row of the active grid as newline-joined text.
func (s *Screen) String() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g := s.active()
	var out []byte
	for row := 0; row < g.Rows(); row++ {
		out = append(out, []byte(g.LineContent(row))...)
		if row != g.Rows()-1 {
			out = append(out, '\n')
		}
	}
	return string(out)
}

// Search returns the rows of the active grid containing substr.
func (s *Screen) Search(substr string) []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g := s.active()
	var rows []int
	for row := 0; row < g.Rows(); row++ {
		if containsString(g.LineContent(row), substr) {
			rows = append(rows, row)
		}
	}
	return rows
}

// SearchScrollback returns the scrollback indices (0 is oldest) whose line
// contains substr.
func (s *Screen) SearchScrollback(substr string) []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g := s.primary
	var hits []int
	for i := 0; i < g.ScrollbackLen(); i++ {
		line := g.ScrollbackLine(i)
		if containsCells(line, substr) {
			hits = append(hits, i)
		}
	}
	return hits
}

func containsCells(line []Cell, substr string) bool {
	runes := make([]rune, len(line))
	for i, c := range line {
		if c.Char == 0 {
			runes[i] = ' '
		} else {
			runes[i] = c.Char
		}
	}
	return containsString(string(runes), substr)
}

func containsString(s, substr string) bool {
	if substr == "" {
		return true
	}
	n, m := len(s), len(substr)
	for i := 0; i+m <= n; i++ {
		if s[i:i+m] == substr {
			return true
		}
	}
	return false
}

// ScrollbackLen, ScrollbackLine, ClearScrollback, SetMaxScrollback and
// MaxScrollback pass through to the primary grid's scrollback; the
// alternate screen never retains scrollback.
func (s *Screen) ScrollbackLen() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.primary.ScrollbackLen()
}
func (s *Screen) ScrollbackLine(i int) []Cell {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.primary.ScrollbackLine(i)
}
func (s *Screen) ClearScrollback() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.primary.ClearScrollback()
}
func (s *Screen) SetMaxScrollback(max int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.primary.SetMaxScrollback(max)
}
func (s *Screen) MaxScrollback() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.primary.MaxScrollback()
}
func (s *Screen) SetScrollbackProvider(p ScrollbackProvider) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.primary.SetScrollbackProvider(p)
}
func (s *Screen) ScrollbackProvider() ScrollbackProvider {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.primary.ScrollbackProvider()
}

// HasDirty reports whether any cell of the active grid changed since the
// last ClearDirty.
func (s *Screen) HasDirty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active().HasDirty()
}

// DirtyCells returns the positions of modified cells on the active grid.
func (s *Screen) DirtyCells() []Position {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active().DirtyCells()
}

// ClearDirty resets dirty tracking on the active grid.
func (s *Screen) ClearDirty() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active().ClearAllDirty()
}

// IsWrapped reports whether row on the active grid continues the line
// above it.
func (s *Screen) IsWrapped(row int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active().IsWrapped(row)
}

// Resize changes the dimensions of both grids. If the cursor's row would
// fall outside the new bounds on the primary grid, rows pushed off the top
// are scrolled into scrollback first so no content is silently discarded.
func (s *Screen) Resize(rows, cols int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rows <= 0 || cols <= 0 {
		return
	}

	if !s.altActive && rows < s.primary.Rows() && s.cursor.Row >= rows {
		shift := s.cursor.Row - rows + 1
		s.primary.ScrollUp(0, s.primary.Rows(), shift)
		s.cursor.Row -= shift
	}

	s.primary.Resize(rows, cols)
	s.alternate.Resize(rows, cols)

	if s.scrollBottom >= rows {
		s.scrollBottom = rows - 1
	}
	if s.scrollTop > s.scrollBottom {
		s.scrollTop = 0
	}
	if s.cursor.Col >= cols {
		s.cursor.Col = cols - 1
	}
	if s.cursor.Row >= rows {
		s.cursor.Row = rows - 1
	}
	s.cursor.pendingWrap = false
}

// Write feeds raw PTY output through the VT parser, which drives the
// ansicode.Handler methods on s (see handler.go). Those methods run under
// mu's exclusive lock and must use the unlocked internal helpers rather
// than the public accessors above.
func (s *Screen) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.decoder().Write(p)
	return len(p), nil
}

// WriteString is a convenience wrapper around Write.
func (s *Screen) WriteString(str string) (int, error) {
	return s.Write([]byte(str))
}
