package myterm

// CursorShape determines how the cursor is rendered. Blink is tracked
// separately so a renderer can animate any shape.
type CursorShape int

const (
	CursorShapeBlock CursorShape = iota
	CursorShapeUnderline
	CursorShapeBeam
)

// Cursor tracks position, rendering style, and the pending-wrap latch
// (0-based coordinates). pendingWrap is set when a printed character would
// have advanced the cursor past the last column; the actual wrap to the
// next line is deferred until the next character is printed, so Col never
// observably reaches Cols.
type Cursor struct {
	Row, Col int
	Shape    CursorShape
	Blink    bool
	Visible  bool

	pendingWrap bool
}

// NewCursor creates a cursor at (0, 0), visible, blinking block style.
func NewCursor() *Cursor {
	return &Cursor{
		Shape:   CursorShapeBlock,
		Blink:   true,
		Visible: true,
	}
}

// SavedCursor stores cursor position, cell attributes, and charset state
// for DECSC/DECRC and for the implicit save made when switching to the
// alternate screen.
type SavedCursor struct {
	Row, Col     int
	Attrs        CellTemplate
	OriginMode   bool
	CharsetIndex int
	Charsets     [4]Charset
	PendingWrap  bool
}

// CellTemplate holds the rendition SGR has selected for newly printed
// characters: colors and flags, but never a character.
type CellTemplate struct {
	Cell
}

// NewCellTemplate creates a template with default attributes: no colors
// override, no flags.
func NewCellTemplate() CellTemplate {
	return CellTemplate{Cell: NewCell()}
}

// Charset selects the character encoding a G-set slot maps bytes through.
type Charset int

const (
	CharsetASCII Charset = iota
	CharsetLineDrawing
)

// CharsetIndex selects one of four character set slots (G0-G3) designated
// by ESC ( / ) / * / +.
type CharsetIndex int

const (
	CharsetIndexG0 CharsetIndex = iota
	CharsetIndexG1
	CharsetIndexG2
	CharsetIndexG3
)
