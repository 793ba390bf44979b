package myterm

import (
	"fmt"
)

// SnapshotDetail specifies the level of detail in a snapshot.
type SnapshotDetail string

const (
	// SnapshotDetailText returns plain text only.
	SnapshotDetailText SnapshotDetail = "text"
	// SnapshotDetailStyled returns text with style segments per line.
	SnapshotDetailStyled SnapshotDetail = "styled"
	// SnapshotDetailFull returns full cell-by-cell data.
	SnapshotDetailFull SnapshotDetail = "full"
)

// Snapshot represents a complete terminal screen capture.
type Snapshot struct {
	Size   SnapshotSize   `json:"size"`
	Cursor SnapshotCursor `json:"cursor"`
	Lines  []SnapshotLine `json:"lines"`
}

// SnapshotSize holds terminal dimensions.
type SnapshotSize struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// SnapshotCursor holds cursor state.
type SnapshotCursor struct {
	Row     int    `json:"row"`
	Col     int    `json:"col"`
	Visible bool   `json:"visible"`
	Style   string `json:"style"`
}

// SnapshotLine represents a single line in the snapshot.
type SnapshotLine struct {
	Text     string            `json:"text"`
	Segments []SnapshotSegment `json:"segments,omitempty"`
	Cells    []SnapshotCell    `json:"cells,omitempty"`
}

// SnapshotSegment represents a styled text segment within a line.
type SnapshotSegment struct {
	Text       string        `json:"text"`
	Fg         string        `json:"fg,omitempty"`
	Bg         string        `json:"bg,omitempty"`
	Attributes SnapshotAttrs `json:"attrs,omitempty"`
}

// SnapshotCell represents a single cell with full attributes.
type SnapshotCell struct {
	Char       string        `json:"char"`
	Fg         string        `json:"fg"`
	Bg         string        `json:"bg"`
	Attributes SnapshotAttrs `json:"attrs,omitempty"`
	Wide       bool          `json:"wide,omitempty"`
	WideSpacer bool          `json:"wide_spacer,omitempty"`
}

// SnapshotAttrs holds text formatting attributes.
type SnapshotAttrs struct {
	Bold          bool `json:"bold,omitempty"`
	Dim           bool `json:"dim,omitempty"`
	Italic        bool `json:"italic,omitempty"`
	Underline     bool `json:"underline,omitempty"`
	Blink         bool `json:"blink,omitempty"`
	Reverse       bool `json:"reverse,omitempty"`
	Hidden        bool `json:"hidden,omitempty"`
	Strikethrough bool `json:"strikethrough,omitempty"`
}

// Snapshot creates a snapshot of the current screen state. The detail
// parameter controls how much per-cell information is included.
func (s *Screen) Snapshot(detail SnapshotDetail) *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, cols := s.dimensions()
	cursor := *s.cursor

	snap := &Snapshot{
		Size:   SnapshotSize{Rows: rows, Cols: cols},
		Cursor: SnapshotCursor{
			Row:     cursor.Row,
			Col:     cursor.Col,
			Visible: cursor.Visible,
			Style:   cursorStyleToString(cursor.Shape, cursor.Blink),
		},
		Lines: make([]SnapshotLine, rows),
	}

	for row := 0; row < rows; row++ {
		snap.Lines[row] = s.snapshotLine(row, cols, detail)
	}

	return snap
}

// snapshotLine and the lineTo* helpers below run while Snapshot already
// holds mu; they must use the unlocked cellAt/lineContentAt helpers, not
// the public Cell/LineContent accessors, to avoid a recursive RLock.
func (s *Screen) snapshotLine(row, cols int, detail SnapshotDetail) SnapshotLine {
	line := SnapshotLine{Text: s.lineContentAt(row)}

	switch detail {
	case SnapshotDetailStyled:
		line.Segments = s.lineToSegments(row, cols)
	case SnapshotDetailFull:
		line.Cells = s.lineToCells(row, cols)
	}

	return line
}

// lineToSegments converts a line to styled segments (runs of same style).
func (s *Screen) lineToSegments(row, cols int) []SnapshotSegment {
	var segments []SnapshotSegment
	var current *SnapshotSegment
	var currentChars []rune

	for col := 0; col < cols; col++ {
		cell := s.cellAt(row, col)
		if cell.IsWideSpacer() {
			continue
		}

		fg := colorToHex(cell.Fg)
		bg := colorToHex(cell.Bg)
		attrs := cellAttrsToSnapshot(cell)

		if current == nil || !segmentMatches(current, fg, bg, attrs) {
			if current != nil && len(currentChars) > 0 {
				current.Text = string(currentChars)
				segments = append(segments, *current)
			}
			current = &SnapshotSegment{Fg: fg, Bg: bg, Attributes: attrs}
			currentChars = nil
		}

		ch := cell.Char
		if ch == 0 {
			ch = ' '
		}
		currentChars = append(currentChars, ch)
		currentChars = append(currentChars, cell.Combining...)
	}

	if current != nil && len(currentChars) > 0 {
		current.Text = string(currentChars)
		segments = append(segments, *current)
	}

	return segments
}

// lineToCells converts a line to full cell data.
func (s *Screen) lineToCells(row, cols int) []SnapshotCell {
	cells := make([]SnapshotCell, 0, cols)

	for col := 0; col < cols; col++ {
		cell := s.cellAt(row, col)

		ch := cell.Char
		if ch == 0 {
			ch = ' '
		}
		text := string(append([]rune{ch}, cell.Combining...))

		cells = append(cells, SnapshotCell{
			Char:       text,
			Fg:         colorToHex(cell.Fg),
			Bg:         colorToHex(cell.Bg),
			Attributes: cellAttrsToSnapshot(cell),
			Wide:       cell.IsWide(),
			WideSpacer: cell.IsWideSpacer(),
		})
	}

	return cells
}

func segmentMatches(seg *SnapshotSegment, fg, bg string, attrs SnapshotAttrs) bool {
	return seg.Fg == fg && seg.Bg == bg && seg.Attributes == attrs
}

func colorToHex(c interface{ RGBA() (r, g, b, a uint32) }) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

func cellAttrsToSnapshot(cell Cell) SnapshotAttrs {
	return SnapshotAttrs{
		Bold:          cell.HasFlag(CellFlagBold),
		Dim:           cell.HasFlag(CellFlagDim),
		Italic:        cell.HasFlag(CellFlagItalic),
		Underline:     cell.HasFlag(CellFlagUnderline),
		Blink:         cell.HasFlag(CellFlagBlink),
		Reverse:       cell.HasFlag(CellFlagReverse),
		Hidden:        cell.HasFlag(CellFlagHidden),
		Strikethrough: cell.HasFlag(CellFlagStrike),
	}
}

// cursorStyleToString converts a CursorShape/blink pair to the string form
// used in snapshots.
func cursorStyleToString(shape CursorShape, blink bool) string {
	var name string
	switch shape {
	case CursorShapeUnderline:
		name = "underline"
	case CursorShapeBeam:
		name = "bar"
	default:
		name = "block"
	}
	if !blink {
		name = "steady-" + name
	}
	return name
}
