package myterm

import "image/color"

// CellFlags is a bitmask of the rendition and bookkeeping attributes that
// can be set on a Cell.
type CellFlags uint16

const (
	CellFlagBold CellFlags = 1 << iota
	CellFlagDim
	CellFlagItalic
	CellFlagUnderline
	CellFlagStrike
	CellFlagReverse
	CellFlagBlink
	CellFlagHidden
	CellFlagWideChar       // occupies two display columns
	CellFlagWideCharSpacer // trailing half of a wide rune; not drawn
	CellFlagDirty          // modified since the last ClearDirty call
)

// maxCombining bounds how many combining marks a single Cell retains. Marks
// typed onto an already-full cell are dropped rather than overflowing it.
const maxCombining = 2

// Cell is the unit of the grid: a character, its combining marks, the
// resolved foreground/background colors, and a flag bitmask. Every slot in
// a Grid holds a valid Cell; there is no "missing" cell representation.
type Cell struct {
	Char      rune
	Combining []rune // zero-width marks attached to Char, at most maxCombining
	Fg        color.RGBA
	Bg        color.RGBA
	Flags     CellFlags
}

// NewCell creates a cell initialized with the space character and default
// colors.
func NewCell() Cell {
	return Cell{
		Char: ' ',
		Fg:   DefaultForeground,
		Bg:   DefaultBackground,
	}
}

// Reset clears all attributes and sets the cell back to default state
// (space character, default colors, no flags, no combining marks).
func (c *Cell) Reset() {
	c.Char = ' '
	c.Combining = nil
	c.Fg = DefaultForeground
	c.Bg = DefaultBackground
	c.Flags = 0
}

// HasFlag returns true if the specified flag is set.
func (c *Cell) HasFlag(flag CellFlags) bool {
	return c.Flags&flag != 0
}

// SetFlag enables the specified flag without affecting others.
func (c *Cell) SetFlag(flag CellFlags) {
	c.Flags |= flag
}

// ClearFlag disables the specified flag without affecting others.
func (c *Cell) ClearFlag(flag CellFlags) {
	c.Flags &^= flag
}

// IsDirty returns true if the cell was modified since the last ClearDirty call.
func (c *Cell) IsDirty() bool {
	return c.HasFlag(CellFlagDirty)
}

// MarkDirty marks the cell as modified for dirty tracking.
func (c *Cell) MarkDirty() {
	c.SetFlag(CellFlagDirty)
}

// ClearDirty resets the dirty tracking flag.
func (c *Cell) ClearDirty() {
	c.ClearFlag(CellFlagDirty)
}

// IsWide returns true if this cell contains a wide character (CJK, emoji,
// etc.) that occupies 2 columns.
func (c *Cell) IsWide() bool {
	return c.HasFlag(CellFlagWideChar)
}

// IsWideSpacer returns true if this is the second cell of a wide character
// (skipped during rendering and input).
func (c *Cell) IsWideSpacer() bool {
	return c.HasFlag(CellFlagWideCharSpacer)
}

// AddCombining attaches a zero-width combining mark to the cell, dropping
// it silently once maxCombining marks are already attached.
func (c *Cell) AddCombining(r rune) {
	if len(c.Combining) >= maxCombining {
		return
	}
	c.Combining = append(c.Combining, r)
}

// Copy returns a deep copy of the cell; Combining is cloned rather than
// shared so mutating one copy never affects the other.
func (c Cell) Copy() Cell {
	out := c
	if len(c.Combining) > 0 {
		out.Combining = append([]rune(nil), c.Combining...)
	}
	return out
}
