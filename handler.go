package myterm

import (
	"encoding/base64"
	"fmt"
	"image/color"

	"github.com/danielgatis/go-ansicode"
)

var _ ansicode.Handler = (*Screen)(nil)

// maxOSCBytes bounds the payload retained from OSC/DCS/APC/PM/SOS string
// sequences. A misbehaving or malicious child process writing an unbounded
// string terminator should not grow the process's memory without limit.
const maxOSCBytes = 4096

func truncateOSC(data []byte) []byte {
	if len(data) > maxOSCBytes {
		return data[:maxOSCBytes]
	}
	return data
}

// Input prints a rune at the cursor, implementing the four-step algorithm:
// resolve a pending wrap, honor insert mode, write the cell (plus a spacer
// for wide runes), then advance the column or arm the pending-wrap latch.
func (s *Screen) Input(r rune) {
	if s.charsets[s.activeCharset] == CharsetLineDrawing {
		r = s.translateLineDrawing(r)
	}

	width := runeWidth(r)
	if width == 0 {
		s.attachCombining(r)
		return
	}

	g := s.active()
	cols := g.Cols()
	c := s.cursor

	if c.pendingWrap && s.modes&ModeAutoWrap != 0 {
		s.wrapToNextLine()
		c.Col = 0
		c.pendingWrap = false
	}

	if s.modes&ModeInsert != 0 {
		g.InsertBlanks(c.Row, c.Col, width)
	}

	cell := s.template.Cell
	cell.Char = r
	cell.Combining = nil
	if width == 2 {
		cell.SetFlag(CellFlagWideChar)
	}
	g.SetCell(c.Row, c.Col, cell)

	if width == 2 && c.Col+1 < cols {
		spacer := NewCell()
		spacer.Fg = cell.Fg
		spacer.Bg = cell.Bg
		spacer.SetFlag(CellFlagWideCharSpacer)
		g.SetCell(c.Row, c.Col+1, spacer)
	}

	c.Col += width
	if c.Col >= cols {
		c.Col = cols - 1
		c.pendingWrap = true
	}
}

// attachCombining appends a zero-width rune to the most recently written
// cell, preferring the left half of a wide character when the cursor sits
// on its spacer.
func (s *Screen) attachCombining(r rune) {
	g := s.active()
	col := s.cursor.Col
	if col > 0 && !s.cursor.pendingWrap {
		col--
	}
	cell := g.Cell(s.cursor.Row, col)
	if cell == nil {
		return
	}
	if cell.IsWideSpacer() && col > 0 {
		if left := g.Cell(s.cursor.Row, col-1); left != nil {
			cell = left
			col--
		}
	}
	cell.AddCombining(r)
	g.MarkDirty(s.cursor.Row, col)
}

// wrapToNextLine advances to the next row for an automatic wrap, scrolling
// the active region if already at its bottom, and marks the destination
// row as a continuation rather than an explicit new line.
func (s *Screen) wrapToNextLine() {
	g := s.active()
	c := s.cursor
	if c.Row == s.scrollBottom {
		g.ScrollUp(s.scrollTop, s.scrollBottom+1, 1)
	} else if c.Row < g.Rows()-1 {
		c.Row++
	}
	g.SetWrapped(c.Row, true)
}

func (s *Screen) translateLineDrawing(r rune) rune {
	switch r {
	case 'j':
		return '┘'
	case 'k':
		return '┐'
	case 'l':
		return '┌'
	case 'm':
		return '└'
	case 'n':
		return '┼'
	case 'q':
		return '─'
	case 't':
		return '├'
	case 'u':
		return '┤'
	case 'v':
		return '┴'
	case 'w':
		return '┬'
	case 'x':
		return '│'
	default:
		return r
	}
}

// Backspace moves the cursor one column left, stopping at column 0, and
// resolves any pending wrap without moving to the next line.
func (s *Screen) Backspace() {
	if s.cursor.Col > 0 {
		s.cursor.Col--
	}
	s.cursor.pendingWrap = false
}

func (s *Screen) Bell() { s.bell.Ring() }

// CarriageReturn moves the cursor to column 0 and resolves any pending wrap.
func (s *Screen) CarriageReturn() {
	s.cursor.Col = 0
	s.cursor.pendingWrap = false
}

func (s *Screen) ClearLine(mode ansicode.LineClearMode) {
	g := s.active()
	c := s.cursor
	switch mode {
	case ansicode.LineClearModeRight:
		g.ClearRowRange(c.Row, c.Col, g.Cols())
	case ansicode.LineClearModeLeft:
		g.ClearRowRange(c.Row, 0, c.Col+1)
	case ansicode.LineClearModeAll:
		g.ClearRow(c.Row)
	}
}

func (s *Screen) ClearScreen(mode ansicode.ClearMode) {
	g := s.active()
	c := s.cursor
	switch mode {
	case ansicode.ClearModeBelow:
		g.ClearRowRange(c.Row, c.Col, g.Cols())
		for row := c.Row + 1; row < g.Rows(); row++ {
			g.ClearRow(row)
		}
	case ansicode.ClearModeAbove:
		for row := 0; row < c.Row; row++ {
			g.ClearRow(row)
		}
		g.ClearRowRange(c.Row, 0, c.Col+1)
	case ansicode.ClearModeAll:
		g.ClearAll()
	case ansicode.ClearModeSaved:
		g.ClearAll()
		g.ClearScrollback()
	}
}

func (s *Screen) ClearTabs(mode ansicode.TabulationClearMode) {
	g := s.active()
	switch mode {
	case ansicode.TabulationClearModeCurrent:
		g.ClearTabStop(s.cursor.Col)
	case ansicode.TabulationClearModeAll:
		g.ClearAllTabStops()
	}
}

// ClipboardLoad reads from the clipboard provider and replies via OSC 52.
func (s *Screen) ClipboardLoad(clipboard byte, terminator string) {
	content := s.clipboard.Read(clipboard)
	if content == "" {
		return
	}
	encoded := base64.StdEncoding.EncodeToString([]byte(content))
	s.writeResponseString("\x1b]52;" + string(clipboard) + ";" + encoded + terminator)
}

func (s *Screen) ClipboardStore(clipboard byte, data []byte) {
	s.clipboard.Write(clipboard, truncateOSC(data))
}

func (s *Screen) ConfigureCharset(index ansicode.CharsetIndex, charset ansicode.Charset) {
	idx := CharsetIndex(index)
	if idx >= CharsetIndexG0 && idx <= CharsetIndexG3 {
		s.charsets[idx] = Charset(charset)
	}
}

func (s *Screen) Decaln() { s.active().FillWithE() }

func (s *Screen) DeleteChars(n int) {
	s.active().DeleteChars(s.cursor.Row, s.cursor.Col, n)
}

func (s *Screen) DeleteLines(n int) {
	c := s.cursor
	if c.Row >= s.scrollTop && c.Row <= s.scrollBottom {
		s.active().DeleteLines(c.Row, n, s.scrollBottom+1)
	}
}

func (s *Screen) DeviceStatus(n int) {
	var response string
	switch n {
	case 5:
		response = "\x1b[0n"
	case 6:
		response = fmt.Sprintf("\x1b[%d;%dR", s.cursor.Row+1, s.cursor.Col+1)
	}
	if response != "" {
		s.writeResponseString(response)
	}
}

func (s *Screen) EraseChars(n int) {
	g := s.active()
	for i := 0; i < n && s.cursor.Col+i < g.Cols(); i++ {
		if cell := g.Cell(s.cursor.Row, s.cursor.Col+i); cell != nil {
			cell.Reset()
			g.MarkDirty(s.cursor.Row, s.cursor.Col+i)
		}
	}
}

func (s *Screen) Goto(row, col int) {
	row = s.effectiveRow(row)
	s.cursor.Row = clamp(row, 0, s.active().Rows()-1)
	s.cursor.Col = clamp(col, 0, s.active().Cols()-1)
	s.cursor.pendingWrap = false
}

func (s *Screen) GotoCol(col int) {
	s.cursor.Col = clamp(col, 0, s.active().Cols()-1)
	s.cursor.pendingWrap = false
}

func (s *Screen) GotoLine(row int) {
	row = s.effectiveRow(row)
	s.cursor.Row = clamp(row, 0, s.active().Rows()-1)
	s.cursor.pendingWrap = false
}

func (s *Screen) HorizontalTabSet() { s.active().SetTabStop(s.cursor.Col) }

func (s *Screen) IdentifyTerminal(b byte) {
	s.writeResponseString("\x1b[?62;c")
}

func (s *Screen) InsertBlank(n int) {
	s.active().InsertBlanks(s.cursor.Row, s.cursor.Col, n)
}

func (s *Screen) InsertBlankLines(n int) {
	c := s.cursor
	if c.Row >= s.scrollTop && c.Row <= s.scrollBottom {
		s.active().InsertLines(c.Row, n, s.scrollBottom+1)
	}
}

// LineFeed moves the cursor down one row (honoring LNM for an implied
// carriage return) and marks the row as an explicit line rather than a
// wrap continuation. Like Backspace/CarriageReturn it clears the
// pending-wrap latch: an explicit newline always resolves any deferred
// wrap from the previous print, so the next glyph never triggers a
// second, spurious scroll on top of this one.
func (s *Screen) LineFeed() {
	g := s.active()
	s.cursor.pendingWrap = false
	if s.modes&ModeLineFeedNewLine != 0 {
		s.cursor.Col = 0
	}
	if s.cursor.Row == s.scrollBottom {
		g.ScrollUp(s.scrollTop, s.scrollBottom+1, 1)
	} else if s.cursor.Row < g.Rows()-1 {
		s.cursor.Row++
	}
	g.SetWrapped(s.cursor.Row, false)
}

func (s *Screen) MoveBackward(n int) {
	s.cursor.Col = clamp(s.cursor.Col-n, 0, s.active().Cols()-1)
	s.cursor.pendingWrap = false
}

func (s *Screen) MoveBackwardTabs(n int) {
	g := s.active()
	for i := 0; i < n; i++ {
		s.cursor.Col = g.PrevTabStop(s.cursor.Col)
	}
}

func (s *Screen) MoveDown(n int) {
	s.cursor.Row = clamp(s.cursor.Row+n, 0, s.active().Rows()-1)
}

func (s *Screen) MoveDownCr(n int) {
	s.cursor.Row = clamp(s.cursor.Row+n, 0, s.active().Rows()-1)
	s.cursor.Col = 0
	s.cursor.pendingWrap = false
}

func (s *Screen) MoveForward(n int) {
	s.cursor.Col = clamp(s.cursor.Col+n, 0, s.active().Cols()-1)
	s.cursor.pendingWrap = false
}

func (s *Screen) MoveForwardTabs(n int) {
	g := s.active()
	for i := 0; i < n; i++ {
		s.cursor.Col = g.NextTabStop(s.cursor.Col)
	}
}

func (s *Screen) MoveUp(n int) {
	s.cursor.Row = clamp(s.cursor.Row-n, 0, s.active().Rows()-1)
}

func (s *Screen) MoveUpCr(n int) {
	s.cursor.Row = clamp(s.cursor.Row-n, 0, s.active().Rows()-1)
	s.cursor.Col = 0
	s.cursor.pendingWrap = false
}

// PopKeyboardMode and PushKeyboardMode maintain the kitty keyboard
// progressive-enhancement stack. Nothing in this codebase changes key
// encoding based on it (see keys.go); it is tracked so ReportKeyboardMode
// answers queries correctly.
func (s *Screen) PopKeyboardMode(n int) {
	for i := 0; i < n && len(s.keyboardModes) > 1; i++ {
		s.keyboardModes = s.keyboardModes[:len(s.keyboardModes)-1]
	}
}

func (s *Screen) PushKeyboardMode(mode ansicode.KeyboardMode) {
	s.keyboardModes = append(s.keyboardModes, mode)
}

func (s *Screen) PopTitle() {
	if len(s.titleStack) > 0 {
		s.title = s.titleStack[len(s.titleStack)-1]
		s.titleStack = s.titleStack[:len(s.titleStack)-1]
	}
	s.titleProv.PopTitle()
}

func (s *Screen) PushTitle() {
	s.titleStack = append(s.titleStack, s.title)
	s.titleProv.PushTitle()
}

func (s *Screen) PrivacyMessageReceived(data []byte) { s.pm.Receive(truncateOSC(data)) }

func (s *Screen) ReportKeyboardMode() {
	mode := s.keyboardModes[len(s.keyboardModes)-1]
	s.writeResponseString(fmt.Sprintf("\x1b[?%du", mode))
}

func (s *Screen) ReportModifyOtherKeys() {
	s.writeResponseString(fmt.Sprintf("\x1b[>4;%dm", s.modifyOtherKeys))
}

// ResetColor removes a palette override, reverting index to its default.
func (s *Screen) ResetColor(i int) {
	if i >= 0 && i <= 255 {
		s.palette[i] = DefaultPalette[i]
	}
}

func (s *Screen) ResetState() {
	s.active().ClearAll()
	s.cursor.Row, s.cursor.Col = 0, 0
	s.cursor.Visible = true
	s.cursor.Shape = CursorShapeBlock
	s.cursor.Blink = true
	s.cursor.pendingWrap = false

	s.template = NewCellTemplate()
	s.scrollTop = 0
	s.scrollBottom = s.active().Rows() - 1
	s.modes = defaultModes()

	s.charsets = [4]Charset{}
	s.activeCharset = 0

	s.palette = DefaultPalette
	s.keyboardModes = []ansicode.KeyboardMode{0}
}

func (s *Screen) RestoreCursorPosition() { s.restoreCursorLocked() }

func (s *Screen) restoreCursorLocked() {
	if s.savedCursor == nil {
		return
	}
	s.cursor.Row = s.savedCursor.Row
	s.cursor.Col = s.savedCursor.Col
	s.cursor.pendingWrap = s.savedCursor.PendingWrap
	s.template = s.savedCursor.Attrs

	if s.savedCursor.OriginMode {
		s.modes |= ModeOrigin
	} else {
		s.modes &^= ModeOrigin
	}

	s.activeCharset = s.savedCursor.CharsetIndex
	s.charsets = s.savedCursor.Charsets
}

func (s *Screen) ReverseIndex() {
	if s.cursor.Row == s.scrollTop {
		s.active().ScrollDown(s.scrollTop, s.scrollBottom+1, 1)
	} else if s.cursor.Row > 0 {
		s.cursor.Row--
	}
}

func (s *Screen) SaveCursorPosition() { s.saveCursorLocked() }

func (s *Screen) saveCursorLocked() {
	s.savedCursor = &SavedCursor{
		Row:          s.cursor.Row,
		Col:          s.cursor.Col,
		Attrs:        s.template,
		OriginMode:   s.modes&ModeOrigin != 0,
		CharsetIndex: s.activeCharset,
		Charsets:     s.charsets,
		PendingWrap:  s.cursor.pendingWrap,
	}
}

func (s *Screen) ScrollDown(n int) { s.active().ScrollDown(s.scrollTop, s.scrollBottom+1, n) }
func (s *Screen) ScrollUp(n int)   { s.active().ScrollUp(s.scrollTop, s.scrollBottom+1, n) }

func (s *Screen) SetActiveCharset(n int) {
	if n >= 0 && n < 4 {
		s.activeCharset = n
	}
}

// SetColor installs a palette override (OSC 4) at index, for the rest of
// the session or until ResetColor. c is converted to RGBA immediately,
// matching the rest of the codebase's eager color resolution.
func (s *Screen) SetColor(index int, c color.Color) {
	if index < 0 || index > 255 {
		return
	}
	r, g, b, _ := c.RGBA()
	s.palette[index] = color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 255}
}

func (s *Screen) SetCursorStyle(style ansicode.CursorStyle) {
	n := int(style)
	s.cursor.Shape = CursorShape(n / 2)
	s.cursor.Blink = n%2 == 0
}

// SetDynamicColor answers an OSC 10/11/12 query with the current value of
// foreground, background, or an indexed palette entry.
func (s *Screen) SetDynamicColor(prefix string, index int, terminator string) {
	var rgba color.RGBA
	switch {
	case index == namedForeground:
		rgba = DefaultForeground
	case index == namedBackground:
		rgba = DefaultBackground
	case index == namedCursor:
		rgba = DefaultCursorColor
	case index >= 0 && index < 256:
		rgba = s.palette[index]
	default:
		return
	}
	s.writeResponseString(fmt.Sprintf("\x1b]%s;rgb:%02x/%02x/%02x%s", prefix, rgba.R, rgba.G, rgba.B, terminator))
}

// SetHyperlink is a vestigial stub: the cell model carries no hyperlink
// field (not in scope), so OSC 8 is accepted and discarded.
func (s *Screen) SetHyperlink(hyperlink *ansicode.Hyperlink) {}

func (s *Screen) SetKeyboardMode(mode ansicode.KeyboardMode, behavior ansicode.KeyboardModeBehavior) {
	current := s.keyboardModes[len(s.keyboardModes)-1]

	var next ansicode.KeyboardMode
	switch behavior {
	case ansicode.KeyboardModeBehaviorReplace:
		next = mode
	case ansicode.KeyboardModeBehaviorUnion:
		next = current | mode
	case ansicode.KeyboardModeBehaviorDifference:
		next = current &^ mode
	}
	s.keyboardModes[len(s.keyboardModes)-1] = next
}

func (s *Screen) SetKeypadApplicationMode()   { s.modes |= ModeKeypadApplication }
func (s *Screen) UnsetKeypadApplicationMode() { s.modes &^= ModeKeypadApplication }

func (s *Screen) SetMode(mode ansicode.TerminalMode)   { s.setModeLocked(mode, true) }
func (s *Screen) UnsetMode(mode ansicode.TerminalMode) { s.setModeLocked(mode, false) }

func (s *Screen) setModeLocked(mode ansicode.TerminalMode, set bool) {
	var m Mode

	switch mode {
	case ansicode.TerminalModeCursorKeys:
		m = ModeCursorKeys
	case ansicode.TerminalModeInsert:
		m = ModeInsert
	case ansicode.TerminalModeOrigin:
		m = ModeOrigin
		if set {
			s.cursor.Row = s.scrollTop
			s.cursor.Col = 0
		}
	case ansicode.TerminalModeLineWrap:
		m = ModeAutoWrap
	case ansicode.TerminalModeBlinkingCursor:
		m = ModeBlinkingCursor
	case ansicode.TerminalModeLineFeedNewLine:
		m = ModeLineFeedNewLine
	case ansicode.TerminalModeShowCursor:
		m = ModeShowCursor
		s.cursor.Visible = set
	case ansicode.TerminalModeReportMouseClicks:
		m = ModeMouseNormal
	case ansicode.TerminalModeReportCellMouseMotion:
		m = ModeMouseButton
	case ansicode.TerminalModeReportAllMouseMotion:
		m = ModeMouseAny
	case ansicode.TerminalModeSGRMouse:
		m = ModeMouseSGR
	case ansicode.TerminalModeSwapScreenAndSetRestoreCursor:
		m = ModeAltScreen
		if set {
			s.saveCursorLocked()
			s.altActive = true
			s.alternate.ClearAll()
		} else {
			s.altActive = false
			s.restoreCursorLocked()
		}
	case ansicode.TerminalModeBracketedPaste:
		m = ModeBracketedPaste
	default:
		return
	}

	if set {
		s.modes |= m
	} else {
		s.modes &^= m
	}
}

func (s *Screen) SetModifyOtherKeys(modify ansicode.ModifyOtherKeys) {
	s.modifyOtherKeys = modify
}

func (s *Screen) SetScrollingRegion(top, bottom int) {
	top--
	rows := s.active().Rows()

	if top < 0 {
		top = 0
	}
	if bottom <= 0 || bottom > rows {
		bottom = rows - 1
	} else {
		bottom--
	}
	if top >= bottom {
		return
	}

	s.scrollTop = top
	s.scrollBottom = bottom

	if s.modes&ModeOrigin != 0 {
		s.cursor.Row = s.scrollTop
	} else {
		s.cursor.Row = 0
	}
	s.cursor.Col = 0
	s.cursor.pendingWrap = false
}

func (s *Screen) StartOfStringReceived(data []byte) { s.sos.Receive(truncateOSC(data)) }

// SetTerminalCharAttribute applies one SGR parameter to the rendition
// template used by subsequent Input calls. Underline and blink variants
// the cell model doesn't distinguish collapse onto their single flag.
func (s *Screen) SetTerminalCharAttribute(attr ansicode.TerminalCharAttribute) {
	switch attr.Attr {
	case ansicode.CharAttributeReset:
		s.template = NewCellTemplate()

	case ansicode.CharAttributeBold:
		s.template.SetFlag(CellFlagBold)
	case ansicode.CharAttributeDim:
		s.template.SetFlag(CellFlagDim)
	case ansicode.CharAttributeItalic:
		s.template.SetFlag(CellFlagItalic)

	case ansicode.CharAttributeUnderline,
		ansicode.CharAttributeDoubleUnderline,
		ansicode.CharAttributeCurlyUnderline,
		ansicode.CharAttributeDottedUnderline,
		ansicode.CharAttributeDashedUnderline:
		s.template.SetFlag(CellFlagUnderline)

	case ansicode.CharAttributeBlinkSlow, ansicode.CharAttributeBlinkFast:
		s.template.SetFlag(CellFlagBlink)

	case ansicode.CharAttributeReverse:
		s.template.SetFlag(CellFlagReverse)
	case ansicode.CharAttributeHidden:
		s.template.SetFlag(CellFlagHidden)
	case ansicode.CharAttributeStrike:
		s.template.SetFlag(CellFlagStrike)

	case ansicode.CharAttributeCancelBold:
		s.template.ClearFlag(CellFlagBold)
	case ansicode.CharAttributeCancelBoldDim:
		s.template.ClearFlag(CellFlagBold | CellFlagDim)
	case ansicode.CharAttributeCancelItalic:
		s.template.ClearFlag(CellFlagItalic)
	case ansicode.CharAttributeCancelUnderline:
		s.template.ClearFlag(CellFlagUnderline)
	case ansicode.CharAttributeCancelBlink:
		s.template.ClearFlag(CellFlagBlink)
	case ansicode.CharAttributeCancelReverse:
		s.template.ClearFlag(CellFlagReverse)
	case ansicode.CharAttributeCancelHidden:
		s.template.ClearFlag(CellFlagHidden)
	case ansicode.CharAttributeCancelStrike:
		s.template.ClearFlag(CellFlagStrike)

	case ansicode.CharAttributeForeground:
		s.template.Fg = s.resolveColor(attr, true)
	case ansicode.CharAttributeBackground:
		s.template.Bg = s.resolveColor(attr, false)

	case ansicode.CharAttributeUnderlineColor:
		// Not tracked separately from Fg (no underline-color field on Cell).
	}
}

// resolveColor resolves an SGR color attribute directly to RGBA against
// the active palette, rather than boxing an indexed/named reference for
// later resolution.
func (s *Screen) resolveColor(attr ansicode.TerminalCharAttribute, fg bool) color.RGBA {
	if attr.RGBColor != nil {
		return RGB(attr.RGBColor.R, attr.RGBColor.G, attr.RGBColor.B)
	}
	if attr.IndexedColor != nil {
		if fg {
			return s.palette.Indexed(int(attr.IndexedColor.Index), DefaultForeground)
		}
		return s.palette.Indexed(int(attr.IndexedColor.Index), DefaultBackground)
	}
	if attr.NamedColor != nil {
		return ResolveNamed(int(*attr.NamedColor), &s.palette, fg)
	}
	if fg {
		return DefaultForeground
	}
	return DefaultBackground
}

func (s *Screen) SetTitle(title string) {
	if len(title) > maxOSCBytes {
		title = title[:maxOSCBytes]
	}
	s.title = title
	s.titleProv.SetTitle(title)
}

func (s *Screen) Substitute() {
	if cell := s.active().Cell(s.cursor.Row, s.cursor.Col); cell != nil {
		cell.Char = '?'
		s.active().MarkDirty(s.cursor.Row, s.cursor.Col)
	}
}

func (s *Screen) Tab(n int) {
	g := s.active()
	for i := 0; i < n; i++ {
		s.cursor.Col = g.NextTabStop(s.cursor.Col)
	}
}

func (s *Screen) TextAreaSizeChars() {
	rows, cols := s.dimensions()
	s.writeResponseString(fmt.Sprintf("\x1b[8;%d;%dt", rows, cols))
}

// TextAreaSizePixels assumes a fixed 10x20 pixel cell; actual cell metrics
// are a host/renderer concern outside this package's scope.
func (s *Screen) TextAreaSizePixels() {
	rows, cols := s.dimensions()
	s.writeResponseString(fmt.Sprintf("\x1b[4;%d;%dt", rows*20, cols*10))
}

// CellSizePixels reports the same fixed 10x20 cell assumption as
// TextAreaSizePixels.
func (s *Screen) CellSizePixels() {
	s.writeResponseString("\x1b[6;20;10t")
}

// SixelReceived is a no-op: Sixel/iTerm2 image protocols are out of scope.
func (s *Screen) SixelReceived(params [][]uint16, data []byte) {}

// ApplicationCommandReceived forwards an APC payload to the configured
// provider. Kitty's graphics protocol also arrives as an APC starting with
// 'G'; image display is out of scope, so it is delivered unchanged to the
// provider like any other APC payload.
func (s *Screen) ApplicationCommandReceived(data []byte) {
	s.apc.Receive(truncateOSC(data))
}

// SetWorkingDirectory records the shell's current directory (OSC 7). No
// component currently consumes it; it is kept for a host that wants to
// seed a new pane's starting directory.
func (s *Screen) SetWorkingDirectory(uri string) { s.workingDir = uri }

// WorkingDirectory returns the URI last reported via OSC 7.
func (s *Screen) WorkingDirectory() string { return s.workingDir }
