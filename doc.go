// Package myterm implements a VT100/ECMA-48 terminal core: a Screen that
// interprets a byte stream of ANSI escape sequences into a grid of cells,
// a PTY conduit that forks a shell behind a pseudo-terminal, a key encoder
// that turns keystrokes into the bytes a shell expects, and an Engine that
// ties the two together in a single-writer event loop.
//
// # Quick start
//
//	screen := myterm.New(24, 80)
//	screen.WriteString("\x1b[31mHello \x1b[32mWorld\x1b[0m!")
//	fmt.Println(screen.LineContent(0)) // "Hello World!"
//
// # Running a shell
//
//	pt, err := myterm.NewPTY("/bin/bash", nil, 24, 80, myterm.WithTrueColor())
//	screen := myterm.New(24, 80)
//	engine := myterm.NewEngine(pt, screen, 5*time.Second)
//	go engine.Run(ctx)
//	engine.SubmitKey(myterm.CharKey('l'))
//	engine.SubmitResize(1200, 800, 10, 20) // width/height px, cell w/h px
//
// # Architecture
//
//   - [Screen]: processes ANSI sequences and owns the two grids (primary,
//     alternate), the cursor, palette, and rendition template.
//   - [Grid]: a 2D array of [Cell] with scrollback and dirty tracking.
//   - [PTY]: owns the forked shell and its pseudo-terminal master.
//   - [Key]/[Engine]: keystroke encoding and the PTY/Screen event loop.
//
// # Dual screens
//
// A Screen holds a primary grid (with optional scrollback) and an
// alternate grid used by full-screen applications (vim, less, htop) with
// no scrollback of its own. CSI ?1049h/l switches between them:
//
//	if screen.IsAlternateScreen() {
//	    // a full-screen app is running
//	}
//
// # Cells and colors
//
// Each cell carries a character, up to two combining marks, resolved
// foreground/background [image/color.RGBA] values, and a flag bitmask:
//
//	cell := screen.Cell(row, col)
//	fmt.Printf("%c bold=%v fg=%v\n", cell.Char, cell.HasFlag(myterm.CellFlagBold), cell.Fg)
//
// Colors are resolved to RGBA immediately when an SGR sequence is applied,
// against the Screen's mutable [Palette] (its entries can be overridden
// with OSC 4); cells never carry an unresolved color reference.
//
// # Scrollback
//
// Rows scrolled off the top of the primary grid are retained up to a
// configurable limit:
//
//	screen := myterm.New(24, 80, myterm.WithScrollback(10000))
//	for i := 0; i < screen.ScrollbackLen(); i++ {
//	    line := screen.ScrollbackLine(i)
//	}
//
// # Providers
//
// Providers handle terminal events with no-op defaults when not supplied:
//
//   - [BellProvider]: bell/beep events
//   - [TitleProvider]: window title changes (OSC 0/1/2) and the title stack
//   - [ClipboardProvider]: clipboard read/write (OSC 52)
//   - [ScrollbackProvider]: custom scrolled-off-row storage
//   - [APCProvider], [PMProvider], [SOSProvider]: APC/PM/SOS string payloads
//
//	screen := myterm.New(24, 80,
//	    myterm.WithResponseProvider(pty),
//	    myterm.WithBellProvider(&mybell{}),
//	)
//
// # Modes
//
// Terminal behavior is controlled by mode flags:
//
//	screen.Modes()&myterm.ModeAutoWrap != 0
//	screen.Modes()&myterm.ModeShowCursor != 0
//	screen.Modes()&myterm.ModeBracketedPaste != 0
//
// # Dirty tracking
//
//	if screen.HasDirty() {
//	    for _, pos := range screen.DirtyCells() {
//	        // redraw cell at pos.Row, pos.Col
//	    }
//	    screen.ClearDirty()
//	}
//
// # Selection and search
//
//	screen.SetSelection(myterm.Position{Row: 0, Col: 0}, myterm.Position{Row: 2, Col: 10})
//	text := screen.GetSelectedText()
//	screen.ClearSelection()
//
//	matches := screen.Search("error")
//	scrollbackMatches := screen.SearchScrollback("error")
//
// # Snapshots
//
//	snap := screen.Snapshot(myterm.SnapshotDetailText)
//	snap = screen.Snapshot(myterm.SnapshotDetailStyled) // with style runs
//	snap = screen.Snapshot(myterm.SnapshotDetailFull)    // full cell data
//
// # Keys
//
// [Key] encodes a keystroke the way a real terminal would before writing
// it to the PTY (control characters for Ctrl+letter, CSI/SS3 sequences for
// navigation and function keys):
//
//	engine.SubmitKey(myterm.CtrlKey('c'))
//	k, err := myterm.ParseKeyBinding("Ctrl+Alt+k")
//
// # Thread safety
//
// Screen guards its state with an internal sync.RWMutex: Write and Resize
// take it exclusively, and every read-only accessor (Cell, Dimensions,
// Cursor, Snapshot, ...) takes it for reading, so a renderer goroutine can
// safely poll Screen while Engine.Run's goroutine feeds it PTY output. The
// [go-ansicode] Handler interface methods Engine.Run drives Write through
// are internal and must not be called directly from another goroutine.
//
// [go-ansicode]: https://github.com/danielgatis/go-ansicode
package myterm
