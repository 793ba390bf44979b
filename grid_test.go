package myterm

import "testing"

func TestNewGrid(t *testing.T) {
	g := NewGrid(5, 10)

	if g.Rows() != 5 || g.Cols() != 10 {
		t.Fatalf("Rows/Cols = %d/%d, want 5/10", g.Rows(), g.Cols())
	}
	for row := 0; row < 5; row++ {
		for col := 0; col < 10; col++ {
			cell := g.Cell(row, col)
			if cell.Char != ' ' {
				t.Fatalf("cell(%d,%d) = %q, want space", row, col, cell.Char)
			}
		}
	}
}

func TestGridSetCellMarksDirty(t *testing.T) {
	g := NewGrid(3, 3)

	if g.HasDirty() {
		t.Fatal("new grid should not be dirty")
	}

	cell := NewCell()
	cell.Char = 'X'
	g.SetCell(1, 1, cell)

	if !g.HasDirty() {
		t.Fatal("expected dirty after SetCell")
	}
	if g.Cell(1, 1).Char != 'X' {
		t.Fatalf("Cell(1,1).Char = %q, want X", g.Cell(1, 1).Char)
	}

	positions := g.DirtyCells()
	if len(positions) != 1 || !positions[0].Equal(Position{Row: 1, Col: 1}) {
		t.Fatalf("DirtyCells = %v, want [{1 1}]", positions)
	}

	g.ClearAllDirty()
	if g.HasDirty() {
		t.Fatal("expected not dirty after ClearAllDirty")
	}
}

func TestGridClearRow(t *testing.T) {
	g := NewGrid(2, 5)
	cell := NewCell()
	cell.Char = 'Z'
	for col := 0; col < 5; col++ {
		g.SetCell(0, col, cell)
	}

	g.ClearRow(0)

	for col := 0; col < 5; col++ {
		if g.Cell(0, col).Char != ' ' {
			t.Fatalf("expected cleared row, got %q at col %d", g.Cell(0, col).Char, col)
		}
	}
}

func TestGridScrollUpPushesScrollback(t *testing.T) {
	storage := NewRingScrollback(10)
	g := NewGridWithStorage(3, 4, storage)

	cell := NewCell()
	cell.Char = 'A'
	g.SetCell(0, 0, cell)

	g.ScrollUp(0, 3, 1)

	if storage.Len() != 1 {
		t.Fatalf("ScrollbackLen = %d, want 1", storage.Len())
	}
	line := storage.Line(0)
	if line[0].Char != 'A' {
		t.Fatalf("scrollback line[0] char = %q, want A", line[0].Char)
	}

	// The evicted row's cells must be a copy, independent of the live grid.
	cell2 := NewCell()
	cell2.Char = 'B'
	g.SetCell(0, 0, cell2)
	if line[0].Char != 'A' {
		t.Fatal("scrollback row should be independent of later grid mutation")
	}
}

func TestGridScrollUpRestrictedRegionSkipsScrollback(t *testing.T) {
	storage := NewRingScrollback(10)
	g := NewGridWithStorage(5, 4, storage)

	// Scrolling a region that doesn't start at row 0 never feeds scrollback.
	g.ScrollUp(1, 4, 1)

	if storage.Len() != 0 {
		t.Fatalf("ScrollbackLen = %d, want 0 for restricted-region scroll", storage.Len())
	}
}

func TestGridInsertDeleteLines(t *testing.T) {
	g := NewGrid(4, 3)
	for row := 0; row < 4; row++ {
		cell := NewCell()
		cell.Char = rune('A' + row)
		g.SetCell(row, 0, cell)
	}

	g.InsertLines(1, 1, 4)

	if g.Cell(1, 0).Char != ' ' {
		t.Fatalf("Cell(1,0) = %q, want blank after insert", g.Cell(1, 0).Char)
	}
	if g.Cell(2, 0).Char != 'B' {
		t.Fatalf("Cell(2,0) = %q, want B shifted down", g.Cell(2, 0).Char)
	}

	g.DeleteLines(1, 1, 4)
	if g.Cell(1, 0).Char != 'B' {
		t.Fatalf("Cell(1,0) = %q, want B after delete", g.Cell(1, 0).Char)
	}
}

func TestGridInsertDeleteChars(t *testing.T) {
	g := NewGrid(1, 5)
	for col, ch := range []rune("ABCDE") {
		cell := NewCell()
		cell.Char = ch
		g.SetCell(0, col, cell)
	}

	g.InsertBlanks(0, 1, 2)
	if got := g.LineContent(0); got != "A  BC" {
		t.Fatalf("LineContent after insert = %q, want %q", got, "A  BC")
	}

	g.DeleteChars(0, 1, 2)
	if got := g.LineContent(0); got != "ABC" {
		t.Fatalf("LineContent after delete = %q, want %q", got, "ABC")
	}
}

func TestGridResizePreservesTopLeft(t *testing.T) {
	g := NewGrid(3, 3)
	cell := NewCell()
	cell.Char = 'Q'
	g.SetCell(0, 0, cell)

	g.Resize(5, 5)
	if g.Rows() != 5 || g.Cols() != 5 {
		t.Fatalf("Rows/Cols after resize = %d/%d, want 5/5", g.Rows(), g.Cols())
	}
	if g.Cell(0, 0).Char != 'Q' {
		t.Fatal("expected preserved top-left cell after growing")
	}

	g.Resize(2, 2)
	if g.Cell(0, 0).Char != 'Q' {
		t.Fatal("expected preserved top-left cell after shrinking")
	}
}

func TestGridTabStops(t *testing.T) {
	g := NewGrid(1, 40)

	if next := g.NextTabStop(0); next != 8 {
		t.Fatalf("NextTabStop(0) = %d, want 8 (default every-8 stops)", next)
	}

	g.ClearAllTabStops()
	g.SetTabStop(5)
	if next := g.NextTabStop(0); next != 5 {
		t.Fatalf("NextTabStop(0) = %d, want 5 after custom stop", next)
	}
	if prev := g.PrevTabStop(10); prev != 5 {
		t.Fatalf("PrevTabStop(10) = %d, want 5", prev)
	}

	g.ClearTabStop(5)
	if next := g.NextTabStop(0); next != g.Cols()-1 {
		t.Fatalf("NextTabStop(0) = %d, want last column with no stops set", next)
	}
}

func TestGridWrapTracking(t *testing.T) {
	g := NewGrid(2, 3)
	if g.IsWrapped(0) {
		t.Fatal("new row should not be marked wrapped")
	}
	g.SetWrapped(0, true)
	if !g.IsWrapped(0) {
		t.Fatal("expected row marked wrapped")
	}
}

func TestPositionOrdering(t *testing.T) {
	a := Position{Row: 0, Col: 5}
	b := Position{Row: 1, Col: 0}

	if !a.Before(b) {
		t.Fatal("expected row 0 before row 1")
	}
	if b.Before(a) {
		t.Fatal("row 1 should not be before row 0")
	}
	if !a.Equal(Position{Row: 0, Col: 5}) {
		t.Fatal("expected equal positions to compare equal")
	}
}
