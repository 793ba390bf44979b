package myterm

import (
	"testing"
)

func TestSnapshot_Text(t *testing.T) {
	s := New(3, 10)
	s.WriteString("Hello")
	s.WriteString("\x1b[2;1H") // move to row 2, col 1
	s.WriteString("World")

	snap := s.Snapshot(SnapshotDetailText)

	if snap.Size.Rows != 3 {
		t.Errorf("Size.Rows = %d, want 3", snap.Size.Rows)
	}
	if snap.Size.Cols != 10 {
		t.Errorf("Size.Cols = %d, want 10", snap.Size.Cols)
	}
	if len(snap.Lines) != 3 {
		t.Fatalf("len(Lines) = %d, want 3", len(snap.Lines))
	}

	if snap.Lines[0].Text != "Hello" {
		t.Errorf("Lines[0].Text = %q, want %q", snap.Lines[0].Text, "Hello")
	}
	if snap.Lines[1].Text != "World" {
		t.Errorf("Lines[1].Text = %q, want %q", snap.Lines[1].Text, "World")
	}

	if snap.Lines[0].Segments != nil {
		t.Error("text mode should not have segments")
	}
	if snap.Lines[0].Cells != nil {
		t.Error("text mode should not have cells")
	}
}

func TestSnapshot_Cursor(t *testing.T) {
	s := New(5, 10)
	s.WriteString("ABC")

	snap := s.Snapshot(SnapshotDetailText)

	if snap.Cursor.Row != 0 {
		t.Errorf("Cursor.Row = %d, want 0", snap.Cursor.Row)
	}
	if snap.Cursor.Col != 3 {
		t.Errorf("Cursor.Col = %d, want 3", snap.Cursor.Col)
	}
	if !snap.Cursor.Visible {
		t.Error("Cursor.Visible = false, want true")
	}
	if snap.Cursor.Style != "block" {
		t.Errorf("Cursor.Style = %q, want %q", snap.Cursor.Style, "block")
	}
}

func TestSnapshot_Styled(t *testing.T) {
	s := New(3, 20)
	s.WriteString("\x1b[31mRed\x1b[0m Normal \x1b[32mGreen\x1b[0m")

	snap := s.Snapshot(SnapshotDetailStyled)
	line := snap.Lines[0]

	if len(line.Segments) < 3 {
		t.Fatalf("expected at least 3 segments, got %d", len(line.Segments))
	}
	if line.Segments[0].Text != "Red" {
		t.Errorf("Segments[0].Text = %q, want %q", line.Segments[0].Text, "Red")
	}
	if line.Cells != nil {
		t.Error("styled mode should not have cells")
	}
}

func TestSnapshot_Full(t *testing.T) {
	s := New(3, 10)
	s.WriteString("Hi")

	snap := s.Snapshot(SnapshotDetailFull)
	line := snap.Lines[0]

	if len(line.Cells) != 10 {
		t.Fatalf("expected 10 cells, got %d", len(line.Cells))
	}
	if line.Cells[0].Char != "H" {
		t.Errorf("Cells[0].Char = %q, want %q", line.Cells[0].Char, "H")
	}
	if line.Cells[1].Char != "i" {
		t.Errorf("Cells[1].Char = %q, want %q", line.Cells[1].Char, "i")
	}
	if line.Cells[2].Char != " " {
		t.Errorf("Cells[2].Char = %q, want %q", line.Cells[2].Char, " ")
	}
}

func TestSnapshot_Attributes(t *testing.T) {
	s := New(3, 20)
	s.WriteString("\x1b[1mBold\x1b[0m")

	snap := s.Snapshot(SnapshotDetailFull)
	if len(snap.Lines[0].Cells) < 4 {
		t.Fatal("expected at least 4 cells")
	}
	for i := 0; i < 4; i++ {
		if !snap.Lines[0].Cells[i].Attributes.Bold {
			t.Errorf("Cell[%d] should be bold", i)
		}
	}
}

func TestSnapshot_WideChar(t *testing.T) {
	s := New(3, 10)
	s.WriteString("中")

	snap := s.Snapshot(SnapshotDetailFull)
	if len(snap.Lines[0].Cells) < 2 {
		t.Fatal("expected at least 2 cells")
	}
	if !snap.Lines[0].Cells[0].Wide {
		t.Error("Cell[0] should be wide")
	}
	if !snap.Lines[0].Cells[1].WideSpacer {
		t.Error("Cell[1] should be wide spacer")
	}
}

func TestColorToHex(t *testing.T) {
	tests := []struct {
		name     string
		color    interface{ RGBA() (r, g, b, a uint32) }
		expected string
	}{
		{"black", DefaultBackground, "#000000"},
		{"white", RGB(255, 255, 255), "#ffffff"},
		{"red", RGB(255, 0, 0), "#ff0000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := colorToHex(tt.color)
			if result != tt.expected {
				t.Errorf("colorToHex(%v) = %q, want %q", tt.color, result, tt.expected)
			}
		})
	}
}

func TestCursorStyleToString(t *testing.T) {
	tests := []struct {
		shape    CursorShape
		blink    bool
		expected string
	}{
		{CursorShapeBlock, true, "block"},
		{CursorShapeBlock, false, "steady-block"},
		{CursorShapeUnderline, true, "underline"},
		{CursorShapeUnderline, false, "steady-underline"},
		{CursorShapeBeam, true, "bar"},
		{CursorShapeBeam, false, "steady-bar"},
	}

	for _, tt := range tests {
		result := cursorStyleToString(tt.shape, tt.blink)
		if result != tt.expected {
			t.Errorf("cursorStyleToString(%v, %v) = %q, want %q", tt.shape, tt.blink, result, tt.expected)
		}
	}
}

func TestSnapshot_EmptyScreen(t *testing.T) {
	s := New(3, 10)

	snap := s.Snapshot(SnapshotDetailText)

	if snap.Size.Rows != 3 {
		t.Errorf("Size.Rows = %d, want 3", snap.Size.Rows)
	}
	if len(snap.Lines) != 3 {
		t.Errorf("len(Lines) = %d, want 3", len(snap.Lines))
	}
	for i, line := range snap.Lines {
		if line.Text != "" {
			t.Errorf("Lines[%d].Text = %q, want empty", i, line.Text)
		}
	}
}

func TestSnapshot_StyledSegments(t *testing.T) {
	s := New(3, 30)
	s.WriteString("\x1b[31mRedText\x1b[0m")

	snap := s.Snapshot(SnapshotDetailStyled)
	if len(snap.Lines[0].Segments) < 1 {
		t.Fatal("expected at least 1 segment")
	}
	if snap.Lines[0].Segments[0].Text != "RedText" {
		t.Errorf("Segments[0].Text = %q, want %q", snap.Lines[0].Segments[0].Text, "RedText")
	}
}
