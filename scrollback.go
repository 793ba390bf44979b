package myterm

// RingScrollback is the default ScrollbackProvider: a bounded in-memory
// FIFO of rows. When Push exceeds maxLines, the oldest row is discarded.
type RingScrollback struct {
	lines    [][]Cell
	maxLines int
}

// NewRingScrollback creates a scrollback buffer retaining at most maxLines
// rows. A non-positive maxLines disables retention (Push becomes a no-op).
func NewRingScrollback(maxLines int) *RingScrollback {
	if maxLines < 0 {
		maxLines = 0
	}
	return &RingScrollback{maxLines: maxLines}
}

// Push appends line, evicting the oldest row if the buffer is at capacity.
// line is copied so later grid mutation cannot alter a stored row.
func (s *RingScrollback) Push(line []Cell) {
	if s.maxLines <= 0 {
		return
	}
	row := make([]Cell, len(line))
	for i, c := range line {
		row[i] = c.Copy()
	}
	s.lines = append(s.lines, row)
	if over := len(s.lines) - s.maxLines; over > 0 {
		s.lines = s.lines[over:]
	}
}

// Len returns the number of stored rows.
func (s *RingScrollback) Len() int { return len(s.lines) }

// Line returns the row at index (0 is the oldest), or nil if out of range.
func (s *RingScrollback) Line(index int) []Cell {
	if index < 0 || index >= len(s.lines) {
		return nil
	}
	return s.lines[index]
}

// Clear discards all stored rows.
func (s *RingScrollback) Clear() {
	s.lines = nil
}

// SetMaxLines changes the retention limit, trimming the oldest rows if the
// new limit is smaller than the current contents.
func (s *RingScrollback) SetMaxLines(max int) {
	if max < 0 {
		max = 0
	}
	s.maxLines = max
	if over := len(s.lines) - s.maxLines; over > 0 {
		s.lines = s.lines[over:]
	}
}

// MaxLines returns the current retention limit.
func (s *RingScrollback) MaxLines() int { return s.maxLines }

var _ ScrollbackProvider = (*RingScrollback)(nil)
