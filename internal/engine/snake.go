package engine

// Snake is a fixed-capacity body store. Index 0 is the head. Only the first
// length slots are live; the rest is scratch space reused when the snake grows
// and is never read.
type Snake struct {
	segments []Position // len == capacity, allocated once
	length   int
}

// newSnake allocates a snake with the given capacity and no live segments.
func newSnake(capacity int) Snake {
	return Snake{segments: make([]Position, capacity)}
}

// Len returns the number of live segments.
func (s *Snake) Len() int {
	return s.length
}

// Cap returns the maximum number of segments.
func (s *Snake) Cap() int {
	return len(s.segments)
}

// Head returns the first segment.
func (s *Snake) Head() Position {
	return s.segments[0]
}

// At returns live segment i. It panics if i is outside [0, Len()).
func (s *Snake) At(i int) Position {
	if i < 0 || i >= s.length {
		panic("engine: segment index out of range")
	}
	return s.segments[i]
}

// Segments returns a copy of the live segments in head-to-tail order.
func (s *Snake) Segments() []Position {
	out := make([]Position, s.length)
	copy(out, s.segments[:s.length])
	return out
}

// Occupies reports whether p coincides with a live segment.
func (s *Snake) Occupies(p Position) bool {
	for _, seg := range s.segments[:s.length] {
		if seg == p {
			return true
		}
	}
	return false
}

// reset lays out n segments from head, each one block further in the
// direction opposite to facing.
func (s *Snake) reset(head Position, n int, facing Direction, block Coord) {
	s.length = n
	p := head
	back := facing.Opposite()
	for i := range n {
		s.segments[i] = p
		p = p.Step(back, block)
	}
}

// shift moves every live segment one slot toward the tail and writes head at
// index 0. The former tail lands in the first scratch slot (when there is
// one) so that grow can adopt it.
func (s *Snake) shift(head Position) {
	n := min(s.length+1, len(s.segments))
	copy(s.segments[1:n], s.segments[:n-1])
	s.segments[0] = head
}

// grow extends the live length by one, up to capacity. It reports whether the
// snake actually grew.
func (s *Snake) grow() bool {
	if s.length >= len(s.segments) {
		return false
	}
	s.length++
	return true
}
