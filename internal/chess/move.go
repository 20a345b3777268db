package chess

// Move is a from/to square pair with an optional promotion piece type.
// Promotion is Empty unless a pawn reaches the last rank.
type Move struct {
	From      Square
	To        Square
	Promotion Piece
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Promotion != Empty
}

// String returns the move in long algebraic form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += string(rune(m.Promotion.Letter() + 'a' - 'A'))
	}
	return s
}
