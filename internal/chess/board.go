package chess

import "fmt"

// Board dimensions.
const (
	BoardSize = 8

	FileBase = 'a'
	RankBase = '1'
)

// Square addresses one board cell. Row 0 is rank 8 and row 7 is rank 1;
// Col 0 is file a and Col 7 is file h.
type Square struct {
	Row int
	Col int
}

// NoSquare marks an absent square, e.g. no en-passant target.
var NoSquare = Square{Row: -1, Col: -1}

// SquareAt returns the square for a file letter and rank digit.
func SquareAt(file, rank byte) Square {
	return Square{Row: BoardSize - 1 - int(rank-RankBase), Col: int(file - FileBase)}
}

// ParseSquare parses algebraic square text such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare, fmt.Errorf("invalid square %q", s)
	}
	return SquareAt(s[0], s[1]), nil
}

// OnBoard reports whether the square lies on the 8x8 grid.
func (s Square) OnBoard() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Offset returns the square dr rows and dc columns away.
func (s Square) Offset(dr, dc int) Square {
	return Square{Row: s.Row + dr, Col: s.Col + dc}
}

// File returns the file letter ('a'-'h').
func (s Square) File() byte {
	return byte(FileBase + s.Col)
}

// Rank returns the rank digit ('1'-'8').
func (s Square) Rank() byte {
	return byte(RankBase + BoardSize - 1 - s.Row)
}

// String returns the algebraic name of the square, or "-" when off board.
func (s Square) String() string {
	if !s.OnBoard() {
		return "-"
	}
	return string([]byte{s.File(), s.Rank()})
}

// Board is an 8x8 grid of coloured pieces indexed [row][col].
// It is a value: assigning a Board copies every cell.
type Board [BoardSize][BoardSize]Piece

// Get returns the piece at the given square.
func (b *Board) Get(sq Square) Piece {
	return b[sq.Row][sq.Col]
}

// Set places a piece at the given square.
func (b *Board) Set(sq Square, piece Piece) {
	b[sq.Row][sq.Col] = piece
}

// IsEmpty reports whether the square is empty.
func (b *Board) IsEmpty(sq Square) bool {
	return b[sq.Row][sq.Col] == Empty
}

// FindKings returns every square holding the king of the given colour.
func (b *Board) FindKings(colour Colour) []Square {
	king := MakeColouredPiece(colour, King)
	var found []Square
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b[row][col] == king {
				found = append(found, Square{Row: row, Col: col})
			}
		}
	}
	return found
}

// Position is a fully decoded FEN position minus the move counters.
type Position struct {
	Board     Board
	ToMove    Colour
	Castling  CastlingRights
	EnPassant Square // NoSquare when no en-passant capture is possible
}

// HasEnPassant reports whether an en-passant target is recorded.
func (p *Position) HasEnPassant() bool {
	return p.EnPassant.OnBoard()
}
