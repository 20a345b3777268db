// Package chess provides the core value types shared by the rules engine:
// colours, pieces, squares, boards, positions and moves.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// FENLetter returns the active-colour letter used in FEN ('w' or 'b').
func (c Colour) FENLetter() byte {
	if c == White {
		return 'w'
	}
	return 'b'
}

// Piece represents a piece type, or a coloured piece when built with
// MakeColouredPiece.
type Piece int

const (
	Empty Piece = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	Unknown // Unrecognized FEN letter; occupies a square but never moves
	NumPieceValues
)

// String returns the string representation of a piece type.
func (p Piece) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King", "Unknown"}
	if int(p) < len(names) {
		return names[p]
	}
	return "Invalid"
}

// Letter returns the single uppercase letter of a piece type.
func (p Piece) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K', '?'}
	if int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PromotionPieces lists the promotion choices in SAN emission order.
var PromotionPieces = [4]Piece{Queen, Rook, Bishop, Knight}

// PieceShift is used for encoding coloured pieces.
const PieceShift = 3

// MakeColouredPiece creates a coloured piece value.
func MakeColouredPiece(colour Colour, piece Piece) Piece {
	return Piece((int(piece) << PieceShift) | int(colour))
}

// W creates a white piece.
func W(piece Piece) Piece {
	return MakeColouredPiece(White, piece)
}

// B creates a black piece.
func B(piece Piece) Piece {
	return MakeColouredPiece(Black, piece)
}

// ExtractColour extracts the colour from a coloured piece.
// The result is meaningless for Empty.
func ExtractColour(colouredPiece Piece) Colour {
	return Colour(colouredPiece & 0x01)
}

// ExtractPiece extracts the piece type from a coloured piece.
func ExtractPiece(colouredPiece Piece) Piece {
	return Piece(colouredPiece >> PieceShift)
}

// IsColour reports whether cell holds a piece of the given colour.
func IsColour(cell Piece, colour Colour) bool {
	return cell != Empty && ExtractColour(cell) == colour
}

// CastlingRights is a bit set of the four castling options.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// Has reports whether every right in r is held.
func (c CastlingRights) Has(r CastlingRights) bool {
	return c&r == r
}

// String returns the FEN castling field for the rights.
func (c CastlingRights) String() string {
	if c == NoCastling {
		return "-"
	}
	var b []byte
	for _, f := range castlingFlags {
		if c.Has(f.right) {
			b = append(b, f.letter)
		}
	}
	return string(b)
}

var castlingFlags = []struct {
	right  CastlingRights
	letter byte
}{
	{WhiteKingside, 'K'},
	{WhiteQueenside, 'Q'},
	{BlackKingside, 'k'},
	{BlackQueenside, 'q'},
}

// CastlingRightFor returns the right matching a FEN castling letter.
func CastlingRightFor(letter byte) (CastlingRights, bool) {
	for _, f := range castlingFlags {
		if f.letter == letter {
			return f.right, true
		}
	}
	return NoCastling, false
}

// Kingside returns the kingside right of a colour.
func Kingside(colour Colour) CastlingRights {
	if colour == White {
		return WhiteKingside
	}
	return BlackKingside
}

// Queenside returns the queenside right of a colour.
func Queenside(colour Colour) CastlingRights {
	if colour == White {
		return WhiteQueenside
	}
	return BlackQueenside
}

// HomeRow returns the board row of a colour's back rank.
func HomeRow(colour Colour) int {
	if colour == White {
		return 7
	}
	return 0
}

// ColourOffset returns the row step of a colour's pawn advance:
// -1 for White (towards row 0), +1 for Black.
func ColourOffset(colour Colour) int {
	if colour == White {
		return -1
	}
	return 1
}
