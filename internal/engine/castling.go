package engine

import "github.com/lgbarn/termichess-go/internal/chess"

// castleSide describes the fixed geometry of one castling option.
type castleSide struct {
	right    chess.CastlingRights
	colour   chess.Colour
	kingFrom chess.Square
	kingTo   chess.Square
	rookFrom chess.Square
	rookTo   chess.Square
	between  []chess.Square // must be empty
	kingPath []chess.Square // start, transit and destination; must not be attacked
}

var castleSides = []castleSide{
	newCastleSide(chess.WhiteKingside, chess.White, 6, 7, 5),
	newCastleSide(chess.WhiteQueenside, chess.White, 2, 0, 3),
	newCastleSide(chess.BlackKingside, chess.Black, 6, 7, 5),
	newCastleSide(chess.BlackQueenside, chess.Black, 2, 0, 3),
}

func newCastleSide(right chess.CastlingRights, colour chess.Colour, kingToCol, rookFromCol, rookToCol int) castleSide {
	row := chess.HomeRow(colour)
	const kingFromCol = 4

	side := castleSide{
		right:    right,
		colour:   colour,
		kingFrom: chess.Square{Row: row, Col: kingFromCol},
		kingTo:   chess.Square{Row: row, Col: kingToCol},
		rookFrom: chess.Square{Row: row, Col: rookFromCol},
		rookTo:   chess.Square{Row: row, Col: rookToCol},
	}

	lo, hi := rookFromCol, kingFromCol
	if lo > hi {
		lo, hi = hi, lo
	}
	for col := lo + 1; col < hi; col++ {
		side.between = append(side.between, chess.Square{Row: row, Col: col})
	}

	step := sign(kingToCol - kingFromCol)
	for col := kingFromCol; col != kingToCol+step; col += step {
		side.kingPath = append(side.kingPath, chess.Square{Row: row, Col: col})
	}
	return side
}

// inPlace reports whether the king and rook stand on their home squares.
func (s castleSide) inPlace(board *chess.Board) bool {
	return board.Get(s.kingFrom) == chess.MakeColouredPiece(s.colour, chess.King) &&
		board.Get(s.rookFrom) == chess.MakeColouredPiece(s.colour, chess.Rook)
}

// pathClear reports whether every square between king and rook is empty.
func (s castleSide) pathClear(board *chess.Board) bool {
	for _, sq := range s.between {
		if !board.IsEmpty(sq) {
			return false
		}
	}
	return true
}

// kingPathSafe reports whether no square the king crosses is attacked.
func (s castleSide) kingPathSafe(board *chess.Board) bool {
	for _, sq := range s.kingPath {
		if IsAttacked(board, sq, s.colour) {
			return false
		}
	}
	return true
}

// castleSideFor returns the castling option a king move performs, if any.
func castleSideFor(m chess.Move) (castleSide, bool) {
	for _, side := range castleSides {
		if side.kingFrom == m.From && side.kingTo == m.To {
			return side, true
		}
	}
	return castleSide{}, false
}

// supportedCastling narrows rights to those whose king and rook are home.
func supportedCastling(board *chess.Board, rights chess.CastlingRights) chess.CastlingRights {
	supported := chess.NoCastling
	for _, side := range castleSides {
		if rights.Has(side.right) && side.inPlace(board) {
			supported |= side.right
		}
	}
	return supported
}

// appendCastlingMoves adds every castling move the side to move may make.
// Castling out of, through or into check is never generated.
func appendCastlingMoves(moves []chess.Move, pos *chess.Position) []chess.Move {
	for _, side := range castleSides {
		if side.colour != pos.ToMove || !pos.Castling.Has(side.right) {
			continue
		}
		if !side.inPlace(&pos.Board) || !side.pathClear(&pos.Board) || !side.kingPathSafe(&pos.Board) {
			continue
		}
		moves = append(moves, chess.Move{From: side.kingFrom, To: side.kingTo})
	}
	return moves
}

// updateCastlingRights clears the rights lost by a move: all of the
// mover's rights on a king move, and a side's right when its rook leaves
// or is captured on its home corner.
func updateCastlingRights(rights chess.CastlingRights, board *chess.Board, m chess.Move) chess.CastlingRights {
	piece := board.Get(m.From)
	if chess.ExtractPiece(piece) == chess.King {
		colour := chess.ExtractColour(piece)
		rights &^= chess.Kingside(colour) | chess.Queenside(colour)
	}
	for _, side := range castleSides {
		if m.From == side.rookFrom || m.To == side.rookFrom {
			rights &^= side.right
		}
	}
	return rights
}
