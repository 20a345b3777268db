package engine

import (
	"github.com/lgbarn/termichess-go/internal/chess"
	"github.com/lgbarn/termichess-go/internal/errors"
)

// Step and ray directions as (row, col) deltas.
var (
	knightOffsets  = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets    = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	orthogonalDirs = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonalDirs   = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

// IsAttacked returns true if the opponent of defender could capture on sq.
// It is a pure geometric query and ignores whose turn it is.
func IsAttacked(board *chess.Board, sq chess.Square, defender chess.Colour) bool {
	attacker := defender.Opposite()

	// Pawns attack forward-diagonally, so look one row back from the
	// attacker's point of view.
	pawn := chess.MakeColouredPiece(attacker, chess.Pawn)
	pawnRow := -chess.ColourOffset(attacker)
	for _, dc := range [2]int{-1, 1} {
		from := sq.Offset(pawnRow, dc)
		if from.OnBoard() && board.Get(from) == pawn {
			return true
		}
	}

	knight := chess.MakeColouredPiece(attacker, chess.Knight)
	for _, off := range knightOffsets {
		from := sq.Offset(off[0], off[1])
		if from.OnBoard() && board.Get(from) == knight {
			return true
		}
	}

	return rayAttacked(board, sq, attacker, orthogonalDirs[:], chess.Rook) ||
		rayAttacked(board, sq, attacker, diagonalDirs[:], chess.Bishop)
}

// rayAttacked walks each direction to the first occupied square and
// reports whether it holds an attacker's slider of the given type, a queen,
// or a king standing next to sq.
func rayAttacked(board *chess.Board, sq chess.Square, attacker chess.Colour, dirs [][2]int, slider chess.Piece) bool {
	for _, dir := range dirs {
		from := sq.Offset(dir[0], dir[1])
		for distance := 1; from.OnBoard(); distance++ {
			piece := board.Get(from)
			if piece == chess.Empty {
				from = from.Offset(dir[0], dir[1])
				continue
			}
			if chess.ExtractColour(piece) == attacker {
				switch chess.ExtractPiece(piece) {
				case slider, chess.Queen:
					return true
				case chess.King:
					if distance == 1 {
						return true
					}
				}
			}
			break // Blocked
		}
	}
	return false
}

// kingSquare locates the single king of the given colour.
func kingSquare(board *chess.Board, colour chess.Colour) (chess.Square, error) {
	kings := board.FindKings(colour)
	switch len(kings) {
	case 0:
		return chess.NoSquare, errors.Wrapf(errors.ErrNoKing, "%s", colour)
	case 1:
		return kings[0], nil
	default:
		return chess.NoSquare, errors.Wrapf(errors.ErrTooManyKings, "%s has %d", colour, len(kings))
	}
}
