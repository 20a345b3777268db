package engine

import (
	"strings"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/termichess-go/internal/chess"
	"github.com/lgbarn/termichess-go/internal/errors"
)

// LegalSANMoves parses fen and returns the SAN of every legal move of the
// side to move, sorted by code point. A position with no legal moves
// yields an empty, non-nil list.
func LegalSANMoves(fen string) ([]string, error) {
	pos, err := ParseFEN(fen)
	if err != nil {
		return nil, err
	}

	sans, err := PositionSANMoves(&pos)
	if err != nil {
		return nil, &errors.PositionError{Err: err, FEN: fen, Field: "board"}
	}
	return sans, nil
}

// PositionSANMoves is LegalSANMoves for an already decoded position.
func PositionSANMoves(pos *chess.Position) ([]string, error) {
	moves, err := LegalMoves(pos)
	if err != nil {
		return nil, err
	}
	return SANList(pos, moves), nil
}

// SANList encodes moves of pos and sorts the result by code point.
func SANList(pos *chess.Position, moves []chess.Move) []string {
	sans := make([]string, 0, len(moves))
	for _, m := range moves {
		sans = append(sans, SAN(pos, m))
	}
	slices.Sort(sans)
	return sans
}

// PieceFromLetter maps a piece letter, in either case, to its type.
func PieceFromLetter(letter string) (chess.Piece, bool) {
	switch strings.ToLower(letter) {
	case "p":
		return chess.Pawn, true
	case "n":
		return chess.Knight, true
	case "b":
		return chess.Bishop, true
	case "r":
		return chess.Rook, true
	case "q":
		return chess.Queen, true
	case "k":
		return chess.King, true
	}
	return chess.Empty, false
}

// MovesOfPiece keeps the moves whose moving piece has the given type.
func MovesOfPiece(pos *chess.Position, moves []chess.Move, piece chess.Piece) []chess.Move {
	kept := make([]chess.Move, 0, len(moves))
	for _, m := range moves {
		if chess.ExtractPiece(pos.Board.Get(m.From)) == piece {
			kept = append(kept, m)
		}
	}
	return kept
}

// InCheck reports whether the king of the side to move is attacked.
func InCheck(pos *chess.Position) (bool, error) {
	king, err := kingSquare(&pos.Board, pos.ToMove)
	if err != nil {
		return false, err
	}
	return IsAttacked(&pos.Board, king, pos.ToMove), nil
}
