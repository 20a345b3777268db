// Package engine implements the chess rules: FEN decoding, attack
// detection, move generation, legality filtering and SAN encoding.
package engine

import (
	"strings"

	"github.com/lgbarn/termichess-go/internal/chess"
	"github.com/lgbarn/termichess-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ConvertFENCharToPiece converts a FEN character to a piece type.
// Letters outside PNBRQK map to Unknown; anything else maps to Empty.
func ConvertFENCharToPiece(c byte) chess.Piece {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	}
	if isLetter(c) {
		return chess.Unknown
	}
	return chess.Empty
}

// ParseFEN decodes a FEN string into a Position.
//
// The board layout and active colour are required. Castling rights default
// to every right whose king and rook stand on their home squares, and the
// en-passant target defaults to none. Move counters are accepted and ignored.
func ParseFEN(fen string) (chess.Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 2 {
		return chess.Position{}, fenError(fen, "fields", "",
			errors.Wrapf(errors.ErrInvalidFEN, "need board and active colour, got %d fields", len(parts)))
	}

	pos := chess.Position{EnPassant: chess.NoSquare}

	if err := parsePiecePlacement(&pos.Board, parts[0], fen); err != nil {
		return chess.Position{}, err
	}
	if err := parseSideToMove(&pos, parts[1], fen); err != nil {
		return chess.Position{}, err
	}
	if err := parseCastlingRights(&pos, parts, fen); err != nil {
		return chess.Position{}, err
	}
	if err := parseEnPassant(&pos, parts, fen); err != nil {
		return chess.Position{}, err
	}

	return pos, nil
}

// parsePiecePlacement parses the piece placement field of a FEN string.
func parsePiecePlacement(board *chess.Board, field, fen string) error {
	ranks := strings.Split(field, "/")
	if len(ranks) != chess.BoardSize {
		return fenError(fen, "board", field,
			errors.Wrapf(errors.ErrInvalidFEN, "%d ranks", len(ranks)))
	}

	for row, rankText := range ranks {
		col := 0
		for i := 0; i < len(rankText); i++ {
			c := rankText[i]
			switch {
			case c >= '1' && c <= '8':
				col += int(c - '0')
				if col > chess.BoardSize {
					return fenError(fen, "board", rankText,
						errors.Wrap(errors.ErrInvalidFEN, "rank too wide"))
				}
			case isLetter(c):
				if col >= chess.BoardSize {
					return fenError(fen, "board", rankText,
						errors.Wrap(errors.ErrInvalidFEN, "rank too wide"))
				}
				colour := chess.White
				if c >= 'a' && c <= 'z' {
					colour = chess.Black
				}
				board[row][col] = chess.MakeColouredPiece(colour, ConvertFENCharToPiece(c))
				col++
			default:
				return fenError(fen, "board", string(c),
					errors.Wrap(errors.ErrInvalidFEN, "unexpected character"))
			}
		}
		if col != chess.BoardSize {
			return fenError(fen, "board", rankText,
				errors.Wrapf(errors.ErrInvalidFEN, "rank has %d files", col))
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(pos *chess.Position, field, fen string) error {
	switch field {
	case "w":
		pos.ToMove = chess.White
	case "b":
		pos.ToMove = chess.Black
	default:
		return fenError(fen, "active colour", field, errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
// An absent field grants every right the board can support; an explicit
// right the board cannot support is an error.
func parseCastlingRights(pos *chess.Position, parts []string, fen string) error {
	if len(parts) < 3 {
		pos.Castling = supportedCastling(&pos.Board, chess.AllCastling)
		return nil
	}

	field := parts[2]
	if field == "-" {
		return nil
	}
	for i := 0; i < len(field); i++ {
		right, ok := chess.CastlingRightFor(field[i])
		if !ok {
			return fenError(fen, "castling", field, errors.ErrInvalidFEN)
		}
		pos.Castling |= right
	}

	if missing := pos.Castling &^ supportedCastling(&pos.Board, pos.Castling); missing != chess.NoCastling {
		return fenError(fen, "castling", missing.String(), errors.ErrCastlingRights)
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(pos *chess.Position, parts []string, fen string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}

	sq, err := chess.ParseSquare(parts[3])
	if err != nil {
		return fenError(fen, "en passant", parts[3], errors.ErrInvalidEnPassant)
	}

	// The target sits behind a pawn the opponent just pushed two squares.
	wantRank := byte('6')
	if pos.ToMove == chess.Black {
		wantRank = '3'
	}
	if sq.Rank() != wantRank {
		return fenError(fen, "en passant", parts[3],
			errors.Wrapf(errors.ErrInvalidEnPassant, "%s to move needs rank %c", pos.ToMove, wantRank))
	}

	pos.EnPassant = sq
	return nil
}

// fenError builds a PositionError for a failing FEN field.
func fenError(fen, field, text string, err error) error {
	return &errors.PositionError{Err: err, FEN: fen, Field: field, Text: text}
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
