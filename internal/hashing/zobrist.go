// Package hashing provides Zobrist position keys and duplicate position
// detection built on them.
package hashing

import (
	"github.com/lgbarn/termichess-go/internal/chess"
)

const numSquares = chess.BoardSize * chess.BoardSize

// Random keys, fixed across runs so that keys are stable in logs and tests.
var (
	pieceKeys     [2][chess.NumPieceValues][numSquares]uint64
	sideKey       uint64
	castlingKeys  [16]uint64
	enPassantKeys [chess.BoardSize]uint64
)

func init() {
	state := uint64(0x9E3779B97F4A7C15)
	next := func() uint64 {
		// splitmix64
		state += 0x9E3779B97F4A7C15
		z := state
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		return z ^ (z >> 31)
	}

	for c := range pieceKeys {
		for p := range pieceKeys[c] {
			for sq := range pieceKeys[c][p] {
				pieceKeys[c][p][sq] = next()
			}
		}
	}
	sideKey = next()
	for i := range castlingKeys {
		castlingKeys[i] = next()
	}
	for i := range enPassantKeys {
		enPassantKeys[i] = next()
	}
}

// Zobrist returns the hash key of pos. Two positions with the same
// placement, side to move, castling rights and en-passant file share a key.
func Zobrist(pos *chess.Position) uint64 {
	var key uint64
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			cell := pos.Board[row][col]
			if cell == chess.Empty {
				continue
			}
			colour := chess.ExtractColour(cell)
			piece := chess.ExtractPiece(cell)
			key ^= pieceKeys[colour][piece][row*chess.BoardSize+col]
		}
	}
	if pos.ToMove == chess.Black {
		key ^= sideKey
	}
	key ^= castlingKeys[pos.Castling&0x0F]
	if pos.HasEnPassant() {
		key ^= enPassantKeys[pos.EnPassant.Col]
	}
	return key
}
