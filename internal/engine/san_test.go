package engine

import (
	"testing"

	"github.com/lgbarn/termichess-go/internal/chess"
)

func TestSAN(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		move chess.Move
		want string
	}{
		{"pawn push", InitialFEN, chess.Move{From: sq("e2"), To: sq("e4")}, "e4"},
		{"knight", InitialFEN, chess.Move{From: sq("g1"), To: sq("f3")}, "Nf3"},
		{"pawn capture", "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1", chess.Move{From: sq("e4"), To: sq("d5")}, "exd5"},
		{"en passant", "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1", chess.Move{From: sq("e5"), To: sq("d6")}, "exd6"},
		{"promotion", "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", chess.Move{From: sq("a7"), To: sq("a8"), Promotion: chess.Queen}, "a8=Q"},
		{"under-promotion", "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", chess.Move{From: sq("a7"), To: sq("a8"), Promotion: chess.Knight}, "a8=N"},
		{"capture promotion", "1n2k3/P7/8/8/8/8/8/4K3 w - - 0 1", chess.Move{From: sq("a7"), To: sq("b8"), Promotion: chess.Rook}, "axb8=R"},
		{"piece capture", "4k3/8/8/3p4/8/2N5/8/4K3 w - - 0 1", chess.Move{From: sq("c3"), To: sq("d5")}, "Nxd5"},
		{"capture of unknown piece", "4k3/8/8/3x4/8/2N5/8/4K3 w - - 0 1", chess.Move{From: sq("c3"), To: sq("d5")}, "Nxd5"},
		{"kingside castling", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", chess.Move{From: sq("e1"), To: sq("g1")}, "O-O"},
		{"queenside castling", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", chess.Move{From: sq("e8"), To: sq("c8")}, "O-O-O"},
		{"king step", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", chess.Move{From: sq("e1"), To: sq("f1")}, "Kf1"},
		{"file disambiguation", "4k3/8/8/8/8/5N2/8/1N2K3 w - - 0 1", chess.Move{From: sq("b1"), To: sq("d2")}, "Nbd2"},
		{"rank disambiguation", "4k3/8/8/6N1/8/8/8/4K1N1 w - - 0 1", chess.Move{From: sq("g1"), To: sq("f3")}, "N1f3"},
		{"file and rank disambiguation", "7k/8/8/1N6/8/1N3N2/8/K7 w - - 0 1", chess.Move{From: sq("b3"), To: sq("d4")}, "Nb3d4"},
		{"disambiguated capture", "4k3/8/8/3p4/8/2N1N3/8/4K3 w - - 0 1", chess.Move{From: sq("e3"), To: sq("d5")}, "Nexd5"},
		{"rooks on one rank", "4k3/8/8/8/8/8/8/R4RK1 w - - 0 1", chess.Move{From: sq("f1"), To: sq("e1")}, "Rfe1"},
		{"rooks on one file", "R3k3/8/8/8/8/8/8/R3K3 w - - 0 1", chess.Move{From: sq("a1"), To: sq("a4")}, "R1a4"},
		{"no disambiguation for other types", "4k3/8/8/8/8/8/3B4/1N2K3 w - - 0 1", chess.Move{From: sq("b1"), To: sq("c3")}, "Nc3"},
		// A pinned competitor still counts.
		{"pinned competitor", "4k3/4r3/8/8/8/8/4N3/1N2K3 w - - 0 1", chess.Move{From: sq("b1"), To: sq("c3")}, "Nbc3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustParseFEN(t, tt.fen)
			if got := SAN(&pos, tt.move); got != tt.want {
				t.Errorf("SAN(%s) = %q, want %q", tt.move, got, tt.want)
			}
		})
	}
}
