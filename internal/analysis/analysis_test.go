package analysis

import (
	stderrors "errors"
	"testing"

	"github.com/lgbarn/termichess-go/internal/engine"
	"github.com/lgbarn/termichess-go/internal/errors"
	"github.com/lgbarn/termichess-go/internal/testutil"
)

const (
	stalemateFEN = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"
	checkmateFEN = "R5k1/5ppp/8/8/8/8/8/4K3 b - - 0 1"
	checkFEN     = "4k3/8/8/8/8/8/8/4R1K1 b - - 0 1"
)

func TestAnalyse_Status(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want Status
	}{
		{"initial position", engine.InitialFEN, Playing},
		{"in check with escapes", checkFEN, Playing},
		{"stalemate", stalemateFEN, Stalemate},
		{"checkmate", checkmateFEN, Checkmate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep, err := Analyse(tt.fen, "")
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, rep.Status, tt.want)
			if tt.want != Playing && len(rep.Moves) != 0 {
				t.Errorf("Moves = %v, want none", rep.Moves)
			}
		})
	}
}

func TestAnalyse_Piece(t *testing.T) {
	tests := []struct {
		name  string
		piece string
		want  []string
	}{
		{"all moves", "", nil},
		{"knights", "n", []string{"Na3", "Nc3", "Nf3", "Nh3"}},
		{"upper case letter", "N", []string{"Na3", "Nc3", "Nf3", "Nh3"}},
		{"pawns", "p", []string{"a3", "a4", "b3", "b4", "c3", "c4", "d3", "d4", "e3", "e4", "f3", "f4", "g3", "g4", "h3", "h4"}},
		{"blocked queen", "q", []string{}},
		{"not a piece", "x", []string{}},
		{"more than one letter", "nb", []string{}},
	}

	all, err := engine.LegalSANMoves(engine.InitialFEN)
	testutil.AssertNoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep, err := Analyse(engine.InitialFEN, tt.piece)
			testutil.AssertNoError(t, err)
			want := tt.want
			if want == nil {
				want = all
			}
			testutil.AssertEqual(t, rep.Moves, want)
			testutil.AssertEqual(t, rep.Status, Playing)
		})
	}
}

func TestAnalyse_PieceKeepsStatus(t *testing.T) {
	// Status looks at every move, not only the listed ones.
	rep, err := Analyse(checkFEN, "q")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, rep.Moves, []string{})
	testutil.AssertEqual(t, rep.Status, Playing)

	rep, err = Analyse(checkFEN, "k")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, rep.Moves, []string{"Kd7", "Kd8", "Kf7", "Kf8"})
}

func TestAnalyse_Errors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want error
	}{
		{"malformed", "8/8/8 w", errors.ErrInvalidFEN},
		{"no king", "4k3/8/8/8/8/8/8/8 w - - 0 1", errors.ErrNoKing},
		{"two kings", "4k3/8/8/8/8/8/8/K3K3 w - - 0 1", errors.ErrTooManyKings},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep, err := Analyse(tt.fen, "n")
			testutil.AssertErrorIs(t, err, tt.want)
			if rep != nil {
				t.Errorf("Analyse() = %+v, want nil", rep)
			}
			var posErr *errors.PositionError
			if !stderrors.As(err, &posErr) || posErr.FEN != tt.fen {
				t.Errorf("error %v does not carry the FEN", err)
			}
		})
	}
}
