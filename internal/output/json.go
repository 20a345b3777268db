package output

import (
	"github.com/lgbarn/termichess-go/internal/analysis"
	"github.com/lgbarn/termichess-go/internal/engine"
)

// Result is the outcome of analysing one position.
type Result struct {
	FEN   string   `json:"fen"`
	Moves []string `json:"moves"`
	Count int      `json:"count"`
	// Status is "checkmate", "stalemate" or empty.
	Status string `json:"status,omitempty"`
	Error  string `json:"error,omitempty"`

	// Perft fields, set only when a divide was requested.
	Depth  int          `json:"depth,omitempty"`
	Nodes  uint64       `json:"nodes,omitempty"`
	Divide []DivideLine `json:"divide,omitempty"`
}

// DivideLine is one root move of a perft divide.
type DivideLine struct {
	SAN   string `json:"san"`
	UCI   string `json:"uci"`
	Nodes uint64 `json:"nodes"`
}

// JSONOutput holds multiple results for array output.
type JSONOutput struct {
	Results []*Result `json:"results"`
}

// NewResult builds the result for fen from a move list or an error.
// A failed position carries an empty, non-nil move list.
func NewResult(fen string, moves []string, err error) *Result {
	r := &Result{FEN: fen, Moves: moves, Count: len(moves)}
	if err != nil {
		r.Moves = []string{}
		r.Count = 0
		r.Error = err.Error()
	}
	if r.Moves == nil {
		r.Moves = []string{}
	}
	return r
}

// NewReportResult builds the result for fen from an analysis report.
func NewReportResult(fen string, rep *analysis.Report, err error) *Result {
	if err != nil {
		return NewResult(fen, nil, err)
	}
	r := NewResult(fen, rep.Moves, nil)
	r.Status = string(rep.Status)
	return r
}

// Failed reports whether the position could not be analysed.
func (r *Result) Failed() bool {
	return r.Error != ""
}

// SetDivide attaches a perft divide to the result.
func (r *Result) SetDivide(depth int, entries []engine.DivideEntry) {
	r.Depth = depth
	r.Nodes = 0
	r.Divide = make([]DivideLine, 0, len(entries))
	for _, e := range entries {
		r.Divide = append(r.Divide, DivideLine{SAN: e.SAN, UCI: e.Move.String(), Nodes: e.Nodes})
		r.Nodes += e.Nodes
	}
}
