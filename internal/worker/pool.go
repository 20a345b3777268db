// Package worker provides a worker pool for analysing many positions in
// parallel.
package worker

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/termichess-go/internal/analysis"
	"github.com/lgbarn/termichess-go/internal/engine"
)

// WorkItem represents a position to be analysed.
type WorkItem struct {
	FEN   string
	Index int // Original index for tracking
}

// ProcessResult represents the result of analysing a position.
type ProcessResult struct {
	Index  int
	FEN    string
	Moves  []string
	Status analysis.Status
	Divide []engine.DivideEntry // set only by perft processing
	Err    error
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(ctx context.Context, item WorkItem) ProcessResult

// LegalMoves returns a ProcessFunc that lists the sorted SAN moves of each
// position, restricted to piece when it is not empty.
func LegalMoves(piece string) ProcessFunc {
	return func(_ context.Context, item WorkItem) ProcessResult {
		res := ProcessResult{Index: item.Index, FEN: item.FEN}
		rep, err := analysis.Analyse(item.FEN, piece)
		if err != nil {
			res.Err = err
			return res
		}
		res.Moves, res.Status = rep.Moves, rep.Status
		return res
	}
}

// LegalMovesWithDivide returns a ProcessFunc that also runs a perft divide
// to depth on each position. The divide always covers every root move.
func LegalMovesWithDivide(depth int, piece string) ProcessFunc {
	return func(ctx context.Context, item WorkItem) ProcessResult {
		res := ProcessResult{Index: item.Index, FEN: item.FEN}
		pos, err := engine.ParseFEN(item.FEN)
		if err != nil {
			res.Err = err
			return res
		}
		rep, err := analysis.AnalysePosition(&pos, item.FEN, piece)
		if err != nil {
			res.Err = err
			return res
		}
		res.Moves, res.Status = rep.Moves, rep.Status
		// Positions are already spread over the pool, so each divide runs
		// its root moves one at a time.
		res.Divide, res.Err = engine.Divide(ctx, pos, depth, 1)
		return res
	}
}

// Pool manages a pool of workers for parallel position analysis.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a new worker pool using functional options.
// Default: 1 worker, buffer size of 10.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	// Create channels after options are applied
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines. Once ctx is cancelled, remaining
// items are drained without being processed, as after Stop.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool) worker(ctx context.Context) {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() || ctx.Err() != nil {
			continue // Drain channel without processing
		}
		p.resultChan <- p.processFunc(ctx, item)
	}
}

// Submit submits a work item for processing.
// This may block if the work channel buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop signals workers to stop processing new items.
// Items already in the channel will be drained but not processed.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish.
// The result channel is closed once every worker is done.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// Run analyses every FEN with processFunc and returns the results in input
// order. Once ctx is cancelled no further positions are submitted, and
// those skipped carry ctx's error.
func Run(ctx context.Context, fens []string, processFunc ProcessFunc, opts ...PoolOption) []ProcessResult {
	pool := NewPool(processFunc, opts...)
	pool.Start(ctx)

	go func() {
		defer pool.Close()
		for i, fen := range fens {
			if ctx.Err() != nil {
				pool.Stop()
				return
			}
			pool.Submit(WorkItem{FEN: fen, Index: i})
		}
	}()

	results := make([]ProcessResult, len(fens))
	done := make([]bool, len(fens))
	for res := range pool.Results() {
		results[res.Index] = res
		done[res.Index] = true
	}

	for i, ok := range done {
		if !ok {
			err := ctx.Err()
			if err == nil {
				err = context.Canceled
			}
			results[i] = ProcessResult{Index: i, FEN: fens[i], Err: err}
		}
	}
	return results
}
