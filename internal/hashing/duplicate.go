package hashing

import (
	"github.com/lgbarn/termichess-go/internal/chess"
)

// DuplicateDetector tracks seen positions by Zobrist key.
type DuplicateDetector struct {
	// seen stores the keys of recorded positions
	seen map[uint64]struct{}
	// maxCapacity limits the number of recorded keys (0 = unlimited)
	maxCapacity int
	// duplicateCount tracks number of duplicates found
	duplicateCount int
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		seen:        make(map[uint64]struct{}),
		maxCapacity: maxCapacity,
	}
}

// CheckAndAdd reports whether pos was seen before and records it if not.
// Once the detector is full, new positions are reported as unique but no
// longer recorded.
func (d *DuplicateDetector) CheckAndAdd(pos *chess.Position) bool {
	key := Zobrist(pos)
	if _, ok := d.seen[key]; ok {
		d.duplicateCount++
		return true
	}
	if d.IsFull() {
		return false
	}
	d.seen[key] = struct{}{}
	return false
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of recorded positions.
func (d *DuplicateDetector) UniqueCount() int {
	return len(d.seen)
}

// IsFull returns true if the detector has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && len(d.seen) >= d.maxCapacity
}
