// Package engine holds the rating aggregation and points distribution core
// of the where API. It is persistence-agnostic: locations are read and
// written through a LocationStore and ledger mutations are mirrored to an
// optional Journal, so the same code runs against Postgres in production
// and plain in-memory fakes in tests.
package engine

// Engine wires the aggregator and the points ledger over a shared
// per-location lock, so a rating submission and an engagement fan-out for
// the same location never interleave.
type Engine struct {
	Aggregator *Aggregator
	Ledger     *Ledger
}

func New(locations LocationStore, journal Journal, cache PointsCache) *Engine {
	locks := newKeyedMutex()
	return &Engine{
		Aggregator: newAggregator(locations, locks),
		Ledger:     newLedger(locations, journal, cache, locks),
	}
}
