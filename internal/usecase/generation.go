package usecase

import "sync/atomic"

// Generation tracks the latest input of a resolution pipeline. Begin is called
// whenever the input changes; a result computed under an older token is
// discarded rather than applied. The underlying request is not cancelled.
type Generation struct {
	current atomic.Uint64
}

// Begin invalidates every outstanding token and returns a new one.
func (g *Generation) Begin() uint64 {
	return g.current.Add(1)
}

// Invalidate marks all outstanding work stale, e.g. when the consumer goes away.
func (g *Generation) Invalidate() {
	g.current.Add(1)
}

func (g *Generation) IsCurrent(token uint64) bool {
	return g.current.Load() == token
}
