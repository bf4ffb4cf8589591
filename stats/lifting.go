package stats

import "github.com/katalvlaran/parigo/graph"

// counters holds an attempted/succeeded pair.
type counters struct {
	attempted int64
	succeeded int64
}

// LiftingStatistics records lifting attempts, globally and per vertex. One
// instance is shared across a solve and its recursively spawned
// sub-solvers; it is accessed from a single goroutine and needs no locking
// (§5).
type LiftingStatistics struct {
	global counters
	vertex []counters
}

// New returns a LiftingStatistics sized for a game with v vertices.
func New(v int) *LiftingStatistics {
	return &LiftingStatistics{vertex: make([]counters, v)}
}

// Record notes one lifting attempt at vertex v, succeeded or not.
func (s *LiftingStatistics) Record(v graph.Vertex, succeeded bool) {
	s.global.attempted++
	s.vertex[v].attempted++
	if succeeded {
		s.global.succeeded++
		s.vertex[v].succeeded++
	}
}

// LiftsAttempted returns the total number of lifting attempts.
func (s *LiftingStatistics) LiftsAttempted() int64 { return s.global.attempted }

// LiftsSucceeded returns the total number of successful lifts.
func (s *LiftingStatistics) LiftsSucceeded() int64 { return s.global.succeeded }

// VertexLiftsAttempted returns the number of lifting attempts at v.
func (s *LiftingStatistics) VertexLiftsAttempted(v graph.Vertex) int64 {
	return s.vertex[v].attempted
}

// VertexLiftsSucceeded returns the number of successful lifts at v.
func (s *LiftingStatistics) VertexLiftsSucceeded(v graph.Vertex) int64 {
	return s.vertex[v].succeeded
}
