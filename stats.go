package floeengine

// EngineStats aggregates the search diagnostics backing the shell's
// thinkingProgress message: tree size, total search work, and how
// concentrated that work has become on the root's favorite child.
type EngineStats struct {
	TreeSize       int
	Visits         uint32
	TotalPlayouts  int
	VisitShareMean float64
	VisitShareVar  float64
}

// Stats snapshots the engine's current search diagnostics.
func (e *Engine) Stats() EngineStats {
	_, mean, variance := e.tree.VisitShare()
	return EngineStats{
		TreeSize:       e.TreeSize(),
		Visits:         e.GetVisits(),
		TotalPlayouts:  e.GetTotalPlayouts(),
		VisitShareMean: mean,
		VisitShareVar:  variance,
	}
}
