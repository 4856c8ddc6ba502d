package sfa

// DisjointWindows exposes disjointWindows to the external test package.
func (t *Transform) DisjointWindows(series []float64) [][]float64 {
	return t.disjointWindows(series)
}
