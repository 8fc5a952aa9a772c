// Package trajectory records the weight-space path of one optimizer run.
package trajectory

// Trajectory is an append-only sequence of weight-vector snapshots. The
// first snapshot is the run's initial weight vector and each later one
// differs from its predecessor by exactly one optimizer step.
type Trajectory struct {
	snaps [][]float64
}

// New returns an empty trajectory with room for n snapshots.
func New(n int) *Trajectory {
	return &Trajectory{snaps: make([][]float64, 0, n)}
}

// Record appends a value copy of w. The working vector is mutated in place
// by the optimizer, so storing w itself would leave every entry aliasing
// the final weights.
func (t *Trajectory) Record(w []float64) {
	snap := make([]float64, len(w))
	copy(snap, w)
	t.snaps = append(t.snaps, snap)
}

// Len returns the number of recorded snapshots.
func (t *Trajectory) Len() int {
	return len(t.snaps)
}

// At returns the i-th snapshot. Callers must not modify it.
func (t *Trajectory) At(i int) []float64 {
	return t.snaps[i]
}

// Final returns the last snapshot, or nil if nothing was recorded.
func (t *Trajectory) Final() []float64 {
	if len(t.snaps) == 0 {
		return nil
	}
	return t.snaps[len(t.snaps)-1]
}
