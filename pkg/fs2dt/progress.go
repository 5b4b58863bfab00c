package fs2dt

// ProgressFunc receives coarse progress while the catalog loads.
// fraction is in [0, 1]; a new phase name starts a new console line.
type ProgressFunc func(phase string, fraction float64)

// NoProgress discards progress reports.
func NoProgress(string, float64) {}
