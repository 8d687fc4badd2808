// Package analysis inspects per-frame series recorded by a run.
//
// [DominantPeriod] finds the strongest repeating period of a series with
// a real FFT. Applied to the cursor positions of a run it recovers the
// number of shapes the cursor visits per lap.
package analysis
