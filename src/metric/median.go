package metric

import "sort"

// median returns the middle value of xs, averaging the two central values
// for even-length input. The slice is copied before sorting so callers'
// data is never mutated. Callers validate non-emptiness first.
func median(xs []float64) float64 {
	cp := append([]float64(nil), xs...)
	sort.Float64s(cp)
	mid := len(cp) / 2
	if len(cp)%2 == 1 {
		return cp[mid]
	}
	return 0.5 * (cp[mid-1] + cp[mid])
}
