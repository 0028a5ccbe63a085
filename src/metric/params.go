package metric

import "math"

// IterParams controls the iterative biweight estimators.
type IterParams struct {
	NIter     int     // maximum number of iterations
	Threshold float64 // relative convergence threshold
	C         float64 // tuning constant for the weight function
}

// DefaultMeanParams returns the standard parameters for BiweightMean.
func DefaultMeanParams() IterParams {
	return IterParams{NIter: 10, Threshold: 1e-3, C: 6.0}
}

// DefaultScatterParams returns the standard parameters for BiweightScatter
// and BiweightOutlierRate.
func DefaultScatterParams() IterParams {
	return IterParams{NIter: 10, Threshold: 1e-3, C: 9.0}
}

// weights computes u[i] = (delta[i] - m) / (c * mad) for every element.
// When mad is zero the division follows IEEE semantics: elements away from
// the center become +/-Inf and an element equal to the center becomes NaN.
// The |u| < 1 filter in the estimators then retains nothing and the weighted
// sums collapse to 0/0 = NaN, which propagates to the caller.
func weights(delta []float64, m, mad, c float64) []float64 {
	u := make([]float64, len(delta))
	for i, v := range delta {
		u[i] = (v - m) / (c * mad)
	}
	return u
}

// centerParams seeds the iteration from the plain median of delta.
func centerParams(delta []float64, c float64) (float64, []float64) {
	return recenterParams(delta, c, median(delta))
}

// recenterParams recomputes the MAD about the center m and the weight array
// for the full, unfiltered delta.
func recenterParams(delta []float64, c, m float64) (float64, []float64) {
	dev := make([]float64, len(delta))
	for i, v := range delta {
		dev[i] = math.Abs(v - m)
	}
	mad := median(dev)
	return m, weights(delta, m, mad, c)
}

const convergenceEps = 1e-12

// converged reports whether the estimate has stabilized. The relative test
// |x - x0| / |x| < threshold is undefined when x is zero, so the denominator
// is floored at convergenceEps.
func converged(x, x0, threshold float64) bool {
	return math.Abs(x-x0) < threshold*math.Max(math.Abs(x), convergenceEps)
}
