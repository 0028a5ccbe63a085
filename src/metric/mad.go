package metric

import "math"

// MAD returns the median absolute deviation of delta, measured about the
// median of the absolute residuals: median(|delta - median(|delta|)|).
func MAD(delta []float64) (float64, error) {
	if len(delta) == 0 {
		return 0, ErrEmptyInput
	}

	abs := make([]float64, len(delta))
	for i, v := range delta {
		abs[i] = math.Abs(v)
	}
	m := median(abs)

	dev := make([]float64, len(delta))
	for i, v := range delta {
		dev[i] = math.Abs(v - m)
	}

	return median(dev), nil
}
