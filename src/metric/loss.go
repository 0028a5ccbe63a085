package metric

// Loss returns the bounded robust loss 1 - 1/(1+(delta/gamma)^2) for each
// residual (Equation 12 of arXiv:1704.05988). Values lie in [0, 1) for
// finite input and nonzero gamma; a zero gamma follows IEEE division
// semantics instead of raising an error.
func Loss(delta []float64, gamma float64) ([]float64, error) {
	if len(delta) == 0 {
		return nil, ErrEmptyInput
	}

	out := make([]float64, len(delta))
	for i, v := range delta {
		r := v * v / (gamma * gamma)
		out[i] = 1 - 1/(1+r)
	}

	return out, nil
}
