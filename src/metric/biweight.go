package metric

import "math"

// BiweightMean computes Tukey's biweight location estimate of delta
// (Equation 1 of arXiv:2003.01511). Starting from the plain median, each
// iteration drops points whose weight u exceeds the clipping bound, updates
// the center with smooth (1-u^2)^2 weights, and re-centers the full sample
// on the new estimate. Iteration stops at convergence or after p.NIter
// passes, returning the last estimate either way.
func BiweightMean(delta []float64, p IterParams) (float64, error) {
	if len(delta) == 0 {
		return 0, ErrEmptyInput
	}

	m, u := centerParams(delta, p.C)
	b := 0.0

	for i := 0; i < p.NIter; i++ {
		b0 := b
		d, uu := clipInliers(delta, u)
		b = weightedCenter(d, uu, m)
		m, u = recenterParams(delta, p.C, b)
		if converged(b, b0, p.Threshold) {
			return b, nil
		}
	}

	return b, nil
}

// BiweightScatter computes the biweight location and scatter of delta
// (Equation 3 of arXiv:2003.01511). The scatter is array-valued: a single
// scalar numerator sqrt(sum N*(d-m)^2*(1-u^2)^4) divided elementwise by
// |(1-u^2)(1-5u^2)| over the retained subset, with N the size of the full
// unfiltered sample. Use ScatterScale to reduce it to a single scale.
// Convergence is tested on the reduced scale. With NIter of zero the
// initial estimates (0, nil) are returned.
func BiweightScatter(delta []float64, p IterParams) (float64, []float64, error) {
	if len(delta) == 0 {
		return 0, nil, ErrEmptyInput
	}

	m, u := centerParams(delta, p.C)
	n := float64(len(delta))
	b := 0.0
	var s []float64
	scale := 0.0

	for i := 0; i < p.NIter; i++ {
		s0 := scale
		d, uu := clipInliers(delta, u)
		b = weightedCenter(d, uu, m)
		s = scatterArray(d, uu, m, n)
		scale = ScatterScale(s)
		m, u = recenterParams(delta, p.C, b)
		if converged(scale, s0, p.Threshold) {
			return b, s, nil
		}
	}

	return b, s, nil
}

// ScatterScale reduces an array-valued scatter estimate to a single scale by
// averaging its finite elements. An empty or all-degenerate array yields 0.
func ScatterScale(s []float64) float64 {
	var sum float64
	var n int
	for _, v := range s {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// clipInliers retains the (delta, u) pairs with |u| < 1. Points outside the
// bound are treated as full outliers for this iteration's update.
func clipInliers(delta, u []float64) ([]float64, []float64) {
	d := make([]float64, 0, len(delta))
	w := make([]float64, 0, len(u))
	for i, ui := range u {
		if math.Abs(ui) < 1 {
			d = append(d, delta[i])
			w = append(w, ui)
		}
	}
	return d, w
}

// weightedCenter returns m + sum((d-m)*(1-u^2)^2) / sum((1-u^2)^2) over the
// retained subset. An empty subset gives 0/0 = NaN, which propagates.
func weightedCenter(d, u []float64, m float64) float64 {
	var num, den float64
	for i, v := range d {
		w := 1 - u[i]*u[i]
		w *= w
		num += (v - m) * w
		den += w
	}
	return m + num/den
}

// scatterArray evaluates the scatter formula: the scalar numerator is summed
// over the retained subset but scaled by the unfiltered sample size n, then
// divided elementwise by |(1-u^2)(1-5u^2)|.
func scatterArray(d, u []float64, m, n float64) []float64 {
	var sum float64
	for i, v := range d {
		w := 1 - u[i]*u[i]
		sum += n * (v - m) * (v - m) * w * w * w * w
	}
	num := math.Sqrt(sum)

	s := make([]float64, len(d))
	for i := range d {
		w := 1 - u[i]*u[i]
		s[i] = num / math.Abs(w*(1-5*u[i]*u[i]))
	}
	return s
}
