package metric

import "math"

// OutlierRate returns the fraction of residuals whose magnitude exceeds
// threshold (Equation 11 of arXiv:1704.05988).
func OutlierRate(delta []float64, threshold float64) (float64, error) {
	if len(delta) == 0 {
		return 0, ErrEmptyInput
	}

	outliers := 0
	for _, v := range delta {
		if math.Abs(v) > threshold {
			outliers++
		}
	}

	return float64(outliers) / float64(len(delta)), nil
}

// BiweightOutlierRate returns the fraction of residuals further than
// nsigma times the biweight scatter from the biweight center (Equation 5
// of arXiv:2003.01511).
func BiweightOutlierRate(delta []float64, nsigma float64, p IterParams) (float64, error) {
	b, s, err := BiweightScatter(delta, p)
	if err != nil {
		return 0, err
	}
	scale := ScatterScale(s)

	outliers := 0
	for _, v := range delta {
		if math.Abs(v-b) > nsigma*scale {
			outliers++
		}
	}

	return float64(outliers) / float64(len(delta)), nil
}
