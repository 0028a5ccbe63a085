package sagemaker

import "testing"

func TestRobustScale(t *testing.T) {
	params := &RobustScalerParams{
		Medians: []float64{1, 2, 3},
		IQRs:    []float64{2, 0, 1},
	}

	got := RobustScale([]float64{3, 5, 3}, params)

	if got[0] != 1 {
		t.Fatalf("expected (3-1)/2 = 1, got %v", got[0])
	}
	if got[1] != 3 {
		t.Fatalf("expected centering only for zero IQR, got %v", got[1])
	}
	if got[2] != 0 {
		t.Fatalf("expected 0, got %v", got[2])
	}
}

func TestRobustScale_LengthMismatch(t *testing.T) {
	params := &RobustScalerParams{Medians: []float64{1}, IQRs: []float64{1}}
	features := []float64{5, 6}

	got := RobustScale(features, params)

	if got[0] != 5 || got[1] != 6 {
		t.Fatalf("expected pass-through on length mismatch, got %v", got)
	}
}

func TestScaleResiduals(t *testing.T) {
	params := &RobustScalerParams{
		Medians: []float64{0.5, 0},
		IQRs:    []float64{0.25, 0},
	}

	got := ScaleResiduals([]float64{1.0, 0.5, 0.0}, 0, params)

	expected := []float64{4, 2, 0}
	for i := range expected {
		if got[i] != expected[i] {
			t.Fatalf("index %d: expected %v, got %v", i, expected[i], got[i])
		}
	}

	// Zero IQR and out-of-range feature index pass through
	window := []float64{1, 2}
	if got := ScaleResiduals(window, 1, params); got[0] != 1 || got[1] != 2 {
		t.Fatalf("expected pass-through for zero IQR, got %v", got)
	}
	if got := ScaleResiduals(window, 5, params); got[0] != 1 || got[1] != 2 {
		t.Fatalf("expected pass-through for out-of-range index, got %v", got)
	}
}
