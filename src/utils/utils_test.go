package utils

import (
	"math"
	"testing"
)

func TestComputeAnomalyLevel(t *testing.T) {
	tests := []struct {
		name     string
		residual float64
		center   float64
		scatter  float64
		expected AnomalyLevel
	}{
		{"within two scatter", 0.1, 0.0, 0.1, NO_ANOMALY},
		{"between two and three scatter", 0.25, 0.0, 0.1, MEDIUM},
		{"beyond three scatter", 0.5, 0.0, 0.1, ANOMALY},
		{"offset center", 1.25, 1.0, 0.1, MEDIUM},
		{"zero scatter", 10.0, 0.0, 0.0, NO_ANOMALY},
		{"nan scatter", 10.0, 0.0, math.NaN(), NO_ANOMALY},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeAnomalyLevel(tt.residual, tt.center, tt.scatter)
			if got != tt.expected {
				t.Fatalf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestWorstAnomalyLevel(t *testing.T) {
	if got := WorstAnomalyLevel(NO_ANOMALY, MEDIUM, NO_ANOMALY); got != MEDIUM {
		t.Fatalf("expected MEDIUM, got %s", got)
	}
	if got := WorstAnomalyLevel(MEDIUM, ANOMALY); got != ANOMALY {
		t.Fatalf("expected ANOMALY, got %s", got)
	}
	if got := WorstAnomalyLevel(); got != NO_ANOMALY {
		t.Fatalf("expected NO_ANOMALY, got %s", got)
	}
}

func TestGetChangeRate(t *testing.T) {
	rate := GetChangeRate(10, 5, "2026-08-26T00:00:05Z", "2026-08-26T00:00:00Z")
	if rate != 1.0 {
		t.Fatalf("expected 1.0, got %v", rate)
	}

	if rate := GetChangeRate(10, 5, "2026-08-26T00:00:05Z", ""); rate != 0 {
		t.Fatalf("expected 0 for missing previous timestamp, got %v", rate)
	}

	if rate := GetChangeRate(10, 5, "bad", "also bad"); rate != 0 {
		t.Fatalf("expected 0 for unparseable timestamps, got %v", rate)
	}
}

func TestAverageAndStandardDeviation(t *testing.T) {
	xs := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	if got := Average(xs); got != 5 {
		t.Fatalf("expected average 5, got %v", got)
	}
	if got := StandardDeviation(xs); math.Abs(got-2) > 1e-12 {
		t.Fatalf("expected stddev 2, got %v", got)
	}
	if got := StandardDeviation(nil); got != 0 {
		t.Fatalf("expected 0 for empty input, got %v", got)
	}
}
