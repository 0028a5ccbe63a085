package utils

import "math"

type AnomalyLevel string

const (
	NO_ANOMALY AnomalyLevel = "NO_ANOMALY"
	MEDIUM     AnomalyLevel = "MEDIUM"
	ANOMALY    AnomalyLevel = "ANOMALY"
)

func (a AnomalyLevel) String() string {
	switch a {
	case NO_ANOMALY:
		return "NO_ANOMALY"
	case MEDIUM:
		return "MEDIUM"
	case ANOMALY:
		return "ANOMALY"
	default:
		return "Unknown"
	}
}

// ComputeAnomalyLevel classifies a residual against the robust center and
// scatter of its window: within 2 scatter is normal, within 3 is medium,
// beyond is an anomaly. A degenerate (zero or non-finite) scatter means the
// window carries no usable scale yet, so nothing is flagged.
func ComputeAnomalyLevel(residual, center, scatter float64) AnomalyLevel {

	if scatter <= 0 || math.IsNaN(scatter) || math.IsInf(scatter, 0) {
		return NO_ANOMALY
	}

	deviation := math.Abs(residual - center)

	if deviation <= 2*scatter {
		return NO_ANOMALY
	}

	if deviation > 2*scatter && deviation <= 3*scatter {
		return MEDIUM
	}

	return ANOMALY
}

// WorstAnomalyLevel returns the most severe of the given levels.
func WorstAnomalyLevel(levels ...AnomalyLevel) AnomalyLevel {
	worst := NO_ANOMALY
	for _, l := range levels {
		switch l {
		case ANOMALY:
			return ANOMALY
		case MEDIUM:
			worst = MEDIUM
		}
	}
	return worst
}
