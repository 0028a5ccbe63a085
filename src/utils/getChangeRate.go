package utils

import "fmt"

// GetChangeRate returns the per-second rate of change between two bucket
// values. A missing previous timestamp means this is the first bucket, so
// the rate is zero.
func GetChangeRate(currentValue float64, previousValue float64, currentTimestamp string, previousTimestamp string) float64 {

	if previousTimestamp == "" {
		return 0
	}

	valueDiff := (currentValue - previousValue)
	timeDiff, err := GetTimeDiff(previousTimestamp, currentTimestamp)

	if err != nil {
		fmt.Printf("Error calculating time diff between: %s and %s: %v\n", previousTimestamp, currentTimestamp, err)
		return 0
	}

	if timeDiff <= 0 {
		return 0 // Avoid division by zero
	}

	return valueDiff / timeDiff
}
