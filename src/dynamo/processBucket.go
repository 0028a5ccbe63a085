package dynamo

import (
	"fmt"
	"strconv"

	"telemetry-residual-analyzer/src/types"
	"telemetry-residual-analyzer/src/utils"
)

var lastValues = map[string]float64{"FLOWRATE": 0, "PRESSURE": 0, "TEMPERATURE": 0}
var lastBucketKey = ""

// ProcessBucket reduces a completed 5-second bucket to the latest observed
// value per signal plus change rates against the previous bucket. The
// residual metrics are filled in later, once predictions are available.
func ProcessBucket(bucketKey string, data []types.TelemetryData) *types.ResidualReport {
	// Initialize with last known values
	current := map[string]float64{
		"FLOWRATE":    lastValues["FLOWRATE"],
		"PRESSURE":    lastValues["PRESSURE"],
		"TEMPERATURE": lastValues["TEMPERATURE"],
	}

	// Update with latest values in bucket
	for _, d := range data {
		value, err := strconv.ParseFloat(d.Value, 64)
		if err != nil {
			fmt.Printf("Error parsing %s value %s: %v\n", d.Name, d.Value, err)
			continue
		}
		current[d.Name] = value
	}

	report := types.ResidualReport{
		Timestamp:       bucketKey,
		FLOWRATE:        current["FLOWRATE"],
		PRESSURE:        current["PRESSURE"],
		TEMPERATURE:     current["TEMPERATURE"],
		FlowChangeRate:  utils.GetChangeRate(current["FLOWRATE"], lastValues["FLOWRATE"], bucketKey, lastBucketKey),
		PressChangeRate: utils.GetChangeRate(current["PRESSURE"], lastValues["PRESSURE"], bucketKey, lastBucketKey),
		TempChangeRate:  utils.GetChangeRate(current["TEMPERATURE"], lastValues["TEMPERATURE"], bucketKey, lastBucketKey),
	}

	// Update last values for next bucket
	lastValues["FLOWRATE"] = current["FLOWRATE"]
	lastValues["PRESSURE"] = current["PRESSURE"]
	lastValues["TEMPERATURE"] = current["TEMPERATURE"]
	lastBucketKey = bucketKey

	return &report
}
