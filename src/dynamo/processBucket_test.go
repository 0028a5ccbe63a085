package dynamo

import (
	"testing"

	"telemetry-residual-analyzer/src/types"
)

func TestProcessBucket(t *testing.T) {
	first := ProcessBucket("2026-08-26T00:00:00Z", []types.TelemetryData{
		{Name: "FLOWRATE", Value: "10.0", Timestamp: "2026-08-26T00:00:01Z"},
		{Name: "PRESSURE", Value: "100.0", Timestamp: "2026-08-26T00:00:02Z"},
		{Name: "TEMPERATURE", Value: "20.0", Timestamp: "2026-08-26T00:00:03Z"},
		{Name: "FLOWRATE", Value: "12.0", Timestamp: "2026-08-26T00:00:04Z"}, // latest wins
	})

	if first.FLOWRATE != 12.0 || first.PRESSURE != 100.0 || first.TEMPERATURE != 20.0 {
		t.Fatalf("unexpected values: %+v", first)
	}
	if first.FlowChangeRate != 0 {
		t.Fatalf("expected zero change rate for first bucket, got %v", first.FlowChangeRate)
	}

	second := ProcessBucket("2026-08-26T00:00:05Z", []types.TelemetryData{
		{Name: "FLOWRATE", Value: "17.0", Timestamp: "2026-08-26T00:00:06Z"},
	})

	if second.FLOWRATE != 17.0 {
		t.Fatalf("expected 17.0, got %v", second.FLOWRATE)
	}
	// Carried forward from the previous bucket
	if second.PRESSURE != 100.0 || second.TEMPERATURE != 20.0 {
		t.Fatalf("expected carried-forward values, got %+v", second)
	}
	// (17 - 12) over 5 seconds
	if second.FlowChangeRate != 1.0 {
		t.Fatalf("expected flow change rate 1.0, got %v", second.FlowChangeRate)
	}
	if second.PressChangeRate != 0 || second.TempChangeRate != 0 {
		t.Fatalf("expected zero change rates for unchanged signals, got %+v", second)
	}
}

func TestProcessBucket_BadValue(t *testing.T) {
	report := ProcessBucket("2026-08-26T00:01:00Z", []types.TelemetryData{
		{Name: "FLOWRATE", Value: "not a number", Timestamp: "2026-08-26T00:01:01Z"},
	})
	if report == nil {
		t.Fatal("expected report despite unparseable value")
	}
}
