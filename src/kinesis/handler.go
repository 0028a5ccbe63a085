package kinesis

import (
	"context"
	"encoding/json"
	"fmt"

	"telemetry-residual-analyzer/src/dynamo"
	"telemetry-residual-analyzer/src/sagemaker"
	"telemetry-residual-analyzer/src/types"
	"telemetry-residual-analyzer/src/utils"
	"telemetry-residual-analyzer/src/websocket"

	"github.com/aws/aws-lambda-go/events"
)

var signalNames = []string{"FLOWRATE", "PRESSURE", "TEMPERATURE"}

// Handler buffers incoming telemetry into 5-second buckets, then analyzes
// every completed bucket: residuals against the predicted baseline feed the
// robust metrics, the report is persisted and broadcast to clients.
func Handler(ctx context.Context, kinesisEvent events.KinesisEvent) error {
	// Buffer each Kinesis record into its bucket
	for _, record := range kinesisEvent.Records {
		dataBytes := record.Kinesis.Data
		fmt.Printf("Received Kinesis record: %s\n", dataBytes)

		var telemetryData types.TelemetryData

		if err := json.Unmarshal(dataBytes, &telemetryData); err != nil {
			fmt.Printf("Cannot read Kinesis telemetry data: %v\n", err)
			continue
		}

		if err := dynamo.BufferData(telemetryData); err != nil {
			fmt.Printf("Error buffering data: %v\n", err)
			continue
		}
	}

	// Analyze completed 5-second buckets
	reports := dynamo.ProcessCompletedBuckets()

	for _, report := range reports {
		features := []float64{
			report.FLOWRATE, report.PRESSURE, report.TEMPERATURE,
			report.FlowChangeRate, report.PressChangeRate, report.TempChangeRate,
		}

		predicted, err := sagemaker.Predict(ctx, features)

		if err != nil {
			fmt.Printf("Error predicting baseline: %v\n", err)
			continue
		}

		if len(predicted) < len(signalNames) {
			fmt.Printf("Baseline returned %d predictions, expected %d\n", len(predicted), len(signalNames))
			continue
		}

		scalerParams, err := sagemaker.GetRobustScalerParams()
		if err != nil {
			fmt.Printf("Proceeding with unscaled residuals: %v\n", err)
		}

		observed := []float64{report.FLOWRATE, report.PRESSURE, report.TEMPERATURE}
		metrics := make([]types.SignalMetrics, len(signalNames))
		levels := make([]utils.AnomalyLevel, len(signalNames))

		for i, name := range signalNames {
			residual := observed[i] - predicted[i]

			window, err := dynamo.StoreResidualWindow(name, residual)
			if err != nil {
				fmt.Printf("Error storing residual window for %s: %v\n", name, err)
				window = []float64{residual}
			}

			window = sagemaker.ScaleResiduals(window, i, scalerParams)

			metrics[i], levels[i] = AnalyzeWindow(window)
		}

		report.Flow, report.Press, report.Temp = metrics[0], metrics[1], metrics[2]
		report.AnomalyLevel = utils.WorstAnomalyLevel(levels...).String()

		fmt.Printf("Bucket %s: flow=%+v press=%+v temp=%+v level=%s\n",
			report.Timestamp, metrics[0], metrics[1], metrics[2], report.AnomalyLevel)

		if err := dynamo.StoreResidualReport(report); err != nil {
			fmt.Printf("Error storing residual report: %v\n", err)
		}

		responseBytes, err := json.Marshal(report)

		if err != nil {
			fmt.Printf("Error marshaling report: %v\n", err)
			continue
		}

		if err := websocket.PostMessage(responseBytes); err != nil {
			fmt.Printf("Error broadcasting report: %v\n", err)
		}
	}

	return nil
}
