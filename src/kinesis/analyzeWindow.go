package kinesis

import (
	"fmt"
	"math"

	"telemetry-residual-analyzer/src/metric"
	"telemetry-residual-analyzer/src/types"
	"telemetry-residual-analyzer/src/utils"
)

const (
	outlierThreshold = 0.15 // absolute residual bound for the plain outlier rate
	lossGamma        = 0.15
	outlierNsigma    = 2.0
)

// AnalyzeWindow runs the robust estimators over a signal's residual window,
// newest residual first, and classifies the newest residual against the
// biweight center and scatter.
func AnalyzeWindow(window []float64) (types.SignalMetrics, utils.AnomalyLevel) {
	var sm types.SignalMetrics

	if len(window) == 0 {
		return sm, utils.NO_ANOMALY
	}

	residual := window[0]
	sm.Residual = finite(residual)

	b, err := metric.BiweightMean(window, metric.DefaultMeanParams())
	if err != nil {
		fmt.Printf("Error computing biweight mean: %v\n", err)
	}

	_, scatter, err := metric.BiweightScatter(window, metric.DefaultScatterParams())
	if err != nil {
		fmt.Printf("Error computing biweight scatter: %v\n", err)
	}
	scale := metric.ScatterScale(scatter)

	mad, err := metric.MAD(window)
	if err != nil {
		fmt.Printf("Error computing MAD: %v\n", err)
	}

	rate, err := metric.OutlierRate(window, outlierThreshold)
	if err != nil {
		fmt.Printf("Error computing outlier rate: %v\n", err)
	}

	biweightRate, err := metric.BiweightOutlierRate(window, outlierNsigma, metric.DefaultScatterParams())
	if err != nil {
		fmt.Printf("Error computing biweight outlier rate: %v\n", err)
	}

	loss, err := metric.Loss(window, lossGamma)
	if err != nil {
		fmt.Printf("Error computing loss: %v\n", err)
	}

	level := utils.ComputeAnomalyLevel(residual, b, scale)

	// Fresh windows have zero MAD and the weights degenerate to NaN; DynamoDB
	// and JSON cannot carry NaN/Inf, so non-finite values are zeroed here.
	sm.BiweightMean = finite(b)
	sm.BiweightScatter = finite(scale)
	sm.MAD = finite(mad)
	sm.OutlierRate = finite(rate)
	sm.BiweightOutlierRate = finite(biweightRate)
	if len(loss) > 0 {
		sm.Loss = finite(loss[0])
	}
	sm.Mean = finite(utils.Average(window))
	sm.StandardDeviation = finite(utils.StandardDeviation(window))
	sm.AnomalyLevel = level.String()

	return sm, level
}

func finite(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return x
}
