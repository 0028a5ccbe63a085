package types

type TelemetryData struct {
	Name      string `json:"name"`
	Value     string `json:"value"`
	Timestamp string `json:"timestamp"`
}

type DynamoData struct {
	BucketKey *string         `dynamodbav:"BucketKey"`
	Data      []TelemetryData `dynamodbav:"Data"`
}

// SignalMetrics holds the robust statistics computed over one signal's
// residual window.
type SignalMetrics struct {
	Residual            float64 `json:"residual"`
	BiweightMean        float64 `json:"biweight_mean"`
	BiweightScatter     float64 `json:"biweight_scatter"`
	MAD                 float64 `json:"mad"`
	OutlierRate         float64 `json:"outlier_rate"`
	BiweightOutlierRate float64 `json:"biweight_outlier_rate"`
	Loss                float64 `json:"loss"`
	Mean                float64 `json:"mean"`
	StandardDeviation   float64 `json:"standard_deviation"`
	AnomalyLevel        string  `json:"anomaly_level"`
}

// ResidualReport is the per-bucket output sent to clients and stored in
// DynamoDB: the observed values, their change rates, and the robust
// residual metrics per signal.
type ResidualReport struct {
	Timestamp       string        `json:"timestamp"` // Start of 5s bucket
	FLOWRATE        float64       `json:"flowrate"`
	PRESSURE        float64       `json:"pressure"`
	TEMPERATURE     float64       `json:"temperature"`
	FlowChangeRate  float64       `json:"flow_change_rate"`
	PressChangeRate float64       `json:"press_change_rate"`
	TempChangeRate  float64       `json:"temp_change_rate"`
	Flow            SignalMetrics `json:"flow"`
	Press           SignalMetrics `json:"press"`
	Temp            SignalMetrics `json:"temp"`
	AnomalyLevel    string        `json:"anomaly_level"` // Worst level across signals
}
