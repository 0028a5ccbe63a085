package sagemaker

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// RobustScalerParams holds the per-feature center and scale fitted during
// model training (median and IQR of each feature).
type RobustScalerParams struct {
	Medians []float64 `json:"center"`
	IQRs    []float64 `json:"scale"`
}

var (
	scalerParams *RobustScalerParams
	scalerErr    error
	scalerOnce   sync.Once
)

// GetRobustScalerParams loads the scaler parameters once and caches them for
// the lifetime of the Lambda container.
func GetRobustScalerParams() (*RobustScalerParams, error) {
	scalerOnce.Do(func() {
		scalerParams, scalerErr = LoadRobustScalerParams()
	})
	return scalerParams, scalerErr
}

// LoadRobustScalerParams loads the robust scaler parameters from S3
func LoadRobustScalerParams() (*RobustScalerParams, error) {
	// Create an S3 client
	sess := session.Must(session.NewSession(&aws.Config{
		Region: aws.String("eu-west-1"),
	}))
	svc := s3.New(sess)

	// Download the parameters
	bucketName := os.Getenv("S3_BUCKET_NAME")
	if bucketName == "" {
		return nil, fmt.Errorf("S3_BUCKET_NAME environment variable is not set")
	}

	result, err := svc.GetObject(&s3.GetObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String("models/scaler_params.json"),
	})

	if err != nil {
		return nil, fmt.Errorf("failed to download scaler parameters: %w", err)
	}
	defer result.Body.Close()

	content, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read scaler parameters: %w", err)
	}

	var params RobustScalerParams
	err = json.Unmarshal(content, &params)
	if err != nil {
		return nil, fmt.Errorf("failed to parse scaler parameters: %w", err)
	}

	return &params, nil
}

// RobustScale applies robust scaling to the features
func RobustScale(features []float64, params *RobustScalerParams) []float64 {
	if len(features) != len(params.Medians) {
		// Feature vector length doesn't match parameters; pass through
		return features
	}

	scaledFeatures := make([]float64, len(features))

	for i, val := range features {
		if params.IQRs[i] != 0 {
			scaledFeatures[i] = (val - params.Medians[i]) / params.IQRs[i]
		} else {
			scaledFeatures[i] = val - params.Medians[i] // If IQR is 0, just center the feature
		}
	}

	return scaledFeatures
}

// ScaleResiduals normalizes a residual window to IQR units of the feature
// at index i. Residuals are already centered (observed minus predicted), so
// only the scale applies, never the median.
func ScaleResiduals(window []float64, i int, params *RobustScalerParams) []float64 {
	if params == nil || i >= len(params.IQRs) || params.IQRs[i] == 0 {
		return window
	}

	scaled := make([]float64, len(window))
	for j, v := range window {
		scaled[j] = v / params.IQRs[i]
	}

	return scaled
}
