package sagemaker

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sagemakerruntime"
)

type SageMakerResponse struct {
	Predictions []struct {
		Value float64 `json:"value"`
	} `json:"predictions"`
}

var (
	runtimeClient *sagemakerruntime.Client
	runtimeOnce   sync.Once
	runtimeErr    error
)

func getRuntimeClient(ctx context.Context) (*sagemakerruntime.Client, error) {
	runtimeOnce.Do(func() {
		cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion("eu-west-1"))
		if err != nil {
			runtimeErr = fmt.Errorf("unable to load AWS config: %w", err)
			return
		}
		runtimeClient = sagemakerruntime.NewFromConfig(cfg)
	})
	return runtimeClient, runtimeErr
}

// Predict invokes the baseline model with the bucket's feature vector
// (values plus change rates) and returns the expected value per signal.
// Residual = observed - predicted.
func Predict(ctx context.Context, features []float64) ([]float64, error) {
	endpointName := os.Getenv("SAGEMAKER_ENDPOINT_NAME")

	if endpointName == "" {
		return nil, fmt.Errorf("SAGEMAKER_ENDPOINT_NAME environment variable is not set")
	}

	client, err := getRuntimeClient(ctx)
	if err != nil {
		return nil, err
	}

	// Scale features the same way the model was trained
	if params, err := GetRobustScalerParams(); err == nil {
		features = RobustScale(features, params)
	} else {
		fmt.Printf("Could not load scaler params, sending raw features: %v\n", err)
	}

	payload := map[string]interface{}{
		"instances": []map[string]any{
			{"features": features},
		},
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	output, err := client.InvokeEndpoint(ctx, &sagemakerruntime.InvokeEndpointInput{
		EndpointName: &endpointName,
		Body:         payloadBytes,
		ContentType:  aws.String("application/json"),
		Accept:       aws.String("application/json"),
	})

	if err != nil {
		return nil, fmt.Errorf("failed to invoke endpoint: %w", err)
	}

	var response SageMakerResponse

	if err := json.Unmarshal(output.Body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	predicted := make([]float64, len(response.Predictions))
	for i, p := range response.Predictions {
		predicted[i] = p.Value
	}

	fmt.Println("-----------------")
	fmt.Println("Features: ", features)
	fmt.Println("Predicted: ", predicted)

	return predicted, nil
}
