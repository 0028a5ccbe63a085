package dynamo

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
)

// windowSize limits each signal's residual window to the most recent 25
// values. 25 x 5s buckets = roughly 2 minutes of memory.
const windowSize = 25

// StoreResidualWindow prepends the newest residual to the signal's rolling
// window in DynamoDB and returns the updated window, newest first.
func StoreResidualWindow(signal string, residual float64) ([]float64, error) {
	client := GetDynamoDBClient()

	key := fmt.Sprintf("residuals#%s", signal)

	result, err := client.GetItem(&dynamodb.GetItemInput{
		TableName: aws.String("ResidualWindows"),
		Key: map[string]*dynamodb.AttributeValue{
			"key": {S: aws.String(key)},
		},
	})

	if err != nil {
		return nil, fmt.Errorf("failed to fetch residual window for %s: %w", signal, err)
	}

	var window []float64

	if len(result.Item) > 0 {
		if residualsAttr, ok := result.Item["residuals"]; ok {
			if err := dynamodbattribute.Unmarshal(residualsAttr, &window); err != nil {
				fmt.Printf("Failed to unmarshal residual window for %s: %v\n", signal, err)
				return nil, fmt.Errorf("failed to unmarshal residual window: %w", err)
			}
		}
	}

	// Newest residual goes to the front of the window
	window = append([]float64{residual}, window...)

	if len(window) > windowSize {
		window = window[:windowSize]
	}

	item, err := dynamodbattribute.MarshalMap(map[string]interface{}{
		"key":       key,
		"residuals": window,
	})

	if err != nil {
		return nil, fmt.Errorf("failed to marshal residual window: %w", err)
	}

	_, err = client.PutItem(&dynamodb.PutItemInput{
		TableName: aws.String("ResidualWindows"),
		Item:      item,
	})

	if err != nil {
		return nil, fmt.Errorf("failed to store residual window for %s: %w", signal, err)
	}

	return window, nil
}
