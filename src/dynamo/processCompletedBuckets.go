package dynamo

import (
	"fmt"
	"time"

	"telemetry-residual-analyzer/src/types"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
)

// ProcessCompletedBuckets drains every bucket older than 5 seconds and
// returns the reduced reports, ready for residual analysis.
func ProcessCompletedBuckets() []types.ResidualReport {
	now := time.Now().UTC()
	var processed []types.ResidualReport

	client := GetDynamoDBClient()

	result, err := client.Scan(&dynamodb.ScanInput{TableName: aws.String("ResidualBucket")})

	if err != nil {
		fmt.Printf("Failed to scan DynamoDB: %v\n", err)
		return processed
	}

	for _, item := range result.Items {

		var record struct {
			BucketKey string                `json:"BucketKey"`
			Data      []types.TelemetryData `json:"Data"`
		}

		if err := dynamodbattribute.UnmarshalMap(item, &record); err != nil {
			fmt.Printf("Failed to unmarshal DynamoDB item: %v\nRaw item: %+v\n", err, item)
			continue
		}

		bucketStart, err := time.Parse(time.RFC3339, record.BucketKey)

		if err != nil {
			fmt.Printf("Invalid bucket key %s: %v\n", record.BucketKey, err)
			continue
		}

		// Process if bucket is complete (older than 5s from now)
		if now.Sub(bucketStart) >= 5*time.Second {
			report := ProcessBucket(record.BucketKey, record.Data)
			if report != nil {
				processed = append(processed, *report)
			}

			// Delete processed bucket from DynamoDB
			_, err := client.DeleteItem(&dynamodb.DeleteItemInput{
				TableName: aws.String("ResidualBucket"),
				Key: map[string]*dynamodb.AttributeValue{
					"BucketKey": {S: aws.String(record.BucketKey)},
				},
			})
			if err != nil {
				fmt.Printf("Failed to delete bucket %s: %v\n", record.BucketKey, err)
			}
		}
	}

	return processed
}
