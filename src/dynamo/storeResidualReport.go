package dynamo

import (
	"fmt"
	"time"

	"telemetry-residual-analyzer/src/types"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
)

// StoreResidualReport persists a completed bucket's residual report for the
// history endpoint. Items expire after 24 hours.
func StoreResidualReport(report types.ResidualReport) error {
	client := GetDynamoDBClient()

	now := time.Now()

	partitionKey := "device" // Single device, one day of data
	sortKey := now.Format(time.RFC3339)
	ttl := now.Add(24 * time.Hour).Unix()

	item, err := dynamodbattribute.MarshalMap(report)

	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	item["PK"] = &dynamodb.AttributeValue{S: aws.String(partitionKey)}
	item["SK"] = &dynamodb.AttributeValue{S: aws.String(sortKey)}
	item["ttl"] = &dynamodb.AttributeValue{N: aws.String(fmt.Sprintf("%d", ttl))}

	input := &dynamodb.PutItemInput{
		TableName: aws.String("ResidualReports"),
		Item:      item,
	}

	_, err = client.PutItem(input)

	if err != nil {
		return fmt.Errorf("failed to put item: %w", err)
	}

	return nil
}
