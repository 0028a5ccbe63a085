package dynamo

import (
	"time"

	"telemetry-residual-analyzer/src/types"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
)

// FetchHistoricalData returns the residual reports stored over the last hour.
func FetchHistoricalData() ([]types.ResidualReport, error) {
	now := time.Now()
	oneHourAgo := now.Add(-1 * time.Hour).Format(time.RFC3339)

	client := GetDynamoDBClient()

	input := &dynamodb.QueryInput{
		TableName:              aws.String("ResidualReports"),
		KeyConditionExpression: aws.String("PK = :pk AND SK >= :oneHourAgo"),
		ExpressionAttributeValues: map[string]*dynamodb.AttributeValue{
			":pk":         {S: aws.String("device")},
			":oneHourAgo": {S: aws.String(oneHourAgo)},
		},
	}

	output, err := client.Query(input)
	if err != nil {
		return nil, err
	}

	var results []types.ResidualReport
	err = dynamodbattribute.UnmarshalListOfMaps(output.Items, &results)
	if err != nil {
		return nil, err
	}

	return results, nil
}
