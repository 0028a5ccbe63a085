package main

import (
	"context"
	"encoding/json"
	"fmt"

	"telemetry-residual-analyzer/src/api"
	"telemetry-residual-analyzer/src/kinesis"
	"telemetry-residual-analyzer/src/websocket"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
)

// Determine which handler to start based on event type
func main() {
	lambda.Start(func(ctx context.Context, event json.RawMessage) (interface{}, error) {
		eventType, err := kinesis.DetectEventType(event)

		if err != nil {
			fmt.Println("Error detecting event type:", err)
			return nil, err
		}

		switch eventType {
		case "kinesis":
			var kinesisEvent events.KinesisEvent
			if err := json.Unmarshal(event, &kinesisEvent); err != nil {
				fmt.Printf("Error unmarshalling Kinesis event: %v\n", err)
				return nil, err
			}

			return nil, kinesis.Handler(ctx, kinesisEvent)

		case "websocket":
			var websocketEvent events.APIGatewayWebsocketProxyRequest
			if err := json.Unmarshal(event, &websocketEvent); err != nil {
				fmt.Printf("Error unmarshalling WebSocket event: %v\n", err)
				return nil, err
			}

			return websocket.Manage(ctx, websocketEvent)

		case "http":
			var httpEvent events.APIGatewayV2HTTPRequest
			if err := json.Unmarshal(event, &httpEvent); err != nil {
				fmt.Printf("Error unmarshalling HTTP event: %v\n", err)
				return nil, err
			}

			return api.HandleHTTP(ctx, httpEvent)

		default:
			return nil, fmt.Errorf("unknown event type: %s", eventType)
		}
	})
}
