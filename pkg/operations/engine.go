package operations

import (
	"context"
	"encoding/json"
	"fmt"
)

// OperationsRoutingKey is where the operations engine listens for operation
// requests.
const OperationsRoutingKey = "operations.requests"

type publisher interface {
	Publish(ctx context.Context, routingKey string, body []byte) error
}

// NewAmqpEngine returns an Engine submitting operation requests over AMQP.
func NewAmqpEngine(publisher publisher) AmqpEngine {
	return AmqpEngine{publisher}
}

type AmqpEngine struct {
	publisher publisher
}

func (e AmqpEngine) RequestOperation(ctx context.Context, request Request) error {
	body, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("failed to marshal operation request: %v", err)
	}

	return e.publisher.Publish(ctx, OperationsRoutingKey, body)
}
