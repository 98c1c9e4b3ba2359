package checks

import (
	"context"
	"encoding/json"
	"fmt"
)

// ExecutionsRoutingKey is where the checks engine listens for execution
// requests.
const ExecutionsRoutingKey = "executions.requests"

type publisher interface {
	Publish(ctx context.Context, routingKey string, body []byte) error
}

// NewAmqpEngine returns an Engine submitting execution requests to the
// checks engine over AMQP. Submission is fire and forget, a successful
// publish only means the engine will see the request.
func NewAmqpEngine(publisher publisher) AmqpEngine {
	return AmqpEngine{publisher}
}

type AmqpEngine struct {
	publisher publisher
}

func (e AmqpEngine) RequestExecution(ctx context.Context, request ExecutionRequest) error {
	body, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("failed to marshal execution request: %v", err)
	}

	return e.publisher.Publish(ctx, ExecutionsRoutingKey, body)
}
