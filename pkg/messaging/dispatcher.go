package messaging

import (
	"context"
	"encoding/json"
	"fmt"
)

// CommandsRoutingKey is where the event-sourced write side listens for
// commands.
const CommandsRoutingKey = "commands.requests"

// NewCommandDispatcher returns a dispatcher handing commands to the write
// side over AMQP. The command type name travels in the envelope so the write
// side can route it.
func NewCommandDispatcher(publisher *Publisher) CommandDispatcher {
	return CommandDispatcher{publisher}
}

type CommandDispatcher struct {
	publisher *Publisher
}

type commandEnvelope struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

func (d CommandDispatcher) Dispatch(ctx context.Context, command any) error {
	body, err := json.Marshal(commandEnvelope{
		Type:    fmt.Sprintf("%T", command),
		Payload: command,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal command: %v", err)
	}

	return d.publisher.Publish(ctx, CommandsRoutingKey, body)
}
