package cluster

import (
	"context"
	"encoding/json"
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/hana-sre/cluster-manager/pkg/model"
)

// CibWrittenRoutingKey is where agents report that the cluster configuration
// base was written.
const CibWrittenRoutingKey = "telemetry.cib-written"

type consumer interface {
	Consume(routingKey string, handler func(ctx context.Context, d amqp.Delivery)) error
}

type enrichmentWriter interface {
	UpdateCibLastWritten(ctx context.Context, clusterID, cibLastWritten string) (model.EnrichmentData, error)
}

func NewCibUpdateConsumer(logger *slog.Logger, consumer consumer, clusterService enrichmentWriter) *CibUpdateConsumer {
	return &CibUpdateConsumer{
		logger:         logger,
		consumer:       consumer,
		clusterService: clusterService,
	}
}

// CibUpdateConsumer feeds the enrichment side-table from agent telemetry
// about cluster configuration writes.
type CibUpdateConsumer struct {
	logger         *slog.Logger
	consumer       consumer
	clusterService enrichmentWriter
}

func (c *CibUpdateConsumer) Consume() error {
	return c.consumer.Consume(CibWrittenRoutingKey, func(ctx context.Context, d amqp.Delivery) {
		payload := struct {
			ClusterID      string `json:"cluster_id"`
			CibLastWritten string `json:"cib_last_written"`
		}{}

		if err := json.Unmarshal(d.Body, &payload); err != nil {
			c.logger.ErrorContext(ctx, "Failed to unmarshal cib-written message", "error", err)
			if err := d.Nack(false, false); err != nil {
				c.logger.ErrorContext(ctx, "Failed to nack cib-written message", "error", err)
			}
			return
		}

		_, err := c.clusterService.UpdateCibLastWritten(ctx, payload.ClusterID, payload.CibLastWritten)
		if err != nil {
			c.logger.ErrorContext(ctx, "Failed to update cib last written",
				"clusterId", payload.ClusterID, "error", err)
			if err := d.Nack(false, true); err != nil {
				c.logger.ErrorContext(ctx, "Failed to nack cib-written message", "error", err)
			}
			return
		}

		c.logger.InfoContext(ctx, "Updated cib last written",
			"clusterId", payload.ClusterID, "cibLastWritten", payload.CibLastWritten)
		if err := d.Ack(false); err != nil {
			c.logger.ErrorContext(ctx, "Failed to ack cib-written message", "error", err)
		}
	})
}
