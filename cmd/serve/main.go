// Package classification Cluster Manager Service.
//
// Aggregates SAP/HANA cluster state and dispatches remote operations
// against a fleet of agents.
//
//	Version: 0.1.0
//
//	Consumes:
//	  - application/json
//
//	Produces:
//	  - application/json
//
// swagger:meta
package main

import (
	"context"
	"log/slog"
	"os"

	internalHandler "github.com/hana-sre/cluster-manager/internal/handler"
	"github.com/hana-sre/cluster-manager/internal/log"
	"github.com/hana-sre/cluster-manager/internal/server"
	"github.com/hana-sre/cluster-manager/pkg/checks"
	"github.com/hana-sre/cluster-manager/pkg/cluster"
	"github.com/hana-sre/cluster-manager/pkg/config"
	"github.com/hana-sre/cluster-manager/pkg/event"
	"github.com/hana-sre/cluster-manager/pkg/messaging"
	"github.com/hana-sre/cluster-manager/pkg/operations"
	"github.com/hana-sre/cluster-manager/pkg/scheduler"
	"github.com/hana-sre/cluster-manager/pkg/storage"
)

// exchange is the AMQP topic exchange shared with the checks and operations
// engines and the agents.
const exchange = "cluster-manager"

func main() {
	if err := run(); err != nil {
		slog.Error("Exiting", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	pretty := cfg.Environment == "development"
	logger := slog.New(log.New(log.NewPrettyJSONHandler(os.Stdout, nil, pretty)))
	slog.SetDefault(logger)

	db, err := storage.NewDatabase(logger, cfg.Postgresql)
	if err != nil {
		return err
	}

	clusterRepository := cluster.NewRepository(db)
	clusterService := cluster.NewService(clusterRepository)

	publisher, err := messaging.NewPublisher(cfg.RabbitMQ.GetURL(), exchange)
	if err != nil {
		return err
	}
	defer publisher.Close()

	broker := event.NewBroker()
	dispatcher := messaging.NewCommandDispatcher(publisher)

	checksEngine := checks.NewAmqpEngine(publisher)
	checksService := checks.NewService(clusterService, checksEngine, dispatcher, broker)

	operationsEngine := operations.NewAmqpEngine(publisher)
	operationsService := operations.NewService(clusterService, operationsEngine, cluster.FirstHostDC, cfg.OperationsTimeout, broker)

	consumer, err := messaging.NewConsumer(logger, cfg.RabbitMQ.GetURL(), exchange, "cluster-manager")
	if err != nil {
		return err
	}
	defer consumer.Close()

	cibUpdateConsumer := cluster.NewCibUpdateConsumer(logger, consumer, clusterService)
	if err := cibUpdateConsumer.Consume(); err != nil {
		return err
	}

	checksScheduler := scheduler.NewScheduler(logger, cfg.ChecksInterval, clusterService, checksService)
	go checksScheduler.Run(context.Background())

	if err := internalHandler.RegisterValidation(); err != nil {
		return err
	}

	clusterHandler := cluster.NewHandler(clusterService)
	checksHandler := checks.NewHandler(checksService)
	operationsHandler := operations.NewHandler(operationsService)
	eventHandler := event.NewHandler(logger, broker)

	r := server.GetEngine(logger, cfg.BasePath, clusterHandler, checksHandler, operationsHandler, eventHandler)
	return r.Run()
}
