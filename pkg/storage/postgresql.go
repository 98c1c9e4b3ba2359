package storage

import (
	"fmt"
	"log/slog"

	slogGorm "github.com/orandin/slog-gorm"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/hana-sre/cluster-manager/pkg/config"
	"github.com/hana-sre/cluster-manager/pkg/model"
)

func NewDatabase(logger *slog.Logger, c config.Postgresql) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable",
		c.Host, c.Username, c.Password, c.DatabaseName, c.Port)

	gormLogger := slogGorm.New(
		slogGorm.WithHandler(logger.Handler()),
		slogGorm.WithErrorField("error"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&model.Cluster{},
		&model.Host{},
		&model.SapSystem{},
		&model.ApplicationInstance{},
		&model.EnrichmentData{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %v", err)
	}

	return db, nil
}
