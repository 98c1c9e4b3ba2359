package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	BasePath          string
	Environment       string
	Postgresql        Postgresql
	RabbitMQ          RabbitMQ
	ChecksInterval    time.Duration
	OperationsTimeout time.Duration
}

func New() (Config, error) {
	basePath, err := requireEnv("BASE_PATH")
	if err != nil {
		return Config{}, err
	}

	environment := envOrDefault("ENVIRONMENT", "production")

	pg, err := newPostgresql()
	if err != nil {
		return Config{}, err
	}

	rb, err := newRabbitMQ()
	if err != nil {
		return Config{}, err
	}

	checksInterval, err := durationOrDefault("CHECKS_INTERVAL", 5*time.Minute)
	if err != nil {
		return Config{}, err
	}

	operationsTimeout, err := durationOrDefault("OPERATIONS_TIMEOUT", 30*time.Second)
	if err != nil {
		return Config{}, err
	}

	return Config{
		BasePath:          basePath,
		Environment:       environment,
		Postgresql:        pg,
		RabbitMQ:          rb,
		ChecksInterval:    checksInterval,
		OperationsTimeout: operationsTimeout,
	}, nil
}

type Postgresql struct {
	Host         string
	Port         int
	Username     string
	Password     string
	DatabaseName string
}

func newPostgresql() (Postgresql, error) {
	host, err := requireEnv("DATABASE_HOST")
	if err != nil {
		return Postgresql{}, err
	}
	port, err := requireEnvAsInt("DATABASE_PORT")
	if err != nil {
		return Postgresql{}, err
	}
	username, err := requireEnv("DATABASE_USERNAME")
	if err != nil {
		return Postgresql{}, err
	}
	password, err := requireEnv("DATABASE_PASSWORD")
	if err != nil {
		return Postgresql{}, err
	}
	name, err := requireEnv("DATABASE_NAME")
	if err != nil {
		return Postgresql{}, err
	}

	return Postgresql{
		Host:         host,
		Port:         port,
		Username:     username,
		Password:     password,
		DatabaseName: name,
	}, nil
}

type RabbitMQ struct {
	Host     string
	Port     int
	Username string
	Password string
}

func newRabbitMQ() (RabbitMQ, error) {
	host, err := requireEnv("RABBITMQ_HOST")
	if err != nil {
		return RabbitMQ{}, err
	}
	port, err := requireEnvAsInt("RABBITMQ_PORT")
	if err != nil {
		return RabbitMQ{}, err
	}
	username, err := requireEnv("RABBITMQ_USERNAME")
	if err != nil {
		return RabbitMQ{}, err
	}
	password, err := requireEnv("RABBITMQ_PASSWORD")
	if err != nil {
		return RabbitMQ{}, err
	}

	return RabbitMQ{
		Host:     host,
		Port:     port,
		Username: username,
		Password: password,
	}, nil
}

func (r RabbitMQ) GetURL() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%d/", r.Username, r.Password, r.Host, r.Port)
}

func requireEnv(key string) (string, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return "", fmt.Errorf("can't find environment variable: %s", key)
	}
	return value, nil
}

func requireEnvAsInt(key string) (int, error) {
	valueStr, err := requireEnv(key)
	if err != nil {
		return 0, err
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("can't parse %s as integer: %v", key, err)
	}
	return value, nil
}

func envOrDefault(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func durationOrDefault(key string, fallback time.Duration) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback, nil
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("can't parse %s as duration: %v", key, err)
	}
	return duration, nil
}
