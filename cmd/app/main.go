package main

import (
	"fmt"
	"log/slog"
	"os"

	"opsboard/cmd"
	httpin "opsboard/internal/adapters/in/http"
	"opsboard/internal/adapters/out/eventlog"
	"opsboard/internal/adapters/out/rabbitmq"
	"opsboard/internal/core/ports"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	gormDB, err := cmd.OpenDatabase(configs)
	if err != nil {
		log.Fatalf("Database bootstrap failed: %v", err)
	}

	publisher, closePublisher := buildPublisher(configs, logger)
	defer closePublisher()

	root := cmd.NewCompositionRoot(configs, gormDB, publisher)

	jobManager := root.CreateJobManager(configs.PickupRetention(), logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded, reading environment directly: %v", err)
	}

	return cmd.Config{
		HTTPPort:            os.Getenv("HTTP_PORT"),
		DBHost:              os.Getenv("DB_HOST"),
		DBPort:              os.Getenv("DB_PORT"),
		DBUser:              os.Getenv("DB_USER"),
		DBPassword:          os.Getenv("DB_PASSWORD"),
		DBName:              os.Getenv("DB_NAME"),
		DBSslMode:           os.Getenv("DB_SSLMODE"),
		AmqpURL:             os.Getenv("AMQP_URL"),
		PickupRetentionDays: os.Getenv("PICKUP_RETENTION_DAYS"),
	}
}

// buildPublisher connects to RabbitMQ when an AMQP URL is configured and
// falls back to the structured log otherwise.
func buildPublisher(configs cmd.Config, logger *slog.Logger) (ports.EventPublisher, func()) {
	if configs.AmqpURL == "" {
		return eventlog.NewPublisher(logger), func() {}
	}

	rabbit, err := rabbitmq.NewEventPublisher(configs.AmqpURL, logger)
	if err != nil {
		log.Fatalf("RabbitMQ connection failed: %v", err)
	}
	return rabbit, func() {
		if closeErr := rabbit.Close(); closeErr != nil {
			logger.Error("RabbitMQ shutdown failed", "error", closeErr)
		}
	}
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpin.NewServer(root.CreateHTTPHandlers())
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
