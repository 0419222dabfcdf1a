package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	. "github.com/DrGermanius/shabfood/internal"
)

const janitorInterval = 10 * time.Minute

func main() {
	//prices at json as numbers
	//https://github.com/shopspring/decimal/issues/21
	decimal.MarshalJSONWithoutQuotes = true

	cfg := NewConfig()
	z, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	sugaredLogger := z.Sugar()
	defer sugaredLogger.Sync()

	repository, err := NewRepository(cfg.DatabaseURI, sugaredLogger)
	if err != nil {
		sugaredLogger.Fatal(err)
	}

	var events IEventPublisher = NopPublisher{}
	if cfg.AMQPURL != "" {
		events, err = NewRabbitPublisher(cfg.AMQPURL, sugaredLogger)
		if err != nil {
			sugaredLogger.Fatal(err)
		}
	}
	defer events.Close()

	backend := NewBackend(cfg.BackendAddress, sugaredLogger)
	service := NewService(repository, backend, events, cfg.SessionSecret, sugaredLogger)
	handlers := NewHandlers(service, sugaredLogger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go service.RunJanitor(ctx, janitorInterval)

	app := fiber.New()
	app.Use(logger.New())
	handlers.Register(app)

	go func() {
		if err := app.Listen(cfg.RunAddress); err != nil {
			sugaredLogger.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	sugaredLogger.Info("Shutting down service...")

	if err = app.Shutdown(); err != nil {
		sugaredLogger.Error(err)
	}
}
