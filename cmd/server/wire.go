//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"
	"pantry/internal/app"
	"pantry/internal/config"
	"pantry/internal/http"
	"pantry/internal/http/controller"
	"pantry/internal/logging"
	"pantry/internal/metrics"
	"pantry/internal/queue/rabbitmq"
	"pantry/internal/service/inventory"
	"pantry/internal/session"
	"pantry/internal/sse"
	"pantry/internal/store"
	"pantry/internal/view"
)

func InitializeApp() (*app.App, func(), error) {
	wire.Build(
		config.New,
		logging.New,
		store.NewStore,
		sse.NewHub,
		metrics.NewRegistry,
		metrics.NewStoreMetrics,
		inventory.NewService,
		wire.Bind(new(view.StoreClient), new(*inventory.Service)),
		view.New,
		session.NewStore,
		controller.NewHandler,
		http.NewRouter,
		rabbitmq.NewConsumer,
		rabbitmq.NewPublisher,
		app.NewApp,
	)
	return &app.App{}, nil, nil
}
