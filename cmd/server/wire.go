//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"socialstream/internal/app"
	"socialstream/internal/auth"
	"socialstream/internal/config"
	"socialstream/internal/http"
	"socialstream/internal/http/controller"
	"socialstream/internal/logging"
	"socialstream/internal/queue/rabbitmq"
	"socialstream/internal/service/comments"
	"socialstream/internal/service/notify"
	"socialstream/internal/service/social"
	"socialstream/internal/store"
	"socialstream/internal/ws"
)

func InitializeApp() (*app.App, error) {
	wire.Build(
		config.New,
		logging.New,
		store.NewStore,
		auth.NewVerifier,
		ws.NewHub,
		ws.NewHandler,
		notify.NewService,
		comments.NewService,
		social.NewService,
		controller.NewHandler,
		http.NewRouter,
		rabbitmq.NewConsumer,
		rabbitmq.NewPublisher,
		app.NewApp,
	)
	return &app.App{}, nil
}
