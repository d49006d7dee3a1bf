package controllers_fx

import (
	"go.uber.org/fx"
	"yatra/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewChatController),
	fx.Provide(controllers.NewDestinationsController))
