package main

import (
	"context"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"log"
	"os"
	"yatra/cmd/fx/chat_fx"
	"yatra/cmd/fx/controllers_fx"
	"yatra/cmd/fx/destinations_fx"
	"yatra/internal/api/controllers"
	"yatra/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	app := fx.New(
		destinations_fx.Module,
		chat_fx.Module,
		controllers_fx.Module,

		fx.Invoke(StartServer),
		fx.Provide(ProvideRouter),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	chatController *controllers.ChatController,
	destinationsController *controllers.DestinationsController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, chatController, destinationsController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	chatController *controllers.ChatController,
	destinationsController *controllers.DestinationsController) {

	destinationsGroup := r.Group("/destinations")
	destinationsGroup.GET("/search", destinationsController.SearchDestinationsHandler)
	destinationsGroup.GET("/popular", destinationsController.PopularDestinationsHandler)
	destinationsGroup.GET("/list-all", destinationsController.ListAllDestinationsHandler)

	chatGroup := r.Group("/chat")
	chatGroup.POST("", chatController.ChatHandler)
	chatGroup.GET("/history", chatController.ChatHistoryHandler)
}
