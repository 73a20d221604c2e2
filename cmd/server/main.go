package main

import (
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/OptionsTradingUni/Eksu-digital-marketplace-sub006/internal/controller"
	"github.com/OptionsTradingUni/Eksu-digital-marketplace-sub006/internal/middleware"
	"github.com/OptionsTradingUni/Eksu-digital-marketplace-sub006/internal/service"
	"github.com/OptionsTradingUni/Eksu-digital-marketplace-sub006/internal/settlement"
)

func main() {
	log := newLogger()
	defer log.Sync()

	addr := envOr("ADDR", ":3000")
	origins := envOr("ALLOW_ORIGINS", "http://localhost:5173")

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, X-Player-ID",
		AllowMethods:     "GET, POST, OPTIONS",
		AllowCredentials: true,
	}))

	recorder := settlement.NewRecorder()
	gameManager := service.NewGameManager(log, recorder)
	gameService := service.NewGameService(gameManager)

	gameController := controller.NewGameController(gameService)
	wsController := controller.NewWebSocketController(gameService, log)

	var wsOrigins []string
	for _, o := range strings.Split(origins, ",") {
		wsOrigins = append(wsOrigins, strings.TrimSpace(o))
	}

	app.Use("/ws", middleware.EnsurePlayerID())
	app.Get("/ws/game/:gameId", middleware.WebSocketUpgrade(), websocket.New(
		wsController.HandleConnection,
		websocket.Config{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			Origins:         wsOrigins,
		},
	))

	api := app.Group("/api", middleware.EnsurePlayerID())

	gameRoutes := api.Group("/game")
	gameRoutes.Post("/create", gameController.CreateGame)
	gameRoutes.Get("/:gameId", gameController.GetGameState)
	gameRoutes.Post("/:gameId/reset", gameController.ResetGame)
	gameRoutes.Get("/:gameId/legal", gameController.GetLegalTargets)

	api.Get("/results", gameController.GetResults)

	log.Info("server listening", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger() *zap.Logger {
	cfg := zap.NewProductionConfig()
	if envOr("LOG_MODE", "") == "dev" {
		cfg = zap.NewDevelopmentConfig()
	}
	if lvl, err := zapcore.ParseLevel(envOr("LOG_LEVEL", "info")); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	log, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return log
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
