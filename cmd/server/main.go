package main

import (
	"github.com/hirebot/hirebot/internal/api/controllers"
	"github.com/hirebot/hirebot/internal/domain/entities"
	"github.com/hirebot/hirebot/internal/impl/config"
	"github.com/hirebot/hirebot/internal/impl/tools"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	cfg, err := config.InitConfig()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	toolFactory, err := tools.NewToolFactory()
	if err != nil {
		logger.Fatal("Failed to initialize tool factory", zap.Error(err))
	}

	factories, err := toolFactory.ListFactories()
	if err != nil {
		logger.Fatal("Failed to list tool factories", zap.Error(err))
	}

	var registered []entities.Tool
	for _, entry := range factories {
		tool, err := toolFactory.CreateTool(entry.Name, entry.Name, entry.Description, map[string]string{}, logger)
		if err != nil {
			logger.Fatal("Failed to construct tool",
				zap.String("tool", entry.Name),
				zap.Error(err))
		}
		registered = append(registered, tool)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	toolController := controllers.NewToolController(logger, registered)
	toolController.RegisterRoutes(e)

	logger.Info("Starting tool server", zap.String("address", cfg.ServerAddress))
	if err := e.Start(cfg.ServerAddress); err != nil {
		logger.Fatal("Server stopped", zap.Error(err))
	}
}
