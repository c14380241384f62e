package main

import (
	"github.com/labstack/echo/v4"

	"weather-page/configs"
	"weather-page/internal/application/controller"
	"weather-page/internal/application/middleware"
	"weather-page/internal/domain/gateway/file"
	"weather-page/internal/domain/usecase/health"
	"weather-page/pkg/log"
	"weather-page/pkg/msg"
	"weather-page/pkg/resource"
)

func main() {
	defer log.Sync()

	env, err := configs.Load()
	if err != nil {
		log.Fatalf("fail to load environment: %v", err)
	}
	log.SetApplicationName(env.ApplicationName)
	if err := resource.Load(); err != nil {
		log.Fatalf("%v", err)
	}
	if err := msg.Load(); err != nil {
		log.Fatalf("%v", err)
	}
	cfg, err := configs.LoadApp()
	if err != nil {
		log.Fatalf("%v", err)
	}

	// Init infra
	e := echo.New()
	e.HideBanner = true
	middleware.SetupRequestLogger(e)
	api := e.Group(cfg.Server.ContextPath)

	// Init Gateway
	pageGateway := file.NewLocalPageGateway(cfg.OutputPath)

	// Init UseCase
	healthUseCase := health.NewHealthUseCase(pageGateway)

	// Init Controller
	healthController := controller.NewHealthController(api, healthUseCase)
	pageController := controller.NewPageController(api, pageGateway)

	// Init Routes
	healthController.InitHealthRoutes()
	pageController.InitPageRoutes()

	port := cfg.Server.Port
	log.Info(msg.GetMessage("app.preview-start", port))
	e.Logger.Fatal(e.Start(":" + port))
}
