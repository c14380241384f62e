package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"weather-page/configs"
	"weather-page/internal/application/render"
	"weather-page/internal/domain/gateway/api"
	"weather-page/internal/domain/gateway/file"
	"weather-page/internal/domain/usecase/forecast"
	"weather-page/internal/domain/usecase/page"
	"weather-page/internal/domain/usecase/report"
	"weather-page/pkg/http"
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

	log.Info(msg.GetMessage("app.start"))

	// Init gateways
	settings := api.OpenWeatherSettings{
		APIKey: env.OpenWeatherKey,
		Units:  cfg.OpenWeather.Units,
		Lang:   cfg.OpenWeather.Lang,
	}
	clientOptions := http.ClientOptions{
		ReadTimeout:       cfg.OpenWeather.Timeout,
		ConnectionTimeout: cfg.OpenWeather.Timeout,
		RequestsPerSecond: cfg.OpenWeather.RequestsPerSecond,
		Logger:            http.ZapLogger{},
	}
	weatherGateway := api.NewWeatherGateway(api.NewOpenWeatherClient(cfg.OpenWeather.BaseURL, settings, clientOptions))
	var astronomyGateway api.AstronomyGateway
	if cfg.Features.MoonPhase {
		astronomyGateway = api.NewAstronomyGateway(api.NewOpenWeatherClient(cfg.OpenWeather.AstronomyBaseURL, settings, clientOptions))
	}
	pageGateway := file.NewLocalPageGateway(cfg.OutputPath)

	// Init renderer
	renderer, err := render.NewRenderer(render.CatalogLabels(msg.GetMessageOrDefault), cfg.OpenWeather.IconURL)
	if err != nil {
		log.Fatalf("fail to build renderer: %v", err)
	}

	// Init UseCase
	hourlySlots := 0
	if cfg.Features.HourlyStrip {
		hourlySlots = cfg.Forecast.HourlySlots
	}
	reportUseCase := report.NewReportUseCase(weatherGateway, astronomyGateway, report.Options{
		Strategy:            forecast.ParseStrategy(cfg.Forecast.Strategy),
		HourlySlots:         hourlySlots,
		MoonPhase:           cfg.Features.MoonPhase,
		FallbackCoordinates: cfg.Features.FallbackCoordinates,
		FetchFailedText:     msg.GetMessageOrDefault("label.fetch-failed", "取得失敗"),
	}, time.Now)
	pageUseCase := page.NewPageUseCase(reportUseCase, renderer, pageGateway, time.Now)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := pageUseCase.Generate(ctx, cfg.Cities)
	if err != nil {
		log.Fatalf("fail to generate page: %v", err)
	}

	log.Infow(msg.GetMessage("app.finished", result.Cities, result.Path, result.CitiesDegraded),
		"run_id", result.RequestID,
		"bytes", result.Bytes,
	)
}
