package page

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"weather-page/internal/domain/entity"
	"weather-page/internal/domain/gateway/file"
	"weather-page/internal/domain/usecase/report"
	"weather-page/pkg/log"
)

type pageUseCase struct {
	reportUseCase report.UseCase
	renderer      Renderer
	pageGateway   file.PageGateway
	now           func() time.Time
}

func NewPageUseCase(reportUseCase report.UseCase, renderer Renderer, pageGateway file.PageGateway, now func() time.Time) UseCase {
	if now == nil {
		now = time.Now
	}
	return &pageUseCase{
		reportUseCase: reportUseCase,
		renderer:      renderer,
		pageGateway:   pageGateway,
		now:           now,
	}
}

// Generate fetches every city, renders the page and overwrites the output file
func (uc *pageUseCase) Generate(ctx context.Context, cities []entity.City) (*Result, error) {
	requestID := uuid.New().String()
	log.Info("Page generation started",
		zap.String("request_id", requestID),
		zap.Int("cities", len(cities)))

	reports := uc.reportUseCase.BuildReports(ctx, requestID, cities)

	degraded := 0
	for _, r := range reports {
		if !r.Current.Available() {
			degraded++
		}
	}

	renderedAt := uc.now()
	html := uc.renderer.Render(reports, renderedAt)

	if err := uc.pageGateway.Write(html); err != nil {
		log.Error("Page generation failed",
			zap.String("request_id", requestID),
			zap.String("path", uc.pageGateway.Path()),
			zap.Error(err))
		return nil, fmt.Errorf("persist page: %w", err)
	}

	result := &Result{
		RequestID:      requestID,
		Path:           uc.pageGateway.Path(),
		Cities:         len(reports),
		CitiesDegraded: degraded,
		Bytes:          len(html),
		RenderedAt:     renderedAt,
	}
	log.Info("Page generation completed",
		zap.String("request_id", requestID),
		zap.String("path", result.Path),
		zap.Int("cities", result.Cities),
		zap.Int("cities_degraded", result.CitiesDegraded),
		zap.Int("bytes", result.Bytes))
	return result, nil
}
