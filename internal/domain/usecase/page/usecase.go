package page

import (
	"context"
	"time"

	"weather-page/internal/domain/entity"
)

// Renderer turns reports into the page document
type Renderer interface {
	Render(reports []entity.CityReport, at time.Time) string
}

// Result summarises one generation run
type Result struct {
	RequestID      string
	Path           string
	Cities         int
	CitiesDegraded int
	Bytes          int
	RenderedAt     time.Time
}

type UseCase interface {
	// Generate fetches every city, renders the page and overwrites the output file.
	// Only a write failure is returned as an error.
	Generate(ctx context.Context, cities []entity.City) (*Result, error)
}
