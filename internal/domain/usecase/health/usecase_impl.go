package health

import (
	"strconv"
	"time"

	"weather-page/internal/domain/gateway/file"
	"weather-page/internal/domain/model"
)

type healthUseCase struct {
	pageGateway file.PageGateway
}

func NewHealthUseCase(pageGateway file.PageGateway) UseCase {
	return &healthUseCase{
		pageGateway: pageGateway,
	}
}

// CheckHealth is UP once the page has been generated at least once.
func (useCase *healthUseCase) CheckHealth() model.HealthResponse {
	info, err := useCase.pageGateway.Stat()
	if err != nil {
		return model.HealthResponse{
			Status: model.StatusDown,
			Page: model.ComponentHealthStatus{
				Status: model.StatusDown,
				Details: map[string]string{
					"path":  useCase.pageGateway.Path(),
					"error": err.Error(),
				},
			},
		}
	}

	return model.HealthResponse{
		Status: model.StatusUp,
		Page: model.ComponentHealthStatus{
			Status: model.StatusUp,
			Details: map[string]string{
				"path":       info.Path,
				"size":       strconv.FormatInt(info.Size, 10),
				"modifiedAt": info.ModifiedAt.UTC().Format(time.RFC3339),
			},
		},
	}
}
