package health

import "weather-page/internal/domain/model"

type UseCase interface {
	CheckHealth() model.HealthResponse
}
