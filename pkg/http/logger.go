package http

import (
	"weather-page/pkg/log"

	"go.uber.org/zap"
)

// HTTPLogger interface defines methods for logging HTTP requests and responses
type HTTPLogger interface {
	// LogRequest is called before the request is sent. url has redacted parameters masked.
	LogRequest(method, url string, headers map[string]string)

	// LogResponseSuccess is called immediately after receiving a 2xx response
	LogResponseSuccess(method, url string, httpStatus int, latency int64)

	// LogResponseError is called after a transport failure (httpStatus 0) or a non-2xx response
	LogResponseError(method, url string, httpStatus int, responseBody string, latency int64, err error)
}

type noopLogger struct{}

func (noopLogger) LogRequest(string, string, map[string]string)               {}
func (noopLogger) LogResponseSuccess(string, string, int, int64)              {}
func (noopLogger) LogResponseError(string, string, int, string, int64, error) {}

// ZapLogger writes HTTP traffic through the application zap logger.
type ZapLogger struct {
	// MaxBodyLength truncates logged error bodies. Zero keeps 512 bytes.
	MaxBodyLength int
}

func (l ZapLogger) LogRequest(method, url string, headers map[string]string) {
	log.Debug("HTTP request", zap.String("method", method), zap.String("url", url), zap.Int("headers", len(headers)))
}

func (l ZapLogger) LogResponseSuccess(method, url string, httpStatus int, latency int64) {
	log.Info("HTTP response",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency))
}

func (l ZapLogger) LogResponseError(method, url string, httpStatus int, responseBody string, latency int64, err error) {
	limit := l.MaxBodyLength
	if limit <= 0 {
		limit = 512
	}
	if len(responseBody) > limit {
		responseBody = responseBody[:limit]
	}
	log.Warn("HTTP request failed",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.String("response_body", responseBody),
		zap.Int64("latency_ms", latency),
		zap.Error(err))
}
