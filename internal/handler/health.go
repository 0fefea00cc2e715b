package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/deppfellow/tutoring-api/internal/middleware"
	"github.com/deppfellow/tutoring-api/internal/server"
)

// StoreCounter reports record counts per repository. A failing count marks
// the store unhealthy.
type StoreCounter interface {
	Counts(ctx context.Context) (map[string]int, error)
}

// HealthHandler serves /status for load balancers and uptime monitors.
type HealthHandler struct {
	Handler
	store StoreCounter
}

func NewHealthHandler(s *server.Server, store StoreCounter) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
		store:   store,
	}
}

// CheckHealth runs the configured checks.
//
// A failing store check answers 503. Redis only carries background email,
// so a failing redis check degrades the status but still answers 200.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	checks := make(map[string]interface{})
	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      checks,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	isHealthy := true
	isDegraded := false
	obs := h.server.Config.Observability

	if obs.HasCheck("store") && h.store != nil {
		storeStart := time.Now()
		counts, err := h.store.Counts(ctx)
		if err != nil {
			isHealthy = false
			checks["store"] = failedCheck(storeStart, err)
			h.recordCheckError(logger, "store", storeStart, err)
		} else {
			checks["store"] = map[string]interface{}{
				"status":        "healthy",
				"response_time": time.Since(storeStart).String(),
				"records":       counts,
			}
		}
	}

	if obs.HasCheck("redis") && h.server.Redis != nil {
		redisStart := time.Now()
		if err := h.server.Redis.Ping(ctx).Err(); err != nil {
			isDegraded = true
			checks["redis"] = failedCheck(redisStart, err)
			h.recordCheckError(logger, "redis", redisStart, err)
		} else {
			checks["redis"] = map[string]interface{}{
				"status":        "healthy",
				"response_time": time.Since(redisStart).String(),
			}
		}
	}

	if !isHealthy {
		response["status"] = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		if app := h.server.LoggerService.GetApplication(); app != nil {
			app.RecordCustomEvent("HealthCheckError", map[string]interface{}{
				"check_type":        "overall",
				"operation":         "health_check",
				"error_type":        "overall_unhealthy",
				"total_duration_ms": time.Since(start).Milliseconds(),
			})
		}

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	if isDegraded {
		response["status"] = "degraded"
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	if err := c.JSON(http.StatusOK, response); err != nil {
		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}

func failedCheck(start time.Time, err error) map[string]interface{} {
	return map[string]interface{}{
		"status":        "unhealthy",
		"response_time": time.Since(start).String(),
		"error":         err.Error(),
	}
}

func (h *HealthHandler) recordCheckError(logger zerolog.Logger, check string, start time.Time, err error) {
	logger.Error().
		Err(err).
		Str("check", check).
		Dur("response_time", time.Since(start)).
		Msg("health check failed")

	if app := h.server.LoggerService.GetApplication(); app != nil {
		app.RecordCustomEvent("HealthCheckError", map[string]interface{}{
			"check_type":       check,
			"operation":        "health_check",
			"error_type":       check + "_unhealthy",
			"response_time_ms": time.Since(start).Milliseconds(),
			"error_message":    err.Error(),
		})
	}
}
