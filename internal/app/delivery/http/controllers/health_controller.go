package controllers

import (
	"context"
	"doccare-service/internal/app/contracts"
	"doccare-service/internal/pkg/constvars"
	"doccare-service/internal/pkg/dto/responses"
	"doccare-service/internal/pkg/utils"
	"net/http"
	"sync"

	"go.uber.org/zap"
)

type HealthController struct {
	Log      *zap.Logger
	Checkers []contracts.HealthChecker
}

func NewHealthController(logger *zap.Logger, checkers ...contracts.HealthChecker) *HealthController {
	return &HealthController{
		Log:      logger,
		Checkers: checkers,
	}
}

// Check pings every dependency concurrently and answers 503 when any is down.
func (ctrl *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), constvars.HealthCheckTimeout)
	defer cancel()

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		healthy = true
		report  = responses.HealthCheck{
			Status:       constvars.HealthStatusUp,
			Dependencies: make(map[string]string, len(ctrl.Checkers)),
		}
	)

	for _, checker := range ctrl.Checkers {
		wg.Add(1)
		go func(checker contracts.HealthChecker) {
			defer wg.Done()
			status := constvars.HealthStatusUp
			if err := checker.Check(ctx); err != nil {
				ctrl.Log.Warn("HealthController.Check dependency is down",
					zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
					zap.String(constvars.LoggingOperationKey, checker.Name()),
					zap.Error(err))
				status = constvars.HealthStatusDown
			}

			mu.Lock()
			defer mu.Unlock()
			report.Dependencies[checker.Name()] = status
			if status == constvars.HealthStatusDown {
				healthy = false
			}
		}(checker)
	}
	wg.Wait()

	if !healthy {
		report.Status = constvars.HealthStatusDown
		utils.BuildResponse(w, constvars.StatusServiceUnavailable, false, constvars.HealthCheckDegradedMessage, report)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthCheckSuccessMessage, report)
}
