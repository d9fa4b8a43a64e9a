package rest

import (
	"context"
	"net/http"
	"rfmInsights/business/rfm"
	"rfmInsights/domain"
	"rfmInsights/internal/charts"
	"rfmInsights/pkg/logger"
	"rfmInsights/pkg/metrics"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type DashboardService interface {
	BuildReport(ctx context.Context) (domain.RFMReport, error)
}

type DashboardHandler struct {
	rfmService DashboardService
	timeout    time.Duration
}

type ResponseError struct {
	Message string `json:"message"`
}

func NewDashboardHandler(rfmService DashboardService) *DashboardHandler {
	return &DashboardHandler{
		rfmService: rfmService,
		timeout:    10 * time.Second,
	}
}

// Dashboard recomputes the segmentation and serves the chart page. The
// page is rebuilt from the source file on every request; any failure
// collapses into one generic error so no pipeline detail reaches the
// caller.
func (h *DashboardHandler) Dashboard(c echo.Context) error {
	started := time.Now()

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	runID := uuid.NewString()
	ctx = context.WithValue(ctx, rfm.RunIDKey, runID)

	report, err := h.rfmService.BuildReport(ctx)
	if err != nil {
		logger.Error("Failed to build rfm report", "run_id", runID, "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "failed to build dashboard"})
	}

	page, err := charts.RenderPage(report)
	if err != nil {
		logger.Error("Failed to render dashboard page", "run_id", runID, "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "failed to build dashboard"})
	}

	metrics.DashboardRequests.Inc()
	metrics.DashboardRenderLatency.Observe(time.Since(started).Seconds())

	return c.HTMLBlob(http.StatusOK, page)
}
