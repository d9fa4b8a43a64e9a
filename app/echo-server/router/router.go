package router

import (
	"rfmInsights/internal/rest"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupDashboardRoutes(e *echo.Echo, handler *rest.DashboardHandler) {
	e.GET("/", handler.Dashboard)
}

func SetupOpsRoutes(e *echo.Echo, handler *rest.HealthHandler) {
	e.GET("/healthz", handler.Healthz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
