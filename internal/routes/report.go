package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
	"gearguard/pkg/middleware"
)

func registerReportRoutes(api *echo.Group, ctrl *controllers.ReportController, authMW *middleware.AuthMiddleware) {
	api.GET("/reports/maintenance.xlsx", ctrl.GetMaintenanceReport, authMW.Auth)
}
