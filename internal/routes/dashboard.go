package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
)

func registerDashboardRoutes(api *echo.Group, ctrl *controllers.DashboardController) {
	api.GET("/dashboard", ctrl.GetDashboard)
}
