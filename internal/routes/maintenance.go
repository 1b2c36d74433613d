package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
	"gearguard/pkg/middleware"
)

func registerMaintenanceRoutes(api *echo.Group, ctrl *controllers.MaintenanceController, authMW *middleware.AuthMiddleware) {
	api.GET("/maintenance", ctrl.GetRequests)
	api.GET("/maintenance/kanban", ctrl.GetKanbanBoard)
	api.GET("/maintenance/:id", ctrl.FindRequest)
	api.POST("/maintenance", ctrl.CreateRequest, authMW.Auth)
	api.PUT("/maintenance/:id", ctrl.UpdateRequest, authMW.Auth)
	api.PATCH("/maintenance/:id/status", ctrl.UpdateRequestStatus, authMW.Auth)
	api.DELETE("/maintenance/:id", ctrl.DeleteRequest, authMW.Auth)

	api.GET("/calendar", ctrl.GetCalendar)
}
