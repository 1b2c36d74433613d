package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
	"gearguard/pkg/middleware"
)

func registerEquipmentRoutes(api *echo.Group, ctrl *controllers.EquipmentController, authMW *middleware.AuthMiddleware) {
	api.GET("/equipment", ctrl.GetEquipments)
	api.GET("/equipment/:id", ctrl.FindEquipment)
	api.POST("/equipment", ctrl.CreateEquipment, authMW.Auth)
	api.PUT("/equipment/:id", ctrl.UpdateEquipment, authMW.Auth)
	api.DELETE("/equipment/:id", ctrl.DeleteEquipment, authMW.Auth)
}
