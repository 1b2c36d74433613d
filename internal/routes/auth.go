package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
	"gearguard/pkg/middleware"
)

func registerAuthRoutes(api *echo.Group, ctrl *controllers.AuthController, authMW *middleware.AuthMiddleware) {
	auth := api.Group("/auth")
	auth.POST("/signup", ctrl.SignUp)
	auth.POST("/signin", ctrl.SignIn)
	auth.GET("/profile", ctrl.Profile, authMW.Auth)
}
