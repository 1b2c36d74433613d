package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/controllers"
	"gearguard/internal/repositories"
	"gearguard/internal/services"
	"gearguard/pkg/config"
	"gearguard/pkg/middleware"
	"gearguard/pkg/service"
)

// InitRouter wires repositories, services and controllers and mounts
// everything under /api. Reads are public; mutations require a token.
func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, jwtSvc service.JWTService, logger *zap.Logger, cfg *config.Config) {
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)

	cacheRepo := repositories.NewRedisCacheRepository(redisClient)
	equipmentRepo := repositories.NewEquipmentRepository(dbConn)
	maintenanceRepo := repositories.NewMaintenanceRepository(dbConn)
	userRepo := repositories.NewUserRepository(dbConn)

	equipmentService := services.NewEquipmentService(equipmentRepo, maintenanceRepo, cacheRepo, logger)
	maintenanceService := services.NewMaintenanceService(maintenanceRepo, cacheRepo, logger)
	dashboardService := services.NewDashboardService(equipmentRepo, maintenanceRepo, cacheRepo, cfg.Cache.DashboardTTL, logger)
	reportService := services.NewReportService(maintenanceRepo, logger)
	authService := services.NewAuthService(userRepo, jwtSvc, logger)

	equipmentCtrl := controllers.NewEquipmentController(equipmentService, logger)
	maintenanceCtrl := controllers.NewMaintenanceController(maintenanceService, logger)
	dashboardCtrl := controllers.NewDashboardController(dashboardService, logger)
	reportCtrl := controllers.NewReportController(reportService, logger)
	authCtrl := controllers.NewAuthController(authService, logger)

	registerAuthRoutes(api, authCtrl, authMW)
	registerEquipmentRoutes(api, equipmentCtrl, authMW)
	registerMaintenanceRoutes(api, maintenanceCtrl, authMW)
	registerDashboardRoutes(api, dashboardCtrl)
	registerReportRoutes(api, reportCtrl, authMW)
}
