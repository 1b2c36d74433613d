package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/repositories"
	"gearguard/pkg/types"
)

type ReportServiceInterface interface {
	GetMaintenanceReport(ctx context.Context, filter types.Filter) ([]dto.MaintenanceRequestDTO, error)
}

type reportService struct {
	maintenanceRepository repositories.MaintenanceRepositoryInterface
	logger                *zap.Logger
}

func NewReportService(maintenanceRepository repositories.MaintenanceRepositoryInterface, logger *zap.Logger) ReportServiceInterface {
	return &reportService{
		maintenanceRepository: maintenanceRepository,
		logger:                logger,
	}
}

// GetMaintenanceReport returns every matching request; exports are not
// paginated.
func (s *reportService) GetMaintenanceReport(ctx context.Context, filter types.Filter) ([]dto.MaintenanceRequestDTO, error) {
	filter.Limit = 0
	filter.Offset = 0

	items, _, err := s.maintenanceRepository.GetRequests(ctx, filter)
	if err != nil {
		s.logger.Error("failed to build maintenance report", zap.Error(err))
		return nil, err
	}
	return dto.RequestListFromEntities(items, time.Now()), nil
}
