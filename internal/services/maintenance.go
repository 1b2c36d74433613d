package services

import (
	"context"
	"sort"
	"time"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	"gearguard/pkg/types"
	"gearguard/pkg/utils"
)

type MaintenanceService struct {
	maintenanceRepository repositories.MaintenanceRepositoryInterface
	cache                 repositories.CacheRepositoryInterface
	logger                *zap.Logger
}

func NewMaintenanceService(
	maintenanceRepository repositories.MaintenanceRepositoryInterface,
	cache repositories.CacheRepositoryInterface,
	logger *zap.Logger,
) *MaintenanceService {
	return &MaintenanceService{
		maintenanceRepository: maintenanceRepository,
		cache:                 cache,
		logger:                logger,
	}
}

func (s *MaintenanceService) GetRequests(ctx context.Context, filter types.Filter) ([]dto.MaintenanceRequestDTO, uint64, error) {
	items, total, err := s.maintenanceRepository.GetRequests(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return dto.RequestListFromEntities(items, time.Now()), total, nil
}

func (s *MaintenanceService) FindRequest(ctx context.Context, id uint64) (*dto.MaintenanceRequestDTO, error) {
	r, err := s.maintenanceRepository.FindRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	result := dto.RequestFromEntity(*r, time.Now())
	return &result, nil
}

func (s *MaintenanceService) CreateRequest(ctx context.Context, payload dto.CreateMaintenanceRequestDTO) (*dto.MaintenanceRequestDTO, error) {
	dueDate, err := utils.ParseDate(payload.DueDate)
	if err != nil {
		return nil, err
	}

	entity := entities.MaintenanceRequest{
		EquipmentID:   payload.EquipmentID,
		Title:         payload.Title,
		Description:   null.NewString(payload.Description, payload.Description != ""),
		Priority:      payload.Priority,
		Status:        payload.Status,
		AssignedTo:    null.NewString(payload.AssignedTo, payload.AssignedTo != ""),
		RequesterName: null.NewString(payload.RequesterName, payload.RequesterName != ""),
		DueDate:       dueDate,
		EstimatedCost: payload.EstimatedCost,
		IsRecurring:   payload.IsRecurring,
		Frequency:     payload.Frequency,
	}
	if entity.Status == "" {
		entity.Status = entities.StatusNew
	}
	if entity.Frequency == "" {
		entity.Frequency = entities.FrequencyNone
	}

	created, err := s.maintenanceRepository.CreateRequest(ctx, entity)
	if err != nil {
		s.logger.Error("failed to create maintenance request", zap.Error(err))
		return nil, err
	}
	s.invalidateDashboard(ctx)

	result := dto.RequestFromEntity(*created, time.Now())
	return &result, nil
}

func (s *MaintenanceService) UpdateRequest(ctx context.Context, id uint64, payload dto.UpdateMaintenanceRequestDTO) (*dto.MaintenanceRequestDTO, error) {
	dueDate, err := utils.ParseDate(payload.DueDate)
	if err != nil {
		return nil, err
	}

	entity := entities.MaintenanceRequest{
		EquipmentID:   payload.EquipmentID,
		Title:         payload.Title,
		Description:   null.NewString(payload.Description, payload.Description != ""),
		Priority:      payload.Priority,
		Status:        payload.Status,
		AssignedTo:    null.NewString(payload.AssignedTo, payload.AssignedTo != ""),
		RequesterName: null.NewString(payload.RequesterName, payload.RequesterName != ""),
		DueDate:       dueDate,
		EstimatedCost: payload.EstimatedCost,
		ActualCost:    payload.ActualCost,
		IsRecurring:   payload.IsRecurring,
		Frequency:     payload.Frequency,
	}
	if entity.Frequency == "" {
		entity.Frequency = entities.FrequencyNone
	}

	if err := s.maintenanceRepository.UpdateRequest(ctx, id, entity); err != nil {
		return nil, err
	}
	s.invalidateDashboard(ctx)

	return s.FindRequest(ctx, id)
}

// UpdateRequestStatus is the board drag handler. Setting the current
// status again succeeds without complaint.
func (s *MaintenanceService) UpdateRequestStatus(ctx context.Context, id uint64, payload dto.UpdateMaintenanceStatusDTO) (*dto.MaintenanceRequestDTO, error) {
	if err := s.maintenanceRepository.UpdateRequestStatus(ctx, id, payload.Status); err != nil {
		return nil, err
	}
	s.invalidateDashboard(ctx)

	return s.FindRequest(ctx, id)
}

func (s *MaintenanceService) DeleteRequest(ctx context.Context, id uint64) error {
	if err := s.maintenanceRepository.DeleteRequest(ctx, id); err != nil {
		return err
	}
	s.invalidateDashboard(ctx)
	return nil
}

// GetKanbanBoard always returns the four stored-status columns, each in
// board order. Overdue is a column of its own; cards past their due
// date stay wherever their stored status puts them.
func (s *MaintenanceService) GetKanbanBoard(ctx context.Context, filter types.Filter) (*dto.KanbanBoardDTO, error) {
	filter.Limit = 0
	items, _, err := s.maintenanceRepository.GetRequests(ctx, filter)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	board := dto.KanbanBoardDTO{Columns: make([]dto.KanbanColumnDTO, 0, len(entities.RequestStatuses))}
	for _, column := range entities.PartitionByStatus(items) {
		board.Columns = append(board.Columns, dto.KanbanColumnDTO{
			Status:   column.Status,
			Requests: dto.RequestListFromEntities(column.Requests, now),
		})
	}
	return &board, nil
}

// GetCalendar groups dated requests by due date and lists the next ten
// due today or later.
func (s *MaintenanceService) GetCalendar(ctx context.Context) (*dto.CalendarDTO, error) {
	items, err := s.maintenanceRepository.GetScheduled(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	grouped := entities.GroupByDueDate(items)

	days := make([]dto.CalendarDayDTO, 0, len(grouped))
	for _, date := range sortedKeys(grouped) {
		days = append(days, dto.CalendarDayDTO{
			Date:     date,
			Requests: dto.RequestListFromEntities(grouped[date], now),
		})
	}

	return &dto.CalendarDTO{
		Days:     days,
		Upcoming: dto.RequestListFromEntities(entities.UpcomingRequests(items, now, upcomingLimit), now),
	}, nil
}

const upcomingLimit = 10

func sortedKeys(grouped map[string][]entities.MaintenanceRequest) []string {
	keys := make([]string, 0, len(grouped))
	for k := range grouped {
		keys = append(keys, k)
	}
	// Dates use a fixed YYYY-MM-DD layout, so lexical order is
	// chronological order.
	sort.Strings(keys)
	return keys
}

func (s *MaintenanceService) invalidateDashboard(ctx context.Context) {
	if err := s.cache.Delete(ctx, DashboardCacheKey); err != nil {
		s.logger.Warn("failed to invalidate dashboard cache", zap.Error(err))
	}
}
