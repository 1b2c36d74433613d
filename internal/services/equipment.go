package services

import (
	"context"
	"time"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	"gearguard/pkg/types"
	"gearguard/pkg/utils"
)

type EquipmentService struct {
	equipmentRepository   repositories.EquipmentRepositoryInterface
	maintenanceRepository repositories.MaintenanceRepositoryInterface
	cache                 repositories.CacheRepositoryInterface
	logger                *zap.Logger
}

func NewEquipmentService(
	equipmentRepository repositories.EquipmentRepositoryInterface,
	maintenanceRepository repositories.MaintenanceRepositoryInterface,
	cache repositories.CacheRepositoryInterface,
	logger *zap.Logger,
) *EquipmentService {
	return &EquipmentService{
		equipmentRepository:   equipmentRepository,
		maintenanceRepository: maintenanceRepository,
		cache:                 cache,
		logger:                logger,
	}
}

func (s *EquipmentService) GetEquipments(ctx context.Context, filter types.Filter) ([]dto.EquipmentDTO, uint64, error) {
	items, total, err := s.equipmentRepository.GetEquipments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return dto.EquipmentListFromEntities(items), total, nil
}

func (s *EquipmentService) FindEquipment(ctx context.Context, id uint64) (*dto.EquipmentDTO, error) {
	e, err := s.equipmentRepository.FindEquipment(ctx, id)
	if err != nil {
		return nil, err
	}
	result := dto.EquipmentFromEntity(*e)
	return &result, nil
}

// GetEquipmentDetail returns the record together with its maintenance
// history, newest first.
func (s *EquipmentService) GetEquipmentDetail(ctx context.Context, id uint64) (*dto.EquipmentDetailDTO, error) {
	e, err := s.equipmentRepository.FindEquipment(ctx, id)
	if err != nil {
		return nil, err
	}

	history, err := s.maintenanceRepository.GetRequestsByEquipment(ctx, id)
	if err != nil {
		return nil, err
	}

	return &dto.EquipmentDetailDTO{
		Equipment: dto.EquipmentFromEntity(*e),
		History:   dto.RequestListFromEntities(history, time.Now()),
	}, nil
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error) {
	entity, err := equipmentFromPayload(payload)
	if err != nil {
		return nil, err
	}

	created, err := s.equipmentRepository.CreateEquipment(ctx, entity)
	if err != nil {
		s.logger.Error("failed to create equipment", zap.Error(err))
		return nil, err
	}
	s.invalidateDashboard(ctx)

	result := dto.EquipmentFromEntity(*created)
	return &result, nil
}

func (s *EquipmentService) UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error) {
	entity, err := equipmentFromPayload(payload)
	if err != nil {
		return nil, err
	}

	if err := s.equipmentRepository.UpdateEquipment(ctx, id, entity); err != nil {
		return nil, err
	}
	s.invalidateDashboard(ctx)

	return s.FindEquipment(ctx, id)
}

// DeleteEquipment removes the record; its maintenance history stays.
func (s *EquipmentService) DeleteEquipment(ctx context.Context, id uint64) error {
	if err := s.equipmentRepository.DeleteEquipment(ctx, id); err != nil {
		return err
	}
	s.invalidateDashboard(ctx)
	return nil
}

func (s *EquipmentService) invalidateDashboard(ctx context.Context) {
	if err := s.cache.Delete(ctx, DashboardCacheKey); err != nil {
		s.logger.Warn("failed to invalidate dashboard cache", zap.Error(err))
	}
}

func equipmentFromPayload(payload dto.CreateEquipmentDTO) (entities.Equipment, error) {
	purchaseDate, err := utils.ParseDate(payload.PurchaseDate)
	if err != nil {
		return entities.Equipment{}, err
	}
	warrantyExpiry, err := utils.ParseDate(payload.WarrantyExpiry)
	if err != nil {
		return entities.Equipment{}, err
	}

	return entities.Equipment{
		Name:           payload.Name,
		Category:       payload.Category,
		Location:       null.NewString(payload.Location, payload.Location != ""),
		Status:         payload.Status,
		PurchaseDate:   purchaseDate,
		WarrantyExpiry: warrantyExpiry,
		Notes:          null.NewString(payload.Notes, payload.Notes != ""),
	}, nil
}
