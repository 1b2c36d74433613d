package services

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	"gearguard/pkg/types"
)

// DashboardCacheKey holds the serialized snapshot. Every equipment or
// request mutation deletes it, so readers never see counts older than
// the last write plus the TTL.
const DashboardCacheKey = "gearguard:dashboard"

type DashboardService struct {
	equipmentRepository   repositories.EquipmentRepositoryInterface
	maintenanceRepository repositories.MaintenanceRepositoryInterface
	cache                 repositories.CacheRepositoryInterface
	cacheTTL              time.Duration
	logger                *zap.Logger
}

func NewDashboardService(
	equipmentRepository repositories.EquipmentRepositoryInterface,
	maintenanceRepository repositories.MaintenanceRepositoryInterface,
	cache repositories.CacheRepositoryInterface,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		equipmentRepository:   equipmentRepository,
		maintenanceRepository: maintenanceRepository,
		cache:                 cache,
		cacheTTL:              cacheTTL,
		logger:                logger,
	}
}

// GetDashboard serves the cached snapshot when present, otherwise
// recomputes it from the full equipment and request sets. Cache
// failures degrade to a recompute, never to an error.
func (s *DashboardService) GetDashboard(ctx context.Context) (*dto.DashboardSnapshotDTO, error) {
	if cached, err := s.cache.Get(ctx, DashboardCacheKey); err == nil {
		var snapshot dto.DashboardSnapshotDTO
		if err := json.Unmarshal([]byte(cached), &snapshot); err == nil {
			return &snapshot, nil
		}
		s.logger.Warn("discarding unreadable dashboard cache entry")
	}

	equipment, _, err := s.equipmentRepository.GetEquipments(ctx, types.Filter{})
	if err != nil {
		return nil, err
	}
	requests, _, err := s.maintenanceRepository.GetRequests(ctx, types.Filter{})
	if err != nil {
		return nil, err
	}

	snapshot := dto.DashboardFromSnapshot(entities.BuildDashboardSnapshot(equipment, requests), time.Now())

	if raw, err := json.Marshal(snapshot); err == nil {
		if err := s.cache.Set(ctx, DashboardCacheKey, raw, s.cacheTTL); err != nil {
			s.logger.Warn("failed to cache dashboard snapshot", zap.Error(err))
		}
	}
	return &snapshot, nil
}
