package repositories

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/types"
)

// MemoryStore keeps equipment and maintenance requests in process
// memory. It mirrors the SQL repositories' filtering and ordering so
// services can be exercised without a database.
type MemoryStore struct {
	mu sync.RWMutex

	equipment map[uint64]entities.Equipment
	requests  map[uint64]entities.MaintenanceRequest

	nextEquipmentID uint64
	nextRequestID   uint64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		equipment: make(map[uint64]entities.Equipment),
		requests:  make(map[uint64]entities.MaintenanceRequest),
	}
}

func matchesSubstring(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func (s *MemoryStore) GetEquipments(_ context.Context, filter types.Filter) ([]entities.Equipment, uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Equipment, 0, len(s.equipment))
	for _, e := range s.equipment {
		if filter.Search != "" && !matchesSubstring(e.Name, filter.Search) && !matchesSubstring(e.Location.String, filter.Search) {
			continue
		}
		if category, ok := filter.Filter["category"]; ok && e.Category != category {
			continue
		}
		if status, ok := filter.Filter["status"]; ok && e.Status != status {
			continue
		}
		items = append(items, e)
	}

	sort.Slice(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		}
		return items[i].ID > items[j].ID
	})

	total := uint64(len(items))
	items = applyWindow(items, filter)
	return items, total, nil
}

func applyWindow[T any](items []T, filter types.Filter) []T {
	if filter.Limit <= 0 {
		return items
	}
	if filter.Offset >= len(items) {
		return []T{}
	}
	items = items[filter.Offset:]
	if len(items) > filter.Limit {
		items = items[:filter.Limit]
	}
	return items
}

func (s *MemoryStore) FindEquipment(_ context.Context, id uint64) (*entities.Equipment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.equipment[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &e, nil
}

func (s *MemoryStore) CreateEquipment(_ context.Context, e entities.Equipment) (*entities.Equipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextEquipmentID++
	e.ID = s.nextEquipmentID
	now := time.Now()
	e.CreatedAt = now
	e.UpdatedAt = now
	s.equipment[e.ID] = e
	return &e, nil
}

func (s *MemoryStore) UpdateEquipment(_ context.Context, id uint64, e entities.Equipment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.equipment[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	e.ID = id
	e.CreatedAt = current.CreatedAt
	e.UpdatedAt = time.Now()
	s.equipment[id] = e
	return nil
}

// DeleteEquipment removes the record only; requests referencing it are
// left in place with a dangling equipment_id.
func (s *MemoryStore) DeleteEquipment(_ context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.equipment[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(s.equipment, id)
	return nil
}

// withJoined fills the display columns the SQL layer gets from its
// LEFT JOIN. Deleted equipment leaves them null.
func (s *MemoryStore) withJoined(r entities.MaintenanceRequest) entities.MaintenanceRequest {
	if e, ok := s.equipment[r.EquipmentID]; ok {
		r.EquipmentName.SetValid(e.Name)
		r.EquipmentCategory.SetValid(e.Category)
	}
	return r
}

func (s *MemoryStore) GetRequests(_ context.Context, filter types.Filter) ([]entities.MaintenanceRequest, uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.MaintenanceRequest, 0, len(s.requests))
	for _, r := range s.requests {
		r = s.withJoined(r)
		if filter.Search != "" && !matchesSubstring(r.Title, filter.Search) && !matchesSubstring(r.EquipmentName.String, filter.Search) {
			continue
		}
		if status, ok := filter.Filter["status"]; ok && r.Status != status {
			continue
		}
		if priority, ok := filter.Filter["priority"]; ok && r.Priority != priority {
			continue
		}
		if rawID, ok := filter.Filter["equipment_id"]; ok {
			id, err := strconv.ParseUint(rawID, 10, 64)
			if err != nil || r.EquipmentID != id {
				continue
			}
		}
		items = append(items, r)
	}

	sort.Slice(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		}
		return items[i].ID > items[j].ID
	})
	entities.SortForBoard(items)

	total := uint64(len(items))
	items = applyWindow(items, filter)
	return items, total, nil
}

func (s *MemoryStore) GetRequestsByEquipment(_ context.Context, equipmentID uint64) ([]entities.MaintenanceRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.MaintenanceRequest, 0)
	for _, r := range s.requests {
		if r.EquipmentID == equipmentID {
			items = append(items, s.withJoined(r))
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		}
		return items[i].ID > items[j].ID
	})
	return items, nil
}

func (s *MemoryStore) GetScheduled(_ context.Context) ([]entities.MaintenanceRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.MaintenanceRequest, 0)
	for _, r := range s.requests {
		if r.DueDate.Valid {
			items = append(items, s.withJoined(r))
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if !items[i].DueDate.Time.Equal(items[j].DueDate.Time) {
			return items[i].DueDate.Time.Before(items[j].DueDate.Time)
		}
		return items[i].ID < items[j].ID
	})
	return items, nil
}

func (s *MemoryStore) FindRequest(_ context.Context, id uint64) (*entities.MaintenanceRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.requests[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	r = s.withJoined(r)
	return &r, nil
}

func (s *MemoryStore) CreateRequest(_ context.Context, r entities.MaintenanceRequest) (*entities.MaintenanceRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextRequestID++
	r.ID = s.nextRequestID
	now := time.Now()
	r.CreatedAt = now
	r.UpdatedAt = now
	s.requests[r.ID] = r
	r = s.withJoined(r)
	return &r, nil
}

func (s *MemoryStore) UpdateRequest(_ context.Context, id uint64, r entities.MaintenanceRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.requests[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	r.ID = id
	r.CreatedAt = current.CreatedAt
	r.UpdatedAt = time.Now()
	s.requests[id] = r
	return nil
}

func (s *MemoryStore) UpdateRequestStatus(_ context.Context, id uint64, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.requests[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	r.Status = status
	r.UpdatedAt = time.Now()
	s.requests[id] = r
	return nil
}

func (s *MemoryStore) DeleteRequest(_ context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.requests[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(s.requests, id)
	return nil
}
