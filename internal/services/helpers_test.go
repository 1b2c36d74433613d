package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/repositories"
)

var errCacheMiss = errors.New("cache miss")

// stubCache is an in-process stand-in for the redis cache.
type stubCache struct {
	mu      sync.Mutex
	data    map[string]string
	sets    int
	deletes int
}

func newStubCache() *stubCache {
	return &stubCache{data: make(map[string]string)}
}

func (c *stubCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch v := value.(type) {
	case []byte:
		c.data[key] = string(v)
	case string:
		c.data[key] = v
	default:
		return errors.New("unsupported cache value type")
	}
	c.sets++
	return nil
}

func (c *stubCache) Get(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.data[key]
	if !ok {
		return "", errCacheMiss
	}
	return v, nil
}

func (c *stubCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, key := range keys {
		delete(c.data, key)
	}
	c.deletes++
	return nil
}

type testEnv struct {
	store       *repositories.MemoryStore
	cache       *stubCache
	equipment   *EquipmentService
	maintenance *MaintenanceService
	dashboard   *DashboardService
}

func newTestEnv() *testEnv {
	store := repositories.NewMemoryStore()
	cache := newStubCache()
	logger := zap.NewNop()

	return &testEnv{
		store:       store,
		cache:       cache,
		equipment:   NewEquipmentService(store, store, cache, logger),
		maintenance: NewMaintenanceService(store, cache, logger),
		dashboard:   NewDashboardService(store, store, cache, time.Minute, logger),
	}
}

func (e *testEnv) mustCreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) dto.EquipmentDTO {
	created, err := e.equipment.CreateEquipment(ctx, payload)
	if err != nil {
		panic(err)
	}
	return *created
}

func (e *testEnv) mustCreateRequest(ctx context.Context, payload dto.CreateMaintenanceRequestDTO) dto.MaintenanceRequestDTO {
	created, err := e.maintenance.CreateRequest(ctx, payload)
	if err != nil {
		panic(err)
	}
	return *created
}
