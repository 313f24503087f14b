package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/najamfazal/leadtrack-solo/internal/entity"
)

const (
	appSettingsKey  = "settings:appConfig"
	salesCatalogKey = "settings:salesCatalog"

	settingsTTL = 15 * time.Minute
)

// Source is the uncached settings store the cache falls back to.
type Source interface {
	GetAppSettings(ctx context.Context) (*entity.AppSettings, error)
	SaveAppSettings(ctx context.Context, settings *entity.AppSettings) error
	GetSalesCatalog(ctx context.Context) (*entity.SalesCatalog, error)
}

// CachedSettingsStore reads settings documents through Redis. Cache
// failures degrade to the source, they never fail the request.
type CachedSettingsStore struct {
	Redis  *redis.Client
	Source Source
}

func NewCachedSettingsStore(rdb *redis.Client, source Source) *CachedSettingsStore {
	return &CachedSettingsStore{Redis: rdb, Source: source}
}

func (s *CachedSettingsStore) GetAppSettings(ctx context.Context) (*entity.AppSettings, error) {
	var settings entity.AppSettings
	if s.getCached(ctx, appSettingsKey, &settings) {
		return &settings, nil
	}

	fresh, err := s.Source.GetAppSettings(ctx)
	if err != nil {
		return nil, err
	}
	s.setCached(ctx, appSettingsKey, fresh)
	return fresh, nil
}

func (s *CachedSettingsStore) SaveAppSettings(ctx context.Context, settings *entity.AppSettings) error {
	if err := s.Source.SaveAppSettings(ctx, settings); err != nil {
		return err
	}
	// Invalidate only after the write landed.
	if err := s.Redis.Del(ctx, appSettingsKey).Err(); err != nil {
		log.Printf("⚠️ Failed to invalidate settings cache: %v", err)
	}
	return nil
}

func (s *CachedSettingsStore) GetSalesCatalog(ctx context.Context) (*entity.SalesCatalog, error) {
	var catalog entity.SalesCatalog
	if s.getCached(ctx, salesCatalogKey, &catalog) {
		return &catalog, nil
	}

	fresh, err := s.Source.GetSalesCatalog(ctx)
	if err != nil {
		return nil, err
	}
	s.setCached(ctx, salesCatalogKey, fresh)
	return fresh, nil
}

func (s *CachedSettingsStore) getCached(ctx context.Context, key string, out interface{}) bool {
	data, err := s.Redis.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		log.Printf("⚠️ Settings cache read failed for %s: %v", key, err)
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		log.Printf("⚠️ Corrupt cache entry for %s: %v", key, err)
		return false
	}
	return true
}

func (s *CachedSettingsStore) setCached(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.Redis.Set(ctx, key, data, settingsTTL).Err(); err != nil {
		log.Printf("⚠️ Settings cache write failed for %s: %v", key, err)
	}
}
