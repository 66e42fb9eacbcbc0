package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MrSnakeDoc/uadb/internal/admin"
	"github.com/redis/go-redis/v9"
)

// SettingsStore persists admin settings as JSON documents.
// It satisfies admin.SettingsStore.
type SettingsStore struct {
	client redis.Cmdable
}

var _ admin.SettingsStore = (*SettingsStore)(nil)

func NewSettingsStore(client redis.Cmdable) *SettingsStore {
	return &SettingsStore{client: client}
}

func (s *SettingsStore) LoadSite(ctx context.Context) (admin.SiteSettings, error) {
	site := admin.DefaultSiteSettings()
	if err := s.load(ctx, KeySiteSettings, &site); err != nil {
		return admin.SiteSettings{}, err
	}
	return site, nil
}

func (s *SettingsStore) SaveSite(ctx context.Context, site admin.SiteSettings) error {
	return s.save(ctx, KeySiteSettings, site)
}

func (s *SettingsStore) LoadAutoUpdate(ctx context.Context) (admin.AutoUpdateSettings, error) {
	au := admin.DefaultAutoUpdateSettings()
	if err := s.load(ctx, KeyAutoUpdateSettings, &au); err != nil {
		return admin.AutoUpdateSettings{}, err
	}
	return au, nil
}

func (s *SettingsStore) SaveAutoUpdate(ctx context.Context, au admin.AutoUpdateSettings) error {
	return s.save(ctx, KeyAutoUpdateSettings, au)
}

// load decodes key into dst, leaving dst untouched when the key is absent.
func (s *SettingsStore) load(ctx context.Context, key string, dst any) error {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return fmt.Errorf("failed to get %s: %w", key, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}
	return nil
}

func (s *SettingsStore) save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	if err := s.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}
