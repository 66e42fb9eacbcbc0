package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MrSnakeDoc/uadb/internal/domain"
	"github.com/redis/go-redis/v9"
)

// DefaultRecordTTL bounds how long a record dropped from the catalog
// lingers in the mirror.
const DefaultRecordTTL = 72 * time.Hour

// Store mirrors the catalog and persists admin settings in Redis.
type Store struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewStore creates a new Redis store
func NewStore(client redis.Cmdable) *Store {
	return &Store{
		client: client,
		ttl:    DefaultRecordTTL,
	}
}

// Ping reports whether Redis answers.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// SaveCatalog replaces the mirrored catalog in one transaction.
// Order lists are rewritten so LoadCatalog returns records in catalog order.
func (s *Store) SaveCatalog(ctx context.Context, userAgents []*domain.UserAgent, articles []*domain.Article) error {
	uaIDs, uaData, err := encodeRecords(userAgents, func(ua *domain.UserAgent) string { return ua.ID })
	if err != nil {
		return fmt.Errorf("failed to encode user agents: %w", err)
	}
	artIDs, artData, err := encodeRecords(articles, func(a *domain.Article) string { return a.ID })
	if err != nil {
		return fmt.Errorf("failed to encode articles: %w", err)
	}

	pipe := s.client.TxPipeline()

	for i, id := range uaIDs {
		pipe.Set(ctx, UserAgentKey(id), uaData[i], s.ttl)
	}
	for i, id := range artIDs {
		pipe.Set(ctx, ArticleKey(id), artData[i], s.ttl)
	}

	pipe.Del(ctx, KeyUserAgentOrder, KeyArticleOrder)
	if len(uaIDs) > 0 {
		pipe.RPush(ctx, KeyUserAgentOrder, toAny(uaIDs)...)
	}
	if len(artIDs) > 0 {
		pipe.RPush(ctx, KeyArticleOrder, toAny(artIDs)...)
	}
	pipe.Set(ctx, KeyCatalogSyncedAt, time.Now().UTC().Format(time.RFC3339), 0)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save catalog: %w", err)
	}
	return nil
}

// LoadCatalog reads the mirrored catalog back in order. IDs whose record
// has expired are skipped. An empty mirror yields empty slices.
func (s *Store) LoadCatalog(ctx context.Context) ([]*domain.UserAgent, []*domain.Article, error) {
	userAgents, err := loadOrdered[domain.UserAgent](ctx, s.client, KeyUserAgentOrder, UserAgentKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load user agents: %w", err)
	}
	articles, err := loadOrdered[domain.Article](ctx, s.client, KeyArticleOrder, ArticleKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load articles: %w", err)
	}
	return userAgents, articles, nil
}

// SyncedAt returns when the mirror was last written, zero if never.
func (s *Store) SyncedAt(ctx context.Context) (time.Time, error) {
	raw, err := s.client.Get(ctx, KeyCatalogSyncedAt).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("failed to get sync time: %w", err)
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid sync time %q: %w", raw, err)
	}
	return t, nil
}

func loadOrdered[T any](ctx context.Context, client redis.Cmdable, orderKey string, keyFn func(string) string) ([]*T, error) {
	ids, err := client.LRange(ctx, orderKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", orderKey, err)
	}
	if len(ids) == 0 {
		return []*T{}, nil
	}

	values, err := client.MGet(ctx, recordKeys(ids, keyFn)...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}
	return decodeRecords[T](values)
}

// encodeRecords marshals every non-nil record, keeping ids aligned with data.
func encodeRecords[T any](records []*T, id func(*T) string) ([]string, [][]byte, error) {
	ids := make([]string, 0, len(records))
	data := make([][]byte, 0, len(records))
	for _, r := range records {
		if r == nil {
			continue
		}
		b, err := json.Marshal(r)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to marshal %s: %w", id(r), err)
		}
		ids = append(ids, id(r))
		data = append(data, b)
	}
	return ids, data, nil
}

// decodeRecords unmarshals MGET results. Nil entries (expired keys) are
// skipped; a corrupt entry fails the whole read.
func decodeRecords[T any](values []any) ([]*T, error) {
	out := make([]*T, 0, len(values))
	for i, v := range values {
		if v == nil {
			continue
		}
		raw, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("record #%d: unexpected type %T", i, v)
		}
		var rec T
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			return nil, fmt.Errorf("record #%d: %w", i, err)
		}
		out = append(out, &rec)
	}
	return out, nil
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
