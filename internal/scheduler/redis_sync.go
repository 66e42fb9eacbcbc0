package scheduler

import (
	"context"
	"fmt"

	"github.com/MrSnakeDoc/uadb/internal/domain"
	"github.com/MrSnakeDoc/uadb/internal/index"
	"github.com/MrSnakeDoc/uadb/internal/logger"
)

// CatalogSnapshot reads back a previously mirrored catalog.
type CatalogSnapshot interface {
	LoadCatalog(ctx context.Context) ([]*domain.UserAgent, []*domain.Article, error)
}

// RedisSyncer warms the memory index from the Redis mirror on startup
type RedisSyncer struct {
	store  CatalogSnapshot
	index  *index.MemoryIndex
	logger logger.Logger
}

// NewRedisSyncer creates a new Redis syncer
func NewRedisSyncer(
	store CatalogSnapshot,
	idx *index.MemoryIndex,
	log logger.Logger,
) *RedisSyncer {
	return &RedisSyncer{
		store:  store,
		index:  idx,
		logger: log,
	}
}

// Sync loads the mirrored catalog into the memory index. An empty mirror
// leaves the index untouched.
func (rs *RedisSyncer) Sync(ctx context.Context) error {
	rs.logger.Info("syncing catalog from redis to memory")

	userAgents, articles, err := rs.store.LoadCatalog(ctx)
	if err != nil {
		return fmt.Errorf("failed to read catalog mirror: %w", err)
	}

	if len(userAgents) == 0 && len(articles) == 0 {
		rs.logger.Info("no catalog found in redis")
		return nil
	}

	rs.index.Update(userAgents, articles)

	rs.logger.Info("synced catalog from redis",
		logger.Int("user_agents", len(userAgents)),
		logger.Int("articles", len(articles)))

	return nil
}
