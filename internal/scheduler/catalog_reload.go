package scheduler

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MrSnakeDoc/uadb/internal/domain"
	"github.com/MrSnakeDoc/uadb/internal/index"
	"github.com/MrSnakeDoc/uadb/internal/logger"
	"github.com/MrSnakeDoc/uadb/internal/sources/fixtures"
)

// CatalogSource yields the raw catalog document.
type CatalogSource interface {
	Load() (fixtures.CatalogFile, error)
	Source() string
}

// CatalogMirror receives every successfully loaded catalog.
type CatalogMirror interface {
	SaveCatalog(ctx context.Context, userAgents []*domain.UserAgent, articles []*domain.Article) error
}

// CatalogReloader keeps the in-memory index in sync with the catalog source
type CatalogReloader struct {
	source        CatalogSource
	mapper        *fixtures.Mapper
	mirror        CatalogMirror // nil when Redis is disabled
	index         *index.MemoryIndex
	logger        logger.Logger
	interval      time.Duration
	manualTrigger <-chan struct{}

	started  atomic.Bool
	stopOnce sync.Once
	stopCh   chan struct{}
	done     chan struct{}
}

// NewCatalogReloader creates a new catalog reloader. mirror may be nil.
func NewCatalogReloader(
	source CatalogSource,
	mirror CatalogMirror,
	idx *index.MemoryIndex,
	log logger.Logger,
	interval time.Duration,
	manualTrigger <-chan struct{},
) *CatalogReloader {
	return &CatalogReloader{
		source:        source,
		mapper:        fixtures.NewMapper(),
		mirror:        mirror,
		index:         idx,
		logger:        log,
		interval:      interval,
		manualTrigger: manualTrigger,
		stopCh:        make(chan struct{}),
		done:          make(chan struct{}),
	}
}

// Start loads the catalog once, then reloads on every tick or manual
// trigger until Stop or ctx is done. A failed first load is fatal only when
// the index is still empty; otherwise the snapshot already in the index
// (warmed from the mirror) keeps serving.
func (cr *CatalogReloader) Start(ctx context.Context) error {
	if err := cr.Reload(ctx); err != nil {
		if cr.index.Count() == 0 {
			return fmt.Errorf("initial catalog load failed: %w", err)
		}
		cr.logger.Warn("initial catalog load failed, serving mirrored snapshot",
			logger.Error(err),
			logger.Int("user_agents", cr.index.Count()))
	}

	cr.started.Store(true)
	ticker := time.NewTicker(cr.interval)
	go func() {
		defer close(cr.done)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				cr.reloadAndLog(ctx)
			case <-cr.manualTrigger:
				cr.logger.Info("manual catalog reload triggered")
				cr.reloadAndLog(ctx)
			case <-cr.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the reloader and waits for its loop to exit. Safe to call twice.
func (cr *CatalogReloader) Stop() {
	cr.stopOnce.Do(func() { close(cr.stopCh) })
	if cr.started.Load() {
		<-cr.done
	}
}

func (cr *CatalogReloader) reloadAndLog(ctx context.Context) {
	if err := cr.Reload(ctx); err != nil {
		// The previous snapshot keeps serving.
		cr.logger.Error("failed to reload catalog", logger.Error(err))
	}
}

// Reload loads the catalog source, swaps the index snapshot and mirrors
// the result to Redis (best effort).
func (cr *CatalogReloader) Reload(ctx context.Context) error {
	cr.logger.Info("reloading catalog", logger.String("source", cr.source.Source()))

	catalog, err := cr.source.Load()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	res, err := cr.mapper.MapCatalog(catalog)
	if err != nil {
		return fmt.Errorf("failed to map catalog: %w", err)
	}
	if res.Skipped > 0 {
		cr.logger.Warn("skipped catalog entries without id", logger.Int("count", res.Skipped))
	}

	cr.index.Update(res.UserAgents, res.Articles)

	cr.logger.Info("catalog loaded",
		logger.Int("user_agents", len(res.UserAgents)),
		logger.Int("articles", len(res.Articles)))

	if cr.mirror != nil {
		if err := cr.mirror.SaveCatalog(ctx, res.UserAgents, res.Articles); err != nil {
			cr.logger.Warn("failed to mirror catalog to redis", logger.Error(err))
			// Don't fail - memory index is the primary source
		} else {
			cr.logger.Debug("catalog mirrored to redis")
		}
	}

	return nil
}
