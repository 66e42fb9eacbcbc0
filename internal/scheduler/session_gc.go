package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MrSnakeDoc/uadb/internal/admin"
	"github.com/MrSnakeDoc/uadb/internal/logger"
)

// SessionCollector drops admin sessions idle for longer than the TTL
type SessionCollector struct {
	sessions *admin.Sessions
	logger   logger.Logger
	interval time.Duration
	ttl      time.Duration
	now      func() time.Time

	started  atomic.Bool
	stopOnce sync.Once
	stopCh   chan struct{}
	done     chan struct{}
}

// NewSessionCollector creates a new session collector
func NewSessionCollector(
	sessions *admin.Sessions,
	log logger.Logger,
	interval time.Duration,
	ttl time.Duration,
) *SessionCollector {
	return &SessionCollector{
		sessions: sessions,
		logger:   log,
		interval: interval,
		ttl:      ttl,
		now:      time.Now,
		stopCh:   make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start begins the periodic collection
func (sc *SessionCollector) Start(ctx context.Context) {
	sc.started.Store(true)
	ticker := time.NewTicker(sc.interval)
	go func() {
		defer close(sc.done)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				sc.Collect()
			case <-sc.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop stops the collector and waits for its loop to exit. Safe to call twice.
func (sc *SessionCollector) Stop() {
	sc.stopOnce.Do(func() { close(sc.stopCh) })
	if sc.started.Load() {
		<-sc.done
	}
}

// Collect expires idle sessions and returns how many were removed
func (sc *SessionCollector) Collect() int {
	removed := sc.sessions.Expire(sc.now(), sc.ttl)
	if removed > 0 {
		sc.logger.Info("expired idle admin sessions",
			logger.Int("removed", removed),
			logger.Int("remaining", sc.sessions.Count()))
	} else {
		sc.logger.Debug("no admin sessions to expire")
	}
	return removed
}
