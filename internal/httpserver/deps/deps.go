package deps

import (
	"context"
	"time"

	"github.com/MrSnakeDoc/uadb/internal/admin"
	"github.com/MrSnakeDoc/uadb/internal/index"
	"github.com/MrSnakeDoc/uadb/internal/logger"
)

// RedisStatus is satisfied by the Redis store.
type RedisStatus interface {
	Ping(ctx context.Context) error
	// SyncedAt is the last catalog mirror write, zero if never written.
	SyncedAt(ctx context.Context) (time.Time, error)
}

type Deps struct {
	Logger        logger.Logger
	StartTime     time.Time
	Version       string
	Commit        string
	BuildDate     string
	GoVersion     string
	TimeNow       func() time.Time   // for testing, defaults to time.Now
	AllowedHosts  []string           // Host headers allowed to access the server
	AllowedCIDRS  []string           // IPs allowed to reach readyz/infra/reload
	TrustProxy    bool               // true if running behind a trusted reverse proxy (e.g., cloudflared)
	CORSOrigins   []string           // browser origins allowed to call the API
	CatalogSource string             // where the catalog is loaded from, for /infra
	Redis         RedisStatus            // nil when Redis is disabled
	MemoryIndex   *index.MemoryIndex // In-memory catalog
	ReloadTrigger chan struct{}      // Channel to trigger manual catalog reload

	// Admin
	Auth        *admin.Authenticator
	Sessions    *admin.Sessions
	Settings    *admin.Settings
	LoginBurst  int // login attempts per client IP before throttling
	LoginPerMin int // login attempts refilled per minute
}

// Now returns TimeNow(), falling back to time.Now.
func (d Deps) Now() time.Time {
	if d.TimeNow != nil {
		return d.TimeNow()
	}
	return time.Now()
}
