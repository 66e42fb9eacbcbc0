package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/uadb/internal/admin"
	"github.com/MrSnakeDoc/uadb/internal/config"
	"github.com/MrSnakeDoc/uadb/internal/httpserver"
	"github.com/MrSnakeDoc/uadb/internal/httpserver/deps"
	"github.com/MrSnakeDoc/uadb/internal/index"
	"github.com/MrSnakeDoc/uadb/internal/logger"
	"github.com/MrSnakeDoc/uadb/internal/redis"
	"github.com/MrSnakeDoc/uadb/internal/scheduler"
	"github.com/MrSnakeDoc/uadb/internal/sources/fixtures"
	redisstore "github.com/MrSnakeDoc/uadb/internal/store/redis"
	"github.com/MrSnakeDoc/uadb/internal/utils"
	"github.com/MrSnakeDoc/uadb/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client // nil when Redis is disabled
	memIndex    *index.MemoryIndex
	reloader    *scheduler.CatalogReloader
	gc          *scheduler.SessionCollector
}

func New() (*App, error) {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	memIndex := index.NewMemoryIndex()

	// Redis is optional: without it settings live in memory and the catalog
	// is not mirrored.
	var (
		redisClient   *goredis.Client
		mirror        scheduler.CatalogMirror
		redisStatus   deps.RedisStatus
		settingsStore admin.SettingsStore = admin.NewMemoryStore()
	)
	if cfg.RedisEnabled() {
		loggerClient.Infof("Connecting to Redis at %s", cfg.RedisAddr)
		client, err := redis.Connect(context.Background(), redis.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			DB:             cfg.RedisDB,
			DialTimeout:    cfg.RedisDT,
			ReadTimeout:    cfg.RedisRT,
			WriteTimeout:   cfg.RedisWT,
			PoolSize:       cfg.RedisPoolSize,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
			WarnThreshold:  cfg.RedisWarnThreshold,
		}, loggerClient)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		loggerClient.Info("Redis initialized successfully")

		store := redisstore.NewStore(client)
		redisClient = client
		mirror = store
		redisStatus = store
		settingsStore = redisstore.NewSettingsStore(client)

		// The mirrored catalog keeps serving when the first source load fails.
		syncer := scheduler.NewRedisSyncer(store, memIndex, loggerClient)
		if err := syncer.Sync(context.Background()); err != nil {
			loggerClient.Warn("failed to sync from redis on startup, will load from source",
				logger.Error(err))
		}
	} else {
		loggerClient.Info("redis not configured, settings kept in memory")
	}

	auth, err := admin.NewAuthenticator(cfg.AdminUser, cfg.AdminPassword)
	if err != nil {
		if redisClient != nil {
			utils.Close(redisClient)
		}
		return nil, fmt.Errorf("failed to initialize admin account: %w", err)
	}
	if cfg.AdminPassword == "admin" {
		loggerClient.Warn("admin password is the default, set UADB_ADMIN_PASSWORD")
	}

	sessions := admin.NewSessions(cfg.SessionTTL)
	source := fixtures.NewLoader(cfg.CatalogFile)

	// Create manual reload trigger channel
	reloadTrigger := make(chan struct{}, 1)

	reloader := scheduler.NewCatalogReloader(
		source,
		mirror,
		memIndex,
		loggerClient,
		cfg.ReloadInterval,
		reloadTrigger,
	)

	gc := scheduler.NewSessionCollector(
		sessions,
		loggerClient,
		cfg.GCInterval,
		cfg.SessionTTL,
	)

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:        loggerClient,
		StartTime:     time.Now(),
		Version:       version.Version,
		Commit:        version.Commit,
		BuildDate:     version.BuildDate,
		GoVersion:     version.GoVersion,
		TimeNow:       time.Now,
		AllowedHosts:  cfg.AllowedHosts,
		AllowedCIDRS:  cfg.AllowedCIDRS,
		TrustProxy:    cfg.TrustProxy,
		CORSOrigins:   cfg.CORSOrigins,
		CatalogSource: source.Source(),
		Redis:         redisStatus,
		MemoryIndex:   memIndex,
		ReloadTrigger: reloadTrigger,
		Auth:          auth,
		Sessions:      sessions,
		Settings:      admin.NewSettings(settingsStore),
		LoginBurst:    cfg.LoginBurst,
		LoginPerMin:   cfg.LoginPerMin,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
		memIndex:    memIndex,
		reloader:    reloader,
		gc:          gc,
	}, nil
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting uadb %s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Info(version.String())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load the catalog and start the periodic refresh
	if err := a.reloader.Start(ctx); err != nil {
		a.closeRedis()
		return fmt.Errorf("failed to start catalog reloader: %w", err)
	}
	a.logger.Info("catalog reloader started",
		logger.Int("user_agents", a.memIndex.Count()),
		logger.Int("articles", a.memIndex.ArticleCount()),
		logger.Duration("interval", a.cfg.ReloadInterval))

	a.gc.Start(ctx)
	a.logger.Info("session collector started",
		logger.Duration("interval", a.cfg.GCInterval),
		logger.Duration("ttl", a.cfg.SessionTTL))

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case runErr = <-errCh:
	}

	a.reloader.Stop()
	a.gc.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil && runErr == nil {
		runErr = fmt.Errorf("failed to stop server: %w", err)
	}

	a.closeRedis()

	if runErr != nil {
		return runErr
	}
	a.logger.Info("✅ uadb stopped cleanly")
	return nil
}

func (a *App) closeRedis() {
	if a.redisClient == nil {
		return
	}
	utils.MustClose(a.redisClient, a.logger, "redis")
}
