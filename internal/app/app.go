package app

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/sessions"
	goredis "github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/linkhub/internal/config"
	"github.com/MrSnakeDoc/linkhub/internal/domain"
	"github.com/MrSnakeDoc/linkhub/internal/httpserver"
	"github.com/MrSnakeDoc/linkhub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/linkhub/internal/hubapi"
	"github.com/MrSnakeDoc/linkhub/internal/i18n"
	"github.com/MrSnakeDoc/linkhub/internal/index"
	"github.com/MrSnakeDoc/linkhub/internal/inflight"
	"github.com/MrSnakeDoc/linkhub/internal/logger"
	"github.com/MrSnakeDoc/linkhub/internal/redis"
	"github.com/MrSnakeDoc/linkhub/internal/scheduler"
	redisstore "github.com/MrSnakeDoc/linkhub/internal/store/redis"
	"github.com/MrSnakeDoc/linkhub/internal/telegram"
	"github.com/MrSnakeDoc/linkhub/internal/telemetry"
	"github.com/MrSnakeDoc/linkhub/internal/version"
	"github.com/MrSnakeDoc/linkhub/internal/web"
)

const serviceName = "linkhub"

type App struct {
	cfg          *config.Config
	logger       logger.Logger
	server       *httpserver.Server
	redisClient  *goredis.Client
	reloader     *scheduler.LinksReloader
	gc           *scheduler.GarbageCollector
	shutdownOTel func(context.Context) error
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	shutdownOTel, err := telemetry.Setup(context.Background(), serviceName, version.Version, cfg.OTelEndpoint)
	if err != nil {
		loggerClient.Warn("tracing disabled", logger.Error(err))
	}

	memIndex := index.NewMemoryIndex()

	// Redis is optional: without it the catalog lives in memory only and
	// the in-flight guard is process-local.
	var (
		redisClient *goredis.Client
		store       scheduler.CatalogStore
		guard       inflight.Guard = inflight.NewMemory()
	)
	if cfg.RedisEnabled() {
		loggerClient.Infof("Connecting to Redis at %s", cfg.RedisAddr)
		redisClient, err = redis.New(context.Background(), redis.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			RedisDB:        cfg.RedisDB,
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
			loggerClient.Errorf("Failed to connect to Redis: %v", err)
			os.Exit(1)
		}
		loggerClient.Info("Redis initialized successfully")

		store = redisstore.NewStore(redisClient)
		guard = redisstore.NewInFlightGuard(redisClient, redisstore.DefaultInFlightTTL)

		// Serve the mirrored catalog until the first reload replaces it
		syncer := scheduler.NewRedisSyncer(store, memIndex, loggerClient)
		if err := syncer.Sync(context.Background()); err != nil {
			loggerClient.Warn("failed to sync from redis on startup, will load catalog file",
				logger.Error(err))
		}
	} else {
		loggerClient.Info("redis not configured, running memory-only")
	}

	reloadTrigger := make(chan struct{}, 1)

	reloader := scheduler.NewLinksReloader(
		cfg.LinksFile,
		store,
		memIndex,
		loggerClient,
		cfg.ReloadInterval,
		reloadTrigger,
	)

	gc := scheduler.NewGarbageCollector(
		store,
		memIndex,
		loggerClient,
		cfg.GCInterval,
		scheduler.DefaultGCThreshold,
	)

	api, err := hubapi.New(hubapi.Options{
		BaseURL:   cfg.APIURL,
		Timeout:   cfg.APITimeout,
		Transport: telemetry.Transport(http.DefaultTransport),
	}, loggerClient)
	if err != nil {
		panic(fmt.Sprintf("❌ FATAL: %v", err))
	}
	apiURL, _ := url.Parse(cfg.APIURL) // validated by hubapi.New

	cookieStore := sessions.NewCookieStore([]byte(cfg.SessionKey))
	cookieStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   0, // browser session
		HttpOnly: true,
		Secure:   cfg.SecureCookies,
		SameSite: http.SameSiteNoneMode, // the hub runs inside the Telegram iframe
	}
	sessionManager := telegram.NewCookieProvider(cookieStore, telegram.ProviderOptions{
		CookieName: cfg.SessionName,
		BotToken:   cfg.BotToken,
		MaxAge:     cfg.InitDataMaxAge,
		Now:        time.Now,
	}, loggerClient)
	if cfg.BotToken == "" {
		loggerClient.Warn("HUB_BOT_TOKEN not set, init data is not verified")
	}

	policy := domain.NewAdminPolicy(cfg.AdminIDs, cfg.NotifyAdminID)
	if policy.ReviewerCount() == 0 {
		loggerClient.Warn("HUB_ADMIN_IDS is empty, nobody can review suggestions")
	}

	render, err := web.Templates()
	if err != nil {
		panic(fmt.Sprintf("❌ FATAL: parse templates: %v", err))
	}

	d := deps.Deps{
		Logger:         loggerClient,
		StartTime:      time.Now(),
		Version:        version.Version,
		Commit:         version.Commit,
		BuildDate:      version.BuildDate,
		GoVersion:      version.GoVersion,
		TimeNow:        time.Now,
		AllowedHosts:   cfg.AllowedHosts,
		AllowedCIDRS:   cfg.AllowedCIDRS,
		AllowedOrigins: cfg.AllowedOrigins,
		TrustProxy:     cfg.TrustProxy,
		Links:          memIndex,
		API:            api,
		APIHost:        apiURL.Host,
		Sessions:       sessionManager,
		Policy:         policy,
		Guard:          guard,
		Render:         render,
		Assets:         web.Assets(),
		Location:       cfg.Location(),
		DefaultLang:    i18n.ParseDefault(cfg.DefaultLang),
		ReloadTrigger:  reloadTrigger,
	}
	// A typed nil would make the interface non-nil
	if redisClient != nil {
		d.RedisClient = redisClient
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:          cfg,
		logger:       loggerClient,
		server:       server,
		redisClient:  redisClient,
		reloader:     reloader,
		gc:           gc,
		shutdownOTel: shutdownOTel,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting LinkHub %s on %s", version.String(), a.cfg.ListenPort)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Loads the catalog once and starts the periodic refresh
	if err := a.reloader.Start(ctx); err != nil {
		return fmt.Errorf("failed to start links reloader: %w", err)
	}
	a.logger.Info("links reloader started",
		logger.String("source", a.reloader.Source()),
		logger.Duration("interval", a.cfg.ReloadInterval))

	if err := a.gc.Start(ctx); err != nil {
		return fmt.Errorf("failed to start garbage collector: %w", err)
	}
	a.logger.Info("garbage collector started",
		logger.Duration("interval", a.cfg.GCInterval))

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	a.reloader.Stop()
	a.gc.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if err := a.shutdownOTel(shutdownCtx); err != nil {
		a.logger.Warnf("failed to flush traces: %v", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	a.logger.Info("✅ LinkHub stopped cleanly")
	_ = a.logger.Sync()
	return nil
}
