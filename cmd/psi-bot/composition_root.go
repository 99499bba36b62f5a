package main

import (
	"context"
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"go-psi-bot/internal/bot"
	"go-psi-bot/internal/cache/artifacts"
	"go-psi-bot/internal/cache/values"
	"go-psi-bot/internal/config"
	"go-psi-bot/internal/gemini"
	"go-psi-bot/internal/generation"
	"go-psi-bot/internal/httpserver"
	"go-psi-bot/internal/interfaces"
	"go-psi-bot/internal/proof"
	"go-psi-bot/internal/quota"
	"go-psi-bot/internal/render"
	"go-psi-bot/internal/scheduler"
	"go-psi-bot/internal/search"
	"go-psi-bot/internal/stats"
	"go-psi-bot/internal/storage"
	"go-psi-bot/internal/telegram"
)

const snapshotLoadTimeout = 10 * time.Second

// CompositionRoot holds all application dependencies and provides a centralized
// place for dependency injection and service initialization.
type CompositionRoot struct {
	// Configuration
	Config  *config.Config
	Secrets config.Secrets
	Logger  *zap.Logger

	// Storage
	KeyDbClient interfaces.KeyDbClient // nil with the file backend
	ValueStore  interfaces.SnapshotStore
	QuotaStore  interfaces.SnapshotStore

	// Cache components
	ValueCache    *values.Cache
	ArtifactStore interfaces.ArtifactStore
	ArtifactCache *artifacts.Cache

	// Generation and remote clients
	ImageGenerator interfaces.ImageGenerator // nil without a generation key
	TextGenerator  interfaces.TextGenerator  // nil without a generation key
	Searcher       interfaces.Searcher       // nil without search credentials
	PageFetcher    interfaces.PageFetcher
	Policy         *generation.Policy
	Quota          *quota.Guard

	// Services
	StatsService *stats.Service
	ProofService *proof.Service
	Bot          *bot.Bot
	HTTPServer   *httpserver.Server
	Scheduler    *scheduler.Scheduler
}

// NewCompositionRoot creates and initializes all application dependencies.
//
// Initialization order:
// 1. Logger (needed by all other components)
// 2. Configuration and secrets
// 3. Snapshot storage (file or KeyDB)
// 4. Caches, with the value cache restored from its snapshot
// 5. Generation (remote client, local renderer, policy)
// 6. Quota guard and search clients
// 7. Services, bot and HTTP server
// 8. Background sweep scheduler
func NewCompositionRoot() (*CompositionRoot, error) {
	root := &CompositionRoot{}

	// Initialize logger first
	if err := root.initLogger(); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := root.loadConfig(); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := root.loadSecrets(); err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	root.initStorage()

	if err := root.initCaches(); err != nil {
		return nil, fmt.Errorf("failed to initialize caches: %w", err)
	}

	root.initGeneration()
	root.initQuotaAndSearch()
	root.initServices()
	root.initScheduler()

	return root, nil
}

// initLogger initializes the application logger
func (r *CompositionRoot) initLogger() error {
	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	r.Logger = logger
	return nil
}

// loadConfig loads the application configuration
func (r *CompositionRoot) loadConfig() error {
	cfg, err := config.LoadConfig(GetConfigPath(), r.Logger)
	if err != nil {
		return err
	}

	r.Config = cfg
	return nil
}

// loadSecrets resolves credentials; a missing bot token is fatal
func (r *CompositionRoot) loadSecrets() error {
	secrets, err := config.LoadSecrets(r.Logger)
	if err != nil {
		return err
	}

	if !secrets.HasGeneration() {
		r.Logger.Warn("Generation API key not found, remote images and proof checks are disabled")
	}
	if !secrets.HasSearch() {
		r.Logger.Info("Search credentials not found, proof checks answer without web search")
	}

	r.Secrets = secrets
	return nil
}

// initStorage selects the snapshot backend. A KeyDB that cannot be reached
// falls back to files.
func (r *CompositionRoot) initStorage() {
	cfg := &r.Config.Storage

	if cfg.Backend == config.StorageBackendKeyDB {
		keydbURL := GetKeyDBURL(r.Logger)

		client, err := storage.NewRedisKeyDbClient(&cfg.KeyDB, keydbURL, r.Logger)
		if err == nil {
			r.KeyDbClient = client
			r.ValueStore = storage.NewKeyDBStore(&cfg.KeyDB, client, cfg.ValueCacheFile, r.Logger)
			r.QuotaStore = storage.NewKeyDBStore(&cfg.KeyDB, client, cfg.QuotaFile, r.Logger)
			r.Logger.Info("KeyDB snapshot storage initialized", zap.String("key_prefix", cfg.KeyDB.KeyPrefix))
			return
		}

		r.Logger.Warn("Failed to connect to KeyDB, falling back to file storage", zap.Error(err))
	}

	r.ValueStore = storage.NewFileStore(r.Config.ValueCachePath(), r.Logger)
	r.QuotaStore = storage.NewFileStore(r.Config.QuotaPath(), r.Logger)
	r.Logger.Info("File snapshot storage initialized", zap.String("data_dir", cfg.DataDir))
}

// initCaches creates the value cache and the artifact store
func (r *CompositionRoot) initCaches() error {
	r.ValueCache = values.NewCache(
		r.Config.Cache.TTL,
		r.ValueStore,
		r.Logger,
		values.WithPersistTimeout(r.Config.Cache.PersistTimeout),
	)

	ctx, cancel := context.WithTimeout(context.Background(), snapshotLoadTimeout)
	defer cancel()
	if err := r.ValueCache.Load(ctx); err != nil {
		r.Logger.Warn("Failed to restore value cache, starting empty", zap.Error(err))
	}

	if r.Config.Artifacts.Disabled {
		r.ArtifactStore = artifacts.NewNoOpStore()
		r.Logger.Info("Artifact cache disabled")
		return nil
	}

	store, err := artifacts.NewStore(&r.Config.Artifacts, r.Config.Cache.TTL, clock.New(), r.Logger)
	if err != nil {
		return fmt.Errorf("failed to initialize artifact store: %w", err)
	}
	r.ArtifactStore = store
	r.Logger.Info("Artifact cache initialized", zap.Int("size_mb", r.Config.Artifacts.SizeMB))
	return nil
}

// initGeneration wires the remote generator, when configured, in front of the local renderer
func (r *CompositionRoot) initGeneration() {
	if r.Secrets.HasGeneration() {
		client := gemini.NewClient(&r.Config.Generation, r.Secrets.GeminiAPIKey, r.Logger)
		r.ImageGenerator = client
		r.TextGenerator = client
	}

	local := render.NewStickFigure(r.Config.Artifacts.FontPath, r.Logger)
	r.Policy = generation.NewPolicy(r.ImageGenerator, local, r.Config.Generation.ImageTimeout, r.Logger)
	r.ArtifactCache = artifacts.NewCache(r.ArtifactStore, r.Policy, r.Config.Artifacts.Dedupe, r.Logger)
}

// initQuotaAndSearch creates the daily quota guard and the search clients
func (r *CompositionRoot) initQuotaAndSearch() {
	r.Quota = quota.NewGuard(r.Config.Quota.DailyLimit, r.QuotaStore, clock.New(), r.Logger)

	if r.Secrets.HasSearch() {
		r.Searcher = search.NewGoogleSearcher(&r.Config.Search, r.Secrets.GoogleAPIKey, r.Secrets.GoogleCSEID, r.Logger)
	}
	r.PageFetcher = search.NewPageFetcher(r.Config.Search.PageTimeout, r.Logger)
}

// initServices initializes application services and the two front ends
func (r *CompositionRoot) initServices() {
	r.StatsService = stats.NewService(r.ValueCache, r.ArtifactCache, r.Logger)
	r.ProofService = proof.NewService(r.TextGenerator, r.Searcher, r.PageFetcher, r.Quota, r.Config, r.Logger)

	api := telegram.NewClient(&r.Config.Telegram, r.Secrets.BotToken, r.Logger)
	r.Bot = bot.New(api, r.StatsService, r.ProofService, &r.Config.Telegram, r.Logger)

	r.HTTPServer = httpserver.NewServer(r.StatsService, r.ProofService, r.Quota, r.Config.Quota.DailyLimit, r.Logger)
}

// initScheduler sweeps stale values in the background
func (r *CompositionRoot) initScheduler() {
	r.Scheduler = scheduler.New(r.Config.Cache.SweepInterval, func() {
		if removed := r.ValueCache.Sweep(); removed > 0 {
			r.Logger.Info("Value cache swept", zap.Int("removed", removed), zap.Int("remaining", r.ValueCache.Len()))
		}
	})
}

// Cleanup performs cleanup of all resources
func (r *CompositionRoot) Cleanup() error {
	var errors []error

	// Sync logger
	if r.Logger != nil {
		if err := r.Logger.Sync(); err != nil {
			errors = append(errors, fmt.Errorf("failed to sync logger: %w", err))
		}
	}

	// Close artifact store
	if store, ok := r.ArtifactStore.(*artifacts.Store); ok {
		if err := store.Close(); err != nil {
			errors = append(errors, fmt.Errorf("failed to close artifact store: %w", err))
		}
	}

	// Close KeyDB connection
	if r.KeyDbClient != nil {
		if err := r.KeyDbClient.Close(); err != nil {
			errors = append(errors, fmt.Errorf("failed to close KeyDB client: %w", err))
		}
	}

	// Return first error if any
	if len(errors) > 0 {
		return errors[0]
	}

	return nil
}
