package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"go-psi-bot/internal/cache/artifacts"
	"go-psi-bot/internal/config"
	"go-psi-bot/internal/storage"
)

func newTestRoot(t *testing.T) *CompositionRoot {
	logger := zaptest.NewLogger(t)

	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"), logger)
	require.NoError(t, err)
	cfg.Storage.DataDir = t.TempDir()

	return &CompositionRoot{
		Config:  cfg,
		Logger:  logger,
		Secrets: config.Secrets{BotToken: "123:abc"},
	}
}

func wire(t *testing.T, root *CompositionRoot) {
	root.initStorage()
	require.NoError(t, root.initCaches())
	root.initGeneration()
	root.initQuotaAndSearch()
	root.initServices()
	root.initScheduler()
}

func TestCompositionRoot_FileBackendWithoutOptionalCredentials(t *testing.T) {
	root := newTestRoot(t)
	wire(t, root)

	assert.IsType(t, &storage.FileStore{}, root.ValueStore)
	assert.IsType(t, &storage.FileStore{}, root.QuotaStore)
	assert.Nil(t, root.KeyDbClient)
	assert.IsType(t, &artifacts.Store{}, root.ArtifactStore)

	// absent credentials leave untyped nil interfaces behind
	assert.Nil(t, root.ImageGenerator)
	assert.Nil(t, root.TextGenerator)
	assert.Nil(t, root.Searcher)
	assert.False(t, root.ProofService.Available())

	assert.NotNil(t, root.Bot)
	assert.NotNil(t, root.HTTPServer)
	assert.False(t, root.Scheduler.IsRunning())

	_, tag := root.ValueCache.GetOrGenerate("weight", "42")
	assert.NotEmpty(t, tag)

	root.ValueCache.Wait()
	assert.FileExists(t, root.Config.ValueCachePath())

	assert.NoError(t, root.Cleanup())
}

func TestCompositionRoot_WithCredentials(t *testing.T) {
	root := newTestRoot(t)
	root.Config.Artifacts.Disabled = true
	root.Secrets.GeminiAPIKey = "gemini"
	root.Secrets.GoogleAPIKey = "google"
	root.Secrets.GoogleCSEID = "cse"
	wire(t, root)

	assert.NotNil(t, root.ImageGenerator)
	assert.NotNil(t, root.TextGenerator)
	assert.NotNil(t, root.Searcher)
	assert.True(t, root.ProofService.Available())
	assert.IsType(t, &artifacts.NoOpStore{}, root.ArtifactStore)

	assert.NoError(t, root.Cleanup())
}

func TestCompositionRoot_KeyDBFallsBackToFiles(t *testing.T) {
	root := newTestRoot(t)
	root.Config.Storage.Backend = config.StorageBackendKeyDB
	root.Config.Storage.KeyDB.Connection.ConnectTimeout = 200 * time.Millisecond
	t.Setenv("KEYDB_URL", "redis://127.0.0.1:1")

	root.initStorage()

	assert.Nil(t, root.KeyDbClient)
	assert.IsType(t, &storage.FileStore{}, root.ValueStore)
	assert.IsType(t, &storage.FileStore{}, root.QuotaStore)
}
