package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"go-psi-bot/internal/config"
	"go-psi-bot/internal/models"
)

func newTestSearcher(t *testing.T, handler http.HandlerFunc) *GoogleSearcher {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.SearchConfig{
		BaseURL:      server.URL + "/customsearch/v1",
		Results:      3,
		DateRestrict: "d1",
		Timeout:      time.Second,
	}
	return NewGoogleSearcher(cfg, "api-key", "engine", zap.NewNop())
}

func TestGoogleSearcher_Search(t *testing.T) {
	searcher := newTestSearcher(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/customsearch/v1", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "api-key", q.Get("key"))
		assert.Equal(t, "engine", q.Get("cx"))
		assert.Equal(t, "golang release", q.Get("q"))
		assert.Equal(t, "3", q.Get("num"))
		assert.Equal(t, "date", q.Get("sort"))
		assert.Equal(t, "d1", q.Get("dateRestrict"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[
			{"link":"https://a.example","title":"A","snippet":"first"},
			{"link":"https://b.example","title":"B","snippet":"second"}
		]}`))
	})

	results, err := searcher.Search(context.Background(), "golang release", 3)
	require.NoError(t, err)
	assert.Equal(t, []models.SearchResult{
		{Link: "https://a.example", Title: "A", Snippet: "first"},
		{Link: "https://b.example", Title: "B", Snippet: "second"},
	}, results)
}

func TestGoogleSearcher_NoItems(t *testing.T) {
	searcher := newTestSearcher(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"searchInformation":{"totalResults":"0"}}`))
	})

	results, err := searcher.Search(context.Background(), "nothing", 3)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestGoogleSearcher_HTTPError(t *testing.T) {
	searcher := newTestSearcher(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota", http.StatusTooManyRequests)
	})

	_, err := searcher.Search(context.Background(), "q", 3)
	assert.Error(t, err)
}
