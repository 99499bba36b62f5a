package search

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"go-psi-bot/internal/config"
	"go-psi-bot/internal/httpclient"
	"go-psi-bot/internal/interfaces"
	"go-psi-bot/internal/metrics"
	"go-psi-bot/internal/models"
)

// Ensure GoogleSearcher implements interfaces.Searcher
var _ interfaces.Searcher = (*GoogleSearcher)(nil)

// GoogleSearcher queries the Custom Search JSON API
type GoogleSearcher struct {
	http     *resty.Client
	apiKey   string
	engineID string
	config   *config.SearchConfig
	logger   *zap.Logger
}

type searchResponse struct {
	Items []models.SearchResult `json:"items"`
}

// NewGoogleSearcher creates a searcher for the given key and engine ID
func NewGoogleSearcher(cfg *config.SearchConfig, apiKey, engineID string, logger *zap.Logger) *GoogleSearcher {
	return &GoogleSearcher{
		http: httpclient.New(httpclient.Options{
			BaseURL: cfg.BaseURL,
			Timeout: cfg.Timeout,
		}, logger),
		apiKey:   apiKey,
		engineID: engineID,
		config:   cfg,
		logger:   logger,
	}
}

// Search returns up to num results ordered by date. No results is not an error.
func (g *GoogleSearcher) Search(ctx context.Context, query string, num int) ([]models.SearchResult, error) {
	done := metrics.TimeRemoteCall("search", "query")
	defer done()

	params := map[string]string{
		"key":  g.apiKey,
		"cx":   g.engineID,
		"q":    query,
		"num":  strconv.Itoa(num),
		"sort": "date",
	}
	if g.config.DateRestrict != "" {
		params["dateRestrict"] = g.config.DateRestrict
	}

	var out searchResponse
	resp, err := g.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(&out).
		Get("")
	if err := httpclient.Check(resp, err); err != nil {
		status := httpclient.StatusCode(err)
		metrics.RecordRemoteError("search", "query", err, status)
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	links := make([]string, 0, len(out.Items))
	for _, item := range out.Items {
		links = append(links, item.Link)
	}
	g.logger.Info("Search completed", zap.String("query", query), zap.Strings("links", links))

	return out.Items, nil
}
