package search

import (
	"bytes"
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"go-psi-bot/internal/httpclient"
	"go-psi-bot/internal/interfaces"
	"go-psi-bot/internal/metrics"
)

// Ensure PageFetcher implements interfaces.PageFetcher
var _ interfaces.PageFetcher = (*PageFetcher)(nil)

// browserUserAgent avoids the bot-blocking some news sites apply to unknown agents
const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// PageFetcher downloads pages and extracts their readable text
type PageFetcher struct {
	http   *resty.Client
	logger *zap.Logger
}

// NewPageFetcher creates a fetcher with a per-page timeout
func NewPageFetcher(timeout time.Duration, logger *zap.Logger) *PageFetcher {
	return &PageFetcher{
		http: httpclient.New(httpclient.Options{
			Timeout:   timeout,
			UserAgent: browserUserAgent,
		}, logger),
		logger: logger,
	}
}

// FetchText returns the page text, or "" on any failure
func (f *PageFetcher) FetchText(ctx context.Context, url string) string {
	done := metrics.TimeRemoteCall("page", "fetch")
	defer done()

	resp, err := f.http.R().SetContext(ctx).Get(url)
	if err := httpclient.Check(resp, err); err != nil {
		metrics.RecordRemoteError("page", "fetch", err, httpclient.StatusCode(err))
		f.logger.Warn("Failed to fetch page", zap.String("url", url), zap.Error(err))
		return ""
	}

	text, err := ExtractText(bytes.NewReader(resp.Body()))
	if err != nil {
		f.logger.Warn("Failed to parse page", zap.String("url", url), zap.Error(err))
		return ""
	}
	return text
}

// FetchAll fetches urls in parallel and returns their texts in the same order
func (f *PageFetcher) FetchAll(ctx context.Context, urls []string) []string {
	texts := make([]string, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	for i, url := range urls {
		g.Go(func() error {
			texts[i] = f.FetchText(gctx, url)
			return nil
		})
	}
	_ = g.Wait()

	return texts
}
