package interfaces

import (
	"context"

	"go-psi-bot/internal/models"
)

//go:generate mockgen -package=mock -source=search.go -destination=mock/search.go

// Searcher queries the web-search endpoint
type Searcher interface {
	Search(ctx context.Context, query string, num int) ([]models.SearchResult, error)
}

// PageFetcher downloads pages and returns their readable text.
// Failed pages yield an empty string.
type PageFetcher interface {
	FetchAll(ctx context.Context, urls []string) []string
}
