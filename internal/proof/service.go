package proof

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"go-psi-bot/internal/config"
	"go-psi-bot/internal/httpclient"
	"go-psi-bot/internal/interfaces"
	"go-psi-bot/internal/models"
)

// Stage is a step of a proof check reported to the caller
type Stage string

const (
	StageQuery     Stage = "query"
	StageSearching Stage = "searching"
	StageAnalyzing Stage = "analyzing"
	StageAnswering Stage = "answering"
)

// ProgressFunc receives stage updates; detail carries the search query when searching
type ProgressFunc func(stage Stage, detail string)

// Apologies returned instead of errors when summarization fails
const (
	apologyNoAnswer = "Could not get an answer from the model."
	apologyFailed   = "An error occurred while processing the request."
)

// Service answers a free-text claim with a summary, backed by web search when configured
type Service struct {
	text     interfaces.TextGenerator
	searcher interfaces.Searcher
	pages    interfaces.PageFetcher
	quota    interfaces.QuotaGuard

	proofCfg      *config.ProofConfig
	searchCfg     *config.SearchConfig
	generationCfg *config.GenerationConfig
	logger        *zap.Logger
}

// NewService creates a proof service. text may be nil (feature unavailable);
// searcher may be nil (answers without search).
func NewService(
	text interfaces.TextGenerator,
	searcher interfaces.Searcher,
	pages interfaces.PageFetcher,
	quota interfaces.QuotaGuard,
	cfg *config.Config,
	logger *zap.Logger,
) *Service {
	return &Service{
		text:          text,
		searcher:      searcher,
		pages:         pages,
		quota:         quota,
		proofCfg:      &cfg.Proof,
		searchCfg:     &cfg.Search,
		generationCfg: &cfg.Generation,
		logger:        logger,
	}
}

// Available reports whether a text generator is configured
func (s *Service) Available() bool {
	return s.text != nil
}

// MinLength returns the minimum accepted text length in characters
func (s *Service) MinLength() int {
	return s.proofCfg.MinLength
}

// Check returns the answer for text. Quota refusal is a *models.QuotaExceededError;
// a failed summary is returned as a human-readable apology, not an error.
func (s *Service) Check(ctx context.Context, text string, progress ProgressFunc) (string, error) {
	if progress == nil {
		progress = func(Stage, string) {}
	}
	if s.text == nil {
		return "", models.ErrFeatureUnavailable
	}

	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) < s.proofCfg.MinLength {
		return "", fmt.Errorf("%w: minimum %d characters", models.ErrTextTooShort, s.proofCfg.MinLength)
	}

	var sources string
	if s.searcher != nil {
		if allowed, reason := s.quota.TryConsume(ctx); !allowed {
			return "", &models.QuotaExceededError{Reason: reason}
		}

		progress(StageQuery, "")
		query := s.cleanQuery(ctx, text)

		progress(StageSearching, query)
		sources = s.gatherSources(ctx, query, progress)
	}

	progress(StageAnswering, "")
	return s.summarize(ctx, text, sources), nil
}

// cleanQuery asks the model for a short search query, falling back to the raw text
func (s *Service) cleanQuery(ctx context.Context, text string) string {
	ctx, cancel := context.WithTimeout(ctx, s.generationCfg.TextTimeout)
	defer cancel()

	query, err := s.text.GenerateText(ctx, models.TextRequest{Prompt: queryPrompt(text)})
	if err != nil || strings.TrimSpace(query) == "" {
		s.logger.Warn("Failed to clean search query, using raw text", zap.Error(err))
		return text
	}

	query = strings.Trim(strings.TrimSpace(query), `"`)
	s.logger.Info("Search query cleaned", zap.String("query", query))
	return query
}

func (s *Service) gatherSources(ctx context.Context, query string, progress ProgressFunc) string {
	results, err := s.searcher.Search(ctx, query, s.searchCfg.Results)
	if err != nil {
		s.logger.Error("Search failed", zap.String("query", query), zap.Error(err))
		return ""
	}
	if len(results) == 0 {
		s.logger.Info("No relevant pages found", zap.String("query", query))
		return ""
	}

	progress(StageAnalyzing, "")

	urls := make([]string, len(results))
	for i, r := range results {
		urls[i] = r.Link
	}
	texts := s.pages.FetchAll(ctx, urls)

	return buildSources(results, texts, s.searchCfg.PageExcerpt)
}

func (s *Service) summarize(ctx context.Context, text, sources string) string {
	ctx, cancel := context.WithTimeout(ctx, s.generationCfg.SummaryTimeout)
	defer cancel()

	req := models.TextRequest{Prompt: directPrompt(text), Temperature: 0.3, RelaxSafety: true}
	if sources != "" {
		req.Prompt = summaryPrompt(text, sources)
	}

	answer, err := s.text.GenerateText(ctx, req)
	if err != nil {
		s.logger.Error("Summarization failed", zap.Error(err))
		var statusErr *httpclient.StatusError
		if errors.As(err, &statusErr) {
			return fmt.Sprintf("API error (%d).", statusErr.StatusCode)
		}
		if errors.Is(err, models.ErrContentPolicy) {
			return apologyNoAnswer
		}
		return apologyFailed
	}

	answer = strings.TrimSpace(strings.ReplaceAll(html.UnescapeString(answer), `\n`, "\n"))
	if answer == "" {
		return apologyNoAnswer
	}
	return answer
}
