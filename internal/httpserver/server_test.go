package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"

	"go-psi-bot/internal/config"
	"go-psi-bot/internal/interfaces/mock"
	"go-psi-bot/internal/models"
	"go-psi-bot/internal/proof"
	"go-psi-bot/internal/stats"
)

type serverMocks struct {
	values    *mock.MockValueCache
	artifacts *mock.MockArtifactCache
	text      *mock.MockTextGenerator
	searcher  *mock.MockSearcher
	pages     *mock.MockPageFetcher
	quota     *mock.MockQuotaGuard
}

func testConfig() *config.Config {
	return &config.Config{
		Proof:  config.ProofConfig{MinLength: 10},
		Search: config.SearchConfig{Results: 3, PageExcerpt: 100},
		Generation: config.GenerationConfig{
			TextTimeout:    time.Second,
			SummaryTimeout: time.Second,
		},
	}
}

// setupServer creates a server over mocked collaborators. withText=false
// leaves the proof feature unconfigured.
func setupServer(t *testing.T, withText bool) (*Server, serverMocks) {
	ctrl := gomock.NewController(t)
	logger := zaptest.NewLogger(t)

	m := serverMocks{
		values:    mock.NewMockValueCache(ctrl),
		artifacts: mock.NewMockArtifactCache(ctrl),
		text:      mock.NewMockTextGenerator(ctrl),
		searcher:  mock.NewMockSearcher(ctrl),
		pages:     mock.NewMockPageFetcher(ctrl),
		quota:     mock.NewMockQuotaGuard(ctrl),
	}

	var proofService *proof.Service
	if withText {
		proofService = proof.NewService(m.text, m.searcher, m.pages, m.quota, testConfig(), logger)
	} else {
		proofService = proof.NewService(nil, nil, nil, m.quota, testConfig(), logger)
	}

	server := NewServer(stats.NewService(m.values, m.artifacts, logger), proofService, m.quota, 100, logger)
	return server, m
}

func expectProfile(values *mock.MockValueCache, subject string) {
	values.EXPECT().GetOrGenerate(models.KindWeight, subject).Return(75, "⚖️")
	values.EXPECT().GetOrGenerate(models.KindLength, subject).Return(12, "🥴")
	values.EXPECT().GetOrGenerate(models.KindIQ, subject).Return(101, "🙂")
	values.EXPECT().GetOrGenerate(models.KindHeight, subject).Return(180, "😃")
}

func serve(server *Server, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	server.createRouter().ServeHTTP(w, req)
	return w
}

func TestServer_HandleHealth(t *testing.T) {
	server, _ := setupServer(t, false)

	w := serve(server, httptest.NewRequest("GET", "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "healthy", response["status"])
	assert.Equal(t, false, response["proof_available"])
}

func TestServer_Metrics(t *testing.T) {
	server, _ := setupServer(t, false)

	w := serve(server, httptest.NewRequest("GET", "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}

func TestServer_HandleProfile(t *testing.T) {
	server, m := setupServer(t, false)
	expectProfile(m.values, "42")

	w := serve(server, httptest.NewRequest("GET", "/stats/42?name=Dave", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var response ProfileResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, "Dave", response.Profile.Name)
	assert.Equal(t, 180, response.Profile.Height.Value)
	assert.Equal(t, "My weight: 75 kg ⚖️\nMy length: 12 cm 🥴\nMy IQ: 101 🙂\nMy height: 180 cm 😃", response.Caption)
}

func TestServer_HandleReading(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		setup          func(m serverMocks)
		expectedStatus int
		expectedText   string
	}{
		{
			name: "known kind",
			path: "/stats/42/iq",
			setup: func(m serverMocks) {
				m.values.EXPECT().GetOrGenerate(models.KindIQ, "42").Return(130, "🤓")
			},
			expectedStatus: http.StatusOK,
			expectedText:   "My IQ: 130 🤓",
		},
		{
			name:           "unknown kind",
			path:           "/stats/42/mood",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, m := setupServer(t, false)
			if tt.setup != nil {
				tt.setup(m)
			}

			w := serve(server, httptest.NewRequest("GET", tt.path, nil))

			require.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var response ReadingResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, tt.expectedText, response.Text)
				assert.Equal(t, models.KindIQ, response.Reading.Kind)
			}
		})
	}
}

func TestServer_HandleWhoAmI(t *testing.T) {
	server, m := setupServer(t, false)
	expectProfile(m.values, "42")
	m.artifacts.EXPECT().GetOrRender(gomock.Any(), "42", gomock.Any()).DoAndReturn(
		func(ctx context.Context, subject string, p models.Profile) ([]byte, error) {
			assert.Equal(t, "42", p.Name)
			return []byte("\x89PNG"), nil
		})

	w := serve(server, httptest.NewRequest("GET", "/whoami/42", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, []byte("\x89PNG"), w.Body.Bytes())

	caption, err := url.QueryUnescape(w.Header().Get("X-Caption"))
	require.NoError(t, err)
	assert.Equal(t, "My weight: 75 kg ⚖️\nMy length: 12 cm 🥴\nMy IQ: 101 🙂\nMy height: 180 cm 😃", caption)
}

func TestServer_HandleWhoAmI_Error(t *testing.T) {
	server, m := setupServer(t, false)
	expectProfile(m.values, "42")
	m.artifacts.EXPECT().GetOrRender(gomock.Any(), "42", gomock.Any()).Return(nil, errors.New("render failed"))

	w := serve(server, httptest.NewRequest("GET", "/whoami/42?name=Dave", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func proofRequest(body string) *http.Request {
	req := httptest.NewRequest("POST", "/proof", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestServer_HandleProof_Errors(t *testing.T) {
	tests := []struct {
		name           string
		withText       bool
		body           string
		setup          func(m serverMocks)
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "invalid json",
			withText:       true,
			body:           `{"text":`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid request",
		},
		{
			name:           "missing text",
			withText:       true,
			body:           `{"text":"   "}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Missing required field: text",
		},
		{
			name:           "feature unavailable",
			body:           `{"text":"the moon is made of cheese"}`,
			expectedStatus: http.StatusServiceUnavailable,
			expectedError:  "Proof checks are not configured",
		},
		{
			name:           "too short",
			withText:       true,
			body:           `{"text":"cheese"}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Text is too short (minimum 10 characters)",
		},
		{
			name:     "quota exhausted",
			withText: true,
			body:     `{"text":"the moon is made of cheese"}`,
			setup: func(m serverMocks) {
				m.quota.EXPECT().TryConsume(gomock.Any()).Return(false, "daily limit (100) reached, try again tomorrow")
			},
			expectedStatus: http.StatusTooManyRequests,
			expectedError:  "daily limit (100) reached, try again tomorrow",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, m := setupServer(t, tt.withText)
			if tt.setup != nil {
				tt.setup(m)
			}

			w := serve(server, proofRequest(tt.body))

			require.Equal(t, tt.expectedStatus, w.Code)
			var response map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, false, response["success"])
			assert.Equal(t, tt.expectedError, response["error"])
		})
	}
}

func TestServer_HandleProof_Success(t *testing.T) {
	server, m := setupServer(t, true)

	gomock.InOrder(
		m.quota.EXPECT().TryConsume(gomock.Any()).Return(true, ""),
		m.text.EXPECT().GenerateText(gomock.Any(), gomock.Any()).Return("moon cheese", nil),
		m.searcher.EXPECT().Search(gomock.Any(), "moon cheese", 3).Return(nil, nil),
		m.text.EXPECT().GenerateText(gomock.Any(), gomock.Any()).Return("Not cheese.", nil),
	)

	w := serve(server, proofRequest(`{"text":"the moon is made of cheese"}`))

	require.Equal(t, http.StatusOK, w.Code)
	var response ProofResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, "Not cheese.", response.Answer)
}

func TestServer_HandleQuota(t *testing.T) {
	server, m := setupServer(t, false)
	m.quota.EXPECT().Usage(gomock.Any()).Return(models.QuotaCounter{Date: "2025-01-01", Count: 30})

	w := serve(server, httptest.NewRequest("GET", "/quota", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var response QuotaResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, QuotaResponse{Success: true, Date: "2025-01-01", Count: 30, Limit: 100, Remaining: 70}, response)
}

func TestServer_MethodNotAllowed(t *testing.T) {
	server, _ := setupServer(t, false)

	w := serve(server, httptest.NewRequest("GET", "/proof", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestServer_StopBeforeStart(t *testing.T) {
	server, _ := setupServer(t, false)

	assert.NoError(t, server.Stop(context.Background()))
}
