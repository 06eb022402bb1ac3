//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/pmp-study-backend/internal/adapter/cache"
	"github.com/heartmarshall/pmp-study-backend/internal/adapter/postgres"
	"github.com/heartmarshall/pmp-study-backend/internal/adapter/postgres/flashcard"
	"github.com/heartmarshall/pmp-study-backend/internal/adapter/postgres/progress"
	"github.com/heartmarshall/pmp-study-backend/internal/adapter/postgres/reviewstate"
	"github.com/heartmarshall/pmp-study-backend/internal/adapter/postgres/testhelper"
	authpkg "github.com/heartmarshall/pmp-study-backend/internal/auth"
	"github.com/heartmarshall/pmp-study-backend/internal/config"
	"github.com/heartmarshall/pmp-study-backend/internal/domain"
	"github.com/heartmarshall/pmp-study-backend/internal/service/study"
	"github.com/heartmarshall/pmp-study-backend/internal/transport/middleware"
	"github.com/heartmarshall/pmp-study-backend/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the application stack backed by a real
// PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	studyService := study.NewService(
		logger,
		flashcard.New(pool),
		reviewstate.New(pool),
		progress.New(pool),
		cache.Noop{},
		postgres.NewTxManager(pool),
		domain.SRSConfig{
			DefaultBatchSize: 20,
			MaxBatchSize:     100,
			StatsCacheTTL:    time.Minute,
			Timezone:         "UTC",
		},
	)

	jwtMgr := authpkg.NewJWTManager("test-secret-at-least-32-chars-long!!", "test-issuer", 15*time.Minute)

	mux := http.NewServeMux()
	rest.NewHealthHandler(pool, nil, "test-version").Register(mux)
	rest.NewStudyHandler(studyService, logger).Register(mux)

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
			MaxAge:         86400,
		}),
		middleware.Auth(jwtMgr),
	)(mux)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    jwtMgr,
	}
}

// newUserToken returns a fresh learner ID with a valid access token. Users are
// owned by the identity provider, so no row is inserted.
func newUserToken(t *testing.T, ts *testServer) (string, uuid.UUID) {
	t.Helper()

	userID := uuid.New()
	tok, err := ts.jwt.GenerateAccessToken(userID)
	require.NoError(t, err)
	return tok, userID
}

// do sends a request and decodes the JSON response into a generic map.
func (ts *testServer) do(t *testing.T, method, path string, body any, token string) (int, map[string]any) {
	t.Helper()

	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, ts.URL+path, r)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result map[string]any
	if resp.ContentLength != 0 {
		_ = json.NewDecoder(resp.Body).Decode(&result)
	}
	return resp.StatusCode, result
}

func (ts *testServer) review(t *testing.T, token string, cardID uuid.UUID, rating string) (int, map[string]any) {
	t.Helper()
	return ts.do(t, http.MethodPost, "/api/v1/flashcards/"+cardID.String()+"/review", map[string]string{"rating": rating}, token)
}

// cardIDs extracts flashcard IDs from a /flashcards/due response in order.
func cardIDs(t *testing.T, result map[string]any) []string {
	t.Helper()

	cards, ok := result["cards"].([]any)
	require.True(t, ok, "expected cards array, got %v", result)

	ids := make([]string, 0, len(cards))
	for _, c := range cards {
		fc := c.(map[string]any)["flashcard"].(map[string]any)
		ids = append(ids, fc["id"].(string))
	}
	return ids
}
