//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/bloglist-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/bloglist-backend/internal/app"
	"github.com/heartmarshall/bloglist-backend/internal/config"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	cfg := &config.Config{
		Storage: config.StorageConfig{Driver: config.DriverPostgres},
		Auth: config.AuthConfig{
			JWTSecret:        "test-secret-at-least-32-chars-long!!",
			JWTIssuer:        "test-issuer",
			TokenTTL:         15 * time.Minute,
			PasswordHashCost: bcrypt.MinCost,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
			MaxAge:         86400,
		},
		RateLimit: config.RateLimitConfig{AuthPerMinute: 6000, Burst: 1000},
		Metrics:   config.MetricsConfig{Enabled: true},
	}

	router := app.NewRouter(cfg, app.NewPostgresStores(pool), logger)
	t.Cleanup(router.Close)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// do sends a JSON request and returns the status and raw body.
func (ts *testServer) do(t *testing.T, method, path, token string, body any) (int, []byte) {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, ts.URL+path, r)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func decodeObject(t *testing.T, raw []byte) map[string]any {
	t.Helper()
	var v map[string]any
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))
	return v
}

func decodeArray(t *testing.T, raw []byte) []map[string]any {
	t.Helper()
	var v []map[string]any
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))
	return v
}

// uniqueUsername avoids collisions in the shared database.
func uniqueUsername(prefix string) string {
	return prefix + "_" + strings.ReplaceAll(uuid.NewString()[:8], "-", "")
}

// createTestUserAndGetToken registers a fresh user and logs in.
func createTestUserAndGetToken(t *testing.T, ts *testServer) (string, string) {
	t.Helper()

	username := uniqueUsername("e2e")
	status, raw := ts.do(t, http.MethodPost, "/api/users", "", map[string]string{
		"username": username, "name": "E2E User", "password": "sekret",
	})
	require.Equal(t, http.StatusCreated, status, string(raw))

	status, raw = ts.do(t, http.MethodPost, "/api/login", "", map[string]string{
		"username": username, "password": "sekret",
	})
	require.Equal(t, http.StatusOK, status, string(raw))

	token, ok := decodeObject(t, raw)["token"].(string)
	require.True(t, ok, "expected token string")
	return username, token
}

// createEntry posts an entry and returns its id.
func createEntry(t *testing.T, ts *testServer, token string, body map[string]any) string {
	t.Helper()

	status, raw := ts.do(t, http.MethodPost, "/api/blogs", token, body)
	require.Equal(t, http.StatusCreated, status, string(raw))

	id, ok := decodeObject(t, raw)["id"].(string)
	require.True(t, ok, "expected id string")
	return id
}
