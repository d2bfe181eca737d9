package api

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/require"

	"github.com/bookmuse/bookmuse-server/internal/gemini"
	"github.com/bookmuse/bookmuse-server/internal/service"
	"github.com/bookmuse/bookmuse-server/internal/store"
)

// fakeRecommender returns a canned payload or error for every prompt.
type fakeRecommender struct {
	payload *gemini.Payload
	err     error
}

func (f *fakeRecommender) FetchRecommendations(ctx context.Context, prompt string) (*gemini.Payload, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.payload, nil
}

// testServer wraps the API server for handler testing.
type testServer struct {
	*Server
	api         humatest.TestAPI
	recommender *fakeRecommender
	cleanup     func()
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "bookmuse-api-test-*")
	require.NoError(t, err)

	dbPath := filepath.Join(tmpDir, "test.db")
	st, err := store.New(dbPath, nil)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	recommender := &fakeRecommender{}
	services := &Services{
		Recommendation: service.NewRecommendationService(recommender, logger),
		Book:           service.NewBookService(st, logger),
		Preference:     service.NewPreferenceService(st, logger),
	}

	s := NewServer(st, services, logger)
	testAPI := humatest.Wrap(t, s.api)

	cleanup := func() {
		_ = st.Close()
		_ = os.RemoveAll(tmpDir)
	}

	return &testServer{
		Server:      s,
		api:         testAPI,
		recommender: recommender,
		cleanup:     cleanup,
	}
}

func TestHealthCheck(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	resp := ts.api.Get("/health")
	require.Equal(t, http.StatusOK, resp.Code)
	require.Contains(t, resp.Body.String(), `"status":"healthy"`)
}
