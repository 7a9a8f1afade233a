package services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrijs2005/blogclient/internal/client/api"
	"github.com/dmitrijs2005/blogclient/internal/client/credentials"
	"github.com/dmitrijs2005/blogclient/internal/logging"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

// backend is a fake blog server. Handlers are registered per test.
type backend struct {
	mux   *chi.Mux
	store *credentials.MemoryStore
	api   *api.Client
}

func newBackend(t *testing.T) *backend {
	t.Helper()
	b := &backend{mux: chi.NewRouter(), store: credentials.NewMemoryStore()}
	srv := httptest.NewServer(b.mux)
	t.Cleanup(srv.Close)

	c, err := api.NewClient(srv.URL, b.store, logging.Discard())
	require.NoError(t, err)
	b.api = c
	return b
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
