package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/alexedwards/scs/v2"
	"github.com/eventforge/backend/internal/auth"
	"github.com/eventforge/backend/internal/config"
	"github.com/eventforge/backend/internal/handler"
	"github.com/eventforge/backend/internal/repository"
	"github.com/eventforge/backend/internal/session"
	"github.com/eventforge/backend/internal/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// testServer is a router over an isolated sqlite database
type testServer struct {
	t        *testing.T
	cfg      *config.Config
	db       *testutil.TestDatabase
	store    repository.Store
	sessions *scs.SessionManager
	router   *gin.Engine
}

func newTestServer(t *testing.T, mutate func(cfg *config.Config)) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := testutil.TestConfig()
	if mutate != nil {
		mutate(cfg)
	}

	db := testutil.SetupTestDatabase(t)
	store := db.Store()

	var sessions *scs.SessionManager
	if cfg.SessionAuthEnabled() {
		var err error
		sessions, err = session.New(cfg, db.DB, nil)
		require.NoError(t, err)
	}

	strategy, err := auth.NewStrategy(cfg, sessions, store.Users())
	require.NoError(t, err)

	router := handler.NewRouter(handler.Dependencies{
		Config:   cfg,
		Store:    store,
		Strategy: strategy,
		Sessions: sessions,
	})

	return &testServer{t: t, cfg: cfg, db: db, store: store, sessions: sessions, router: router}
}

type requestOption func(r *http.Request)

func withToken(token string) requestOption {
	return func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }
}

func withCookies(cookies []*http.Cookie) requestOption {
	return func(r *http.Request) {
		for _, c := range cookies {
			r.AddCookie(c)
		}
	}
}

func withHeader(key, value string) requestOption {
	return func(r *http.Request) { r.Header.Set(key, value) }
}

func (s *testServer) do(method, path string, body interface{}, opts ...requestOption) *httptest.ResponseRecorder {
	s.t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(s.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, opt := range opts {
		opt(req)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// login logs in an existing account and returns its token
func (s *testServer) login(username, password string) string {
	s.t.Helper()

	w := s.do(http.MethodPost, "/api/auth/login", map[string]string{"username": username, "password": password})
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())

	var resp handler.AuthResponse
	require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Token
}

// adminToken creates the default admin and logs in
func (s *testServer) adminToken() string {
	testutil.DefaultAdminUser(s.t, s.store.Users())
	return s.login(testutil.DefaultAdminUsername, testutil.DefaultAdminPassword)
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
