package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/eventforge/backend/internal/apierror"
	"github.com/eventforge/backend/internal/auth"
	"github.com/eventforge/backend/internal/config"
	"github.com/eventforge/backend/internal/handler"
	"github.com/eventforge/backend/internal/models"
	"github.com/eventforge/backend/internal/repository"
	"github.com/eventforge/backend/internal/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ContentIntegrationTestSuite struct {
	suite.Suite
	server *testServer
	token  string
}

func (s *ContentIntegrationTestSuite) SetupTest() {
	s.server = newTestServer(s.T(), func(cfg *config.Config) {
		cfg.AuthMode = config.AuthModeToken
	})
	s.token = s.server.adminToken()
}

func portfolioBody(title string) map[string]interface{} {
	return map[string]interface{}{
		"title":       title,
		"category":    "Corporate",
		"venue":       "Grand Hall",
		"imageUrl":    "https://images.example.com/gala.jpg",
		"description": "An evening for 300 guests",
		"overview":    "Full event management",
		"role":        []string{"Venue coordination", "Catering"},
		"results":     "Sold out",
		"tags":        []string{"Gala"},
	}
}

func (s *ContentIntegrationTestSuite) createPortfolio(body map[string]interface{}) models.PortfolioItem {
	w := s.server.do(http.MethodPost, "/api/portfolio", body, withToken(s.token))
	require.Equal(s.T(), http.StatusCreated, w.Code, w.Body.String())
	return decode[models.PortfolioItem](s.T(), w)
}

func (s *ContentIntegrationTestSuite) TestPortfolioPublicReadsAuthWrites() {
	item := s.createPortfolio(portfolioBody("Annual Gala"))
	assert.NotZero(s.T(), item.ID)
	assert.False(s.T(), item.Featured)

	w := s.server.do(http.MethodGet, "/api/portfolio", nil)
	require.Equal(s.T(), http.StatusOK, w.Code)
	assert.Len(s.T(), decode[[]models.PortfolioItem](s.T(), w), 1)

	w = s.server.do(http.MethodGet, "/api/portfolio/"+itoa(item.ID), nil)
	require.Equal(s.T(), http.StatusOK, w.Code)
	assert.Equal(s.T(), "Annual Gala", decode[models.PortfolioItem](s.T(), w).Title)
}

func (s *ContentIntegrationTestSuite) TestPortfolioWritesRequireAuth() {
	item := s.createPortfolio(portfolioBody("Annual Gala"))

	testCases := []struct {
		method string
		path   string
		body   interface{}
	}{
		{method: http.MethodPost, path: "/api/portfolio", body: portfolioBody("Other")},
		{method: http.MethodPut, path: "/api/portfolio/" + itoa(item.ID), body: map[string]string{"title": "Hijacked"}},
		{method: http.MethodDelete, path: "/api/portfolio/" + itoa(item.ID)},
	}

	for _, tc := range testCases {
		s.Run(tc.method, func() {
			w := s.server.do(tc.method, tc.path, tc.body)
			assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
		})
	}

	got, err := s.server.store.Portfolio().GetByID(context.Background(), item.ID)
	require.NoError(s.T(), err, "unauthenticated calls must not touch the item")
	assert.Equal(s.T(), "Annual Gala", got.Title)
}

func (s *ContentIntegrationTestSuite) TestPortfolioListFieldsAcceptStrings() {
	body := portfolioBody("Launch Party")
	body["tags"] = "Corporate, Launch ,,"
	body["role"] = "Theming\n\n  AV production \n"

	item := s.createPortfolio(body)

	assert.Equal(s.T(), []string{"Corporate", "Launch"}, item.Tags)
	assert.Equal(s.T(), []string{"Theming", "AV production"}, item.Role)
}

func (s *ContentIntegrationTestSuite) TestPortfolioCreateValidation() {
	body := portfolioBody("  ")
	body["tags"] = " , "

	w := s.server.do(http.MethodPost, "/api/portfolio", body, withToken(s.token))

	require.Equal(s.T(), http.StatusBadRequest, w.Code)
	resp := decode[apierror.Response](s.T(), w)
	fields := map[string]bool{}
	for _, fe := range resp.Errors {
		fields[fe.Field] = true
	}
	assert.True(s.T(), fields["title"])
	assert.True(s.T(), fields["tags"])
}

func (s *ContentIntegrationTestSuite) TestPortfolioPartialUpdate() {
	item := s.createPortfolio(portfolioBody("Annual Gala"))

	w := s.server.do(http.MethodPut, "/api/portfolio/"+itoa(item.ID), map[string]interface{}{
		"featured": true,
		"tags":     "Gala,Charity",
	}, withToken(s.token))

	require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())
	updated := decode[models.PortfolioItem](s.T(), w)
	assert.True(s.T(), updated.Featured)
	assert.Equal(s.T(), []string{"Gala", "Charity"}, updated.Tags)
	assert.Equal(s.T(), "Annual Gala", updated.Title)
	assert.Equal(s.T(), item.Role, updated.Role)
}

func (s *ContentIntegrationTestSuite) TestPortfolioBlankVenueIsNull() {
	body := portfolioBody("Garden Party")
	body["venue"] = "   "
	created := s.createPortfolio(body)
	assert.Nil(s.T(), created.Venue)

	item := s.createPortfolio(portfolioBody("Annual Gala"))
	require.NotNil(s.T(), item.Venue)

	w := s.server.do(http.MethodPut, "/api/portfolio/"+itoa(item.ID), map[string]string{"venue": "  "}, withToken(s.token))

	require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())
	assert.Nil(s.T(), decode[models.PortfolioItem](s.T(), w).Venue)
	stored, err := s.server.store.Portfolio().GetByID(context.Background(), item.ID)
	require.NoError(s.T(), err)
	assert.Nil(s.T(), stored.Venue, "a blank venue is stored as null on update too")
	assert.Equal(s.T(), "Annual Gala", stored.Title)
}

func (s *ContentIntegrationTestSuite) TestPortfolioUpdateMissing() {
	w := s.server.do(http.MethodPut, "/api/portfolio/999", map[string]string{"title": "Nope"}, withToken(s.token))

	assert.Equal(s.T(), http.StatusNotFound, w.Code)
	assert.Equal(s.T(), "Portfolio item not found", decode[apierror.Response](s.T(), w).Message)
}

func (s *ContentIntegrationTestSuite) TestPortfolioDeleteIsIdempotent() {
	item := s.createPortfolio(portfolioBody("Annual Gala"))
	path := "/api/portfolio/" + itoa(item.ID)

	assert.Equal(s.T(), http.StatusNoContent, s.server.do(http.MethodDelete, path, nil, withToken(s.token)).Code)
	assert.Equal(s.T(), http.StatusNoContent, s.server.do(http.MethodDelete, path, nil, withToken(s.token)).Code)
	assert.Equal(s.T(), http.StatusNotFound, s.server.do(http.MethodGet, path, nil).Code)
}

func (s *ContentIntegrationTestSuite) TestInvalidIDs() {
	for _, id := range []string{"abc", "0", "-1", "1.5"} {
		s.Run(id, func() {
			w := s.server.do(http.MethodGet, "/api/portfolio/"+id, nil)

			assert.Equal(s.T(), http.StatusBadRequest, w.Code)
			assert.Equal(s.T(), "Invalid ID format", decode[apierror.Response](s.T(), w).Message)
		})
	}
}

func (s *ContentIntegrationTestSuite) TestTestimonialLifecycle() {
	w := s.server.do(http.MethodPost, "/api/testimonials", map[string]interface{}{
		"rating":         5,
		"content":        "Flawless from start to finish",
		"author":         "Sarah B.",
		"position":       "Bride",
		"avatarInitials": "SB",
	}, withToken(s.token))
	require.Equal(s.T(), http.StatusCreated, w.Code, w.Body.String())
	created := decode[models.Testimonial](s.T(), w)

	w = s.server.do(http.MethodPut, "/api/testimonials/"+itoa(created.ID), map[string]int{"rating": 4}, withToken(s.token))
	require.Equal(s.T(), http.StatusOK, w.Code)
	updated := decode[models.Testimonial](s.T(), w)
	assert.Equal(s.T(), 4, updated.Rating)
	assert.Equal(s.T(), "Sarah B.", updated.Author)

	w = s.server.do(http.MethodGet, "/api/testimonials", nil)
	require.Equal(s.T(), http.StatusOK, w.Code)
	assert.Len(s.T(), decode[[]models.Testimonial](s.T(), w), 1)

	assert.Equal(s.T(), http.StatusNoContent,
		s.server.do(http.MethodDelete, "/api/testimonials/"+itoa(created.ID), nil, withToken(s.token)).Code)
	assert.Equal(s.T(), http.StatusNotFound,
		s.server.do(http.MethodGet, "/api/testimonials/"+itoa(created.ID), nil).Code)
}

func (s *ContentIntegrationTestSuite) TestTestimonialRatingBounds() {
	for _, rating := range []int{0, 6, -2} {
		s.Run(fmt.Sprint(rating), func() {
			w := s.server.do(http.MethodPost, "/api/testimonials", map[string]interface{}{
				"rating":         rating,
				"content":        "Great",
				"author":         "Alex",
				"position":       "Host",
				"avatarInitials": "AM",
			}, withToken(s.token))

			assert.Equal(s.T(), http.StatusBadRequest, w.Code)
		})
	}

	created, err := s.server.store.Testimonials().List(context.Background())
	require.NoError(s.T(), err)
	assert.Empty(s.T(), created)
}

func (s *ContentIntegrationTestSuite) TestContactPublicSubmission() {
	w := s.server.do(http.MethodPost, "/api/contact", map[string]interface{}{
		"name":      "Jo",
		"email":     "jo@x.com",
		"message":   "Hi",
		"read":      true,
		"createdAt": "1999-01-01T00:00:00Z",
	})

	require.Equal(s.T(), http.StatusCreated, w.Code, w.Body.String())
	submission := decode[models.ContactSubmission](s.T(), w)
	assert.NotZero(s.T(), submission.ID)
	assert.False(s.T(), submission.Read, "read is server-owned")
	assert.Greater(s.T(), submission.CreatedAt.Year(), 1999, "createdAt is server-owned")
	assert.Nil(s.T(), submission.Phone)
	assert.Nil(s.T(), submission.EventType)
}

func (s *ContentIntegrationTestSuite) TestContactInvalidEmail() {
	w := s.server.do(http.MethodPost, "/api/contact", map[string]string{
		"name":    "Jo",
		"email":   "not-an-email",
		"message": "Hi",
	})

	require.Equal(s.T(), http.StatusBadRequest, w.Code)
	resp := decode[apierror.Response](s.T(), w)
	require.Len(s.T(), resp.Errors, 1)
	assert.Equal(s.T(), "email", resp.Errors[0].Field)
}

func (s *ContentIntegrationTestSuite) TestContactInboxIsProtected() {
	assert.Equal(s.T(), http.StatusUnauthorized, s.server.do(http.MethodGet, "/api/contact", nil).Code)
	assert.Equal(s.T(), http.StatusUnauthorized, s.server.do(http.MethodPatch, "/api/contact/1/read", nil).Code)
}

func (s *ContentIntegrationTestSuite) TestContactMarkReadIsIdempotent() {
	submission := testutil.NewContactSubmission("Jo")
	require.NoError(s.T(), s.server.store.Contacts().Create(context.Background(), submission))
	path := "/api/contact/" + itoa(submission.ID) + "/read"

	for i := 0; i < 2; i++ {
		w := s.server.do(http.MethodPatch, path, nil, withToken(s.token))
		require.Equal(s.T(), http.StatusOK, w.Code)
		assert.True(s.T(), decode[models.ContactSubmission](s.T(), w).Read)
	}

	w := s.server.do(http.MethodPatch, "/api/contact/999/read", nil, withToken(s.token))
	assert.Equal(s.T(), http.StatusNotFound, w.Code)
}

func (s *ContentIntegrationTestSuite) TestContactListAndDelete() {
	for _, name := range []string{"Jo", "Sam"} {
		require.NoError(s.T(), s.server.store.Contacts().Create(context.Background(), testutil.NewContactSubmission(name)))
	}

	w := s.server.do(http.MethodGet, "/api/contact", nil, withToken(s.token))
	require.Equal(s.T(), http.StatusOK, w.Code)
	submissions := decode[[]models.ContactSubmission](s.T(), w)
	require.Len(s.T(), submissions, 2)

	path := "/api/contact/" + itoa(submissions[0].ID)
	assert.Equal(s.T(), http.StatusNoContent, s.server.do(http.MethodDelete, path, nil, withToken(s.token)).Code)
	assert.Equal(s.T(), http.StatusNoContent, s.server.do(http.MethodDelete, path, nil, withToken(s.token)).Code)
	assert.Equal(s.T(), http.StatusNotFound, s.server.do(http.MethodGet, path, nil, withToken(s.token)).Code)
}

func (s *ContentIntegrationTestSuite) TestHealthAndMetrics() {
	w := s.server.do(http.MethodGet, "/api/health", nil)
	require.Equal(s.T(), http.StatusOK, w.Code)
	health := decode[map[string]interface{}](s.T(), w)
	assert.Equal(s.T(), "ok", health["status"])
	assert.Equal(s.T(), map[string]interface{}{"database": "ok"}, health["checks"])

	w = s.server.do(http.MethodGet, "/metrics", nil)
	require.Equal(s.T(), http.StatusOK, w.Code)
	assert.True(s.T(), strings.Contains(w.Body.String(), "eventforge_http_request_duration_seconds"))
}

func (s *ContentIntegrationTestSuite) TestSecurityHeadersPresent() {
	w := s.server.do(http.MethodGet, "/api/portfolio", nil)

	assert.Equal(s.T(), "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(s.T(), "DENY", w.Header().Get("X-Frame-Options"))
	assert.NotEmpty(s.T(), w.Header().Get("X-Request-ID"))
}

func TestContentIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ContentIntegrationTestSuite))
}

func TestStoreUnavailableAnswers503(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testutil.TestConfig()
	cfg.AuthMode = config.AuthModeToken

	db := testutil.SetupTestDatabase(t)
	down := repository.NewGormStore(db.DB, func(ctx context.Context) error {
		return fmt.Errorf("%w: connection refused", repository.ErrUnavailable)
	})
	strategy, err := auth.NewStrategy(cfg, nil, down.Users())
	require.NoError(t, err)

	router := handler.NewRouter(handler.Dependencies{Config: cfg, Store: down, Strategy: strategy})
	server := &testServer{t: t, cfg: cfg, db: db, store: down, router: router}

	testCases := []struct {
		name   string
		method string
		path   string
		body   interface{}
	}{
		{name: "portfolio_list", method: http.MethodGet, path: "/api/portfolio"},
		{name: "testimonial_get", method: http.MethodGet, path: "/api/testimonials/1"},
		{name: "contact_create", method: http.MethodPost, path: "/api/contact", body: map[string]string{"name": "Jo", "email": "jo@x.com", "message": "Hi"}},
		{name: "login", method: http.MethodPost, path: "/api/auth/login", body: map[string]string{"username": "admin", "password": "Admin123456"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := server.do(tc.method, tc.path, tc.body)

			assert.Equal(t, http.StatusServiceUnavailable, w.Code)
			assert.Equal(t, apierror.CodeUnavailable, decode[apierror.Response](t, w).Code)
		})
	}

	// Health still answers while the store is down. Ping bypasses the ready
	// hook, so the sqlite file itself reports ok here.
	assert.Equal(t, http.StatusOK, server.do(http.MethodGet, "/api/health", nil).Code)
}
