package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"campusfaq/internal/model"
	"campusfaq/internal/service"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepo struct {
	corpus []*model.FAQEntry
}

func (s *stubRepo) Create(ctx context.Context, entry *model.FAQEntry) (string, error) {
	return "faq-1", nil
}
func (s *stubRepo) GetByID(ctx context.Context, id string) (*model.FAQEntry, error) {
	for _, e := range s.corpus {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}
func (s *stubRepo) Update(ctx context.Context, entry *model.FAQEntry) error { return nil }
func (s *stubRepo) Delete(ctx context.Context, id string) error { return nil }
func (s *stubRepo) GetAll(ctx context.Context) ([]*model.FAQEntry, error) { return s.corpus, nil }
func (s *stubRepo) GetActive(ctx context.Context) ([]*model.FAQEntry, error) {
	return s.corpus, nil
}
func (s *stubRepo) GetByCategory(ctx context.Context, c model.Category) ([]*model.FAQEntry, error) {
	return nil, nil
}

type stubCorpusCache struct{}

func (stubCorpusCache) Get(ctx context.Context) ([]*model.FAQEntry, error) { return nil, nil }
func (stubCorpusCache) Set(ctx context.Context, e []*model.FAQEntry) error { return nil }
func (stubCorpusCache) Invalidate(ctx context.Context) error               { return nil }

type stubStatsCache struct {
	recorded []string
}

func (s *stubStatsCache) RecordUnmatched(ctx context.Context, query string) error {
	s.recorded = append(s.recorded, query)
	return nil
}
func (s *stubStatsCache) TopUnmatched(ctx context.Context, limit int) ([]model.UnmatchedQuery, error) {
	return nil, nil
}

func testRouter(t *testing.T) (http.Handler, *stubStatsCache) {
	t.Setenv("ADMIN_USERNAME", "admin")
	t.Setenv("ADMIN_PASSWORD", "secret")
	t.Setenv("JWT_SECRET", "test-secret")

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	log := logger.WithField("test", "rest")

	repo := &stubRepo{corpus: []*model.FAQEntry{
		{
			ID:       "faq-1",
			Question: "What courses are offered?",
			Answer:   "We offer CS, ME, ET, EE diplomas.",
			Keywords: []string{"courses", "diploma"},
			Category: model.CategoryCourses,
			IsActive: true,
		},
	}}
	stats := &stubStatsCache{}

	router := NewRouter(&Container{
		AuthService: service.NewAuthService(),
		FAQService:  service.NewFAQService(repo, stubCorpusCache{}, log),
		ChatService: service.NewChatService(repo, stubCorpusCache{}, stats, log),
	})
	return router, stats
}

func TestRouter_Health(t *testing.T) {
	router, _ := testRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_ChatQuery(t *testing.T) {
	router, _ := testRouter(t)

	body := bytes.NewBufferString(`{"query":"what courses are offered"}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/v1/chat/query", body))

	require.Equal(t, http.StatusOK, rec.Code)

	var result model.MatchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "We offer CS, ME, ET, EE diplomas.", result.Answer)
	assert.Equal(t, 1.0, result.Confidence)
	assert.Equal(t, model.CategoryCourses, result.Category)
}

func TestRouter_ChatQuery_EmptyQueryRejected(t *testing.T) {
	router, stats := testRouter(t)

	body := bytes.NewBufferString(`{"query":"   "}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/v1/chat/query", body))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, stats.recorded)
}

func TestRouter_ChatQuery_UnmatchedRecorded(t *testing.T) {
	router, stats := testRouter(t)

	body := bytes.NewBufferString(`{"query":"zzzqqqxxx"}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/v1/chat/query", body))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"zzzqqqxxx"}, stats.recorded)
}

func TestRouter_AdminRoutesRequireToken(t *testing.T) {
	router, _ := testRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/v1/faqs", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_LoginThenListFAQs(t *testing.T) {
	router, _ := testRouter(t)

	body := bytes.NewBufferString(`{"username":"admin","password":"secret"}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/v1/auth/login", body))
	require.Equal(t, http.StatusOK, rec.Code)

	var login model.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))
	require.NotEmpty(t, login.Token)

	req := httptest.NewRequest("GET", "/v1/faqs", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "What courses are offered?")
}
