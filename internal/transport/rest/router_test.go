package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/moodjournal-backend/internal/config"
	"github.com/heartmarshall/moodjournal-backend/internal/domain"
	"github.com/heartmarshall/moodjournal-backend/internal/service/report"
	"github.com/heartmarshall/moodjournal-backend/internal/service/summary"
	"github.com/heartmarshall/moodjournal-backend/internal/transport/middleware"
	"github.com/heartmarshall/moodjournal-backend/pkg/ctxutil"
)

type staticValidator struct {
	token string
	user  uuid.UUID
}

func (v staticValidator) ValidateToken(_ context.Context, token string) (uuid.UUID, error) {
	if token != v.token {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return v.user, nil
}

func newTestRouter(t *testing.T, limit int) (http.Handler, uuid.UUID, *summaryServiceMock) {
	t.Helper()

	user := uuid.New()
	reports := &reportServiceMock{
		WeeklyReportsFunc: func(ctx context.Context, input report.WeeklyReportsInput) (*report.SeriesResult, error) {
			id, ok := ctxutil.UserIDFromCtx(ctx)
			if !ok {
				return nil, domain.ErrUnauthorized
			}
			assert.Equal(t, user, id)
			return &report.SeriesResult{Timezone: "UTC"}, nil
		},
	}
	summaries := &summaryServiceMock{
		WeeklyFunc: func(ctx context.Context, input summary.WeeklySummaryInput) (*domain.WeeklySummary, error) {
			return sampleSummary(), nil
		},
	}

	rl := middleware.NewRateLimiter(time.Hour)
	t.Cleanup(rl.Stop)

	log := testLogger()
	router := NewRouter(RouterDeps{
		Logger:       log,
		CORS:         config.CORSConfig{AllowedOrigins: "*", AllowedMethods: "GET,POST,OPTIONS", AllowedHeaders: "Authorization", MaxAge: 60},
		Validator:    staticValidator{token: "good", user: user},
		Health:       NewHealthHandler(&dbPingerMock{}, "test"),
		Reports:      NewReportHandler(reports, log),
		Summaries:    NewSummaryHandler(summaries, log),
		SummaryLimit: rl.Limit(limit),
	})
	return router, user, summaries
}

func doRequest(h http.Handler, method, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Routes(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestRouter(t, 100)

	tests := []struct {
		method string
		target string
		token  string
		want   int
	}{
		{http.MethodGet, "/live", "", http.StatusOK},
		{http.MethodGet, "/ready", "", http.StatusOK},
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodGet, "/api/reports/weekly", "good", http.StatusOK},
		{http.MethodGet, "/api/reports/weekly", "", http.StatusUnauthorized},
		{http.MethodGet, "/api/reports/weekly", "forged", http.StatusUnauthorized},
		{http.MethodGet, "/api/reports/weekly/export", "good", http.StatusOK},
		{http.MethodGet, "/api/summaries/weekly", "good", http.StatusOK},
		{http.MethodPost, "/api/summaries/weekly", "good", http.StatusOK},
		{http.MethodDelete, "/api/summaries/weekly", "good", http.StatusMethodNotAllowed},
		{http.MethodGet, "/api/unknown", "good", http.StatusNotFound},
	}

	for _, tt := range tests {
		rec := doRequest(router, tt.method, tt.target, tt.token)
		assert.Equal(t, tt.want, rec.Code, "%s %s token=%q", tt.method, tt.target, tt.token)
	}
}

func TestRouter_APIResponsesCarryRequestID(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestRouter(t, 100)

	rec := doRequest(router, http.MethodGet, "/api/reports/weekly", "good")
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
}

func TestRouter_SummaryRateLimitedPerUser(t *testing.T) {
	t.Parallel()

	router, _, summaries := newTestRouter(t, 2)

	for i := 0; i < 2; i++ {
		require.Equal(t, http.StatusOK, doRequest(router, http.MethodPost, "/api/summaries/weekly", "good").Code)
	}
	rec := doRequest(router, http.MethodPost, "/api/summaries/weekly", "good")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Len(t, summaries.WeeklyCalls(), 2)

	assert.Equal(t, http.StatusOK, doRequest(router, http.MethodGet, "/api/reports/weekly", "good").Code, "reports are not limited")
}

func TestRouter_Preflight(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestRouter(t, 100)

	req := httptest.NewRequest(http.MethodOptions, "/api/summaries/weekly", nil)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://app.example", rec.Header().Get("Access-Control-Allow-Origin"))
}
