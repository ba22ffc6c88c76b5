package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/moodjournal-backend/internal/config"
	"github.com/heartmarshall/moodjournal-backend/internal/transport/middleware"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

// RouterDeps are the handlers and collaborators the HTTP surface needs.
type RouterDeps struct {
	Logger       *slog.Logger
	CORS         config.CORSConfig
	Validator    tokenValidator
	Health       *HealthHandler
	Reports      *ReportHandler
	Summaries    *SummaryHandler
	SummaryLimit middleware.Middleware
}

// NewRouter registers all routes. Probes bypass auth; API routes run the
// full middleware chain, and summary routes are additionally rate limited.
func NewRouter(d RouterDeps) http.Handler {
	api := middleware.Chain(
		middleware.Recovery(d.Logger),
		middleware.RequestID,
		middleware.Logger(d.Logger),
		middleware.CORS(d.CORS),
		middleware.Timezone,
		middleware.Auth(d.Validator),
	)
	limited := func(h http.HandlerFunc) http.Handler {
		if d.SummaryLimit == nil {
			return api(h)
		}
		return api(d.SummaryLimit(h))
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", d.Health.Live)
	mux.HandleFunc("GET /ready", d.Health.Ready)
	mux.HandleFunc("GET /health", d.Health.Health)

	mux.Handle("GET /api/reports/weekly", api(http.HandlerFunc(d.Reports.Weekly)))
	mux.Handle("GET /api/reports/weekly/export", api(http.HandlerFunc(d.Reports.Export)))
	mux.Handle("GET /api/summaries/weekly", limited(d.Summaries.Get))
	mux.Handle("POST /api/summaries/weekly", limited(d.Summaries.Regenerate))

	// CORS answers preflights before the handler runs.
	preflight := api(http.NotFoundHandler())
	for _, path := range []string{"/api/reports/weekly", "/api/reports/weekly/export", "/api/summaries/weekly"} {
		mux.Handle("OPTIONS "+path, preflight)
	}

	return mux
}
