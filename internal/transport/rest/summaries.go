package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/moodjournal-backend/internal/domain"
	"github.com/heartmarshall/moodjournal-backend/internal/service/summary"
)

type summaryService interface {
	Weekly(ctx context.Context, input summary.WeeklySummaryInput) (*domain.WeeklySummary, error)
}

// SummaryHandler serves AI weekly summaries.
type SummaryHandler struct {
	svc summaryService
	log *slog.Logger
}

// NewSummaryHandler creates a SummaryHandler.
func NewSummaryHandler(svc summaryService, logger *slog.Logger) *SummaryHandler {
	return &SummaryHandler{svc: svc, log: logger.With("handler", "summary")}
}

// Get handles GET /api/summaries/weekly. A stored summary is returned as is.
func (h *SummaryHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, false)
}

// Regenerate handles POST /api/summaries/weekly and always calls the model.
func (h *SummaryHandler) Regenerate(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, true)
}

func (h *SummaryHandler) serve(w http.ResponseWriter, r *http.Request, force bool) {
	weeksAgo, _, err := queryInt(r, "weeks_ago")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	s, err := h.svc.Weekly(r.Context(), summary.WeeklySummaryInput{
		WeeksAgo: weeksAgo,
		Timezone: requestTimezone(r),
		Force:    force,
	})
	if errors.Is(err, summary.ErrNoEntries) {
		writeError(w, http.StatusNotFound, "no diary entries for this week")
		return
	}
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSummaryResponse(s))
}
