package rest

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/moodjournal-backend/internal/adapter/xlsx"
	"github.com/heartmarshall/moodjournal-backend/internal/domain"
	"github.com/heartmarshall/moodjournal-backend/internal/service/report"
)

type reportService interface {
	WeeklyReports(ctx context.Context, input report.WeeklyReportsInput) (*report.SeriesResult, error)
}

// ReportHandler serves the weekly report series.
type ReportHandler struct {
	svc reportService
	log *slog.Logger
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(svc reportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{svc: svc, log: logger.With("handler", "report")}
}

// Weekly handles GET /api/reports/weekly.
func (h *ReportHandler) Weekly(w http.ResponseWriter, r *http.Request) {
	res, err := h.series(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSeriesResponse(res))
}

// Export handles GET /api/reports/weekly/export and responds with an xlsx workbook.
func (h *ReportHandler) Export(w http.ResponseWriter, r *http.Request) {
	res, err := h.series(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	loc, err := time.LoadLocation(res.Timezone)
	if err != nil {
		handleError(h.log, w, r, fmt.Errorf("load location %q: %w", res.Timezone, err))
		return
	}

	var buf bytes.Buffer
	if err := xlsx.WriteReports(&buf, res.Reports, loc); err != nil {
		handleError(h.log, w, r, fmt.Errorf("write workbook: %w", err))
		return
	}

	w.Header().Set("Content-Type", xlsx.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, exportFilename(res, loc)))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w) //nolint:errcheck
}

func (h *ReportHandler) series(r *http.Request) (*report.SeriesResult, error) {
	weeks, ok, err := queryInt(r, "weeks")
	if err != nil {
		return nil, err
	}
	if ok && weeks < 1 {
		return nil, domain.NewValidationError("weeks", "must be at least 1")
	}
	return h.svc.WeeklyReports(r.Context(), report.WeeklyReportsInput{
		Weeks:    weeks,
		Timezone: requestTimezone(r),
	})
}

// exportFilename is named after the newest week's start date. Reports are
// ordered most recent first.
func exportFilename(res *report.SeriesResult, loc *time.Location) string {
	if len(res.Reports) == 0 {
		return "mood-report.xlsx"
	}
	newest := res.Reports[0]
	return "mood-report-" + newest.Window.Start.In(loc).Format(time.DateOnly) + ".xlsx"
}
