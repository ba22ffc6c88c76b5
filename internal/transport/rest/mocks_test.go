package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/moodjournal-backend/internal/domain"
	"github.com/heartmarshall/moodjournal-backend/internal/service/report"
	"github.com/heartmarshall/moodjournal-backend/internal/service/summary"
)

var _ reportService = &reportServiceMock{}

type reportServiceMock struct {
	WeeklyReportsFunc func(ctx context.Context, input report.WeeklyReportsInput) (*report.SeriesResult, error)

	calls struct {
		WeeklyReports []struct {
			Ctx   context.Context
			Input report.WeeklyReportsInput
		}
	}
	lockWeeklyReports sync.RWMutex
}

func (mock *reportServiceMock) WeeklyReports(ctx context.Context, input report.WeeklyReportsInput) (*report.SeriesResult, error) {
	if mock.WeeklyReportsFunc == nil {
		panic("reportServiceMock.WeeklyReportsFunc: method is nil but reportService.WeeklyReports was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input report.WeeklyReportsInput
	}{Ctx: ctx, Input: input}
	mock.lockWeeklyReports.Lock()
	mock.calls.WeeklyReports = append(mock.calls.WeeklyReports, callInfo)
	mock.lockWeeklyReports.Unlock()
	return mock.WeeklyReportsFunc(ctx, input)
}

func (mock *reportServiceMock) WeeklyReportsCalls() []struct {
	Ctx   context.Context
	Input report.WeeklyReportsInput
} {
	mock.lockWeeklyReports.RLock()
	calls := mock.calls.WeeklyReports
	mock.lockWeeklyReports.RUnlock()
	return calls
}

var _ summaryService = &summaryServiceMock{}

type summaryServiceMock struct {
	WeeklyFunc func(ctx context.Context, input summary.WeeklySummaryInput) (*domain.WeeklySummary, error)

	calls struct {
		Weekly []struct {
			Ctx   context.Context
			Input summary.WeeklySummaryInput
		}
	}
	lockWeekly sync.RWMutex
}

func (mock *summaryServiceMock) Weekly(ctx context.Context, input summary.WeeklySummaryInput) (*domain.WeeklySummary, error) {
	if mock.WeeklyFunc == nil {
		panic("summaryServiceMock.WeeklyFunc: method is nil but summaryService.Weekly was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input summary.WeeklySummaryInput
	}{Ctx: ctx, Input: input}
	mock.lockWeekly.Lock()
	mock.calls.Weekly = append(mock.calls.Weekly, callInfo)
	mock.lockWeekly.Unlock()
	return mock.WeeklyFunc(ctx, input)
}

func (mock *summaryServiceMock) WeeklyCalls() []struct {
	Ctx   context.Context
	Input summary.WeeklySummaryInput
} {
	mock.lockWeekly.RLock()
	calls := mock.calls.Weekly
	mock.lockWeekly.RUnlock()
	return calls
}
