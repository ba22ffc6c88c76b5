package summary

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/moodjournal-backend/internal/domain"
)

var (
	_ entryRepo   = &entryRepoMock{}
	_ summaryRepo = &summaryRepoMock{}
	_ generator   = &generatorMock{}
)

type entryRepoMock struct {
	ListInRangeFunc func(ctx context.Context, userID uuid.UUID, from time.Time, to time.Time) ([]domain.Entry, error)

	calls struct {
		ListInRange []struct {
			UserID uuid.UUID
			From   time.Time
			To     time.Time
		}
	}
	lockListInRange sync.RWMutex
}

func (mock *entryRepoMock) ListInRange(ctx context.Context, userID uuid.UUID, from time.Time, to time.Time) ([]domain.Entry, error) {
	if mock.ListInRangeFunc == nil {
		panic("entryRepoMock.ListInRangeFunc: method is nil but entryRepo.ListInRange was just called")
	}
	mock.lockListInRange.Lock()
	mock.calls.ListInRange = append(mock.calls.ListInRange, struct {
		UserID uuid.UUID
		From   time.Time
		To     time.Time
	}{UserID: userID, From: from, To: to})
	mock.lockListInRange.Unlock()
	return mock.ListInRangeFunc(ctx, userID, from, to)
}

func (mock *entryRepoMock) ListInRangeCalls() []struct {
	UserID uuid.UUID
	From   time.Time
	To     time.Time
} {
	mock.lockListInRange.RLock()
	calls := mock.calls.ListInRange
	mock.lockListInRange.RUnlock()
	return calls
}

type summaryRepoMock struct {
	GetByWeekFunc func(ctx context.Context, userID uuid.UUID, weekStart time.Time) (*domain.WeeklySummary, error)
	UpsertFunc    func(ctx context.Context, s *domain.WeeklySummary) (*domain.WeeklySummary, error)

	calls struct {
		GetByWeek []struct {
			UserID    uuid.UUID
			WeekStart time.Time
		}
		Upsert []struct {
			S *domain.WeeklySummary
		}
	}
	lockGetByWeek sync.RWMutex
	lockUpsert    sync.RWMutex
}

func (mock *summaryRepoMock) GetByWeek(ctx context.Context, userID uuid.UUID, weekStart time.Time) (*domain.WeeklySummary, error) {
	if mock.GetByWeekFunc == nil {
		panic("summaryRepoMock.GetByWeekFunc: method is nil but summaryRepo.GetByWeek was just called")
	}
	mock.lockGetByWeek.Lock()
	mock.calls.GetByWeek = append(mock.calls.GetByWeek, struct {
		UserID    uuid.UUID
		WeekStart time.Time
	}{UserID: userID, WeekStart: weekStart})
	mock.lockGetByWeek.Unlock()
	return mock.GetByWeekFunc(ctx, userID, weekStart)
}

func (mock *summaryRepoMock) GetByWeekCalls() []struct {
	UserID    uuid.UUID
	WeekStart time.Time
} {
	mock.lockGetByWeek.RLock()
	calls := mock.calls.GetByWeek
	mock.lockGetByWeek.RUnlock()
	return calls
}

func (mock *summaryRepoMock) Upsert(ctx context.Context, s *domain.WeeklySummary) (*domain.WeeklySummary, error) {
	if mock.UpsertFunc == nil {
		panic("summaryRepoMock.UpsertFunc: method is nil but summaryRepo.Upsert was just called")
	}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, struct{ S *domain.WeeklySummary }{S: s})
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, s)
}

func (mock *summaryRepoMock) UpsertCalls() []struct{ S *domain.WeeklySummary } {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

type generatorMock struct {
	GenerateFunc func(ctx context.Context, system string, prompt string) (string, error)
	ModelFunc    func() string

	calls struct {
		Generate []struct {
			System string
			Prompt string
		}
	}
	lockGenerate sync.RWMutex
}

func (mock *generatorMock) Generate(ctx context.Context, system string, prompt string) (string, error) {
	if mock.GenerateFunc == nil {
		panic("generatorMock.GenerateFunc: method is nil but generator.Generate was just called")
	}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, struct {
		System string
		Prompt string
	}{System: system, Prompt: prompt})
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc(ctx, system, prompt)
}

func (mock *generatorMock) GenerateCalls() []struct {
	System string
	Prompt string
} {
	mock.lockGenerate.RLock()
	calls := mock.calls.Generate
	mock.lockGenerate.RUnlock()
	return calls
}

func (mock *generatorMock) Model() string {
	if mock.ModelFunc == nil {
		return "test-model"
	}
	return mock.ModelFunc()
}
