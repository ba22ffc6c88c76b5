package report

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/moodjournal-backend/internal/domain"
)

var _ entryRepo = &entryRepoMock{}

type entryRepoMock struct {
	ListInRangeFunc func(ctx context.Context, userID uuid.UUID, from time.Time, to time.Time) ([]domain.Entry, error)

	calls struct {
		ListInRange []struct {
			Ctx    context.Context
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
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		From   time.Time
		To     time.Time
	}{Ctx: ctx, UserID: userID, From: from, To: to}
	mock.lockListInRange.Lock()
	mock.calls.ListInRange = append(mock.calls.ListInRange, callInfo)
	mock.lockListInRange.Unlock()
	return mock.ListInRangeFunc(ctx, userID, from, to)
}

func (mock *entryRepoMock) ListInRangeCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	From   time.Time
	To     time.Time
} {
	mock.lockListInRange.RLock()
	calls := mock.calls.ListInRange
	mock.lockListInRange.RUnlock()
	return calls
}
