package report

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/moodjournal-backend/internal/domain"
)

var _ seriesCache = &seriesCacheMock{}

type seriesCacheMock struct {
	GetFunc func(ctx context.Context, key string) ([]domain.WeeklyReport, error)
	SetFunc func(ctx context.Context, key string, reports []domain.WeeklyReport, ttl time.Duration) error

	calls struct {
		Get []struct {
			Ctx context.Context
			Key string
		}
		Set []struct {
			Ctx     context.Context
			Key     string
			Reports []domain.WeeklyReport
			TTL     time.Duration
		}
	}
	lockGet sync.RWMutex
	lockSet sync.RWMutex
}

func (mock *seriesCacheMock) Get(ctx context.Context, key string) ([]domain.WeeklyReport, error) {
	if mock.GetFunc == nil {
		panic("seriesCacheMock.GetFunc: method is nil but seriesCache.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key string
	}{Ctx: ctx, Key: key}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, key)
}

func (mock *seriesCacheMock) GetCalls() []struct {
	Ctx context.Context
	Key string
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *seriesCacheMock) Set(ctx context.Context, key string, reports []domain.WeeklyReport, ttl time.Duration) error {
	if mock.SetFunc == nil {
		panic("seriesCacheMock.SetFunc: method is nil but seriesCache.Set was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Key     string
		Reports []domain.WeeklyReport
		TTL     time.Duration
	}{Ctx: ctx, Key: key, Reports: reports, TTL: ttl}
	mock.lockSet.Lock()
	mock.calls.Set = append(mock.calls.Set, callInfo)
	mock.lockSet.Unlock()
	return mock.SetFunc(ctx, key, reports, ttl)
}

func (mock *seriesCacheMock) SetCalls() []struct {
	Ctx     context.Context
	Key     string
	Reports []domain.WeeklyReport
	TTL     time.Duration
} {
	mock.lockSet.RLock()
	calls := mock.calls.Set
	mock.lockSet.RUnlock()
	return calls
}
