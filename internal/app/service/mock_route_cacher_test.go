package service

import (
	"context"
	"time"

	"github.com/ijalalfrz/flight-path-planner/internal/app/dto"
	"github.com/stretchr/testify/mock"
)

// MockRouteCacher is a testify mock of RouteCacher.
type MockRouteCacher struct {
	mock.Mock
}

func NewMockRouteCacher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRouteCacher {
	m := &MockRouteCacher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRouteCacher) GetLockKey(req dto.RouteRequest) string {
	return m.Called(req).String(0)
}

func (m *MockRouteCacher) GetCacheKey(req dto.RouteRequest) string {
	return m.Called(req).String(0)
}

func (m *MockRouteCacher) AcquireLock(ctx context.Context, key string, timeout time.Duration) (bool, error) {
	args := m.Called(ctx, key, timeout)
	return args.Bool(0), args.Error(1)
}

func (m *MockRouteCacher) ReleaseLock(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *MockRouteCacher) GetPaths(ctx context.Context, key string) ([]dto.Path, error) {
	args := m.Called(ctx, key)

	var paths []dto.Path
	if v := args.Get(0); v != nil {
		paths = v.([]dto.Path)
	}

	return paths, args.Error(1)
}

func (m *MockRouteCacher) SetPaths(ctx context.Context, key string, paths []dto.Path, expiration time.Duration) error {
	return m.Called(ctx, key, paths, expiration).Error(0)
}
