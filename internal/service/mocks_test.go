package service

import (
	"context"

	"campusfaq/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockFAQRepo struct {
	mock.Mock
}

func (m *MockFAQRepo) Create(ctx context.Context, entry *model.FAQEntry) (string, error) {
	args := m.Called(ctx, entry)
	return args.String(0), args.Error(1)
}

func (m *MockFAQRepo) GetByID(ctx context.Context, id string) (*model.FAQEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FAQEntry), args.Error(1)
}

func (m *MockFAQRepo) Update(ctx context.Context, entry *model.FAQEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockFAQRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFAQRepo) GetAll(ctx context.Context) ([]*model.FAQEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.FAQEntry), args.Error(1)
}

func (m *MockFAQRepo) GetActive(ctx context.Context) ([]*model.FAQEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.FAQEntry), args.Error(1)
}

func (m *MockFAQRepo) GetByCategory(ctx context.Context, category model.Category) ([]*model.FAQEntry, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.FAQEntry), args.Error(1)
}

type MockCorpusCache struct {
	mock.Mock
}

func (m *MockCorpusCache) Get(ctx context.Context) ([]*model.FAQEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.FAQEntry), args.Error(1)
}

func (m *MockCorpusCache) Set(ctx context.Context, entries []*model.FAQEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockCorpusCache) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockStatsCache struct {
	mock.Mock
}

func (m *MockStatsCache) RecordUnmatched(ctx context.Context, query string) error {
	args := m.Called(ctx, query)
	return args.Error(0)
}

func (m *MockStatsCache) TopUnmatched(ctx context.Context, limit int) ([]model.UnmatchedQuery, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.UnmatchedQuery), args.Error(1)
}
