package catalog

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/ItemDrop_Go/internal/domain"
	"github.com/osse101/ItemDrop_Go/internal/repository"
)

// MockRepository implements repository.Catalog for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateTemplate(ctx context.Context, template domain.ItemTemplate) (*domain.ItemTemplate, error) {
	args := m.Called(ctx, template)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ItemTemplate), args.Error(1)
}

func (m *MockRepository) ListTemplates(ctx context.Context) ([]domain.ItemTemplate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ItemTemplate), args.Error(1)
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.CatalogTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.CatalogTx), args.Error(1)
}

// MockTx implements repository.CatalogTx for testing
type MockTx struct {
	mock.Mock
}

func (m *MockTx) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockTx) GetTemplateForUpdate(ctx context.Context, id int64) (*domain.ItemTemplate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ItemTemplate), args.Error(1)
}

func (m *MockTx) CountEquippedInstances(ctx context.Context, templateID int64) (int, error) {
	args := m.Called(ctx, templateID)
	return args.Int(0), args.Error(1)
}

func (m *MockTx) DeleteInstances(ctx context.Context, templateID int64) (int, error) {
	args := m.Called(ctx, templateID)
	return args.Int(0), args.Error(1)
}

func (m *MockTx) DeleteTemplate(ctx context.Context, templateID int64) error {
	return m.Called(ctx, templateID).Error(0)
}
