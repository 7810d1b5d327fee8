package repository

import (
	"context"

	"github.com/osse101/ItemDrop_Go/internal/domain"
)

// Catalog defines the interface for item template persistence
type Catalog interface {
	// CreateTemplate returns domain.ErrTemplateExists when the name is taken
	CreateTemplate(ctx context.Context, template domain.ItemTemplate) (*domain.ItemTemplate, error)
	ListTemplates(ctx context.Context) ([]domain.ItemTemplate, error)
	BeginTx(ctx context.Context) (CatalogTx, error)
}

// CatalogTx defines the interface for catalog transactions
type CatalogTx interface {
	Tx
	// GetTemplateForUpdate returns domain.ErrTemplateNotFound if id is unknown
	GetTemplateForUpdate(ctx context.Context, id int64) (*domain.ItemTemplate, error)
	CountEquippedInstances(ctx context.Context, templateID int64) (int, error)
	DeleteInstances(ctx context.Context, templateID int64) (int, error)
	DeleteTemplate(ctx context.Context, templateID int64) error
}
