package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/ItemDrop_Go/internal/database/generated"
	"github.com/osse101/ItemDrop_Go/internal/domain"
	"github.com/osse101/ItemDrop_Go/internal/repository"
)

// CatalogRepository implements repository.Catalog for PostgreSQL
type CatalogRepository struct {
	db *pgxpool.Pool
	q  *generated.Queries
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{
		db: db,
		q:  generated.New(db),
	}
}

// CatalogTx implements repository.CatalogTx
type CatalogTx struct {
	tx pgx.Tx
	q  *generated.Queries
}

// BeginTx starts a new transaction
func (r *CatalogRepository) BeginTx(ctx context.Context) (repository.CatalogTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &CatalogTx{
		tx: tx,
		q:  r.q.WithTx(tx),
	}, nil
}

// Commit commits the transaction
func (t *CatalogTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *CatalogTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// CreateTemplate inserts a new catalog entry
func (r *CatalogRepository) CreateTemplate(ctx context.Context, template domain.ItemTemplate) (*domain.ItemTemplate, error) {
	level, err := toInt32("item_level", template.ItemLevel)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreateTemplate, err)
	}
	price, err := toInt32("price", template.Price)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreateTemplate, err)
	}

	row, err := r.q.CreateItemTemplate(ctx, generated.CreateItemTemplateParams{
		Name:        template.Name,
		Type:        template.Type,
		Rarity:      template.Rarity,
		Description: template.Description,
		ItemLevel:   level,
		Price:       price,
		Equippable:  template.Equippable,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrTemplateExists
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreateTemplate, err)
	}
	created := mapTemplate(row)
	return &created, nil
}

// ListTemplates returns the whole catalog ordered by id
func (r *CatalogRepository) ListTemplates(ctx context.Context) ([]domain.ItemTemplate, error) {
	return listTemplates(ctx, r.q)
}

func listTemplates(ctx context.Context, q *generated.Queries) ([]domain.ItemTemplate, error) {
	rows, err := q.ListItemTemplates(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListTemplates, err)
	}
	templates := make([]domain.ItemTemplate, len(rows))
	for i, row := range rows {
		templates[i] = mapTemplate(row)
	}
	return templates, nil
}

// GetTemplateForUpdate locks a catalog entry so draws cannot reference it mid-delete
func (t *CatalogTx) GetTemplateForUpdate(ctx context.Context, id int64) (*domain.ItemTemplate, error) {
	row, err := t.q.GetItemTemplateForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTemplateNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetTemplate, err)
	}
	template := mapTemplate(row)
	return &template, nil
}

// CountEquippedInstances counts instances of the template that sit in an equip slot
func (t *CatalogTx) CountEquippedInstances(ctx context.Context, templateID int64) (int, error) {
	n, err := t.q.CountEquippedByTemplate(ctx, templateID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCountEquipped, err)
	}
	return int(n), nil
}

// DeleteInstances deletes every item drawn from the template
func (t *CatalogTx) DeleteInstances(ctx context.Context, templateID int64) (int, error) {
	n, err := t.q.DeleteItemsByTemplate(ctx, templateID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToDeleteInstances, err)
	}
	return int(n), nil
}

// DeleteTemplate deletes the catalog entry itself
func (t *CatalogTx) DeleteTemplate(ctx context.Context, templateID int64) error {
	n, err := t.q.DeleteItemTemplate(ctx, templateID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteTemplate, err)
	}
	if n == 0 {
		return domain.ErrTemplateNotFound
	}
	return nil
}
