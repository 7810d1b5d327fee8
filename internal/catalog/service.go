package catalog

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/osse101/ItemDrop_Go/internal/domain"
	"github.com/osse101/ItemDrop_Go/internal/event"
	"github.com/osse101/ItemDrop_Go/internal/logger"
	"github.com/osse101/ItemDrop_Go/internal/repository"
	"github.com/osse101/ItemDrop_Go/internal/validation"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// Schemas returns the embedded JSON schemas, rooted at the schema directory
func Schemas() fs.FS {
	sub, err := fs.Sub(schemaFS, "schemas")
	if err != nil {
		panic(err)
	}
	return sub
}

// Service defines item catalog operations
type Service interface {
	CreateTemplate(ctx context.Context, t domain.ItemTemplate) (*domain.ItemTemplate, error)
	// DeleteTemplate removes the template and its unequipped instances, returning how many instances went
	DeleteTemplate(ctx context.Context, id int64) (int, error)
	ListTemplates(ctx context.Context) ([]domain.ItemTemplate, error)
	// LoadSeed creates the templates in a seed file that are not present yet
	LoadSeed(ctx context.Context, path string) (int, error)
}

type service struct {
	repo      repository.Catalog
	validator validation.SchemaValidator
	publisher event.Publisher
}

// NewService creates a new catalog service. publisher may be nil.
func NewService(repo repository.Catalog, validator validation.SchemaValidator, publisher event.Publisher) Service {
	return &service{
		repo:      repo,
		validator: validator,
		publisher: publisher,
	}
}

var (
	validTypes = map[string]bool{
		domain.ItemTypeHead:       true,
		domain.ItemTypeBodyTop:    true,
		domain.ItemTypeBodyBottom: true,
		domain.ItemTypeGlove:      true,
		domain.ItemTypeShoes:      true,
		domain.ItemTypeWeapon:     true,
		domain.ItemTypeConsumable: true,
	}
	validRarities = map[string]bool{
		domain.RarityCommon:    true,
		domain.RarityUncommon:  true,
		domain.RarityRare:      true,
		domain.RarityEpic:      true,
		domain.RarityLegendary: true,
	}
)

// normalizeTemplate trims the name and checks every field
func normalizeTemplate(t domain.ItemTemplate) (domain.ItemTemplate, error) {
	t.Name = strings.TrimSpace(t.Name)
	t.Description = strings.TrimSpace(t.Description)

	switch {
	case t.Name == "":
		return t, fmt.Errorf(ErrMsgNameRequired, domain.ErrInvalidInput)
	case utf8.RuneCountInString(t.Name) > domain.MaxItemNameLength:
		return t, fmt.Errorf(ErrMsgNameTooLongFmt, domain.ErrInvalidInput, domain.MaxItemNameLength)
	case !validTypes[t.Type]:
		return t, fmt.Errorf(ErrMsgUnknownTypeFmt, domain.ErrInvalidInput, t.Type)
	case !validRarities[t.Rarity]:
		return t, fmt.Errorf(ErrMsgUnknownRarityFmt, domain.ErrInvalidInput, t.Rarity)
	case t.ItemLevel < 1 || t.ItemLevel > domain.MaxItemLevel:
		return t, fmt.Errorf(ErrMsgItemLevelFmt, domain.ErrInvalidInput, domain.MaxItemLevel)
	case t.Price < 0 || t.Price > domain.MaxItemPrice:
		return t, fmt.Errorf(ErrMsgPriceFmt, domain.ErrInvalidInput, domain.MaxItemPrice)
	}
	return t, nil
}

func (s *service) CreateTemplate(ctx context.Context, t domain.ItemTemplate) (*domain.ItemTemplate, error) {
	t, err := normalizeTemplate(t)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.CreateTemplate(ctx, t)
	if err != nil {
		if errors.Is(err, domain.ErrTemplateExists) {
			return nil, fmt.Errorf(ErrMsgTemplateExistsFmt, t.Name, err)
		}
		return nil, fmt.Errorf(ErrMsgCreateFailed, err)
	}

	event.PublishBestEffort(ctx, s.publisher, event.New(event.TemplateCreated, event.TemplatePayloadV1{
		TemplateID: created.ID,
		Name:       created.Name,
		Timestamp:  event.Now(),
	}))

	logger.FromContext(ctx).Info(LogMsgTemplateCreated, "template_id", created.ID, "name", created.Name)
	return created, nil
}

func (s *service) DeleteTemplate(ctx context.Context, id int64) (int, error) {
	log := logger.FromContext(ctx)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	// Lock the template so no draw can copy it while its instances are removed
	tmpl, err := tx.GetTemplateForUpdate(ctx, id)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgGetTemplateFailed, err)
	}

	equipped, err := tx.CountEquippedInstances(ctx, id)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgCountEquippedFailed, err)
	}
	if equipped > 0 {
		return 0, fmt.Errorf(ErrMsgTemplateEquippedFmt, id, equipped, domain.ErrTemplateEquipped)
	}

	removed, err := tx.DeleteInstances(ctx, id)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgDeleteInstancesFailed, err)
	}

	if err := tx.DeleteTemplate(ctx, id); err != nil {
		return 0, fmt.Errorf(ErrMsgDeleteTemplateFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	event.PublishBestEffort(ctx, s.publisher, event.New(event.TemplateDeleted, event.TemplatePayloadV1{
		TemplateID:       id,
		Name:             tmpl.Name,
		InstancesRemoved: removed,
		Timestamp:        event.Now(),
	}))

	log.Info(LogMsgTemplateDeleted, "template_id", id, "name", tmpl.Name, "instances_removed", removed)
	return removed, nil
}

func (s *service) ListTemplates(ctx context.Context) ([]domain.ItemTemplate, error) {
	templates, err := s.repo.ListTemplates(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListFailed, err)
	}
	return templates, nil
}

// seedFile is the on-disk catalog seed format
type seedFile struct {
	Version   string                `json:"version"`
	Templates []domain.ItemTemplate `json:"templates"`
}

func (s *service) LoadSeed(ctx context.Context, path string) (int, error) {
	log := logger.FromContext(ctx)

	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgInvalidSeedFmt, path, err)
	}
	if err := s.validator.ValidateBytes(data, SeedSchemaName); err != nil {
		return 0, fmt.Errorf(ErrMsgInvalidSeedFmt, path, err)
	}

	var seed seedFile
	if err := json.Unmarshal(data, &seed); err != nil {
		return 0, fmt.Errorf(ErrMsgDecodeSeedFmt, path, err)
	}

	created := 0
	for i, t := range seed.Templates {
		_, err := s.CreateTemplate(ctx, t)
		switch {
		case err == nil:
			created++
		case errors.Is(err, domain.ErrTemplateExists):
			log.Debug(LogMsgSeedSkipped, "name", t.Name)
		default:
			return created, fmt.Errorf(ErrMsgSeedEntryFmt, i, t.Name, err)
		}
	}

	log.Info(LogMsgSeedLoaded, "path", path, "version", seed.Version, "created", created, "total", len(seed.Templates))
	return created, nil
}
