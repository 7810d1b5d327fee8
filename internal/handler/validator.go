package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/ItemDrop_Go/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

var (
	validate     *Validator
	validateOnce sync.Once
)

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	validateOnce.Do(func() {
		v := validator.New()
		// Report fields by their JSON names
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("itemtype", validateItemType)
		_ = v.RegisterValidation("rarity", validateRarity)
		validate = &Validator{validate: v}
	})
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map.
// Keys are JSON field names, so internal struct names never leak.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := e.Field()
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "itemtype":
			errs[field] = "Unknown item type"
		case "rarity":
			errs[field] = "Unknown rarity"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "excludesall":
			errs[field] = "Contains invalid characters"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// ValidItemTypes lists the item types a template may have
var ValidItemTypes = map[string]bool{
	domain.ItemTypeHead:       true,
	domain.ItemTypeBodyTop:    true,
	domain.ItemTypeBodyBottom: true,
	domain.ItemTypeGlove:      true,
	domain.ItemTypeShoes:      true,
	domain.ItemTypeWeapon:     true,
	domain.ItemTypeConsumable: true,
}

// ValidRarities lists the rarities a template may have
var ValidRarities = map[string]bool{
	domain.RarityCommon:    true,
	domain.RarityUncommon:  true,
	domain.RarityRare:      true,
	domain.RarityEpic:      true,
	domain.RarityLegendary: true,
}

func validateItemType(fl validator.FieldLevel) bool {
	return ValidItemTypes[fl.Field().String()]
}

func validateRarity(fl validator.FieldLevel) bool {
	return ValidRarities[fl.Field().String()]
}
