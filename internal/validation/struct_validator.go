package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	playvalidator "github.com/go-playground/validator/v10"

	"github.com/osse101/BrandishRewards_Go/internal/domain"
	"github.com/osse101/BrandishRewards_Go/internal/situation"
)

// Custom tag names
const (
	TagFlag      = "flag"
	TagKindClass = "kindclass"
	TagCause     = "cause"
)

// StructValidator wraps the go-playground validator with the reward-specific tags
type StructValidator struct {
	validate *playvalidator.Validate
}

var (
	structValidator     *StructValidator
	structValidatorOnce sync.Once
)

// NewStructValidator creates a validator with the custom tags registered
func NewStructValidator() *StructValidator {
	v := playvalidator.New(playvalidator.WithRequiredStructEnabled())

	_ = v.RegisterValidation(TagFlag, validateFlag)
	_ = v.RegisterValidation(TagKindClass, validateKindClass)
	_ = v.RegisterValidation(TagCause, validateCause)

	// Report json field names rather than Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &StructValidator{validate: v}
}

// GetStructValidator returns the shared validator instance
func GetStructValidator() *StructValidator {
	structValidatorOnce.Do(func() {
		structValidator = NewStructValidator()
	})
	return structValidator
}

// ValidateStruct validates a struct using tags
func (v *StructValidator) ValidateStruct(s any) error {
	return v.validate.Struct(s)
}

func validateFlag(fl playvalidator.FieldLevel) bool {
	_, err := situation.ParseFlag(fl.Field().String())
	return err == nil
}

func validateKindClass(fl playvalidator.FieldLevel) bool {
	value := domain.KindClass(fl.Field().String())
	for _, c := range domain.KindClasses {
		if c == value {
			return true
		}
	}
	return false
}

func validateCause(fl playvalidator.FieldLevel) bool {
	return domain.Cause(strings.ToLower(strings.TrimSpace(fl.Field().String()))).IsKnown()
}

// FormatValidationError formats validation errors into a user-friendly map
// This prevents leaking internal struct names and provides cleaner error messages
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors playvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := fieldPath(e)
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "gt":
			errs[field] = fmt.Sprintf("Must be > %s", e.Param())
		case "gte":
			errs[field] = fmt.Sprintf("Must be >= %s", e.Param())
		case "lte":
			errs[field] = fmt.Sprintf("Must be <= %s", e.Param())
		case "gtefield":
			errs[field] = fmt.Sprintf("Must be >= %s", strings.ToLower(e.Param()))
		case "oneof":
			errs[field] = fmt.Sprintf("Must be one of: %s", e.Param())
		case TagFlag:
			errs[field] = "Unknown flag"
		case TagKindClass:
			errs[field] = "Unknown kind class"
		case TagCause:
			errs[field] = "Unknown cause"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// Summarize flattens a validation error into one line, sorted by field.
func Summarize(err error) string {
	fields := FormatValidationError(err)
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + fields[k]
	}
	return strings.Join(parts, "; ")
}

// fieldPath drops the root struct name from the namespace
func fieldPath(e playvalidator.FieldError) string {
	ns := e.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return strings.ToLower(e.Field())
}
