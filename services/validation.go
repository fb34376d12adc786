package services

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"nft-card-system/models"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// FieldError is one entry of the 400 response's per-field error list.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// validateStruct runs validator tags and flattens violations into the wire
// shape. Returns nil when the payload is valid.
func validateStruct(v any) []FieldError {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		msg := "failed on '" + fe.Tag() + "'"
		if fe.Param() != "" {
			msg += " (" + fe.Param() + ")"
		}
		out = append(out, FieldError{Field: lowerFirst(fe.Field()), Message: msg})
	}
	return out
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// titleCase canonicalizes enum-ish input ("active" -> "Active"). A Caser
// carries mutable transformer state and is not safe for concurrent use, so
// one is constructed per call instead of shared across handler goroutines.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// NormalizeStatus maps case-insensitive status query values ("active",
// "UPCOMING") onto the canonical enum. Unknown values pass through
// title-cased so the filter simply matches nothing.
func NormalizeStatus(raw string) models.EventStatus {
	return models.EventStatus(titleCase(strings.ToLower(strings.TrimSpace(raw))))
}

// NormalizePeriod maps period query values onto the canonical enum,
// defaulting to Weekly.
func NormalizePeriod(raw string) models.Period {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "monthly":
		return models.PeriodMonthly
	case "alltime", "all-time", "all":
		return models.PeriodAllTime
	case "", "weekly":
		return models.PeriodWeekly
	default:
		return models.Period(titleCase(strings.ToLower(raw)))
	}
}
