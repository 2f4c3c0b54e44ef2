// Package crm defines the typed record schemas for each CRM entity and
// their constraints: required fields, closed enum sets, and defaults.
//
// Each schema validates at construction time, before anything reaches
// storage, and converts itself to the document shape persisted in its
// collection. Collections are the lowercased entity name ("agent",
// "contact", ...).
package crm

import "fmt"

// ValidationError reports a payload that failed schema validation,
// naming the offending field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func required(field string) *ValidationError {
	return &ValidationError{Field: field, Reason: "required"}
}

func invalid(field string, err error) *ValidationError {
	return &ValidationError{Field: field, Reason: err.Error()}
}

func orDefault[T ~string](v, fallback T) T {
	if v == "" {
		return fallback
	}
	return v
}

func orTrue(v *bool) bool {
	if v == nil {
		return true
	}
	return *v
}

func orEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
