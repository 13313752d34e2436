// Package validator provides the pure validation checks used by the book
// and author mutations, plus a Validator type for accumulating field-level
// errors when a whole dataset needs to be checked at once.
package validator

import (
	"strings"
	"time"
	"unicode"
)

// Validator holds a map of field names to their validation error messages.
// A Validator with an empty Errors map is considered valid.
type Validator struct {
	Errors map[string]string
}

// New creates and returns a fresh, empty Validator.
func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

// Valid returns true if the Errors map contains no entries.
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError records key as failing with the given message.
// If key already has an error it is not overwritten, so the first
// failure for a field is always the one that is reported.
func (v *Validator) AddError(key, message string) {
	if _, exists := v.Errors[key]; !exists {
		v.Errors[key] = message
	}
}

// Check adds an error for key with message only when ok is false.
// Use this as a single-line guard:
//
//	v.Check(validator.ValidISBN(isbn), "isbn", "must be 10 or 13 characters")
func (v *Validator) Check(ok bool, key, message string) {
	if !ok {
		v.AddError(key, message)
	}
}

// In returns true if value is present in the list slice.
func In(value string, list ...string) bool {
	for _, item := range list {
		if value == item {
			return true
		}
	}
	return false
}

// UniqueFold returns true if every string in values is distinct,
// comparing case-insensitively.
func UniqueFold(values []string) bool {
	seen := make(map[string]bool)
	for _, v := range values {
		folded := strings.ToLower(v)
		if seen[folded] {
			return false
		}
		seen[folded] = true
	}
	return true
}

// UniqueAmong returns true if value does not already appear in existing,
// comparing case-insensitively. "THE HOBBIT" collides with "The Hobbit".
func UniqueAmong(value string, existing []string) bool {
	for _, item := range existing {
		if strings.EqualFold(value, item) {
			return false
		}
	}
	return true
}

// ValidISBN returns true if isbn, after stripping hyphens and whitespace,
// is exactly 10 or 13 characters long. Only the shape is checked; the
// characters themselves and the check digit are not verified.
func ValidISBN(isbn string) bool {
	cleaned := strings.Map(func(r rune) rune {
		if r == '-' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, isbn)
	return len(cleaned) == 10 || len(cleaned) == 13
}

// ValidYear returns true if year falls between 1 and the current calendar
// year inclusive. The upper bound moves with the clock, so a value that
// passes today keeps passing tomorrow.
func ValidYear(year int) bool {
	return year >= 1 && year <= time.Now().Year()
}

// ValidPageCount returns true if pages is strictly positive.
func ValidPageCount(pages int) bool {
	return pages > 0
}

// ValidAuthorName returns true if name contains at least two characters
// once surrounding whitespace is trimmed. The count is in runes, not
// bytes, so a two-letter accented name passes.
func ValidAuthorName(name string) bool {
	return len([]rune(strings.TrimSpace(name))) >= 2
}
