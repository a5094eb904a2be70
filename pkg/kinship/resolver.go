// Package kinship computes reciprocal relationship labels and keeps the
// relationship edges between memorial records consistent.
package kinship

import (
	"strings"
	"unicode"

	"github.com/everkept/memoria/backend/pkg/gender"
)

// Reciprocal holds the reverse-direction labels for one relationship,
// selected by the inferred gender of the person the reverse label describes.
type Reciprocal struct {
	Male    string
	Female  string
	Default string
}

// Entry is one row of the reciprocal table: the canonical display form of
// the label itself plus its reciprocal labels.
type Entry struct {
	Canonical  string
	Reciprocal Reciprocal
}

// Resolver resolves reciprocal relationship labels. The relationship table
// and the gender table are injected at construction so tests can substitute
// alternates; both are treated as immutable.
type Resolver struct {
	table   map[string]Entry
	genders *gender.Table
}

// NewResolver creates a resolver over the given tables. Nil arguments fall
// back to the built-in defaults.
func NewResolver(table map[string]Entry, genders *gender.Table) *Resolver {
	if table == nil {
		table = DefaultTable()
	}
	if genders == nil {
		genders = gender.DefaultTable()
	}
	return &Resolver{table: table, genders: genders}
}

// Resolve computes the relationship label for the reverse direction of an
// edge. The label lookup is case-insensitive; name is the display name of
// the person the reverse edge will describe, used to pick among gendered
// variants. Labels absent from the table pass through re-capitalized; the
// result is always non-empty and Resolve never fails.
func (r *Resolver) Resolve(label, name string) string {
	key := strings.ToLower(strings.TrimSpace(label))
	entry, ok := r.table[key]
	if !ok {
		return Capitalize(label)
	}

	switch r.genders.Infer(name) {
	case gender.Male:
		return entry.Reciprocal.Male
	case gender.Female:
		return entry.Reciprocal.Female
	default:
		return entry.Reciprocal.Default
	}
}

// Known reports whether the label has an exact-match rule in the table.
func (r *Resolver) Known(label string) bool {
	_, ok := r.table[strings.ToLower(strings.TrimSpace(label))]
	return ok
}

// Canonical returns the canonical capitalization for a relationship label:
// the table's display form when the label is known, otherwise the label
// re-capitalized as a best effort.
func (r *Resolver) Canonical(label string) string {
	key := strings.ToLower(strings.TrimSpace(label))
	if entry, ok := r.table[key]; ok {
		return entry.Canonical
	}
	return Capitalize(label)
}

// Capitalize re-capitalizes a free-text label: first letter uppercase, the
// rest lowered. Blank input yields "Unknown" so callers always get a
// non-empty label.
func Capitalize(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "Unknown"
	}
	runes := []rune(strings.ToLower(label))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
