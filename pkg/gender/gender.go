// Package gender infers a probable gender from a person's display name using
// static first-name lookup tables. The inference is a heuristic used only to
// pick among gendered relationship labels; callers must tolerate Unknown.
package gender

import (
	"strings"
	"unicode"
)

// Gender is the outcome of an inference.
type Gender string

const (
	Male    Gender = "male"
	Female  Gender = "female"
	Unknown Gender = "unknown"
)

// Table holds the first-name sets used for inference. Tables are immutable
// after construction and safe for concurrent use.
type Table struct {
	male   map[string]struct{}
	female map[string]struct{}
}

// NewTable builds a lookup table from male and female first-name lists.
// Entries are matched case-insensitively.
func NewTable(male, female []string) *Table {
	t := &Table{
		male:   make(map[string]struct{}, len(male)),
		female: make(map[string]struct{}, len(female)),
	}
	for _, name := range male {
		t.male[strings.ToLower(name)] = struct{}{}
	}
	for _, name := range female {
		t.female[strings.ToLower(name)] = struct{}{}
	}
	return t
}

// Infer returns the probable gender for a display name. Only the first
// whitespace-delimited token is considered, with non-letter characters
// stripped. The male set is checked first, so a name present in both sets
// resolves as male. No match in either set yields Unknown. Infer never fails.
func (t *Table) Infer(name string) Gender {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return Unknown
	}

	first := strings.ToLower(strings.Map(keepLetters, fields[0]))
	if first == "" {
		return Unknown
	}

	if _, ok := t.male[first]; ok {
		return Male
	}
	if _, ok := t.female[first]; ok {
		return Female
	}
	return Unknown
}

func keepLetters(r rune) rune {
	if unicode.IsLetter(r) {
		return r
	}
	return -1
}
