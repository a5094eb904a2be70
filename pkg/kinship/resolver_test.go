package kinship

import "testing"

func TestResolve(t *testing.T) {
	r := NewResolver(nil, nil)

	tests := []struct {
		name  string
		label string
		who   string
		want  string
	}{
		{name: "son of female parent", label: "Son", who: "Maria Lopez", want: "Mother"},
		{name: "son of male parent", label: "Son", who: "Robert Lopez", want: "Father"},
		{name: "son of unknown parent", label: "Son", who: "Alex Lopez", want: "Parent"},
		{name: "daughter of male parent", label: "Daughter", who: "John Smith", want: "Father"},
		{name: "father of male child", label: "Father", who: "James Smith", want: "Son"},
		{name: "father of female child", label: "Father", who: "Mary Smith", want: "Daughter"},
		{name: "mother of unknown child", label: "Mother", who: "Zyx Qqq", want: "Child"},
		{name: "spouse is self-reciprocal", label: "Spouse", who: "Maria", want: "Spouse"},
		{name: "husband yields wife", label: "Husband", who: "Dorothy", want: "Wife"},
		{name: "wife yields husband", label: "Wife", who: "Fred", want: "Husband"},
		{name: "cousin is self-reciprocal", label: "Cousin", who: "Anyone", want: "Cousin"},
		{name: "brother of female sibling", label: "Brother", who: "Maria", want: "Sister"},
		{name: "uncle of female", label: "Uncle", who: "Mary", want: "Niece"},
		{name: "uncle of unknown", label: "Uncle", who: "Zyx", want: "Niece/Nephew"},
		{name: "niece of male", label: "Niece", who: "John", want: "Uncle"},
		{name: "sister-in-law of male", label: "Sister-in-Law", who: "John", want: "Brother-in-Law"},
		{name: "case-insensitive lookup", label: "FATHER", who: "Mary", want: "Daughter"},
		{name: "padded lookup", label: "  mother ", who: "James", want: "Son"},
		{name: "unknown label passes through", label: "godparent", who: "Maria", want: "Godparent"},
		{name: "unknown shouty label recased", label: "GUARDIAN", who: "John", want: "Guardian"},
		{name: "blank label", label: "", who: "Maria", want: "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Resolve(tt.label, tt.who); got != tt.want {
				t.Fatalf("Resolve(%q, %q) = %q, want %q", tt.label, tt.who, got, tt.want)
			}
		})
	}
}

// Every table entry must resolve to a non-empty label for every gender.
func TestResolve_Total(t *testing.T) {
	r := NewResolver(nil, nil)

	names := []string{"Robert", "Maria", "Zyx"}
	for label := range r.table {
		for _, who := range names {
			if got := r.Resolve(label, who); got == "" {
				t.Fatalf("Resolve(%q, %q) returned empty label", label, who)
			}
		}
	}
}

func TestCanonical(t *testing.T) {
	r := NewResolver(nil, nil)

	tests := []struct {
		in   string
		want string
	}{
		{in: "father", want: "Father"},
		{in: "SISTER-IN-LAW", want: "Sister-in-Law"},
		{in: "  spouse ", want: "Spouse"},
		{in: "godparent", want: "Godparent"},
		{in: "", want: "Unknown"},
	}

	for _, tt := range tests {
		if got := r.Canonical(tt.in); got != tt.want {
			t.Fatalf("Canonical(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestKnown(t *testing.T) {
	r := NewResolver(nil, nil)

	if !r.Known("Grandfather") {
		t.Fatal("expected Grandfather to be a known label")
	}
	if r.Known("godparent") {
		t.Fatal("expected godparent to be unknown")
	}
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "uncle", want: "Uncle"},
		{in: "UNCLE", want: "Uncle"},
		{in: " mixed Case ", want: "Mixed case"},
		{in: "", want: "Unknown"},
		{in: "   ", want: "Unknown"},
	}

	for _, tt := range tests {
		if got := Capitalize(tt.in); got != tt.want {
			t.Fatalf("Capitalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
