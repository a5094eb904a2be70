package gender

import "testing"

func TestInfer(t *testing.T) {
	table := DefaultTable()

	tests := []struct {
		name string
		in   string
		want Gender
	}{
		{name: "female full name", in: "Dorothy Smith", want: Female},
		{name: "male full name", in: "Fred Jones", want: Male},
		{name: "unknown name", in: "Zyx Qqq", want: Unknown},
		{name: "uppercase", in: "FRED", want: Male},
		{name: "lowercase", in: "fred", want: Male},
		{name: "only first token used", in: "Maria Robert", want: Female},
		{name: "punctuation stripped", in: "Fred.", want: Male},
		{name: "empty", in: "", want: Unknown},
		{name: "whitespace only", in: "   ", want: Unknown},
		{name: "digits only token", in: "123 456", want: Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := table.Infer(tt.in); got != tt.want {
				t.Fatalf("Infer(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestInfer_CaseInsensitiveConsistency(t *testing.T) {
	table := DefaultTable()
	if table.Infer("FRED") != table.Infer("fred") {
		t.Fatal("expected case-insensitive inference")
	}
}

func TestInfer_MalePriorityOnCollision(t *testing.T) {
	table := NewTable([]string{"jordan"}, []string{"jordan"})
	if got := table.Infer("Jordan"); got != Male {
		t.Fatalf("expected male priority on collision, got %q", got)
	}
}
