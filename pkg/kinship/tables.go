package kinship

// entry is shorthand for building the default table.
func entry(canonical, male, female, def string) Entry {
	return Entry{Canonical: canonical, Reciprocal: Reciprocal{Male: male, Female: female, Default: def}}
}

// DefaultTable returns the built-in reciprocal table. Keys are canonical
// lowercase labels; lookups are expected to lowercase and trim first.
//
// The reciprocal of "Son" asserted toward a person is that person's parental
// role, so its gendered variants are Father/Mother with Parent as the
// neutral fallback. Spouse and cousin are self-reciprocal regardless of
// gender; husband/wife keep their gendered reciprocals.
func DefaultTable() map[string]Entry {
	return map[string]Entry{
		// spouse variants
		"spouse":  entry("Spouse", "Spouse", "Spouse", "Spouse"),
		"husband": entry("Husband", "Husband", "Wife", "Spouse"),
		"wife":    entry("Wife", "Husband", "Wife", "Spouse"),
		"partner": entry("Partner", "Partner", "Partner", "Partner"),

		// parent and child variants
		"father":   entry("Father", "Son", "Daughter", "Child"),
		"mother":   entry("Mother", "Son", "Daughter", "Child"),
		"parent":   entry("Parent", "Son", "Daughter", "Child"),
		"son":      entry("Son", "Father", "Mother", "Parent"),
		"daughter": entry("Daughter", "Father", "Mother", "Parent"),
		"child":    entry("Child", "Father", "Mother", "Parent"),

		// siblings
		"brother": entry("Brother", "Brother", "Sister", "Sibling"),
		"sister":  entry("Sister", "Brother", "Sister", "Sibling"),
		"sibling": entry("Sibling", "Brother", "Sister", "Sibling"),

		// grandparents and grandchildren
		"grandfather":   entry("Grandfather", "Grandson", "Granddaughter", "Grandchild"),
		"grandmother":   entry("Grandmother", "Grandson", "Granddaughter", "Grandchild"),
		"grandparent":   entry("Grandparent", "Grandson", "Granddaughter", "Grandchild"),
		"grandson":      entry("Grandson", "Grandfather", "Grandmother", "Grandparent"),
		"granddaughter": entry("Granddaughter", "Grandfather", "Grandmother", "Grandparent"),
		"grandchild":    entry("Grandchild", "Grandfather", "Grandmother", "Grandparent"),

		// aunts, uncles, nieces, nephews, cousins
		"uncle":  entry("Uncle", "Nephew", "Niece", "Niece/Nephew"),
		"aunt":   entry("Aunt", "Nephew", "Niece", "Niece/Nephew"),
		"nephew": entry("Nephew", "Uncle", "Aunt", "Aunt/Uncle"),
		"niece":  entry("Niece", "Uncle", "Aunt", "Aunt/Uncle"),
		"cousin": entry("Cousin", "Cousin", "Cousin", "Cousin"),

		// in-laws
		"father-in-law":   entry("Father-in-Law", "Son-in-Law", "Daughter-in-Law", "Child-in-Law"),
		"mother-in-law":   entry("Mother-in-Law", "Son-in-Law", "Daughter-in-Law", "Child-in-Law"),
		"parent-in-law":   entry("Parent-in-Law", "Son-in-Law", "Daughter-in-Law", "Child-in-Law"),
		"son-in-law":      entry("Son-in-Law", "Father-in-Law", "Mother-in-Law", "Parent-in-Law"),
		"daughter-in-law": entry("Daughter-in-Law", "Father-in-Law", "Mother-in-Law", "Parent-in-Law"),
		"child-in-law":    entry("Child-in-Law", "Father-in-Law", "Mother-in-Law", "Parent-in-Law"),
		"brother-in-law":  entry("Brother-in-Law", "Brother-in-Law", "Sister-in-Law", "Sibling-in-Law"),
		"sister-in-law":   entry("Sister-in-Law", "Brother-in-Law", "Sister-in-Law", "Sibling-in-Law"),
		"sibling-in-law":  entry("Sibling-in-Law", "Brother-in-Law", "Sister-in-Law", "Sibling-in-Law"),

		// step relations
		"stepfather":   entry("Stepfather", "Stepson", "Stepdaughter", "Stepchild"),
		"stepmother":   entry("Stepmother", "Stepson", "Stepdaughter", "Stepchild"),
		"stepson":      entry("Stepson", "Stepfather", "Stepmother", "Stepparent"),
		"stepdaughter": entry("Stepdaughter", "Stepfather", "Stepmother", "Stepparent"),
		"stepchild":    entry("Stepchild", "Stepfather", "Stepmother", "Stepparent"),

		"friend": entry("Friend", "Friend", "Friend", "Friend"),
	}
}
