package common

// Memorial represents one memorialized (or living) individual's stored record.
//
// A memorial carries:
//   - a display name, also used for gender inference when reciprocal
//     relationship labels are computed
//   - free-form life dates (year-only, full date, or empty)
//   - an ordered list of relatives; order is insertion order and carries no
//     meaning, but is preserved across partial updates
//
// Version is a store-side counter used for optimistic concurrency on
// relatives updates. It is never exposed over the API.
type Memorial struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	BirthDate string     `json:"birth_date,omitempty"`
	DeathDate string     `json:"death_date,omitempty"`
	PhotoURL  string     `json:"photo_url,omitempty"`
	Relatives []Relative `json:"relatives"`
	Version   int64      `json:"-"`
}

// Relative is one directed, labeled link from the owning memorial to another
// person. When the related person has a record of their own, TargetID holds
// its identifier and Name is a denormalized copy of its display name. When no
// record exists yet, TargetID is empty and Name alone identifies the person,
// with LifeDates carrying free-text dates for display.
type Relative struct {
	TargetID     string `json:"target_id,omitempty"`
	Name         string `json:"name,omitempty"`
	Relationship string `json:"relationship"`
	LifeDates    string `json:"life_dates,omitempty"`
}

// Linked reports whether the relative points at an existing memorial record.
func (r Relative) Linked() bool {
	return r.TargetID != ""
}
