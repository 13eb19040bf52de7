package domain

import "strings"

// Category is a label derived from an item's name that selects which
// sell-in and quality rule variant applies.
type Category string

const (
	// CategoryAgeBenefited items gain quality as they age.
	CategoryAgeBenefited Category = "AGE_BENEFITED"
	// CategoryBackstagePass items gain quality faster near the concert and
	// stop changing once it has passed.
	CategoryBackstagePass Category = "BACKSTAGE_PASS"
	// CategoryLegendary items are never sold and never decay.
	CategoryLegendary Category = "LEGENDARY"
	// CategoryConjured items change quality twice as fast.
	CategoryConjured Category = "CONJURED"
)

// AllCategories lists every known category in evaluation order
var AllCategories = []Category{
	CategoryAgeBenefited,
	CategoryBackstagePass,
	CategoryLegendary,
	CategoryConjured,
}

// Categories is a duplicate-free set of categories. The zero value is the
// empty set and describes a normal item.
type Categories []Category

// NewCategories builds a set from the given categories, dropping duplicates
// while keeping first-seen order.
func NewCategories(cats ...Category) Categories {
	var set Categories
	for _, c := range cats {
		set = set.With(c)
	}
	return set
}

// With returns the set with c added. The receiver is not modified.
func (s Categories) With(c Category) Categories {
	if s.Has(c) {
		return s
	}
	out := make(Categories, len(s), len(s)+1)
	copy(out, s)
	return append(out, c)
}

// Has reports whether c is in the set
func (s Categories) Has(c Category) bool {
	for _, existing := range s {
		if existing == c {
			return true
		}
	}
	return false
}

// Len returns the number of categories in the set
func (s Categories) Len() int {
	return len(s)
}

// IsNormal reports whether the set is empty
func (s Categories) IsNormal() bool {
	return len(s) == 0
}

// Label joins the set into a single metric/log friendly label.
// The empty set is labelled "NORMAL".
func (s Categories) Label() string {
	if s.IsNormal() {
		return CategoryLabelNormal
	}
	return strings.Join(s.strings(), CategoryLabelSeparator)
}

// String implements fmt.Stringer
func (s Categories) String() string {
	return "{" + strings.Join(s.strings(), ", ") + "}"
}

func (s Categories) strings() []string {
	out := make([]string, len(s))
	for i, c := range s {
		out[i] = string(c)
	}
	return out
}
