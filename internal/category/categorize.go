// Package category derives rule categories from item names.
package category

import (
	"fmt"
	"strings"

	"github.com/osse101/GildedRose_Go/internal/domain"
)

// rule adds categories to a set when its matcher accepts the name.
// Rules are evaluated independently; they are not mutually exclusive.
type rule struct {
	match func(name string) bool
	adds  []domain.Category
}

var rules = []rule{
	{
		match: func(name string) bool { return name == domain.NameAgedBrie },
		adds:  []domain.Category{domain.CategoryAgeBenefited},
	},
	{
		match: hasPrefix(domain.NamePrefixBackstagePass),
		adds:  []domain.Category{domain.CategoryAgeBenefited, domain.CategoryBackstagePass},
	},
	{
		match: hasPrefix(domain.NamePrefixLegendary),
		adds:  []domain.Category{domain.CategoryLegendary},
	},
	{
		match: hasPrefix(domain.NamePrefixConjured),
		adds:  []domain.Category{domain.CategoryConjured},
	},
}

func hasPrefix(prefix string) func(string) bool {
	return func(name string) bool { return strings.HasPrefix(name, prefix) }
}

// Categorize returns the set of categories implied by an item name.
// Unrecognised names yield the empty set (a normal item).
func Categorize(name string) domain.Categories {
	var set domain.Categories
	for _, r := range rules {
		if !r.match(name) {
			continue
		}
		for _, c := range r.adds {
			set = set.With(c)
		}
	}
	return set
}

// Of categorizes an item by its name
func Of(item *domain.Item) (domain.Categories, error) {
	if item == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrNilItem, ErrContextCategorize)
	}
	return Categorize(item.Name), nil
}
