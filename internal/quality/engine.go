// Package quality applies the daily sell-in and quality rules to a single item.
//
// Both decrements are signed amounts subtracted from the item: a negative
// quality decrement means quality rises. They are computed from the item's
// state at the start of the update, before either field is changed.
package quality

import (
	"fmt"

	"github.com/osse101/GildedRose_Go/internal/category"
	"github.com/osse101/GildedRose_Go/internal/domain"
)

// Default per-day changes
const (
	defaultSellInDecrement  = 1
	defaultQualityDecrement = 1
	conjuredMultiplier      = 2
)

// Backstage pass decrements per tier
const (
	backstageDoubleDecrement  = -2
	backstageTripleDecrement  = -3
	backstageExpiredDecrement = 0
)

// SellInDecrement returns how many days an item's sell-in drops per update.
// Legendary items never age.
func SellInDecrement(cats domain.Categories) int {
	if cats.Has(domain.CategoryLegendary) {
		return 0
	}
	return defaultSellInDecrement
}

// MaxQuality returns the quality ceiling for a category set
func MaxQuality(cats domain.Categories) int {
	if cats.Has(domain.CategoryLegendary) {
		return domain.LegendaryQualityCeiling
	}
	return domain.QualityCeiling
}

// QualityDecrement returns the signed amount to subtract from the item's
// quality for one update. The result never takes quality above the
// ceiling, but there is no floor: a fast decaying item can end below zero.
func QualityDecrement(item *domain.Item, cats domain.Categories) (int, error) {
	if item == nil {
		return 0, fmt.Errorf("%w: %s", domain.ErrNilItem, ErrContextQualityDecrement)
	}
	ceiling := MaxQuality(cats)

	decrement := defaultQualityDecrement
	if cats.Has(domain.CategoryAgeBenefited) {
		decrement = -defaultQualityDecrement
	}
	if cats.Has(domain.CategoryBackstagePass) {
		// Checked in ascending tightness; the last matching tier wins.
		if item.SellIn <= domain.BackstageDoubleThreshold {
			decrement = backstageDoubleDecrement
		}
		if item.SellIn <= domain.BackstageTripleThreshold {
			decrement = backstageTripleDecrement
		}
		if item.SellIn <= domain.BackstageExpiredAt {
			decrement = backstageExpiredDecrement
		}
	}
	if cats.Has(domain.CategoryLegendary) && decrement > 0 {
		decrement = 0
	}
	if cats.Has(domain.CategoryConjured) {
		decrement *= conjuredMultiplier
	}
	if item.Quality-decrement > ceiling {
		decrement = item.Quality - ceiling
	}

	return decrement, nil
}

// UpdateItem advances a single item by one day in place.
// A nil item is rejected with domain.ErrNilItem and nothing is changed.
func UpdateItem(item *domain.Item) error {
	cats, err := category.Of(item)
	if err != nil {
		return err
	}
	return Apply(item, cats)
}

// Apply advances item by one day using categories the caller already
// derived from its name.
func Apply(item *domain.Item, cats domain.Categories) error {
	sellInDecrement := SellInDecrement(cats)
	qualityDecrement, err := QualityDecrement(item, cats)
	if err != nil {
		return err
	}

	item.SellIn -= sellInDecrement
	item.Quality -= qualityDecrement
	return nil
}
