package fixture

import "github.com/osse101/GildedRose_Go/internal/domain"

// Default returns a fresh copy of the classic shop catalogue
func Default() []*domain.Item {
	return []*domain.Item{
		domain.NewItem(domain.NameDexterityVest, 10, 20),
		domain.NewItem(domain.NameAgedBrie, 2, 0),
		domain.NewItem(domain.NameElixirOfTheMongoose, 5, 7),
		domain.NewItem(domain.NameSulfuras, 0, 80),
		domain.NewItem(domain.NameSulfuras, -1, 80),
		domain.NewItem(domain.NameBackstagePassTAFKAL, 15, 20),
		domain.NewItem(domain.NameBackstagePassTAFKAL, 10, 49),
		domain.NewItem(domain.NameBackstagePassTAFKAL, 5, 49),
		domain.NewItem(domain.NameConjuredManaCake, 3, 6),
	}
}
