package domain

// Item name patterns recognised by the categorizer
const (
	NameAgedBrie            = "Aged Brie"        // exact match
	NamePrefixBackstagePass = "Backstage passes" // prefix match
	NamePrefixLegendary     = "Sulfuras"         // prefix match
	NamePrefixConjured      = "Conjured"         // prefix match
	NameBackstagePassTAFKAL = "Backstage passes to a TAFKAL80ETC concert"
	NameSulfuras            = "Sulfuras, Hand of Ragnaros"
	NameConjuredManaCake    = "Conjured Mana Cake"
	NameDexterityVest       = "+5 Dexterity Vest"
	NameElixirOfTheMongoose = "Elixir of the Mongoose"
)

// Quality bounds
const (
	QualityCeiling          = 50
	LegendaryQualityCeiling = 80
)

// Backstage pass thresholds, in days of sell-in remaining
const (
	BackstageDoubleThreshold = 10
	BackstageTripleThreshold = 5
	BackstageExpiredAt       = 0
)

// Category labels
const (
	CategoryLabelNormal    = "NORMAL"
	CategoryLabelSeparator = "+"
)
