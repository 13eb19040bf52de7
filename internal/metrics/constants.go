package metrics

// ============================================================================
// Metric Names
// ============================================================================

const (
	MetricNameItemsUpdated    = "gildedrose_items_updated_total"
	MetricNameNegativeQuality = "gildedrose_negative_quality_total"
	MetricNameDaysSimulated   = "gildedrose_days_simulated_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextItemsUpdated    = "Total number of item updates, by category set"
	HelpTextNegativeQuality = "Total number of updates that left an item with quality below zero"
	HelpTextDaysSimulated   = "Total number of shop-wide daily updates applied"
)

// ============================================================================
// Label Names
// ============================================================================

const (
	LabelCategory = "category"
)

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrFmtWriteTextfileFailed = "failed to write metrics to %s: %w"
)
