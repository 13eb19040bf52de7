package shop

// Error format strings
const (
	ErrFmtUpdateItemFailed = "failed to update item at index %d: %w"
)

// Log messages
const (
	LogMsgDayAdvanced     = "Shop advanced one day"
	LogMsgNegativeQuality = "Item quality dropped below zero"
)
