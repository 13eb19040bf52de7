package quality

// Error context messages
const (
	ErrContextQualityDecrement = "cannot compute quality decrement"
)
