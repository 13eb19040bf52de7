package category

// Error context messages
const (
	ErrContextCategorize = "cannot categorize"
)
