package fixture

// Schema names inside the embedded schema filesystem
const (
	ItemsSchemaName = "items.schema.json"
)

// File operation error messages
const (
	ErrMsgReadFixtureFailed  = "failed to read item fixture: %w"
	ErrMsgParseFixtureFailed = "failed to parse item fixture: %w"
)

// Validation error messages
const (
	ErrFmtSchemaValidationFailed = "schema validation failed for %s: %w"
	ErrFmtItemAtIndexInvalid     = "%w: item at index %d: %s"
)
