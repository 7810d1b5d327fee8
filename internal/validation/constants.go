package validation

// Error messages
const (
	ErrMsgReadDataFmt         = "failed to read data file %s: %w"
	ErrMsgLoadSchemaFmt       = "failed to load schema %s: %w"
	ErrMsgParseData           = "failed to parse JSON data: %w"
	ErrMsgReadSchema          = "failed to read schema file: %w"
	ErrMsgParseSchema         = "failed to parse schema JSON: %w"
	ErrMsgAddResource         = "failed to add schema resource: %w"
	ErrMsgCompileSchema       = "failed to compile schema: %w"
	ErrMsgValidationFailedFmt = "schema validation failed:\n%s"
	ErrMsgValidation          = "validation error: %w"
)
