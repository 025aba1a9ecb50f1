package i18n

// Error message translation keys.
const (
	ErrKeyInvalidRequest     = "error.invalid_request"
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInvalidInput prefixes a field-level validation failure.
	ErrKeyInvalidInput       = "error.invalid_input"
	ErrKeyInternalError      = "error.internal_error"
	ErrKeyUnauthorized       = "error.unauthorized"
	ErrKeyInvalidCredentials = "error.invalid_credentials"
	ErrKeyUserExists         = "error.user_exists"
	ErrKeyAPIKeyRequired     = "error.api_key_required"
	ErrKeyInvalidAPIKey      = "error.invalid_api_key"
	ErrKeyForbidden          = "error.forbidden"
	ErrKeyNotFound           = "error.not_found"
	ErrKeyRateLimitExceeded  = "error.rate_limit_exceeded"
	ErrKeyConflict           = "error.conflict"
	ErrKeyInvalidToken       = "error.invalid_token"
	ErrKeyTokenRequired      = "error.token_required"
	ErrKeyTimeout            = "error.timeout"

	ErrKeyPartNotFound          = "error.part_not_found"
	ErrKeyCatalogUnavailable    = "error.catalog_unavailable"
	ErrKeyCatalogInvalid        = "error.catalog_invalid"
	ErrKeyUnsupportedCurrency   = "error.unsupported_currency"
	ErrKeyRateUnavailable       = "error.rate_unavailable"
	ErrKeyDatabaseNotConfigured = "error.database_not_configured"
	ErrKeyUnknownPackaging      = "error.unknown_packaging"
	ErrKeyAmbiguousModel        = "error.ambiguous_model"
)

// Informational message keys.
const (
	// MsgKeyEstimateDisclaimer accompanies every quote.
	MsgKeyEstimateDisclaimer = "message.estimate_disclaimer"
	MsgKeyCatalogImported    = "message.catalog_imported"
)
