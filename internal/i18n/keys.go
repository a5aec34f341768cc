// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeyOperationFailed = "operation.failed"
	KeyRateLimited     = "rate_limited"

	// Authentication
	KeyAuthRequired           = "auth.required"
	KeyAuthInvalidToken       = "auth.invalid_token"
	KeyAuthInvalidCredentials = "auth.invalid_credentials"
	KeyAuthLoginSuccess       = "auth.login_success"
	KeyAuthFailed             = "auth.failed"

	// Products
	KeyProductDeleted     = "product.deleted"
	KeyProductNotFound    = "product.not_found"
	KeyProductInvalidID   = "product.invalid_id"
	KeyProductsReadFailed = "product.read_failed"

	// Messages
	KeyMessageSubmitted    = "message.submitted"
	KeyMessageDeleted      = "message.deleted"
	KeyMessageFieldsNeeded = "message.fields_required"
	KeyMessageIDRequired   = "message.id_required"
	KeyMessagesNotFound    = "message.none_found"
	KeyMessagesReadFailed  = "message.read_failed"
	KeyMessageSubmitFailed = "message.submit_failed"

	// Content
	KeyHomeReadFailed      = "home.read_failed"
	KeyHomeUpdateFailed    = "home.update_failed"
	KeyContactReadFailed   = "contact.read_failed"
	KeyContactUpdateFailed = "contact.update_failed"

	// Validation
	KeyValidationInvalid = "validation.invalid"

	// File Upload
	KeyFileUploadSuccess = "file.upload_success"
	KeyFileUploadFailed  = "file.upload_failed"
	KeyFileMissing       = "file.missing"
	KeyFileTooLarge      = "file.too_large"
)
