// internal/utils/response.go
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/atelier-backend/internal/i18n"
)

// Error codes carried in APIError.Code. Clients switch on these, the
// message is localized and may change.
const (
	CodeBadRequest    = "BAD_REQUEST"
	CodeValidation    = "VALIDATION_ERROR"
	CodeUnauthorized  = "UNAUTHORIZED"
	CodeNotFound      = "NOT_FOUND"
	CodeFileTooLarge  = "FILE_TOO_LARGE"
	CodeRateLimited   = "RATE_LIMITED"
	CodeInternalError = "INTERNAL_ERROR"
)

const (
	contextLanguageKey  = "lang"
	defaultDetailsField = "request"
)

// APIResponse is the envelope of every JSON response.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

type APIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func respond(c *gin.Context, status int, data, meta interface{}) {
	c.JSON(status, APIResponse{
		Success: true,
		Data:    data,
		Meta:    meta,
	})
}

func SuccessResponse(c *gin.Context, data interface{}) {
	respond(c, http.StatusOK, data, nil)
}

func SuccessResponseWithMeta(c *gin.Context, data interface{}, meta interface{}) {
	respond(c, http.StatusOK, data, meta)
}

func CreatedResponse(c *gin.Context, data interface{}) {
	respond(c, http.StatusCreated, data, nil)
}

func ErrorResponse(c *gin.Context, statusCode int, code, message string, details interface{}) {
	c.JSON(statusCode, APIResponse{
		Success: false,
		Error: &APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// localizedError responds with the catalog message for key in the
// request's language.
func localizedError(c *gin.Context, statusCode int, code, key string, details interface{}, args ...interface{}) {
	ErrorResponse(c, statusCode, code, i18n.T(GetLangFromContext(c), key, args...), details)
}

func BadRequestResponse(c *gin.Context, message string, details interface{}) {
	if message == "" {
		localizedError(c, http.StatusBadRequest, CodeBadRequest, i18n.KeyValidationInvalid, details, defaultDetailsField)
		return
	}
	ErrorResponse(c, http.StatusBadRequest, CodeBadRequest, message, details)
}

func UnauthorizedResponse(c *gin.Context, message string) {
	if message == "" {
		localizedError(c, http.StatusUnauthorized, CodeUnauthorized, i18n.KeyAuthRequired, nil)
		return
	}
	ErrorResponse(c, http.StatusUnauthorized, CodeUnauthorized, message, nil)
}

func NotFoundResponse(c *gin.Context, key string) {
	localizedError(c, http.StatusNotFound, CodeNotFound, key, nil)
}

// InternalErrorResponse hides the cause from the client; log it before calling.
func InternalErrorResponse(c *gin.Context, key string) {
	if key == "" {
		key = i18n.KeyOperationFailed
	}
	localizedError(c, http.StatusInternalServerError, CodeInternalError, key, nil)
}

func TooManyRequestsResponse(c *gin.Context) {
	localizedError(c, http.StatusTooManyRequests, CodeRateLimited, i18n.KeyRateLimited, nil)
}

func FileTooLargeResponse(c *gin.Context) {
	localizedError(c, http.StatusRequestEntityTooLarge, CodeFileTooLarge, i18n.KeyFileTooLarge, nil)
}

// ValidationErrorResponse reports field errors under details.
func ValidationErrorResponse(c *gin.Context, errors []ValidationError) {
	localizedError(c, http.StatusBadRequest, CodeValidation, i18n.KeyValidationInvalid, errors, "input")
}

func FieldsNeededResponse(c *gin.Context, errors []ValidationError) {
	localizedError(c, http.StatusBadRequest, CodeValidation, i18n.KeyMessageFieldsNeeded, errors)
}

func PaginatedResponse(c *gin.Context, result PaginationResult) {
	SetPaginationHeaders(c, result)
	SuccessResponseWithMeta(c, result.Data, gin.H{
		"pagination": gin.H{
			"page":        result.Page,
			"limit":       result.Limit,
			"total":       result.Total,
			"total_pages": result.TotalPages,
		},
	})
}

func GetLangFromContext(c *gin.Context) string {
	if lang, ok := c.Get(contextLanguageKey); ok {
		if langStr, ok := lang.(string); ok && i18n.IsSupported(langStr) {
			return langStr
		}
	}
	return i18n.DefaultLanguage()
}
