package response

import (
	"net/http"

	deliverycontext "waterdrops/internal/delivery/context"
	domainerrors "waterdrops/internal/domain/errors"
	"waterdrops/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Message string `json:"message"`           // User-friendly error message
	Details any    `json:"details,omitempty"` // Additional error context (only for 4xx errors)
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// OK writes data as the bare JSON body. Successful responses are not
// enveloped; storefront clients read documents and write summaries directly.
func OK(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, data)
}

// Text writes a plain text 200 response.
func Text(c echo.Context, body string) error {
	return c.String(http.StatusOK, body)
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= 500 || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// BadRequestWithDetails returns a 400 error with details
func BadRequestWithDetails(c echo.Context, errorCode string, message string, details any) error {
	return Error(c, http.StatusBadRequest, errorCode, message, details)
}

// BindingError returns a binding error response
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, domainerrors.ErrInvalidInput.ErrorCode(), message, nil)
}

// ValidationError returns a 400 listing the offending fields
func ValidationError(c echo.Context, fields map[string]string) error {
	return BadRequestWithDetails(c,
		domainerrors.ErrValidationFailed.ErrorCode(),
		domainerrors.ErrValidationFailed.Message(),
		fields,
	)
}

// ServiceUnavailable returns a 503 error
func ServiceUnavailable(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusServiceUnavailable, errorCode, message, nil)
}

// HandleAppError handles application errors, converting domain errors to appropriate HTTP responses.
// Errors that are not AppErrors are returned for the central error handler.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		var details any
		if d := appErr.Details(); d != "" {
			details = d
		}

		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
	}

	return errors.WithStack(err)
}
