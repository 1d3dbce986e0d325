// Package response writes the JSON bodies of the gateway's HTTP surface.
package response

import (
	"encoding/json"
	"net/http"

	deliverycontext "erpgate/internal/delivery/context"
	domainerrors "erpgate/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ResolveResponse is the body of a successful resolver call.
type ResolveResponse struct {
	Status     string          `json:"status"`
	OdooMethod string          `json:"odoo_method"`
	Result     json.RawMessage `json:"result"`
}

// RotateResponse is the body of a successful token rotation.
type RotateResponse struct {
	Access    string `json:"access"`
	Refresh   string `json:"refresh"`
	ExpiresAt string `json:"expires_at"`
}

// Success writes data as the body with the given status.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Raw writes an already encoded JSON document unchanged.
func Raw(c echo.Context, statusCode int, payload []byte) error {
	return c.JSONBlob(statusCode, payload)
}

// Status writes {"status":"success","message":...}.
func Status(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, domainerrors.StatusResponse{
		Status:  domainerrors.StatusSuccess,
		Message: message,
	})
}

// Resolved writes the outcome of a resolver call.
func Resolved(c echo.Context, method string, result json.RawMessage) error {
	if len(result) == 0 {
		result = json.RawMessage("null")
	}

	return c.JSON(http.StatusOK, ResolveResponse{
		Status:     domainerrors.StatusSuccess,
		OdooMethod: method,
		Result:     result,
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= 500 || statusCode == 401 || statusCode == 403 {
		details = nil
	}

	return c.JSON(statusCode, domainerrors.ErrorResponse{
		Status:  domainerrors.StatusError,
		Code:    errorCode,
		Message: message,
		Details: details,
		Meta: &domainerrors.MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// BadRequestWithDetails returns a 400 error with details
func BadRequestWithDetails(c echo.Context, errorCode string, message string, details any) error {
	return Error(c, http.StatusBadRequest, errorCode, message, details)
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// HandleAppError writes domain errors directly and hands anything else to the
// echo error handler.
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
