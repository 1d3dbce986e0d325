// Package handler contains the echo handlers of the gateway's HTTP surface.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"erpgate/internal/delivery/api/response"
	domainerrors "erpgate/internal/domain/errors"
	"erpgate/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC     usecase.AuthUsecase
	RotationUC usecase.RotationUsecase
	Logger     *slog.Logger
}

// AuthHandler serves login and token rotation.
type AuthHandler struct {
	authUC     usecase.AuthUsecase
	rotationUC usecase.RotationUsecase
	logger     *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC:     params.AuthUC,
		rotationUC: params.RotationUC,
		logger:     params.Logger,
	}
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RotateRequest is the body of POST /token/rotate.
type RotateRequest struct {
	Refresh string `json:"refresh"`
	Days    *int   `json:"days"`
}

// Login authenticates against the remote backend and returns the login payload,
// byte for byte as cached when served from the session cache.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("body must be a JSON object"))
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidCredentials)
	}

	out, err := h.authUC.Login(c.Request().Context(), usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Raw(c, http.StatusOK, out.Payload)
}

// Rotate exchanges a refresh token for a new pair.
func (h *AuthHandler) Rotate(c echo.Context) error {
	var req RotateRequest
	if err := c.Bind(&req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field == "days" {
			return response.HandleAppError(c, domainerrors.ErrInvalidDays)
		}

		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("body must be a JSON object"))
	}

	out, err := h.rotationUC.Rotate(c.Request().Context(), usecase.RotateInput{
		RefreshToken: req.Refresh,
		Days:         req.Days,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.RotateResponse{
		Access:    out.Access,
		Refresh:   out.Refresh,
		ExpiresAt: out.ExpiresAt.UTC().Format(time.RFC3339),
	})
}
