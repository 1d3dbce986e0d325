package handler

import (
	"log/slog"

	"erpgate/internal/delivery/api/middleware"
	"erpgate/internal/delivery/api/response"
	domainerrors "erpgate/internal/domain/errors"
	"erpgate/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PermissionHandlerParams holds dependencies for PermissionHandler, injected by Fx.
type PermissionHandlerParams struct {
	fx.In

	PermissionUC usecase.PermissionUsecase
	Logger       *slog.Logger
}

// PermissionHandler manages the allow-lists of the calling credential.
type PermissionHandler struct {
	permissionUC usecase.PermissionUsecase
	logger       *slog.Logger
}

// NewPermissionHandler is the constructor for PermissionHandler.
func NewPermissionHandler(params PermissionHandlerParams) *PermissionHandler {
	return &PermissionHandler{
		permissionUC: params.PermissionUC,
		logger:       params.Logger,
	}
}

// ScopeRequest is one entry of permission_scopes. Omitted flags stay nil.
type ScopeRequest struct {
	ModelName  string `json:"model_name"`
	CanCreate  *bool  `json:"can_create"`
	CanRead    *bool  `json:"can_read"`
	CanUpdate  *bool  `json:"can_update"`
	CanDelete  *bool  `json:"can_delete"`
	CanApprove *bool  `json:"can_approve"`
	CanReject  *bool  `json:"can_reject"`
}

// PermissionsRequest is the body of both permission routes.
type PermissionsRequest struct {
	AllowedOrigins   []string       `json:"allowed_origins"`
	AllowedEndpoints []string       `json:"allowed_endpoints"`
	PermissionScopes []ScopeRequest `json:"permission_scopes"`
}

func (r *PermissionsRequest) toInput() usecase.PermissionsInput {
	scopes := make([]usecase.ScopeInput, 0, len(r.PermissionScopes))
	for _, s := range r.PermissionScopes {
		scopes = append(scopes, usecase.ScopeInput{
			ModelName:  s.ModelName,
			CanCreate:  s.CanCreate,
			CanRead:    s.CanRead,
			CanUpdate:  s.CanUpdate,
			CanDelete:  s.CanDelete,
			CanApprove: s.CanApprove,
			CanReject:  s.CanReject,
		})
	}

	return usecase.PermissionsInput{
		AllowedOrigins:   r.AllowedOrigins,
		AllowedEndpoints: r.AllowedEndpoints,
		PermissionScopes: scopes,
	}
}

// Replace swaps every grant of the calling credential for the ones in the body.
func (h *PermissionHandler) Replace(c echo.Context) error {
	credential, ok := middleware.GetCredential(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	var req PermissionsRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("body must be a permission set"))
	}

	if err := h.permissionUC.ReplacePermissions(c.Request().Context(), credential.ID, req.toInput()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Status(c, "Permissions updated successfully")
}

// Patch merges the body into the grants of the calling credential.
func (h *PermissionHandler) Patch(c echo.Context) error {
	credential, ok := middleware.GetCredential(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	var req PermissionsRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("body must be a permission set"))
	}

	if err := h.permissionUC.PatchPermissions(c.Request().Context(), credential.ID, req.toInput()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Status(c, "Permissions updated")
}
