package middleware

import (
	"strings"

	domainerrors "erpgate/internal/domain/errors"
	"erpgate/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const headerXForwardedHost = "X-Forwarded-Host"

// GuardMiddlewareParams holds dependencies for GuardMiddleware, injected by Fx.
type GuardMiddlewareParams struct {
	fx.In

	GuardUC usecase.GuardUsecase
}

// GuardMiddleware enforces the endpoint allow-list of the resolved credential.
type GuardMiddleware struct {
	guardUC usecase.GuardUsecase
}

// NewGuardMiddleware is the constructor for GuardMiddleware.
func NewGuardMiddleware(params GuardMiddlewareParams) *GuardMiddleware {
	return &GuardMiddleware{guardUC: params.GuardUC}
}

// RequireEndpoint denies the request unless its path is covered by an allowed endpoint.
// It must be used AFTER RequireCredential.
func (m *GuardMiddleware) RequireEndpoint(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		credential, ok := GetCredential(c)
		if !ok {
			return errors.WithStack(domainerrors.ErrUnauthorized)
		}

		if err := m.guardUC.CheckEndpoint(c.Request().Context(), credential.ID, c.Request().URL.Path); err != nil {
			return err
		}

		return next(c)
	}
}

// RequestHost is the host the origin allow-list is checked against. The first
// X-Forwarded-Host value wins only when the proxy in front is trusted.
func RequestHost(c echo.Context, trustForwardedHost bool) string {
	if trustForwardedHost {
		if forwarded := c.Request().Header.Get(headerXForwardedHost); forwarded != "" {
			first, _, _ := strings.Cut(forwarded, ",")
			if host := strings.TrimSpace(first); host != "" {
				return host
			}
		}
	}

	return c.Request().Host
}
