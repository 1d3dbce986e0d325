package middleware

import (
	"strings"

	deliverycontext "erpgate/internal/delivery/context"
	domainerrors "erpgate/internal/domain/errors"
	"erpgate/internal/domain/entity"
	"erpgate/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const bearerPrefix = "bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	CredentialUC usecase.CredentialUsecase
}

// AuthMiddleware resolves the bearer access token of a request to its stored credential.
type AuthMiddleware struct {
	credentialUC usecase.CredentialUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{credentialUC: params.CredentialUC}
}

// RequireCredential rejects the request with 401 unless it carries a valid, unexpired,
// stored access token. The credential is made available through GetCredential.
func (m *AuthMiddleware) RequireCredential(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return errors.WithStack(domainerrors.ErrUnauthorized)
		}

		credential, err := m.credentialUC.ResolveAccessToken(c.Request().Context(), token)
		if err != nil {
			return err
		}

		deliverycontext.SetCredential(c, credential)

		return next(c)
	}
}

// GetCredential returns the credential resolved by RequireCredential.
func GetCredential(c echo.Context) (*entity.Credential, bool) {
	return deliverycontext.GetCredential(c)
}

func bearerToken(header string) (string, bool) {
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}

	token := strings.TrimSpace(header[len(bearerPrefix):])

	return token, token != ""
}
