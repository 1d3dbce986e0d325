package context

import (
	"erpgate/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// SetCredential stores the resolved credential in echo.Context.
func SetCredential(c echo.Context, credential *entity.Credential) {
	c.Set(string(KeyCredential), credential)
}

// GetCredential returns the credential resolved for this request, if any.
func GetCredential(c echo.Context) (*entity.Credential, bool) {
	credential, ok := c.Get(string(KeyCredential)).(*entity.Credential)

	return credential, ok && credential != nil
}
