package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"erpgate/config"
	apimiddleware "erpgate/internal/delivery/api/middleware"
	"erpgate/internal/delivery/api/router"
	"erpgate/internal/delivery/api/router/handler"
	deliverycontext "erpgate/internal/delivery/context"
	"erpgate/internal/domain/entity"
	domainerrors "erpgate/internal/domain/errors"
	mockUsecase "erpgate/internal/mocks/usecase"
	"erpgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serverFixture struct {
	e            *echo.Echo
	authUC       *mockUsecase.MockAuthUsecase
	rotationUC   *mockUsecase.MockRotationUsecase
	credentialUC *mockUsecase.MockCredentialUsecase
	guardUC      *mockUsecase.MockGuardUsecase
	permissionUC *mockUsecase.MockPermissionUsecase
	resolverUC   *mockUsecase.MockResolverUsecase
	credential   *entity.Credential
}

func newServerFixture(t *testing.T, trustForwardedHost bool) *serverFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	cfg.HTTP.TrustForwardedHost = trustForwardedHost

	f := &serverFixture{
		authUC:       mockUsecase.NewMockAuthUsecase(t),
		rotationUC:   mockUsecase.NewMockRotationUsecase(t),
		credentialUC: mockUsecase.NewMockCredentialUsecase(t),
		guardUC:      mockUsecase.NewMockGuardUsecase(t),
		permissionUC: mockUsecase.NewMockPermissionUsecase(t),
		resolverUC:   mockUsecase.NewMockResolverUsecase(t),
		credential: &entity.Credential{
			ID:              uuid.New(),
			Name:            "alice",
			RemoteUserID:    7,
			RemoteSessionID: "sess-1",
			ExpiresAt:       time.Now().Add(time.Hour),
		},
	}

	f.e = NewEcho(cfg, logger, router.RouterParams{
		AuthHandler: handler.NewAuthHandler(handler.AuthHandlerParams{
			AuthUC:     f.authUC,
			RotationUC: f.rotationUC,
			Logger:     logger,
		}),
		PermissionHandler: handler.NewPermissionHandler(handler.PermissionHandlerParams{
			PermissionUC: f.permissionUC,
			Logger:       logger,
		}),
		ResolverHandler: handler.NewResolverHandler(handler.ResolverHandlerParams{
			ResolverUC: f.resolverUC,
			Config:     cfg,
			Logger:     logger,
		}),
		AuthMiddleware:  apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{CredentialUC: f.credentialUC}),
		GuardMiddleware: apimiddleware.NewGuardMiddleware(apimiddleware.GuardMiddlewareParams{GuardUC: f.guardUC}),
	})

	return f
}

func (f *serverFixture) do(method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Host = "erp.example.com"
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	return rec
}

func (f *serverFixture) expectBearer(token string) {
	f.credentialUC.EXPECT().
		ResolveAccessToken(mock.Anything, token).
		Return(f.credential, nil).
		Once()
}

func bearer(token string) map[string]string {
	return map[string]string{echo.HeaderAuthorization: "Bearer " + token}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) domainerrors.ErrorResponse {
	t.Helper()

	var body domainerrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, domainerrors.StatusError, body.Status)
	require.NotNil(t, body.Meta)
	assert.NotEmpty(t, body.Meta.RequestID)

	return body
}

func TestServer_Health(t *testing.T) {
	f := newServerFixture(t, false)

	rec := f.do(http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestServer_UnknownRoute(t *testing.T) {
	f := newServerFixture(t, false)

	rec := f.do(http.MethodGet, "/nope", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", decodeError(t, rec).Code)
}

func TestServer_RequestIDPropagatesToErrorBody(t *testing.T) {
	f := newServerFixture(t, false)

	rec := f.do(http.MethodPost, "/token/permissions", `{}`, map[string]string{
		deliverycontext.HeaderXRequestID: "req-123",
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, "req-123", decodeError(t, rec).Meta.RequestID)
}

func TestServer_Login(t *testing.T) {
	t.Run("payload is written unchanged", func(t *testing.T) {
		f := newServerFixture(t, false)
		payload := []byte(`{"success":true,"uid":7,"access":"a","refresh":"r"}`)

		f.authUC.EXPECT().
			Login(mock.Anything, usecase.LoginInput{Username: "alice", Password: "pw"}).
			Return(&usecase.LoginOutput{Payload: payload, Cached: true}, nil).
			Once()

		rec := f.do(http.MethodPost, "/login", `{"username":"alice","password":"pw"}`, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, payload, rec.Body.Bytes())
	})

	t.Run("missing password", func(t *testing.T) {
		f := newServerFixture(t, false)

		rec := f.do(http.MethodPost, "/login", `{"username":"alice"}`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, domainerrors.ErrInvalidCredentials.ErrorCode(), decodeError(t, rec).Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		f := newServerFixture(t, false)

		rec := f.do(http.MethodPost, "/login", `{"username":`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), decodeError(t, rec).Code)
	})

	t.Run("remote rejects", func(t *testing.T) {
		f := newServerFixture(t, false)

		f.authUC.EXPECT().
			Login(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrRemoteAuthFailed.WithDetails("Access Denied")).
			Once()

		rec := f.do(http.MethodPost, "/login", `{"username":"alice","password":"bad"}`, nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, domainerrors.ErrRemoteAuthFailed.ErrorCode(), body.Code)
		assert.Nil(t, body.Details, "401 responses carry no details")
	})
}

func TestServer_Rotate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newServerFixture(t, false)
		expiresAt := time.Date(2026, 1, 4, 10, 0, 0, 0, time.FixedZone("UTC+8", 8*3600))

		f.rotationUC.EXPECT().
			Rotate(mock.Anything, mock.Anything).
			Run(func(_ context.Context, input usecase.RotateInput) {
				assert.Equal(t, "refresh-token", input.RefreshToken)
				require.NotNil(t, input.Days)
				assert.Equal(t, 3, *input.Days)
			}).
			Return(&usecase.RotateOutput{Access: "A2", Refresh: "R2", ExpiresAt: expiresAt}, nil).
			Once()

		rec := f.do(http.MethodPost, "/token/rotate", `{"refresh":"refresh-token","days":3}`, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"access":"A2","refresh":"R2","expires_at":"2026-01-04T02:00:00Z"}`, rec.Body.String())
	})

	t.Run("days omitted", func(t *testing.T) {
		f := newServerFixture(t, false)

		f.rotationUC.EXPECT().
			Rotate(mock.Anything, mock.Anything).
			Run(func(_ context.Context, input usecase.RotateInput) {
				assert.Nil(t, input.Days)
			}).
			Return(&usecase.RotateOutput{Access: "A2", Refresh: "R2", ExpiresAt: time.Now()}, nil).
			Once()

		rec := f.do(http.MethodPost, "/token/rotate", `{"refresh":"refresh-token"}`, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("days is not a number", func(t *testing.T) {
		f := newServerFixture(t, false)

		rec := f.do(http.MethodPost, "/token/rotate", `{"refresh":"r","days":"abc"}`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, domainerrors.ErrInvalidDays.ErrorCode(), decodeError(t, rec).Code)
	})

	t.Run("days out of range", func(t *testing.T) {
		f := newServerFixture(t, false)

		f.rotationUC.EXPECT().
			Rotate(mock.Anything, mock.Anything).
			Run(func(_ context.Context, input usecase.RotateInput) {
				assert.Equal(t, 200000, *input.Days)
			}).
			Return(nil, domainerrors.ErrInvalidDays).
			Once()

		rec := f.do(http.MethodPost, "/token/rotate", `{"refresh":"r","days":200000}`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, domainerrors.ErrInvalidDays.ErrorCode(), decodeError(t, rec).Code)
	})

	t.Run("unknown token", func(t *testing.T) {
		f := newServerFixture(t, false)

		f.rotationUC.EXPECT().
			Rotate(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrTokenNotFound).
			Once()

		rec := f.do(http.MethodPost, "/token/rotate", `{"refresh":"r"}`, nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, domainerrors.ErrTokenNotFound.ErrorCode(), decodeError(t, rec).Code)
	})
}

func TestServer_BearerParsing(t *testing.T) {
	tests := []struct {
		name   string
		header string
		token  string
	}{
		{name: "missing header"},
		{name: "wrong scheme", header: "Basic abc"},
		{name: "empty token", header: "Bearer   "},
		{name: "lowercase scheme", header: "bearer tok-1", token: "tok-1"},
		{name: "uppercase scheme", header: "BEARER tok-2", token: "tok-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newServerFixture(t, false)

			headers := map[string]string{}
			if tt.header != "" {
				headers[echo.HeaderAuthorization] = tt.header
			}

			if tt.token != "" {
				f.expectBearer(tt.token)
				f.permissionUC.EXPECT().
					ReplacePermissions(mock.Anything, f.credential.ID, mock.Anything).
					Return(nil).
					Once()
			}

			rec := f.do(http.MethodPost, "/token/permissions", `{}`, headers)

			if tt.token == "" {
				assert.Equal(t, http.StatusUnauthorized, rec.Code)
				assert.Equal(t, domainerrors.ErrUnauthorized.ErrorCode(), decodeError(t, rec).Code)

				return
			}
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestServer_InvalidAccessToken(t *testing.T) {
	f := newServerFixture(t, false)

	f.credentialUC.EXPECT().
		ResolveAccessToken(mock.Anything, "expired").
		Return(nil, domainerrors.ErrUnauthorized).
		Once()

	rec := f.do(http.MethodPatch, "/token/update-permission", `{}`, bearer("expired"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, domainerrors.ErrUnauthorized.ErrorCode(), decodeError(t, rec).Code)
}

func TestServer_ReplacePermissions(t *testing.T) {
	f := newServerFixture(t, false)
	f.expectBearer("tok")

	f.permissionUC.EXPECT().
		ReplacePermissions(mock.Anything, f.credential.ID, mock.Anything).
		Run(func(_ context.Context, _ uuid.UUID, input usecase.PermissionsInput) {
			assert.Equal(t, []string{"erp.example.com"}, input.AllowedOrigins)
			assert.Equal(t, []string{"/v1/auto/hr"}, input.AllowedEndpoints)
			require.Len(t, input.PermissionScopes, 1)
			scope := input.PermissionScopes[0]
			assert.Equal(t, "hr.employee", scope.ModelName)
			require.NotNil(t, scope.CanRead)
			assert.True(t, *scope.CanRead)
			assert.Nil(t, scope.CanDelete, "omitted flags stay unset")
		}).
		Return(nil).
		Once()

	rec := f.do(http.MethodPost, "/token/permissions", `{
		"allowed_origins": ["erp.example.com"],
		"allowed_endpoints": ["/v1/auto/hr"],
		"permission_scopes": [{"model_name": "hr.employee", "can_read": true}]
	}`, bearer("tok"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"success","message":"Permissions updated successfully"}`, rec.Body.String())
}

func TestServer_PatchPermissions(t *testing.T) {
	f := newServerFixture(t, false)
	f.expectBearer("tok")

	f.permissionUC.EXPECT().
		PatchPermissions(mock.Anything, f.credential.ID, mock.Anything).
		Return(nil).
		Once()

	rec := f.do(http.MethodPatch, "/token/update-permission", `{"allowed_origins":["b.example.com"]}`, bearer("tok"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"success","message":"Permissions updated"}`, rec.Body.String())
}

func TestServer_PermissionsBadBody(t *testing.T) {
	f := newServerFixture(t, false)
	f.expectBearer("tok")

	rec := f.do(http.MethodPost, "/token/permissions", `{"allowed_origins":"not-a-list"}`, bearer("tok"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), decodeError(t, rec).Code)
}

func TestServer_ResolverEndpointGuard(t *testing.T) {
	f := newServerFixture(t, false)
	f.expectBearer("tok")

	f.guardUC.EXPECT().
		CheckEndpoint(mock.Anything, f.credential.ID, "/v1/auto/hr/hr.employee/read/7").
		Return(domainerrors.ErrEndpointNotAllowed).
		Once()

	rec := f.do(http.MethodGet, "/v1/auto/hr/hr.employee/read/7", "", bearer("tok"))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, domainerrors.ErrEndpointNotAllowed.ErrorCode(), decodeError(t, rec).Code)
}

func TestServer_Resolve(t *testing.T) {
	f := newServerFixture(t, false)
	f.expectBearer("tok")

	f.guardUC.EXPECT().
		CheckEndpoint(mock.Anything, f.credential.ID, "/v1/auto/hr/hr.employee/update/42").
		Return(nil).
		Once()

	f.resolverUC.EXPECT().
		Resolve(mock.Anything, mock.Anything).
		Run(func(_ context.Context, input usecase.ResolveInput) {
			assert.Same(t, f.credential, input.Credential)
			assert.Equal(t, "erp.example.com", input.Host)
			assert.Equal(t, "hr", input.Channel)
			assert.Equal(t, "hr.employee", input.ResourceType)
			assert.Equal(t, "update", input.Action)
			require.NotNil(t, input.ResourceID)
			assert.Equal(t, int64(42), *input.ResourceID)
			assert.Equal(t, "Bob", input.Body["name"])
			assert.Equal(t, json.Number("12345678901234567"), input.Body["barcode"])
		}).
		Return(&usecase.ResolveOutput{RemoteMethod: "write", Result: json.RawMessage(`true`)}, nil).
		Once()

	// The method does not choose the operation; whitespace after the object is fine
	rec := f.do(http.MethodPost, "/v1/auto/hr/hr.employee/update/42",
		"{\"name\":\"Bob\",\"barcode\":12345678901234567}\n  \n", bearer("tok"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"success","odoo_method":"write","result":true}`, rec.Body.String())
}

func TestServer_ResolveEmptyBodyAndNullResult(t *testing.T) {
	f := newServerFixture(t, false)
	f.expectBearer("tok")
	f.guardUC.EXPECT().CheckEndpoint(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	f.resolverUC.EXPECT().
		Resolve(mock.Anything, mock.Anything).
		Run(func(_ context.Context, input usecase.ResolveInput) {
			assert.Nil(t, input.ResourceID)
			assert.NotNil(t, input.Body)
			assert.Empty(t, input.Body)
		}).
		Return(&usecase.ResolveOutput{RemoteMethod: "search_read"}, nil).
		Once()

	rec := f.do(http.MethodGet, "/v1/auto/hr/hr.employee/read", "", bearer("tok"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"success","odoo_method":"search_read","result":null}`, rec.Body.String())
}

func TestServer_ResolveRejectsBadInput(t *testing.T) {
	tests := []struct {
		name   string
		target string
		body   string
	}{
		{name: "non numeric id", target: "/v1/auto/hr/hr.employee/read/abc"},
		{name: "zero id", target: "/v1/auto/hr/hr.employee/read/0"},
		{name: "negative id", target: "/v1/auto/hr/hr.employee/read/-3"},
		{name: "array body", target: "/v1/auto/hr/hr.employee/create", body: `[1,2]`},
		{name: "null body", target: "/v1/auto/hr/hr.employee/create", body: `null`},
		{name: "broken body", target: "/v1/auto/hr/hr.employee/create", body: `{"name":`},
		{name: "second object", target: "/v1/auto/hr/hr.employee/create", body: `{"a":1}{"b":2}`},
		{name: "trailing junk", target: "/v1/auto/hr/hr.employee/create", body: `{"a":1} junk`},
		{name: "trailing scalar", target: "/v1/auto/hr/hr.employee/create", body: `{"a":1} 2`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newServerFixture(t, false)
			f.expectBearer("tok")
			f.guardUC.EXPECT().CheckEndpoint(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

			rec := f.do(http.MethodPost, tt.target, tt.body, bearer("tok"))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), decodeError(t, rec).Code)
		})
	}
}

func TestServer_ResolveErrorsKeepDetailsFor4xx(t *testing.T) {
	f := newServerFixture(t, false)
	f.expectBearer("tok")
	f.guardUC.EXPECT().CheckEndpoint(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	f.resolverUC.EXPECT().
		Resolve(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrUnsupportedAction.WithDetails("archive")).
		Once()

	rec := f.do(http.MethodPost, "/v1/auto/hr/hr.employee/archive/1", "", bearer("tok"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, domainerrors.ErrUnsupportedAction.ErrorCode(), body.Code)
	assert.Equal(t, "archive", body.Details)
}

func TestServer_ResolveForwardedHost(t *testing.T) {
	tests := []struct {
		name    string
		trusted bool
		want    string
	}{
		{name: "trusted proxy", trusted: true, want: "app.example.com"},
		{name: "untrusted proxy", trusted: false, want: "erp.example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newServerFixture(t, tt.trusted)
			f.expectBearer("tok")
			f.guardUC.EXPECT().CheckEndpoint(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

			f.resolverUC.EXPECT().
				Resolve(mock.Anything, mock.Anything).
				Run(func(_ context.Context, input usecase.ResolveInput) {
					assert.Equal(t, tt.want, input.Host)
				}).
				Return(&usecase.ResolveOutput{RemoteMethod: "search_read", Result: json.RawMessage(`[]`)}, nil).
				Once()

			headers := bearer("tok")
			headers["X-Forwarded-Host"] = "app.example.com, proxy.internal"

			rec := f.do(http.MethodGet, "/v1/auto/hr/hr.employee/read", "", headers)

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestServer_BodyLimit(t *testing.T) {
	f := newServerFixture(t, false)

	rec := f.do(http.MethodPost, "/login", `{"username":"`+strings.Repeat("a", 2048)+`","password":"pw"}`, nil)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "PAYLOAD_TOO_LARGE", decodeError(t, rec).Code)
}
