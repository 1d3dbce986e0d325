package api_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"erpgate/config"
	"erpgate/internal/delivery/api"
	apimiddleware "erpgate/internal/delivery/api/middleware"
	"erpgate/internal/delivery/api/router"
	"erpgate/internal/delivery/api/router/handler"
	"erpgate/internal/domain/entity"
	domainerrors "erpgate/internal/domain/errors"
	"erpgate/internal/domain/service"
	"erpgate/internal/infra/auth"
	"erpgate/internal/infra/cache"
	"erpgate/internal/infra/odoo"
	"erpgate/internal/infra/persistence/postgres"
	"erpgate/internal/infra/pubsub"
	"erpgate/internal/usecase/impl"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type odooCall struct {
	Path   string
	Cookie string
	Model  string
	Method string
	Args   json.RawMessage
}

// fakeOdoo answers the two JSON-RPC routes the gateway uses and records every request.
type fakeOdoo struct {
	mu    sync.Mutex
	calls []odooCall
}

func (f *fakeOdoo) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var envelope struct {
		Params struct {
			Login  string          `json:"login"`
			Model  string          `json:"model"`
			Method string          `json:"method"`
			Args   json.RawMessage `json:"args"`
		} `json:"params"`
	}
	_ = json.NewDecoder(r.Body).Decode(&envelope)

	call := odooCall{
		Path:   r.URL.Path,
		Model:  envelope.Params.Model,
		Method: envelope.Params.Method,
		Args:   envelope.Params.Args,
	}
	if cookie, err := r.Cookie("session_id"); err == nil {
		call.Cookie = cookie.Value
	}

	f.mu.Lock()
	f.calls = append(f.calls, call)
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	switch {
	case r.URL.Path == "/web/session/authenticate" && envelope.Params.Login == "alice":
		http.SetCookie(w, &http.Cookie{Name: "session_id", Value: "sess-alice"})
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":"1","result":{"uid":7,"user_context":{"lang":"en_US"}}}`))
	case r.URL.Path == "/web/session/authenticate":
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":"1","error":{"code":200,"message":"Odoo Server Error","data":{"message":"Access Denied"}}}`))
	case call.Model == "hr.employee" && call.Method == "search_read":
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":"1","result":[]}`))
	case call.Method == "button_confirm_approve":
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":"1","result":{"approved":[42]}}`))
	default:
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":"1","result":true}`))
	}
}

func (f *fakeOdoo) snapshot() []odooCall {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]odooCall(nil), f.calls...)
}

type gateway struct {
	e      *echo.Echo
	odoo   *fakeOdoo
	db     *gorm.DB
	tokens service.TokenService
}

func newGateway(t *testing.T) *gateway {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	remote := &fakeOdoo{}
	server := httptest.NewServer(remote)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		SecretKey: config.SecretKeyConfig{Access: "access-secret", Refresh: "refresh-secret"},
		Auth:      &config.AuthConfig{CredentialTTL: 24 * time.Hour, RefreshTTL: 7 * 24 * time.Hour},
		Odoo:      &config.OdooConfig{URL: server.URL, DB: "prod", Timeout: 5 * time.Second},
		Resolver:  &config.ResolverConfig{ReadFields: map[string][]string{}},
	}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, postgres.Migrate(context.Background(), db))

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)
	backend, err := odoo.NewClient(odoo.Params{Config: cfg, Logger: logger})
	require.NoError(t, err)

	txManager := postgres.NewTransactionManager(db)
	publisher := pubsub.NewNoopPublisher(logger)
	credentialParams := impl.CredentialServiceParams{
		TxManager:    txManager,
		TokenService: tokens,
		Publisher:    publisher,
		Logger:       logger,
	}

	e := api.NewEcho(cfg, logger, router.RouterParams{
		AuthHandler: handler.NewAuthHandler(handler.AuthHandlerParams{
			AuthUC: impl.NewAuthService(impl.AuthServiceParams{
				TxManager:    txManager,
				TokenService: tokens,
				Backend:      backend,
				Cache:        cache.NewMemoryCache(100, time.Hour),
				Publisher:    publisher,
				Config:       cfg,
				Logger:       logger,
			}),
			RotationUC: impl.NewRotationService(impl.RotationServiceParams{
				TxManager:    txManager,
				TokenService: tokens,
				Publisher:    publisher,
				Logger:       logger,
			}),
			Logger: logger,
		}),
		PermissionHandler: handler.NewPermissionHandler(handler.PermissionHandlerParams{
			PermissionUC: impl.NewPermissionService(impl.PermissionServiceParams{
				TxManager: txManager,
				Publisher: publisher,
				Logger:    logger,
			}),
			Logger: logger,
		}),
		ResolverHandler: handler.NewResolverHandler(handler.ResolverHandlerParams{
			ResolverUC: impl.NewResolverService(impl.ResolverServiceParams{
				TxManager: txManager,
				Backend:   backend,
				Publisher: publisher,
				Config:    cfg,
				Logger:    logger,
			}),
			Config: cfg,
			Logger: logger,
		}),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{
			CredentialUC: impl.NewCredentialService(credentialParams),
		}),
		GuardMiddleware: apimiddleware.NewGuardMiddleware(apimiddleware.GuardMiddlewareParams{
			GuardUC: impl.NewGuardService(credentialParams),
		}),
	})

	return &gateway{e: e, odoo: remote, db: db, tokens: tokens}
}

func (g *gateway) do(t *testing.T, method, host, target, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Host = host
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	g.e.ServeHTTP(rec, req)

	return rec
}

func (g *gateway) login(t *testing.T) entity.LoginResult {
	t.Helper()

	rec := g.do(t, http.MethodPost, "gw.local", "/login", "", `{"username":"alice","password":"p1"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result entity.LoginResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))

	return result
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body domainerrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())

	return body.Code
}

func TestGateway_LoginIssuesCredential(t *testing.T) {
	g := newGateway(t)
	start := time.Now()

	result := g.login(t)

	assert.True(t, result.Success)
	assert.Equal(t, int64(7), result.UserID)
	assert.Equal(t, "sess-alice", result.SessionID)
	assert.Equal(t, "prod", result.DB)
	assert.Nil(t, result.EmployeeID, "no employee record means no profile")
	assert.WithinDuration(t, start.Add(24*time.Hour), result.ExpiresAt, time.Minute)

	stored, err := postgres.NewCredentialRepository(g.db).FindCredentialByAccessHash(context.Background(), g.tokens.HashToken(result.Access))
	require.NoError(t, err)
	assert.Equal(t, int64(7), stored.RemoteUserID)
	assert.Equal(t, "sess-alice", stored.RemoteSessionID)
	assert.Equal(t, g.tokens.HashToken(result.Refresh), stored.RefreshTokenHash)
	assert.WithinDuration(t, result.ExpiresAt, stored.ExpiresAt, time.Second)

	// No default grants: the fresh credential may not call anything yet.
	origins, err := postgres.NewPermissionRepository(g.db).FindOrigins(context.Background(), stored.ID)
	require.NoError(t, err)
	assert.Empty(t, origins)
}

func TestGateway_SecondLoginIsServedFromCache(t *testing.T) {
	g := newGateway(t)

	first := g.do(t, http.MethodPost, "gw.local", "/login", "", `{"username":"alice","password":"p1"}`)
	second := g.do(t, http.MethodPost, "gw.local", "/login", "", `{"username":"alice","password":"p1"}`)

	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, first.Body.Bytes(), second.Body.Bytes())

	authenticates := 0
	for _, call := range g.odoo.snapshot() {
		if call.Path == "/web/session/authenticate" {
			authenticates++
		}
	}
	assert.Equal(t, 1, authenticates)
}

func TestGateway_LoginRejected(t *testing.T) {
	g := newGateway(t)

	rec := g.do(t, http.MethodPost, "gw.local", "/login", "", `{"username":"mallory","password":"x"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, domainerrors.ErrRemoteAuthFailed.ErrorCode(), errorCode(t, rec))
}

func TestGateway_ResolverScenarios(t *testing.T) {
	g := newGateway(t)
	creds := g.login(t)

	rec := g.do(t, http.MethodPost, "gw.local", "/token/permissions", creds.Access, `{
		"allowed_origins": ["https://erp.example.com/"],
		"allowed_endpoints": ["/v1/auto"],
		"permission_scopes": [{"model_name": "purchase.order", "can_approve": true}]
	}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	t.Run("approve is dispatched to the confirm button", func(t *testing.T) {
		before := len(g.odoo.snapshot())

		rec := g.do(t, http.MethodPost, "erp.example.com", "/v1/auto/x/purchase.order/approve/42", creds.Access, "")

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.JSONEq(t, `{"status":"success","odoo_method":"button_confirm_approve","result":{"approved":[42]}}`, rec.Body.String())

		calls := g.odoo.snapshot()[before:]
		require.Len(t, calls, 1)
		assert.Equal(t, "/web/dataset/call_kw", calls[0].Path)
		assert.Equal(t, "purchase.order", calls[0].Model)
		assert.Equal(t, "button_confirm_approve", calls[0].Method)
		assert.JSONEq(t, `[[42]]`, string(calls[0].Args))
		assert.Equal(t, "sess-alice", calls[0].Cookie)
	})

	t.Run("another port of an allowed host is refused", func(t *testing.T) {
		before := len(g.odoo.snapshot())

		rec := g.do(t, http.MethodPost, "erp.example.com:8443", "/v1/auto/x/purchase.order/approve/42", creds.Access, "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, domainerrors.ErrForbiddenHost.ErrorCode(), errorCode(t, rec))
		assert.Len(t, g.odoo.snapshot(), before)
	})

	t.Run("action without its flag is denied", func(t *testing.T) {
		before := len(g.odoo.snapshot())

		rec := g.do(t, http.MethodPost, "erp.example.com", "/v1/auto/x/purchase.order/reject/42", creds.Access, "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, domainerrors.ErrPermissionDenied.ErrorCode(), errorCode(t, rec))
		assert.Len(t, g.odoo.snapshot(), before)
	})

	t.Run("delete without a resource id never reaches the backend", func(t *testing.T) {
		rec := g.do(t, http.MethodPatch, "gw.local", "/token/update-permission", creds.Access,
			`{"permission_scopes": [{"model_name": "purchase.order", "can_delete": true}]}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		before := len(g.odoo.snapshot())

		rec = g.do(t, http.MethodDelete, "erp.example.com", "/v1/auto/x/purchase.order/delete", creds.Access, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, domainerrors.ErrMissingResourceID.ErrorCode(), errorCode(t, rec))
		assert.Len(t, g.odoo.snapshot(), before)
	})

	t.Run("patch kept the approve flag", func(t *testing.T) {
		rec := g.do(t, http.MethodPost, "erp.example.com", "/v1/auto/x/purchase.order/approve/7", creds.Access, "")

		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})

	t.Run("foreign host is refused before any lookup", func(t *testing.T) {
		before := len(g.odoo.snapshot())

		rec := g.do(t, http.MethodPost, "evil.example.com", "/v1/auto/x/purchase.order/approve/42", creds.Access, "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, domainerrors.ErrForbiddenHost.ErrorCode(), errorCode(t, rec))
		assert.Len(t, g.odoo.snapshot(), before)
	})

	t.Run("endpoint outside the allow-list", func(t *testing.T) {
		rec := g.do(t, http.MethodPost, "gw.local", "/token/permissions", creds.Access, `{
			"allowed_origins": ["erp.example.com"],
			"allowed_endpoints": ["/v1/auto/hr"],
			"permission_scopes": [{"model_name": "purchase.order", "can_approve": true}]
		}`)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = g.do(t, http.MethodPost, "erp.example.com", "/v1/auto/x/purchase.order/approve/42", creds.Access, "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, domainerrors.ErrEndpointNotAllowed.ErrorCode(), errorCode(t, rec))
	})
}

func TestGateway_Rotation(t *testing.T) {
	g := newGateway(t)
	creds := g.login(t)
	start := time.Now()

	rec := g.do(t, http.MethodPost, "gw.local", "/token/rotate", "", `{"refresh":"`+creds.Refresh+`","days":2}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var rotated struct {
		Access    string `json:"access"`
		Refresh   string `json:"refresh"`
		ExpiresAt string `json:"expires_at"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rotated))
	assert.NotEqual(t, creds.Access, rotated.Access)
	assert.NotEqual(t, creds.Refresh, rotated.Refresh)

	expiresAt, err := time.Parse(time.RFC3339, rotated.ExpiresAt)
	require.NoError(t, err)
	assert.WithinDuration(t, start.Add(48*time.Hour), expiresAt, time.Minute)

	// The old pair is gone.
	rec = g.do(t, http.MethodPatch, "gw.local", "/token/update-permission", creds.Access, `{}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = g.do(t, http.MethodPost, "gw.local", "/token/rotate", "", `{"refresh":"`+creds.Refresh+`"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, domainerrors.ErrTokenNotFound.ErrorCode(), errorCode(t, rec))

	// The new pair works and still carries the same remote session.
	rec = g.do(t, http.MethodPatch, "gw.local", "/token/update-permission", rotated.Access, `{}`)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	stored, err := postgres.NewCredentialRepository(g.db).FindCredentialByAccessHash(context.Background(), g.tokens.HashToken(rotated.Access))
	require.NoError(t, err)
	assert.Equal(t, "sess-alice", stored.RemoteSessionID)
	assert.Equal(t, int64(7), stored.RemoteUserID)
}

func TestGateway_RotationRejectsOversizedDays(t *testing.T) {
	g := newGateway(t)
	creds := g.login(t)

	for _, days := range []string{"36501", "106752", "200000"} {
		rec := g.do(t, http.MethodPost, "gw.local", "/token/rotate", "", `{"refresh":"`+creds.Refresh+`","days":`+days+`}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code, days)
		assert.Equal(t, domainerrors.ErrInvalidDays.ErrorCode(), errorCode(t, rec), days)
	}

	// Rejected input leaves the pair untouched.
	rec := g.do(t, http.MethodPost, "gw.local", "/token/rotate", "", `{"refresh":"`+creds.Refresh+`","days":36500}`)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}
