// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"erpgate/config"
	deliverycontext "erpgate/internal/delivery/context"
	"erpgate/internal/domain/constants"
	"erpgate/internal/domain/entity"
	domainerrors "erpgate/internal/domain/errors"
	"erpgate/internal/domain/repository"
	"erpgate/internal/domain/service"
	"erpgate/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager     repository.TransactionManager
	tokenService  service.TokenService
	backend       service.RemoteBackend
	cache         service.SessionCache
	publisher     service.EventPublisher
	cacheSecret   []byte
	credentialTTL time.Duration
	defaultGrants entity.Grants
	logins        singleflight.Group
	logger        *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	TokenService service.TokenService
	Backend      service.RemoteBackend
	Cache        service.SessionCache
	Publisher    service.EventPublisher
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	srv := &authService{
		txManager:    params.TxManager,
		tokenService: params.TokenService,
		backend:      params.Backend,
		cache:        params.Cache,
		publisher:    params.Publisher,
		logger:       params.Logger,
	}

	if params.Config != nil {
		srv.cacheSecret = []byte(params.Config.SecretKey.Access)
		if params.Config.Auth != nil {
			srv.credentialTTL = params.Config.Auth.CredentialTTL
			srv.defaultGrants = defaultGrantsFromConfig(params.Config.Auth.DefaultGrants)
		}
	}

	return srv
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login returns the cached login payload when present, otherwise authenticates
// against the remote backend and mints a new credential.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input.Username == "" || input.Password == "" {
		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	key := srv.cacheKey(input.Username, input.Password)

	payload, found, err := srv.cache.Get(ctx, key)
	if err != nil {
		srv.log(ctx).Warn("Session cache lookup failed, treating as miss", slog.Any("error", err))
	}
	if found {
		srv.log(ctx).Debug("Session cache hit", slog.String("username", input.Username))

		return &usecase.LoginOutput{Payload: payload, Cached: true}, nil
	}

	// Concurrent misses for the same key share one remote login. It outlives a caller
	// that goes away; each caller only stops waiting on its own context.
	results := srv.logins.DoChan(key, func() (any, error) {
		return srv.login(context.WithoutCancel(ctx), key, input)
	})

	select {
	case <-ctx.Done():
		return nil, errors.WithStack(ctx.Err())
	case res := <-results:
		if res.Err != nil {
			return nil, res.Err
		}

		return res.Val.(*usecase.LoginOutput), nil
	}
}

func (srv *authService) login(ctx context.Context, key string, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	session, err := srv.backend.Authenticate(ctx, input.Username, input.Password)
	if err != nil {
		srv.log(ctx).Info("Remote login failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	profile, err := srv.backend.FindEmployeeProfile(ctx, session.SessionID, session.UserID)
	if err != nil {
		srv.log(ctx).Warn("Employee profile lookup failed, continuing without profile",
			slog.Int64("remote_user_id", session.UserID),
			slog.Any("error", err),
		)
		profile = nil
	}

	expiresAt := time.Now().Add(srv.credentialTTL)
	pair, err := srv.tokenService.GenerateTokens(service.Identity{
		RemoteUserID: session.UserID,
		Username:     input.Username,
		SessionID:    session.SessionID,
	}, expiresAt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	credential := &entity.Credential{
		Name:             input.Username,
		RemoteUserID:     session.UserID,
		RemoteSessionID:  session.SessionID,
		AccessTokenHash:  srv.tokenService.HashToken(pair.Access),
		RefreshTokenHash: srv.tokenService.HashToken(pair.Refresh),
		ExpiresAt:        expiresAt,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		principal := &entity.Principal{RemoteUserID: session.UserID, Login: input.Username}
		if err := repoFactory.NewPrincipalRepository().UpsertPrincipal(ctx, principal); err != nil {
			return errors.Wrap(err, "failed to upsert principal")
		}

		if err := repoFactory.NewCredentialRepository().CreateCredential(ctx, credential); err != nil {
			return errors.Wrap(err, "failed to create credential")
		}

		return seedGrants(ctx, repoFactory.NewPermissionRepository(), credential, srv.defaultGrants)
	})
	if err != nil {
		return nil, err
	}

	loginResult := &entity.LoginResult{
		Access:      pair.Access,
		Refresh:     pair.Refresh,
		SessionID:   session.SessionID,
		UserID:      session.UserID,
		UserContext: session.UserContext,
		DB:          srv.backend.Database(),
		ExpiresAt:   expiresAt.UTC(),
		Success:     true,
	}
	loginResult.ApplyProfile(profile)

	payload, err := json.Marshal(loginResult)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode login result")
	}

	if err := srv.cache.Set(ctx, key, payload); err != nil {
		srv.log(ctx).Warn("Failed to store login result in session cache", slog.Any("error", err))
	}

	publishAudit(ctx, srv.publisher, srv.log(ctx), &service.AuditEvent{
		Type:         service.AuditCredentialIssued,
		CredentialID: credential.ID.String(),
		RemoteUserID: session.UserID,
		Username:     input.Username,
	})

	srv.log(ctx).Info("Credential issued",
		slog.String("credential_id", credential.ID.String()),
		slog.Int64("remote_user_id", session.UserID),
	)

	return &usecase.LoginOutput{Payload: payload}, nil
}

// cacheKey scopes an entry to both the username and the password, so a caller
// presenting a different password never receives another caller's payload.
func (srv *authService) cacheKey(username, password string) string {
	mac := hmac.New(sha256.New, srv.cacheSecret)
	mac.Write([]byte(password))

	return constants.SessionCacheKeyPrefix + username + ":" + hex.EncodeToString(mac.Sum(nil))
}

func seedGrants(ctx context.Context, permissionRepo repository.PermissionRepository, credential *entity.Credential, grants entity.Grants) error {
	if len(grants.Origins) > 0 {
		if err := permissionRepo.AddOrigins(ctx, credential.ID, grants.Origins); err != nil {
			return errors.Wrap(err, "failed to seed origins")
		}
	}

	if len(grants.Endpoints) > 0 {
		if err := permissionRepo.AddEndpoints(ctx, credential.ID, grants.Endpoints); err != nil {
			return errors.Wrap(err, "failed to seed endpoints")
		}
	}

	for i := range grants.Scopes {
		scope := grants.Scopes[i]
		scope.CredentialID = credential.ID
		if err := permissionRepo.SaveScope(ctx, &scope); err != nil {
			return errors.Wrap(err, "failed to seed permission scope")
		}
	}

	return nil
}

func defaultGrantsFromConfig(cfg config.DefaultGrantsConfig) entity.Grants {
	grants := entity.Grants{
		Origins:   cfg.AllowedOrigins,
		Endpoints: cfg.AllowedEndpoints,
	}

	for _, s := range cfg.PermissionScopes {
		if s.ModelName == "" {
			continue
		}
		grants.Scopes = append(grants.Scopes, entity.PermissionScope{
			ResourceType: s.ModelName,
			CanCreate:    s.CanCreate,
			CanRead:      s.CanRead,
			CanUpdate:    s.CanUpdate,
			CanDelete:    s.CanDelete,
			CanApprove:   s.CanApprove,
			CanReject:    s.CanReject,
		})
	}

	return grants
}
