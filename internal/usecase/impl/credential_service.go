package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "erpgate/internal/delivery/context"
	"erpgate/internal/domain/entity"
	domainerrors "erpgate/internal/domain/errors"
	"erpgate/internal/domain/repository"
	"erpgate/internal/domain/service"
	"erpgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// credentialService implements the CredentialUsecase and GuardUsecase interfaces.
type credentialService struct {
	txManager    repository.TransactionManager
	tokenService service.TokenService
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// CredentialServiceParams holds dependencies for CredentialService, injected by Fx.
type CredentialServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	TokenService service.TokenService
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewCredentialService is the constructor for the credential usecase.
func NewCredentialService(params CredentialServiceParams) usecase.CredentialUsecase {
	return newCredentialService(params)
}

// NewGuardService is the constructor for the guard usecase.
func NewGuardService(params CredentialServiceParams) usecase.GuardUsecase {
	return newCredentialService(params)
}

func newCredentialService(params CredentialServiceParams) *credentialService {
	return &credentialService{
		txManager:    params.TxManager,
		tokenService: params.TokenService,
		publisher:    params.Publisher,
		logger:       params.Logger,
	}
}

func (srv *credentialService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ResolveAccessToken verifies the signature and type of the token, then loads the
// credential by digest. A credential whose stored expiry has passed is rejected
// even if the token itself still verifies.
func (srv *credentialService) ResolveAccessToken(ctx context.Context, accessToken string) (*entity.Credential, error) {
	if accessToken == "" {
		return nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	if _, err := srv.tokenService.ValidateAccessToken(accessToken); err != nil {
		srv.log(ctx).Debug("Access token rejected", slog.Any("error", err))

		return nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	var credential *entity.Credential

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewCredentialRepository().FindCredentialByAccessHash(ctx, srv.tokenService.HashToken(accessToken))
		if err != nil {
			if errors.Is(err, repository.ErrCredentialNotFound) {
				return errors.WithStack(domainerrors.ErrUnauthorized)
			}

			return errors.Wrap(err, "failed to find credential")
		}
		credential = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	if credential.IsExpired(time.Now()) {
		return nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	return credential, nil
}

// CheckEndpoint returns ErrEndpointNotAllowed unless path is covered by an allowed endpoint.
func (srv *credentialService) CheckEndpoint(ctx context.Context, credentialID uuid.UUID, path string) error {
	var endpoints []string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewPermissionRepository().FindEndpoints(ctx, credentialID)
		if err != nil {
			return errors.Wrap(err, "failed to find allowed endpoints")
		}
		endpoints = found

		return nil
	})
	if err != nil {
		return err
	}

	if !entity.EndpointAllowed(path, endpoints) {
		srv.log(ctx).Info("Endpoint rejected",
			slog.String("credential_id", credentialID.String()),
			slog.String("path", path),
		)

		return errors.WithStack(domainerrors.ErrEndpointNotAllowed)
	}

	return nil
}

// Revoke deletes the credential together with its origins, endpoints and scopes.
func (srv *credentialService) Revoke(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return revokeCredential(ctx, repoFactory.NewCredentialRepository(), id)
	})
	if err != nil {
		return err
	}

	publishAudit(ctx, srv.publisher, srv.log(ctx), &service.AuditEvent{
		Type:         service.AuditCredentialRevoked,
		CredentialID: id.String(),
	})

	srv.log(ctx).Info("Credential revoked", slog.String("credential_id", id.String()))

	return nil
}

// PurgeExpired revokes every credential whose expiry is before the given time.
func (srv *credentialService) PurgeExpired(ctx context.Context, before time.Time) (int, error) {
	var purged []uuid.UUID

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		credentialRepo := repoFactory.NewCredentialRepository()

		ids, err := credentialRepo.FindCredentialIDsExpiredBefore(ctx, before)
		if err != nil {
			return errors.Wrap(err, "failed to find expired credentials")
		}

		for _, id := range ids {
			if err := revokeCredential(ctx, credentialRepo, id); err != nil {
				return err
			}
		}
		purged = ids

		return nil
	})
	if err != nil {
		return 0, err
	}

	for _, id := range purged {
		publishAudit(ctx, srv.publisher, srv.log(ctx), &service.AuditEvent{
			Type:         service.AuditCredentialRevoked,
			CredentialID: id.String(),
			Reason:       "expired",
		})
	}

	srv.log(ctx).Info("Expired credentials purged",
		slog.Int("count", len(purged)),
		slog.Time("before", before),
	)

	return len(purged), nil
}

func revokeCredential(ctx context.Context, credentialRepo repository.CredentialRepository, id uuid.UUID) error {
	if err := credentialRepo.DeleteCredential(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return errors.WithStack(domainerrors.ErrCredentialNotFound)
		}

		return errors.Wrapf(err, "failed to delete credential %s", id)
	}

	return nil
}
