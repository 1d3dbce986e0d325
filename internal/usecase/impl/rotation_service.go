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

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultRotationDays = 1
	// maxRotationDays keeps now+days representable as a time.Duration.
	maxRotationDays = 36500
)

// rotationService implements the RotationUsecase interface.
type rotationService struct {
	txManager    repository.TransactionManager
	tokenService service.TokenService
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// RotationServiceParams holds dependencies for RotationService, injected by Fx.
type RotationServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	TokenService service.TokenService
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewRotationService is the constructor for rotationService.
func NewRotationService(params RotationServiceParams) usecase.RotationUsecase {
	return &rotationService{
		txManager:    params.TxManager,
		tokenService: params.TokenService,
		publisher:    params.Publisher,
		logger:       params.Logger,
	}
}

func (srv *rotationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Rotate replaces the token pair of the credential the refresh token belongs to.
// The remote backend is never contacted.
func (srv *rotationService) Rotate(ctx context.Context, input usecase.RotateInput) (*usecase.RotateOutput, error) {
	if input.RefreshToken == "" {
		return nil, errors.WithStack(domainerrors.ErrMissingRefreshToken)
	}

	days := defaultRotationDays
	if input.Days != nil {
		days = *input.Days
	}
	if days < 1 || days > maxRotationDays {
		return nil, errors.WithStack(domainerrors.ErrInvalidDays)
	}

	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		srv.log(ctx).Debug("Refresh token rejected", slog.Any("error", err))

		return nil, errors.WithStack(domainerrors.ErrInvalidOrExpiredToken)
	}

	identity := claims.Identity()
	expiresAt := time.Now().Add(time.Duration(days) * 24 * time.Hour)
	refreshHash := srv.tokenService.HashToken(input.RefreshToken)

	var (
		credential *entity.Credential
		pair       *service.TokenPair
	)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		credentialRepo := repoFactory.NewCredentialRepository()

		// 1. The presented token must still be the current one of a stored credential
		found, err := credentialRepo.FindCredentialByRefreshHash(ctx, refreshHash)
		if err != nil {
			if errors.Is(err, repository.ErrCredentialNotFound) {
				return errors.WithStack(domainerrors.ErrTokenNotFound)
			}

			return errors.Wrap(err, "failed to find credential")
		}
		credential = found

		// 2. The local identity must still exist
		if _, err := repoFactory.NewPrincipalRepository().FindPrincipalByRemoteUserID(ctx, identity.RemoteUserID); err != nil {
			if errors.Is(err, repository.ErrPrincipalNotFound) {
				return errors.WithStack(domainerrors.ErrLocalIdentityMissing)
			}

			return errors.Wrap(err, "failed to find principal")
		}

		// 3. Sign the new pair and swap it in, conditional on the old refresh digest
		pair, err = srv.tokenService.GenerateTokens(identity, expiresAt)
		if err != nil {
			return errors.Wrap(err, "failed to generate tokens")
		}

		err = credentialRepo.RotateCredentialTokens(ctx,
			credential.ID,
			refreshHash,
			srv.tokenService.HashToken(pair.Access),
			srv.tokenService.HashToken(pair.Refresh),
			expiresAt,
		)
		if err != nil {
			if errors.Is(err, repository.ErrCredentialNotFound) {
				return errors.WithStack(domainerrors.ErrTokenNotFound)
			}

			return errors.Wrap(err, "failed to rotate credential tokens")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	publishAudit(ctx, srv.publisher, srv.log(ctx), &service.AuditEvent{
		Type:         service.AuditCredentialRotated,
		CredentialID: credential.ID.String(),
		RemoteUserID: identity.RemoteUserID,
		Username:     identity.Username,
	})

	srv.log(ctx).Info("Credential rotated",
		slog.String("credential_id", credential.ID.String()),
		slog.Int("days", days),
	)

	return &usecase.RotateOutput{
		Access:    pair.Access,
		Refresh:   pair.Refresh,
		ExpiresAt: expiresAt,
	}, nil
}
