package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "erpgate/internal/delivery/context"
	"erpgate/internal/domain/entity"
	"erpgate/internal/domain/repository"
	"erpgate/internal/domain/service"
	"erpgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// permissionService implements the PermissionUsecase interface.
type permissionService struct {
	txManager repository.TransactionManager
	publisher service.EventPublisher
	logger    *slog.Logger
}

// PermissionServiceParams holds dependencies for PermissionService, injected by Fx.
type PermissionServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewPermissionService is the constructor for permissionService.
func NewPermissionService(params PermissionServiceParams) usecase.PermissionUsecase {
	return &permissionService{
		txManager: params.TxManager,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

func (srv *permissionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ReplacePermissions deletes every grant of the credential and recreates it from input.
// Both steps commit together. Scopes without a model name are skipped, the last entry
// for a repeated model name wins, and absent flags are stored as false.
func (srv *permissionService) ReplacePermissions(ctx context.Context, credentialID uuid.UUID, input usecase.PermissionsInput) error {
	scopes := replacementScopes(credentialID, input.PermissionScopes)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		permissionRepo := repoFactory.NewPermissionRepository()

		if err := permissionRepo.DeleteGrants(ctx, credentialID); err != nil {
			return errors.Wrap(err, "failed to delete grants")
		}

		if err := permissionRepo.AddOrigins(ctx, credentialID, cleanList(input.AllowedOrigins)); err != nil {
			return errors.Wrap(err, "failed to add origins")
		}

		if err := permissionRepo.AddEndpoints(ctx, credentialID, cleanList(input.AllowedEndpoints)); err != nil {
			return errors.Wrap(err, "failed to add endpoints")
		}

		for _, scope := range scopes {
			if err := permissionRepo.SaveScope(ctx, scope); err != nil {
				return errors.Wrapf(err, "failed to save scope %s", scope.ResourceType)
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	publishAudit(ctx, srv.publisher, srv.log(ctx), &service.AuditEvent{
		Type:         service.AuditPermissionsReplace,
		CredentialID: credentialID.String(),
	})

	srv.log(ctx).Info("Permissions replaced",
		slog.String("credential_id", credentialID.String()),
		slog.Int("scopes", len(scopes)),
	)

	return nil
}

// PatchPermissions adds origins and endpoints not yet present and, per scope, creates
// the row if absent and then overwrites only the flags present in input.
func (srv *permissionService) PatchPermissions(ctx context.Context, credentialID uuid.UUID, input usecase.PermissionsInput) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		permissionRepo := repoFactory.NewPermissionRepository()

		if err := permissionRepo.AddOrigins(ctx, credentialID, cleanList(input.AllowedOrigins)); err != nil {
			return errors.Wrap(err, "failed to add origins")
		}

		if err := permissionRepo.AddEndpoints(ctx, credentialID, cleanList(input.AllowedEndpoints)); err != nil {
			return errors.Wrap(err, "failed to add endpoints")
		}

		for _, in := range input.PermissionScopes {
			if in.ModelName == "" {
				continue
			}

			scope, err := permissionRepo.FindScope(ctx, credentialID, in.ModelName)
			if err != nil {
				if !errors.Is(err, repository.ErrScopeNotFound) {
					return errors.Wrapf(err, "failed to find scope %s", in.ModelName)
				}
				scope = &entity.PermissionScope{CredentialID: credentialID, ResourceType: in.ModelName}
			}

			scope.Merge(scopeFlags(in))

			if err := permissionRepo.SaveScope(ctx, scope); err != nil {
				return errors.Wrapf(err, "failed to save scope %s", in.ModelName)
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	publishAudit(ctx, srv.publisher, srv.log(ctx), &service.AuditEvent{
		Type:         service.AuditPermissionsPatch,
		CredentialID: credentialID.String(),
	})

	srv.log(ctx).Info("Permissions patched", slog.String("credential_id", credentialID.String()))

	return nil
}

func replacementScopes(credentialID uuid.UUID, inputs []usecase.ScopeInput) []*entity.PermissionScope {
	byModel := make(map[string]*entity.PermissionScope, len(inputs))
	order := make([]string, 0, len(inputs))

	for _, in := range inputs {
		if in.ModelName == "" {
			continue
		}

		scope := &entity.PermissionScope{CredentialID: credentialID, ResourceType: in.ModelName}
		scope.Merge(scopeFlags(in))

		if _, seen := byModel[in.ModelName]; !seen {
			order = append(order, in.ModelName)
		}
		byModel[in.ModelName] = scope
	}

	scopes := make([]*entity.PermissionScope, 0, len(order))
	for _, name := range order {
		scopes = append(scopes, byModel[name])
	}

	return scopes
}

func scopeFlags(in usecase.ScopeInput) entity.ScopeFlags {
	return entity.ScopeFlags{
		CanCreate:  in.CanCreate,
		CanRead:    in.CanRead,
		CanUpdate:  in.CanUpdate,
		CanDelete:  in.CanDelete,
		CanApprove: in.CanApprove,
		CanReject:  in.CanReject,
	}
}

// cleanList trims entries and drops blanks and repeats.
func cleanList(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))

	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}
