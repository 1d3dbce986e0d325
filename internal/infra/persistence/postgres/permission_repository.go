package postgres

import (
	"context"

	"erpgate/internal/domain/entity"
	domainerrors "erpgate/internal/domain/errors"
	"erpgate/internal/domain/repository"
	"erpgate/internal/infra/persistence/model"
	"erpgate/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var scopeFlagColumns = []string{
	"can_create", "can_read", "can_update", "can_delete", "can_approve", "can_reject",
}

type permissionRepository struct {
	q *query.Query
}

// NewPermissionRepository is the constructor for permissionRepository.
func NewPermissionRepository(db *gorm.DB) repository.PermissionRepository {
	return &permissionRepository{
		q: query.Use(db),
	}
}

func (repo *permissionRepository) FindOrigins(ctx context.Context, credentialID uuid.UUID) ([]string, error) {
	o := repo.q.AllowedOriginModel

	var origins []string
	if err := o.WithContext(ctx).
		Where(o.CredentialID.Eq(credentialID)).
		Order(o.Origin).
		Pluck(o.Origin, &origins); err != nil {
		return nil, errors.WithStack(err)
	}

	return origins, nil
}

func (repo *permissionRepository) FindEndpoints(ctx context.Context, credentialID uuid.UUID) ([]string, error) {
	e := repo.q.AllowedEndpointModel

	var endpoints []string
	if err := e.WithContext(ctx).
		Where(e.CredentialID.Eq(credentialID)).
		Order(e.Path).
		Pluck(e.Path, &endpoints); err != nil {
		return nil, errors.WithStack(err)
	}

	return endpoints, nil
}

func (repo *permissionRepository) FindScope(ctx context.Context, credentialID uuid.UUID, resourceType string) (*entity.PermissionScope, error) {
	p := repo.q.PermissionScopeModel

	scopeM, err := p.WithContext(ctx).
		Where(p.CredentialID.Eq(credentialID), p.ModelName.Eq(resourceType)).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrScopeNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toScopeDomain(scopeM), nil
}

func (repo *permissionRepository) FindScopes(ctx context.Context, credentialID uuid.UUID) ([]*entity.PermissionScope, error) {
	p := repo.q.PermissionScopeModel

	scopeModels, err := p.WithContext(ctx).
		Where(p.CredentialID.Eq(credentialID)).
		Order(p.ModelName).
		Find()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	scopes := make([]*entity.PermissionScope, 0, len(scopeModels))
	for _, scopeM := range scopeModels {
		scopes = append(scopes, toScopeDomain(scopeM))
	}

	return scopes, nil
}

func (repo *permissionRepository) DeleteGrants(ctx context.Context, credentialID uuid.UUID) error {
	return deleteGrants(ctx, repo.q, credentialID)
}

// deleteGrants removes every allow-list row and scope owned by the credential.
func deleteGrants(ctx context.Context, q *query.Query, credentialID uuid.UUID) error {
	if _, err := q.AllowedOriginModel.WithContext(ctx).
		Where(q.AllowedOriginModel.CredentialID.Eq(credentialID)).
		Delete(); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete allowed origins")
	}

	if _, err := q.AllowedEndpointModel.WithContext(ctx).
		Where(q.AllowedEndpointModel.CredentialID.Eq(credentialID)).
		Delete(); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete allowed endpoints")
	}

	if _, err := q.PermissionScopeModel.WithContext(ctx).
		Where(q.PermissionScopeModel.CredentialID.Eq(credentialID)).
		Delete(); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete permission scopes")
	}

	return nil
}

func (repo *permissionRepository) AddOrigins(ctx context.Context, credentialID uuid.UUID, origins []string) error {
	if len(origins) == 0 {
		return nil
	}

	rows := make([]*model.AllowedOriginModel, 0, len(origins))
	for _, origin := range origins {
		rows = append(rows, &model.AllowedOriginModel{ID: uuid.New(), CredentialID: credentialID, Origin: origin})
	}

	if err := repo.q.AllowedOriginModel.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(rows...); err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCredentialNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add allowed origins")
	}

	return nil
}

func (repo *permissionRepository) AddEndpoints(ctx context.Context, credentialID uuid.UUID, endpoints []string) error {
	if len(endpoints) == 0 {
		return nil
	}

	rows := make([]*model.AllowedEndpointModel, 0, len(endpoints))
	for _, path := range endpoints {
		rows = append(rows, &model.AllowedEndpointModel{ID: uuid.New(), CredentialID: credentialID, Path: path})
	}

	if err := repo.q.AllowedEndpointModel.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(rows...); err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCredentialNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add allowed endpoints")
	}

	return nil
}

// SaveScope upserts on (credential_id, model_name), overwriting every flag.
func (repo *permissionRepository) SaveScope(ctx context.Context, scope *entity.PermissionScope) error {
	scopeM := fromScopeDomain(scope)
	if scopeM.ID == uuid.Nil {
		scopeM.ID = uuid.New()
	}

	p := repo.q.PermissionScopeModel
	err := p.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "credential_id"}, {Name: "model_name"}},
			DoUpdates: clause.AssignmentColumns(scopeFlagColumns),
		}).
		Create(scopeM)
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCredentialNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save permission scope")
	}

	return nil
}

func toScopeDomain(data *model.PermissionScopeModel) *entity.PermissionScope {
	return &entity.PermissionScope{
		ID:           data.ID,
		CredentialID: data.CredentialID,
		ResourceType: data.ModelName,
		CanCreate:    data.CanCreate,
		CanRead:      data.CanRead,
		CanUpdate:    data.CanUpdate,
		CanDelete:    data.CanDelete,
		CanApprove:   data.CanApprove,
		CanReject:    data.CanReject,
	}
}

func fromScopeDomain(data *entity.PermissionScope) *model.PermissionScopeModel {
	return &model.PermissionScopeModel{
		ID:           data.ID,
		CredentialID: data.CredentialID,
		ModelName:    data.ResourceType,
		CanCreate:    data.CanCreate,
		CanRead:      data.CanRead,
		CanUpdate:    data.CanUpdate,
		CanDelete:    data.CanDelete,
		CanApprove:   data.CanApprove,
		CanReject:    data.CanReject,
	}
}
