package postgres

import (
	"context"
	"time"

	"erpgate/internal/domain/entity"
	domainerrors "erpgate/internal/domain/errors"
	"erpgate/internal/domain/repository"
	"erpgate/internal/infra/persistence/model"
	"erpgate/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gen"
	"gorm.io/gorm"
)

type credentialRepository struct {
	q *query.Query
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(db *gorm.DB) repository.CredentialRepository {
	return &credentialRepository{
		q: query.Use(db),
	}
}

func (repo *credentialRepository) CreateCredential(ctx context.Context, credential *entity.Credential) error {
	credentialM := fromCredentialDomain(credential)
	if credentialM.ID == uuid.Nil {
		credentialM.ID = uuid.New()
	}

	if err := repo.q.CredentialModel.WithContext(ctx).Create(credentialM); err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrInternalError.WrapMessage("token digest collision")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create credential")
	}

	credential.ID = credentialM.ID
	credential.CreatedAt = credentialM.CreatedAt

	return nil
}

func (repo *credentialRepository) FindCredentialByID(ctx context.Context, id uuid.UUID) (*entity.Credential, error) {
	return repo.findOne(ctx, repo.q.CredentialModel.ID.Eq(id))
}

func (repo *credentialRepository) FindCredentialByAccessHash(ctx context.Context, accessHash string) (*entity.Credential, error) {
	return repo.findOne(ctx, repo.q.CredentialModel.AccessTokenHash.Eq(accessHash))
}

func (repo *credentialRepository) FindCredentialByRefreshHash(ctx context.Context, refreshHash string) (*entity.Credential, error) {
	return repo.findOne(ctx, repo.q.CredentialModel.RefreshTokenHash.Eq(refreshHash))
}

func (repo *credentialRepository) findOne(ctx context.Context, conds ...gen.Condition) (*entity.Credential, error) {
	credentialM, err := repo.q.CredentialModel.WithContext(ctx).Where(conds...).First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toCredentialDomain(credentialM), nil
}

// RotateCredentialTokens swaps the token digests only while the stored refresh digest is
// still expectedRefreshHash; a lost race reports ErrCredentialNotFound.
func (repo *credentialRepository) RotateCredentialTokens(
	ctx context.Context,
	id uuid.UUID,
	expectedRefreshHash, accessHash, refreshHash string,
	expiresAt time.Time,
) error {
	c := repo.q.CredentialModel

	result, err := c.WithContext(ctx).
		Where(c.ID.Eq(id), c.RefreshTokenHash.Eq(expectedRefreshHash)).
		UpdateSimple(
			c.AccessTokenHash.Value(accessHash),
			c.RefreshTokenHash.Value(refreshHash),
			c.ExpiresAt.Value(expiresAt),
		)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to rotate credential")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCredentialNotFound
	}

	return nil
}

// DeleteCredential removes the owned rows before the credential itself, so the delete
// is complete even where foreign keys are not enforced. Call it inside a transaction.
func (repo *credentialRepository) DeleteCredential(ctx context.Context, id uuid.UUID) error {
	if err := deleteGrants(ctx, repo.q, id); err != nil {
		return err
	}

	result, err := repo.q.CredentialModel.WithContext(ctx).
		Where(repo.q.CredentialModel.ID.Eq(id)).
		Delete()
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete credential")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCredentialNotFound
	}

	return nil
}

func (repo *credentialRepository) FindCredentialIDsExpiredBefore(ctx context.Context, before time.Time) ([]uuid.UUID, error) {
	c := repo.q.CredentialModel

	var ids []uuid.UUID
	if err := c.WithContext(ctx).
		Where(c.ExpiresAt.Lt(before)).
		Order(c.ExpiresAt).
		Pluck(c.ID, &ids); err != nil {
		return nil, errors.WithStack(err)
	}

	return ids, nil
}

func toCredentialDomain(data *model.CredentialModel) *entity.Credential {
	if data == nil {
		return nil
	}

	return &entity.Credential{
		ID:               data.ID,
		Name:             data.Name,
		RemoteUserID:     data.RemoteUserID,
		RemoteSessionID:  data.RemoteSessionID,
		AccessTokenHash:  data.AccessTokenHash,
		RefreshTokenHash: data.RefreshTokenHash,
		ExpiresAt:        data.ExpiresAt,
		CreatedAt:        data.CreatedAt,
	}
}

func fromCredentialDomain(data *entity.Credential) *model.CredentialModel {
	if data == nil {
		return nil
	}

	return &model.CredentialModel{
		ID:               data.ID,
		Name:             data.Name,
		RemoteUserID:     data.RemoteUserID,
		RemoteSessionID:  data.RemoteSessionID,
		AccessTokenHash:  data.AccessTokenHash,
		RefreshTokenHash: data.RefreshTokenHash,
		ExpiresAt:        data.ExpiresAt,
		CreatedAt:        data.CreatedAt,
	}
}
