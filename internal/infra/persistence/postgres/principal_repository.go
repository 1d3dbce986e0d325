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
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type principalRepository struct {
	q *query.Query
}

// NewPrincipalRepository is the constructor for principalRepository.
func NewPrincipalRepository(db *gorm.DB) repository.PrincipalRepository {
	return &principalRepository{
		q: query.Use(db),
	}
}

func (repo *principalRepository) UpsertPrincipal(ctx context.Context, principal *entity.Principal) error {
	now := time.Now()
	principalM := &model.PrincipalModel{
		ID:           uuid.New(),
		RemoteUserID: principal.RemoteUserID,
		Login:        principal.Login,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err := repo.q.PrincipalModel.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "remote_user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"login", "updated_at"}),
		}).
		Create(principalM)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert principal")
	}

	stored, err := repo.FindPrincipalByRemoteUserID(ctx, principal.RemoteUserID)
	if err != nil {
		return err
	}
	*principal = *stored

	return nil
}

func (repo *principalRepository) FindPrincipalByRemoteUserID(ctx context.Context, remoteUserID int64) (*entity.Principal, error) {
	principalM, err := repo.q.PrincipalModel.WithContext(ctx).
		Where(repo.q.PrincipalModel.RemoteUserID.Eq(remoteUserID)).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPrincipalNotFound
		}

		return nil, errors.WithStack(err)
	}

	return &entity.Principal{
		ID:           principalM.ID,
		RemoteUserID: principalM.RemoteUserID,
		Login:        principalM.Login,
		CreatedAt:    principalM.CreatedAt,
		UpdatedAt:    principalM.UpdatedAt,
	}, nil
}
