// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	domainerrors "erpgate/internal/domain/errors"
	"erpgate/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory hands out repositories bound to one open transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

func (f *gormRepositoryFactory) NewCredentialRepository() repository.CredentialRepository {
	return NewCredentialRepository(f.tx)
}

func (f *gormRepositoryFactory) NewPrincipalRepository() repository.PrincipalRepository {
	return NewPrincipalRepository(f.tx)
}

func (f *gormRepositoryFactory) NewPermissionRepository() repository.PermissionRepository {
	return NewPermissionRepository(f.tx)
}

// NewTransactionManager provides the TransactionManager used by every usecase.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn inside one transaction. Repositories handed out by the factory share it,
// so the resolver's origin, model, action and scope reads observe a single snapshot and
// rotation's compare-and-swap either fully applies or not at all.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) (err error) {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return domainerrors.NewDatabaseExecuteError(tx.Error, "failed to begin transaction")
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err = fn(&gormRepositoryFactory{tx: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil && !errors.Is(rbErr, gorm.ErrInvalidTransaction) {
			return errors.Wrapf(err, "transaction rollback failed: %v", rbErr)
		}

		return err
	}

	// A caller that went away must not have its writes committed.
	if ctxErr := ctx.Err(); ctxErr != nil {
		tx.Rollback()

		return errors.Wrap(ctxErr, "transaction aborted")
	}

	if err = tx.Commit().Error; err != nil {
		return errors.Wrap(domainerrors.ErrTransactionFailed, err.Error())
	}

	return nil
}
