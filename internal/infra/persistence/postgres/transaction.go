// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"locinsight/config"
	"locinsight/internal/domain/repository"
	"locinsight/internal/errors"

	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db       *gorm.DB
	reportDB *gorm.DB
	cfg      *config.Config
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction and uses it to create repository instances bound to it.
type gormRepositoryFactory struct {
	tx  *gorm.DB
	cfg *config.Config
}

func (f *gormRepositoryFactory) NewStoreRepository() repository.StoreRepository {
	return newStoreRepository(f.tx, f.cfg)
}

func (f *gormRepositoryFactory) NewReportRepository() repository.ReportRepository {
	return newReportRepository(f.tx)
}

func (f *gormRepositoryFactory) NewContentRepository() repository.ContentRepository {
	return newContentRepository(f.tx)
}

func (f *gormRepositoryFactory) NewThumbnailRepository() repository.ThumbnailRepository {
	return newThumbnailRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB, reportDB *ReportDB, cfg *config.Config) repository.TransactionManager {
	return &gormTransactionManager{db: db, reportDB: reportDB.DB, cfg: cfg}
}

// Execute runs fn in a transaction pinned to the primary, never a replica.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return tm.run(tm.db.WithContext(ctx).Clauses(dbresolver.Write), fn)
}

// ExecuteOnReport runs fn in a transaction on the report database.
func (tm *gormTransactionManager) ExecuteOnReport(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return tm.run(tm.reportDB.WithContext(ctx).Clauses(dbresolver.Write), fn)
}

func (tm *gormTransactionManager) run(db *gorm.DB, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := db.Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	// A panic inside fn must not leave the transaction open.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	err := fn(&gormRepositoryFactory{tx: tx, cfg: tm.cfg})
	if err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Wrapf(err, "transaction rollback failed: %v", rbErr)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}
