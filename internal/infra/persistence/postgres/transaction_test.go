package postgres

import (
	"context"
	"errors"
	"testing"

	"locinsight/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_CommitsOnSuccess(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTransactionManager(db, &ReportDB{DB: db}, testConfig())

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := tm.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
		assert.NotNil(t, factory.NewStoreRepository())
		assert.NotNil(t, factory.NewReportRepository())

		return nil
	})
	require.NoError(t, err)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTransactionManager(db, &ReportDB{DB: db}, testConfig())
	boom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := tm.ExecuteOnReport(context.Background(), func(factory repository.RepositoryFactory) error {
		assert.NotNil(t, factory.NewContentRepository())
		assert.NotNil(t, factory.NewThumbnailRepository())

		return boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestTransactionManager_RollsBackOnPanic(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTransactionManager(db, &ReportDB{DB: db}, testConfig())

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = tm.Execute(context.Background(), func(repository.RepositoryFactory) error {
			panic("unexpected")
		})
	})
}
