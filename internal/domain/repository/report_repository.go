package repository

import (
	"context"

	"locinsight/internal/domain/entity"
)

// ReportRepository writes to the report database.
type ReportRepository interface {
	// SaveStoreReport inserts or replaces the report row of a store.
	SaveStoreReport(ctx context.Context, store *entity.Store) error
}
