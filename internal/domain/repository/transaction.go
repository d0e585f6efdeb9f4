package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a transaction on the primary database.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error

	// ExecuteOnReport runs a function within a transaction on the report database.
	ExecuteOnReport(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides a way to get repository instances that are bound to a specific transaction.
// This ensures all repository operations within a transaction use the same database connection.
type RepositoryFactory interface {
	// NewStoreRepository returns a StoreRepository instance bound to the current transaction.
	NewStoreRepository() StoreRepository

	// NewReportRepository returns a ReportRepository instance bound to the current transaction.
	NewReportRepository() ReportRepository

	// NewContentRepository returns a ContentRepository instance bound to the current transaction.
	NewContentRepository() ContentRepository

	// NewThumbnailRepository returns a ThumbnailRepository instance bound to the current transaction.
	NewThumbnailRepository() ThumbnailRepository
}
