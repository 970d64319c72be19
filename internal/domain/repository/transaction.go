// Package repository defines the interfaces for the persistence layer.
package repository

import "context"

// RepositoryFactory creates repository instances bound to a single transaction.
// Only the repositories involved in multi-step atomic operations are exposed.
type RepositoryFactory interface {
	// NewUserRepository creates a transaction-bound user repository.
	NewUserRepository() UserRepository

	// NewAuthRepository creates a transaction-bound credential repository.
	NewAuthRepository() AuthRepository

	// NewProductRepository creates a transaction-bound product repository.
	NewProductRepository() ProductRepository

	// NewMatchRepository creates a transaction-bound match repository.
	NewMatchRepository() MatchRepository
}

// TransactionManager runs a function inside a single database transaction.
// The callback receives a factory producing repositories bound to that
// transaction; returning an error rolls everything back.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
