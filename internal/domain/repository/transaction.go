package repository

import "context"

// TransactionManager runs check-then-act sequences atomically.
type TransactionManager interface {
	// Execute runs fn in a transaction. A returned error rolls back; nil commits.
	// Every repository obtained from the factory shares the transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the current transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository
	FriendshipRepo() FriendshipRepository
	CheckInRepo() CheckInRepository
	PlaceRepo() PlaceRepository
	OtpRepo() OtpRepository
}
