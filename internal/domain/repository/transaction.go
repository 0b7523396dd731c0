package repository

import "context"

// TransactionManager runs a unit of work atomically. Repositories obtained from the factory share the
// transaction; returning an error from fn rolls everything back.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repos RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the running transaction.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewMealRepository() MealRepository
	NewReminderRepository() ReminderRepository
	NewChatRepository() ChatRepository
}
