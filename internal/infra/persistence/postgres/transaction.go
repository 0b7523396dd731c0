// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"nutritrack/internal/domain/repository"
	"nutritrack/internal/errors"

	"gorm.io/gorm"
)

type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory hands out user, meal and reminder repositories bound to one open transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

func (f *gormRepositoryFactory) NewUserRepository() repository.UserRepository {
	return NewUserRepository(f.tx)
}

func (f *gormRepositoryFactory) NewMealRepository() repository.MealRepository {
	return NewMealRepository(f.tx)
}

func (f *gormRepositoryFactory) NewReminderRepository() repository.ReminderRepository {
	return NewReminderRepository(f.tx)
}

func (f *gormRepositoryFactory) NewChatRepository() repository.ChatRepository {
	return NewChatRepository(f.tx)
}

func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn inside one database transaction. An error from fn rolls back; a panic rolls back and re-panics.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repos repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&gormRepositoryFactory{tx: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Join(err, errors.Wrap(rbErr, "failed to roll back transaction"))
		}

		return err
	}

	return errors.Wrap(tx.Commit().Error, "failed to commit transaction")
}
