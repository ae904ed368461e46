package repositories

import (
	"context"

	"github.com/mattilda/school_billing_app/internal/core/domain"
)

// UserReader defines read operations for staff accounts.
type UserReader interface {
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

// UserWriter defines write operations for staff accounts.
type UserWriter interface {
	SaveUser(ctx context.Context, user domain.User) error
}

// UserRepositoryFacade combines read and write operations.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
