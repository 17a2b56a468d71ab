package ports

import (
	"context"

	"github.com/velocar/rental-system/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// SearchByName matches first/last name case-insensitively on partial
	// strings; empty arguments are skipped.
	SearchByName(ctx context.Context, firstName, lastName string) ([]*domain.User, error)
}
