package ports

import (
	"context"

	"github.com/velocar/rental-system/internal/core/domain"
)

// RegisterInput carries a registration request. Profile fields are required
// when role is client.
type RegisterInput struct {
	Role               string
	Email              string
	Password           string
	FirstName          string
	LastName           string
	PhoneNumber        string
	IdentityCardNumber string
}

// AuthService defines registration and login.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
