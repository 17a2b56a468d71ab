package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("email already in use")
var ErrInvalidCredentials = errors.New("invalid credentials")

// User models an account in the system. Profile fields are required only for
// the client role; admin accounts carry just email and password.
type User struct {
	ID                 string    `json:"id" bson:"_id,omitempty"`
	Role               string    `json:"role" bson:"role"`
	Email              string    `json:"email" bson:"email"`
	PasswordHash       string    `json:"-" bson:"password_hash"`
	FirstName          string    `json:"first_name,omitempty" bson:"first_name,omitempty"`
	LastName           string    `json:"last_name,omitempty" bson:"last_name,omitempty"`
	PhoneNumber        string    `json:"phone_number,omitempty" bson:"phone_number,omitempty"`
	IdentityCardNumber string    `json:"identity_card_number,omitempty" bson:"identity_card_number,omitempty"`
	CreatedAt          time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" bson:"updated_at"`
}

// Principal is the authenticated actor attached to every core operation.
// It is passed explicitly as a parameter, never read from ambient state.
type Principal struct {
	UserID string
	Role   string
}

// IsAdmin reports whether the principal carries the admin role.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
