package inbound

import (
	"context"

	"github.com/google/uuid"
)

// UserService defines the use cases for accounts and administration
type UserService interface {
	Register(ctx context.Context, cmd RegisterCommand) (*UserDTO, error)
	Login(ctx context.Context, email, password string) (*AuthResultDTO, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (*UserDTO, error)
	UpdateLanguage(ctx context.Context, userID uuid.UUID, language string) (*UserDTO, error)
	RequestPasswordReset(ctx context.Context, email string) error

	// Admin operations
	ListUsers(ctx context.Context) ([]UserDTO, error)
	ApproveUser(ctx context.Context, userID uuid.UUID) (*UserDTO, error)
	SetAdmin(ctx context.Context, userID uuid.UUID, admin bool) (*UserDTO, error)
	DeleteUser(ctx context.Context, userID uuid.UUID) error
	ListPasswordResetRequests(ctx context.Context) ([]PasswordResetRequestDTO, error)
}

// RegisterCommand contains data for creating an account
type RegisterCommand struct {
	Name     string
	Email    string
	Password string
	Language string
}

// UserDTO is the data transfer object for users
type UserDTO struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	IsAdmin    bool      `json:"is_admin"`
	IsApproved bool      `json:"is_approved"`
	Language   string    `json:"language"`
	CreatedAt  string    `json:"created_at"`
}

// AuthResultDTO is returned on successful login
type AuthResultDTO struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

// PasswordResetRequestDTO is a pending reset request for the admin view
type PasswordResetRequestDTO struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt string    `json:"created_at"`
}
