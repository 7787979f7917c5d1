// Package gorm provides GORM-based repository implementations
package gorm

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/j4rl/barcraft/internal/domain/user"
	"github.com/j4rl/barcraft/internal/ports/outbound"
)

// UserRepository implements the user repository interface using GORM
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) outbound.UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	model := UserToModel(u)

	result := r.db.WithContext(ctx).Create(model)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return user.ErrEmailTaken
		}
		return result.Error
	}

	return nil
}

// Update updates an existing user
func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	model := UserToModel(u)

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return user.ErrNotFound
	}

	return nil
}

// Delete deletes a user and their pantry
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&PantryItemModel{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&UserModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return user.ErrNotFound
		}
		return nil
	})
}

// FindByID finds a user by ID
func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	var model UserModel

	result := r.db.WithContext(ctx).First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, result.Error
	}

	return ModelToUser(&model), nil
}

// FindByEmail finds a user by email
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	var model UserModel

	result := r.db.WithContext(ctx).First(&model, "email = ?", strings.ToLower(email))
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, result.Error
	}

	return ModelToUser(&model), nil
}

// FindAll returns every account, newest first
func (r *UserRepository) FindAll(ctx context.Context) ([]*user.User, error) {
	var models []UserModel

	result := r.db.WithContext(ctx).Order("created_at DESC").Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	users := make([]*user.User, len(models))
	for i := range models {
		users[i] = ModelToUser(&models[i])
	}
	return users, nil
}

// ExistsByEmail checks if an account exists for the given email
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64

	result := r.db.WithContext(ctx).Model(&UserModel{}).
		Where("email = ?", strings.ToLower(email)).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

// CreatePasswordResetRequest stores a reset request for admin review
func (r *UserRepository) CreatePasswordResetRequest(ctx context.Context, req outbound.PasswordResetRequest) error {
	model := &PasswordResetRequestModel{
		ID:        req.ID,
		Email:     req.Email,
		CreatedAt: req.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(model).Error
}

// FindPasswordResetRequests returns pending reset requests, newest first
func (r *UserRepository) FindPasswordResetRequests(ctx context.Context) ([]outbound.PasswordResetRequest, error) {
	var models []PasswordResetRequestModel

	result := r.db.WithContext(ctx).Order("created_at DESC").Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	reqs := make([]outbound.PasswordResetRequest, len(models))
	for i, m := range models {
		reqs[i] = outbound.PasswordResetRequest{
			ID:        m.ID,
			Email:     m.Email,
			CreatedAt: m.CreatedAt,
		}
	}
	return reqs, nil
}

// isUniqueViolation matches the unique-index errors sqlite and postgres report
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key")
}
