// Package user defines the user domain entity
package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// User represents an account in the system. New accounts start unapproved;
// an admin has to approve them before they can sign in.
type User struct {
	id           uuid.UUID
	email        string
	name         string
	passwordHash string
	admin        bool
	approved     bool
	language     string
	createdAt    time.Time
	updatedAt    time.Time
}

// DefaultLanguage is used for accounts that never picked one.
const DefaultLanguage = "en"

// New creates a new unapproved, non-admin user with a bcrypt password hash.
func New(name, email, password, language string) (*User, error) {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return nil, err
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if err := validateEmail(email); err != nil {
		return nil, err
	}

	if err := validatePassword(password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrPasswordHash
	}

	if language == "" {
		language = DefaultLanguage
	}

	now := time.Now()
	return &User{
		id:           uuid.New(),
		email:        email,
		name:         name,
		passwordHash: string(hash),
		admin:        false,
		approved:     false,
		language:     language,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// Reconstitute rebuilds a User from persisted state.
func Reconstitute(id uuid.UUID, name, email, passwordHash string, admin, approved bool, language string, createdAt, updatedAt time.Time) *User {
	if language == "" {
		language = DefaultLanguage
	}
	return &User{
		id:           id,
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		admin:        admin,
		approved:     approved,
		language:     language,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// ID returns the user's ID.
func (u *User) ID() uuid.UUID {
	return u.id
}

// Email returns the user's email, lowercased.
func (u *User) Email() string {
	return u.email
}

// Name returns the user's display name.
func (u *User) Name() string {
	return u.name
}

// PasswordHash returns the stored bcrypt hash.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// IsAdmin reports whether the user has admin rights.
func (u *User) IsAdmin() bool {
	return u.admin
}

// IsApproved reports whether an admin has approved the account.
func (u *User) IsApproved() bool {
	return u.approved
}

// Language returns the user's preferred language code.
func (u *User) Language() string {
	return u.language
}

// CreatedAt returns when the user registered.
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// UpdatedAt returns when the user was last updated.
func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

// CheckPassword verifies the provided password against the stored hash.
func (u *User) CheckPassword(password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// Approve marks the account as approved for sign-in.
func (u *User) Approve() {
	u.approved = true
	u.updatedAt = time.Now()
}

// SetAdmin grants or revokes admin rights.
func (u *User) SetAdmin(admin bool) {
	u.admin = admin
	u.updatedAt = time.Now()
}

// SetLanguage updates the preferred language code.
func (u *User) SetLanguage(language string) {
	if language == "" {
		language = DefaultLanguage
	}
	u.language = language
	u.updatedAt = time.Now()
}

func validateName(name string) error {
	if name == "" {
		return ErrNameRequired
	}
	if len(name) > 100 {
		return ErrNameTooLong
	}
	return nil
}

func validateEmail(email string) error {
	if email == "" || !strings.Contains(email, "@") {
		return ErrEmailInvalid
	}
	if len(email) > 255 {
		return ErrEmailInvalid
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 6 {
		return ErrPasswordTooShort
	}
	if len(password) > 128 {
		return ErrPasswordTooLong
	}
	return nil
}
