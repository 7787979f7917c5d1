package user

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type UserTestSuite struct {
	suite.Suite
}

func TestUserTestSuite(t *testing.T) {
	suite.Run(t, new(UserTestSuite))
}

func (s *UserTestSuite) TestNewUser() {
	u, err := New("Johan", "Johan@Example.COM", "secret1", "")

	s.Require().NoError(err)
	s.NotEqual(uuid.Nil, u.ID())
	s.Equal("Johan", u.Name())
	s.Equal("johan@example.com", u.Email())
	s.False(u.IsAdmin())
	s.False(u.IsApproved())
	s.Equal(DefaultLanguage, u.Language())
	s.NotEmpty(u.PasswordHash())
	s.NotEqual("secret1", u.PasswordHash())
	s.WithinDuration(time.Now(), u.CreatedAt(), time.Second)
}

func (s *UserTestSuite) TestNewUserAcceptsMaxLengthEmail() {
	_, err := New("Johan", strings.Repeat("x", 250)+"@b.se", "secret1", "")

	s.NoError(err)
}

func (s *UserTestSuite) TestNewUserKeepsLanguage() {
	u, err := New("Stina", "stina@example.com", "secret1", "sv")

	s.Require().NoError(err)
	s.Equal("sv", u.Language())
}

func (s *UserTestSuite) TestNewUserValidation() {
	tests := []struct {
		name     string
		userName string
		email    string
		password string
		wantErr  error
	}{
		{"empty name", "", "a@b.se", "secret1", ErrNameRequired},
		{"blank name", "   ", "a@b.se", "secret1", ErrNameRequired},
		{"name too long", strings.Repeat("x", 101), "a@b.se", "secret1", ErrNameTooLong},
		{"empty email", "Johan", "", "secret1", ErrEmailInvalid},
		{"email without at sign", "Johan", "not-an-email", "secret1", ErrEmailInvalid},
		{"email too long", "Johan", strings.Repeat("x", 251) + "@b.se", "secret1", ErrEmailInvalid},
		{"password too short", "Johan", "a@b.se", "12345", ErrPasswordTooShort},
		{"password too long", "Johan", "a@b.se", strings.Repeat("p", 129), ErrPasswordTooLong},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := New(tt.userName, tt.email, tt.password, "")
			s.ErrorIs(err, tt.wantErr)
		})
	}
}

func (s *UserTestSuite) TestCheckPassword() {
	u, err := New("Johan", "johan@example.com", "secret1", "")
	s.Require().NoError(err)

	s.NoError(u.CheckPassword("secret1"))
	s.ErrorIs(u.CheckPassword("wrong password"), ErrInvalidCredentials)
}

func (s *UserTestSuite) TestApprove() {
	u, err := New("Johan", "johan@example.com", "secret1", "")
	s.Require().NoError(err)
	s.False(u.IsApproved())

	u.Approve()

	s.True(u.IsApproved())
}

func (s *UserTestSuite) TestSetAdmin() {
	u, err := New("Johan", "johan@example.com", "secret1", "")
	s.Require().NoError(err)

	u.SetAdmin(true)
	s.True(u.IsAdmin())

	u.SetAdmin(false)
	s.False(u.IsAdmin())
}

func (s *UserTestSuite) TestSetLanguage() {
	u, err := New("Johan", "johan@example.com", "secret1", "sv")
	s.Require().NoError(err)

	u.SetLanguage("de")
	s.Equal("de", u.Language())

	u.SetLanguage("")
	s.Equal(DefaultLanguage, u.Language())
}

func (s *UserTestSuite) TestReconstitute() {
	id := uuid.New()
	created := time.Now().Add(-24 * time.Hour)
	updated := time.Now().Add(-time.Hour)

	u := Reconstitute(id, "Johan", "johan@example.com", "$2a$10$hash", true, true, "", created, updated)

	s.Equal(id, u.ID())
	s.True(u.IsAdmin())
	s.True(u.IsApproved())
	s.Equal(DefaultLanguage, u.Language())
	s.Equal(created, u.CreatedAt())
	s.Equal(updated, u.UpdatedAt())
}
