package user

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domain "github.com/j4rl/barcraft/internal/domain/user"
	"github.com/j4rl/barcraft/internal/ports/inbound"
	"github.com/j4rl/barcraft/internal/ports/outbound"
	"github.com/j4rl/barcraft/pkg/errors"
	"github.com/j4rl/barcraft/test/testutils"
)

type stubIssuer struct{}

func (stubIssuer) IssueToken(u *domain.User) (string, error) {
	return "token-" + u.ID().String(), nil
}

func newTestService(t *testing.T) (*UserService, *testutils.MockUserRepository) {
	t.Helper()
	userRepo := new(testutils.MockUserRepository)
	svc := NewUserService(userRepo, stubIssuer{}, zap.NewNop()).(*UserService)
	return svc, userRepo
}

func TestRegister(t *testing.T) {
	t.Run("creates an unapproved account with a lowercased email", func(t *testing.T) {
		svc, userRepo := newTestService(t)

		userRepo.On("ExistsByEmail", mock.Anything, "johan@example.com").Return(false, nil)
		userRepo.On("Create", mock.Anything, mock.AnythingOfType("*user.User")).Return(nil)

		dto, err := svc.Register(context.Background(), inbound.RegisterCommand{
			Name:     "Johan",
			Email:    "Johan@Example.COM",
			Password: "secret1",
		})

		require.NoError(t, err)
		assert.Equal(t, "johan@example.com", dto.Email)
		assert.False(t, dto.IsApproved)
		assert.False(t, dto.IsAdmin)
		assert.Equal(t, domain.DefaultLanguage, dto.Language)
	})

	t.Run("rejects duplicate emails", func(t *testing.T) {
		svc, userRepo := newTestService(t)

		userRepo.On("ExistsByEmail", mock.Anything, "taken@example.com").Return(true, nil)

		_, err := svc.Register(context.Background(), inbound.RegisterCommand{
			Name:     "Johan",
			Email:    "taken@example.com",
			Password: "secret1",
		})

		assert.Equal(t, errors.CodeEmailAlreadyExists, errors.GetCode(err))
		userRepo.AssertNotCalled(t, "Create")
	})

	t.Run("rejects short passwords", func(t *testing.T) {
		svc, userRepo := newTestService(t)

		userRepo.On("ExistsByEmail", mock.Anything, "johan@example.com").Return(false, nil)

		_, err := svc.Register(context.Background(), inbound.RegisterCommand{
			Name:     "Johan",
			Email:    "johan@example.com",
			Password: "12345",
		})

		assert.Equal(t, errors.CodeValidationFailed, errors.GetCode(err))
	})
}

func TestLogin(t *testing.T) {
	t.Run("returns a token for an approved account", func(t *testing.T) {
		svc, userRepo := newTestService(t)
		u := testutils.NewUserBuilder().WithEmail("johan@example.com").WithPassword("secret1").Approved().Build(t)

		userRepo.On("FindByEmail", mock.Anything, "johan@example.com").Return(u, nil)

		result, err := svc.Login(context.Background(), "Johan@Example.com", "secret1")

		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, u.ID(), result.User.ID)
	})

	t.Run("unknown email and wrong password look the same", func(t *testing.T) {
		svc, userRepo := newTestService(t)
		u := testutils.NewUserBuilder().WithEmail("johan@example.com").WithPassword("secret1").Approved().Build(t)

		userRepo.On("FindByEmail", mock.Anything, "johan@example.com").Return(u, nil)
		userRepo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, domain.ErrNotFound)

		_, wrongPass := svc.Login(context.Background(), "johan@example.com", "wrong")
		_, unknown := svc.Login(context.Background(), "ghost@example.com", "secret1")

		assert.Equal(t, errors.CodeInvalidCredentials, errors.GetCode(wrongPass))
		assert.Equal(t, errors.CodeInvalidCredentials, errors.GetCode(unknown))
	})

	t.Run("unapproved accounts cannot sign in", func(t *testing.T) {
		svc, userRepo := newTestService(t)
		u := testutils.NewUserBuilder().WithEmail("new@example.com").WithPassword("secret1").Build(t)

		userRepo.On("FindByEmail", mock.Anything, "new@example.com").Return(u, nil)

		_, err := svc.Login(context.Background(), "new@example.com", "secret1")

		assert.Equal(t, errors.CodeAccountNotApproved, errors.GetCode(err))
	})
}

func TestApproveUser(t *testing.T) {
	svc, userRepo := newTestService(t)
	u := testutils.NewUserBuilder().Build(t)

	userRepo.On("FindByID", mock.Anything, u.ID()).Return(u, nil)
	userRepo.On("Update", mock.Anything, u).Return(nil)

	dto, err := svc.ApproveUser(context.Background(), u.ID())

	require.NoError(t, err)
	assert.True(t, dto.IsApproved)
}

func TestSetAdmin(t *testing.T) {
	svc, userRepo := newTestService(t)
	u := testutils.NewUserBuilder().Approved().Build(t)

	userRepo.On("FindByID", mock.Anything, u.ID()).Return(u, nil)
	userRepo.On("Update", mock.Anything, u).Return(nil)

	dto, err := svc.SetAdmin(context.Background(), u.ID(), true)

	require.NoError(t, err)
	assert.True(t, dto.IsAdmin)
}

func TestRequestPasswordReset(t *testing.T) {
	t.Run("stores a request for known emails", func(t *testing.T) {
		svc, userRepo := newTestService(t)

		userRepo.On("ExistsByEmail", mock.Anything, "johan@example.com").Return(true, nil)
		userRepo.On("CreatePasswordResetRequest", mock.Anything, mock.AnythingOfType("outbound.PasswordResetRequest")).Return(nil)

		require.NoError(t, svc.RequestPasswordReset(context.Background(), "Johan@Example.com"))
		userRepo.AssertExpectations(t)
	})

	t.Run("silently succeeds for unknown emails", func(t *testing.T) {
		svc, userRepo := newTestService(t)

		userRepo.On("ExistsByEmail", mock.Anything, "ghost@example.com").Return(false, nil)

		require.NoError(t, svc.RequestPasswordReset(context.Background(), "ghost@example.com"))
		userRepo.AssertNotCalled(t, "CreatePasswordResetRequest")
	})

	t.Run("rejects invalid addresses", func(t *testing.T) {
		svc, _ := newTestService(t)

		err := svc.RequestPasswordReset(context.Background(), "not-an-email")

		assert.Equal(t, errors.CodeValidationFailed, errors.GetCode(err))
	})
}

func TestListPasswordResetRequests(t *testing.T) {
	svc, userRepo := newTestService(t)
	req := outbound.PasswordResetRequest{ID: uuid.New(), Email: "johan@example.com"}

	userRepo.On("FindPasswordResetRequests", mock.Anything).Return([]outbound.PasswordResetRequest{req}, nil)

	dtos, err := svc.ListPasswordResetRequests(context.Background())

	require.NoError(t, err)
	require.Len(t, dtos, 1)
	assert.Equal(t, req.Email, dtos[0].Email)
}

func TestDeleteUser(t *testing.T) {
	t.Run("removes an existing account", func(t *testing.T) {
		svc, userRepo := newTestService(t)
		u := testutils.NewUserBuilder().Build(t)

		userRepo.On("FindByID", mock.Anything, u.ID()).Return(u, nil)
		userRepo.On("Delete", mock.Anything, u.ID()).Return(nil)

		require.NoError(t, svc.DeleteUser(context.Background(), u.ID()))
	})

	t.Run("reports unknown accounts as not found", func(t *testing.T) {
		svc, userRepo := newTestService(t)
		id := uuid.New()

		userRepo.On("FindByID", mock.Anything, id).Return(nil, domain.ErrNotFound)

		err := svc.DeleteUser(context.Background(), id)
		assert.Equal(t, errors.CodeUserNotFound, errors.GetCode(err))
	})
}
