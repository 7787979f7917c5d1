// Package user provides the application layer for accounts and administration
package user

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domain "github.com/j4rl/barcraft/internal/domain/user"
	"github.com/j4rl/barcraft/internal/ports/inbound"
	"github.com/j4rl/barcraft/internal/ports/outbound"
	"github.com/j4rl/barcraft/pkg/errors"
)

// TokenIssuer signs an access token for an authenticated user
type TokenIssuer interface {
	IssueToken(u *domain.User) (string, error)
}

// UserService implements the account use cases
type UserService struct {
	userRepo outbound.UserRepository
	tokens   TokenIssuer
	logger   *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(
	userRepo outbound.UserRepository,
	tokens TokenIssuer,
	logger *zap.Logger,
) inbound.UserService {
	return &UserService{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger.Named("user-service"),
	}
}

// Register creates a new account. The account stays unapproved until an admin
// acts on it; registration never signs the user in.
func (s *UserService) Register(ctx context.Context, cmd inbound.RegisterCommand) (*inbound.UserDTO, error) {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	s.logger.Info("Registering new user", zap.String("email", email))

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, errors.NewDatabaseError("check email", err)
	}
	if exists {
		return nil, errors.NewEmailAlreadyExistsError(email)
	}

	entity, err := domain.New(cmd.Name, email, cmd.Password, cmd.Language)
	if err != nil {
		return nil, errors.NewValidationError(err.Error()).WithCause(err)
	}

	if err := s.userRepo.Create(ctx, entity); err != nil {
		if stderrors.Is(err, domain.ErrEmailTaken) {
			return nil, errors.NewEmailAlreadyExistsError(email)
		}
		return nil, errors.NewDatabaseError("create user", err)
	}

	s.logger.Info("User registered",
		zap.String("user_id", entity.ID().String()),
		zap.String("email", entity.Email()),
	)

	dto := entityToDTO(entity)
	return &dto, nil
}

// Login authenticates a user and returns a signed token. Unknown emails and
// wrong passwords are indistinguishable to the caller; an unapproved account
// is reported as such only after the password checks out.
func (s *UserService) Login(ctx context.Context, email, password string) (*inbound.AuthResultDTO, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	entity, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if stderrors.Is(err, domain.ErrNotFound) {
			return nil, errors.NewInvalidCredentialsError()
		}
		return nil, errors.NewDatabaseError("find user", err)
	}

	if err := entity.CheckPassword(password); err != nil {
		s.logger.Warn("Invalid password attempt", zap.String("email", email))
		return nil, errors.NewInvalidCredentialsError()
	}

	if !entity.IsApproved() {
		return nil, errors.NewAccountNotApprovedError()
	}

	token, err := s.tokens.IssueToken(entity)
	if err != nil {
		return nil, errors.NewInternalError("failed to issue token").WithCause(err)
	}

	s.logger.Info("User logged in", zap.String("user_id", entity.ID().String()))

	return &inbound.AuthResultDTO{
		Token: token,
		User:  entityToDTO(entity),
	}, nil
}

// GetUserByID retrieves a user by ID
func (s *UserService) GetUserByID(ctx context.Context, userID uuid.UUID) (*inbound.UserDTO, error) {
	entity, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	dto := entityToDTO(entity)
	return &dto, nil
}

// UpdateLanguage changes the user's preferred language
func (s *UserService) UpdateLanguage(ctx context.Context, userID uuid.UUID, language string) (*inbound.UserDTO, error) {
	entity, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	entity.SetLanguage(language)
	if err := s.userRepo.Update(ctx, entity); err != nil {
		return nil, errors.NewDatabaseError("update user", err)
	}

	dto := entityToDTO(entity)
	return &dto, nil
}

// RequestPasswordReset records a reset request for an admin to review. It
// succeeds even for unknown emails so the endpoint cannot be used to probe
// which addresses have accounts.
func (s *UserService) RequestPasswordReset(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return errors.NewValidationError("a valid email address is required")
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return errors.NewDatabaseError("check email", err)
	}
	if !exists {
		s.logger.Info("Password reset requested for unknown email")
		return nil
	}

	req := outbound.PasswordResetRequest{
		ID:        uuid.New(),
		Email:     email,
		CreatedAt: time.Now(),
	}
	if err := s.userRepo.CreatePasswordResetRequest(ctx, req); err != nil {
		return errors.NewDatabaseError("store reset request", err)
	}

	s.logger.Info("Password reset requested", zap.String("email", email))
	return nil
}

// ListUsers returns every account for the admin view
func (s *UserService) ListUsers(ctx context.Context) ([]inbound.UserDTO, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.NewDatabaseError("list users", err)
	}

	dtos := make([]inbound.UserDTO, len(users))
	for i, u := range users {
		dtos[i] = entityToDTO(u)
	}
	return dtos, nil
}

// ApproveUser marks an account as approved for sign-in
func (s *UserService) ApproveUser(ctx context.Context, userID uuid.UUID) (*inbound.UserDTO, error) {
	entity, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	entity.Approve()
	if err := s.userRepo.Update(ctx, entity); err != nil {
		return nil, errors.NewDatabaseError("update user", err)
	}

	s.logger.Info("User approved", zap.String("user_id", userID.String()))

	dto := entityToDTO(entity)
	return &dto, nil
}

// SetAdmin grants or revokes admin rights
func (s *UserService) SetAdmin(ctx context.Context, userID uuid.UUID, admin bool) (*inbound.UserDTO, error) {
	entity, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	entity.SetAdmin(admin)
	if err := s.userRepo.Update(ctx, entity); err != nil {
		return nil, errors.NewDatabaseError("update user", err)
	}

	s.logger.Info("User admin flag changed",
		zap.String("user_id", userID.String()),
		zap.Bool("admin", admin),
	)

	dto := entityToDTO(entity)
	return &dto, nil
}

// DeleteUser removes an account
func (s *UserService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	if _, err := s.findUser(ctx, userID); err != nil {
		return err
	}

	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return errors.NewDatabaseError("delete user", err)
	}

	s.logger.Info("User deleted", zap.String("user_id", userID.String()))
	return nil
}

// ListPasswordResetRequests returns pending reset requests for the admin view
func (s *UserService) ListPasswordResetRequests(ctx context.Context) ([]inbound.PasswordResetRequestDTO, error) {
	reqs, err := s.userRepo.FindPasswordResetRequests(ctx)
	if err != nil {
		return nil, errors.NewDatabaseError("list reset requests", err)
	}

	dtos := make([]inbound.PasswordResetRequestDTO, len(reqs))
	for i, r := range reqs {
		dtos[i] = inbound.PasswordResetRequestDTO{
			ID:        r.ID,
			Email:     r.Email,
			CreatedAt: r.CreatedAt.Format(time.RFC3339),
		}
	}
	return dtos, nil
}

func (s *UserService) findUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	entity, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if stderrors.Is(err, domain.ErrNotFound) {
			return nil, errors.NewUserNotFoundError(userID.String())
		}
		return nil, errors.NewDatabaseError("find user", err)
	}
	return entity, nil
}

// entityToDTO converts a user entity to its transfer representation
func entityToDTO(entity *domain.User) inbound.UserDTO {
	return inbound.UserDTO{
		ID:         entity.ID(),
		Name:       entity.Name(),
		Email:      entity.Email(),
		IsAdmin:    entity.IsAdmin(),
		IsApproved: entity.IsApproved(),
		Language:   entity.Language(),
		CreatedAt:  entity.CreatedAt().Format(time.RFC3339),
	}
}
