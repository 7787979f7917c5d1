package testutils

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/j4rl/barcraft/internal/ports/inbound"
)

// MockDrinkService is a testify mock for inbound.DrinkService
type MockDrinkService struct {
	mock.Mock
}

func (m *MockDrinkService) CreateDrink(ctx context.Context, cmd inbound.CreateDrinkCommand) (*inbound.DrinkDTO, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inbound.DrinkDTO), args.Error(1)
}

func (m *MockDrinkService) DeleteDrink(ctx context.Context, drinkID uuid.UUID) error {
	args := m.Called(ctx, drinkID)
	return args.Error(0)
}

func (m *MockDrinkService) SetClassic(ctx context.Context, drinkID uuid.UUID, classic bool) (*inbound.DrinkDTO, error) {
	args := m.Called(ctx, drinkID, classic)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inbound.DrinkDTO), args.Error(1)
}

func (m *MockDrinkService) GetDrinkByID(ctx context.Context, drinkID uuid.UUID) (*inbound.DrinkDTO, error) {
	args := m.Called(ctx, drinkID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inbound.DrinkDTO), args.Error(1)
}

func (m *MockDrinkService) ListDrinks(ctx context.Context, query string) ([]inbound.DrinkDTO, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inbound.DrinkDTO), args.Error(1)
}

func (m *MockDrinkService) ListIngredientKeys(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockDrinkService) GetCatalogStats(ctx context.Context) (*inbound.CatalogStatsDTO, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inbound.CatalogStatsDTO), args.Error(1)
}

// MockPantryService is a testify mock for inbound.PantryService
type MockPantryService struct {
	mock.Mock
}

func (m *MockPantryService) GetPantry(ctx context.Context, userID uuid.UUID) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockPantryService) UpdatePantry(ctx context.Context, userID uuid.UUID, raw string) ([]string, error) {
	args := m.Called(ctx, userID, raw)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockPantryService) GetMatches(ctx context.Context, userID uuid.UUID) (*inbound.MatchesDTO, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inbound.MatchesDTO), args.Error(1)
}

// MockUserService is a testify mock for inbound.UserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, cmd inbound.RegisterCommand) (*inbound.UserDTO, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inbound.UserDTO), args.Error(1)
}

func (m *MockUserService) Login(ctx context.Context, email, password string) (*inbound.AuthResultDTO, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inbound.AuthResultDTO), args.Error(1)
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID uuid.UUID) (*inbound.UserDTO, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inbound.UserDTO), args.Error(1)
}

func (m *MockUserService) UpdateLanguage(ctx context.Context, userID uuid.UUID, language string) (*inbound.UserDTO, error) {
	args := m.Called(ctx, userID, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inbound.UserDTO), args.Error(1)
}

func (m *MockUserService) RequestPasswordReset(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]inbound.UserDTO, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inbound.UserDTO), args.Error(1)
}

func (m *MockUserService) ApproveUser(ctx context.Context, userID uuid.UUID) (*inbound.UserDTO, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inbound.UserDTO), args.Error(1)
}

func (m *MockUserService) SetAdmin(ctx context.Context, userID uuid.UUID, admin bool) (*inbound.UserDTO, error) {
	args := m.Called(ctx, userID, admin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inbound.UserDTO), args.Error(1)
}

func (m *MockUserService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserService) ListPasswordResetRequests(ctx context.Context) ([]inbound.PasswordResetRequestDTO, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inbound.PasswordResetRequestDTO), args.Error(1)
}

// MockAIService is a testify mock for inbound.AIService
type MockAIService struct {
	mock.Mock
}

func (m *MockAIService) Enabled() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockAIService) SuggestDrink(ctx context.Context, cmd inbound.SuggestDrinkCommand) (*inbound.SuggestionDTO, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inbound.SuggestionDTO), args.Error(1)
}
