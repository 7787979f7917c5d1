// Package pantry provides the application layer for pantry management and
// catalog matching.
package pantry

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/j4rl/barcraft/internal/domain/drink"
	"github.com/j4rl/barcraft/internal/domain/ingredient"
	domain "github.com/j4rl/barcraft/internal/domain/pantry"
	"github.com/j4rl/barcraft/internal/ports/inbound"
	"github.com/j4rl/barcraft/internal/ports/outbound"
	"github.com/j4rl/barcraft/pkg/errors"
)

// PantryService implements the pantry use cases
type PantryService struct {
	pantryRepo outbound.PantryRepository
	drinkRepo  outbound.DrinkRepository
	logger     *zap.Logger
}

// NewPantryService creates a new pantry service
func NewPantryService(
	pantryRepo outbound.PantryRepository,
	drinkRepo outbound.DrinkRepository,
	logger *zap.Logger,
) inbound.PantryService {
	return &PantryService{
		pantryRepo: pantryRepo,
		drinkRepo:  drinkRepo,
		logger:     logger.Named("pantry-service"),
	}
}

// GetPantry returns the user's stored pantry keys, sorted
func (s *PantryService) GetPantry(ctx context.Context, userID uuid.UUID) ([]string, error) {
	keys, err := s.pantryRepo.FindKeys(ctx, userID)
	if err != nil {
		return nil, errors.NewDatabaseError("load pantry", err)
	}
	// stored keys may predate a normalization change; rebuild the set
	return domain.New(keys...).Keys(), nil
}

// UpdatePantry parses the raw text and replaces the user's pantry with the
// resulting key set. Blank input clears the pantry.
func (s *PantryService) UpdatePantry(ctx context.Context, userID uuid.UUID, raw string) ([]string, error) {
	parsed := ingredient.ParseLines(raw)
	keys := make([]string, len(parsed))
	for i, item := range parsed {
		keys[i] = item.Key()
	}

	if err := s.pantryRepo.Replace(ctx, userID, keys); err != nil {
		return nil, errors.NewDatabaseError("replace pantry", err)
	}

	s.logger.Info("Pantry updated",
		zap.String("user_id", userID.String()),
		zap.Int("ingredients", len(keys)),
	)

	return domain.New(keys...).Keys(), nil
}

// GetMatches classifies the whole catalog against the user's pantry
func (s *PantryService) GetMatches(ctx context.Context, userID uuid.UUID) (*inbound.MatchesDTO, error) {
	keys, err := s.pantryRepo.FindKeys(ctx, userID)
	if err != nil {
		return nil, errors.NewDatabaseError("load pantry", err)
	}

	catalog, err := s.drinkRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.NewDatabaseError("list drinks", err)
	}

	p := domain.New(keys...)
	result := domain.Classify(catalog, p)

	dto := &inbound.MatchesDTO{
		PantryEmpty: p.IsEmpty(),
		Possible:    drinksToDTOs(result.Possible),
		Almost:      make(map[int][]inbound.AlmostDTO, len(result.Almost)),
		Counts:      result.Counts,
	}

	for missing, entries := range result.Almost {
		almost := make([]inbound.AlmostDTO, len(entries))
		for i, e := range entries {
			almost[i] = inbound.AlmostDTO{
				Drink:   *drinkToDTO(e.Drink),
				Missing: e.Missing,
			}
		}
		dto.Almost[missing] = almost
	}

	return dto, nil
}

func drinksToDTOs(drinks []*drink.Drink) []inbound.DrinkDTO {
	dtos := make([]inbound.DrinkDTO, len(drinks))
	for i, d := range drinks {
		dtos[i] = *drinkToDTO(d)
	}
	return dtos
}

func drinkToDTO(d *drink.Drink) *inbound.DrinkDTO {
	items := d.Ingredients()
	ingredients := make([]inbound.IngredientDTO, len(items))
	for i, item := range items {
		ingredients[i] = inbound.IngredientDTO{
			Name:   item.Name,
			Amount: item.Amount,
			Key:    item.Key(),
		}
	}

	return &inbound.DrinkDTO{
		ID:           d.ID(),
		Name:         d.Name(),
		Description:  d.Description(),
		Instructions: d.Instructions(),
		Quote:        d.Quote(),
		IsClassic:    d.IsClassic(),
		Ingredients:  ingredients,
		CreatedAt:    d.CreatedAt().Format(time.RFC3339),
	}
}
