// Package drink provides the application layer for catalog management
// This implements the use cases defined in the inbound ports
package drink

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domain "github.com/j4rl/barcraft/internal/domain/drink"
	"github.com/j4rl/barcraft/internal/domain/ingredient"
	"github.com/j4rl/barcraft/internal/ports/inbound"
	"github.com/j4rl/barcraft/internal/ports/outbound"
	"github.com/j4rl/barcraft/pkg/errors"
)

const (
	catalogCacheKey = "catalog:drinks"
	catalogCacheTTL = 5 * time.Minute
)

// DrinkService implements the catalog use cases
type DrinkService struct {
	drinkRepo      outbound.DrinkRepository
	ingredientRepo outbound.IngredientRepository
	cache          outbound.CacheRepository
	logger         *zap.Logger
}

// NewDrinkService creates a new drink service
func NewDrinkService(
	drinkRepo outbound.DrinkRepository,
	ingredientRepo outbound.IngredientRepository,
	cache outbound.CacheRepository,
	logger *zap.Logger,
) inbound.DrinkService {
	return &DrinkService{
		drinkRepo:      drinkRepo,
		ingredientRepo: ingredientRepo,
		cache:          cache,
		logger:         logger.Named("drink-service"),
	}
}

// CreateDrink parses the raw ingredient text, validates the result and stores
// the drink in the catalog.
func (s *DrinkService) CreateDrink(ctx context.Context, cmd inbound.CreateDrinkCommand) (*inbound.DrinkDTO, error) {
	s.logger.Info("Creating drink", zap.String("name", cmd.Name))

	parsed := ingredient.ParseLines(cmd.Ingredients)

	entity, err := domain.New(cmd.Name, cmd.Description, cmd.Instructions, cmd.Quote, cmd.Classic, parsed)
	if err != nil {
		return nil, errors.NewValidationError(err.Error()).WithCause(err)
	}

	if err := s.drinkRepo.Create(ctx, entity); err != nil {
		return nil, errors.NewDatabaseError("create drink", err)
	}

	s.invalidateCatalogCache(ctx)

	dto := entityToDTO(entity)

	s.logger.Info("Drink created",
		zap.String("drink_id", dto.ID.String()),
		zap.String("name", dto.Name),
		zap.Int("ingredients", len(dto.Ingredients)),
	)

	return dto, nil
}

// DeleteDrink removes a drink from the catalog
func (s *DrinkService) DeleteDrink(ctx context.Context, drinkID uuid.UUID) error {
	if _, err := s.findDrink(ctx, drinkID); err != nil {
		return err
	}

	if err := s.drinkRepo.Delete(ctx, drinkID); err != nil {
		return errors.NewDatabaseError("delete drink", err)
	}

	s.invalidateCatalogCache(ctx)

	s.logger.Info("Drink deleted", zap.String("drink_id", drinkID.String()))
	return nil
}

// SetClassic flags or unflags a drink as a house classic
func (s *DrinkService) SetClassic(ctx context.Context, drinkID uuid.UUID, classic bool) (*inbound.DrinkDTO, error) {
	entity, err := s.findDrink(ctx, drinkID)
	if err != nil {
		return nil, err
	}

	updated := domain.Reconstitute(
		entity.ID(), entity.Name(), entity.Description(), entity.Instructions(),
		entity.Quote(), classic, entity.Ingredients(), entity.CreatedAt(),
	)

	if err := s.drinkRepo.Update(ctx, updated); err != nil {
		return nil, errors.NewDatabaseError("update drink", err)
	}

	s.invalidateCatalogCache(ctx)

	return entityToDTO(updated), nil
}

// GetDrinkByID retrieves a single drink
func (s *DrinkService) GetDrinkByID(ctx context.Context, drinkID uuid.UUID) (*inbound.DrinkDTO, error) {
	entity, err := s.findDrink(ctx, drinkID)
	if err != nil {
		return nil, err
	}
	return entityToDTO(entity), nil
}

// ListDrinks returns the catalog, filtered by the search query when one is
// given. A blank query returns the full catalog in display order.
func (s *DrinkService) ListDrinks(ctx context.Context, query string) ([]inbound.DrinkDTO, error) {
	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	matched := domain.Search(catalog, query)

	dtos := make([]inbound.DrinkDTO, len(matched))
	for i, d := range matched {
		dtos[i] = *entityToDTO(d)
	}
	return dtos, nil
}

// ListIngredientKeys returns every normalized ingredient key known to the catalog
func (s *DrinkService) ListIngredientKeys(ctx context.Context) ([]string, error) {
	keys, err := s.ingredientRepo.FindAllKeys(ctx)
	if err != nil {
		return nil, errors.NewDatabaseError("list ingredients", err)
	}
	return keys, nil
}

// GetCatalogStats summarizes the catalog for the admin dashboard
func (s *DrinkService) GetCatalogStats(ctx context.Context) (*inbound.CatalogStatsDTO, error) {
	total, classics, err := s.drinkRepo.Count(ctx)
	if err != nil {
		return nil, errors.NewDatabaseError("count drinks", err)
	}

	ingredients, err := s.ingredientRepo.Count(ctx)
	if err != nil {
		return nil, errors.NewDatabaseError("count ingredients", err)
	}

	return &inbound.CatalogStatsDTO{
		Drinks:      total,
		Classics:    classics,
		Ingredients: ingredients,
	}, nil
}

func (s *DrinkService) findDrink(ctx context.Context, drinkID uuid.UUID) (*domain.Drink, error) {
	entity, err := s.drinkRepo.FindByID(ctx, drinkID)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NewDrinkNotFoundError(drinkID.String())
		}
		return nil, errors.NewDatabaseError("find drink", err)
	}
	return entity, nil
}

// loadCatalog reads the full catalog, going through the cache when possible.
// Cache failures fall back to the repository; they never fail the request.
func (s *DrinkService) loadCatalog(ctx context.Context) ([]*domain.Drink, error) {
	if cached := s.cachedCatalog(ctx); cached != nil {
		return cached, nil
	}

	catalog, err := s.drinkRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.NewDatabaseError("list drinks", err)
	}

	s.cacheCatalog(ctx, catalog)
	return catalog, nil
}

// cachedDrink is the flat cache representation of one catalog entry
type cachedDrink struct {
	ID           uuid.UUID               `json:"id"`
	Name         string                  `json:"name"`
	Description  string                  `json:"description"`
	Instructions string                  `json:"instructions"`
	Quote        string                  `json:"quote"`
	IsClassic    bool                    `json:"is_classic"`
	Ingredients  []ingredient.Ingredient `json:"ingredients"`
	CreatedAt    time.Time               `json:"created_at"`
}

func (s *DrinkService) cachedCatalog(ctx context.Context) []*domain.Drink {
	data, err := s.cache.Get(ctx, catalogCacheKey)
	if err != nil || data == nil {
		return nil
	}

	var entries []cachedDrink
	if err := json.Unmarshal(data, &entries); err != nil {
		s.logger.Warn("Dropping unreadable catalog cache entry", zap.Error(err))
		s.invalidateCatalogCache(ctx)
		return nil
	}

	catalog := make([]*domain.Drink, len(entries))
	for i, e := range entries {
		catalog[i] = domain.Reconstitute(e.ID, e.Name, e.Description, e.Instructions, e.Quote, e.IsClassic, e.Ingredients, e.CreatedAt)
	}
	return catalog
}

func (s *DrinkService) cacheCatalog(ctx context.Context, catalog []*domain.Drink) {
	entries := make([]cachedDrink, len(catalog))
	for i, d := range catalog {
		entries[i] = cachedDrink{
			ID:           d.ID(),
			Name:         d.Name(),
			Description:  d.Description(),
			Instructions: d.Instructions(),
			Quote:        d.Quote(),
			IsClassic:    d.IsClassic(),
			Ingredients:  d.Ingredients(),
			CreatedAt:    d.CreatedAt(),
		}
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return
	}

	if err := s.cache.Set(ctx, catalogCacheKey, data, catalogCacheTTL); err != nil {
		s.logger.Warn("Failed to cache catalog", zap.Error(err))
	}
}

func (s *DrinkService) invalidateCatalogCache(ctx context.Context) {
	if err := s.cache.Delete(ctx, catalogCacheKey); err != nil {
		s.logger.Warn("Failed to invalidate catalog cache", zap.Error(err))
	}
}

// entityToDTO converts a domain entity to its transfer representation
func entityToDTO(entity *domain.Drink) *inbound.DrinkDTO {
	items := entity.Ingredients()
	ingredients := make([]inbound.IngredientDTO, len(items))
	for i, item := range items {
		ingredients[i] = inbound.IngredientDTO{
			Name:   item.Name,
			Amount: item.Amount,
			Key:    item.Key(),
		}
	}

	return &inbound.DrinkDTO{
		ID:           entity.ID(),
		Name:         entity.Name(),
		Description:  entity.Description(),
		Instructions: entity.Instructions(),
		Quote:        entity.Quote(),
		IsClassic:    entity.IsClassic(),
		Ingredients:  ingredients,
		CreatedAt:    entity.CreatedAt().Format(time.RFC3339),
	}
}

func isNotFound(err error) bool {
	return stderrors.Is(err, domain.ErrNotFound)
}
