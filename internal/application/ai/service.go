// Package ai provides the application layer for model-assisted suggestions
package ai

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/j4rl/barcraft/internal/domain/ingredient"
	"github.com/j4rl/barcraft/internal/ports/inbound"
	"github.com/j4rl/barcraft/internal/ports/outbound"
	"github.com/j4rl/barcraft/pkg/errors"
)

// AIService implements the suggestion use case on top of a DrinkGenerator
type AIService struct {
	generator outbound.DrinkGenerator
	enabled   bool
	logger    *zap.Logger
}

// NewAIService creates a new AI service. When enabled is false every
// suggestion request fails fast without touching the generator.
func NewAIService(generator outbound.DrinkGenerator, enabled bool, logger *zap.Logger) inbound.AIService {
	return &AIService{
		generator: generator,
		enabled:   enabled,
		logger:    logger.Named("ai-service"),
	}
}

// Enabled reports whether suggestions are available
func (s *AIService) Enabled() bool {
	return s.enabled && s.generator != nil
}

// SuggestDrink asks the model for a cocktail and returns it without persisting
func (s *AIService) SuggestDrink(ctx context.Context, cmd inbound.SuggestDrinkCommand) (*inbound.SuggestionDTO, error) {
	if !s.Enabled() {
		return nil, errors.NewAppError(errors.CodeAIMissingAPIKey, "AI suggestions are not available", "")
	}

	prompt := buildPrompt(cmd)
	s.logger.Info("Requesting drink suggestion", zap.Int("prompt_len", len(prompt)))

	generated, err := s.generator.GenerateDrink(ctx, prompt)
	if err != nil {
		s.logger.Warn("Drink generation failed", zap.Error(err))
		return nil, mapGenerationError(err)
	}

	dto := &inbound.SuggestionDTO{
		Name:         strings.TrimSpace(generated.Name),
		Description:  strings.TrimSpace(generated.Description),
		Instructions: strings.TrimSpace(generated.Instructions),
		Quote:        strings.TrimSpace(generated.Quote),
	}
	for _, item := range generated.Ingredients {
		ing := ingredient.Ingredient{
			Name:   strings.TrimSpace(item.Name),
			Amount: strings.TrimSpace(item.Amount),
		}
		if ing.Key() == "" {
			continue
		}
		dto.Ingredients = append(dto.Ingredients, inbound.IngredientDTO{
			Name:   ing.Name,
			Amount: ing.Amount,
			Key:    ing.Key(),
		})
	}

	s.logger.Info("Drink suggestion received",
		zap.String("name", dto.Name),
		zap.Int("ingredients", len(dto.Ingredients)),
	)

	return dto, nil
}

func buildPrompt(cmd inbound.SuggestDrinkCommand) string {
	var b strings.Builder
	b.WriteString("Suggest one cocktail recipe.")

	if ingredients := strings.TrimSpace(cmd.Ingredients); ingredients != "" {
		fmt.Fprintf(&b, " Build it around these ingredients: %s.", ingredients)
	}
	if theme := strings.TrimSpace(cmd.Theme); theme != "" {
		fmt.Fprintf(&b, " The theme is: %s.", theme)
	}
	if lang := strings.TrimSpace(cmd.Language); lang != "" && lang != "en" {
		fmt.Fprintf(&b, " Write all text in the language with ISO 639-1 code %q.", lang)
	}

	return b.String()
}

func mapGenerationError(err error) *errors.AppError {
	switch {
	case stderrors.Is(err, outbound.ErrMissingAPIKey):
		return errors.NewAppError(errors.CodeAIMissingAPIKey, "AI suggestions are not available", "").WithCause(err)
	case stderrors.Is(err, outbound.ErrRequestFailed):
		return errors.NewAppError(errors.CodeAIRequestFailed, "The model could not be reached", "").WithCause(err)
	case stderrors.Is(err, outbound.ErrInvalidJSON):
		return errors.NewAppError(errors.CodeAIInvalidJSON, "The model returned malformed output", "").WithCause(err)
	case stderrors.Is(err, outbound.ErrInvalidShape):
		return errors.NewAppError(errors.CodeAIInvalidShape, "The model returned an incomplete drink", "").WithCause(err)
	case stderrors.Is(err, outbound.ErrEmptyOutput):
		return errors.NewAppError(errors.CodeAIEmptyOutput, "The model returned nothing", "").WithCause(err)
	default:
		return errors.NewInternalError("drink generation failed").WithCause(err)
	}
}
