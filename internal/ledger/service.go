// Package ledger manages the per-user unlock ledger and stored recipe
// snapshots.
package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/osse101/CraftPanel_Go/internal/domain"
	"github.com/osse101/CraftPanel_Go/internal/event"
	"github.com/osse101/CraftPanel_Go/internal/logger"
	"github.com/osse101/CraftPanel_Go/internal/repository"
)

// Service defines the ledger operations used by crafting sessions
type Service interface {
	UnlockedIDs(ctx context.Context, userID string) (map[string]bool, error)
	Unlock(ctx context.Context, userID string, recipe *domain.Recipe) (bool, error)

	StoreRecipe(ctx context.Context, recipe *domain.StoredRecipe) error
	ListStoredRecipes(ctx context.Context, userID, panelID string) ([]domain.StoredRecipe, error)
	GetStoredRecipe(ctx context.Context, userID, id string) (*domain.StoredRecipe, error)
	DeleteStoredRecipe(ctx context.Context, userID, id string) error
}

type service struct {
	repo  repository.Ledger
	bus   event.Bus
	cache *unlockCache
}

// NewService creates a ledger service. bus may be nil.
func NewService(repo repository.Ledger, bus event.Bus, cacheSize int, cacheTTL time.Duration) Service {
	return &service{
		repo:  repo,
		bus:   bus,
		cache: newUnlockCache(cacheSize, cacheTTL),
	}
}

func (s *service) load(ctx context.Context, userID string) ([]domain.UnlockedRecipe, error) {
	if recipes, ok := s.cache.Get(userID); ok {
		return recipes, nil
	}
	recipes, err := s.repo.GetUnlockedRecipes(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadLedger, err)
	}
	s.cache.Set(userID, recipes)
	return recipes, nil
}

// UnlockedIDs returns the set of recipe ids in the user's ledger
func (s *service) UnlockedIDs(ctx context.Context, userID string) (map[string]bool, error) {
	recipes, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := make(map[string]bool, len(recipes))
	for _, r := range recipes {
		ids[r.ID] = true
	}
	return ids, nil
}

// Unlock adds recipe to the user's ledger and reports whether it was new
func (s *service) Unlock(ctx context.Context, userID string, recipe *domain.Recipe) (bool, error) {
	ids, err := s.UnlockedIDs(ctx, userID)
	if err != nil {
		return false, err
	}
	if ids[recipe.ID] {
		return false, nil
	}

	entry := domain.UnlockedRecipe{
		ID:        recipe.ID,
		Name:      recipe.Name,
		Img:       recipe.Img,
		Ownership: recipe.Ownership,
	}
	if err := s.repo.UnlockRecipe(ctx, userID, entry); err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgUnlock, err)
	}
	s.cache.Invalidate(userID)

	logger.FromContext(ctx).Info(LogMsgRecipeUnlocked, "user_id", userID, "recipe_id", recipe.ID)
	if s.bus != nil {
		if err := s.bus.Publish(ctx, event.NewRecipeUnlockedEvent(userID, recipe.ID, recipe.Name)); err != nil {
			logger.FromContext(ctx).Warn(LogMsgPublishFailed, "error", err)
		}
	}
	return true, nil
}

// StoreRecipe saves a snapshot after checking it names something
func (s *service) StoreRecipe(ctx context.Context, recipe *domain.StoredRecipe) error {
	recipe.Name = strings.TrimSpace(recipe.Name)
	if recipe.Name == "" || recipe.UserID == "" || recipe.PanelID == "" {
		return fmt.Errorf("stored recipe needs name, user and panel | %w", domain.ErrInvalidInput)
	}
	if len(recipe.Slots) == 0 {
		return fmt.Errorf("stored recipe has no slots | %w", domain.ErrInvalidInput)
	}
	if err := s.repo.SaveStoredRecipe(ctx, recipe); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgStoreRecipe, err)
	}
	logger.FromContext(ctx).Info(LogMsgStoredRecipeSaved, "user_id", recipe.UserID, "stored_recipe_id", recipe.ID)
	return nil
}

func (s *service) ListStoredRecipes(ctx context.Context, userID, panelID string) ([]domain.StoredRecipe, error) {
	return s.repo.ListStoredRecipes(ctx, userID, panelID)
}

func (s *service) GetStoredRecipe(ctx context.Context, userID, id string) (*domain.StoredRecipe, error) {
	return s.repo.GetStoredRecipe(ctx, userID, id)
}

func (s *service) DeleteStoredRecipe(ctx context.Context, userID, id string) error {
	if err := s.repo.DeleteStoredRecipe(ctx, userID, id); err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgStoredRecipeDeleted, "user_id", userID, "stored_recipe_id", id)
	return nil
}
