package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/osse101/CraftPanel_Go/internal/domain"
)

// GetUnlockedRecipes returns a user's unlock ledger in unlock order
func (s *Store) GetUnlockedRecipes(ctx context.Context, userID string) ([]domain.UnlockedRecipe, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT recipe_id, name, img, ownership FROM unlocked_recipes
		WHERE user_id = $1 ORDER BY unlocked_at, recipe_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUnlocked, err)
	}
	defer rows.Close()

	var out []domain.UnlockedRecipe
	for rows.Next() {
		var (
			r         domain.UnlockedRecipe
			ownership []byte
		)
		if err := rows.Scan(&r.ID, &r.Name, &r.Img, &ownership); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUnlocked, err)
		}
		if err := decodeJSON(ownership, &r.Ownership); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUnlocked, err)
	}
	return out, nil
}

// UnlockRecipe adds a recipe to the user's ledger; existing entries are kept
func (s *Store) UnlockRecipe(ctx context.Context, userID string, recipe domain.UnlockedRecipe) error {
	ownership, err := encodeJSON(recipe.Ownership, "{}")
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO unlocked_recipes (user_id, recipe_id, name, img, ownership)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, recipe_id) DO NOTHING`,
		userID, recipe.ID, recipe.Name, recipe.Img, ownership)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUnlockRecipe, err)
	}
	return nil
}

const storedRecipeColumns = "stored_recipe_id, user_id, panel_id, name, slots, modifiers, created_at"

func scanStoredRecipe(row pgx.Row) (*domain.StoredRecipe, error) {
	var (
		r         domain.StoredRecipe
		slots     []byte
		modifiers []byte
	)
	if err := row.Scan(&r.ID, &r.UserID, &r.PanelID, &r.Name, &slots, &modifiers, &r.CreatedAt); err != nil {
		return nil, err
	}
	if err := decodeJSON(slots, &r.Slots); err != nil {
		return nil, err
	}
	if err := decodeJSON(modifiers, &r.Modifiers); err != nil {
		return nil, err
	}
	return &r, nil
}

// ListStoredRecipes returns a user's snapshots, optionally narrowed to one panel
func (s *Store) ListStoredRecipes(ctx context.Context, userID, panelID string) ([]domain.StoredRecipe, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+storedRecipeColumns+` FROM stored_recipes
		WHERE user_id = $1 AND ($2 = '' OR panel_id = $2)
		ORDER BY created_at, stored_recipe_id`, userID, panelID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListStored, err)
	}
	defer rows.Close()

	var out []domain.StoredRecipe
	for rows.Next() {
		r, err := scanStoredRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListStored, err)
		}
		out = append(out, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListStored, err)
	}
	return out, nil
}

func (s *Store) GetStoredRecipe(ctx context.Context, userID, id string) (*domain.StoredRecipe, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT `+storedRecipeColumns+` FROM stored_recipes
		WHERE stored_recipe_id = $1 AND user_id = $2`, id, userID)
	r, err := scanStoredRecipe(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("stored recipe %s | %w", id, domain.ErrStoredRecipeNotFound)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetStored, err)
	}
	return r, nil
}

// SaveStoredRecipe inserts a snapshot, assigning its ID and creation time
func (s *Store) SaveStoredRecipe(ctx context.Context, recipe *domain.StoredRecipe) error {
	if recipe.ID == "" {
		recipe.ID = uuid.NewString()
	}
	slots, err := encodeJSON(recipe.Slots, "[]")
	if err != nil {
		return err
	}
	modifiers, err := encodeJSON(recipe.Modifiers, "[]")
	if err != nil {
		return err
	}
	err = s.pool.QueryRow(ctx, `
		INSERT INTO stored_recipes (stored_recipe_id, user_id, panel_id, name, slots, modifiers)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (stored_recipe_id) DO UPDATE SET
			name = EXCLUDED.name, slots = EXCLUDED.slots, modifiers = EXCLUDED.modifiers
		RETURNING created_at`,
		recipe.ID, recipe.UserID, recipe.PanelID, recipe.Name, slots, modifiers).Scan(&recipe.CreatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveStored, err)
	}
	return nil
}

func (s *Store) DeleteStoredRecipe(ctx context.Context, userID, id string) error {
	tag, err := s.pool.Exec(ctx, "DELETE FROM stored_recipes WHERE stored_recipe_id = $1 AND user_id = $2", id, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteStored, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("stored recipe %s | %w", id, domain.ErrStoredRecipeNotFound)
	}
	return nil
}
