package crafting

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CraftPanel_Go/internal/domain"
	"github.com/osse101/CraftPanel_Go/internal/modifier"
)

func TestService_SessionLifecycle(t *testing.T) {
	ctx := context.Background()
	p := forgePanel()
	h := newHarness(t, p)

	view, err := h.svc.Open(ctx, "forge", "u1")
	require.NoError(t, err)
	assert.Equal(t, "Forge", view.PanelName)
	assert.Len(t, view.Slots, 2)
	assert.False(t, view.Communal)

	view, err = h.svc.Place(ctx, "forge", "u1", 0, "Item.ember", 1)
	require.NoError(t, err)
	assert.Equal(t, "Item.ember", view.Slots[0].Item.UUID)

	// Reopening returns the same session.
	view, err = h.svc.Open(ctx, "forge", "u1")
	require.NoError(t, err)
	require.NotNil(t, view.Slots[0].Item)

	view, rejection, err := h.svc.ToggleModifier(ctx, "forge", "u1", "pricey")
	require.NoError(t, err)
	assert.Equal(t, modifier.RejectBudget, rejection)
	assert.NotNil(t, view)

	out, err := h.svc.Craft(ctx, "forge", "u1")
	require.NoError(t, err)
	assert.Len(t, out.Produced, 1)

	require.NoError(t, h.svc.Close(ctx, "forge", "u1"))
	_, err = h.svc.View(ctx, "forge", "u1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestService_SessionsArePerUser(t *testing.T) {
	ctx := context.Background()
	p := forgePanel()
	h := newHarness(t, p)

	_, err := h.svc.Open(ctx, "forge", "u1")
	require.NoError(t, err)
	_, err = h.svc.Open(ctx, "forge", "gm")
	require.NoError(t, err)

	_, err = h.svc.Place(ctx, "forge", "u1", 0, "Item.ember", 1)
	require.NoError(t, err)

	view, err := h.svc.View(ctx, "forge", "gm")
	require.NoError(t, err)
	assert.Nil(t, view.Slots[0].Item)
}

func TestService_UnknownPanel(t *testing.T) {
	h := newHarness(t, forgePanel())

	_, err := h.svc.Open(context.Background(), "nope", "u1")
	assert.ErrorIs(t, err, domain.ErrPanelNotFound)
}

func TestService_UnknownUser(t *testing.T) {
	h := newHarness(t, forgePanel())

	_, err := h.svc.Open(context.Background(), "forge", "ghost")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestService_PanelsHonorOwnership(t *testing.T) {
	ctx := context.Background()
	open := forgePanel()
	private := forgePanel()
	private.ID = "vault"
	private.Name = "Vault"
	private.Ownership = map[string]domain.OwnershipLevel{
		"u1":                       domain.OwnershipOwner,
		domain.DefaultOwnershipKey: domain.OwnershipNone,
	}
	h := newHarness(t, open, private)

	panels, err := h.svc.Panels(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, panels, 2)

	panels, err = h.svc.Panels(ctx, "u2")
	require.NoError(t, err)
	require.Len(t, panels, 1)
	assert.Equal(t, "forge", panels[0].ID)

	_, err = h.svc.Open(ctx, "vault", "u2")
	assert.ErrorIs(t, err, domain.ErrPanelNotFound)

	panels, err = h.svc.Panels(ctx, "gm")
	require.NoError(t, err)
	assert.Len(t, panels, 2)
}

func TestService_StoredRecipes(t *testing.T) {
	ctx := context.Background()
	p := forgePanel()
	h := newHarness(t, p)

	_, err := h.svc.Open(ctx, "forge", "u1")
	require.NoError(t, err)
	_, err = h.svc.Place(ctx, "forge", "u1", 0, "Item.ember", 1)
	require.NoError(t, err)

	stored, err := h.svc.StoreRecipe(ctx, "forge", "u1", "quick")
	require.NoError(t, err)

	list, err := h.svc.StoredRecipes(ctx, "forge", "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "quick", list[0].Name)

	_, err = h.svc.Remove(ctx, "forge", "u1", 0)
	require.NoError(t, err)
	view, err := h.svc.RecallRecipe(ctx, "forge", "u1", stored.ID)
	require.NoError(t, err)
	assert.Equal(t, "Item.ember", view.Slots[0].Item.UUID)

	require.NoError(t, h.svc.DeleteStoredRecipe(ctx, "u1", stored.ID))
	list, err = h.svc.StoredRecipes(ctx, "forge", "u1")
	require.NoError(t, err)
	assert.Empty(t, list)
}
