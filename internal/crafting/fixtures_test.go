package crafting

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/osse101/CraftPanel_Go/internal/database"
	"github.com/osse101/CraftPanel_Go/internal/database/memory"
	"github.com/osse101/CraftPanel_Go/internal/domain"
	"github.com/osse101/CraftPanel_Go/internal/event"
	"github.com/osse101/CraftPanel_Go/internal/ledger"
	"github.com/osse101/CraftPanel_Go/internal/panel"
	"github.com/osse101/CraftPanel_Go/internal/pathutil"
	"github.com/osse101/CraftPanel_Go/internal/script"
)

func qtyData(q int) json.RawMessage {
	return json.RawMessage(fmt.Sprintf(`{"system":{"quantity":%d}}`, q))
}

func testSeed() *database.Seed {
	return &database.Seed{
		Users: []domain.User{
			{ID: "u1", Name: "Alice", ActorID: "a1"},
			{ID: "u2", Name: "Bob"},
			{ID: "gm", Name: "Game Master", Privileged: true, ActorID: "a1"},
		},
		Actors: []domain.Actor{{ID: "a1", Name: "Smith", UserID: "u1"}},
		Items: []domain.Item{
			{UUID: "Item.ember", Name: "Ember", Type: "loot", Folder: "fire", OwnerID: "a1",
				Elements: []domain.Element{{ID: "fire", Num: 3}}, Data: qtyData(2)},
			{UUID: "Item.ash", Name: "Ash", Type: "loot", OwnerID: "a1",
				Elements: []domain.Element{{ID: "fire", Num: 1}}, Data: qtyData(5)},
			{UUID: "Item.stranger", Name: "Stranger Ember", OwnerID: "a9",
				Elements: []domain.Element{{ID: "fire", Num: 9}}, Data: qtyData(1)},
			{UUID: "Item.potion", Name: "Fire Potion", Type: "consumable",
				Data: json.RawMessage(`{"system":{"quantity":1,"potency":1}}`)},
			{UUID: "Item.gem", Name: "Gem", Type: "loot", Data: qtyData(1)},
		},
		RollTables: []domain.RollTable{
			{UUID: "RollTable.loot", Name: "Loot", Results: []domain.RollTableResult{
				{DocumentCollection: "Item", DocumentID: "gem", Weight: 1},
			}},
			{UUID: "RollTable.broken", Name: "Broken", Results: []domain.RollTableResult{
				{DocumentCollection: "Item", DocumentID: "missing", Weight: 1},
			}},
		},
	}
}

// forgePanel: one necessary consumed slot, one optional consumed slot and
// a recipe turning fire >= 2 into a potion.
func forgePanel() *domain.Panel {
	return &domain.Panel{
		ID:   "forge",
		Name: "Forge",
		Kind: domain.PanelRecipe,
		Slots: []domain.Slot{
			{ID: "main", IsNecessary: true, IsConsumed: true},
			{ID: "extra", IsConsumed: true},
		},
		Recipes: []domain.Recipe{
			{
				ID:          "potion",
				Name:        "Fire Potion",
				Ingredients: []domain.ElementRequirement{{ID: "fire", Type: domain.RequirementElement, UseMin: true, Min: 2}},
				Results:     []domain.RecipeResult{{UUID: "Item.potion", Quantity: 1, Type: domain.ResultItem}},
			},
		},
		Cost: domain.CostConfig{Base: 5},
		Modifiers: []domain.Modifier{
			{ID: "pricey", Name: "Pricey", Cost: 10},
			{ID: "potent", Name: "Potent", Cost: 1, Changes: []domain.Change{
				{Key: "system.potency", Mode: domain.ChangeAdd, Value: "2"},
			}},
		},
	}
}

type harness struct {
	t      *testing.T
	store  *memory.Store
	ledger ledger.Service
	bus    *event.MemoryBus
	funcs  *script.FuncProvider
	svc    *Service
	qty    pathutil.Accessor
}

func newHarness(t *testing.T, panels ...*domain.Panel) *harness {
	t.Helper()
	store := memory.NewStore(testSeed(), "")
	bus := event.NewMemoryBus()
	funcs := script.NewFuncProvider()
	led := ledger.NewService(store, bus, 16, time.Minute)
	svc := NewService(Deps{
		Store:   store,
		Ledger:  led,
		Catalog: panel.NewCatalog(panels...),
		Bus:     bus,
		Scripts: &script.Mux{Funcs: funcs, Fallback: script.NewLuaProvider()},
		Rand:    func() float64 { return 0 },
	})
	return &harness{t: t, store: store, ledger: led, bus: bus, funcs: funcs, svc: svc, qty: pathutil.NewAccessor("")}
}

// session opens a session directly, bypassing the manager.
func (h *harness) session(p *domain.Panel, userID string) *Session {
	h.t.Helper()
	sess, err := h.svc.newSession(context.Background(), p, userID)
	require.NoError(h.t, err)
	return sess
}

func (h *harness) quantity(uuid string) int {
	h.t.Helper()
	item, err := h.store.GetItem(context.Background(), uuid)
	require.NoError(h.t, err)
	return h.qty.Quantity(item)
}

func (h *harness) exists(uuid string) bool {
	_, err := h.store.GetItem(context.Background(), uuid)
	return err == nil
}

func (h *harness) inventory(ownerID string) []domain.Item {
	h.t.Helper()
	items, err := h.store.ListItems(context.Background(), ownerID)
	require.NoError(h.t, err)
	return items
}

func (h *harness) capture(eventType event.Type) *[]event.Event {
	var got []event.Event
	h.bus.Subscribe(eventType, func(_ context.Context, evt event.Event) error {
		got = append(got, evt)
		return nil
	})
	return &got
}
