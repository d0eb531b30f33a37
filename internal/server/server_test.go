package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CraftPanel_Go/internal/crafting"
	"github.com/osse101/CraftPanel_Go/internal/database"
	"github.com/osse101/CraftPanel_Go/internal/database/memory"
	"github.com/osse101/CraftPanel_Go/internal/domain"
	"github.com/osse101/CraftPanel_Go/internal/event"
	"github.com/osse101/CraftPanel_Go/internal/eventlog"
	"github.com/osse101/CraftPanel_Go/internal/ledger"
	"github.com/osse101/CraftPanel_Go/internal/panel"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	seed := &database.Seed{
		Users:  []domain.User{{ID: "u1", Name: "Alice", ActorID: "a1"}},
		Actors: []domain.Actor{{ID: "a1", Name: "Smith", UserID: "u1"}},
		Items: []domain.Item{
			{UUID: "Item.ember", Name: "Ember", OwnerID: "a1",
				Elements: []domain.Element{{ID: "fire", Num: 2}}, Data: json.RawMessage(`{"system":{"quantity":3}}`)},
			{UUID: "Item.potion", Name: "Fire Potion", Data: json.RawMessage(`{"system":{"quantity":1}}`)},
		},
	}
	forge := &domain.Panel{
		ID:    "forge",
		Name:  "Forge",
		Kind:  domain.PanelRecipe,
		Slots: []domain.Slot{{ID: "main", IsNecessary: true, IsConsumed: true}},
		Recipes: []domain.Recipe{{
			ID:          "potion",
			Name:        "Fire Potion",
			Ingredients: []domain.ElementRequirement{{ID: "fire", Type: domain.RequirementElement, UseMin: true, Min: 2}},
			Results:     []domain.RecipeResult{{UUID: "Item.potion", Quantity: 1, Type: domain.ResultItem}},
		}},
	}

	store := memory.NewStore(seed, "")
	bus := event.NewMemoryBus()
	audit := eventlog.NewService(store)
	require.NoError(t, audit.Subscribe(bus))
	catalog := panel.NewCatalog(forge)
	svc := crafting.NewService(crafting.Deps{
		Store:   store,
		Ledger:  ledger.NewService(store, bus, 8, time.Minute),
		Catalog: catalog,
		Bus:     bus,
	})
	return NewRouter(Options{APIKey: "k", Version: "test", PanelCount: catalog.Len, Audit: audit}, svc)
}

func call(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(HeaderAPIKey, "k")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_CraftFlow(t *testing.T) {
	r := newTestRouter(t)

	rec := call(r, http.MethodGet, "/api/v1/panels?user_id=u1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"forge"`)

	rec = call(r, http.MethodPost, "/api/v1/panels/forge/sessions", `{"user_id":"u1"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = call(r, http.MethodPost, "/api/v1/panels/forge/sessions/u1/craft", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = call(r, http.MethodPut, "/api/v1/panels/forge/sessions/u1/slots/0", `{"item_uuid":"Item.ember","quantity":1}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"matched":true`)

	rec = call(r, http.MethodPost, "/api/v1/panels/forge/sessions/u1/craft", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "Produced: 1 × Fire Potion")

	rec = call(r, http.MethodGet, "/api/v1/events?user_id=u1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "craft.completed")

	rec = call(r, http.MethodDelete, "/api/v1/panels/forge/sessions/u1", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = call(r, http.MethodGet, "/api/v1/panels/forge/sessions/u1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_RequiresKey(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/panels?user_id=u1", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_VersionAndReadiness(t *testing.T) {
	r := newTestRouter(t)

	rec := call(r, http.MethodGet, "/version", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"panels":1`)

	rec = call(r, http.MethodGet, "/readyz", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = call(r, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
