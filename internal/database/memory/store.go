// Package memory provides an in-process crafting store used for local runs
// and tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/CraftPanel_Go/internal/database"
	"github.com/osse101/CraftPanel_Go/internal/domain"
	"github.com/osse101/CraftPanel_Go/internal/eventlog"
	"github.com/osse101/CraftPanel_Go/internal/pathutil"
	"github.com/osse101/CraftPanel_Go/internal/repository"
)

// Store keeps every document in maps guarded by one mutex.
type Store struct {
	mu sync.RWMutex

	users      map[string]domain.User
	actors     map[string]domain.Actor
	items      map[string]*domain.Item
	rollTables map[string]domain.RollTable

	unlocked map[string][]domain.UnlockedRecipe
	stored   map[string]domain.StoredRecipe

	events      []eventlog.Event
	nextEventID int64

	quantity pathutil.Accessor
	now      func() time.Time
}

var (
	_ repository.Store    = (*Store)(nil)
	_ eventlog.Repository = (*Store)(nil)
)

// NewStore creates a store filled from seed, which may be nil. Quantity
// updates are written at quantityPath.
func NewStore(seed *database.Seed, quantityPath string) *Store {
	s := &Store{
		users:      make(map[string]domain.User),
		actors:     make(map[string]domain.Actor),
		items:      make(map[string]*domain.Item),
		rollTables: make(map[string]domain.RollTable),
		unlocked:   make(map[string][]domain.UnlockedRecipe),
		stored:     make(map[string]domain.StoredRecipe),
		quantity:   pathutil.NewAccessor(quantityPath),
		now:        time.Now,
	}
	if seed == nil {
		return s
	}
	for _, u := range seed.Users {
		s.users[u.ID] = u
	}
	for _, a := range seed.Actors {
		s.actors[a.ID] = a
	}
	for i := range seed.Items {
		s.PutItem(&seed.Items[i])
	}
	for _, t := range seed.RollTables {
		s.rollTables[t.UUID] = t
	}
	return s
}

// PutItem inserts or replaces an item.
func (s *Store) PutItem(item *domain.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[item.UUID] = item.Clone()
}

// PutRollTable inserts or replaces a roll table.
func (s *Store) PutRollTable(table domain.RollTable) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rollTables[table.UUID] = table
}

func (s *Store) Ping(ctx context.Context) error { return nil }

func (s *Store) Close() {}

func (s *Store) GetItem(ctx context.Context, uuid string) (*domain.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.items[uuid]
	if !ok {
		return nil, fmt.Errorf("item %s | %w", uuid, domain.ErrItemNotFound)
	}
	return item.Clone(), nil
}

func (s *Store) ListItems(ctx context.Context, ownerID string) ([]domain.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Item
	for _, item := range s.items {
		if item.OwnerID == ownerID {
			out = append(out, *item.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].UUID < out[j].UUID
	})
	return out, nil
}

func (s *Store) GetRollTable(ctx context.Context, uuid string) (*domain.RollTable, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.rollTables[uuid]
	if !ok {
		return nil, fmt.Errorf("roll table %s | %w", uuid, domain.ErrRollTableNotFound)
	}
	return &t, nil
}

func (s *Store) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[userID]
	if !ok {
		return nil, fmt.Errorf("user %s | %w", userID, domain.ErrUserNotFound)
	}
	return &u, nil
}

func (s *Store) GetActor(ctx context.Context, actorID string) (*domain.Actor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.actors[actorID]
	if !ok {
		return nil, fmt.Errorf("actor %s | %w", actorID, domain.ErrActorNotFound)
	}
	return &a, nil
}

// BeginTx returns a transaction that stages writes until Commit.
func (s *Store) BeginTx(ctx context.Context) (repository.CraftingTx, error) {
	return &tx{store: s}, nil
}

func (s *Store) GetUnlockedRecipes(ctx context.Context, userID string) ([]domain.UnlockedRecipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.UnlockedRecipe(nil), s.unlocked[userID]...), nil
}

func (s *Store) UnlockRecipe(ctx context.Context, userID string, recipe domain.UnlockedRecipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.unlocked[userID] {
		if r.ID == recipe.ID {
			return nil
		}
	}
	s.unlocked[userID] = append(s.unlocked[userID], recipe)
	return nil
}

func (s *Store) ListStoredRecipes(ctx context.Context, userID, panelID string) ([]domain.StoredRecipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.StoredRecipe
	for _, r := range s.stored {
		if r.UserID == userID && (panelID == "" || r.PanelID == panelID) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Store) GetStoredRecipe(ctx context.Context, userID, id string) (*domain.StoredRecipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.stored[id]
	if !ok || r.UserID != userID {
		return nil, fmt.Errorf("stored recipe %s | %w", id, domain.ErrStoredRecipeNotFound)
	}
	return &r, nil
}

func (s *Store) SaveStoredRecipe(ctx context.Context, recipe *domain.StoredRecipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if recipe.ID == "" {
		recipe.ID = uuid.NewString()
	}
	if recipe.CreatedAt.IsZero() {
		recipe.CreatedAt = s.now().UTC()
	}
	s.stored[recipe.ID] = *recipe
	return nil
}

func (s *Store) DeleteStoredRecipe(ctx context.Context, userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.stored[id]
	if !ok || r.UserID != userID {
		return fmt.Errorf("stored recipe %s | %w", id, domain.ErrStoredRecipeNotFound)
	}
	delete(s.stored, id)
	return nil
}
