// Package postgres implements the crafting and ledger repositories on pgx.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CraftPanel_Go/internal/database"
	"github.com/osse101/CraftPanel_Go/internal/domain"
	"github.com/osse101/CraftPanel_Go/internal/pathutil"
	"github.com/osse101/CraftPanel_Go/internal/repository"
)

// Store implements repository.Store for PostgreSQL
type Store struct {
	pool     *pgxpool.Pool
	quantity pathutil.Accessor
}

var _ repository.Store = (*Store)(nil)

// NewStore creates a new Store. Quantity updates are written at quantityPath
// inside the item data document.
func NewStore(pool *pgxpool.Pool, quantityPath string) *Store {
	return &Store{
		pool:     pool,
		quantity: pathutil.NewAccessor(quantityPath),
	}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Store) Close() {
	s.pool.Close()
}

// GetItem retrieves an item by UUID
func (s *Store) GetItem(ctx context.Context, uuid string) (*domain.Item, error) {
	row := s.pool.QueryRow(ctx, "SELECT "+itemColumns+" FROM items WHERE item_uuid = $1", uuid)
	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("item %s | %w", uuid, domain.ErrItemNotFound)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetItem, err)
	}
	return item, nil
}

// ListItems returns every item held by ownerID ordered by name
func (s *Store) ListItems(ctx context.Context, ownerID string) ([]domain.Item, error) {
	rows, err := s.pool.Query(ctx, "SELECT "+itemColumns+" FROM items WHERE owner_id = $1 ORDER BY name, item_uuid", ownerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListItems, err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListItems, err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListItems, err)
	}
	return items, nil
}

// UpsertItem inserts or replaces an item document
func (s *Store) UpsertItem(ctx context.Context, item *domain.Item) error {
	args, err := itemArgs(item)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO items (`+itemColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (item_uuid) DO UPDATE SET
			name = EXCLUDED.name, img = EXCLUDED.img, item_type = EXCLUDED.item_type,
			folder = EXCLUDED.folder, owner_id = EXCLUDED.owner_id,
			elements = EXCLUDED.elements, data = EXCLUDED.data`, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertDocument, err)
	}
	return nil
}

// GetRollTable retrieves a roll table by UUID
func (s *Store) GetRollTable(ctx context.Context, uuid string) (*domain.RollTable, error) {
	var (
		table   domain.RollTable
		results []byte
	)
	err := s.pool.QueryRow(ctx, "SELECT table_uuid, name, results FROM roll_tables WHERE table_uuid = $1", uuid).
		Scan(&table.UUID, &table.Name, &results)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("roll table %s | %w", uuid, domain.ErrRollTableNotFound)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetRollTable, err)
	}
	if err := decodeJSON(results, &table.Results); err != nil {
		return nil, err
	}
	return &table, nil
}

// UpsertRollTable inserts or replaces a roll table
func (s *Store) UpsertRollTable(ctx context.Context, table *domain.RollTable) error {
	results, err := encodeJSON(table.Results, "[]")
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO roll_tables (table_uuid, name, results) VALUES ($1, $2, $3)
		ON CONFLICT (table_uuid) DO UPDATE SET name = EXCLUDED.name, results = EXCLUDED.results`,
		table.UUID, table.Name, results)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertDocument, err)
	}
	return nil
}

// GetUser retrieves a user by ID
func (s *Store) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	var u domain.User
	err := s.pool.QueryRow(ctx, "SELECT user_id, name, privileged, actor_id FROM users WHERE user_id = $1", userID).
		Scan(&u.ID, &u.Name, &u.Privileged, &u.ActorID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user %s | %w", userID, domain.ErrUserNotFound)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUser, err)
	}
	return &u, nil
}

// UpsertUser inserts or replaces a user
func (s *Store) UpsertUser(ctx context.Context, u *domain.User) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO users (user_id, name, privileged, actor_id) VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE SET
			name = EXCLUDED.name, privileged = EXCLUDED.privileged, actor_id = EXCLUDED.actor_id`,
		u.ID, u.Name, u.Privileged, u.ActorID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertDocument, err)
	}
	return nil
}

// GetActor retrieves an actor by ID
func (s *Store) GetActor(ctx context.Context, actorID string) (*domain.Actor, error) {
	var a domain.Actor
	err := s.pool.QueryRow(ctx, "SELECT actor_id, name, user_id FROM actors WHERE actor_id = $1", actorID).
		Scan(&a.ID, &a.Name, &a.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("actor %s | %w", actorID, domain.ErrActorNotFound)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetActor, err)
	}
	return &a, nil
}

// UpsertActor inserts or replaces an actor
func (s *Store) UpsertActor(ctx context.Context, a *domain.Actor) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO actors (actor_id, name, user_id) VALUES ($1, $2, $3)
		ON CONFLICT (actor_id) DO UPDATE SET name = EXCLUDED.name, user_id = EXCLUDED.user_id`,
		a.ID, a.Name, a.UserID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertDocument, err)
	}
	return nil
}

// BeginTx starts a pgx transaction for a craft commit
func (s *Store) BeginTx(ctx context.Context) (repository.CraftingTx, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTx, err)
	}
	return &craftingTx{tx: tx, quantity: s.quantity}, nil
}

// ApplySeed upserts every document of seed
func (s *Store) ApplySeed(ctx context.Context, seed *database.Seed) error {
	for i := range seed.Users {
		if err := s.UpsertUser(ctx, &seed.Users[i]); err != nil {
			return err
		}
	}
	for i := range seed.Actors {
		if err := s.UpsertActor(ctx, &seed.Actors[i]); err != nil {
			return err
		}
	}
	for i := range seed.Items {
		if err := s.UpsertItem(ctx, &seed.Items[i]); err != nil {
			return err
		}
	}
	for i := range seed.RollTables {
		if err := s.UpsertRollTable(ctx, &seed.RollTables[i]); err != nil {
			return err
		}
	}
	return nil
}
