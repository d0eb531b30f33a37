package panel

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CraftPanel_Go/internal/domain"
)

type fakeSession struct {
	key    Key
	closed bool
}

func (f *fakeSession) Key() Key { return f.key }
func (f *fakeSession) Close()   { f.closed = true }

func TestManager_OpenReusesSession(t *testing.T) {
	m := NewManager()
	ctx := context.Background()
	key := KeyFor(&domain.Panel{ID: "forge", Kind: domain.PanelRecipe}, "u1")

	calls := 0
	create := func() (Session, error) {
		calls++
		return &fakeSession{key: key}, nil
	}

	first, created, err := m.Open(ctx, key, create)
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := m.Open(ctx, key, create)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Same(t, first, second)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "recipe/forge/u1", key.String())
}

func TestManager_OpenCreateError(t *testing.T) {
	m := NewManager()
	boom := errors.New("boom")

	_, _, err := m.Open(context.Background(), Key{PanelID: "p"}, func() (Session, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, m.Len())
}

func TestManager_Close(t *testing.T) {
	m := NewManager()
	ctx := context.Background()
	key := Key{Kind: domain.PanelBlend, PanelID: "cauldron", UserID: "u1"}
	s := &fakeSession{key: key}

	_, _, err := m.Open(ctx, key, func() (Session, error) { return s, nil })
	require.NoError(t, err)

	require.NoError(t, m.Close(ctx, key))
	assert.True(t, s.closed)

	_, err = m.Get(key)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.ErrorIs(t, m.Close(ctx, key), domain.ErrSessionNotFound)
}

func TestManager_WithSerializes(t *testing.T) {
	m := NewManager()
	ctx := context.Background()
	key := Key{PanelID: "p", UserID: "u"}
	_, _, err := m.Open(ctx, key, func() (Session, error) { return &fakeSession{key: key}, nil })
	require.NoError(t, err)

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.With(key, func(Session) error {
				counter++
				return nil
			})
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, counter)

	err = m.With(Key{PanelID: "other"}, func(Session) error { return nil })
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestManager_Keys(t *testing.T) {
	m := NewManager()
	ctx := context.Background()
	for _, u := range []string{"b", "a"} {
		key := Key{Kind: domain.PanelRecipe, PanelID: "p", UserID: u}
		_, _, err := m.Open(ctx, key, func() (Session, error) { return &fakeSession{key: key}, nil })
		require.NoError(t, err)
	}
	keys := m.Keys()
	require.Len(t, keys, 2)
	assert.Equal(t, "a", keys[0].UserID)
}
