// Package crafting runs crafting sessions: placing ingredients into panel
// slots, selecting modifiers and committing crafts against the item store.
package crafting

import (
	"context"
	"fmt"

	"github.com/osse101/CraftPanel_Go/internal/domain"
	"github.com/osse101/CraftPanel_Go/internal/effect"
	"github.com/osse101/CraftPanel_Go/internal/event"
	"github.com/osse101/CraftPanel_Go/internal/ledger"
	"github.com/osse101/CraftPanel_Go/internal/logger"
	"github.com/osse101/CraftPanel_Go/internal/metrics"
	"github.com/osse101/CraftPanel_Go/internal/modifier"
	"github.com/osse101/CraftPanel_Go/internal/panel"
	"github.com/osse101/CraftPanel_Go/internal/pathutil"
	"github.com/osse101/CraftPanel_Go/internal/recipe"
	"github.com/osse101/CraftPanel_Go/internal/repository"
	"github.com/osse101/CraftPanel_Go/internal/script"
	"github.com/osse101/CraftPanel_Go/internal/utils"
)

// Deps are the collaborators of the crafting service. Bus, Ledger and
// CustomChange may be nil.
type Deps struct {
	Store        repository.Crafting
	Ledger       ledger.Service
	Catalog      *panel.Catalog
	Manager      *panel.Manager
	Bus          event.Bus
	Scripts      script.Provider
	CustomChange effect.CustomFunc
	QuantityPath string
	Rand         func() float64
}

// Service opens crafting sessions and routes every action to the session
// it targets, one action per session at a time.
type Service struct {
	store    repository.Crafting
	ledger   ledger.Service
	catalog  *panel.Catalog
	manager  *panel.Manager
	bus      event.Bus
	quantity pathutil.Accessor

	invoker  *script.Invoker
	gate     *recipe.Gate
	resolver *recipe.Resolver
	rewriter *modifier.Rewriter
	rnd      func() float64
}

// NewService wires a Service
func NewService(d Deps) *Service {
	rnd := d.Rand
	if rnd == nil {
		rnd = utils.RandomFloat
	}
	catalog := d.Catalog
	if catalog == nil {
		catalog = panel.NewCatalog()
	}
	manager := d.Manager
	if manager == nil {
		manager = panel.NewManager()
	}

	invoker := script.NewInvoker(d.Scripts, reportScriptError)
	return &Service{
		store:    d.Store,
		ledger:   d.Ledger,
		catalog:  catalog,
		manager:  manager,
		bus:      d.Bus,
		quantity: pathutil.NewAccessor(d.QuantityPath),
		invoker:  invoker,
		gate:     recipe.NewGate(invoker),
		resolver: recipe.NewResolver(rnd),
		rewriter: modifier.NewRewriter(effect.NewApplier(d.CustomChange), invoker),
		rnd:      rnd,
	}
}

// reportScriptError counts the failure and turns it into a notice for the
// operation running on ctx.
func reportScriptError(ctx context.Context, site string, _ error) {
	metrics.RecordScriptError(site)
	if sink := sinkFrom(ctx); sink != nil {
		sink.warn(fmt.Sprintf(MsgScriptError, site))
	}
}

// Panels lists the panels userID may open
func (s *Service) Panels(ctx context.Context, userID string) ([]*domain.Panel, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGetUser, err)
	}
	var out []*domain.Panel
	for _, p := range s.catalog.List() {
		if canOpen(p, user) {
			out = append(out, p)
		}
	}
	return out, nil
}

func canOpen(p *domain.Panel, user *domain.User) bool {
	if user.Privileged || len(p.Ownership) == 0 {
		return true
	}
	return domain.LevelFor(p.Ownership, user.ID) >= domain.OwnershipLimited
}

// Open returns the view of userID's session on panelID, opening the
// session when it does not exist yet.
func (s *Service) Open(ctx context.Context, panelID, userID string) (*View, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgOpenCalled, "panel", panelID, "user_id", userID)

	p, err := s.catalog.Get(panelID)
	if err != nil {
		return nil, err
	}
	key := panel.KeyFor(p, userID)

	_, _, err = s.manager.Open(ctx, key, func() (panel.Session, error) {
		return s.newSession(ctx, p, userID)
	})
	if err != nil {
		return nil, err
	}

	var view *View
	err = s.with(ctx, panelID, userID, func(ctx context.Context, sess *Session) error {
		view = sess.View()
		return nil
	})
	return view, err
}

func (s *Service) newSession(ctx context.Context, p *domain.Panel, userID string) (*Session, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGetUser, err)
	}
	if !canOpen(p, user) {
		return nil, fmt.Errorf("user '%s' may not open panel '%s' | %w", userID, p.ID, domain.ErrPanelNotFound)
	}

	var actor *domain.Actor
	if user.ActorID != "" {
		if actor, err = s.store.GetActor(ctx, user.ActorID); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgGetActor, err)
		}
	}

	sess := NewSession(s, p, *user, actor)
	if err := sess.Recompute(ctx); err != nil {
		return nil, err
	}
	return sess, nil
}

// Close ends userID's session on panelID
func (s *Service) Close(ctx context.Context, panelID, userID string) error {
	p, err := s.catalog.Get(panelID)
	if err != nil {
		return err
	}
	return s.manager.Close(ctx, panel.KeyFor(p, userID))
}

// View returns the current state of a session
func (s *Service) View(ctx context.Context, panelID, userID string) (*View, error) {
	var view *View
	err := s.with(ctx, panelID, userID, func(ctx context.Context, sess *Session) error {
		view = sess.View()
		return nil
	})
	return view, err
}

// Place puts quantity units of itemUUID into a slot of the session
func (s *Service) Place(ctx context.Context, panelID, userID string, slot int, itemUUID string, quantity int) (*View, error) {
	var view *View
	err := s.with(ctx, panelID, userID, func(ctx context.Context, sess *Session) error {
		if err := sess.Place(ctx, slot, itemUUID, quantity); err != nil {
			return err
		}
		view = sess.View()
		return nil
	})
	return view, err
}

// Remove empties a slot of the session
func (s *Service) Remove(ctx context.Context, panelID, userID string, slot int) (*View, error) {
	var view *View
	err := s.with(ctx, panelID, userID, func(ctx context.Context, sess *Session) error {
		if err := sess.Remove(ctx, slot); err != nil {
			return err
		}
		view = sess.View()
		return nil
	})
	return view, err
}

// ToggleModifier selects or deselects a modifier. A rejected selection is
// returned as a value alongside the unchanged view.
func (s *Service) ToggleModifier(ctx context.Context, panelID, userID, modifierID string) (*View, modifier.Rejection, error) {
	var view *View
	var rejection modifier.Rejection
	err := s.with(ctx, panelID, userID, func(ctx context.Context, sess *Session) error {
		rejection = sess.ToggleModifier(ctx, modifierID)
		view = sess.View()
		return nil
	})
	return view, rejection, err
}

// Craft runs a craft on the session
func (s *Service) Craft(ctx context.Context, panelID, userID string) (*Outcome, error) {
	var out *Outcome
	err := s.with(ctx, panelID, userID, func(ctx context.Context, sess *Session) error {
		var err error
		out, err = sess.Craft(ctx)
		return err
	})
	return out, err
}

// StoreRecipe snapshots the session's slots and modifiers under name
func (s *Service) StoreRecipe(ctx context.Context, panelID, userID, name string) (*domain.StoredRecipe, error) {
	var stored *domain.StoredRecipe
	err := s.with(ctx, panelID, userID, func(ctx context.Context, sess *Session) error {
		var err error
		stored, err = sess.StoreRecipe(ctx, name)
		return err
	})
	return stored, err
}

// RecallRecipe refills the session from a stored snapshot
func (s *Service) RecallRecipe(ctx context.Context, panelID, userID, storedID string) (*View, error) {
	var view *View
	err := s.with(ctx, panelID, userID, func(ctx context.Context, sess *Session) error {
		if err := sess.RecallRecipe(ctx, storedID); err != nil {
			return err
		}
		view = sess.View()
		return nil
	})
	return view, err
}

// StoredRecipes lists userID's snapshots for panelID
func (s *Service) StoredRecipes(ctx context.Context, panelID, userID string) ([]domain.StoredRecipe, error) {
	if s.ledger == nil {
		return nil, nil
	}
	return s.ledger.ListStoredRecipes(ctx, userID, panelID)
}

// DeleteStoredRecipe removes one of userID's snapshots
func (s *Service) DeleteStoredRecipe(ctx context.Context, userID, storedID string) error {
	if s.ledger == nil {
		return fmt.Errorf("stored recipe '%s' | %w", storedID, domain.ErrStoredRecipeNotFound)
	}
	return s.ledger.DeleteStoredRecipe(ctx, userID, storedID)
}

// with runs fn on the session while holding its lock.
func (s *Service) with(ctx context.Context, panelID, userID string, fn func(context.Context, *Session) error) error {
	p, err := s.catalog.Get(panelID)
	if err != nil {
		return err
	}
	return s.manager.With(panel.KeyFor(p, userID), func(ps panel.Session) error {
		sess, ok := ps.(*Session)
		if !ok {
			return fmt.Errorf("session '%s' has unexpected type | %w", ps.Key(), domain.ErrSessionNotFound)
		}
		return fn(ctx, sess)
	})
}
