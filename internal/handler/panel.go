package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/CraftPanel_Go/internal/crafting"
	"github.com/osse101/CraftPanel_Go/internal/domain"
	"github.com/osse101/CraftPanel_Go/internal/logger"
	"github.com/osse101/CraftPanel_Go/internal/modifier"
)

// URL parameter names
const (
	ParamPanelID    = "panelID"
	ParamUserID     = "userID"
	ParamSlot       = "slot"
	ParamModifierID = "modifierID"
	ParamStoredID   = "storedID"
)

// PanelService is the crafting surface the HTTP layer drives
type PanelService interface {
	Panels(ctx context.Context, userID string) ([]*domain.Panel, error)
	Open(ctx context.Context, panelID, userID string) (*crafting.View, error)
	View(ctx context.Context, panelID, userID string) (*crafting.View, error)
	Close(ctx context.Context, panelID, userID string) error
	Place(ctx context.Context, panelID, userID string, slot int, itemUUID string, quantity int) (*crafting.View, error)
	Remove(ctx context.Context, panelID, userID string, slot int) (*crafting.View, error)
	ToggleModifier(ctx context.Context, panelID, userID, modifierID string) (*crafting.View, modifier.Rejection, error)
	Craft(ctx context.Context, panelID, userID string) (*crafting.Outcome, error)
	StoreRecipe(ctx context.Context, panelID, userID, name string) (*domain.StoredRecipe, error)
	StoredRecipes(ctx context.Context, panelID, userID string) ([]domain.StoredRecipe, error)
	RecallRecipe(ctx context.Context, panelID, userID, storedID string) (*crafting.View, error)
	DeleteStoredRecipe(ctx context.Context, userID, storedID string) error
}

// PanelSummary is one entry of the panel list
type PanelSummary struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Img       string           `json:"img,omitempty"`
	Kind      domain.PanelKind `json:"kind"`
	Slots     int              `json:"slots"`
	Recipes   int              `json:"recipes"`
	Modifiers int              `json:"modifiers"`
}

// OpenSessionRequest opens a session for a user
type OpenSessionRequest struct {
	UserID string `json:"user_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
}

// PlaceRequest puts an item into a slot
type PlaceRequest struct {
	ItemUUID string `json:"item_uuid" validate:"required,docuuid,max=200"`
	Quantity int    `json:"quantity" validate:"min=0,max=1000000"`
}

// StoreRecipeRequest names a snapshot of the session
type StoreRecipeRequest struct {
	Name string `json:"name" validate:"required,max=100,excludesall=\x00\n\r\t"`
}

// ToggleResponse carries the session view and, when the selection was
// refused, the reason.
type ToggleResponse struct {
	View     *crafting.View `json:"view"`
	Rejected bool           `json:"rejected"`
	Reason   string         `json:"reason,omitempty"`
}

// PanelHandlers serves the panel and session routes
type PanelHandlers struct {
	svc PanelService
}

// NewPanelHandlers creates the panel handlers
func NewPanelHandlers(svc PanelService) *PanelHandlers {
	return &PanelHandlers{svc: svc}
}

// Routes mounts the panel routes on r
func (h *PanelHandlers) Routes(r chi.Router) {
	r.Get("/", h.HandleListPanels())
	r.Route("/{panelID}/sessions", func(r chi.Router) {
		r.Post("/", h.HandleOpenSession())
		r.Route("/{userID}", func(r chi.Router) {
			r.Get("/", h.HandleViewSession())
			r.Delete("/", h.HandleCloseSession())
			r.Put("/slots/{slot}", h.HandlePlaceItem())
			r.Delete("/slots/{slot}", h.HandleRemoveItem())
			r.Post("/modifiers/{modifierID}/toggle", h.HandleToggleModifier())
			r.Post("/craft", h.HandleCraft())
			r.Get("/stored", h.HandleListStoredRecipes())
			r.Post("/stored", h.HandleStoreRecipe())
			r.Post("/stored/{storedID}/recall", h.HandleRecallRecipe())
			r.Delete("/stored/{storedID}", h.HandleDeleteStoredRecipe())
		})
	})
}

// HandleListPanels lists the panels a user may open
func (h *PanelHandlers) HandleListPanels() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}

		panels, err := h.svc.Panels(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, OpListPanels, err)
			return
		}

		out := make([]PanelSummary, 0, len(panels))
		for _, p := range panels {
			out = append(out, PanelSummary{
				ID:        p.ID,
				Name:      p.Name,
				Img:       p.Img,
				Kind:      p.Kind,
				Slots:     len(p.Slots),
				Recipes:   len(p.Recipes),
				Modifiers: len(p.Modifiers),
			})
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: out})
	}
}

// HandleOpenSession opens (or reuses) the caller's session on a panel
func (h *PanelHandlers) HandleOpenSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req OpenSessionRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpOpenSession); err != nil {
			return
		}
		panelID := chi.URLParam(r, ParamPanelID)

		view, err := h.svc.Open(r.Context(), panelID, req.UserID)
		if err != nil {
			respondServiceError(w, r, OpOpenSession, err)
			return
		}
		respondJSON(w, http.StatusCreated, view)
	}
}

// HandleViewSession returns the current session view
func (h *PanelHandlers) HandleViewSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := h.svc.View(r.Context(), chi.URLParam(r, ParamPanelID), chi.URLParam(r, ParamUserID))
		if err != nil {
			respondServiceError(w, r, OpViewSession, err)
			return
		}
		respondJSON(w, http.StatusOK, view)
	}
}

// HandleCloseSession ends a session
func (h *PanelHandlers) HandleCloseSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.svc.Close(r.Context(), chi.URLParam(r, ParamPanelID), chi.URLParam(r, ParamUserID)); err != nil {
			respondServiceError(w, r, OpCloseSession, err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgSessionClosed})
	}
}

// HandlePlaceItem puts an item into a slot
func (h *PanelHandlers) HandlePlaceItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slot, ok := GetIntPathParam(r, w, ParamSlot)
		if !ok {
			return
		}
		var req PlaceRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpPlaceItem); err != nil {
			return
		}
		LogRequestFields(logger.FromContext(r.Context()), "slot", slot, "item", req.ItemUUID, "quantity", req.Quantity)

		view, err := h.svc.Place(r.Context(), chi.URLParam(r, ParamPanelID), chi.URLParam(r, ParamUserID), slot, req.ItemUUID, req.Quantity)
		if err != nil {
			respondServiceError(w, r, OpPlaceItem, err)
			return
		}
		respondJSON(w, http.StatusOK, view)
	}
}

// HandleRemoveItem empties a slot
func (h *PanelHandlers) HandleRemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slot, ok := GetIntPathParam(r, w, ParamSlot)
		if !ok {
			return
		}

		view, err := h.svc.Remove(r.Context(), chi.URLParam(r, ParamPanelID), chi.URLParam(r, ParamUserID), slot)
		if err != nil {
			respondServiceError(w, r, OpRemoveItem, err)
			return
		}
		respondJSON(w, http.StatusOK, view)
	}
}

// HandleToggleModifier selects or deselects a modifier. A refused
// selection is not an error: the response says why.
func (h *PanelHandlers) HandleToggleModifier() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, rejection, err := h.svc.ToggleModifier(r.Context(),
			chi.URLParam(r, ParamPanelID), chi.URLParam(r, ParamUserID), chi.URLParam(r, ParamModifierID))
		if err != nil {
			respondServiceError(w, r, OpToggle, err)
			return
		}

		resp := ToggleResponse{View: view}
		if !rejection.OK() {
			resp.Rejected = true
			resp.Reason = rejection.Message()
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

// HandleCraft runs a craft on the session
func (h *PanelHandlers) HandleCraft() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := h.svc.Craft(r.Context(), chi.URLParam(r, ParamPanelID), chi.URLParam(r, ParamUserID))
		if err != nil {
			respondServiceError(w, r, OpCraft, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Message: out.Summary, Data: out})
	}
}

// HandleListStoredRecipes lists the caller's snapshots for the panel
func (h *PanelHandlers) HandleListStoredRecipes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := h.svc.StoredRecipes(r.Context(), chi.URLParam(r, ParamPanelID), chi.URLParam(r, ParamUserID))
		if err != nil {
			respondServiceError(w, r, OpListStored, err)
			return
		}
		if list == nil {
			list = []domain.StoredRecipe{}
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: list})
	}
}

// HandleStoreRecipe snapshots the session under a name
func (h *PanelHandlers) HandleStoreRecipe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req StoreRecipeRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpStoreRecipe); err != nil {
			return
		}

		stored, err := h.svc.StoreRecipe(r.Context(), chi.URLParam(r, ParamPanelID), chi.URLParam(r, ParamUserID), req.Name)
		if err != nil {
			respondServiceError(w, r, OpStoreRecipe, err)
			return
		}
		respondJSON(w, http.StatusCreated, stored)
	}
}

// HandleRecallRecipe refills the session from a snapshot
func (h *PanelHandlers) HandleRecallRecipe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := h.svc.RecallRecipe(r.Context(),
			chi.URLParam(r, ParamPanelID), chi.URLParam(r, ParamUserID), chi.URLParam(r, ParamStoredID))
		if err != nil {
			respondServiceError(w, r, OpRecallRecipe, err)
			return
		}
		respondJSON(w, http.StatusOK, view)
	}
}

// HandleDeleteStoredRecipe removes a snapshot
func (h *PanelHandlers) HandleDeleteStoredRecipe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.svc.DeleteStoredRecipe(r.Context(), chi.URLParam(r, ParamUserID), chi.URLParam(r, ParamStoredID)); err != nil {
			respondServiceError(w, r, OpDeleteStored, err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgStoredRecipeDeleted})
	}
}
