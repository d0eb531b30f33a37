package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/CraftPanel_Go/internal/crafting"
	"github.com/osse101/CraftPanel_Go/internal/domain"
	"github.com/osse101/CraftPanel_Go/internal/modifier"
)

type MockPanelService struct {
	mock.Mock
}

func (m *MockPanelService) Panels(ctx context.Context, userID string) ([]*domain.Panel, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Panel), args.Error(1)
}

func (m *MockPanelService) view(args mock.Arguments) (*crafting.View, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crafting.View), args.Error(1)
}

func (m *MockPanelService) Open(ctx context.Context, panelID, userID string) (*crafting.View, error) {
	return m.view(m.Called(ctx, panelID, userID))
}

func (m *MockPanelService) View(ctx context.Context, panelID, userID string) (*crafting.View, error) {
	return m.view(m.Called(ctx, panelID, userID))
}

func (m *MockPanelService) Close(ctx context.Context, panelID, userID string) error {
	return m.Called(ctx, panelID, userID).Error(0)
}

func (m *MockPanelService) Place(ctx context.Context, panelID, userID string, slot int, itemUUID string, quantity int) (*crafting.View, error) {
	return m.view(m.Called(ctx, panelID, userID, slot, itemUUID, quantity))
}

func (m *MockPanelService) Remove(ctx context.Context, panelID, userID string, slot int) (*crafting.View, error) {
	return m.view(m.Called(ctx, panelID, userID, slot))
}

func (m *MockPanelService) ToggleModifier(ctx context.Context, panelID, userID, modifierID string) (*crafting.View, modifier.Rejection, error) {
	args := m.Called(ctx, panelID, userID, modifierID)
	var v *crafting.View
	if args.Get(0) != nil {
		v = args.Get(0).(*crafting.View)
	}
	return v, args.Get(1).(modifier.Rejection), args.Error(2)
}

func (m *MockPanelService) Craft(ctx context.Context, panelID, userID string) (*crafting.Outcome, error) {
	args := m.Called(ctx, panelID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crafting.Outcome), args.Error(1)
}

func (m *MockPanelService) StoreRecipe(ctx context.Context, panelID, userID, name string) (*domain.StoredRecipe, error) {
	args := m.Called(ctx, panelID, userID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StoredRecipe), args.Error(1)
}

func (m *MockPanelService) StoredRecipes(ctx context.Context, panelID, userID string) ([]domain.StoredRecipe, error) {
	args := m.Called(ctx, panelID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StoredRecipe), args.Error(1)
}

func (m *MockPanelService) RecallRecipe(ctx context.Context, panelID, userID, storedID string) (*crafting.View, error) {
	return m.view(m.Called(ctx, panelID, userID, storedID))
}

func (m *MockPanelService) DeleteStoredRecipe(ctx context.Context, userID, storedID string) error {
	return m.Called(ctx, userID, storedID).Error(0)
}

func newPanelRouter(svc PanelService) http.Handler {
	r := chi.NewRouter()
	r.Route("/panels", NewPanelHandlers(svc).Routes)
	return r
}

func serve(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHandleListPanels(t *testing.T) {
	svc := &MockPanelService{}
	svc.On("Panels", mock.Anything, "u1").Return([]*domain.Panel{
		{ID: "forge", Name: "Forge", Kind: domain.PanelRecipe, Slots: make([]domain.Slot, 2)},
	}, nil)

	w := serve(newPanelRouter(svc), http.MethodGet, "/panels?user_id=u1", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":[{"id":"forge","name":"Forge","kind":"recipe","slots":2,"recipes":0,"modifiers":0}]}`, w.Body.String())
	svc.AssertExpectations(t)
}

func TestHandleListPanels_MissingUser(t *testing.T) {
	w := serve(newPanelRouter(&MockPanelService{}), http.MethodGet, "/panels", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing user_id query parameter")
}

func TestHandleOpenSession(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockSetup      func(*MockPanelService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			body: `{"user_id":"u1"}`,
			mockSetup: func(m *MockPanelService) {
				m.On("Open", mock.Anything, "forge", "u1").Return(&crafting.View{PanelID: "forge", UserID: "u1"}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"panel_id":"forge"`,
		},
		{
			name:           "Missing user",
			body:           `{}`,
			mockSetup:      func(m *MockPanelService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"user_id":"This field is required"`,
		},
		{
			name:           "Malformed body",
			body:           `{`,
			mockSetup:      func(m *MockPanelService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
		{
			name: "Unknown panel",
			body: `{"user_id":"u1"}`,
			mockSetup: func(m *MockPanelService) {
				m.On("Open", mock.Anything, "forge", "u1").Return(nil, fmt.Errorf("panel 'forge' | %w", domain.ErrPanelNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgPanelNotFoundError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockPanelService{}
			tt.mockSetup(svc)

			w := serve(newPanelRouter(svc), http.MethodPost, "/panels/forge/sessions", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandlePlaceItem(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		body           string
		mockSetup      func(*MockPanelService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			path: "/panels/forge/sessions/u1/slots/0",
			body: `{"item_uuid":"Item.ember","quantity":2}`,
			mockSetup: func(m *MockPanelService) {
				m.On("Place", mock.Anything, "forge", "u1", 0, "Item.ember", 2).Return(&crafting.View{PanelID: "forge"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"panel_id":"forge"`,
		},
		{
			name:           "Bad slot",
			path:           "/panels/forge/sessions/u1/slots/first",
			body:           `{"item_uuid":"Item.ember"}`,
			mockSetup:      func(m *MockPanelService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Invalid slot path parameter",
		},
		{
			name:           "Bad item reference",
			path:           "/panels/forge/sessions/u1/slots/0",
			body:           `{"item_uuid":"ember"}`,
			mockSetup:      func(m *MockPanelService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"item_uuid"`,
		},
		{
			name: "Locked slot",
			path: "/panels/forge/sessions/u1/slots/1",
			body: `{"item_uuid":"Item.ember"}`,
			mockSetup: func(m *MockPanelService) {
				m.On("Place", mock.Anything, "forge", "u1", 1, "Item.ember", 0).Return(nil, fmt.Errorf("slot 'extra' | %w", domain.ErrSlotLocked))
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   ErrMsgSlotLockedError,
		},
		{
			name: "No session",
			path: "/panels/forge/sessions/u1/slots/0",
			body: `{"item_uuid":"Item.ember"}`,
			mockSetup: func(m *MockPanelService) {
				m.On("Place", mock.Anything, "forge", "u1", 0, "Item.ember", 0).Return(nil, domain.ErrSessionNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgSessionNotFoundError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockPanelService{}
			tt.mockSetup(svc)

			w := serve(newPanelRouter(svc), http.MethodPut, tt.path, tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleToggleModifier(t *testing.T) {
	svc := &MockPanelService{}
	svc.On("ToggleModifier", mock.Anything, "forge", "u1", "pricey").Return(&crafting.View{PanelID: "forge"}, modifier.RejectBudget, nil)
	svc.On("ToggleModifier", mock.Anything, "forge", "u1", "potent").Return(&crafting.View{PanelID: "forge"}, modifier.RejectNone, nil)
	router := newPanelRouter(svc)

	w := serve(router, http.MethodPost, "/panels/forge/sessions/u1/modifiers/pricey/toggle", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"rejected":true`)
	assert.Contains(t, w.Body.String(), modifier.RejectBudget.Message())

	w = serve(router, http.MethodPost, "/panels/forge/sessions/u1/modifiers/potent/toggle", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"rejected":false`)
	assert.NotContains(t, w.Body.String(), `"reason"`)
	svc.AssertExpectations(t)
}

func TestHandleCraft(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{name: "Success", expectedStatus: http.StatusOK, expectedBody: `"message":"Produced: 1 × Fire Potion"`},
		{name: "Necessary slot empty", err: fmt.Errorf("slot 'main' | %w", domain.ErrNecessarySlotEmpty), expectedStatus: http.StatusUnprocessableEntity, expectedBody: ErrMsgNecessarySlotEmptyError},
		{name: "Canceled", err: domain.ErrCraftCanceled, expectedStatus: http.StatusConflict, expectedBody: ErrMsgCraftCanceledError},
		{name: "Short material", err: fmt.Errorf("'Ember' | %w", domain.ErrInsufficientMaterial), expectedStatus: http.StatusConflict, expectedBody: ErrMsgInsufficientMaterialError},
		{name: "Database", err: fmt.Errorf("commit | %w", domain.ErrDatabase), expectedStatus: http.StatusInternalServerError, expectedBody: ErrMsgGenericServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockPanelService{}
			if tt.err != nil {
				svc.On("Craft", mock.Anything, "forge", "u1").Return(nil, tt.err)
			} else {
				svc.On("Craft", mock.Anything, "forge", "u1").Return(&crafting.Outcome{Summary: "Produced: 1 × Fire Potion"}, nil)
			}

			w := serve(newPanelRouter(svc), http.MethodPost, "/panels/forge/sessions/u1/craft", "")

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestHandleStoredRecipes(t *testing.T) {
	svc := &MockPanelService{}
	svc.On("StoredRecipes", mock.Anything, "forge", "u1").Return(nil, nil)
	svc.On("StoreRecipe", mock.Anything, "forge", "u1", "brew").Return(&domain.StoredRecipe{ID: "s1", Name: "brew"}, nil)
	svc.On("RecallRecipe", mock.Anything, "forge", "u1", "s1").
		Return(nil, fmt.Errorf("'Embr', did you mean \"Ember\"? | %w", domain.ErrMaterialGone))
	svc.On("DeleteStoredRecipe", mock.Anything, "u1", "s1").Return(nil)
	router := newPanelRouter(svc)

	w := serve(router, http.MethodGet, "/panels/forge/sessions/u1/stored", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":[]}`, w.Body.String())

	w = serve(router, http.MethodPost, "/panels/forge/sessions/u1/stored", `{"name":"brew"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"s1"`)

	w = serve(router, http.MethodPost, "/panels/forge/sessions/u1/stored/s1/recall", "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), `did you mean \"Ember\"?`)

	w = serve(router, http.MethodDelete, "/panels/forge/sessions/u1/stored/s1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), MsgStoredRecipeDeleted)

	svc.AssertExpectations(t)
}

func TestHandleCloseSession(t *testing.T) {
	svc := &MockPanelService{}
	svc.On("Close", mock.Anything, "forge", "u1").Return(nil).Once()
	svc.On("Close", mock.Anything, "forge", "u1").Return(domain.ErrSessionNotFound).Once()
	router := newPanelRouter(svc)

	w := serve(router, http.MethodDelete, "/panels/forge/sessions/u1", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(router, http.MethodDelete, "/panels/forge/sessions/u1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	svc.AssertExpectations(t)
}
