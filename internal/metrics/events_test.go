package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CraftPanel_Go/internal/domain"
	"github.com/osse101/CraftPanel_Go/internal/event"
)

func TestEventMetricsCollector_CraftCompleted(t *testing.T) {
	bus := event.NewMemoryBus()
	require.NoError(t, NewEventMetricsCollector().Register(bus))

	before := testutil.ToFloat64(CraftsTotal.WithLabelValues("Metrics Forge", OutcomeCompleted))
	producedBefore := testutil.ToFloat64(ItemsProduced.WithLabelValues("Metrics Ingot"))

	err := bus.Publish(context.Background(), event.NewCraftCompletedEvent(event.CraftCompletedPayloadV1{
		PanelID:   "forge",
		PanelName: "Metrics Forge",
		Produced:  []event.ItemQuantityV1{{Name: "Metrics Ingot", Quantity: 2}},
	}))
	require.NoError(t, err)

	assert.Equal(t, before+1, testutil.ToFloat64(CraftsTotal.WithLabelValues("Metrics Forge", OutcomeCompleted)))
	assert.Equal(t, producedBefore+2, testutil.ToFloat64(ItemsProduced.WithLabelValues("Metrics Ingot")))
}

func TestEventMetricsCollector_Notice(t *testing.T) {
	bus := event.NewMemoryBus()
	require.NoError(t, NewEventMetricsCollector().Register(bus))

	before := testutil.ToFloat64(NoticesRaised.WithLabelValues(string(domain.NoticeWarn)))
	err := bus.Publish(context.Background(), event.NewNoticeRaisedEvent("forge", "u1", domain.Notice{Level: domain.NoticeWarn, Message: "x"}))
	require.NoError(t, err)

	assert.Equal(t, before+1, testutil.ToFloat64(NoticesRaised.WithLabelValues(string(domain.NoticeWarn))))
}

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/sessions/{sessionID}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/sessions/{sessionID}", "418"))

	req := httptest.NewRequest(http.MethodGet, "/sessions/abc", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/sessions/{sessionID}", "418")))
}
