package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"

	kafkax "github.com/tastetrial/paradise-api/internal/kafka"
	"github.com/tastetrial/paradise-api/internal/orders"
)

// OrderStore is the ledger surface the handler needs; *orders.Repo
// implements it.
type OrderStore interface {
	Insert(ctx context.Context, o orders.Order) (string, error)
	List(ctx context.Context, email string) ([]orders.Order, error)
	Get(ctx context.Context, id string) (orders.Order, error)
	Delete(ctx context.Context, id string) (int64, error)
}

// EventPublisher is satisfied by *kafka.Producer.
type EventPublisher interface {
	Publish(key, value []byte, headers ...kafkago.Header)
}

type OrdersHandler struct {
	Store    OrderStore
	Producer EventPublisher
	Service  string
}

type DeleteResp struct {
	DeletedCount int64 `json:"deletedCount"`
}

// Register wires the routes; verify guards the bulk listing only, matching
// the exposed surface.
func (h *OrdersHandler) Register(r chi.Router, verify func(http.Handler) http.Handler) {
	r.Post("/orderedFoods", h.create)
	r.With(verify).Get("/orderedFoods", h.list)
	r.Get("/orderedFoods/{id}", h.get)
	r.Delete("/orderedFoods/{id}", h.remove)
}

func (h *OrdersHandler) create(w http.ResponseWriter, r *http.Request) {
	var order orders.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if len(order) == 0 {
		writeError(w, http.StatusBadRequest, "empty order")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id, err := h.Store.Insert(ctx, order)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	ev := orders.Envelope{
		EventID:       uuid.NewString(),
		EventType:     orders.EventOrderPlaced,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      h.Service,
		TraceID:       r.Header.Get("X-Request-Id"),
		CorrelationID: id,
	}
	ev.Payload = kafkax.MustMarshal(orders.OrderPlacedPayload{
		OrderID:   id,
		UserEmail: orders.UserEmail(order),
	})
	h.Producer.Publish(orders.PartitionKey(id), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(orders.EventOrderPlaced)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)

	writeJSON(w, http.StatusCreated, CreatedResp{InsertedID: id})
}

// list is credential-protected. The userEmail filter narrows the result when
// supplied but is not cross-checked against the verified identity.
func (h *OrdersHandler) list(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	result, err := h.Store.List(ctx, r.URL.Query().Get("userEmail"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *OrdersHandler) get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	order, err := h.Store.Get(ctx, chi.URLParam(r, "id"))
	switch {
	case errors.Is(err, orders.ErrInvalidID):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, orders.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *OrdersHandler) remove(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	n, err := h.Store.Delete(ctx, chi.URLParam(r, "id"))
	switch {
	case errors.Is(err, orders.ErrInvalidID):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, DeleteResp{DeletedCount: n})
}
