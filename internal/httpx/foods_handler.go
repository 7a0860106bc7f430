package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"github.com/tastetrial/paradise-api/internal/catalog"
	"github.com/tastetrial/paradise-api/internal/redisx"
)

// FoodStore is the catalog surface the handler needs; *catalog.Repo
// implements it.
type FoodStore interface {
	List(ctx context.Context, q catalog.ListQuery) ([]catalog.Food, error)
	EstimatedCount(ctx context.Context) (int64, error)
	CountFiltered(ctx context.Context, f catalog.Filter) (int64, error)
	Get(ctx context.Context, id string) (catalog.Food, error)
	Create(ctx context.Context, f catalog.Food) (string, error)
	Replace(ctx context.Context, id string, f catalog.Food) (catalog.ReplaceResult, error)
}

type FoodsHandler struct {
	Store FoodStore
	Redis *redis.Client // optional read cache
}

type CreatedResp struct {
	InsertedID string `json:"insertedId"`
}

type CountResp struct {
	Count int64 `json:"count"`
}

type ReplaceResp struct {
	MatchedCount  int64  `json:"matchedCount"`
	ModifiedCount int64  `json:"modifiedCount"`
	UpsertedID    string `json:"upsertedId,omitempty"`
}

func (h *FoodsHandler) Register(r chi.Router) {
	r.Get("/foods", h.list)
	r.Get("/foodsCount", h.count)
	r.Get("/foods/{id}", h.get)
	r.Post("/foods", h.create)
	r.Put("/foods/{id}", h.update)
}

func (h *FoodsHandler) list(w http.ResponseWriter, r *http.Request) {
	q, err := catalog.ParseListQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	foods, err := h.Store.List(ctx, q)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, foods)
}

// count defaults to the whole-collection estimate the pagination UI divides
// by. ?filtered=true switches to an exact count under the supplied filter
// dimensions.
func (h *FoodsHandler) count(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if r.URL.Query().Get("filtered") == "true" {
		f, err := catalog.ParseFilter(r.URL.Query())
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		n, err := h.Store.CountFiltered(ctx, f)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, CountResp{Count: n})
		return
	}

	if h.Redis != nil {
		if n, err := h.Redis.Get(ctx, redisx.KeyFoodsCount).Int64(); err == nil {
			writeJSON(w, http.StatusOK, CountResp{Count: n})
			return
		}
	}
	n, err := h.Store.EstimatedCount(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if h.Redis != nil {
		_ = h.Redis.Set(ctx, redisx.KeyFoodsCount, n, redisx.TTLFoodsCount).Err()
	}
	writeJSON(w, http.StatusOK, CountResp{Count: n})
}

func (h *FoodsHandler) get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	key := fmt.Sprintf(redisx.KeyFood, id)
	if h.Redis != nil {
		if s, err := h.Redis.Get(ctx, key).Result(); err == nil && s != "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(s))
			return
		}
	}

	food, err := h.Store.Get(ctx, id)
	switch {
	case errors.Is(err, catalog.ErrInvalidID):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, catalog.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if h.Redis != nil {
		if b, err := json.Marshal(food); err == nil {
			_ = h.Redis.Set(ctx, key, b, redisx.TTLFood).Err()
		}
	}
	writeJSON(w, http.StatusOK, food)
}

func (h *FoodsHandler) create(w http.ResponseWriter, r *http.Request) {
	var food catalog.Food
	if err := json.NewDecoder(r.Body).Decode(&food); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id, err := h.Store.Create(ctx, food)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, CreatedResp{InsertedID: id})
}

func (h *FoodsHandler) update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var food catalog.Food
	if err := json.NewDecoder(r.Body).Decode(&food); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := h.Store.Replace(ctx, id, food)
	switch {
	case errors.Is(err, catalog.ErrInvalidID):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if h.Redis != nil {
		_ = h.Redis.Del(ctx, fmt.Sprintf(redisx.KeyFood, id)).Err()
	}
	writeJSON(w, http.StatusOK, ReplaceResp{
		MatchedCount:  res.Matched,
		ModifiedCount: res.Modified,
		UpsertedID:    res.UpsertedID,
	})
}
