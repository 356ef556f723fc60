package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"foodcart/catalog-svc/internal/browse"
	"foodcart/catalog-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	Catalog service.CatalogServiceInterface
	Log     logrus.FieldLogger
}

func NewHandler(catalog service.CatalogServiceInterface, log logrus.FieldLogger) *Handler {
	return &Handler{
		Catalog: catalog,
		Log:     log,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/restaurants", h.getRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/cuisines", h.getCuisines).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "catalog-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getRestaurants(w http.ResponseWriter, r *http.Request) {
	query, err := parseBrowseQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.Catalog.Browse(r.Context(), query)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid restaurant id", http.StatusBadRequest)
		return
	}

	rest, err := h.Catalog.GetRestaurant(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid restaurant id", http.StatusBadRequest)
		return
	}

	rest, err := h.Catalog.GetRestaurant(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	items, err := h.Catalog.FetchMenuItems(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"restaurant": rest,
		"items":      items,
	})
}

func (h *Handler) getCuisines(w http.ResponseWriter, r *http.Request) {
	cuisines, err := h.Catalog.Cuisines(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cuisines)
}

func parseBrowseQuery(r *http.Request) (browse.Query, error) {
	values := r.URL.Query()
	query := browse.Query{
		Search:  values.Get("q"),
		Cuisine: values.Get("cuisine"),
		Sort:    browse.SortKey(values.Get("sort")),
	}
	if query.Sort == "" {
		query.Sort = browse.SortRating
	}

	if raw := values.Get("rating"); raw != "" {
		rating, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return query, errors.New("rating must be a number")
		}
		query.MinRating = rating
	}

	price, err := browse.ParsePriceRange(values.Get("price"))
	if err != nil {
		return query, err
	}
	query.Price = price

	if raw := values.Get("delivery"); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil {
			return query, errors.New("delivery must be a number of minutes")
		}
		query.MaxDeliveryMinutes = minutes
	}

	if raw := values.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return query, errors.New("page must be a number")
		}
		query.Page = page
	}

	return query, nil
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrRestaurantNotFound):
		http.Error(w, "Restaurant not found", http.StatusNotFound)
	case errors.Is(err, service.ErrCatalogUnavailable):
		h.Log.WithError(err).Error("catalog unavailable")
		http.Error(w, "Catalog unavailable", http.StatusBadGateway)
	default:
		h.Log.WithError(err).Error("catalog request failed")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
