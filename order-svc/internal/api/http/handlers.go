package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"foodcart/order-svc/internal/domain"
	"foodcart/order-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	Carts     service.CartServiceInterface
	Checkout  service.CheckoutServiceInterface
	Orders    service.OrderServiceInterface
	Inquiries service.InquiryServiceInterface
	Log       logrus.FieldLogger
}

func NewHandler(carts service.CartServiceInterface, checkout service.CheckoutServiceInterface, orders service.OrderServiceInterface, inquiries service.InquiryServiceInterface, log logrus.FieldLogger) *Handler {
	return &Handler{
		Carts:     carts,
		Checkout:  checkout,
		Orders:    orders,
		Inquiries: inquiries,
		Log:       log,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/carts", h.createCart).Methods("POST")
	r.HandleFunc("/api/carts/{cartId}", h.getCart).Methods("GET")
	r.HandleFunc("/api/carts/{cartId}", h.deleteCart).Methods("DELETE")
	r.HandleFunc("/api/carts/{cartId}/items", h.addItem).Methods("POST")
	r.HandleFunc("/api/carts/{cartId}/items", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/carts/{cartId}/items/{itemId}", h.updateItem).Methods("PUT")
	r.HandleFunc("/api/carts/{cartId}/items/{itemId}", h.removeItem).Methods("DELETE")
	r.HandleFunc("/api/carts/{cartId}/summary", h.getSummary).Methods("GET")

	r.HandleFunc("/api/checkout", h.checkout).Methods("POST")
	r.HandleFunc("/api/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/tracking", h.getTracking).Methods("GET")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")

	r.HandleFunc("/api/contact", h.submitContact).Methods("POST")
	r.HandleFunc("/api/careers/applications", h.submitJobApplication).Methods("POST")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "order-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) createCart(w http.ResponseWriter, r *http.Request) {
	cartID, state, err := h.Carts.Create(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"cartId": cartID,
		"cart":   state,
	})
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	state, err := h.Carts.Get(r.Context(), mux.Vars(r)["cartId"])
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (h *Handler) deleteCart(w http.ResponseWriter, r *http.Request) {
	if err := h.Carts.Delete(r.Context(), mux.Vars(r)["cartId"]); err != nil {
		h.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	var item domain.CartItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	state, err := h.Carts.AddItem(r.Context(), mux.Vars(r)["cartId"], item)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	state, err := h.Carts.Clear(r.Context(), mux.Vars(r)["cartId"])
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := strconv.Atoi(mux.Vars(r)["itemId"])
	if err != nil {
		http.Error(w, "Invalid item id", http.StatusBadRequest)
		return
	}

	var payload struct {
		Quantity *int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if payload.Quantity == nil {
		http.Error(w, "quantity is required", http.StatusBadRequest)
		return
	}

	state, err := h.Carts.UpdateQuantity(r.Context(), mux.Vars(r)["cartId"], itemID, *payload.Quantity)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := strconv.Atoi(mux.Vars(r)["itemId"])
	if err != nil {
		http.Error(w, "Invalid item id", http.StatusBadRequest)
		return
	}

	state, err := h.Carts.RemoveItem(r.Context(), mux.Vars(r)["cartId"], itemID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (h *Handler) getSummary(w http.ResponseWriter, r *http.Request) {
	bill, err := h.Carts.Summary(r.Context(), mux.Vars(r)["cartId"])
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bill)
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	var req service.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.CartID == "" {
		http.Error(w, "cartId is required", http.StatusBadRequest)
		return
	}

	receipt, err := h.Checkout.Checkout(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, receipt)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var order domain.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	if len(order.Items) == 0 {
		http.Error(w, "Invalid order payload", http.StatusBadRequest)
		return
	}
	if order.PaymentMethod != "" && !domain.ValidPaymentMethod(order.PaymentMethod) {
		http.Error(w, service.ErrInvalidPaymentMethod.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.Orders.Create(r.Context(), &order)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getTracking(w http.ResponseWriter, r *http.Request) {
	progress, err := h.Orders.Tracking(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, progress)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	qr, err := h.Orders.GetQRCode(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qr)
}

func (h *Handler) submitContact(w http.ResponseWriter, r *http.Request) {
	var msg domain.ContactMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.Inquiries.SubmitContact(r.Context(), msg)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

func (h *Handler) submitJobApplication(w http.ResponseWriter, r *http.Request) {
	var app domain.JobApplication
	if err := json.NewDecoder(r.Body).Decode(&app); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.Inquiries.SubmitJobApplication(r.Context(), app)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrCartNotFound), errors.Is(err, domain.ErrOrderNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrInvalidPaymentMethod),
		errors.Is(err, service.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrUnknownRestaurant):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, service.ErrSubmitFailed):
		h.Log.WithError(err).Error("order store write failed")
		http.Error(w, "Order store unavailable", http.StatusBadGateway)
	case errors.Is(err, context.DeadlineExceeded):
		http.Error(w, "Request timed out", http.StatusGatewayTimeout)
	default:
		h.Log.WithError(err).Error("order request failed")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
