package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/instaboost/apiserver/internal/pricing"
	"github.com/instaboost/apiserver/internal/services"
	"github.com/instaboost/apiserver/internal/store"
	"github.com/instaboost/apiserver/types"
)

// OrderHandler provides HTTP handlers for order placement.
type OrderHandler struct {
	orderService *services.OrderService
	userService  *services.UserService
}

// NewOrderHandler constructs a handler with the provided services.
func NewOrderHandler(orderService *services.OrderService, userService *services.UserService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		userService:  userService,
	}
}

// OrderRouter registers order routes on the given router.
func OrderRouter(r chi.Router, orderService *services.OrderService, userService *services.UserService) {
	handler := NewOrderHandler(orderService, userService)

	r.Post("/free-trial", handler.FreeTrial)
	r.Post("/paid", handler.Paid)
}

// FreeTrial places a fixed 20-unit free-trial order. Any extra fields in
// the body are ignored.
func (h *OrderHandler) FreeTrial(w http.ResponseWriter, r *http.Request) {
	var req FreeTrialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	req.InstagramTarget = strings.TrimSpace(req.InstagramTarget)
	if req.InstagramTarget == "" {
		writeError(w, http.StatusBadRequest, "instagram_target required")
		return
	}

	user, ok := h.actingUser(w, r)
	if !ok {
		return
	}

	order, err := h.orderService.PlaceFreeTrial(r.Context(), user.ID, req.InstagramTarget)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create order")
		return
	}

	writeJSON(w, http.StatusCreated, OrderResponse{ID: order.ID, Status: order.Status})
}

// Paid validates a paid order against the price table and persists it.
func (h *OrderHandler) Paid(w http.ResponseWriter, r *http.Request) {
	var req PaidOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	req.ServiceType = strings.TrimSpace(req.ServiceType)
	req.InstagramTarget = strings.TrimSpace(req.InstagramTarget)
	if req.ServiceType == "" || req.Quantity == nil || req.AmountUSD == "" || req.InstagramTarget == "" {
		writeError(w, http.StatusBadRequest, "Missing fields")
		return
	}

	quote, err := pricing.NewQuote(req.ServiceType, *req.Quantity, req.AmountUSD)
	if err != nil {
		var mismatch *pricing.AmountMismatchError
		switch {
		case errors.Is(err, pricing.ErrInvalidServiceOrQuantity):
			writeError(w, http.StatusBadRequest, "Min 100, service: followers/likes")
		case errors.As(err, &mismatch):
			writeError(w, http.StatusBadRequest, "Expected $"+mismatch.Expected)
		default:
			writeError(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	user, ok := h.actingUser(w, r)
	if !ok {
		return
	}

	order, err := h.orderService.PlacePaid(r.Context(), user.ID, quote, req.InstagramTarget)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create order")
		return
	}

	writeJSON(w, http.StatusCreated, OrderResponse{ID: order.ID, Status: order.Status})
}

// actingUser resolves the user the order is attributed to, writing the
// error response itself when resolution fails.
func (h *OrderHandler) actingUser(w http.ResponseWriter, r *http.Request) (types.User, bool) {
	user, err := h.userService.ResolveActingUser(r.Context())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusBadRequest, "Register first")
			return types.User{}, false
		}
		writeError(w, http.StatusInternalServerError, "failed to resolve user")
		return types.User{}, false
	}
	return user, true
}

type FreeTrialRequest struct {
	InstagramTarget string `json:"instagram_target"`
}

// PaidOrderRequest is the paid-order payload. Quantity is a pointer so a
// missing field can be told apart from an explicit zero: absence is a
// missing-fields error, zero goes on to fail quantity validation.
type PaidOrderRequest struct {
	ServiceType     string `json:"service_type"`
	Quantity        *int   `json:"quantity"`
	AmountUSD       string `json:"amount_usd"`
	InstagramTarget string `json:"instagram_target"`
}

type OrderResponse struct {
	ID     int    `json:"id"`
	Status string `json:"status"`
}
