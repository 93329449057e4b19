package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/instaboost/apiserver/internal/services"
	"github.com/instaboost/apiserver/internal/store"
	"github.com/instaboost/apiserver/types"
)

// ReviewHandler provides HTTP handlers for reviews.
type ReviewHandler struct {
	reviewService *services.ReviewService
	userService   *services.UserService
}

// NewReviewHandler constructs a handler with the provided services.
func NewReviewHandler(reviewService *services.ReviewService, userService *services.UserService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		userService:   userService,
	}
}

// ReviewRouter registers review routes on the given router.
func ReviewRouter(r chi.Router, reviewService *services.ReviewService, userService *services.UserService) {
	handler := NewReviewHandler(reviewService, userService)

	r.Post("/", handler.CreateReview)
	r.Get("/", handler.ListReviews)
}

func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	req.Comment = strings.TrimSpace(req.Comment)
	if req.Rating == nil || *req.Rating < 1 || *req.Rating > 5 || req.Comment == "" {
		writeError(w, http.StatusBadRequest, "Valid rating (1-5) and comment required")
		return
	}

	user, err := h.userService.ResolveActingUser(r.Context())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusBadRequest, "Register first")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to resolve user")
		return
	}

	review, err := h.reviewService.Create(r.Context(), types.Review{
		UserID:  user.ID,
		Rating:  *req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create review")
		return
	}

	writeJSON(w, http.StatusCreated, CreateReviewResponse{ID: review.ID})
}

func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviewService.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list reviews")
		return
	}

	items := make([]ReviewItem, 0, len(reviews))
	for _, review := range reviews {
		items = append(items, ReviewItem{
			ID:      review.ID,
			Rating:  review.Rating,
			Comment: review.Comment,
		})
	}

	writeJSON(w, http.StatusOK, items)
}

// CreateReviewRequest is the review payload. Rating is a pointer so a
// missing rating and a zero rating both fail validation without being
// conflated in tests.
type CreateReviewRequest struct {
	Rating  *int   `json:"rating"`
	Comment string `json:"comment"`
}

type CreateReviewResponse struct {
	ID int `json:"id"`
}

type ReviewItem struct {
	ID      int    `json:"id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}
