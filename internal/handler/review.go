// internal/handler/review.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/skillsharehq/skillshare-hub/internal/service"
)

type ReviewHandler struct {
	reviewService *service.ReviewService
}

func NewReviewHandler(reviewService *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

func (h *ReviewHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	workshopID, err := uuid.Parse(chi.URLParam(r, "workshopID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid workshop id")
		return
	}

	var input service.CreateReviewInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	review, err := h.reviewService.CreateReview(r.Context(), workshopID, userID, input)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, review)
}

func (h *ReviewHandler) WorkshopReviewsHandler(w http.ResponseWriter, r *http.Request) {
	workshopID, err := uuid.Parse(chi.URLParam(r, "workshopID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid workshop id")
		return
	}

	summary, err := h.reviewService.GetWorkshopReviews(r.Context(), workshopID)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, summary)
}
