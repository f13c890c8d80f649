// internal/handler/common.go
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	chmw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/skillsharehq/skillshare-hub/internal/domain"
	"github.com/skillsharehq/skillshare-hub/internal/middleware"
)

type ErrorResponse struct {
	BaseResponse
	Error string `json:"error"`
}

type BaseResponse struct {
	Ok bool `json:"ok"`
}

// respondWithError sends an error response with a message
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// userIDFromContext extracts the authenticated user's id placed in the
// context by the auth middleware.
func userIDFromContext(r *http.Request) (uuid.UUID, bool) {
	raw, ok := r.Context().Value(middleware.UserIDKey).(string)
	if !ok {
		return uuid.Nil, false
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}

// respondWithDomainError translates service-layer sentinel errors into HTTP
// statuses. Anything unrecognized is logged and becomes a 500.
func respondWithDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrWorkshopNotFound),
		errors.Is(err, domain.ErrEnrollmentNotFound),
		errors.Is(err, domain.ErrPaymentNotFound),
		errors.Is(err, domain.ErrNotificationNotFound),
		errors.Is(err, domain.ErrMessageNotFound),
		errors.Is(err, domain.ErrReviewNotFound):
		respondWithError(w, http.StatusNotFound, err.Error())

	case errors.Is(err, domain.ErrAlreadyEnrolled),
		errors.Is(err, domain.ErrWorkshopFull),
		errors.Is(err, domain.ErrAlreadyReviewed),
		errors.Is(err, domain.ErrEmailAlreadyExists):
		respondWithError(w, http.StatusConflict, err.Error())

	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidSchedule),
		errors.Is(err, domain.ErrWorkshopInPast),
		errors.Is(err, domain.ErrWorkshopStarted),
		errors.Is(err, domain.ErrOwnWorkshop),
		errors.Is(err, domain.ErrAmountMismatch),
		errors.Is(err, domain.ErrInvalidPaymentState),
		errors.Is(err, domain.ErrPaymentNotRefundable),
		errors.Is(err, domain.ErrRefundWindowClosed),
		errors.Is(err, domain.ErrUnsupportedPayMethod),
		errors.Is(err, domain.ErrInvalidPaymentDetails),
		errors.Is(err, domain.ErrEditWindowExpired),
		errors.Is(err, domain.ErrAttachmentRequired),
		errors.Is(err, domain.ErrInvalidRating),
		errors.Is(err, domain.ErrNotEnrolledToReview):
		respondWithError(w, http.StatusBadRequest, err.Error())

	case errors.Is(err, domain.ErrForbidden),
		errors.Is(err, domain.ErrChatAccessDenied):
		respondWithError(w, http.StatusForbidden, err.Error())

	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUnauthorized):
		respondWithError(w, http.StatusUnauthorized, err.Error())

	default:
		slog.ErrorContext(r.Context(), "Unhandled service error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
