// internal/handler/enrollment.go
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/skillsharehq/skillshare-hub/internal/service"
)

type EnrollmentHandler struct {
	enrollmentService *service.EnrollmentService
}

func NewEnrollmentHandler(enrollmentService *service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollmentService: enrollmentService}
}

func (h *EnrollmentHandler) EnrollHandler(w http.ResponseWriter, r *http.Request) {
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

	enrollment, err := h.enrollmentService.Enroll(r.Context(), workshopID, userID)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, enrollment)
}

func (h *EnrollmentHandler) UnenrollHandler(w http.ResponseWriter, r *http.Request) {
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

	if err := h.enrollmentService.Unenroll(r.Context(), workshopID, userID); err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

func (h *EnrollmentHandler) MyEnrollmentsHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	enrollments, err := h.enrollmentService.FindUserEnrollments(r.Context(), userID)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, enrollments)
}

func (h *EnrollmentHandler) CheckHandler(w http.ResponseWriter, r *http.Request) {
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

	enrolled, err := h.enrollmentService.IsUserEnrolled(r.Context(), workshopID, userID)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]bool{"enrolled": enrolled})
}

func (h *EnrollmentHandler) StatsHandler(w http.ResponseWriter, r *http.Request) {
	workshopID, err := uuid.Parse(chi.URLParam(r, "workshopID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid workshop id")
		return
	}

	stats, err := h.enrollmentService.Stats(r.Context(), workshopID)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, stats)
}
