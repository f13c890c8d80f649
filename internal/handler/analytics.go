// internal/handler/analytics.go
package handler

import (
	"net/http"

	"github.com/skillsharehq/skillshare-hub/internal/service"
)

type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

func (h *AnalyticsHandler) InstructorHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	stats, err := h.analyticsService.InstructorStats(r.Context(), userID)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, stats)
}

func (h *AnalyticsHandler) PlatformHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := h.analyticsService.PlatformStats(r.Context())
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, stats)
}
