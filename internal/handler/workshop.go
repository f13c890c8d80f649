// internal/handler/workshop.go
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/skillsharehq/skillshare-hub/internal/model"
	"github.com/skillsharehq/skillshare-hub/internal/repository"
	"github.com/skillsharehq/skillshare-hub/internal/service"
)

type WorkshopHandler struct {
	workshopService *service.WorkshopService
}

func NewWorkshopHandler(workshopService *service.WorkshopService) *WorkshopHandler {
	return &WorkshopHandler{workshopService: workshopService}
}

func (h *WorkshopHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input service.CreateWorkshopInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	workshop, err := h.workshopService.Create(r.Context(), userID, input)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, workshop)
}

type WorkshopListResponse struct {
	Workshops []*model.Workshop `json:"workshops"`
	Total     int64             `json:"total"`
	Page      int               `json:"page"`
	Limit     int               `json:"limit"`
}

func (h *WorkshopHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	filter := repository.WorkshopFilter{
		Mode:         model.WorkshopMode(r.URL.Query().Get("mode")),
		UpcomingOnly: r.URL.Query().Get("upcoming") == "true",
	}

	if owner := r.URL.Query().Get("owner_id"); owner != "" {
		ownerID, err := uuid.Parse(owner)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid owner id")
			return
		}
		filter.OwnerID = ownerID
	}

	page, limit := pagination(r)
	workshops, total, err := h.workshopService.List(r.Context(), filter, page, limit)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, WorkshopListResponse{
		Workshops: workshops,
		Total:     total,
		Page:      page,
		Limit:     limit,
	})
}

func (h *WorkshopHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "workshopID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid workshop id")
		return
	}

	workshop, err := h.workshopService.Get(r.Context(), id)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, workshop)
}

func (h *WorkshopHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "workshopID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid workshop id")
		return
	}

	var input service.UpdateWorkshopInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	workshop, err := h.workshopService.Update(r.Context(), id, userID, input)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, workshop)
}

func (h *WorkshopHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "workshopID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid workshop id")
		return
	}

	if err := h.workshopService.Delete(r.Context(), id, userID); err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

// pagination reads ?page= and ?limit= with sane defaults.
func pagination(r *http.Request) (int, int) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	return page, limit
}
