// internal/catalog/handlers.go

package catalog

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/Kontukunal/geodarshan-api/internal/common/utils"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// ListDestinations handles GET /destinations with the browse filters.
func (h *Handler) ListDestinations(w http.ResponseWriter, r *http.Request) {
	params := ListParams{
		Query:  r.URL.Query().Get("q"),
		Budget: r.URL.Query().Get("budget"),
	}

	if rating := r.URL.Query().Get("min_rating"); rating != "" {
		v, err := strconv.ParseFloat(rating, 64)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid min_rating")
			return
		}
		params.MinRating = v
	}

	if tags := r.URL.Query().Get("tags"); tags != "" {
		params.Tags = strings.Split(tags, ",")
	}

	if page := r.URL.Query().Get("page"); page != "" {
		if p, err := strconv.Atoi(page); err == nil {
			params.Page = p
		}
	}
	if size := r.URL.Query().Get("page_size"); size != "" {
		if s, err := strconv.Atoi(size); err == nil {
			params.PageSize = s
		}
	}

	result, err := h.service.List(r.Context(), params)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to list destinations")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, result)
}

// GetDestination handles GET /destinations/{id}.
func (h *Handler) GetDestination(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid destination ID")
		return
	}

	destination, err := h.service.Get(r.Context(), id)
	if err != nil {
		if err == ErrDestinationNotFound {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to get destination")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, destination)
}

// GetTags handles GET /destinations/tags.
func (h *Handler) GetTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.service.Tags(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to get tags")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, tags)
}
