// internal/selections/handlers.go

package selections

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Kontukunal/geodarshan-api/internal/catalog"
	"github.com/Kontukunal/geodarshan-api/internal/common/utils"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetFavorites handles GET /favorites.
func (h *Handler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.UserIDFromContext(r)
	if !ok {
		utils.ErrorResponse(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	favorites, err := h.service.ListFavorites(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load favorites")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, favorites)
}

// ToggleFavorite handles POST /favorites/{id}.
func (h *Handler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.UserIDFromContext(r)
	if !ok {
		utils.ErrorResponse(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	destinationID, err := pathID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid destination ID")
		return
	}

	favorited, err := h.service.ToggleFavorite(r.Context(), userID, destinationID)
	if err != nil {
		if errors.Is(err, catalog.ErrDestinationNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update favorites")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]bool{"favorited": favorited})
}

// GetCompare handles GET /compare.
func (h *Handler) GetCompare(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.UserIDFromContext(r)
	if !ok {
		utils.ErrorResponse(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	destinations, err := h.service.ListCompare(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load comparison set")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, destinations)
}

// ToggleCompare handles POST /compare/{id}. A full set answers 409 and
// leaves the selection unchanged.
func (h *Handler) ToggleCompare(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.UserIDFromContext(r)
	if !ok {
		utils.ErrorResponse(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	destinationID, err := pathID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid destination ID")
		return
	}

	added, err := h.service.ToggleCompare(r.Context(), userID, destinationID)
	if err != nil {
		switch {
		case errors.Is(err, ErrCompareLimitReached):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, catalog.ErrDestinationNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update comparison set")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]bool{"inCompare": added})
}

// ClearCompare handles DELETE /compare.
func (h *Handler) ClearCompare(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.UserIDFromContext(r)
	if !ok {
		utils.ErrorResponse(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.service.ClearCompare(r.Context(), userID); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to clear comparison set")
		return
	}

	utils.MessageResponse(w, "Comparison set cleared", http.StatusOK)
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}
