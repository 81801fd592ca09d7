// internal/recommend/handlers.go

package recommend

import (
	"net/http"
	"strconv"

	"github.com/Kontukunal/geodarshan-api/internal/common/utils"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetRecommendations handles GET /recommendations. Requires auth; ranks
// against the caller's stored preference profile.
func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.UserIDFromContext(r)
	if !ok {
		utils.ErrorResponse(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	results, err := h.service.RecommendForUser(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to compute recommendations")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, results)
}

// GetTrending handles GET /trending?limit=N. Public: trending depends
// only on the catalog, not on any user. Without a limit parameter the
// service applies its configured default.
func (h *Handler) GetTrending(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if l := r.URL.Query().Get("limit"); l != "" {
		v, err := strconv.Atoi(l)
		if err != nil || v < 1 {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = v
	}

	utils.RespondWithJSON(w, http.StatusOK, h.service.Trending(r.Context(), limit))
}
