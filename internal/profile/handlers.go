// internal/profile/handlers.go

package profile

import (
	"encoding/json"
	"net/http"

	"github.com/Kontukunal/geodarshan-api/internal/common/utils"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetPreferences handles GET /profile/preferences. An empty object means
// the user has not completed a survey yet.
func (h *Handler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.UserIDFromContext(r)
	if !ok {
		utils.ErrorResponse(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	prefs, err := h.service.GetPreferences(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load preferences")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, prefs)
}

// SavePreferences handles PUT /profile/preferences. The payload is one
// survey variant's snapshot; it is merged into the stored profile.
func (h *Handler) SavePreferences(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.UserIDFromContext(r)
	if !ok {
		utils.ErrorResponse(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var prefs Preferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := utils.ValidateStruct(prefs); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	merged, err := h.service.SavePreferences(r.Context(), userID, prefs)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save preferences")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, merged)
}

// ResetPreferences handles DELETE /profile/preferences.
func (h *Handler) ResetPreferences(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.UserIDFromContext(r)
	if !ok {
		utils.ErrorResponse(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.service.ResetPreferences(r.Context(), userID); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to reset preferences")
		return
	}

	utils.MessageResponse(w, "Preferences reset", http.StatusOK)
}
