package profile

import (
	"github.com/gorilla/mux"

	"github.com/Kontukunal/geodarshan-api/internal/auth"
)

func RegisterRoutes(router *mux.Router, handler *Handler, authMiddleware *auth.Middleware) {
	api := router.PathPrefix("/api/v1/profile").Subrouter()
	api.Use(authMiddleware.Authenticate)

	api.HandleFunc("/preferences", handler.GetPreferences).Methods("GET")
	api.HandleFunc("/preferences", handler.SavePreferences).Methods("PUT")
	api.HandleFunc("/preferences", handler.ResetPreferences).Methods("DELETE")
}
