package selections

import (
	"github.com/gorilla/mux"

	"github.com/Kontukunal/geodarshan-api/internal/auth"
)

func RegisterRoutes(router *mux.Router, handler *Handler, authMiddleware *auth.Middleware) {
	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(authMiddleware.Authenticate)

	api.HandleFunc("/favorites", handler.GetFavorites).Methods("GET")
	api.HandleFunc("/favorites/{id:[0-9]+}", handler.ToggleFavorite).Methods("POST")

	api.HandleFunc("/compare", handler.GetCompare).Methods("GET")
	api.HandleFunc("/compare/{id:[0-9]+}", handler.ToggleCompare).Methods("POST")
	api.HandleFunc("/compare", handler.ClearCompare).Methods("DELETE")
}
