package recommend

import (
	"github.com/gorilla/mux"

	"github.com/Kontukunal/geodarshan-api/internal/auth"
)

func RegisterRoutes(router *mux.Router, handler *Handler, authMiddleware *auth.Middleware) {
	api := router.PathPrefix("/api/v1").Subrouter()

	// Trending is catalog-only and stays public.
	api.HandleFunc("/trending", handler.GetTrending).Methods("GET")

	protected := router.PathPrefix("/api/v1").Subrouter()
	protected.Use(authMiddleware.Authenticate)
	protected.HandleFunc("/recommendations", handler.GetRecommendations).Methods("GET")
}
