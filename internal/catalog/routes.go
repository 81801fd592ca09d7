package catalog

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes mounts the public catalog endpoints. Browsing the
// catalog requires no authentication.
func RegisterRoutes(router *mux.Router, handler *Handler) {
	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/destinations", handler.ListDestinations).Methods("GET")
	api.HandleFunc("/destinations/tags", handler.GetTags).Methods("GET")
	api.HandleFunc("/destinations/{id:[0-9]+}", handler.GetDestination).Methods("GET")
}
