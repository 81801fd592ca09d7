package auth

import (
	"github.com/gorilla/mux"
)

func RegisterRoutes(router *mux.Router, handler *Handler, middleware *Middleware) {
	api := router.PathPrefix("/api/auth").Subrouter()

	api.HandleFunc("/register", handler.Register).Methods("POST")
	api.HandleFunc("/login", handler.Login).Methods("POST")
	api.HandleFunc("/refresh", handler.Refresh).Methods("POST")
	api.HandleFunc("/logout", handler.Logout).Methods("POST")

	protected := router.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Authenticate)
	protected.HandleFunc("/me", handler.Me).Methods("GET")
}
