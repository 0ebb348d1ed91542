package matching

import (
	"github.com/gorilla/mux"

	"github.com/lusotown/lusotown-backend/internal/auth"
)

func RegisterRoutes(router *mux.Router, handler *Handler, authMiddleware *auth.Middleware) {
	api := router.PathPrefix("/api/v1/matching").Subrouter()
	api.Use(authMiddleware.Authenticate)

	api.HandleFunc("/matches", handler.GetMatches).Methods("GET")
	api.HandleFunc("/compatibility/{userId}", handler.GetCompatibility).Methods("GET")
	api.HandleFunc("/starters/{userId}", handler.GetStarters).Methods("GET")
	api.HandleFunc("/backgrounds/{code}", handler.GetBackgroundName).Methods("GET")
}
