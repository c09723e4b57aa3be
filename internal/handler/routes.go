package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jayadityadev/social-media-api/internal/middleware"
	"github.com/sirupsen/logrus"
)

// NewRouter wires every endpoint. Routes wrapped in protect require a
// bearer token.
func NewRouter(h *Handler, auth middleware.Authenticator, log logrus.FieldLogger) *mux.Router {
	r := mux.NewRouter()
	r.NotFoundHandler = notFoundHandler()
	r.MethodNotAllowedHandler = methodNotAllowedHandler()
	r.Use(middleware.RequestLogger(log))

	authMW := middleware.AuthMiddleware(auth)
	protect := func(f http.HandlerFunc) http.Handler { return authMW(f) }

	// Public routes
	r.HandleFunc("/", h.Root).Methods("GET")
	r.HandleFunc("/login", h.Login).Methods("POST")
	r.HandleFunc("/users", h.CreateUser).Methods("POST")

	// Protected routes
	r.Handle("/users", protect(h.ListUsers)).Methods("GET")
	r.Handle("/users/{id}", protect(h.GetUser)).Methods("GET")
	r.Handle("/users/{id}", protect(h.UpdateUser)).Methods("PUT")
	r.Handle("/users/{id}", protect(h.DeleteUser)).Methods("DELETE")

	r.Handle("/posts", protect(h.CreatePost)).Methods("POST")
	r.Handle("/posts", protect(h.ListPosts)).Methods("GET")
	r.Handle("/posts/{id}", protect(h.GetPost)).Methods("GET")
	r.Handle("/posts/{id}", protect(h.UpdatePost)).Methods("PUT")
	r.Handle("/posts/{id}", protect(h.DeletePost)).Methods("DELETE")

	r.Handle("/vote", protect(h.Vote)).Methods("POST")

	return r
}
