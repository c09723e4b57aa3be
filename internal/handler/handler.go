package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/jayadityadev/social-media-api/internal/access"
	"github.com/jayadityadev/social-media-api/internal/middleware"
	"github.com/jayadityadev/social-media-api/internal/service"
)

type Handler struct {
	svc *service.Service
}

func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Root reports that the API is up
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]bool{"working": true})
}

// caller is set by middleware.AuthMiddleware on every protected route
func caller(r *http.Request) access.Caller {
	c, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		panic("handler: protected route served without AuthMiddleware")
	}
	return c
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, validationf("id must be an integer")
	}
	return id, nil
}
