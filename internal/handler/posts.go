package handler

import (
	"net/http"
	"strconv"

	"github.com/jayadityadev/social-media-api/internal/access"
	"github.com/jayadityadev/social-media-api/internal/models"
	"github.com/jayadityadev/social-media-api/internal/service"
)

type postRequest struct {
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	Category  *string `json:"category"`
	Published *bool   `json:"published"`
}

// input applies the defaults: category "Generic", published true
func (p postRequest) input() (service.PostInput, error) {
	if p.Title == nil {
		return service.PostInput{}, validationf("field required: title")
	}
	if p.Content == nil {
		return service.PostInput{}, validationf("field required: content")
	}
	in := service.PostInput{
		Title:     *p.Title,
		Content:   *p.Content,
		Category:  models.DefaultCategory,
		Published: true,
	}
	if p.Category != nil {
		in.Category = *p.Category
	}
	if p.Published != nil {
		in.Published = *p.Published
	}
	return in, nil
}

func decodePost(r *http.Request) (service.PostInput, error) {
	var req postRequest
	if err := decodeJSON(r, &req); err != nil {
		return service.PostInput{}, err
	}
	return req.input()
}

func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	in, err := decodePost(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	post, err := h.svc.CreatePost(r.Context(), caller(r), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, post)
}

// ListPosts handles GET /posts?limit=&offset=&search=&votes=
func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	params, err := listParams(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	posts, err := h.svc.ListPosts(r.Context(), caller(r), params)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if params.WithVotes {
		writeJSON(w, r, http.StatusOK, posts)
		return
	}
	plain := make([]models.Post, len(posts))
	for i := range posts {
		plain[i] = posts[i].Post
	}
	writeJSON(w, r, http.StatusOK, plain)
}

func listParams(r *http.Request) (access.ListParams, error) {
	params := access.DefaultListParams()
	q := r.URL.Query()

	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return params, validationf("limit must be an integer")
		}
		params.Limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return params, validationf("offset must be an integer")
		}
		params.Offset = n
	}
	if v := q.Get("votes"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return params, validationf("votes must be a boolean")
		}
		params.WithVotes = b
	}
	params.Search = q.Get("search")
	return params, nil
}

func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	post, err := h.svc.GetPost(r.Context(), caller(r), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, post)
}

// UpdatePost replies 204 with no body
func (h *Handler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	in, err := decodePost(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if _, err := h.svc.UpdatePost(r.Context(), caller(r), id, in); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	post, err := h.svc.DeletePost(r.Context(), caller(r), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, post)
}
