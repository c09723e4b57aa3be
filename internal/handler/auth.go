package handler

import (
	"mime"
	"net/http"
)

type credentialsRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

func (c credentialsRequest) values() (string, string, error) {
	if c.Email == nil {
		return "", "", validationf("field required: email")
	}
	if c.Password == nil {
		return "", "", validationf("field required: password")
	}
	return *c.Email, *c.Password, nil
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login exchanges credentials for a bearer token.
// POST /login
// Form: username=<email>&password=... (OAuth2 password flow)
// JSON: {"email":"...","password":"..."}
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	email, password, err := loginCredentials(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.svc.Login(r.Context(), email, password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

func loginCredentials(r *http.Request) (string, string, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		var req credentialsRequest
		if err := decodeJSON(r, &req); err != nil {
			return "", "", err
		}
		return req.values()
	}

	// PostFormValue parses both urlencoded and multipart bodies
	username := r.PostFormValue("username")
	if _, ok := r.PostForm["username"]; !ok {
		return "", "", validationf("field required: username")
	}
	if _, ok := r.PostForm["password"]; !ok {
		return "", "", validationf("field required: password")
	}
	return username, r.PostFormValue("password"), nil
}
