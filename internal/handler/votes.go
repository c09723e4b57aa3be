package handler

import (
	"net/http"

	"github.com/jayadityadev/social-media-api/internal/access"
)

type voteRequest struct {
	PostID *int64 `json:"post_id"`
	Dir    *int   `json:"dir"`
}

// Vote handles POST /vote {"post_id": 1, "dir": 1|0}.
// A new vote replies 201, a removed vote 200.
func (h *Handler) Vote(w http.ResponseWriter, r *http.Request) {
	var req voteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if req.PostID == nil {
		writeError(w, r, validationf("field required: post_id"))
		return
	}
	if req.Dir == nil {
		writeError(w, r, validationf("field required: dir"))
		return
	}
	dir, err := access.ParseVoteDirection(*req.Dir)
	if err != nil {
		writeError(w, r, err)
		return
	}

	vote, op, err := h.svc.Vote(r.Context(), caller(r), *req.PostID, dir)
	if err != nil {
		writeError(w, r, err)
		return
	}

	status := http.StatusOK
	if op == access.VoteInsert {
		status = http.StatusCreated
	}
	writeJSON(w, r, status, vote)
}
