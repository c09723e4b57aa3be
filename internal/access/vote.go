package access

import (
	"fmt"

	"github.com/jayadityadev/social-media-api/internal/models"
)

// VoteDirection is the requested action: 1 casts a vote, 0 retracts it
type VoteDirection int

const (
	VoteDown VoteDirection = 0
	VoteUp   VoteDirection = 1
)

// VoteOp is the storage mutation a vote request resolves to
type VoteOp int

const (
	VoteInsert VoteOp = iota + 1
	VoteDelete
)

func (op VoteOp) String() string {
	switch op {
	case VoteInsert:
		return "insert"
	case VoteDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// ParseVoteDirection validates a raw direction value
func ParseVoteDirection(dir int) (VoteDirection, error) {
	switch VoteDirection(dir) {
	case VoteDown, VoteUp:
		return VoteDirection(dir), nil
	}
	return 0, fmt.Errorf("%w: dir must be 0 or 1", models.ErrValidation)
}

// TransitionVote resolves a direction against the current vote state.
//
//	up:   no vote -> insert, voted -> conflict
//	down: voted -> delete,   no vote -> conflict
func TransitionVote(postID int64, dir VoteDirection, hasVote bool) (VoteOp, error) {
	switch dir {
	case VoteUp:
		if hasVote {
			return 0, fmt.Errorf("%w: user already has a vote on post_id %d", models.ErrConflict, postID)
		}
		return VoteInsert, nil
	case VoteDown:
		if !hasVote {
			return 0, fmt.Errorf("%w: user does not have a vote on post_id %d", models.ErrConflict, postID)
		}
		return VoteDelete, nil
	}
	return 0, fmt.Errorf("%w: dir must be 0 or 1", models.ErrValidation)
}
