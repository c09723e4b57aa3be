package access

import (
	"fmt"

	"github.com/jayadityadev/social-media-api/internal/models"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// ListParams are the client supplied knobs for listing posts
type ListParams struct {
	Limit     int
	Offset    int
	Search    string
	WithVotes bool
}

// DefaultListParams returns limit=10, offset=0, no search, vote counts on
func DefaultListParams() ListParams {
	return ListParams{Limit: DefaultLimit, WithVotes: true}
}

// Visibility restricts a post query to rows that are published or owned by ViewerID
type Visibility struct {
	ViewerID int64
}

// PostQuery is the storage independent description of a post listing.
// The store applies Visibility, then TitleContains, orders by id ascending,
// then applies Offset and Limit. Visibility is always set: a PostQuery can
// only be obtained from ListPosts.
type PostQuery struct {
	Visibility    Visibility
	TitleContains string
	WithVoteCount bool
	Limit         int
	Offset        int
}

// ListPosts builds the query for listing posts visible to the caller
func ListPosts(c Caller, p ListParams) (PostQuery, error) {
	if p.Limit < 1 || p.Limit > MaxLimit {
		return PostQuery{}, fmt.Errorf("%w: limit must be between 1 and %d", models.ErrValidation, MaxLimit)
	}
	if p.Offset < 0 {
		return PostQuery{}, fmt.Errorf("%w: offset must not be negative", models.ErrValidation)
	}
	return PostQuery{
		Visibility:    Visibility{ViewerID: c.ID},
		TitleContains: p.Search,
		WithVoteCount: p.WithVotes,
		Limit:         p.Limit,
		Offset:        p.Offset,
	}, nil
}
