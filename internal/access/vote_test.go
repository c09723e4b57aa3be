package access

import (
	"testing"

	"github.com/jayadityadev/social-media-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVoteDirection(t *testing.T) {
	for _, raw := range []int{0, 1} {
		dir, err := ParseVoteDirection(raw)
		require.NoError(t, err)
		assert.Equal(t, VoteDirection(raw), dir)
	}

	for _, raw := range []int{-1, 2, 100} {
		_, err := ParseVoteDirection(raw)
		assert.ErrorIs(t, err, models.ErrValidation, "dir=%d", raw)
	}
}

func TestTransitionVote(t *testing.T) {
	tests := []struct {
		name    string
		dir     VoteDirection
		hasVote bool
		want    VoteOp
		wantErr error
	}{
		{"up without vote inserts", VoteUp, false, VoteInsert, nil},
		{"up with vote conflicts", VoteUp, true, 0, models.ErrConflict},
		{"down with vote deletes", VoteDown, true, VoteDelete, nil},
		{"down without vote conflicts", VoteDown, false, 0, models.ErrConflict},
		{"unknown direction", VoteDirection(7), false, 0, models.ErrValidation},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			op, err := TransitionVote(3, tc.dir, tc.hasVote)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, op)
		})
	}
}

func TestVoteOp_String(t *testing.T) {
	assert.Equal(t, "insert", VoteInsert.String())
	assert.Equal(t, "delete", VoteDelete.String())
	assert.Equal(t, "unknown", VoteOp(0).String())
}
