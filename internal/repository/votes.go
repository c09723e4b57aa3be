package repository

import (
	"context"
	"fmt"

	"github.com/jayadityadev/social-media-api/internal/models"
)

// HasVote reports whether userID has a vote on postID
func (t *Tx) HasVote(ctx context.Context, userID, postID int64) (bool, error) {
	var n int
	query := t.tx.Rebind(`SELECT COUNT(*) FROM votes WHERE user_id = ? AND post_id = ?`)
	if err := t.tx.GetContext(ctx, &n, query, userID, postID); err != nil {
		return false, fmt.Errorf("failed to look up vote: %w", err)
	}
	return n > 0, nil
}

// InsertVote records a vote. The (user_id, post_id) primary key rejects a
// second row for the same pair with models.ErrConflict, which covers two
// concurrent requests that both passed HasVote.
func (t *Tx) InsertVote(ctx context.Context, vote models.Vote) error {
	query := t.tx.Rebind(`INSERT INTO votes (user_id, post_id) VALUES (?, ?)`)
	if _, err := t.tx.ExecContext(ctx, query, vote.UserID, vote.PostID); err != nil {
		return classify(fmt.Errorf("failed to insert vote: %w", err),
			fmt.Sprintf("user already has a vote on post_id %d", vote.PostID))
	}
	return nil
}

// DeleteVote removes a vote and reports whether one existed
func (t *Tx) DeleteVote(ctx context.Context, vote models.Vote) (bool, error) {
	query := t.tx.Rebind(`DELETE FROM votes WHERE user_id = ? AND post_id = ?`)
	res, err := t.tx.ExecContext(ctx, query, vote.UserID, vote.PostID)
	if err != nil {
		return false, fmt.Errorf("failed to delete vote: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete vote: %w", err)
	}
	return n > 0, nil
}
