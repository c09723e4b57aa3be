package service

import (
	"context"
	"fmt"

	"github.com/jayadityadev/social-media-api/internal/access"
	"github.com/jayadityadev/social-media-api/internal/models"
	"github.com/jayadityadev/social-media-api/internal/repository"
)

// Vote applies dir for the caller on postID. It returns the vote that was
// created or removed and which of the two happened.
func (s *Service) Vote(ctx context.Context, caller access.Caller, postID int64, dir access.VoteDirection) (models.Vote, access.VoteOp, error) {
	vote := models.Vote{UserID: caller.ID, PostID: postID}
	var op access.VoteOp

	err := s.repo.WithTx(ctx, "vote", func(tx *repository.Tx) error {
		if _, err := tx.PostByID(ctx, postID); err != nil {
			return err
		}

		hasVote, err := tx.HasVote(ctx, caller.ID, postID)
		if err != nil {
			return err
		}

		op, err = access.TransitionVote(postID, dir, hasVote)
		if err != nil {
			return err
		}

		switch op {
		case access.VoteInsert:
			return tx.InsertVote(ctx, vote)
		case access.VoteDelete:
			deleted, err := tx.DeleteVote(ctx, vote)
			if err != nil {
				return err
			}
			if !deleted {
				// Another request removed it after HasVote.
				return fmt.Errorf("%w: user does not have a vote on post_id %d", models.ErrConflict, postID)
			}
		}
		return nil
	})
	if err != nil {
		return models.Vote{}, 0, err
	}

	s.log.Infof("Vote %s by user %d on post %d", op, caller.ID, postID)
	return vote, op, nil
}
