package service

import (
	"context"
	"errors"

	"github.com/jayadityadev/social-media-api/internal/access"
	"github.com/jayadityadev/social-media-api/internal/models"
	"github.com/jayadityadev/social-media-api/internal/repository"
)

// PostInput carries the client editable fields of a post
type PostInput struct {
	Title     string
	Content   string
	Category  string
	Published bool
}

// CreatePost creates a post owned by the caller
func (s *Service) CreatePost(ctx context.Context, caller access.Caller, in PostInput) (*models.Post, error) {
	post := &models.Post{
		Title:     in.Title,
		Content:   in.Content,
		Category:  in.Category,
		Published: in.Published,
		OwnerID:   caller.ID,
	}
	err := s.repo.WithTx(ctx, "create post", func(tx *repository.Tx) error {
		return tx.CreatePost(ctx, post)
	})
	if err != nil {
		return nil, err
	}

	s.log.Infof("Post %d created by user %d", post.ID, caller.ID)
	return post, nil
}

// ListPosts returns the page of posts visible to the caller
func (s *Service) ListPosts(ctx context.Context, caller access.Caller, params access.ListParams) ([]models.PostWithVotes, error) {
	q, err := access.ListPosts(caller, params)
	if err != nil {
		return nil, err
	}

	var posts []models.PostWithVotes
	err = s.repo.WithTx(ctx, "list posts", func(tx *repository.Tx) error {
		var err error
		posts, err = tx.ListPosts(ctx, q)
		return err
	})
	return posts, err
}

// GetPost returns a post if it is published or owned by the caller
// A draft owned by someone else is Forbidden rather than NotFound, which
// reveals that the id exists.
func (s *Service) GetPost(ctx context.Context, caller access.Caller, id int64) (*models.Post, error) {
	var post *models.Post
	err := s.repo.WithTx(ctx, "get post", func(tx *repository.Tx) error {
		p, err := loadPost(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := access.AuthorizePostRead(caller, id, p); err != nil {
			return err
		}
		post = p
		return nil
	})
	return post, err
}

// UpdatePost replaces the editable fields of a post the caller owns
func (s *Service) UpdatePost(ctx context.Context, caller access.Caller, id int64, in PostInput) (*models.Post, error) {
	var post *models.Post
	err := s.repo.WithTx(ctx, "update post", func(tx *repository.Tx) error {
		p, err := loadPost(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := access.AuthorizePostMutation(caller, id, p); err != nil {
			return err
		}
		p.Title = in.Title
		p.Content = in.Content
		p.Category = in.Category
		p.Published = in.Published
		if err := tx.UpdatePost(ctx, p); err != nil {
			return err
		}
		post = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Infof("Post %d updated by user %d", id, caller.ID)
	return post, nil
}

// DeletePost removes a post the caller owns and returns it
func (s *Service) DeletePost(ctx context.Context, caller access.Caller, id int64) (*models.Post, error) {
	var post *models.Post
	err := s.repo.WithTx(ctx, "delete post", func(tx *repository.Tx) error {
		p, err := loadPost(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := access.AuthorizePostMutation(caller, id, p); err != nil {
			return err
		}
		if err := tx.DeletePost(ctx, id); err != nil {
			return err
		}
		post = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Infof("Post %d deleted by user %d", id, caller.ID)
	return post, nil
}

// loadPost returns nil, nil when no post has the given id so that the
// access rules decide between not found and forbidden.
func loadPost(ctx context.Context, tx *repository.Tx, id int64) (*models.Post, error) {
	p, err := tx.PostByID(ctx, id)
	if errors.Is(err, models.ErrNotFound) {
		return nil, nil
	}
	return p, err
}
