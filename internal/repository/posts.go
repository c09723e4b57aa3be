package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jayadityadev/social-media-api/internal/access"
	"github.com/jayadityadev/social-media-api/internal/models"
)

const postColumns = `id, title, content, category, published, created_at, owner_id`

// CreatePost inserts post and fills in its id and creation time
func (t *Tx) CreatePost(ctx context.Context, post *models.Post) error {
	createdAt := now()
	query := t.tx.Rebind(`
		INSERT INTO posts (title, content, category, published, created_at, owner_id)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id`)
	err := t.tx.QueryRowxContext(ctx, query,
		post.Title, post.Content, post.Category, post.Published, createdAt, post.OwnerID,
	).Scan(&post.ID)
	if err != nil {
		return classify(fmt.Errorf("failed to create post: %w", err), "owner does not exist")
	}
	post.CreatedAt = createdAt
	return nil
}

// PostByID loads a post regardless of who may see it.
// Callers must run the result through the access rules.
func (t *Tx) PostByID(ctx context.Context, id int64) (*models.Post, error) {
	post := &models.Post{}
	query := t.tx.Rebind(`SELECT ` + postColumns + ` FROM posts WHERE id = ?`)
	if err := t.tx.GetContext(ctx, post, query, id); err != nil {
		return nil, notFound(err, "post with id %d not found", id)
	}
	return post, nil
}

// UpdatePost overwrites the editable fields of post.ID
func (t *Tx) UpdatePost(ctx context.Context, post *models.Post) error {
	query := t.tx.Rebind(`
		UPDATE posts SET title = ?, content = ?, category = ?, published = ?
		WHERE id = ?`)
	res, err := t.tx.ExecContext(ctx, query, post.Title, post.Content, post.Category, post.Published, post.ID)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}
	return expectRow(res, "post with id %d not found", post.ID)
}

// DeletePost removes a post and, by cascade, its votes
func (t *Tx) DeletePost(ctx context.Context, id int64) error {
	res, err := t.tx.ExecContext(ctx, t.tx.Rebind(`DELETE FROM posts WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return expectRow(res, "post with id %d not found", id)
}

// ListPosts runs q. Votes is zero on every row unless q.WithVoteCount is set.
func (t *Tx) ListPosts(ctx context.Context, q access.PostQuery) ([]models.PostWithVotes, error) {
	query, args := compilePostQuery(t.dialect, q)
	posts := []models.PostWithVotes{}
	if err := t.tx.SelectContext(ctx, &posts, t.tx.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

// compilePostQuery renders q as SQL with ? placeholders.
// This is the only place the visibility predicate is written in SQL.
func compilePostQuery(d dialect, q access.PostQuery) (string, []any) {
	var b strings.Builder
	args := make([]any, 0, 4)

	b.WriteString(`SELECT p.id, p.title, p.content, p.category, p.published, p.created_at, p.owner_id`)
	if q.WithVoteCount {
		b.WriteString(`, COUNT(v.post_id) AS votes FROM posts p LEFT JOIN votes v ON v.post_id = p.id`)
	} else {
		b.WriteString(`, 0 AS votes FROM posts p`)
	}

	b.WriteString(` WHERE (p.published = TRUE OR p.owner_id = ?)`)
	args = append(args, q.Visibility.ViewerID)

	if q.TitleContains != "" {
		b.WriteString(` AND ` + d.substring("p.title"))
		args = append(args, q.TitleContains)
	}

	if q.WithVoteCount {
		b.WriteString(` GROUP BY p.id`)
	}

	b.WriteString(` ORDER BY p.id ASC LIMIT ? OFFSET ?`)
	args = append(args, q.Limit, q.Offset)

	return b.String(), args
}
