package models

import "time"

// DefaultCategory is assigned to posts created without a category
const DefaultCategory = "Generic"

// Post represents a blog post owned by a single user
type Post struct {
	ID        int64     `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Content   string    `db:"content" json:"content"`
	Category  string    `db:"category" json:"category"`
	Published bool      `db:"published" json:"published"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	OwnerID   int64     `db:"owner_id" json:"owner_id"`
}

// PostWithVotes is a post joined with the number of votes cast on it
type PostWithVotes struct {
	Post  `json:"post"`
	Votes int64 `db:"votes" json:"votes"`
}
