package models

// Vote marks that a user has voted on a post. Only presence is stored.
type Vote struct {
	UserID int64 `db:"user_id" json:"user_id"`
	PostID int64 `db:"post_id" json:"post_id"`
}
