package domain

import "time"

// Comment represents a comment on an article. Comments are append-only and
// carry no workflow state.
type Comment struct {
	ID        string    `json:"id"`
	ArticleID string    `json:"article_id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// Like represents a per-user like on an article.
type Like struct {
	ArticleID string    `json:"article_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
