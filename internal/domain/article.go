package domain

import "time"

// Status is the editorial state of an article. It is the single source of
// truth for the workflow; the timestamp fields are audit data derived from
// transitions, never the other way around.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

// ValidStatuses contains all valid article statuses.
var ValidStatuses = []Status{
	StatusDraft,
	StatusPending,
	StatusApproved,
	StatusRejected,
	StatusPublished,
	StatusArchived,
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusPending, StatusApproved, StatusRejected, StatusPublished, StatusArchived:
		return true
	}
	return false
}

func (s Status) String() string { return string(s) }

// Editable reports whether the author may still change article content.
func (s Status) Editable() bool {
	return s == StatusDraft || s == StatusRejected
}

// Article represents a unit of editorial content.
type Article struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Content          string     `json:"content"`
	Excerpt          string     `json:"excerpt"`
	Category         string     `json:"category"`
	Tags             []string   `json:"tags,omitempty"`
	FeaturedImageURL *string    `json:"featured_image_url,omitempty"`
	ImageCaption     *string    `json:"image_caption,omitempty"`
	SEOTitle         *string    `json:"seo_title,omitempty"`
	SEODescription   *string    `json:"seo_description,omitempty"`
	WordCount        int        `json:"word_count"`
	AuthorID         string     `json:"author_id"`
	AuthorName       string     `json:"author_name"`
	Status           Status     `json:"status"`
	SubmittedAt      *time.Time `json:"submitted_at,omitempty"`
	ReviewedAt       *time.Time `json:"reviewed_at,omitempty"`
	ReviewedBy       *string    `json:"reviewed_by,omitempty"`
	RejectionReason  *string    `json:"rejection_reason,omitempty"`
	PublishedAt      *time.Time `json:"published_at,omitempty"`
	ViewCount        int64      `json:"view_count"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// OwnedBy reports whether the article was authored by the given profile.
func (a *Article) OwnedBy(profileID string) bool {
	return a.AuthorID == profileID
}

// ArticleFilter narrows article listings.
type ArticleFilter struct {
	Category string
	Tag      string
	Search   string
	Limit    int
	Offset   int
}
