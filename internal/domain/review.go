package domain

import "time"

// ReviewAction identifies a workflow transition in the audit trail.
type ReviewAction string

const (
	ReviewActionSubmitted   ReviewAction = "submitted"
	ReviewActionResubmitted ReviewAction = "resubmitted"
	ReviewActionApproved    ReviewAction = "approved"
	ReviewActionRejected    ReviewAction = "rejected"
	ReviewActionPublished   ReviewAction = "published"
	ReviewActionArchived    ReviewAction = "archived"
)

// ReviewEvent is one immutable audit record of a status transition. Exactly
// one event is appended per successful transition, in the same transaction
// as the status update.
type ReviewEvent struct {
	ID         string       `json:"id"`
	ArticleID  string       `json:"article_id"`
	ActorID    string       `json:"actor_id"`
	Action     ReviewAction `json:"action"`
	FromStatus Status       `json:"from_status"`
	ToStatus   Status       `json:"to_status"`
	Reason     *string      `json:"reason,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
}

// ProfileEventAction identifies an audited admin operation on a profile.
type ProfileEventAction string

const (
	ProfileEventRoleChanged ProfileEventAction = "role_changed"
	ProfileEventActivated   ProfileEventAction = "activated"
	ProfileEventDeactivated ProfileEventAction = "deactivated"
)

// ProfileEvent is the audit record of an admin action on a profile.
type ProfileEvent struct {
	ID        string             `json:"id"`
	ProfileID string             `json:"profile_id"`
	ActorID   string             `json:"actor_id"`
	Action    ProfileEventAction `json:"action"`
	OldValue  string             `json:"old_value,omitempty"`
	NewValue  string             `json:"new_value,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
}
