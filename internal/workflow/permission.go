// Package workflow contains the editorial workflow core: the permission gate
// and the article status transition table. Both are pure decision logic; all
// mutations happen in the service and repository layers, and the content
// store's row-level policies remain the authoritative enforcement point.
// These checks are the fast reject, not the security boundary.
package workflow

import (
	"news-publisher/internal/domain"
)

// Target describes the resource a permission decision is about.
type Target struct {
	// Owned reports whether the acting profile authored the article.
	Owned bool
	// Status is the article's current status. Only the delete rule
	// looks at it.
	Status domain.Status
}

// Allow decides whether an actor with the given role may perform action on
// the target. It returns nil to allow, or a PermissionError naming the
// failed precondition. It has no side effects.
func Allow(role domain.Role, action domain.Action, target Target) error {
	switch action {
	case domain.ActionCreate:
		if !role.CanWrite() {
			return denied(role, action, "only writers, editors and admins can create articles")
		}
		return nil

	case domain.ActionSubmit:
		// Only the author may submit or resubmit, regardless of role.
		if !role.CanWrite() {
			return denied(role, action, "only writers, editors and admins can submit articles")
		}
		if !target.Owned {
			return denied(role, action, "only the author can submit this article")
		}
		return nil

	case domain.ActionEditOwn:
		if !role.CanWrite() {
			return denied(role, action, "only writers, editors and admins can edit articles")
		}
		if !target.Owned && !role.CanReview() {
			return denied(role, action, "only the author or an editor can edit this article")
		}
		return nil

	case domain.ActionApprove, domain.ActionReject, domain.ActionPublish, domain.ActionArchive:
		if !role.CanReview() {
			return denied(role, action, "only editors and admins can review articles")
		}
		return nil

	case domain.ActionDelete:
		if role.CanReview() {
			return nil
		}
		if !role.CanWrite() || !target.Owned {
			return denied(role, action, "only the author or an editor can delete this article")
		}
		if target.Status != domain.StatusDraft {
			return denied(role, action, "authors can only delete drafts")
		}
		return nil

	case domain.ActionChangeRole, domain.ActionDeactivate:
		if role != domain.RoleAdmin {
			return denied(role, action, "only admins can manage profiles")
		}
		return nil
	}

	return denied(role, action, "unknown action")
}

func denied(role domain.Role, action domain.Action, reason string) error {
	return &domain.PermissionError{Role: role, Action: action, Reason: reason}
}
