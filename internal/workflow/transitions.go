package workflow

import (
	"news-publisher/internal/domain"
)

// Rule is one row of the transition table.
type Rule struct {
	From   domain.Status
	To     domain.Status
	Action domain.Action
	Event  domain.ReviewAction
}

// transitions is the complete directed graph of valid status transitions.
// Any (status, trigger) pair not reachable through this table is invalid.
var transitions = map[domain.Trigger]Rule{
	domain.TriggerSubmit: {
		From:   domain.StatusDraft,
		To:     domain.StatusPending,
		Action: domain.ActionSubmit,
		Event:  domain.ReviewActionSubmitted,
	},
	domain.TriggerResubmit: {
		From:   domain.StatusRejected,
		To:     domain.StatusPending,
		Action: domain.ActionSubmit,
		Event:  domain.ReviewActionResubmitted,
	},
	domain.TriggerApprove: {
		From:   domain.StatusPending,
		To:     domain.StatusApproved,
		Action: domain.ActionApprove,
		Event:  domain.ReviewActionApproved,
	},
	domain.TriggerReject: {
		From:   domain.StatusPending,
		To:     domain.StatusRejected,
		Action: domain.ActionReject,
		Event:  domain.ReviewActionRejected,
	},
	domain.TriggerPublish: {
		From:   domain.StatusApproved,
		To:     domain.StatusPublished,
		Action: domain.ActionPublish,
		Event:  domain.ReviewActionPublished,
	},
	domain.TriggerArchive: {
		From:   domain.StatusPublished,
		To:     domain.StatusArchived,
		Action: domain.ActionArchive,
		Event:  domain.ReviewActionArchived,
	},
}

// Triggers lists every trigger in the transition table.
func Triggers() []domain.Trigger {
	return []domain.Trigger{
		domain.TriggerSubmit,
		domain.TriggerResubmit,
		domain.TriggerApprove,
		domain.TriggerReject,
		domain.TriggerPublish,
		domain.TriggerArchive,
	}
}

// ActionFor maps a trigger to the permission-gate action it requires. The
// mapping does not depend on the article's state, so the gate can run before
// the table lookup.
func ActionFor(trigger domain.Trigger) domain.Action {
	switch trigger {
	case domain.TriggerSubmit, domain.TriggerResubmit:
		return domain.ActionSubmit
	case domain.TriggerApprove:
		return domain.ActionApprove
	case domain.TriggerReject:
		return domain.ActionReject
	case domain.TriggerPublish:
		return domain.ActionPublish
	case domain.TriggerArchive:
		return domain.ActionArchive
	}
	return domain.Action(trigger)
}

// Lookup resolves a (current status, trigger) pair against the transition
// table. Submitting an already-pending article is reported as
// ErrAlreadyPending rather than a generic invalid transition.
func Lookup(articleID string, from domain.Status, trigger domain.Trigger) (Rule, error) {
	rule, ok := transitions[trigger]
	if !ok || rule.From != from {
		if trigger == domain.TriggerSubmit && from == domain.StatusPending {
			return Rule{}, domain.ErrAlreadyPending
		}
		return Rule{}, &domain.TransitionError{ArticleID: articleID, From: from, Trigger: trigger}
	}
	return rule, nil
}
