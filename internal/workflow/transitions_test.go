package workflow

import (
	"errors"
	"testing"

	"news-publisher/internal/domain"
)

// validPairs is the full transition table; everything else must be rejected.
var validPairs = map[domain.Status]map[domain.Trigger]domain.Status{
	domain.StatusDraft:     {domain.TriggerSubmit: domain.StatusPending},
	domain.StatusRejected:  {domain.TriggerResubmit: domain.StatusPending},
	domain.StatusPending:   {domain.TriggerApprove: domain.StatusApproved, domain.TriggerReject: domain.StatusRejected},
	domain.StatusApproved:  {domain.TriggerPublish: domain.StatusPublished},
	domain.StatusPublished: {domain.TriggerArchive: domain.StatusArchived},
}

func TestLookupValidTransitions(t *testing.T) {
	for from, byTrigger := range validPairs {
		for trigger, to := range byTrigger {
			t.Run(string(from)+"_"+string(trigger), func(t *testing.T) {
				rule, err := Lookup("a-1", from, trigger)
				if err != nil {
					t.Fatalf("Lookup(%q, %q) returned error: %v", from, trigger, err)
				}
				if rule.From != from || rule.To != to {
					t.Errorf("Lookup(%q, %q) = %q -> %q, want %q -> %q", from, trigger, rule.From, rule.To, from, to)
				}
			})
		}
	}
}

func TestLookupRejectsEverythingElse(t *testing.T) {
	for _, from := range domain.ValidStatuses {
		for _, trigger := range Triggers() {
			if _, ok := validPairs[from][trigger]; ok {
				continue
			}
			t.Run(string(from)+"_"+string(trigger), func(t *testing.T) {
				_, err := Lookup("a-1", from, trigger)
				if err == nil {
					t.Fatalf("Lookup(%q, %q) succeeded, want rejection", from, trigger)
				}

				if from == domain.StatusPending && trigger == domain.TriggerSubmit {
					if !errors.Is(err, domain.ErrAlreadyPending) {
						t.Errorf("Lookup(pending, submit) = %v, want ErrAlreadyPending", err)
					}
					return
				}

				var transErr *domain.TransitionError
				if !errors.As(err, &transErr) {
					t.Fatalf("Lookup(%q, %q) = %v, want TransitionError", from, trigger, err)
				}
				if transErr.From != from || transErr.Trigger != trigger {
					t.Errorf("TransitionError carries %q/%q, want %q/%q", transErr.From, transErr.Trigger, from, trigger)
				}
			})
		}
	}
}

func TestPublishOnlyReachableFromApproved(t *testing.T) {
	// Re-publishing an already-published article must fail.
	_, err := Lookup("a-1", domain.StatusPublished, domain.TriggerPublish)
	var transErr *domain.TransitionError
	if !errors.As(err, &transErr) {
		t.Fatalf("Lookup(published, publish) = %v, want TransitionError", err)
	}
}
