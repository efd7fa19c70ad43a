package domain

import (
	"testing"

	"github.com/google/uuid"

	perr "jobguard/internal/platform/errors"
)

func TestCanTransition(t *testing.T) {
	all := []Status{StatusPending, StatusConfirmed, StatusFalsePositive, StatusIgnored}
	legal := map[[2]Status]bool{
		{StatusPending, StatusConfirmed}:     true,
		{StatusPending, StatusFalsePositive}: true,
		{StatusPending, StatusIgnored}:       true,
	}
	for _, from := range all {
		for _, to := range all {
			if got := CanTransition(from, to); got != legal[[2]Status{from, to}] {
				t.Fatalf("CanTransition(%s, %s) = %v", from, to, got)
			}
		}
	}
	for _, s := range []Status{StatusConfirmed, StatusFalsePositive, StatusIgnored} {
		if !s.Terminal() {
			t.Fatalf("%s should be terminal", s)
		}
	}
	if StatusPending.Terminal() {
		t.Fatalf("pending is not terminal")
	}
}

func TestReviewInputValidate(t *testing.T) {
	id := uuid.New()
	cases := []struct {
		name  string
		in    ReviewInput
		field string
	}{
		{"no id", ReviewInput{Decision: StatusConfirmed, ReviewerID: "m"}, "alert_id"},
		{"pending is not a decision", ReviewInput{AlertID: id, Decision: StatusPending, ReviewerID: "m"}, "decision"},
		{"unknown decision", ReviewInput{AlertID: id, Decision: "maybe", ReviewerID: "m"}, "decision"},
		{"unknown action", ReviewInput{AlertID: id, Decision: StatusConfirmed, ActionTaken: "banned", ReviewerID: "m"}, "action_taken"},
		{"blank reviewer", ReviewInput{AlertID: id, Decision: StatusIgnored, ReviewerID: "  "}, "reviewer_id"},
		{"false positive cannot remove", ReviewInput{AlertID: id, Decision: StatusFalsePositive, ActionTaken: ActionRemoved, ReviewerID: "m"}, "action_taken"},
		{"ignored cannot flag", ReviewInput{AlertID: id, Decision: StatusIgnored, ActionTaken: ActionFlagged, ReviewerID: "m"}, "action_taken"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.in.Validate()
			e, ok := perr.As(err)
			if !ok || e.Code() != perr.ErrorCodeValidation || e.Field() != tc.field {
				t.Fatalf("want validation on %s, got %v", tc.field, err)
			}
		})
	}

	in := ReviewInput{AlertID: id, Decision: StatusFalsePositive, ReviewerID: " m "}
	if err := in.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if in.ActionTaken != ActionNone || in.ReviewerID != "m" {
		t.Fatalf("defaults not applied: %+v", in)
	}
}
