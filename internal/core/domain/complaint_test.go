package domain

import "testing"

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to ComplaintStatus
		want     bool
	}{
		{StatusSubmitted, StatusInProgress, true},
		{StatusSubmitted, StatusResolved, true},
		{StatusSubmitted, StatusRejected, true},
		{StatusInProgress, StatusInProgress, true},
		{StatusInProgress, StatusResolved, true},
		{StatusInProgress, StatusRejected, true},
		{StatusSubmitted, StatusSubmitted, false},
		{StatusInProgress, StatusSubmitted, false},
		{StatusResolved, StatusInProgress, false},
		{StatusResolved, StatusResolved, false},
		{StatusRejected, StatusInProgress, false},
		{StatusRejected, StatusResolved, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("%s -> %s: got %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestStatusIsTerminal(t *testing.T) {
	if StatusSubmitted.IsTerminal() || StatusInProgress.IsTerminal() {
		t.Error("open statuses must not be terminal")
	}
	if !StatusResolved.IsTerminal() || !StatusRejected.IsTerminal() {
		t.Error("Resolved and Rejected must be terminal")
	}
}

func TestValidCategory(t *testing.T) {
	for _, c := range Categories {
		if !ValidCategory(c) {
			t.Errorf("category %q should be valid", c)
		}
	}
	if ValidCategory("Gardening") {
		t.Error("unknown category accepted")
	}
	if ValidCategory("") {
		t.Error("empty category accepted")
	}
}
