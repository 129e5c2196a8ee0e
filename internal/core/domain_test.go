package core

import (
	"testing"
	"time"
)

func TestTransactionValidate(t *testing.T) {
	good := Transaction{
		Amount:   NewAmount(10),
		Category: CategoryFood,
		Type:     Expense,
		Date:     NewDate(time.Now()),
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	cases := []struct {
		name string
		tx   Transaction
		want error
	}{
		{"zero amount", Transaction{Amount: NewAmount(0), Category: CategoryFood, Type: Expense, Date: NewDate(time.Now())}, ErrInvalidAmount},
		{"negative amount", Transaction{Amount: NewAmount(-5), Category: CategoryFood, Type: Expense, Date: NewDate(time.Now())}, ErrInvalidAmount},
		{"unknown category", Transaction{Amount: NewAmount(5), Category: "fuel", Type: Expense, Date: NewDate(time.Now())}, ErrInvalidCategory},
		{"unknown type", Transaction{Amount: NewAmount(5), Category: CategoryFood, Type: "transfer", Date: NewDate(time.Now())}, ErrInvalidType},
		{"zero date", Transaction{Amount: NewAmount(5), Category: CategoryFood, Type: Expense}, ErrInvalidDate},
	}
	for _, tc := range cases {
		if err := tc.tx.Validate(); err != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestGoalValidate(t *testing.T) {
	good := Goal{Name: "Vacation", Target: NewAmount(3000), Current: NewAmount(500)}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	bads := []struct {
		g    Goal
		want error
	}{
		{Goal{Name: "  ", Target: NewAmount(100)}, ErrEmptyName},
		{Goal{Name: "x", Target: NewAmount(0)}, ErrInvalidTarget},
		{Goal{Name: "x", Target: NewAmount(100), Current: NewAmount(-1)}, ErrNegativeCurrent},
	}
	for i, tc := range bads {
		if err := tc.g.Validate(); err != tc.want {
			t.Fatalf("case %d: expected %v, got %v", i, tc.want, err)
		}
	}
}

func TestGoalProgress(t *testing.T) {
	cases := []struct {
		current, target float64
		progress        float64
		complete        bool
	}{
		{500, 1000, 0.5, false},
		{1000, 1000, 1, true},
		{1500, 1000, 1, true}, // clamped
		{0, 1000, 0, false},
		{10, 0, 0, true}, // degenerate target
	}
	for i, tc := range cases {
		g := Goal{Name: "g", Target: NewAmount(tc.target), Current: NewAmount(tc.current)}
		if got := g.Progress(); got != tc.progress {
			t.Fatalf("case %d: progress = %v, want %v", i, got, tc.progress)
		}
		if got := g.Complete(); got != tc.complete {
			t.Fatalf("case %d: complete = %v, want %v", i, got, tc.complete)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	if err := ValidateEmail("a@b.com"); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	for _, bad := range []string{"", "nope", "a@b", "a b@c.com"} {
		if err := ValidateEmail(bad); err != ErrInvalidEmail {
			t.Fatalf("%q: expected ErrInvalidEmail, got %v", bad, err)
		}
	}
}

func TestDateLenientUnmarshal(t *testing.T) {
	var d Date
	if err := d.UnmarshalJSON([]byte(`"2025-07-09T18:07:22Z"`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.IsZero() {
		t.Fatalf("expected parsed date")
	}
	if err := d.UnmarshalJSON([]byte(`"not a date"`)); err != nil {
		t.Fatalf("malformed date must not error, got %v", err)
	}
	if !d.IsZero() {
		t.Fatalf("malformed date must decode to zero time")
	}
}

func TestSameLocalDay(t *testing.T) {
	now := time.Date(2025, 8, 29, 15, 0, 0, 0, time.Local)
	sameDay := NewDate(time.Date(2025, 8, 29, 1, 0, 0, 0, time.Local))
	yesterday := NewDate(now.AddDate(0, 0, -1))
	if !sameDay.SameLocalDay(now) {
		t.Fatalf("same day not detected")
	}
	if yesterday.SameLocalDay(now) {
		t.Fatalf("yesterday must not match today")
	}
}
