package domain

import (
	"testing"
	"time"
)

func date(day int) time.Time {
	return time.Date(2024, time.June, day, 0, 0, 0, 0, time.UTC)
}

func TestCanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to ReservationStatus
		want     bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCanceled, true},
		{StatusPending, StatusCompleted, false},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCanceled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCompleted, StatusCanceled, false},
		{StatusCompleted, StatusConfirmed, false},
		{StatusCanceled, StatusPending, false},
		{StatusCanceled, StatusConfirmed, false},
		{StatusPending, StatusPending, false},
	}
	for _, c := range cases {
		if got := c.from.CanTransitionTo(c.to); got != c.want {
			t.Errorf("%s -> %s: got %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestParseReservationStatus(t *testing.T) {
	for _, raw := range []string{"pending", "confirmed", "canceled", "completed"} {
		s, err := ParseReservationStatus(raw)
		if err != nil {
			t.Errorf("ParseReservationStatus(%q): unexpected error %v", raw, err)
		}
		if string(s) != raw {
			t.Errorf("ParseReservationStatus(%q) = %q", raw, s)
		}
	}

	if _, err := ParseReservationStatus("delivered"); err != ErrInvalidStatus {
		t.Errorf("unknown status: got %v, want ErrInvalidStatus", err)
	}
	if _, err := ParseReservationStatus(""); err != ErrInvalidStatus {
		t.Errorf("empty status: got %v, want ErrInvalidStatus", err)
	}
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     time.Time
		want                           bool
	}{
		{"identical", date(1), date(5), date(1), date(5), true},
		{"contained", date(1), date(10), date(3), date(5), true},
		{"partial overlap", date(1), date(5), date(3), date(10), true},
		{"disjoint", date(1), date(5), date(6), date(10), false},
		{"adjacent, a before b", date(1), date(5), date(5), date(10), false},
		{"adjacent, b before a", date(5), date(10), date(1), date(5), false},
		{"one instant shared", date(1), date(6), date(5), date(10), true},
	}
	for _, c := range cases {
		if got := Overlaps(c.aStart, c.aEnd, c.bStart, c.bEnd); got != c.want {
			t.Errorf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
}

func TestBlockingStatuses(t *testing.T) {
	blocked := map[ReservationStatus]bool{}
	for _, s := range BlockingStatuses {
		blocked[s] = true
	}
	if !blocked[StatusConfirmed] || !blocked[StatusCompleted] {
		t.Error("confirmed and completed must block availability")
	}
	if blocked[StatusPending] {
		t.Error("pending must not block availability")
	}
	if blocked[StatusCanceled] {
		t.Error("canceled must not block availability")
	}
}
