package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindow_Overlaps(t *testing.T) {
	base := time.Date(2030, 1, 1, 19, 0, 0, 0, time.UTC)
	w := NewWindow(base, 120) // 19:00-21:00

	tests := []struct {
		name  string
		other Window
		want  bool
	}{
		{"same window", NewWindow(base, 120), true},
		{"starts inside", NewWindow(base.Add(time.Hour), 120), true},
		{"ends inside", NewWindow(base.Add(-time.Hour), 90), true},
		{"contains", NewWindow(base.Add(-time.Hour), 300), true},
		{"touches end", NewWindow(base.Add(2*time.Hour), 60), false},
		{"touches start", NewWindow(base.Add(-time.Hour), 60), false},
		{"far after", NewWindow(base.Add(5*time.Hour), 60), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(w))
		})
	}
}

func TestNewWindow_DefaultDuration(t *testing.T) {
	start := time.Date(2030, 1, 1, 19, 0, 0, 0, time.UTC)

	w := NewWindow(start, 0)

	assert.Equal(t, start.Add(2*time.Hour), w.End)
}

func TestBookingStatus_CanTransition(t *testing.T) {
	assert.True(t, BookingStatusPending.CanTransition(BookingStatusApproved))
	assert.True(t, BookingStatusPending.CanTransition(BookingStatusDeclined))
	assert.True(t, BookingStatusPending.CanTransition(BookingStatusCancelled))
	assert.True(t, BookingStatusApproved.CanTransition(BookingStatusCancelled))

	assert.False(t, BookingStatusApproved.CanTransition(BookingStatusDeclined))
	assert.False(t, BookingStatusApproved.CanTransition(BookingStatusApproved))
	assert.False(t, BookingStatusDeclined.CanTransition(BookingStatusApproved))
	assert.False(t, BookingStatusCancelled.CanTransition(BookingStatusApproved))
	assert.False(t, BookingStatusCancelled.CanTransition(BookingStatusCancelled))
	assert.False(t, BookingStatusDeclined.CanTransition(BookingStatusPending))
}

func TestBookingDraft_Validate_Valid(t *testing.T) {
	now := time.Now()
	tableID := int64(1)

	d := BookingDraft{
		TableID:       &tableID,
		CustomerName:  "Alice",
		CustomerEmail: "alice@example.com",
		PartySize:     4,
		BookedAt:      now.Add(time.Hour),
	}

	assert.NoError(t, d.Validate(now))
}

func TestBookingDraft_Validate_ReportsAllViolations(t *testing.T) {
	now := time.Now()
	tableID := int64(1)

	d := BookingDraft{
		TableID:         &tableID,
		CustomerName:    "   ",
		CustomerEmail:   "not-an-email",
		PartySize:       25,
		BookedAt:        now.Add(-time.Minute),
		DurationMinutes: 200_000_000,
	}

	err := d.Validate(now)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)

	fields := make([]string, 0)
	for _, v := range Violations(err) {
		fields = append(fields, v.Field)
	}
	assert.ElementsMatch(t, []string{"customer_name", "customer_email", "party_size", "booked_at", "duration_minutes"}, fields)
}

func TestBookingDraft_Validate_DurationBounds(t *testing.T) {
	now := time.Now()
	tableID := int64(1)
	draft := func(minutes int) BookingDraft {
		return BookingDraft{
			TableID:         &tableID,
			CustomerName:    "Alice",
			PartySize:       2,
			BookedAt:        now.Add(time.Hour),
			DurationMinutes: minutes,
		}
	}

	assert.NoError(t, draft(0).Validate(now), "zero falls back to the default")
	assert.NoError(t, draft(MaxDurationMinutes).Validate(now))

	for _, minutes := range []int{-1, MaxDurationMinutes + 1, 1_000_000, 200_000_000} {
		err := draft(minutes).Validate(now)
		require.Error(t, err, minutes)
		require.Len(t, Violations(err), 1)
		assert.Equal(t, "duration_minutes", Violations(err)[0].Field)
	}
}

func TestBookingDraft_Validate_RequiresTableOrStore(t *testing.T) {
	now := time.Now()

	d := BookingDraft{
		CustomerName: "Bob",
		PartySize:    2,
		BookedAt:     now.Add(time.Hour),
	}

	err := d.Validate(now)

	require.Error(t, err)
	require.Len(t, Violations(err), 1)
	assert.Equal(t, "table_id", Violations(err)[0].Field)
}

func TestBooking_RequestedBy(t *testing.T) {
	uid := "u1"
	b := &Booking{UserID: &uid}

	assert.True(t, b.RequestedBy(Actor{UserID: "u1"}))
	assert.False(t, b.RequestedBy(Actor{UserID: "u2"}))
	assert.False(t, (&Booking{}).RequestedBy(Actor{}))
}

func TestActor_Owns(t *testing.T) {
	assert.True(t, Actor{UserID: "owner"}.Owns("owner"))
	assert.True(t, Actor{UserID: "someone", Admin: true}.Owns("owner"))
	assert.False(t, Actor{UserID: "someone"}.Owns("owner"))
	assert.False(t, Actor{}.Owns(""))
}
