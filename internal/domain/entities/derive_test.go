package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDeriveEventStatus(t *testing.T) {
	start := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	end := start.Add(4 * time.Hour)
	e := &Event{Date: start, EndDate: end, Status: EventStatusUpcoming}

	require.Equal(t, EventStatusUpcoming, DeriveEventStatus(start.Add(-time.Hour), e))
	require.Equal(t, EventStatusOngoing, DeriveEventStatus(start, e))
	require.Equal(t, EventStatusOngoing, DeriveEventStatus(start.Add(2*time.Hour), e))
	require.Equal(t, EventStatusCompleted, DeriveEventStatus(end, e))
	require.Equal(t, EventStatusCompleted, DeriveEventStatus(end.Add(time.Hour), e))

	cancelled := &Event{Date: start, EndDate: end, Status: EventStatusCancelled}
	require.Equal(t, EventStatusCancelled, DeriveEventStatus(start.Add(-time.Hour), cancelled))
	require.Equal(t, EventStatusCancelled, DeriveEventStatus(end.Add(time.Hour), cancelled))
}

func TestMeanRating(t *testing.T) {
	require.Equal(t, 0.0, MeanRating(nil))

	reviews := []*VolunteerReview{{Rating: 5}, {Rating: 4}}
	require.InDelta(t, 4.5, MeanRating(reviews), 1e-9)

	reviews = append(reviews, &VolunteerReview{Rating: 2})
	require.InDelta(t, 11.0/3.0, MeanRating(reviews), 1e-9)
}
