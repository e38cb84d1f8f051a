package entities

import "time"

// DeriveEventStatus computes an event's status from the clock and its
// schedule. A cancelled event stays cancelled; nothing else is sticky,
// so the derivation can run any number of times.
func DeriveEventStatus(now time.Time, e *Event) EventStatus {
	if e.Status == EventStatusCancelled {
		return EventStatusCancelled
	}
	switch {
	case now.Before(e.Date):
		return EventStatusUpcoming
	case now.Before(e.EndDate):
		return EventStatusOngoing
	default:
		return EventStatusCompleted
	}
}

// MeanRating computes the average of review ratings, 0 when there are
// none. Stored ratings are recomputed from this after every review.
func MeanRating(reviews []*VolunteerReview) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var sum int
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews))
}
