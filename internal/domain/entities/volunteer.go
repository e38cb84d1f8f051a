package entities

import (
	"time"

	"github.com/google/uuid"
)

// ApplicationStatus represents a volunteer application's review state.
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "PENDING"
	ApplicationStatusApproved ApplicationStatus = "APPROVED"
	ApplicationStatusRejected ApplicationStatus = "REJECTED"
	ApplicationStatusOnHold   ApplicationStatus = "ON_HOLD"
)

// Availability is the closed set of volunteer availability windows.
type Availability string

const (
	AvailabilityWeekdays Availability = "WEEKDAYS"
	AvailabilityWeekends Availability = "WEEKENDS"
	AvailabilityEvenings Availability = "EVENINGS"
	AvailabilityFlexible Availability = "FLEXIBLE"
)

// ValidAvailability reports whether a is a known availability window.
func ValidAvailability(a Availability) bool {
	switch a {
	case AvailabilityWeekdays, AvailabilityWeekends, AvailabilityEvenings, AvailabilityFlexible:
		return true
	}
	return false
}

// AssignmentStatus represents an assignment's state.
type AssignmentStatus string

const (
	AssignmentStatusActive    AssignmentStatus = "ACTIVE"
	AssignmentStatusCompleted AssignmentStatus = "COMPLETED"
	AssignmentStatusDropped   AssignmentStatus = "DROPPED"
)

// EmergencyContact is required on every application.
type EmergencyContact struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Phone        string `json:"phone"`
}

// Volunteer is a volunteer profile, 1:1 with a user.
// Rating is the mean of review ratings, recomputed explicitly whenever a
// review is written.
type Volunteer struct {
	ID                uuid.UUID         `json:"id"`
	UserID            uuid.UUID         `json:"userId"`
	ApplicationStatus ApplicationStatus `json:"applicationStatus"`
	Skills            []string          `json:"skills"`
	Availability      Availability      `json:"availability"`
	Motivation        string            `json:"motivation"`
	EmergencyContact  EmergencyContact  `json:"emergencyContact"`
	Assignments       []Assignment      `json:"assignments,omitempty"`
	Reviews           []VolunteerReview `json:"reviews,omitempty"`
	TotalHours        float64           `json:"totalHours"`
	Rating            float64           `json:"rating"`
	CreatedAt         time.Time         `json:"createdAt"`
	UpdatedAt         time.Time         `json:"updatedAt"`
	DeletedAt         *time.Time        `json:"-"`
}

// Assignment is a role a volunteer holds for a period.
type Assignment struct {
	ID          uuid.UUID        `json:"id"`
	VolunteerID uuid.UUID        `json:"volunteerId"`
	Role        string           `json:"role"`
	StartDate   time.Time        `json:"startDate"`
	EndDate     *time.Time       `json:"endDate,omitempty"`
	Status      AssignmentStatus `json:"status"`
	HoursLogged float64          `json:"hoursLogged"`
	CreatedAt   time.Time        `json:"createdAt"`
}

// VolunteerReview is one rating of a volunteer's work.
type VolunteerReview struct {
	ID          uuid.UUID `json:"id"`
	VolunteerID uuid.UUID `json:"volunteerId"`
	ReviewerID  uuid.UUID `json:"reviewerId"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ApplyInput represents a volunteer application.
type ApplyInput struct {
	Skills           []string         `json:"skills" binding:"required,min=1"`
	Availability     string           `json:"availability" binding:"required"`
	Motivation       string           `json:"motivation" binding:"required,min=10"`
	EmergencyContact EmergencyContact `json:"emergencyContact" binding:"required"`
}

// AssignmentInput creates an assignment for an approved volunteer.
type AssignmentInput struct {
	Role      string `json:"role" binding:"required"`
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate"`
}

// LogHoursInput records hours against an assignment.
type LogHoursInput struct {
	AssignmentID string  `json:"assignmentId" binding:"required"`
	Hours        float64 `json:"hours" binding:"required,gt=0"`
}

// ReviewInput rates a volunteer 1..5.
type ReviewInput struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}
