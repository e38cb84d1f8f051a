package entities

import (
	"time"

	"github.com/google/uuid"
)

// CampaignStatus represents campaign status
type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "DRAFT"
	CampaignStatusActive    CampaignStatus = "ACTIVE"
	CampaignStatusCompleted CampaignStatus = "COMPLETED"
	CampaignStatusPaused    CampaignStatus = "PAUSED"
)

// CampaignCategory is the closed set of campaign categories.
type CampaignCategory string

const (
	CampaignCategoryEducation   CampaignCategory = "EDUCATION"
	CampaignCategoryHealth      CampaignCategory = "HEALTH"
	CampaignCategoryEnvironment CampaignCategory = "ENVIRONMENT"
	CampaignCategoryDisaster    CampaignCategory = "DISASTER_RELIEF"
	CampaignCategoryCommunity   CampaignCategory = "COMMUNITY"
)

// ValidCampaignCategory reports whether c is a known category.
func ValidCampaignCategory(c CampaignCategory) bool {
	switch c {
	case CampaignCategoryEducation, CampaignCategoryHealth, CampaignCategoryEnvironment,
		CampaignCategoryDisaster, CampaignCategoryCommunity:
		return true
	}
	return false
}

// Campaign represents a fundraising cause.
// Raised only ever grows through completed donations; it is incremented
// atomically at verification time, never read-modify-written.
type Campaign struct {
	ID          uuid.UUID        `json:"id"`
	CreatorID   uuid.UUID        `json:"creatorId"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Goal        int64            `json:"goal"`
	Raised      int64            `json:"raised"`
	Currency    string           `json:"currency"`
	Category    CampaignCategory `json:"category"`
	Status      CampaignStatus   `json:"status"`
	ImageURL    string           `json:"imageUrl,omitempty"`
	StartDate   time.Time        `json:"startDate"`
	EndDate     time.Time        `json:"endDate"`
	Updates     []CampaignUpdate `json:"updates,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
	DeletedAt   *time.Time       `json:"-"`
}

// CampaignUpdate is one entry of a campaign's update feed.
type CampaignUpdate struct {
	ID         uuid.UUID `json:"id"`
	CampaignID uuid.UUID `json:"campaignId"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
}

// CreateCampaignInput represents input for creating a campaign
type CreateCampaignInput struct {
	Title       string `json:"title" binding:"required,min=3,max=200"`
	Description string `json:"description" binding:"required"`
	Goal        int64  `json:"goal" binding:"required,gt=0"`
	Currency    string `json:"currency"`
	Category    string `json:"category" binding:"required"`
	ImageURL    string `json:"imageUrl"`
	StartDate   string `json:"startDate" binding:"required"`
	EndDate     string `json:"endDate" binding:"required"`
}

// UpdateCampaignInput represents mutable campaign fields.
type UpdateCampaignInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	ImageURL    string `json:"imageUrl"`
}

// CampaignUpdateInput appends to the update feed.
type CampaignUpdateInput struct {
	Title   string `json:"title" binding:"required,min=3,max=200"`
	Content string `json:"content" binding:"required"`
}
