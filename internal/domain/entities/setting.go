package entities

import "time"

// Settings is the single organisation settings document.
type Settings struct {
	OrganisationName   string    `json:"organisationName"`
	ContactEmail       string    `json:"contactEmail"`
	Currency           string    `json:"currency"`
	// MinDonationAmount is an optional floor for one-off donations;
	// 0 means no minimum beyond a positive amount.
	MinDonationAmount  int64     `json:"minDonationAmount"`
	MinRecurringAmount int64     `json:"minRecurringAmount"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// UpdateSettingsInput represents the admin settings form.
type UpdateSettingsInput struct {
	OrganisationName   string `json:"organisationName" binding:"required,min=2"`
	ContactEmail       string `json:"contactEmail" binding:"required,email"`
	Currency           string `json:"currency" binding:"required,len=3"`
	MinDonationAmount  int64  `json:"minDonationAmount" binding:"gte=0"`
	MinRecurringAmount int64  `json:"minRecurringAmount" binding:"gte=1"`
}
