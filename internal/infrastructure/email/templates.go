package email

import (
	"fmt"

	"sahaaya.backend/internal/domain/entities"
)

// Template builders return ready-to-dispatch messages. Amounts arrive in
// the smallest currency unit and render as major units.

func formatAmount(amount int64, currency string) string {
	return fmt.Sprintf("%s %.2f", currency, float64(amount)/100)
}

// DonationReceipt confirms a completed donation.
func DonationReceipt(to, name string, d *entities.Donation) Message {
	campaign := "our general fund"
	if d.Campaign != nil {
		campaign = fmt.Sprintf("the campaign %q", d.Campaign.Title)
	}
	return Message{
		To:      to,
		ToName:  name,
		Subject: fmt.Sprintf("Donation receipt %s", d.ReceiptNumber.String),
		HTMLBody: fmt.Sprintf(
			"<p>Dear %s,</p><p>Thank you for your donation of <b>%s</b> to %s.</p><p>Receipt number: <b>%s</b></p><p>This email serves as your official receipt.</p>",
			name, formatAmount(d.Amount, d.Currency), campaign, d.ReceiptNumber.String),
	}
}

// VolunteerApplicationReceived acknowledges a new application.
func VolunteerApplicationReceived(to, name string) Message {
	return Message{
		To:      to,
		ToName:  name,
		Subject: "We received your volunteer application",
		HTMLBody: fmt.Sprintf(
			"<p>Dear %s,</p><p>Thank you for applying to volunteer with us. Our team reviews every application and will get back to you shortly.</p>",
			name),
	}
}

// VolunteerApproved welcomes a newly approved volunteer.
func VolunteerApproved(to, name string) Message {
	return Message{
		To:      to,
		ToName:  name,
		Subject: "Welcome to the volunteer team",
		HTMLBody: fmt.Sprintf(
			"<p>Dear %s,</p><p>Your volunteer application has been approved. Our coordinator will reach out with your first assignment.</p>",
			name),
	}
}

// EventConfirmation confirms an event registration.
func EventConfirmation(to, name string, e *entities.Event) Message {
	return Message{
		To:      to,
		ToName:  name,
		Subject: fmt.Sprintf("You're registered: %s", e.Title),
		HTMLBody: fmt.Sprintf(
			"<p>Dear %s,</p><p>You are registered for <b>%s</b>.</p><p>When: %s<br>Where: %s</p>",
			name, e.Title, e.Date.Format("Mon, 02 Jan 2006 15:04"), e.Location),
	}
}

// CampaignUpdate shares a campaign update with a past donor.
func CampaignUpdate(to, name string, campaignTitle string, u *entities.CampaignUpdate) Message {
	return Message{
		To:      to,
		ToName:  name,
		Subject: fmt.Sprintf("Update on %s: %s", campaignTitle, u.Title),
		HTMLBody: fmt.Sprintf(
			"<p>Dear %s,</p><p>There is news from the campaign you supported, <b>%s</b>:</p><h3>%s</h3><p>%s</p>",
			name, campaignTitle, u.Title, u.Content),
	}
}

// ContactResponse delivers an admin's reply to an inquiry.
func ContactResponse(c *entities.Contact) Message {
	return Message{
		To:      c.Email,
		ToName:  c.Name,
		Subject: fmt.Sprintf("Re: %s", c.Subject),
		HTMLBody: fmt.Sprintf(
			"<p>Dear %s,</p><p>%s</p><hr><p>Your original message:</p><blockquote>%s</blockquote>",
			c.Name, c.Response, c.Message),
	}
}

// Broadcast renders an admin notification for one recipient.
func Broadcast(to, name string, n *entities.Notification) Message {
	return Message{
		To:       to,
		ToName:   name,
		Subject:  n.Title,
		HTMLBody: fmt.Sprintf("<p>Dear %s,</p><p>%s</p>", name, n.Body),
	}
}
