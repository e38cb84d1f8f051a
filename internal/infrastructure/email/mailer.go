package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Message is one outbound email.
type Message struct {
	To       string `json:"to"`
	ToName   string `json:"toName"`
	Subject  string `json:"subject"`
	HTMLBody string `json:"htmlBody"`
}

// Sender delivers a message to its recipient.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Config holds the transactional email API settings.
type Config struct {
	APIURL      string
	APIKey      string
	FromAddress string
	FromName    string
	Timeout     time.Duration
}

// ZeptoMailer sends email through the ZeptoMail HTTP API.
type ZeptoMailer struct {
	cfg  Config
	http *http.Client
}

// NewZeptoMailer creates a mailer
func NewZeptoMailer(cfg Config) *ZeptoMailer {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &ZeptoMailer{
		cfg:  cfg,
		http: &http.Client{Timeout: timeout},
	}
}

type emailAddress struct {
	Address string `json:"address"`
	Name    string `json:"name,omitempty"`
}

type toRecipient struct {
	Email emailAddress `json:"email_address"`
}

type emailRequest struct {
	From     emailAddress  `json:"from"`
	To       []toRecipient `json:"to"`
	Subject  string        `json:"subject"`
	HTMLBody string        `json:"htmlbody"`
}

// Send delivers msg through the API. Callers own retry policy.
func (m *ZeptoMailer) Send(ctx context.Context, msg Message) error {
	payload, err := json.Marshal(emailRequest{
		From: emailAddress{Address: m.cfg.FromAddress, Name: m.cfg.FromName},
		To: []toRecipient{
			{Email: emailAddress{Address: msg.To, Name: msg.ToName}},
		},
		Subject:  msg.Subject,
		HTMLBody: msg.HTMLBody,
	})
	if err != nil {
		return fmt.Errorf("marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.cfg.APIURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", m.cfg.APIKey)

	resp, err := m.http.Do(req)
	if err != nil {
		return fmt.Errorf("email request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("email API returned %d: %s", resp.StatusCode, string(raw))
	}
	return nil
}
