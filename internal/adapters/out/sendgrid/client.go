// Package sendgrid implements the Notifier port against the SendGrid v3
// mail send API. Notices are plain-text emails from a fixed service
// identity; the recipient is the package's sender pair.
package sendgrid

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"packagetracker/internal/core/ports"
	"packagetracker/internal/pkg/errs"
)

const defaultBaseURL = "https://api.sendgrid.com"

// Config holds the transport settings for the SendGrid client.
type Config struct {
	APIKey    string
	BaseURL   string
	FromEmail string
	FromName  string
	Timeout   time.Duration
}

// Client sends notices through the SendGrid v3 REST API. Implements
// ports.Notifier.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient creates a SendGrid client. APIKey and FromEmail are required;
// BaseURL defaults to the public API endpoint and exists for tests.
func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errs.NewValueIsRequiredError("apiKey")
	}
	if strings.TrimSpace(cfg.FromEmail) == "" {
		return nil, errs.NewValueIsRequiredError("fromEmail")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// Compose creates a message with the given subject and plain-text body.
func (c *Client) Compose(subject, body string) ports.Message {
	return ports.Message{
		Subject: subject,
		Body:    body,
	}
}

// AddRecipient returns a copy of the message addressed to the named
// recipient.
func (c *Client) AddRecipient(m ports.Message, name, email string) ports.Message {
	m.RecipientName = name
	m.RecipientEmail = email
	return m
}

// SendGrid v3 mail send wire types.
type emailAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type personalization struct {
	To []emailAddress `json:"to"`
}

type mailContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type mailSendRequest struct {
	Personalizations []personalization `json:"personalizations"`
	From             emailAddress      `json:"from"`
	Subject          string            `json:"subject"`
	Content          []mailContent     `json:"content"`
}

// Send delivers the message via POST /v3/mail/send. Anything but a 2xx
// answer is a transport failure; the caller decides whether to retry.
func (c *Client) Send(ctx context.Context, m ports.Message) error {
	if strings.TrimSpace(m.RecipientEmail) == "" {
		return errs.NewValueIsRequiredError("recipientEmail")
	}

	wire := mailSendRequest{
		Personalizations: []personalization{{
			To: []emailAddress{{Email: m.RecipientEmail, Name: m.RecipientName}},
		}},
		From: emailAddress{
			Email: c.cfg.FromEmail,
			Name:  c.cfg.FromName,
		},
		Subject: m.Subject,
		Content: []mailContent{{Type: "text/plain", Value: m.Body}},
	}

	payload, err := json.Marshal(wire)
	if err != nil {
		return fmt.Errorf("encode mail request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.cfg.BaseURL+"/v3/mail/send", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build mail request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("send mail: sendgrid answered %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return nil
}
