package service

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// SMSProvider defines the interface for dispatching an SMS
type SMSProvider interface {
	Send(body, from, to string) error
}

// noOpProvider skips SMS sending (for local environment)
type noOpProvider struct{}

func (n *noOpProvider) Send(body, from, to string) error {
	log.Printf("[SMS NoOp] Skipping SMS from %s to %s", from, to)
	return nil
}

// NewNoOpProvider creates a no-op SMS provider
func NewNoOpProvider() SMSProvider {
	return &noOpProvider{}
}

// twilioProvider sends SMS via the Twilio Messages API
type twilioProvider struct {
	accountSID string
	authToken  string
	baseURL    string
	client     *http.Client
}

// NewTwilioProvider creates a Twilio SMS provider
func NewTwilioProvider(accountSID, authToken string) SMSProvider {
	return &twilioProvider{
		accountSID: accountSID,
		authToken:  authToken,
		baseURL:    "https://api.twilio.com",
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (t *twilioProvider) Send(body, from, to string) error {
	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", t.baseURL, t.accountSID)

	form := url.Values{}
	form.Set("To", to)
	form.Set("From", from)
	form.Set("Body", body)

	req, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create SMS request: %w", err)
	}
	req.SetBasicAuth(t.accountSID, t.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send SMS via Twilio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("Twilio API returned status %d: %s", resp.StatusCode, string(respBody))
	}

	log.Printf("[SMS Twilio] Sent SMS to %s", to)
	return nil
}
