package email

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultResendBaseURL = "https://api.resend.com"

// ResendClient delivers notices through the Resend transactional email
// API.
type ResendClient struct {
	apiKey string
	from   string

	// BaseURL overrides the API endpoint, for tests.
	BaseURL string

	httpClient *http.Client
}

// NewResendClient creates a Resend client sending from the given
// verified address.
func NewResendClient(apiKey, from string) *ResendClient {
	return &ResendClient{
		apiKey:     apiKey,
		from:       from,
		BaseURL:    defaultResendBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type resendPayload struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
	HTML    string `json:"html,omitempty"`
}

// Send attempts one delivery call. A non-success API response is
// captured in the result details, never raised as a failure.
func (c *ResendClient) Send(msg Message) Result {
	if c.apiKey == "" || c.from == "" {
		return Result{Skipped: true}
	}

	body, err := json.Marshal(resendPayload{
		From:    c.from,
		To:      msg.To,
		Subject: msg.Subject,
		Text:    msg.Text,
		HTML:    msg.HTML,
	})
	if err != nil {
		return Result{Details: fmt.Sprintf("encoding email payload: %v", err)}
	}

	req, err := http.NewRequest(http.MethodPost, c.BaseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return Result{Details: fmt.Sprintf("building email request: %v", err)}
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{Details: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return Result{Details: string(raw)}
	}

	return Result{OK: true}
}
