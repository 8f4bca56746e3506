package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// DefaultEmailJSEndpoint is the public EmailJS API.
const DefaultEmailJSEndpoint = "https://api.emailjs.com"

// EmailJSRelay sends through the EmailJS REST API.
type EmailJSRelay struct {
	Endpoint string
	// PrivateKey is only required when the account enforces it for
	// non-browser callers.
	PrivateKey string
	Client     *http.Client
}

type emailJSRequest struct {
	ServiceID      string  `json:"service_id"`
	TemplateID     string  `json:"template_id"`
	UserID         string  `json:"user_id"`
	AccessToken    string  `json:"accessToken,omitempty"`
	TemplateParams Payload `json:"template_params"`
}

// NewEmailJSRelay returns a relay for endpoint; empty means the public API.
func NewEmailJSRelay(endpoint, privateKey string, client *http.Client) *EmailJSRelay {
	if endpoint == "" {
		endpoint = DefaultEmailJSEndpoint
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &EmailJSRelay{Endpoint: strings.TrimRight(endpoint, "/"), PrivateKey: privateKey, Client: client}
}

func (r *EmailJSRelay) Send(ctx context.Context, creds Credentials, p Payload) error {
	body, err := json.Marshal(emailJSRequest{
		ServiceID:      creds.ServiceID,
		TemplateID:     creds.TemplateID,
		UserID:         creds.PublicKey,
		AccessToken:    r.PrivateKey,
		TemplateParams: p,
	})
	if err != nil {
		return fmt.Errorf("encoding emailjs request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.Endpoint+"/api/v1.0/email/send", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building emailjs request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.Client.Do(req)
	if err != nil {
		return fmt.Errorf("calling emailjs: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &RelayError{Status: resp.StatusCode, Text: strings.TrimSpace(string(text))}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
