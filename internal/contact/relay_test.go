package contact

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/smtp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailJSRelaySendsRequest(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1.0/email/send", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte("OK"))
	}))
	defer srv.Close()

	relay := NewEmailJSRelay(srv.URL+"/", "", srv.Client())
	require.NoError(t, relay.Send(context.Background(), testCreds, jane.Payload(fixedTime)))

	assert.Equal(t, "service_x", got["service_id"])
	assert.Equal(t, "template_y", got["template_id"])
	assert.Equal(t, "pk_z", got["user_id"])
	assert.NotContains(t, got, "accessToken")
	params := got["template_params"].(map[string]any)
	assert.Equal(t, "Jane Doe", params["name"])
	assert.Equal(t, "Hello", params["title"])
	assert.Equal(t, "3/4/2025, 3:04:05 PM", params["time"])
}

func TestEmailJSRelayIncludesPrivateKey(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))
	defer srv.Close()

	relay := NewEmailJSRelay(srv.URL, "secret", srv.Client())
	require.NoError(t, relay.Send(context.Background(), testCreds, jane.Payload(fixedTime)))
	assert.Equal(t, "secret", got["accessToken"])
}

func TestEmailJSRelayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("API calls are disabled for non-browser applications\n"))
	}))
	defer srv.Close()

	err := NewEmailJSRelay(srv.URL, "", srv.Client()).Send(context.Background(), testCreds, jane.Payload(fixedTime))

	var rerr *RelayError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, http.StatusForbidden, rerr.Status)
	assert.Equal(t, "API calls are disabled for non-browser applications", rerr.Text)
	assert.Equal(t, "API calls are disabled for non-browser applications", relayDetail(err))
}

func TestEmailJSRelayDefaults(t *testing.T) {
	r := NewEmailJSRelay("", "", nil)
	assert.Equal(t, DefaultEmailJSEndpoint, r.Endpoint)
	assert.Equal(t, http.DefaultClient, r.Client)
}

func TestSMTPRelayComposesMessage(t *testing.T) {
	r := NewSMTPRelay(SMTPConfig{User: "me@example.com", Pass: "pw", To: "inbox@example.com"})
	var addr string
	var msg []byte
	r.sendMail = func(a string, _ smtp.Auth, from string, to []string, m []byte) error {
		addr, msg = a, m
		assert.Equal(t, "me@example.com", from)
		assert.Equal(t, []string{"inbox@example.com"}, to)
		return nil
	}

	p := jane.Payload(fixedTime)
	p.Title = "Hi\r\nBcc: evil@example.com"
	require.NoError(t, r.Send(context.Background(), Credentials{}, p))

	assert.Equal(t, "smtp.gmail.com:587", addr)
	text := string(msg)
	assert.Contains(t, text, "Subject: Portfolio Contact: Hi  Bcc: evil@example.com\r\n")
	assert.Contains(t, text, "Reply-To: jane@example.com\r\n")
	assert.Contains(t, text, "Test message")
	assert.False(t, strings.Contains(text, "\r\nBcc:"))
}

func TestSMTPRelayRequiresCredentials(t *testing.T) {
	err := NewSMTPRelay(SMTPConfig{}).Send(context.Background(), Credentials{}, jane.Payload(fixedTime))
	require.Error(t, err)
}
