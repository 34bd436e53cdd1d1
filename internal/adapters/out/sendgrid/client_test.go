package sendgrid_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"packagetracker/internal/adapters/out/sendgrid"
	"packagetracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *sendgrid.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := sendgrid.NewClient(sendgrid.Config{
		APIKey:    "test-key",
		BaseURL:   server.URL,
		FromEmail: "noreply@packagetracker.test",
		FromName:  "Package Tracker",
	})
	require.NoError(t, err)
	return client
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := sendgrid.NewClient(sendgrid.Config{FromEmail: "noreply@packagetracker.test"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewClient_RequiresFromEmail(t *testing.T) {
	_, err := sendgrid.NewClient(sendgrid.Config{APIKey: "test-key"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestClient_ComposeAndAddRecipient(t *testing.T) {
	client := newTestClient(t, func(_ http.ResponseWriter, _ *http.Request) {})

	m := client.Compose("subject", "body")
	m = client.AddRecipient(m, "Ann", "ann@example.com")

	assert.Equal(t, "subject", m.Subject)
	assert.Equal(t, "body", m.Body)
	assert.Equal(t, "Ann", m.RecipientName)
	assert.Equal(t, "ann@example.com", m.RecipientEmail)
}

func TestClient_Send_BuildsV3MailSendRequest(t *testing.T) {
	var captured struct {
		Personalizations []struct {
			To []struct {
				Email string `json:"email"`
				Name  string `json:"name"`
			} `json:"to"`
		} `json:"personalizations"`
		From struct {
			Email string `json:"email"`
			Name  string `json:"name"`
		} `json:"from"`
		Subject string `json:"subject"`
		Content []struct {
			Type  string `json:"type"`
			Value string `json:"value"`
		} `json:"content"`
	}
	var gotPath, gotAuth string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.WriteHeader(http.StatusAccepted)
	})

	m := client.Compose("Your Package was delivered", "Your package 'Books' was delivered!!")
	m = client.AddRecipient(m, "Ann", "ann@example.com")
	require.NoError(t, client.Send(t.Context(), m))

	assert.Equal(t, "/v3/mail/send", gotPath)
	assert.Equal(t, "Bearer test-key", gotAuth)
	require.Len(t, captured.Personalizations, 1)
	require.Len(t, captured.Personalizations[0].To, 1)
	assert.Equal(t, "ann@example.com", captured.Personalizations[0].To[0].Email)
	assert.Equal(t, "Ann", captured.Personalizations[0].To[0].Name)
	assert.Equal(t, "noreply@packagetracker.test", captured.From.Email)
	assert.Equal(t, "Your Package was delivered", captured.Subject)
	require.Len(t, captured.Content, 1)
	assert.Equal(t, "text/plain", captured.Content[0].Type)
}

func TestClient_Send_NonSuccessStatusFails(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"errors":[{"message":"bad key"}]}`))
	})

	m := client.AddRecipient(client.Compose("subject", "body"), "Ann", "ann@example.com")
	err := client.Send(t.Context(), m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestClient_Send_MissingRecipientFails(t *testing.T) {
	client := newTestClient(t, func(_ http.ResponseWriter, _ *http.Request) {
		t.Fatal("no request expected")
	})

	err := client.Send(t.Context(), client.Compose("subject", "body"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
