package mdm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mapplock/mapplock/internal/domain"
)

func TestNewClient_InvalidURL(t *testing.T) {
	for _, raw := range []string{"", "not a url", "/relative"} {
		_, err := NewClient(raw, "dev-1", nil)
		assert.Error(t, err, raw)
	}
}

func TestClient_FetchPolicy(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
	}{
		{
			name:        "json",
			contentType: "application/json",
			body:        `{"version":5,"compliance":{"minimum_os_version":"17.0","requires_passcode":true}}`,
		},
		{
			name:        "toml",
			contentType: "application/toml; charset=utf-8",
			body:        "version = 5\n[compliance]\nminimum_os_version = \"17.0\"\nrequires_passcode = true\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v1/devices/dev-1/policy", r.URL.Path)
				w.Header().Set("Content-Type", tt.contentType)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			c, err := NewClient(srv.URL, "dev-1", nil)
			require.NoError(t, err)

			doc, err := c.FetchPolicy(context.Background(), "")
			require.NoError(t, err)
			assert.Equal(t, 5, doc.Version)
			assert.Equal(t, "17.0", doc.Compliance.MinimumOSVersion)
			assert.True(t, doc.Compliance.RequiresPasscode)
		})
	}
}

func TestClient_FetchPolicyErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/broken" {
			_, _ = io.WriteString(w, "{")
			return
		}
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL, "dev-1", nil)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = c.FetchPolicy(ctx, "")
	assert.True(t, domain.IsTransportError(err))

	_, err = c.FetchPolicy(ctx, srv.URL+"/broken")
	assert.True(t, domain.IsTransportError(err))

	srv.Close()
	_, err = c.FetchPolicy(ctx, "")
	assert.True(t, domain.IsTransportError(err))
}

func TestClient_SendsSignedReports(t *testing.T) {
	type received struct {
		path      string
		signature string
		body      []byte
	}
	got := make(chan received, 4)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		got <- received{path: r.URL.Path, signature: r.Header.Get(SignatureHeader), body: body}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL+"/", "dev-1", func(body []byte) string { return "sig" })
	require.NoError(t, err)
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	require.NoError(t, c.SendHeartbeat(ctx, domain.DeviceHeartbeat{DeviceID: "dev-1", State: domain.StateActive, Timestamp: now}))
	r := <-got
	assert.Equal(t, "/v1/devices/dev-1/heartbeat", r.path)
	assert.Equal(t, "sha256=sig", r.signature)
	var hb domain.DeviceHeartbeat
	require.NoError(t, json.Unmarshal(r.body, &hb))
	assert.Equal(t, domain.StateActive, hb.State)

	require.NoError(t, c.SendComplianceReport(ctx, domain.ComplianceReport{DeviceID: "dev-1", Status: domain.ComplianceCompliant}))
	assert.Equal(t, "/v1/devices/dev-1/reports/compliance", (<-got).path)

	require.NoError(t, c.SendUsageReport(ctx, domain.UsageReport{DeviceID: "dev-1"}))
	assert.Equal(t, "/v1/devices/dev-1/reports/usage", (<-got).path)

	require.NoError(t, c.SendViolationReport(ctx, domain.ViolationReport{DeviceID: "dev-1"}))
	assert.Equal(t, "/v1/devices/dev-1/reports/violations", (<-got).path)
}
