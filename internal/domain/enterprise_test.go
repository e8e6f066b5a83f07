package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAction(t *testing.T) {
	payload := []byte(`{
		"id": "a-1",
		"type": "config_update",
		"source": "mdm.example.com",
		"timestamp": "2026-03-02T09:00:00Z",
		"parameters": {"policyURL": "https://mdm.example.com/policy", "duration": 900, "force": true}
	}`)

	action, err := DecodeAction(payload)

	require.NoError(t, err)
	assert.Equal(t, ActionConfigurationUpdate, action.Type)
	assert.Equal(t, "mdm.example.com", action.Source)
	assert.Equal(t, time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), action.Timestamp)

	url, ok := action.StringParam(ParamPolicyURL)
	assert.True(t, ok)
	assert.Equal(t, "https://mdm.example.com/policy", url)

	d, ok := action.IntParam(ParamDuration)
	assert.True(t, ok)
	assert.Equal(t, int64(900), d)
}

func TestDecodeAction_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"not json", `{`},
		{"unknown type", `{"type":"self_destruct"}`},
		{"nested parameter", `{"type":"remote_lock","parameters":{"nested":{"a":1}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeAction([]byte(tt.payload))
			assert.Error(t, err)
		})
	}
}

func TestEnterpriseAction_Params(t *testing.T) {
	a := EnterpriseAction{Parameters: map[string]any{
		"s": "", "f": 1.5, "n": "42", "i": 7,
	}}

	_, ok := a.StringParam("s")
	assert.False(t, ok)
	_, ok = a.IntParam("f")
	assert.False(t, ok)
	n, ok := a.IntParam("n")
	assert.True(t, ok)
	assert.Equal(t, int64(42), n)
	i, ok := a.IntParam("i")
	assert.True(t, ok)
	assert.Equal(t, int64(7), i)

	_, err := a.RequireString("missing")
	assert.ErrorIs(t, err, ErrMissingParameter)
}

func TestReportPeriod(t *testing.T) {
	now := time.Date(2026, 3, 31, 12, 0, 0, 0, time.UTC)

	p, err := ParseReportPeriod("")
	require.NoError(t, err)
	assert.Equal(t, PeriodLastDay, p)

	_, err = ParseReportPeriod("fortnight")
	assert.ErrorIs(t, err, ErrInvalidReportPeriod)

	assert.Equal(t, now.AddDate(0, 0, -7), PeriodLastWeek.Since(now, 0))
	assert.Equal(t, now.Add(-3*time.Hour), PeriodCustom.Since(now, 3*time.Hour))
}

func TestComplianceDocument_Requirements(t *testing.T) {
	req, err := ComplianceDocument{
		MinimumOSVersion:  " 17.2 ",
		BlockedApps:       []string{"com.tiktok", "com.tiktok"},
		MaxSessionMinutes: 90,
	}.Requirements()

	require.NoError(t, err)
	assert.Equal(t, "17.2", req.MinimumOSVersion)
	assert.True(t, req.AllowsAppInstall)
	assert.Equal(t, []string{"com.tiktok"}, req.BlockedApps)
	assert.Equal(t, 90*time.Minute, req.MaxSessionDuration)

	deny := false
	req, err = ComplianceDocument{AllowsAppInstall: &deny}.Requirements()
	require.NoError(t, err)
	assert.False(t, req.AllowsAppInstall)

	_, err = ComplianceDocument{BlockedApps: []string{"a"}, RequiredApps: []string{"a"}}.Requirements()
	assert.ErrorIs(t, err, ErrInvalidComplianceDocument)
}
