package report

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mapplock/mapplock/internal/domain"
)

var t0 = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"json": FormatJSON, "MD": FormatMarkdown, "markdown": FormatMarkdown, " html ": FormatHTML} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseFormat("pdf")
	assert.Error(t, err)
}

func usageReport() domain.UsageReport {
	return domain.UsageReport{
		DeviceID:             "dev-1",
		Period:               domain.PeriodLastWeek,
		From:                 t0.AddDate(0, 0, -7),
		To:                   t0,
		TotalSessions:        4,
		TotalFocusTime:       3 * time.Hour,
		TotalViolations:      3,
		ViolationsBySeverity: map[domain.Severity]int{domain.SeverityHigh: 2, domain.SeverityLow: 1},
		ViolationsByType:     map[domain.ViolationType]int{domain.ViolationUnauthorizedAppLaunch: 2, domain.ViolationScreenshotAttempt: 1},
		TopApps:              []domain.AppUsage{{AppBundleID: "com.game.app", Violations: 2}},
		Productivity:         0.75,
	}
}

func TestRender_UsageMarkdown(t *testing.T) {
	out, err := Render(FormatMarkdown, usageReport())
	require.NoError(t, err)

	md := string(out)
	assert.Contains(t, md, "# Usage report: last_week")
	assert.Contains(t, md, "| Sessions | 4 |")
	assert.Contains(t, md, "| Focus time | 3h0m0s |")
	assert.Contains(t, md, "| Productivity | 75% |")
	assert.Contains(t, md, "| high | 2 |")
	assert.Contains(t, md, "| critical | 0 |")
	assert.Contains(t, md, "| `com.game.app` | 2 |")
}

func TestRender_HTML(t *testing.T) {
	out, err := Render(FormatHTML, domain.ViolationReport{
		DeviceID:        "dev-1",
		SessionID:       "s-1",
		SessionName:     "Exam <script>",
		HighestSeverity: domain.SeverityHigh,
		Violations: []domain.Violation{{
			Type:      domain.ViolationScreenshotAttempt,
			Severity:  domain.SeverityHigh,
			Timestamp: t0,
			Details:   "a|b",
		}},
	})
	require.NoError(t, err)

	html := string(out)
	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, "<strong>high</strong>")
	assert.NotContains(t, html, "<script>")
}

func TestRender_JSON(t *testing.T) {
	out, err := Render(FormatJSON, domain.ComplianceReport{DeviceID: "dev-1", Status: domain.ComplianceCompliant, Timestamp: t0})
	require.NoError(t, err)

	var got domain.ComplianceReport
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, domain.ComplianceCompliant, got.Status)
}

func TestMarkdown_Compliance(t *testing.T) {
	md, err := Markdown(domain.ComplianceResult{
		Status:      domain.ComplianceNonCompliant,
		Reasons:     []domain.ComplianceReason{{Check: domain.CheckPasscode, Message: "passcode is not set"}},
		EvaluatedAt: t0,
	})
	require.NoError(t, err)
	assert.Contains(t, md, "Status: **non_compliant** at 2026-03-02T09:00:00Z")
	assert.Contains(t, md, "| passcode | passcode is not set |")
}

func TestMarkdown_NoViolations(t *testing.T) {
	md, err := Markdown(domain.ViolationReport{SessionID: "s-1", SessionName: "Calm"})
	require.NoError(t, err)
	assert.Contains(t, md, "Highest severity: **none**")
	assert.Contains(t, md, "No violations recorded.")
}

func TestMarkdown_UnknownType(t *testing.T) {
	_, err := Markdown(42)
	assert.Error(t, err)
}
