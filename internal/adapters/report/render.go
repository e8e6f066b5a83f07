// Package report renders reports as JSON, Markdown or HTML.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"github.com/mapplock/mapplock/internal/domain"
)

// Format selects a report encoding
type Format string

const (
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// Formats lists the supported encodings
var Formats = []Format{FormatJSON, FormatMarkdown, FormatHTML}

// ParseFormat converts a flag value into a Format
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "md" {
		return FormatMarkdown, nil
	}
	if slices.Contains(Formats, f) {
		return f, nil
	}
	return "", fmt.Errorf("unknown report format %q", s)
}

// Raw HTML in report input is escaped (WithUnsafe is not set)
var mdRenderer = goldmark.New(
	goldmark.WithExtensions(extension.Table),
	goldmark.WithRendererOptions(
		goldmarkHTML.WithXHTML(),
	),
)

// Render encodes a report value in the requested format
func Render(format Format, v any) ([]byte, error) {
	if format == FormatJSON {
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode report: %w", err)
		}
		return append(data, '\n'), nil
	}

	md, err := Markdown(v)
	if err != nil {
		return nil, err
	}
	if format == FormatMarkdown {
		return []byte(md), nil
	}

	var buf bytes.Buffer
	buf.WriteString("<!DOCTYPE html>\n<html><head><meta charset=\"utf-8\"><title>mapplock report</title></head><body>\n")
	if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}
	buf.WriteString("</body></html>\n")
	return buf.Bytes(), nil
}

// Markdown renders a report value as Markdown
func Markdown(v any) (string, error) {
	var b strings.Builder
	switch r := v.(type) {
	case domain.UsageReport:
		usageMarkdown(&b, r)
	case domain.ViolationReport:
		violationMarkdown(&b, r)
	case domain.ComplianceReport:
		complianceMarkdown(&b, r.DeviceID, r.Status, r.Reasons, r.Timestamp)
	case domain.ComplianceResult:
		complianceMarkdown(&b, "", r.Status, r.Reasons, r.EvaluatedAt)
	default:
		return "", fmt.Errorf("no markdown layout for %T", v)
	}
	return b.String(), nil
}

func usageMarkdown(b *strings.Builder, r domain.UsageReport) {
	fmt.Fprintf(b, "# Usage report: %s\n\n", r.Period)
	fmt.Fprintf(b, "Device `%s`, %s to %s\n\n", r.DeviceID, stamp(r.From), stamp(r.To))

	b.WriteString("| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(b, "| Sessions | %d |\n", r.TotalSessions)
	fmt.Fprintf(b, "| Focus time | %s |\n", r.TotalFocusTime.Round(time.Second))
	fmt.Fprintf(b, "| Violations | %d |\n", r.TotalViolations)
	fmt.Fprintf(b, "| Productivity | %.0f%% |\n\n", r.Productivity*100)

	b.WriteString("## Violations by severity\n\n| Severity | Count |\n|---|---|\n")
	for _, s := range domain.Severities {
		fmt.Fprintf(b, "| %s | %d |\n", s, r.ViolationsBySeverity[s])
	}

	if len(r.ViolationsByType) > 0 {
		b.WriteString("\n## Violations by type\n\n| Type | Count |\n|---|---|\n")
		types := make([]string, 0, len(r.ViolationsByType))
		for t := range r.ViolationsByType {
			types = append(types, string(t))
		}
		slices.Sort(types)
		for _, t := range types {
			fmt.Fprintf(b, "| %s | %d |\n", t, r.ViolationsByType[domain.ViolationType(t)])
		}
	}

	if len(r.TopApps) > 0 {
		b.WriteString("\n## Top offending apps\n\n| App | Violations |\n|---|---|\n")
		for _, a := range r.TopApps {
			fmt.Fprintf(b, "| `%s` | %d |\n", a.AppBundleID, a.Violations)
		}
	}
}

func violationMarkdown(b *strings.Builder, r domain.ViolationReport) {
	fmt.Fprintf(b, "# Violations: %s\n\n", r.SessionName)
	fmt.Fprintf(b, "Session `%s` on device `%s`\n\n", r.SessionID, r.DeviceID)

	highest := string(r.HighestSeverity)
	if highest == "" {
		highest = "none"
	}
	fmt.Fprintf(b, "Highest severity: **%s**\n\n", highest)

	if len(r.Violations) == 0 {
		b.WriteString("No violations recorded.\n")
		return
	}

	b.WriteString("| Time | Type | Severity | App | Details |\n|---|---|---|---|---|\n")
	for _, v := range r.Violations {
		fmt.Fprintf(b, "| %s | %s | %s | %s | %s |\n",
			stamp(v.Timestamp), v.Type, v.Severity, cell(v.AppBundleID), cell(v.Details))
	}
}

func complianceMarkdown(b *strings.Builder, deviceID string, status domain.ComplianceStatus, reasons []domain.ComplianceReason, at time.Time) {
	b.WriteString("# Compliance\n\n")
	if deviceID != "" {
		fmt.Fprintf(b, "Device `%s`\n\n", deviceID)
	}
	fmt.Fprintf(b, "Status: **%s** at %s\n", status, stamp(at))
	if len(reasons) == 0 {
		return
	}

	b.WriteString("\n| Check | Reason |\n|---|---|\n")
	for _, r := range reasons {
		fmt.Fprintf(b, "| %s | %s |\n", r.Check, cell(r.Message))
	}
}

func stamp(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format(time.RFC3339)
}

// cell escapes a value for a Markdown table cell
func cell(s string) string {
	if s == "" {
		return "-"
	}
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
