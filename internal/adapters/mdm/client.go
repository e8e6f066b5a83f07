package mdm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/mapplock/mapplock/internal/domain"
	"github.com/mapplock/mapplock/internal/logging"
	"github.com/mapplock/mapplock/internal/ports"
)

// SignatureHeader carries the hex HMAC-SHA256 of the request body
const SignatureHeader = "X-Mapplock-Signature"

// DefaultClientTimeout bounds every request to the management server
const DefaultClientTimeout = 30 * time.Second

const maxResponseBytes = 4 << 20

// Signer returns the signature of a request body
type Signer func(body []byte) string

// Client talks to the management server
type Client struct {
	baseURL  *url.URL
	deviceID string
	http     *http.Client
	sign     Signer
}

var (
	_ ports.PolicyFetcher = (*Client)(nil)
	_ ports.ReportSink    = (*Client)(nil)
)

// NewClient creates a client for the server at baseURL. sign may be nil, in
// which case reports go out unsigned.
func NewClient(baseURL, deviceID string, sign Signer) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid management server url %q", baseURL)
	}
	return &Client{
		baseURL:  u,
		deviceID: deviceID,
		http:     &http.Client{Timeout: DefaultClientTimeout},
		sign:     sign,
	}, nil
}

// PolicyURL returns the default policy location for this device
func (c *Client) PolicyURL() string {
	return c.endpoint("policy")
}

// FetchPolicy implements ports.PolicyFetcher. JSON and TOML bodies are accepted.
func (c *Client) FetchPolicy(ctx context.Context, rawURL string) (domain.PolicyDocument, error) {
	if rawURL == "" {
		rawURL = c.PolicyURL()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return domain.PolicyDocument{}, fmt.Errorf("%w: %w", domain.ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json, application/toml")

	body, contentType, err := c.do(req)
	if err != nil {
		return domain.PolicyDocument{}, err
	}

	var doc domain.PolicyDocument
	mediaType, _, _ := mime.ParseMediaType(contentType)
	if strings.Contains(mediaType, "toml") {
		if _, err := toml.Decode(string(body), &doc); err != nil {
			return domain.PolicyDocument{}, fmt.Errorf("%w: failed to decode policy: %w", domain.ErrTransport, err)
		}
		return doc, nil
	}
	if err := json.Unmarshal(body, &doc); err != nil {
		return domain.PolicyDocument{}, fmt.Errorf("%w: failed to decode policy: %w", domain.ErrTransport, err)
	}
	return doc, nil
}

// SendComplianceReport implements ports.ReportSink
func (c *Client) SendComplianceReport(ctx context.Context, report domain.ComplianceReport) error {
	return c.post(ctx, "reports/compliance", report)
}

// SendUsageReport implements ports.ReportSink
func (c *Client) SendUsageReport(ctx context.Context, report domain.UsageReport) error {
	return c.post(ctx, "reports/usage", report)
}

// SendViolationReport implements ports.ReportSink
func (c *Client) SendViolationReport(ctx context.Context, report domain.ViolationReport) error {
	return c.post(ctx, "reports/violations", report)
}

// SendHeartbeat implements ports.ReportSink
func (c *Client) SendHeartbeat(ctx context.Context, heartbeat domain.DeviceHeartbeat) error {
	return c.post(ctx, "heartbeat", heartbeat)
}

func (c *Client) endpoint(path string) string {
	return c.baseURL.JoinPath("v1", "devices", url.PathEscape(c.deviceID), path).String()
}

func (c *Client) post(ctx context.Context, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.sign != nil {
		req.Header.Set(SignatureHeader, "sha256="+c.sign(body))
	}

	if _, _, err := c.do(req); err != nil {
		return err
	}
	logging.Logger.Debug("Sent to management server", "path", path, "bytes", len(body))
	return nil
}

func (c *Client) do(req *http.Request) ([]byte, string, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, "", fmt.Errorf("%w: failed to read response: %w", domain.ErrTransport, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", fmt.Errorf("%w: %s %s returned %d", domain.ErrTransport, req.Method, req.URL.Path, resp.StatusCode)
	}
	return body, resp.Header.Get("Content-Type"), nil
}
