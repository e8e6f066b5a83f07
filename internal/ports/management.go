package ports

import (
	"context"

	"github.com/mapplock/mapplock/internal/domain"
)

// PolicyFetcher downloads policy documents from the management server
type PolicyFetcher interface {
	FetchPolicy(ctx context.Context, url string) (domain.PolicyDocument, error)
}

// PolicyStore holds the locally applied policy document
type PolicyStore interface {
	Load(ctx context.Context) (domain.PolicyDocument, error)
	Save(ctx context.Context, doc domain.PolicyDocument) error
}

// ReportSink transmits reports to the management server
type ReportSink interface {
	SendComplianceReport(ctx context.Context, report domain.ComplianceReport) error
	SendUsageReport(ctx context.Context, report domain.UsageReport) error
	SendViolationReport(ctx context.Context, report domain.ViolationReport) error
	SendHeartbeat(ctx context.Context, heartbeat domain.DeviceHeartbeat) error
}
