package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mapplock/mapplock/internal/domain"
	portsmocks "github.com/mapplock/mapplock/internal/ports/mocks"
)

func healthySnapshot() domain.DeviceSnapshot {
	return domain.DeviceSnapshot{
		DeviceID:          "dev-1",
		OSVersion:         "17.2.1",
		PasscodeSet:       true,
		BiometricsEnabled: true,
		InstalledApps:     []string{"com.corp.vpn", "com.example.notes"},
		CurrentTime:       t0,
	}
}

func reasonChecks(result domain.ComplianceResult) []domain.ComplianceCheck {
	checks := make([]domain.ComplianceCheck, 0, len(result.Reasons))
	for _, r := range result.Reasons {
		checks = append(checks, r.Check)
	}
	return checks
}

func TestEvaluateCompliance(t *testing.T) {
	workHours := &domain.TimeRestriction{
		AllowedRanges: []domain.TimeRange{{Start: 8 * 60, End: 18 * 60}},
	}

	tests := []struct {
		name       string
		req        domain.ComplianceRequirements
		mutate     func(s *domain.DeviceSnapshot)
		wantStatus domain.ComplianceStatus
		wantChecks []domain.ComplianceCheck
	}{
		{
			name:       "no requirements",
			req:        domain.ComplianceRequirements{AllowsAppInstall: true},
			wantStatus: domain.ComplianceCompliant,
			wantChecks: []domain.ComplianceCheck{},
		},
		{
			name:       "os version compared numerically",
			req:        domain.ComplianceRequirements{MinimumOSVersion: "17.10", AllowsAppInstall: true},
			wantStatus: domain.ComplianceNonCompliant,
			wantChecks: []domain.ComplianceCheck{domain.CheckOSVersion},
		},
		{
			name:       "os version satisfied",
			req:        domain.ComplianceRequirements{MinimumOSVersion: "9.3", AllowsAppInstall: true},
			wantStatus: domain.ComplianceCompliant,
			wantChecks: []domain.ComplianceCheck{},
		},
		{
			name: "accumulates every failure in order",
			req: domain.ComplianceRequirements{
				MinimumOSVersion:   "18.0",
				RequiresPasscode:   true,
				RequiresBiometrics: true,
				AllowsAppInstall:   true,
				BlockedApps:        []string{"com.example.notes"},
				RequiredApps:       []string{"com.corp.mdm"},
			},
			mutate: func(s *domain.DeviceSnapshot) {
				s.PasscodeSet = false
				s.BiometricsEnabled = false
			},
			wantStatus: domain.ComplianceNonCompliant,
			wantChecks: []domain.ComplianceCheck{
				domain.CheckOSVersion, domain.CheckPasscode, domain.CheckBiometrics,
				domain.CheckBlockedApps, domain.CheckRequiredApps,
			},
		},
		{
			name:       "jailbroken device",
			req:        domain.ComplianceRequirements{AllowsAppInstall: true},
			mutate:     func(s *domain.DeviceSnapshot) { s.Jailbroken = true },
			wantStatus: domain.ComplianceNonCompliant,
			wantChecks: []domain.ComplianceCheck{domain.CheckJailbreak},
		},
		{
			name:       "app install must be disabled",
			req:        domain.ComplianceRequirements{},
			mutate:     func(s *domain.DeviceSnapshot) { s.AppInstallEnabled = true },
			wantStatus: domain.ComplianceNonCompliant,
			wantChecks: []domain.ComplianceCheck{domain.CheckAppInstall},
		},
		{
			name:       "network restriction missing",
			req:        domain.ComplianceRequirements{AllowsAppInstall: true, NetworkRestrictions: []string{"vpn"}},
			wantStatus: domain.ComplianceNonCompliant,
			wantChecks: []domain.ComplianceCheck{domain.CheckNetworkRestriction},
		},
		{
			name:       "inside time window",
			req:        domain.ComplianceRequirements{AllowsAppInstall: true, TimeRestrictions: workHours},
			wantStatus: domain.ComplianceCompliant,
			wantChecks: []domain.ComplianceCheck{},
		},
		{
			name:       "outside time window",
			req:        domain.ComplianceRequirements{AllowsAppInstall: true, TimeRestrictions: workHours},
			mutate:     func(s *domain.DeviceSnapshot) { s.CurrentTime = t0.Add(12 * time.Hour) },
			wantStatus: domain.ComplianceNonCompliant,
			wantChecks: []domain.ComplianceCheck{domain.CheckTimeWindow},
		},
		{
			name:       "session too long",
			req:        domain.ComplianceRequirements{AllowsAppInstall: true, MaxSessionDuration: time.Hour},
			mutate:     func(s *domain.DeviceSnapshot) { s.ActiveSessionDuration = 2 * time.Hour },
			wantStatus: domain.ComplianceNonCompliant,
			wantChecks: []domain.ComplianceCheck{domain.CheckSessionDuration},
		},
		{
			name:       "unparseable device version",
			req:        domain.ComplianceRequirements{AllowsAppInstall: true, MinimumOSVersion: "17.0"},
			mutate:     func(s *domain.DeviceSnapshot) { s.OSVersion = "beta" },
			wantStatus: domain.ComplianceUnknown,
			wantChecks: []domain.ComplianceCheck{domain.CheckOSVersion},
		},
		{
			name: "definite failure outranks unknown",
			req:  domain.ComplianceRequirements{AllowsAppInstall: true, MinimumOSVersion: "17.0", RequiresPasscode: true},
			mutate: func(s *domain.DeviceSnapshot) {
				s.OSVersion = "beta"
				s.PasscodeSet = false
			},
			wantStatus: domain.ComplianceNonCompliant,
			wantChecks: []domain.ComplianceCheck{domain.CheckPasscode, domain.CheckOSVersion},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot := healthySnapshot()
			if tt.mutate != nil {
				tt.mutate(&snapshot)
			}

			result := EvaluateCompliance(tt.req, &snapshot)

			assert.Equal(t, tt.wantStatus, result.Status)
			assert.Equal(t, tt.wantChecks, reasonChecks(result))
		})
	}
}

func TestEvaluateCompliance_NilSnapshot(t *testing.T) {
	result := EvaluateCompliance(domain.ComplianceRequirements{}, nil)

	assert.Equal(t, domain.ComplianceUnknown, result.Status)
	assert.Equal(t, []domain.ComplianceCheck{domain.CheckSnapshot}, reasonChecks(result))
}

func TestEvaluateCompliance_Deterministic(t *testing.T) {
	req := domain.ComplianceRequirements{MinimumOSVersion: "18", RequiredApps: []string{"com.corp.mdm"}}
	snapshot := healthySnapshot()

	first := EvaluateCompliance(req, &snapshot)
	second := EvaluateCompliance(req, &snapshot)

	assert.Equal(t, first, second)
}

func TestComplianceService_Check(t *testing.T) {
	snapshots := portsmocks.NewMockSnapshotProvider(t)
	policies := portsmocks.NewMockPolicyStore(t)
	sink := portsmocks.NewMockReportSink(t)

	policies.EXPECT().Load(mock.Anything).Return(domain.PolicyDocument{
		Compliance: domain.ComplianceDocument{RequiresPasscode: true},
	}, nil)
	snapshots.EXPECT().CurrentSnapshot(mock.Anything).Return(healthySnapshot(), nil)
	sink.EXPECT().SendComplianceReport(mock.Anything, mock.MatchedBy(func(r domain.ComplianceReport) bool {
		return r.DeviceID == "dev-1" && r.Status == domain.ComplianceCompliant
	})).Return(nil)

	svc := NewComplianceService("dev-1", snapshots, policies, nil, sink, time.Second)
	result, err := svc.Check(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.ComplianceCompliant, result.Status)

	_, err = svc.Report(context.Background(), result)
	require.NoError(t, err)
}

func TestComplianceService_SnapshotFailure(t *testing.T) {
	snapshots := portsmocks.NewMockSnapshotProvider(t)
	policies := portsmocks.NewMockPolicyStore(t)

	policies.EXPECT().Load(mock.Anything).Return(domain.PolicyDocument{}, nil)
	snapshots.EXPECT().CurrentSnapshot(mock.Anything).Return(domain.DeviceSnapshot{}, errors.New("agent offline"))

	svc := NewComplianceService("dev-1", snapshots, policies, nil, nil, time.Second)
	result, err := svc.Check(context.Background())

	require.Error(t, err)
	assert.True(t, domain.IsTransportError(err))
	assert.Equal(t, domain.ComplianceUnknown, result.Status)
}

func TestComplianceService_InvalidPolicy(t *testing.T) {
	snapshots := portsmocks.NewMockSnapshotProvider(t)
	policies := portsmocks.NewMockPolicyStore(t)

	policies.EXPECT().Load(mock.Anything).Return(domain.PolicyDocument{
		Compliance: domain.ComplianceDocument{
			BlockedApps:  []string{"com.example.game"},
			RequiredApps: []string{"com.example.game"},
		},
	}, nil)

	svc := NewComplianceService("dev-1", snapshots, policies, nil, nil, time.Second)
	result, err := svc.Check(context.Background())

	assert.ErrorIs(t, err, domain.ErrInvalidComplianceDocument)
	assert.Equal(t, domain.ComplianceUnknown, result.Status)
}
