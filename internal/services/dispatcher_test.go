package services

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mapplock/mapplock/internal/domain"
	portsmocks "github.com/mapplock/mapplock/internal/ports/mocks"
)

const (
	testSecret     = "shared-device-key"
	testAdminToken = "let-me-in"
)

type dispatcherFixture struct {
	*lockdownFixture
	dispatcher *Dispatcher
	certs      *portsmocks.MockCertificateInstaller
	fetcher    *portsmocks.MockPolicyFetcher
	history    *portsmocks.MockSessionReader
	policies   *portsmocks.MockPolicyStore
	sink       *portsmocks.MockReportSink
	snapshots  *portsmocks.MockSnapshotProvider
	wiper      *portsmocks.MockDeviceWiper
}

func newDispatcherFixture(t *testing.T) *dispatcherFixture {
	t.Helper()

	hash, err := HashAdminToken(testAdminToken)
	require.NoError(t, err)

	f := &dispatcherFixture{
		lockdownFixture: newLockdownFixture(t),
		certs:           portsmocks.NewMockCertificateInstaller(t),
		fetcher:         portsmocks.NewMockPolicyFetcher(t),
		history:         portsmocks.NewMockSessionReader(t),
		policies:        portsmocks.NewMockPolicyStore(t),
		sink:            portsmocks.NewMockReportSink(t),
		snapshots:       portsmocks.NewMockSnapshotProvider(t),
		wiper:           portsmocks.NewMockDeviceWiper(t),
	}

	sessions := f.lockdown.Sessions()
	compliance := NewComplianceService("dev-1", f.snapshots, f.policies, sessions, f.sink, time.Second)
	compliance.now = f.clock.Now
	reports := NewReportService("dev-1", f.history, sessions, f.sink, "test")
	reports.now = f.clock.Now

	f.dispatcher = NewDispatcher(DispatcherDeps{
		Auth:         NewAuthenticator(testSecret, hash, ""),
		Certificates: f.certs,
		Compliance:   compliance,
		Fetcher:      f.fetcher,
		Lockdown:     f.lockdown,
		Policies:     f.policies,
		PolicyURL:    "https://mdm.example.com/policy",
		Reports:      reports,
		Wiper:        f.wiper,
	})
	return f
}

func action(actionType domain.ActionType, params map[string]any) domain.EnterpriseAction {
	return domain.EnterpriseAction{
		ID:         "a-1",
		Type:       actionType,
		Parameters: params,
		Source:     "mdm",
		Timestamp:  t0,
	}
}

func TestDispatcher_WipeWithoutConfirmationIsRejected(t *testing.T) {
	f := newDispatcherFixture(t)

	result, err := f.dispatcher.Dispatch(context.Background(), action(domain.ActionDeviceWipe, map[string]any{
		domain.ParamAuthToken: testAdminToken,
	}))

	require.Error(t, err)
	assert.True(t, domain.IsAuthorizationError(err))
	assert.ErrorIs(t, err, domain.ErrWipeNotConfirmed)
	assert.Equal(t, domain.OutcomeRejected, result.Outcome)
	f.wiper.AssertNotCalled(t, "Wipe", mock.Anything)
}

func TestDispatcher_WipeRequiresAdminToken(t *testing.T) {
	f := newDispatcherFixture(t)

	result, err := f.dispatcher.Dispatch(context.Background(), action(domain.ActionDeviceWipe, map[string]any{
		domain.ParamAuthToken:        "guess",
		domain.ParamWipeConfirmation: domain.WipeConfirmationValue,
	}))

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.ErrorIs(t, err, domain.ErrInvalidAdminToken)
	assert.Equal(t, domain.OutcomeRejected, result.Outcome)
	f.wiper.AssertNotCalled(t, "Wipe", mock.Anything)
}

func TestDispatcher_WipeAuthorized(t *testing.T) {
	f := newDispatcherFixture(t)
	f.wiper.EXPECT().Wipe(mock.Anything).Return(nil)

	result, err := f.dispatcher.Dispatch(context.Background(), action(domain.ActionDeviceWipe, map[string]any{
		domain.ParamAuthToken:        testAdminToken,
		domain.ParamWipeConfirmation: domain.WipeConfirmationValue,
	}))

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeExecuted, result.Outcome)
}

func TestDispatcher_RemoteLockAndUnlock(t *testing.T) {
	f := newDispatcherFixture(t)
	ctx := context.Background()

	f.policies.EXPECT().Load(mock.Anything).Return(domain.PolicyDocument{}, nil)
	f.strategy.EXPECT().Start(mock.Anything, mock.Anything, mock.MatchedBy(func(cfg domain.SessionConfiguration) bool {
		return cfg.KioskMode == domain.KioskScreenTime && cfg.Duration == 30*time.Minute
	})).Return(nil)
	f.strategy.EXPECT().End(mock.Anything).Return(nil)

	result, err := f.dispatcher.Dispatch(ctx, action(domain.ActionRemoteLock, map[string]any{
		domain.ParamDuration: float64(1800),
	}))
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeExecuted, result.Outcome)
	assert.Equal(t, domain.StateActive, f.lockdown.Status().State)

	// Unlock without a token has no effect
	result, err = f.dispatcher.Dispatch(ctx, action(domain.ActionRemoteUnlock, nil))
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, domain.OutcomeRejected, result.Outcome)
	assert.Equal(t, domain.StateActive, f.lockdown.Status().State)

	result, err = f.dispatcher.Dispatch(ctx, action(domain.ActionRemoteUnlock, map[string]any{
		domain.ParamAuthToken: testAdminToken,
	}))
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeExecuted, result.Outcome)
	assert.Equal(t, domain.StateInactive, f.lockdown.Status().State)
}

func TestDispatcher_UnlockWithTOTP(t *testing.T) {
	f := newDispatcherFixture(t)
	ctx := context.Background()

	key, err := EnrollTOTP("dev-1")
	require.NoError(t, err)
	f.dispatcher.deps.Auth = NewAuthenticator(testSecret, "", key.Secret())

	f.strategy.EXPECT().Start(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.strategy.EXPECT().End(mock.Anything).Return(nil)
	_, err = f.lockdown.Start(ctx, autonomousRequest())
	require.NoError(t, err)

	code, err := totp.GenerateCode(key.Secret(), time.Now())
	require.NoError(t, err)

	result, err := f.dispatcher.Dispatch(ctx, action(domain.ActionRemoteUnlock, map[string]any{
		domain.ParamAuthToken: code,
	}))
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeExecuted, result.Outcome)
}

func TestDispatcher_HandleSigned(t *testing.T) {
	f := newDispatcherFixture(t)
	ctx := context.Background()
	payload := []byte(`{"id":"a-9","type":"emergency_override","source":"mdm","parameters":{"reason":"drill"}}`)

	t.Run("bad signature", func(t *testing.T) {
		result, err := f.dispatcher.HandleSigned(ctx, payload, "deadbeef")
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
		assert.Equal(t, domain.OutcomeRejected, result.Outcome)
	})

	t.Run("valid signature", func(t *testing.T) {
		signature := SignPayload([]byte(testSecret), payload)
		result, err := f.dispatcher.HandleSigned(ctx, payload, "sha256="+signature)
		require.NoError(t, err)
		assert.Equal(t, domain.OutcomeExecuted, result.Outcome)
		assert.Equal(t, domain.ActionEmergencyOverride, result.Type)
		assert.Equal(t, "a-9", result.ActionID)
	})

	t.Run("unknown type", func(t *testing.T) {
		bad := []byte(`{"type":"self_destruct"}`)
		_, err := f.dispatcher.HandleSigned(ctx, bad, SignPayload([]byte(testSecret), bad))
		assert.ErrorIs(t, err, domain.ErrUnknownActionType)
	})
}

func TestDispatcher_ConfigurationUpdate(t *testing.T) {
	f := newDispatcherFixture(t)
	ctx := context.Background()

	doc := domain.PolicyDocument{
		Version:    3,
		Compliance: domain.ComplianceDocument{MinimumOSVersion: "17.0"},
	}
	f.fetcher.EXPECT().FetchPolicy(mock.Anything, "https://mdm.example.com/policy").Return(doc, nil)
	f.policies.EXPECT().Save(mock.Anything, doc).Return(nil)

	result, err := f.dispatcher.Dispatch(ctx, action(domain.ActionConfigurationUpdate, nil))
	require.NoError(t, err)
	assert.Equal(t, "policy version 3 applied", result.Message)
}

func TestDispatcher_ConfigurationUpdateRejectsInvalidPolicy(t *testing.T) {
	f := newDispatcherFixture(t)

	f.fetcher.EXPECT().FetchPolicy(mock.Anything, "https://other.example.com/p").Return(domain.PolicyDocument{
		Lockdown: &domain.ConfigurationRequest{Name: "Bad", DurationSeconds: -5},
	}, nil)

	result, err := f.dispatcher.Dispatch(context.Background(), action(domain.ActionConfigurationUpdate, map[string]any{
		domain.ParamPolicyURL: "https://other.example.com/p",
	}))
	assert.ErrorIs(t, err, domain.ErrInvalidDuration)
	assert.Equal(t, domain.OutcomeFailed, result.Outcome)
	f.policies.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func testCertificatePEM(t *testing.T) []byte {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "Corp Root"},
		NotBefore:    t0,
		NotAfter:     t0.AddDate(1, 0, 0),
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	require.NoError(t, err)
	return pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
}

func TestDispatcher_CertificateInstall(t *testing.T) {
	f := newDispatcherFixture(t)
	certPEM := testCertificatePEM(t)

	f.certs.EXPECT().InstallCertificate(mock.Anything, "corp-root", certPEM).Return(nil)

	result, err := f.dispatcher.Dispatch(context.Background(), action(domain.ActionCertificateInstall, map[string]any{
		domain.ParamCertificate:     base64.StdEncoding.EncodeToString(certPEM),
		domain.ParamCertificateName: "corp-root",
	}))
	require.NoError(t, err)
	assert.Equal(t, "installed corp-root (Corp Root)", result.Message)
}

func TestDispatcher_CertificateInstallRejectsGarbage(t *testing.T) {
	f := newDispatcherFixture(t)

	_, err := f.dispatcher.Dispatch(context.Background(), action(domain.ActionCertificateInstall, map[string]any{
		domain.ParamCertificate: base64.StdEncoding.EncodeToString([]byte("not a certificate")),
	}))
	assert.ErrorIs(t, err, domain.ErrInvalidCertificate)

	_, err = f.dispatcher.Dispatch(context.Background(), action(domain.ActionCertificateInstall, nil))
	assert.ErrorIs(t, err, domain.ErrMissingParameter)
}

func TestDispatcher_ComplianceCheck(t *testing.T) {
	tests := []struct {
		name        string
		snapshotErr error
		sinkErr     error
		wantOutcome domain.ActionOutcome
		wantStatus  domain.ComplianceStatus
		wantErr     error
	}{
		{
			name:        "delivered",
			wantOutcome: domain.OutcomeExecuted,
			wantStatus:  domain.ComplianceNonCompliant,
		},
		{
			name:        "delivery failure still executes",
			sinkErr:     errors.New("management server down"),
			wantOutcome: domain.OutcomeExecuted,
			wantStatus:  domain.ComplianceNonCompliant,
		},
		{
			name:        "snapshot unavailable",
			snapshotErr: errors.New("agent offline"),
			wantOutcome: domain.OutcomeFailed,
			wantStatus:  domain.ComplianceUnknown,
			wantErr:     domain.ErrTransport,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newDispatcherFixture(t)

			snapshot := domain.DeviceSnapshot{OSVersion: "16.4", PasscodeSet: true, CurrentTime: t0}
			f.policies.EXPECT().Load(mock.Anything).Return(domain.PolicyDocument{
				Compliance: domain.ComplianceDocument{MinimumOSVersion: "17.0"},
			}, nil)
			f.snapshots.EXPECT().CurrentSnapshot(mock.Anything).Return(snapshot, tt.snapshotErr)
			f.sink.EXPECT().SendComplianceReport(mock.Anything, mock.MatchedBy(func(r domain.ComplianceReport) bool {
				return r.DeviceID == "dev-1" && r.Status == tt.wantStatus
			})).Return(tt.sinkErr).Once()

			result, err := f.dispatcher.Dispatch(context.Background(), action(domain.ActionComplianceCheck, nil))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, string(tt.wantStatus), result.Message)
			}
			assert.Equal(t, tt.wantOutcome, result.Outcome)

			report, ok := result.Report.(domain.ComplianceReport)
			require.True(t, ok, "report payload is a compliance report")
			assert.Equal(t, tt.wantStatus, report.Status)
			if tt.wantStatus == domain.ComplianceNonCompliant {
				assert.Equal(t, []domain.ComplianceCheck{domain.CheckOSVersion}, reasonChecks(domain.ComplianceResult{Reasons: report.Reasons}))
			}
		})
	}
}

func TestDispatcher_ReportGeneration(t *testing.T) {
	history := []domain.Session{
		endedSession("s-1", t0.Add(-3*24*time.Hour), 25*time.Minute),
		endedSession("s-2", t0.Add(-24*time.Hour), 40*time.Minute,
			violation(domain.ViolationUnauthorizedAppLaunch, domain.SeverityCritical, "com.game")),
	}

	tests := []struct {
		name        string
		params      map[string]any
		since       time.Time
		sinkErr     error
		wantOutcome domain.ActionOutcome
		wantMessage string
		wantErr     error
	}{
		{
			name:        "weekly report delivered",
			params:      map[string]any{domain.ParamPeriod: "last_week"},
			since:       t0.AddDate(0, 0, -7),
			wantOutcome: domain.OutcomeExecuted,
			wantMessage: "2 sessions in last_week",
		},
		{
			name:        "custom lookback",
			params:      map[string]any{domain.ParamPeriod: "custom", domain.ParamDuration: float64(7200)},
			since:       t0.Add(-2 * time.Hour),
			wantOutcome: domain.OutcomeExecuted,
			wantMessage: "2 sessions in custom",
		},
		{
			name:        "delivery failure still executes",
			params:      map[string]any{domain.ParamPeriod: "last_week"},
			since:       t0.AddDate(0, 0, -7),
			sinkErr:     errors.New("management server down"),
			wantOutcome: domain.OutcomeExecuted,
			wantMessage: "2 sessions in last_week",
		},
		{
			name:        "unknown period",
			params:      map[string]any{domain.ParamPeriod: "fortnight"},
			wantOutcome: domain.OutcomeFailed,
			wantErr:     domain.ErrInvalidReportPeriod,
		},
		{
			name:        "custom period without lookback",
			params:      map[string]any{domain.ParamPeriod: "custom"},
			wantOutcome: domain.OutcomeFailed,
			wantErr:     domain.ErrInvalidReportPeriod,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newDispatcherFixture(t)
			if tt.wantErr == nil {
				f.history.EXPECT().List(mock.Anything, tt.since).Return(history, nil)
				f.sink.EXPECT().SendUsageReport(mock.Anything, mock.MatchedBy(func(r domain.UsageReport) bool {
					return r.DeviceID == "dev-1" && r.TotalSessions == 2
				})).Return(tt.sinkErr).Once()
			}

			result, err := f.dispatcher.Dispatch(context.Background(), action(domain.ActionReportGeneration, tt.params))
			assert.Equal(t, tt.wantOutcome, result.Outcome)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, result.Report)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMessage, result.Message)

			report, ok := result.Report.(domain.UsageReport)
			require.True(t, ok, "report payload is a usage report")
			assert.Equal(t, 2, report.TotalSessions)
			assert.Equal(t, 1, report.ViolationsBySeverity[domain.SeverityCritical])
			assert.InDelta(t, 0.5, report.Productivity, 1e-9)
		})
	}
}
