package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
	"golang.org/x/crypto/bcrypt"

	"github.com/mapplock/mapplock/internal/domain"
)

// TOTPIssuer labels enrolled authenticator entries
const TOTPIssuer = "mapplock"

// Authenticator verifies remote command signatures and admin tokens
type Authenticator struct {
	adminTokenHash string
	sharedSecret   []byte
	totpSecret     string
}

// NewAuthenticator creates a new Authenticator. Any of the secrets may be
// empty, in which case the corresponding check always fails.
func NewAuthenticator(sharedSecret, adminTokenHash, totpSecret string) *Authenticator {
	return &Authenticator{
		adminTokenHash: adminTokenHash,
		sharedSecret:   []byte(sharedSecret),
		totpSecret:     totpSecret,
	}
}

// Sign returns the hex HMAC-SHA256 of payload under the shared secret
func (a *Authenticator) Sign(payload []byte) string {
	return SignPayload(a.sharedSecret, payload)
}

// VerifySignature checks that payload was signed with the shared secret
func (a *Authenticator) VerifySignature(payload []byte, signature string) error {
	if len(a.sharedSecret) == 0 {
		return fmt.Errorf("%w: no shared secret configured", domain.ErrUnauthenticated)
	}
	signature = strings.TrimPrefix(strings.TrimSpace(signature), "sha256=")
	expected := a.Sign(payload)
	if !hmac.Equal([]byte(expected), []byte(strings.ToLower(signature))) {
		return fmt.Errorf("%w: signature mismatch", domain.ErrUnauthenticated)
	}
	return nil
}

// VerifyAdminToken accepts the admin token whose bcrypt hash is configured,
// or the current code of the enrolled authenticator
func (a *Authenticator) VerifyAdminToken(_ context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("%w: missing admin token", domain.ErrInvalidAdminToken)
	}

	if a.adminTokenHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(a.adminTokenHash), []byte(token)); err == nil {
			return nil
		}
	}
	if a.totpSecret != "" && totp.Validate(token, a.totpSecret) {
		return nil
	}
	return domain.ErrInvalidAdminToken
}

// SignPayload returns the hex HMAC-SHA256 of payload under secret
func SignPayload(secret, payload []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// HashAdminToken produces the bcrypt hash stored in settings
func HashAdminToken(token string) (string, error) {
	if strings.TrimSpace(token) == "" {
		return "", fmt.Errorf("%w: token must not be empty", domain.ErrMissingParameter)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash admin token: %w", err)
	}
	return string(hash), nil
}

// EnrollTOTP generates a new authenticator secret for deviceID
func EnrollTOTP(deviceID string) (*otp.Key, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      TOTPIssuer,
		AccountName: deviceID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate totp secret: %w", err)
	}
	return key, nil
}
