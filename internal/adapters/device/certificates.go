package device

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mapplock/mapplock/internal/fileutil"
	"github.com/mapplock/mapplock/internal/logging"
	"github.com/mapplock/mapplock/internal/ports"
)

// CertificatesDir holds installed certificates under the mapplock home directory
const CertificatesDir = "certs"

// CertificateStore installs PEM certificates into a directory the agent trusts
type CertificateStore struct {
	dir string
}

var _ ports.CertificateInstaller = (*CertificateStore)(nil)

// NewCertificateStore creates a store under homeDir
func NewCertificateStore(homeDir string) *CertificateStore {
	return &CertificateStore{dir: filepath.Join(homeDir, CertificatesDir)}
}

// Dir returns the certificate directory
func (s *CertificateStore) Dir() string {
	return s.dir
}

// InstallCertificate implements ports.CertificateInstaller
func (s *CertificateStore) InstallCertificate(ctx context.Context, name string, pemData []byte) error {
	name = strings.TrimSpace(name)
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return fmt.Errorf("invalid certificate name %q", name)
	}

	path := filepath.Join(s.dir, name+".pem")
	if err := fileutil.WriteFileAtomic(path, pemData, 0644); err != nil {
		return fmt.Errorf("failed to install certificate: %w", err)
	}
	logging.Logger.Info("Certificate installed", "name", name, "path", path)
	return nil
}

// Installed lists installed certificate names
func (s *CertificateStore) Installed() ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(s.dir, "*.pem"))
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(filepath.Base(m), ".pem"))
	}
	return names, nil
}

func (s *CertificateStore) removeAll() error {
	if err := os.RemoveAll(s.dir); err != nil {
		return fmt.Errorf("failed to remove certificates: %w", err)
	}
	return nil
}
