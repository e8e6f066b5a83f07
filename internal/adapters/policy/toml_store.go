package policy

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/mapplock/mapplock/internal/domain"
	"github.com/mapplock/mapplock/internal/fileutil"
	"github.com/mapplock/mapplock/internal/ports"
)

// PolicyFile is the applied policy document under the mapplock home directory
const PolicyFile = "policy.toml"

// TOMLStore keeps the applied policy document as TOML
type TOMLStore struct {
	mu   sync.Mutex
	path string
}

var _ ports.PolicyStore = (*TOMLStore)(nil)

// NewTOMLStore creates a store reading policy.toml under homeDir
func NewTOMLStore(homeDir string) *TOMLStore {
	return NewTOMLStoreWithPath(filepath.Join(homeDir, PolicyFile))
}

// NewTOMLStoreWithPath creates a store for a specific file
func NewTOMLStoreWithPath(path string) *TOMLStore {
	return &TOMLStore{path: path}
}

// Path returns the policy file location
func (s *TOMLStore) Path() string {
	return s.path
}

// Load implements ports.PolicyStore. A missing file is an empty policy.
func (s *TOMLStore) Load(ctx context.Context) (domain.PolicyDocument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var doc domain.PolicyDocument
	if _, err := toml.DecodeFile(s.path, &doc); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.PolicyDocument{}, nil
		}
		return domain.PolicyDocument{}, fmt.Errorf("failed to parse %s: %w", filepath.Base(s.path), err)
	}
	return doc, nil
}

// Save implements ports.PolicyStore
func (s *TOMLStore) Save(ctx context.Context, doc domain.PolicyDocument) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
		return fmt.Errorf("failed to encode policy: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fileutil.WriteFileAtomic(s.path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to save policy: %w", err)
	}
	return nil
}
