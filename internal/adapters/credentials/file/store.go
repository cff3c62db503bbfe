package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/komodorio/kubectl-komodor/internal/domain"
	"github.com/komodorio/kubectl-komodor/internal/ports"
	"github.com/spf13/afero"
)

const (
	FileName = "config.json"

	storeDirMode     = 0o700
	credentialsMode  = 0o600
	tempFilePattern  = ".config-*.json.tmp"
	jsonIndent       = "  "
	credentialsLabel = "credentials file"
)

type credentialsFile struct {
	APIKey string `json:"apiKey"`
}

// Store keeps the API key in {dir}/config.json.
type Store struct {
	fs   afero.Fs
	path string
	mu   sync.RWMutex
}

var _ ports.CredentialStore = (*Store)(nil)

func NewStore(fs afero.Fs, dir string) *Store {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Store{fs: fs, path: filepath.Join(filepath.Clean(dir), FileName)}
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Save(ctx context.Context, apiKey string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	trimmed := strings.TrimSpace(apiKey)
	if trimmed == "" {
		return "", domain.ErrAPIKeyRequired
	}

	data, err := json.MarshalIndent(credentialsFile{APIKey: trimmed}, "", jsonIndent)
	if err != nil {
		return "", fmt.Errorf("encode %s: %w", credentialsLabel, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.writeAtomic(data); err != nil {
		return "", err
	}

	return s.path, nil
}

// Load returns ok=false when no usable key is stored. A missing, unparsable
// or empty file is not an error.
func (s *Store) Load(ctx context.Context) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read %s: %w", credentialsLabel, err)
	}

	var file credentialsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return "", false, nil
	}

	apiKey := strings.TrimSpace(file.APIKey)
	if apiKey == "" {
		return "", false, nil
	}

	return apiKey, true, nil
}

func (s *Store) writeAtomic(data []byte) error {
	dir := filepath.Dir(s.path)
	if err := s.fs.MkdirAll(dir, storeDirMode); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	tempFile, err := afero.TempFile(s.fs, dir, tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp %s: %w", credentialsLabel, err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = s.fs.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp %s: %w", credentialsLabel, err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp %s: %w", credentialsLabel, err)
	}

	if err := s.fs.Chmod(tempName, credentialsMode); err != nil {
		return fmt.Errorf("chmod temp %s: %w", credentialsLabel, err)
	}

	if err := s.fs.Rename(tempName, s.path); err != nil {
		return fmt.Errorf("replace %s: %w", credentialsLabel, err)
	}

	cleanup = false
	return nil
}
