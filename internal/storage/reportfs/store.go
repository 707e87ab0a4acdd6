package reportfs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	domainErrors "github.com/akalomiris/reportly/internal/domain/errors"
)

const pdfExtension = ".pdf"

// Store persists rendered reports on the local filesystem, one <uuid>.pdf
// per report under the root directory.
type Store struct {
	root string
}

// New creates the root directory if missing.
func New(root string) (*Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create reports dir: %w", err)
	}
	return &Store{root: root}, nil
}

func (s *Store) path(uid uuid.UUID) string {
	return filepath.Join(s.root, uid.String()+pdfExtension)
}

// Put writes report bytes under the identifier. The write goes to a
// temporary file first and is renamed into place so a concurrent Get never
// observes a partial report. Overwrites are last-write-wins.
func (s *Store) Put(uid uuid.UUID, content []byte) error {
	tmp, err := os.CreateTemp(s.root, uid.String()+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp report: %w", err)
	}

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write report %s: %w", uid, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp report: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path(uid)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("store report %s: %w", uid, err)
	}
	return nil
}

// Get returns the exact bytes previously stored under the identifier, or
// ErrNotFound when no report exists for it.
func (s *Store) Get(uid uuid.UUID) ([]byte, error) {
	content, err := os.ReadFile(s.path(uid))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, fmt.Errorf("read report %s: %w", uid, err)
	}
	return content, nil
}

// List enumerates stored report identifiers, derived from file names with
// the extension stripped. Order is not defined.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}

	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), pdfExtension) {
			continue
		}
		ids = append(ids, strings.TrimSuffix(entry.Name(), pdfExtension))
	}
	return ids, nil
}
