package docstore

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/docuflow/invoice-pipeline/constants"
)

// FSStore serves documents from a local directory tree.
type FSStore struct {
	root   string
	logger *slog.Logger
}

func NewFSStore(root string, logger *slog.Logger) (*FSStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create document root: %w", err)
	}
	return &FSStore{root: root, logger: logger}, nil
}

func (s *FSStore) Read(_ context.Context, path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if !constants.IsTextPath(path) {
		return "", fmt.Errorf("%w: %s", ErrBinary, path)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read document %s: %w", path, err)
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return "", fmt.Errorf("%w: %s", ErrEmpty, path)
	}
	return string(raw), nil
}

func (s *FSStore) Exists(_ context.Context, path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func (s *FSStore) FindByVendor(_ context.Context, vendorName string) (string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return "", fmt.Errorf("scan document root: %w", err)
	}

	needle := strings.ToLower(vendorName)
	// Stable result regardless of readdir order.
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		if strings.Contains(strings.ToLower(name), needle) {
			return filepath.Join(s.root, name), nil
		}
	}
	return "", nil
}

func (s *FSStore) List(_ context.Context) ([]DocumentInfo, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("scan document root: %w", err)
	}

	docs := make([]DocumentInfo, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			s.logger.Warn("skipping unreadable document", "name", e.Name(), "error", err)
			continue
		}
		docs = append(docs, DocumentInfo{
			Name:     e.Name(),
			Path:     filepath.Join(s.root, e.Name()),
			Size:     info.Size(),
			Modified: info.ModTime(),
		})
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].Name < docs[j].Name })
	return docs, nil
}
