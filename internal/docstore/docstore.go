package docstore

import (
	"context"
	"errors"
	"time"
)

// Sentinel outcomes for Read. Binary is deliberately distinct from
// not-found: a binary contract needs OCR before validation and must never
// be treated as readable text.
var (
	ErrNotFound = errors.New("document not found")
	ErrBinary   = errors.New("binary document requires extraction")
	ErrEmpty    = errors.New("document is empty")
)

// DocumentInfo describes one stored document.
type DocumentInfo struct {
	Name     string    `json:"name"`
	Path     string    `json:"path"`
	Size     int64     `json:"size"`
	Modified time.Time `json:"modified"`
}

// Store is the document-reading collaborator: it serves contract and
// invoice files and supports vendor-name lookup over stored contracts.
type Store interface {
	// Read returns the text content of a document. It fails with
	// ErrNotFound, ErrBinary, or ErrEmpty as appropriate.
	Read(ctx context.Context, path string) (string, error)
	// Exists reports whether a document is present at path.
	Exists(ctx context.Context, path string) bool
	// FindByVendor returns the path of the first stored contract whose
	// filename contains vendorName (case-insensitive), or "" if none.
	FindByVendor(ctx context.Context, vendorName string) (string, error)
	// List returns metadata for every stored contract document.
	List(ctx context.Context) ([]DocumentInfo, error)
}
