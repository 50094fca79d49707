package constants

import (
	"path/filepath"
	"strings"
)

// TextExtensions holds the extensions the document store reads directly as
// text. Anything else is treated as binary and needs OCR before validation.
var TextExtensions = map[string]struct{}{
	"txt":  {},
	"md":   {},
	"json": {},
	"csv":  {},
	"xml":  {},
	"html": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsTextPath reports whether path has a directly readable text extension.
func IsTextPath(path string) bool {
	_, ok := TextExtensions[NormalizeExt(filepath.Ext(path))]
	return ok
}
