package constants

import "strings"

// DocKind distinguishes the two upload streams.
type DocKind string

const (
	DocKindOrders DocKind = "ORDERS"
	DocKindLabels DocKind = "LABELS"
)

// AllowedExtensions holds the accepted file extensions for uploads.
var AllowedExtensions = map[string]struct{}{
	"pdf": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
