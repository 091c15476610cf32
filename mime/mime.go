// Package mime infers content types from file extensions.
package mime

import (
	"path/filepath"
	"strings"
)

const DefaultType = "application/octet-stream"

var typeByExtension = map[string]string{
	".html":  "text/html",
	".htm":   "text/html",
	".css":   "text/css",
	".js":    "text/javascript",
	".txt":   "text/plain",
	".md":    "text/markdown",
	".csv":   "text/csv",
	".xml":   "text/xml",
	".json":  "application/json",
	".pdf":   "application/pdf",
	".zip":   "application/zip",
	".gz":    "application/gzip",
	".wasm":  "application/wasm",
	".png":   "image/png",
	".jpg":   "image/jpeg",
	".jpeg":  "image/jpeg",
	".gif":   "image/gif",
	".svg":   "image/svg+xml",
	".webp":  "image/webp",
	".ico":   "image/x-icon",
	".mp3":   "audio/mpeg",
	".wav":   "audio/wav",
	".mp4":   "video/mp4",
	".webm":  "video/webm",
	".woff":  "font/woff",
	".woff2": "font/woff2",
	".ttf":   "font/ttf",
}

// TypeByPath returns the content type for the path's extension, or
// DefaultType when the extension is unknown.
func TypeByPath(path string) string {
	if contentType, found := typeByExtension[strings.ToLower(filepath.Ext(path))]; found {
		return contentType
	}
	return DefaultType
}
