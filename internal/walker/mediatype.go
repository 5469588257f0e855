package walker

import (
	"mime"
	"path/filepath"
	"strings"
)

// mediaTypes covers the asset kinds an organization site usually ships,
// independent of the host's mime database.
var mediaTypes = map[string]string{
	".html":  "text/html",
	".css":   "text/css",
	".js":    "text/javascript",
	".json":  "application/json",
	".svg":   "image/svg+xml",
	".png":   "image/png",
	".jpg":   "image/jpeg",
	".jpeg":  "image/jpeg",
	".gif":   "image/gif",
	".webp":  "image/webp",
	".avif":  "image/avif",
	".ico":   "image/x-icon",
	".pdf":   "application/pdf",
	".woff":  "font/woff",
	".woff2": "font/woff2",
	".ttf":   "font/ttf",
	".mp4":   "video/mp4",
	".webm":  "video/webm",
	".txt":   "text/plain",
	".xml":   "application/xml",
}

// DetectMediaType returns the media type for a file name, without
// parameters. Unknown extensions are application/octet-stream.
func DetectMediaType(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if mt, ok := mediaTypes[ext]; ok {
		return mt
	}
	if mt := mime.TypeByExtension(ext); mt != "" {
		if i := strings.IndexByte(mt, ';'); i >= 0 {
			mt = mt[:i]
		}
		return strings.TrimSpace(mt)
	}
	return "application/octet-stream"
}

