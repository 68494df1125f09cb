package objectclient

import (
	"mime"
	"strings"
)

// KeyFromHash maps a content hash to its object key. Files are spread over
// two directory levels taken from the leading hash characters:
// "abcdef..." becomes "<prefix>ab/cd/abcdef...".
func KeyFromHash(prefix, contentHash string) string {
	if len(contentHash) < 4 {
		return prefix + contentHash
	}
	return prefix + contentHash[0:2] + "/" + contentHash[2:4] + "/" + contentHash
}

// Header names accepted by GeneratePresignedURL.
const (
	HeaderContentDisposition = "Content-Disposition"
	HeaderContentType        = "Content-Type"
)

// ResponseOverrides extracts the Content-Disposition and Content-Type
// overrides from a header map, matching names case-insensitively.
func ResponseOverrides(headers map[string]string) (disposition, contentType string) {
	for name, value := range headers {
		switch {
		case strings.EqualFold(name, HeaderContentDisposition):
			disposition = value
		case strings.EqualFold(name, HeaderContentType):
			contentType = value
		}
	}
	return disposition, contentType
}

// AttachmentDisposition builds a Content-Disposition value for downloading
// filename as an attachment.
func AttachmentDisposition(filename string) string {
	if filename == "" {
		return "attachment"
	}
	return mime.FormatMediaType("attachment", map[string]string{"filename": filename})
}
