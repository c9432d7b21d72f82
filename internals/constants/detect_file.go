package constants

import (
	"path/filepath"
	"strings"
)

// Document kinds accepted for trip paperwork uploads.
const (
	FileKindPDF     = "pdf"
	FileKindImage   = "image"
	FileKindDoc     = "doc"
	FileKindUnknown = "unknown"
)

func DetectFileKindFromExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".pdf":
		return FileKindPDF
	case ".png", ".jpg", ".jpeg", ".webp":
		return FileKindImage
	case ".doc", ".docx":
		return FileKindDoc
	default:
		return FileKindUnknown
	}
}

// AllowedDocumentKinds is the whitelist enforced at the upload boundary.
var AllowedDocumentKinds = []string{FileKindPDF, FileKindImage, FileKindDoc}

func IsAllowedDocumentKind(kind string) bool {
	for _, k := range AllowedDocumentKinds {
		if k == kind {
			return true
		}
	}
	return false
}
