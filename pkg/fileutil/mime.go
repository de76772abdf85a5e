package fileutil

import (
	"mime"
	"strings"
)

// Kind is a coarse file category derived from a MIME type.
type Kind string

const (
	KindImage    Kind = "image"
	KindVideo    Kind = "video"
	KindDocument Kind = "document"
	KindUnknown  Kind = "unknown"
)

var (
	imageMIMETypes = map[string]bool{
		"image/jpeg":    true,
		"image/jpg":     true,
		"image/png":     true,
		"image/gif":     true,
		"image/webp":    true,
		"image/svg+xml": true,
		"image/bmp":     true,
		"image/tiff":    true,
	}

	videoMIMETypes = map[string]bool{
		"video/mp4":       true,
		"video/mpeg":      true,
		"video/ogg":       true,
		"video/webm":      true,
		"video/quicktime": true,
		"video/x-msvideo": true,
	}

	documentMIMETypes = map[string]bool{
		"application/pdf":    true,
		"application/msword": true,
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
		"application/vnd.ms-excel": true,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
		"application/vnd.ms-powerpoint":                                    true,
		"text/plain":                                                       true,
		"text/csv":                                                         true,
	}
)

// Type classifies a MIME-type string into the first matching category
// (image, video, document) or KindUnknown.
func Type(mimeType string) Kind {
	switch {
	case imageMIMETypes[mimeType]:
		return KindImage
	case videoMIMETypes[mimeType]:
		return KindVideo
	case documentMIMETypes[mimeType]:
		return KindDocument
	default:
		return KindUnknown
	}
}

// IsImage reports whether the MIME type belongs to the image category.
func IsImage(mimeType string) bool { return Type(mimeType) == KindImage }

// IsVideo reports whether the MIME type belongs to the video category.
func IsVideo(mimeType string) bool { return Type(mimeType) == KindVideo }

// IsDocument reports whether the MIME type belongs to the document category.
func IsDocument(mimeType string) bool { return Type(mimeType) == KindDocument }

// ExtensionMIME returns the MIME type registered for a filename extension,
// with or without the leading dot, or an empty string when unknown.
func ExtensionMIME(ext string) string {
	if ext == "" {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return mime.TypeByExtension(ext)
}
