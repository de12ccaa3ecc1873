package models

import (
	"path/filepath"
	"strings"
)

// Format is the declared format of an uploaded document.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatText Format = "text"
)

// Document holds the raw bytes of one uploaded file together with its
// declared format. It is consumed exactly once by the text extractor.
type Document struct {
	Filename string
	Format   Format
	Data     []byte
}

// FormatFromFilename maps a file extension to a declared format.
// Unsupported extensions return ok=false.
func FormatFromFilename(filename string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return FormatPDF, true
	case ".docx":
		return FormatDOCX, true
	case ".txt":
		return FormatText, true
	default:
		return "", false
	}
}
