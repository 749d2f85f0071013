package storage

import (
	"bytes"
	"fmt"
	"strings"
)

// MaxUploadSize caps uploads at 5MB.
const MaxUploadSize = 5 << 20

// allowedFileTypes maps accepted mimetypes to their valid extensions.
var allowedFileTypes = map[string][]string{
	"image/jpeg":      {"jpg", "jpeg"},
	"image/jpg":       {"jpg", "jpeg"},
	"image/png":       {"png"},
	"image/webp":      {"webp"},
	"application/pdf": {"pdf"},
}

// Subdir returns the type-specific subdirectory for a mimetype.
func Subdir(mimetype string) string {
	if mimetype == "application/pdf" {
		return "documents"
	}
	return "images"
}

// CheckFile enforces the upload allow-list: known mimetype, matching
// extension, size within the cap. ext is passed without the leading dot.
func CheckFile(mimetype, ext string, size int64) error {
	exts, ok := allowedFileTypes[mimetype]
	if !ok {
		return fmt.Errorf("File type not allowed.")
	}

	ext = strings.ToLower(ext)
	matched := false
	for _, e := range exts {
		if e == ext {
			matched = true
			break
		}
	}
	if !matched {
		return fmt.Errorf("Invalid file extension.")
	}

	if size <= 0 || size > MaxUploadSize {
		return fmt.Errorf("File is too large. Maximum size allowed is 5MB")
	}
	return nil
}

// PDFScanResult reports the shallow content inspection of a PDF.
type PDFScanResult struct {
	OK      bool
	Warning string // set when interactive content was found but allowed
	Reason  string // set when the file must be rejected
}

// ScanPDF performs a shallow textual scan of the PDF for active-content
// markers. Only the highest-risk combinations are rejected; interactive but
// lower-risk content passes with a warning. Fail-closed: this is the one
// place where suspicious content blocks the request.
func ScanPDF(content []byte) PDFScanResult {
	if len(content) < 5 || !bytes.HasPrefix(content, []byte("%PDF-")) {
		return PDFScanResult{Reason: "Invalid PDF format"}
	}

	has := func(marker string) bool { return bytes.Contains(content, []byte(marker)) }

	hasJavaScript := has("/JavaScript") || has("/JS")
	hasOpenAction := has("/OpenAction") || has("/AA")
	hasEmbedded := has("/EmbeddedFiles")
	hasLaunch := has("/Launch")

	// JavaScript wired to an open action, or a launch action, is high risk.
	if (hasJavaScript && hasOpenAction) || hasLaunch {
		return PDFScanResult{Reason: "PDF security check failed: High-risk content detected"}
	}

	if hasEmbedded || hasJavaScript {
		return PDFScanResult{
			OK:      true,
			Warning: "PDF contains potentially interactive content but is allowed",
		}
	}

	return PDFScanResult{OK: true}
}
