// Package textextract turns uploaded contract documents into plain text.
package textextract

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"gascompare/internal/domain"
)

// Config selects extraction limits and the OCR engine.
type Config struct {
	MaxPDFPages int
	OCRBinary   string
	OCRLanguage string
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		MaxPDFPages: 15,
		OCRBinary:   "tesseract",
		OCRLanguage: "fra+eng",
	}
}

// Extractor implements port.TextExtractor by dispatching on the media type.
type Extractor struct {
	cfg    Config
	runner Runner
}

// NewExtractor creates an Extractor that shells out to the real OCR binary.
func NewExtractor(cfg Config) *Extractor {
	return NewExtractorWithRunner(cfg, execRunner{})
}

// NewExtractorWithRunner creates an Extractor with a custom command runner (for testing).
func NewExtractorWithRunner(cfg Config, runner Runner) *Extractor {
	def := DefaultConfig()
	if cfg.MaxPDFPages <= 0 {
		cfg.MaxPDFPages = def.MaxPDFPages
	}
	if cfg.OCRBinary == "" {
		cfg.OCRBinary = def.OCRBinary
	}
	if cfg.OCRLanguage == "" {
		cfg.OCRLanguage = def.OCRLanguage
	}
	return &Extractor{cfg: cfg, runner: runner}
}

// Kind is the extraction route chosen for a file.
type Kind string

const (
	KindPDF  Kind = "pdf"
	KindOCR  Kind = "ocr"
	KindDOCX Kind = "docx"
	KindText Kind = "text"
)

// Classify picks the extraction route from the declared media type, falling
// back to the file extension when no type was declared.
func Classify(file domain.SourceFile) Kind {
	ct := strings.ToLower(strings.TrimSpace(file.ContentType))
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(file.Name), "."))
	if ct == "" || ct == "application/octet-stream" {
		ct = domain.AllowedExtensions[ext]
	}

	switch {
	case ct == domain.MediaTypePDF:
		return KindPDF
	case strings.HasPrefix(ct, "image/"):
		return KindOCR
	case strings.Contains(ct, "document") || ext == "docx":
		return KindDOCX
	default:
		return KindText
	}
}

func (e *Extractor) Extract(ctx context.Context, file domain.SourceFile) (string, error) {
	data, err := file.ReadAll()
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", domain.ErrReadFailed, file.Name, err)
	}

	kind := Classify(file)
	var text string
	switch kind {
	case KindPDF:
		text, err = ExtractPDF(data, e.cfg.MaxPDFPages)
	case KindOCR:
		text, err = e.ocr(ctx, file.Name, data)
	case KindDOCX:
		text, err = ExtractDOCX(data)
	default:
		text, err = ExtractText(data)
	}
	if err != nil {
		log.Printf("textextract.Extractor.Extract: %s (%s): %v", file.Name, kind, err)
		return "", err
	}
	return text, nil
}
