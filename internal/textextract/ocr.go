package textextract

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"gascompare/internal/domain"
)

// Runner lets tests stub the OCR command.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	start := time.Now()

	cmd := exec.CommandContext(ctx, name, args...)
	var out, errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb

	err := cmd.Run()
	if err != nil {
		log.Printf("textextract.execRunner.Run: %s %s failed after %s: %v (stderr: %s)",
			name, strings.Join(args, " "), time.Since(start), err, truncate(errb.String(), 8<<10))
	}
	return out.Bytes(), errb.Bytes(), err
}

// ocr writes the image to a temporary file and runs
// `tesseract <file> stdout -l <lang>` on it.
func (e *Extractor) ocr(ctx context.Context, name string, data []byte) (string, error) {
	ext := filepath.Ext(name)
	if ext == "" {
		ext = ".png"
	}
	tmp, err := os.CreateTemp("", "gascompare-ocr-*"+ext)
	if err != nil {
		return "", fmt.Errorf("%w: creating temp file: %v", domain.ErrReadFailed, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("%w: writing temp file: %v", domain.ErrReadFailed, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("%w: closing temp file: %v", domain.ErrReadFailed, err)
	}

	out, errb, err := e.runner.Run(ctx, e.cfg.OCRBinary, tmp.Name(), "stdout", "-l", e.cfg.OCRLanguage)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v: %s", domain.ErrReadFailed, e.cfg.OCRBinary, err, truncate(string(errb), 500))
	}
	return cleanText(string(out)), nil
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "...(truncated)"
}
