package textextract

import (
	"bytes"
	"fmt"
	"log"
	"strings"

	"github.com/ledongthuc/pdf"

	"gascompare/internal/domain"
)

// ExtractPDF reads the text layer of at most maxPages pages. Pages are joined
// by a blank line. A scanned PDF without a text layer yields an empty string.
func ExtractPDF(data []byte, maxPages int) (text string, err error) {
	// The PDF reader panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: malformed PDF: %v", domain.ErrReadFailed, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: opening PDF: %v", domain.ErrReadFailed, err)
	}

	numPages := reader.NumPage()
	if maxPages > 0 && numPages > maxPages {
		numPages = maxPages
	}

	pages := make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			log.Printf("textextract.ExtractPDF: skipping page %d: %v", i, err)
			continue
		}
		pages = append(pages, strings.TrimSpace(pageText))
	}

	return strings.TrimSpace(strings.Join(pages, "\n\n")), nil
}
