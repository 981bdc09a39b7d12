package textextract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"gascompare/internal/domain"
)

const documentPart = "word/document.xml"

// ExtractDOCX returns the raw text of a Word document: one line per
// paragraph, table cells separated by tabs.
func ExtractDOCX(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: reading DOCX as ZIP: %v", domain.ErrUnsupportedFormat, err)
	}

	var part *zip.File
	for _, f := range zr.File {
		if f.Name == documentPart {
			part = f
			break
		}
	}
	if part == nil {
		return "", fmt.Errorf("%w: %s not found in DOCX", domain.ErrUnsupportedFormat, documentPart)
	}

	rc, err := part.Open()
	if err != nil {
		return "", fmt.Errorf("%w: opening %s: %v", domain.ErrReadFailed, documentPart, err)
	}
	defer func() { _ = rc.Close() }()

	return documentText(rc)
}

// documentText walks WordprocessingML tokens. Only the local names matter.
func documentText(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)
	var b strings.Builder
	inText := false

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("%w: parsing %s: %v", domain.ErrReadFailed, documentPart, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				b.WriteByte('\t')
			case "br", "cr":
				b.WriteByte('\n')
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				b.WriteByte('\n')
			case "tc":
				b.WriteByte('\t')
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}

	return cleanText(b.String()), nil
}
