package textextract

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"gascompare/internal/domain"
)

// binarySample is how many leading bytes are inspected for binary content.
const binarySample = 512

// ExtractText decodes a plain-text upload. UTF-8 (with or without BOM),
// UTF-16 with BOM and Windows-1252 are recognised; content that looks binary
// is rejected with domain.ErrUnsupportedFormat.
func ExtractText(data []byte) (string, error) {
	if len(data) == 0 {
		return "", nil
	}
	if looksBinary(data) {
		return "", fmt.Errorf("%w: content is not text", domain.ErrUnsupportedFormat)
	}

	text, err := decodeText(data)
	if err != nil {
		return "", fmt.Errorf("%w: decoding text: %v", domain.ErrReadFailed, err)
	}
	return cleanText(text), nil
}

func decodeText(data []byte) (string, error) {
	switch {
	case len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF:
		return string(data[3:]), nil
	case len(data) >= 2 && data[0] == 0xFF && data[1] == 0xFE:
		decoded, _, err := transform.Bytes(unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder(), data)
		return string(decoded), err
	case len(data) >= 2 && data[0] == 0xFE && data[1] == 0xFF:
		decoded, _, err := transform.Bytes(unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder(), data)
		return string(decoded), err
	case utf8.Valid(data):
		return string(data), nil
	}

	decoded, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), data)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

// looksBinary reports NUL bytes in the sample, except for UTF-16 which has them by nature.
func looksBinary(data []byte) bool {
	if len(data) >= 2 && ((data[0] == 0xFF && data[1] == 0xFE) || (data[0] == 0xFE && data[1] == 0xFF)) {
		return false
	}
	n := len(data)
	if n > binarySample {
		n = binarySample
	}
	for _, c := range data[:n] {
		if c == 0 {
			return true
		}
	}
	return false
}

func cleanText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ReplaceAll(text, "\x00", "")

	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
