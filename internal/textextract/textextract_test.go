package textextract_test

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gascompare/internal/domain"
	"gascompare/internal/textextract"
)

type stubRunner struct {
	name   string
	args   []string
	input  []byte
	stdout string
	err    error
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.name = name
	s.args = args
	if len(args) > 0 {
		s.input, _ = os.ReadFile(args[0])
	}
	if s.err != nil {
		return nil, []byte("tesseract: cannot read image"), s.err
	}
	return []byte(s.stdout), nil, nil
}

// buildPDF assembles a minimal PDF with one Helvetica text line per page.
func buildPDF(pages ...string) []byte {
	var buf bytes.Buffer
	offsets := []int{}
	writeObj := func(body string) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", len(offsets), body)
	}

	buf.WriteString("%PDF-1.4\n")
	kids := make([]string, len(pages))
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}
	writeObj("<< /Type /Catalog /Pages 2 0 R >>")
	writeObj(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages)))
	writeObj("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")
	for i, text := range pages {
		writeObj(fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", 5+2*i))
		content := fmt.Sprintf("BT /F1 12 Tf 72 712 Td (%s) Tj ET", text)
		writeObj(fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content))
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xref)
	return buf.Bytes()
}

// buildDOCX zips a word/document.xml with the given body XML.
func buildDOCX(t *testing.T, body string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		body + `</w:body></w:document>`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		want        textextract.Kind
	}{
		{"offre.pdf", "application/pdf", textextract.KindPDF},
		{"scan.png", "image/png", textextract.KindOCR},
		{"photo.jpg", "image/jpeg", textextract.KindOCR},
		{"contrat.docx", domain.MediaTypeDOCX, textextract.KindDOCX},
		{"contrat.docx", "", textextract.KindDOCX},
		{"offre.odt", "application/vnd.oasis.opendocument.text", textextract.KindDOCX},
		{"notes.txt", "text/plain", textextract.KindText},
		{"tarifs.csv", "text/csv", textextract.KindText},
		{"offre.pdf", "", textextract.KindPDF},
		{"scan.tiff", "application/octet-stream", textextract.KindOCR},
		{"unknown.bin", "", textextract.KindText},
	}

	for _, tt := range tests {
		t.Run(tt.name+"_"+tt.contentType, func(t *testing.T) {
			got := textextract.Classify(domain.SourceFile{Name: tt.name, ContentType: tt.contentType})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractText_Encodings(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"utf8", []byte("Offre ENGIE\r\n  prix : 35,5 €/MWh  \n\n"), "Offre ENGIE\nprix : 35,5 €/MWh"},
		{"utf8 bom", append([]byte{0xEF, 0xBB, 0xBF}, []byte("Sélection")...), "Sélection"},
		{"utf16 le", []byte{0xFF, 0xFE, 'E', 0, 'D', 0, 'F', 0}, "EDF"},
		{"utf16 be", []byte{0xFE, 0xFF, 0, 'E', 0, 'N', 0, 'I'}, "ENI"},
		{"windows-1252", []byte{'S', 0xE9, 'l', 'e', 'c', 't', 'i', 'o', 'n'}, "Sélection"},
		{"empty", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := textextract.ExtractText(tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractText_Binary(t *testing.T) {
	_, err := textextract.ExtractText([]byte{0x89, 'P', 'N', 'G', 0x00, 0x00, 0x01})
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestExtractDOCX(t *testing.T) {
	data := buildDOCX(t,
		`<w:p><w:r><w:t>Proposition ENGIE</w:t></w:r></w:p>`+
			`<w:p><w:r><w:t xml:space="preserve">Prix </w:t></w:r><w:r><w:t>35,5 €/MWh</w:t></w:r></w:p>`+
			`<w:tbl><w:tr>`+
			`<w:tc><w:p><w:r><w:t>EDF</w:t></w:r></w:p></w:tc>`+
			`<w:tc><w:p><w:r><w:t>36,1</w:t></w:r></w:p></w:tc>`+
			`</w:tr></w:tbl>`)

	got, err := textextract.ExtractDOCX(data)

	require.NoError(t, err)
	assert.Contains(t, got, "Proposition ENGIE")
	assert.Contains(t, got, "Prix 35,5 €/MWh")
	assert.Contains(t, got, "EDF")
	assert.Contains(t, got, "36,1")
}

func TestExtractDOCX_NotAZip(t *testing.T) {
	_, err := textextract.ExtractDOCX([]byte("plain text"))
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestExtractDOCX_MissingDocumentPart(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	_, err := zw.Create("word/styles.xml")
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = textextract.ExtractDOCX(buf.Bytes())
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestExtractPDF(t *testing.T) {
	got, err := textextract.ExtractPDF(buildPDF("Offre ENGIE 35 EUR"), 15)

	require.NoError(t, err)
	assert.Contains(t, got, "ENGIE")
}

func TestExtractPDF_PageLimit(t *testing.T) {
	got, err := textextract.ExtractPDF(buildPDF("PAGEONE", "PAGETWO", "PAGETHREE"), 2)

	require.NoError(t, err)
	assert.Contains(t, got, "PAGEONE")
	assert.Contains(t, got, "PAGETWO")
	assert.NotContains(t, got, "PAGETHREE")
	assert.Contains(t, got, "\n\n")
}

func TestExtractPDF_Garbage(t *testing.T) {
	_, err := textextract.ExtractPDF([]byte("definitely not a pdf document, just some bytes that go on for a while to pass size checks ........"), 15)
	assert.ErrorIs(t, err, domain.ErrReadFailed)
}

func TestExtractor_OCR(t *testing.T) {
	runner := &stubRunner{stdout: "ENGIE\n\n  prix fixe 34 €/MWh \n"}
	ex := textextract.NewExtractorWithRunner(textextract.DefaultConfig(), runner)

	file := domain.NewBytesFile("scan.png", "image/png", []byte("fake-png"))
	got, err := ex.Extract(context.Background(), file)

	require.NoError(t, err)
	assert.Equal(t, "ENGIE\nprix fixe 34 €/MWh", got)
	assert.Equal(t, "tesseract", runner.name)
	require.Len(t, runner.args, 4)
	assert.True(t, strings.HasSuffix(runner.args[0], ".png"))
	assert.Equal(t, []string{"stdout", "-l", "fra+eng"}, runner.args[1:])
	assert.Equal(t, []byte("fake-png"), runner.input)

	_, statErr := os.Stat(runner.args[0])
	assert.True(t, os.IsNotExist(statErr))
}

func TestExtractor_OCRFailure(t *testing.T) {
	runner := &stubRunner{err: errors.New("exit status 1")}
	ex := textextract.NewExtractorWithRunner(textextract.Config{OCRBinary: "/usr/bin/tesseract", OCRLanguage: "fra"}, runner)

	_, err := ex.Extract(context.Background(), domain.NewBytesFile("scan.jpg", "image/jpeg", []byte("x")))

	assert.ErrorIs(t, err, domain.ErrReadFailed)
	assert.Equal(t, "/usr/bin/tesseract", runner.name)
	assert.Equal(t, "fra", runner.args[3])
}

func TestExtractor_Dispatch(t *testing.T) {
	ex := textextract.NewExtractorWithRunner(textextract.DefaultConfig(), &stubRunner{})

	got, err := ex.Extract(context.Background(), domain.NewBytesFile("notes.txt", "text/plain", []byte("Contrat EDF")))
	require.NoError(t, err)
	assert.Equal(t, "Contrat EDF", got)

	got, err = ex.Extract(context.Background(), domain.NewBytesFile("c.docx", "", buildDOCX(t, `<w:p><w:r><w:t>Contrat ENI</w:t></w:r></w:p>`)))
	require.NoError(t, err)
	assert.Equal(t, "Contrat ENI", got)
}

func TestExtractor_ReadFailure(t *testing.T) {
	ex := textextract.NewExtractor(textextract.DefaultConfig())

	_, err := ex.Extract(context.Background(), domain.SourceFile{Name: "lost.txt"})
	assert.ErrorIs(t, err, domain.ErrReadFailed)
}
