// Package export renders a ranked comparison as CSV or XLSX.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"gascompare/internal/ranking"
)

// BOM is the UTF-8 byte order mark Excel needs to read accented supplier names.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// Format is an export file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat accepts "csv" or "xlsx" in any case. An empty string means CSV.
func ParseFormat(s string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(FormatCSV):
		return FormatCSV, true
	case string(FormatXLSX):
		return FormatXLSX, true
	}
	return "", false
}

// ContentType returns the MIME type served for the format.
func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

// columns defines the header row shared by both formats (15 columns).
var columns = []string{
	"Rang",
	"Fournisseur",
	"Type de contrat",
	"Prix molécule (€/MWh)",
	"CEE (€/MWh)",
	"Transport (€/MWh)",
	"TICGN (€/MWh)",
	"Abonnement (€/an)",
	"Distribution (€/an)",
	"Transport annuel (€/an)",
	"CTA (€/an)",
	"Variable (€)",
	"Fixes (€)",
	"Total HT (€)",
	"Total TTC (€)",
}

// Writer wraps csv.Writer for exporting ranked offers as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes semicolon separated CSV to w, the
// separator French spreadsheet locales expect.
func NewWriter(w io.Writer) *Writer {
	cw := csv.NewWriter(w)
	cw.Comma = ';'
	return &Writer{csv: cw}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteOffers converts ranked offers to CSV rows and writes them.
func (w *Writer) WriteOffers(offers []ranking.RankedOffer) error {
	for i := range offers {
		if err := w.csv.Write(offerToRow(&offers[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// WriteCSV writes the BOM, the header and every ranked offer of cmp to out.
func WriteCSV(out io.Writer, cmp ranking.Comparison) error {
	if _, err := out.Write(BOM); err != nil {
		return fmt.Errorf("writing BOM: %w", err)
	}
	w := NewWriter(out)
	if err := w.WriteHeader(); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if err := w.WriteOffers(cmp.Offers); err != nil {
		return fmt.Errorf("writing offers: %w", err)
	}
	w.Flush()
	return w.Error()
}

func offerToRow(o *ranking.RankedOffer) []string {
	return []string{
		strconv.Itoa(o.Rank),
		o.Fournisseur,
		o.TypeContrat,
		formatMoney(o.PrixMolecule),
		formatMoney(o.CEE),
		formatMoney(o.Transport),
		formatMoney(o.TICGN),
		formatMoney(o.AbonnementF),
		formatMoney(o.Distribution),
		formatMoney(o.TransportAnn),
		formatMoney(o.CTA),
		formatMoney(o.Variable),
		formatMoney(o.Fixes),
		formatMoney(o.HT),
		formatMoney(o.TTC),
	}
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename replaces non-alphanumeric chars (except - _) with _, collapses
// consecutive underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns {sanitized_base}_{YYYY-MM-DD}.{format} for Content-Disposition.
func BuildFilename(base string, format Format, now time.Time) string {
	sanitized := SanitizeFilename(base)
	if sanitized == "" {
		sanitized = "comparatif"
	}
	return fmt.Sprintf("%s_%s.%s", sanitized, now.Format("2006-01-02"), format)
}
