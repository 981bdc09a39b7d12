package extraction

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"

	"gascompare/internal/domain"
)

var (
	nonNumericChars = regexp.MustCompile(`[^\d,.]`)
	leadingFloat    = regexp.MustCompile(`^(\d+\.?\d*|\.\d+)`)
)

// NormalizeNumber coerces an arbitrary value into a finite float64.
// Strings are read the French way: everything but digits, commas and dots
// is stripped, the first comma becomes the decimal point and the longest
// numeric prefix is parsed. Anything unusable yields 0.
func NormalizeNumber(value interface{}) float64 {
	switch v := value.(type) {
	case float64:
		return finiteOrZero(v)
	case float32:
		return finiteOrZero(float64(v))
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		f, err := strconv.ParseFloat(v.String(), 64)
		if err != nil {
			return parseLocaleNumber(v.String())
		}
		return finiteOrZero(f)
	case string:
		return parseLocaleNumber(v)
	default:
		return 0
	}
}

func parseLocaleNumber(s string) float64 {
	cleaned := nonNumericChars.ReplaceAllString(s, "")
	cleaned = strings.Replace(cleaned, ",", ".", 1)
	prefix := leadingFloat.FindString(cleaned)
	if prefix == "" {
		return 0
	}
	f, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		return 0
	}
	return finiteOrZero(f)
}

func finiteOrZero(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// NormalizeOffer turns a raw key/value record produced by the completion
// model into a well-formed offer. Missing, empty, zero, negative or
// unparseable numeric fields take their tariff default. The result carries
// no ID or source file; callers tag it.
func NormalizeOffer(raw map[string]interface{}) domain.ExtractedOffer {
	offer := domain.ExtractedOffer{
		Fournisseur:  normalizeLabel(raw["fournisseur"], domain.UnknownSupplier),
		TypeContrat:  normalizeLabel(raw["typeContrat"], domain.UnspecifiedContract),
		PrixMolecule: numberOr(raw["prixMolecule"], domain.DefaultPrixMolecule),
		CEE:          numberOr(raw["cee"], domain.DefaultCEE),
		Transport:    numberOr(raw["transport"], domain.DefaultTransport),
		AbonnementF:  numberOr(raw["abonnementF"], domain.DefaultAbonnementF),
		Distribution: numberOr(raw["distribution"], domain.DefaultDistribution),
		TransportAnn: numberOr(raw["transportAnn"], domain.DefaultTransportAnn),
		CTA:          numberOr(raw["cta"], domain.DefaultCTA),
		TICGN:        numberOr(raw["ticgn"], domain.DefaultTICGN),
	}
	if v, ok := raw["consommationReference"]; ok && v != nil {
		ref := NormalizeNumber(v)
		offer.ConsommationReference = &ref
	}
	return offer
}

// IsUsable reports whether an offer names a real supplier.
func IsUsable(offer domain.ExtractedOffer) bool {
	return offer.Fournisseur != domain.UnknownSupplier
}

func numberOr(value interface{}, fallback float64) float64 {
	n := NormalizeNumber(value)
	if n <= 0 {
		return fallback
	}
	return n
}

func normalizeLabel(value interface{}, fallback string) string {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case float64:
		if v == 0 || math.IsNaN(v) {
			return fallback
		}
		s = strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		s = v.String()
	case bool:
		if !v {
			return fallback
		}
		s = "true"
	default:
		return fallback
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	return s
}
