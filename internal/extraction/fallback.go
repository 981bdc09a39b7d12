package extraction

import (
	"log"
	"regexp"
	"strings"
	"unicode/utf8"

	"gascompare/internal/domain"
)

// fallbackProviders maps lower-case keywords to the supplier name written on
// the offer. Order is significant: offers come out in this order.
var fallbackProviders = []struct {
	keyword string
	name    string
}{
	{"engie", "ENGIE"},
	{"totalenergies", "TotalEnergies"},
	{"total energies", "TotalEnergies"},
	{"edf", "EDF"},
	{"ekwateur", "Ekwateur"},
	{"vattenfall", "Vattenfall"},
	{"eni", "ENI"},
	{"dyneff", "Dyneff"},
}

const (
	priceWindowBefore = 200
	priceWindowAfter  = 300
)

// pricePattern captures a number followed by a unit. Values quoted in
// cents per kWh are divided by 10 before being returned.
type pricePattern struct {
	re      *regexp.Regexp
	divisor float64
}

// The whitespace class includes the no-break spaces French typesetting
// puts before units.
const unitSpace = `[\s\x{00A0}\x{202F}]*`

var pricePatterns = []pricePattern{
	{regexp.MustCompile(`(?i)(\d+[,.]?\d*)` + unitSpace + `€/MWh`), 1},
	{regexp.MustCompile(`(?i)(\d+[,.]?\d*)` + unitSpace + `ct?€/kWh`), 10},
	{regexp.MustCompile(`(?i)(\d+[,.]?\d*)` + unitSpace + `centimes?/kWh`), 10},
}

// FallbackExtract scans text for known supplier names without any
// completion call. It always returns at least one offer.
func FallbackExtract(text, fileName string) []domain.ExtractedOffer {
	lower := strings.ToLower(text)

	var offers []domain.ExtractedOffer
	for _, p := range fallbackProviders {
		if !strings.Contains(lower, p.keyword) {
			continue
		}
		offer := domain.DefaultOffer(p.name, domain.ToCheckContract)
		offer.PrixMolecule = ExtractPriceNearProvider(text, p.keyword)
		offer.CEE = domain.FallbackCEE
		offers = append(offers, offer)
	}

	if len(offers) == 0 {
		log.Printf("extraction.FallbackExtract: no supplier keyword in %s", fileName)
		return []domain.ExtractedOffer{
			domain.DefaultOffer(domain.AnalyzedDocument, domain.ManualCheckContract),
		}
	}
	return offers
}

// ExtractPriceNearProvider looks for a price in a window around the first
// occurrence of keyword: 200 characters before it and 300 after. Patterns are
// tried in order (€/MWh, c€/kWh, centimes/kWh) and the first match wins.
// It returns 0 when the keyword or a price cannot be found.
func ExtractPriceNearProvider(text, keyword string) float64 {
	lower := strings.ToLower(text)
	idx := strings.Index(lower, strings.ToLower(keyword))
	if idx < 0 {
		return 0
	}

	runes := []rune(lower)
	pos := utf8.RuneCountInString(lower[:idx])
	start := pos - priceWindowBefore
	if start < 0 {
		start = 0
	}
	end := pos + priceWindowAfter
	if end > len(runes) {
		end = len(runes)
	}
	window := string(runes[start:end])

	for _, p := range pricePatterns {
		match := p.re.FindString(window)
		if match == "" {
			continue
		}
		value := parseLocaleNumber(match)
		if value == 0 {
			return 0
		}
		return value / p.divisor
	}
	return 0
}
