package extraction

import (
	"strings"

	"gascompare/internal/domain"
)

// supplierMentions are the supplier names counted when classifying a document.
// Occurrences are counted as raw substrings of the lower-cased text.
var supplierMentions = []string{
	"engie",
	"totalenergies",
	"total energies",
	"edf",
	"ekwateur",
	"vattenfall",
	"eni",
}

// tableKeywords mark a document as a comparison table as soon as one appears.
var tableKeywords = []string{
	"tableau",
	"comparatif",
	"offre",
	"proposition",
	"courtier",
	"sélection",
}

const (
	comparisonMentionThreshold = 5
	brokerMentionThreshold     = 2
)

// CountSupplierMentions returns the total number of supplier name occurrences in text.
func CountSupplierMentions(text string) int {
	lower := strings.ToLower(text)
	total := 0
	for _, name := range supplierMentions {
		total += strings.Count(lower, name)
	}
	return total
}

// Classify guesses the document class from supplier mentions and table keywords.
func Classify(text string) domain.DocumentClass {
	lower := strings.ToLower(text)
	mentions := CountSupplierMentions(lower)

	hasKeyword := false
	for _, kw := range tableKeywords {
		if strings.Contains(lower, kw) {
			hasKeyword = true
			break
		}
	}

	switch {
	case mentions > comparisonMentionThreshold || hasKeyword:
		return domain.DocumentClassComparisonTable
	case mentions > brokerMentionThreshold:
		return domain.DocumentClassBrokerTable
	default:
		return domain.DocumentClassSingleContract
	}
}
