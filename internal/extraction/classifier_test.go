package extraction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gascompare/internal/domain"
	"gascompare/internal/extraction"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want domain.DocumentClass
	}{
		{"no mention", "Contrat de fourniture de gaz naturel.", domain.DocumentClassSingleContract},
		{"two mentions", "Contrat gaz: ENGIE puis EDF.", domain.DocumentClassSingleContract},
		{"three mentions", "Contrat gaz: ENGIE, EDF, Vattenfall.", domain.DocumentClassBrokerTable},
		{"five mentions without keyword", "Contrat gaz: ENGIE, ENGIE, EDF, EDF, Vattenfall.", domain.DocumentClassBrokerTable},
		{"six mentions", "Contrat gaz: ENGIE, ENGIE, EDF, EDF, Vattenfall, ENI.", domain.DocumentClassComparisonTable},
		{"keyword only", "Voici un comparatif des prix du gaz.", domain.DocumentClassComparisonTable},
		{"keyword upper case", "COMPARATIF GAZ 2025", domain.DocumentClassComparisonTable},
		{"accented keyword", "Notre sélection pour votre site", domain.DocumentClassComparisonTable},
		{"empty", "", domain.DocumentClassSingleContract},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extraction.Classify(tt.text))
		})
	}
}

func TestCountSupplierMentions(t *testing.T) {
	assert.Equal(t, 0, extraction.CountSupplierMentions("gaz naturel"))
	assert.Equal(t, 2, extraction.CountSupplierMentions("Engie et ENGIE"))
	assert.Equal(t, 2, extraction.CountSupplierMentions("TotalEnergies ou Total Energies"))
	assert.Equal(t, 5, extraction.CountSupplierMentions("ENGIE, ENGIE, EDF, EDF, Vattenfall"))
}

func TestClassify_Deterministic(t *testing.T) {
	text := "Proposition ENGIE / TotalEnergies / EDF"
	first := extraction.Classify(text)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, extraction.Classify(text))
	}
}
