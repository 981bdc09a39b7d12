package extraction_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gascompare/internal/domain"
	"gascompare/internal/extraction"
)

func TestFallbackExtract_NoSupplierReturnsSentinel(t *testing.T) {
	texts := []string{
		"",
		"Lorem ipsum dolor sit amet",
		"Facture de chauffage sans nom de fournisseur identifiable.",
		"35,5 €/MWh",
	}

	want := domain.DefaultOffer("Document analysé", "À vérifier manuellement")
	for _, text := range texts {
		got := extraction.FallbackExtract(text, "doc.pdf")
		require.Len(t, got, 1)
		assert.Equal(t, want, got[0])
	}
}

func TestFallbackExtract_OneOfferPerSupplier(t *testing.T) {
	text := "Comparatif : ENGIE à 35,5 €/MWh" + strings.Repeat(" ", 600) + "EDF à 36 €/MWh"

	got := extraction.FallbackExtract(text, "comparatif.pdf")

	require.Len(t, got, 2)
	assert.Equal(t, "ENGIE", got[0].Fournisseur)
	assert.Equal(t, 35.5, got[0].PrixMolecule)
	assert.Equal(t, "EDF", got[1].Fournisseur)
	assert.Equal(t, 36.0, got[1].PrixMolecule)
	for _, offer := range got {
		assert.Equal(t, "À vérifier", offer.TypeContrat)
		assert.Equal(t, 8.5, offer.CEE)
		assert.Equal(t, domain.DefaultTransport, offer.Transport)
		assert.Equal(t, domain.DefaultDistribution, offer.Distribution)
		assert.Equal(t, domain.DefaultTransportAnn, offer.TransportAnn)
		assert.Equal(t, domain.DefaultCTA, offer.CTA)
		assert.Equal(t, domain.DefaultTICGN, offer.TICGN)
	}
}

func TestFallbackExtract_SupplierWithoutPrice(t *testing.T) {
	got := extraction.FallbackExtract("Votre contrat Dyneff", "dyneff.txt")

	require.Len(t, got, 1)
	assert.Equal(t, "Dyneff", got[0].Fournisseur)
	assert.Equal(t, 0.0, got[0].PrixMolecule)
}

func TestExtractPriceNearProvider(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		keyword string
		want    float64
	}{
		{"cents per kWh", "... ENGIE propose 8.5 ct€/kWh pour ...", "engie", 0.85},
		{"c€ per kWh", "EDF : 4,2 c€/kWh", "edf", 0.42},
		{"centimes per kWh", "Vattenfall facture 3,9 centimes/kWh", "vattenfall", 0.39},
		{"euros per MWh", "EDF : 35,5 €/MWh", "edf", 35.5},
		{"no-break space before unit", "ENI 41,2\u00a0€/MWh", "eni", 41.2},
		{"MWh wins over kWh", "ENGIE 3 ct€/kWh soit 40 €/MWh", "engie", 40},
		{"price before keyword", "Prix 33 €/MWh chez ENGIE", "engie", 33},
		{"keyword missing", "EDF 35 €/MWh", "engie", 0},
		{"no price", "ENGIE sans prix", "engie", 0},
		{"price beyond window", "ENGIE" + strings.Repeat("x", 400) + " 35 €/MWh", "engie", 0},
		{"price far before window", "35 €/MWh" + strings.Repeat("x", 400) + "ENGIE", "engie", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, extraction.ExtractPriceNearProvider(tt.text, tt.keyword), 1e-9)
		})
	}
}
