package extraction_test

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gascompare/internal/domain"
	"gascompare/internal/extraction"
)

func TestNormalizeNumber(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  float64
	}{
		{"french decimal with unit", "8,69 €/MWh", 8.69},
		{"letters only", "abc", 0},
		{"plain float", 12.5, 12.5},
		{"int", 7, 7.0},
		{"int64", int64(42), 42.0},
		{"json number", json.Number("3.25"), 3.25},
		{"dot decimal string", "35.5", 35.5},
		{"leading dot", ".5", 0.5},
		{"thousands with comma decimal", "1.234,56", 1.234},
		{"only first comma replaced", "1,2,3", 1.2},
		{"currency prefix", "€ 17,16", 17.16},
		{"empty string", "", 0},
		{"only punctuation", ",.", 0},
		{"nil", nil, 0},
		{"bool", true, 0},
		{"map", map[string]interface{}{"a": 1}, 0},
		{"slice", []interface{}{1, 2}, 0},
		{"NaN", math.NaN(), 0},
		{"positive infinity", math.Inf(1), 0},
		{"negative infinity", math.Inf(-1), 0},
		{"overflowing digits", strings.Repeat("9", 400), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extraction.NormalizeNumber(tt.input)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.False(t, math.IsNaN(got))
			assert.False(t, math.IsInf(got, 0))
		})
	}
}

func TestNormalizeNumber_FiniteNumberUnchanged(t *testing.T) {
	for _, v := range []float64{0, 0.05, 12.5, 5022.04, -3.5, 1e12} {
		assert.Equal(t, v, extraction.NormalizeNumber(v))
	}
}

func TestNormalizeOffer_EmptyRecordYieldsDefaults(t *testing.T) {
	got := extraction.NormalizeOffer(map[string]interface{}{})

	want := domain.DefaultOffer(domain.UnknownSupplier, domain.UnspecifiedContract)
	assert.Equal(t, want, got)
	assert.Equal(t, "Fournisseur inconnu", got.Fournisseur)
	assert.Equal(t, "Non spécifié", got.TypeContrat)
	assert.Equal(t, 0.0, got.PrixMolecule)
	assert.Equal(t, 0.0, got.CEE)
	assert.Equal(t, 8.69, got.Transport)
	assert.Equal(t, 0.0, got.AbonnementF)
	assert.Equal(t, 5022.04, got.Distribution)
	assert.Equal(t, 1231.08, got.TransportAnn)
	assert.Equal(t, 304.52, got.CTA)
	assert.Equal(t, 17.16, got.TICGN)
	assert.Nil(t, got.ConsommationReference)
	assert.Nil(t, got.SourceFile)
	assert.Empty(t, got.ID)
}

func TestNormalizeOffer_CoercesFields(t *testing.T) {
	raw := map[string]interface{}{
		"fournisseur":           "  ENGIE  ",
		"typeContrat":           "Fixe 24 mois",
		"prixMolecule":          "35,5",
		"cee":                   8.5,
		"transport":             0.0,
		"abonnementF":           "120 €/an",
		"distribution":          "n/a",
		"transportAnn":          -10.0,
		"cta":                   310.0,
		"ticgn":                 "17,16",
		"consommationReference": "600 MWh",
	}

	got := extraction.NormalizeOffer(raw)

	assert.Equal(t, "ENGIE", got.Fournisseur)
	assert.Equal(t, "Fixe 24 mois", got.TypeContrat)
	assert.Equal(t, 35.5, got.PrixMolecule)
	assert.Equal(t, 8.5, got.CEE)
	assert.Equal(t, domain.DefaultTransport, got.Transport)
	assert.Equal(t, 120.0, got.AbonnementF)
	assert.Equal(t, domain.DefaultDistribution, got.Distribution)
	assert.Equal(t, domain.DefaultTransportAnn, got.TransportAnn)
	assert.Equal(t, 310.0, got.CTA)
	assert.Equal(t, 17.16, got.TICGN)
	require.NotNil(t, got.ConsommationReference)
	assert.Equal(t, 600.0, *got.ConsommationReference)
}

func TestNormalizeOffer_Labels(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  string
	}{
		{"blank string", "   ", domain.UnknownSupplier},
		{"nil", nil, domain.UnknownSupplier},
		{"zero", 0.0, domain.UnknownSupplier},
		{"false", false, domain.UnknownSupplier},
		{"object", map[string]interface{}{"name": "EDF"}, domain.UnknownSupplier},
		{"array", []interface{}{"EDF", "ENGIE"}, domain.UnknownSupplier},
		{"number", 42.0, "42"},
		{"padded", "\tEkwateur\n", "Ekwateur"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extraction.NormalizeOffer(map[string]interface{}{"fournisseur": tt.value})
			assert.Equal(t, tt.want, got.Fournisseur)
		})
	}
}

func TestNormalizeOffer_StructuredLabelsAreDropped(t *testing.T) {
	for _, value := range []interface{}{
		map[string]interface{}{"name": "ENGIE"},
		[]interface{}{"ENGIE"},
	} {
		offer := extraction.NormalizeOffer(map[string]interface{}{
			"fournisseur":  value,
			"typeContrat":  value,
			"prixMolecule": 35.0,
		})
		assert.Equal(t, domain.UnknownSupplier, offer.Fournisseur)
		assert.Equal(t, domain.UnspecifiedContract, offer.TypeContrat)
		assert.False(t, extraction.IsUsable(offer))
	}
}

func TestNormalizeOffer_ConsommationReferenceNullStaysAbsent(t *testing.T) {
	got := extraction.NormalizeOffer(map[string]interface{}{
		"fournisseur":           "EDF",
		"consommationReference": nil,
	})
	assert.Nil(t, got.ConsommationReference)

	got = extraction.NormalizeOffer(map[string]interface{}{
		"fournisseur":           "EDF",
		"consommationReference": "abc",
	})
	require.NotNil(t, got.ConsommationReference)
	assert.Equal(t, 0.0, *got.ConsommationReference)
}

func TestIsUsable(t *testing.T) {
	assert.False(t, extraction.IsUsable(extraction.NormalizeOffer(map[string]interface{}{})))
	assert.True(t, extraction.IsUsable(extraction.NormalizeOffer(map[string]interface{}{"fournisseur": "ENI"})))
}
