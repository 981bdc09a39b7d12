package ranking_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gascompare/internal/domain"
	"gascompare/internal/ranking"
)

func offer(name, contract string, prix float64) domain.ExtractedOffer {
	o := domain.DefaultOffer(name, contract)
	o.PrixMolecule = prix
	return o
}

func TestCost(t *testing.T) {
	o := domain.ExtractedOffer{
		Fournisseur:  "ENGIE",
		PrixMolecule: 30,
		CEE:          8.5,
		Transport:    8.69,
		TICGN:        17.16,
		AbonnementF:  100,
		Distribution: 5022.04,
		TransportAnn: 1231.08,
		CTA:          304.52,
	}

	got := ranking.Cost(o, ranking.DefaultParams())

	assert.InDelta(t, 600*(30+8.5+8.69+17.16), got.Variable, 1e-6)
	assert.InDelta(t, 100+5022.04+1231.08+304.52, got.Fixes, 1e-6)
	assert.InDelta(t, got.Variable+got.Fixes, got.HT, 1e-6)
	assert.InDelta(t, got.Fixes*1.055+got.Variable*1.2, got.TTC, 1e-6)
}

func TestCompute_SortsByTTC(t *testing.T) {
	offers := []domain.ExtractedOffer{
		offer("EDF", "Fixe 12 mois", 40),
		offer("ENGIE", "Fixe 24 mois", 30),
		offer("ENI", "Indexé", 35),
	}

	cmp := ranking.Compute(offers, ranking.DefaultParams(), "")

	require.Len(t, cmp.Offers, 3)
	assert.Equal(t, "ENGIE", cmp.Offers[0].Fournisseur)
	assert.Equal(t, "ENI", cmp.Offers[1].Fournisseur)
	assert.Equal(t, "EDF", cmp.Offers[2].Fournisseur)
	for i, r := range cmp.Offers {
		assert.Equal(t, i+1, r.Rank)
	}

	require.NotNil(t, cmp.Summary.Best)
	require.NotNil(t, cmp.Summary.Worst)
	assert.Equal(t, "ENGIE", cmp.Summary.Best.Fournisseur)
	assert.Equal(t, "EDF", cmp.Summary.Worst.Fournisseur)
	assert.InDelta(t, 600*10*1.2, cmp.Summary.PotentialSavings, 1e-6)
	assert.Equal(t, 3, cmp.Summary.Count)
}

func TestCompute_StableForTies(t *testing.T) {
	offers := []domain.ExtractedOffer{
		offer("First", "A", 30),
		offer("Second", "B", 30),
	}

	cmp := ranking.Compute(offers, ranking.DefaultParams(), "")

	assert.Equal(t, "First", cmp.Offers[0].Fournisseur)
	assert.Equal(t, "Second", cmp.Offers[1].Fournisseur)
	assert.Equal(t, 0.0, cmp.Summary.PotentialSavings)
}

func TestCompute_Filter(t *testing.T) {
	offers := []domain.ExtractedOffer{
		offer("EDF", "Fixe 12 mois", 40),
		offer("ENGIE", "Fixe 24 mois", 30),
		offer("Ekwateur", "Indexé PEG", 35),
	}

	cmp := ranking.Compute(offers, ranking.DefaultParams(), "  24 MOIS ")
	require.Len(t, cmp.Offers, 1)
	assert.Equal(t, "ENGIE", cmp.Offers[0].Fournisseur)
	assert.Equal(t, "24 MOIS", cmp.Query)

	cmp = ranking.Compute(offers, ranking.DefaultParams(), "e")
	assert.Len(t, cmp.Offers, 3)

	cmp = ranking.Compute(offers, ranking.DefaultParams(), "vattenfall")
	assert.Empty(t, cmp.Offers)
	assert.Nil(t, cmp.Summary.Best)
	assert.Equal(t, 0.0, cmp.Summary.PotentialSavings)
}

func TestCompute_ConsumptionChangesOrder(t *testing.T) {
	cheapFixed := domain.ExtractedOffer{Fournisseur: "LowFix", PrixMolecule: 40}
	cheapVariable := domain.ExtractedOffer{Fournisseur: "LowVar", PrixMolecule: 30, AbonnementF: 5000}

	small := ranking.Compute([]domain.ExtractedOffer{cheapFixed, cheapVariable}, ranking.Params{ConsumptionMWh: 10}, "")
	large := ranking.Compute([]domain.ExtractedOffer{cheapFixed, cheapVariable}, ranking.Params{ConsumptionMWh: 1000}, "")

	assert.Equal(t, "LowFix", small.Offers[0].Fournisseur)
	assert.Equal(t, "LowVar", large.Offers[0].Fournisseur)
}

func TestMatches(t *testing.T) {
	o := offer("TotalEnergies", "Fixe 36 mois", 0)
	assert.True(t, ranking.Matches(o, ""))
	assert.True(t, ranking.Matches(o, "total"))
	assert.True(t, ranking.Matches(o, "energies fixe"))
	assert.False(t, ranking.Matches(o, "engie"))
}
