// Package ranking computes the yearly cost of each offer and orders them.
package ranking

import (
	"sort"
	"strings"

	"gascompare/internal/domain"
)

// Params are the comparison inputs chosen by the user.
type Params struct {
	ConsumptionMWh float64 `json:"consumptionMWh"`
	TVAFixe        float64 `json:"tvaFixe"`
	TVAVar         float64 `json:"tvaVar"`
}

// DefaultParams returns 600 MWh/year with 5.5% VAT on fixed costs and 20% on variable costs.
func DefaultParams() Params {
	return Params{ConsumptionMWh: 600, TVAFixe: 0.055, TVAVar: 0.2}
}

// RankedOffer is an offer with its computed yearly costs in euros.
type RankedOffer struct {
	domain.ExtractedOffer
	Rank     int     `json:"rank"`
	Variable float64 `json:"variable"`
	Fixes    float64 `json:"fixes"`
	HT       float64 `json:"ht"`
	TTC      float64 `json:"ttc"`
}

// Summary highlights the cheapest and most expensive offers.
type Summary struct {
	Count            int          `json:"count"`
	Best             *RankedOffer `json:"best,omitempty"`
	Worst            *RankedOffer `json:"worst,omitempty"`
	PotentialSavings float64      `json:"potentialSavings"`
}

// Comparison is a ranked, filtered view over a set of offers.
type Comparison struct {
	Params  Params        `json:"params"`
	Query   string        `json:"query,omitempty"`
	Offers  []RankedOffer `json:"offers"`
	Summary Summary       `json:"summary"`
}

// Cost computes the yearly cost of one offer.
//
//	variable = consumption × (prixMolecule + cee + transport + ticgn)
//	fixes    = abonnementF + distribution + transportAnn + cta
//	ttc      = fixes × (1 + tvaFixe) + variable × (1 + tvaVar)
func Cost(offer domain.ExtractedOffer, p Params) RankedOffer {
	variable := p.ConsumptionMWh * (offer.PrixMolecule + offer.CEE + offer.Transport + offer.TICGN)
	fixes := offer.AbonnementF + offer.Distribution + offer.TransportAnn + offer.CTA
	return RankedOffer{
		ExtractedOffer: offer,
		Variable:       variable,
		Fixes:          fixes,
		HT:             variable + fixes,
		TTC:            fixes*(1+p.TVAFixe) + variable*(1+p.TVAVar),
	}
}

// Matches reports whether the supplier or contract type contains query,
// ignoring case. An empty query matches everything.
func Matches(offer domain.ExtractedOffer, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(offer.Fournisseur+" "+offer.TypeContrat), q)
}

// Compute filters offers by query, costs them and sorts them by TTC,
// cheapest first. Offers with equal TTC keep their input order.
func Compute(offers []domain.ExtractedOffer, p Params, query string) Comparison {
	ranked := make([]RankedOffer, 0, len(offers))
	for _, offer := range offers {
		if !Matches(offer, query) {
			continue
		}
		ranked = append(ranked, Cost(offer, p))
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TTC < ranked[j].TTC
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}

	summary := Summary{Count: len(ranked)}
	if len(ranked) > 0 {
		best := ranked[0]
		worst := ranked[len(ranked)-1]
		summary.Best = &best
		summary.Worst = &worst
		summary.PotentialSavings = worst.TTC - best.TTC
	}

	return Comparison{
		Params:  p,
		Query:   strings.TrimSpace(query),
		Offers:  ranked,
		Summary: summary,
	}
}
