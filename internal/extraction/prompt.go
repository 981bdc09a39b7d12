package extraction

import (
	"fmt"
	"strings"

	"gascompare/internal/domain"
)

// MaxPromptChars caps the document text embedded in a prompt.
const MaxPromptChars = 8000

// SystemPrompt frames every extraction request.
const SystemPrompt = `Tu es un expert en analyse de contrats de fourniture de gaz naturel en France.
Tu extrais des offres tarifaires structurées à partir de documents commerciaux (contrats, tableaux comparatifs, propositions de courtiers).

Fournisseurs connus : ENGIE, TotalEnergies, EDF, Ekwateur, Vattenfall, ENI, Dyneff, Gaz de Bordeaux, Planète OUI, Mint Energie, Alpiq, Antargaz, Gaz Européen.

Règles :
- Une ligne = une offre. Chaque ligne d'un tableau correspond à une offre distincte.
- N'invente jamais de fournisseur absent du document.
- Les prix unitaires sont exprimés en €/MWh, les coûts fixes en €/an.
- Réponds uniquement avec un objet JSON valide, sans texte autour.`

const offerFields = `"fournisseur": "Nom du fournisseur",
      "typeContrat": "Fixe 12 mois",
      "prixMolecule": 35.5,
      "cee": 8.5,
      "transport": 8.69,
      "abonnementF": 0,
      "distribution": 5022.04,
      "transportAnn": 1231.08,
      "cta": 304.52,
      "ticgn": 17.16,
      "consommationReference": 600`

// BuildPrompt produces the user prompt for one document. The text is
// truncated to MaxPromptChars characters.
func BuildPrompt(text, fileName string, class domain.DocumentClass) string {
	var b strings.Builder

	fmt.Fprintf(&b, "DOCUMENT : %s\n", fileName)
	fmt.Fprintf(&b, "TYPE DÉTECTÉ : %s\n\n", class)
	b.WriteString("CONTENU À ANALYSER :\n")
	b.WriteString(truncateChars(text, MaxPromptChars))
	b.WriteString("\n\n")

	b.WriteString("CONSIGNES :\n")
	b.WriteString("1. Recopie le nom exact de chaque fournisseur tel qu'il apparaît dans le document.\n")
	b.WriteString("2. Convertis les prix en ct€/kWh en €/MWh : ct€/kWh → diviser par 10 pour obtenir des €/MWh.\n")
	b.WriteString("3. Pour un tableau, extrais chaque ligne comme une offre distincte.\n")
	b.WriteString("4. Cherche les tarifs dans tout le document, ils peuvent être dispersés sur plusieurs pages.\n")
	b.WriteString("5. N'inclus jamais une offre dont tous les prix valent 0.\n\n")

	if class.IsMultiOffer() {
		b.WriteString("Ce document contient probablement PLUSIEURS offres. Extrais CHAQUE ligne et CHAQUE fournisseur distinct, au format :\n")
		b.WriteString("{\n  \"offers\": [\n    {\n      ")
		b.WriteString(offerFields)
		b.WriteString("\n    }\n  ]\n}\n")
	} else {
		b.WriteString("Ce document contient probablement UNE SEULE offre. Retourne-la au format :\n")
		b.WriteString("{\n      ")
		b.WriteString(offerFields)
		b.WriteString("\n}\n")
	}

	return b.String()
}

func truncateChars(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
