package domain

// DocumentClass is the detected shape of a contract document. It only steers prompt
// construction, never the output schema.
type DocumentClass string

const (
	DocumentClassSingleContract  DocumentClass = "single_contract"
	DocumentClassBrokerTable     DocumentClass = "broker_table"
	DocumentClassComparisonTable DocumentClass = "comparison_table"
)

// IsMultiOffer reports whether documents of this class usually list several offers.
func (c DocumentClass) IsMultiOffer() bool {
	return c == DocumentClassComparisonTable || c == DocumentClassBrokerTable
}

// MediaType families the text extractor dispatches on.
const (
	MediaTypePDF  = "application/pdf"
	MediaTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MediaTypeText = "text/plain"
)

// AllowedExtensions maps lower-case file extensions (without dot) to the media type used
// when the client did not declare one.
var AllowedExtensions = map[string]string{
	"pdf":  MediaTypePDF,
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"tif":  "image/tiff",
	"tiff": "image/tiff",
	"docx": MediaTypeDOCX,
	"txt":  MediaTypeText,
	"csv":  "text/csv",
}

// Sentinel values written by the normalizer and the fallback extractor.
const (
	UnknownSupplier     = "Fournisseur inconnu"
	UnspecifiedContract = "Non spécifié"
	AnalyzedDocument    = "Document analysé"
	ManualCheckContract = "À vérifier manuellement"
	ToCheckContract     = "À vérifier"
	ManualOfferSupplier = "Nouveau fournisseur"
	ManualOfferContract = "Fixe 12 mois"
)

// Tariff defaults applied when a numeric field is missing or zero. They are French gas
// tariff reference values and are kept verbatim.
const (
	DefaultPrixMolecule = 0
	DefaultCEE          = 0
	DefaultTransport    = 8.69
	DefaultAbonnementF  = 0
	DefaultDistribution = 5022.04
	DefaultTransportAnn = 1231.08
	DefaultCTA          = 304.52
	DefaultTICGN        = 17.16

	// FallbackCEE is the levy the keyword extractor assumes for every supplier it finds.
	FallbackCEE = 8.5
)
