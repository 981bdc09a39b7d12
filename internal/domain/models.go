package domain

import (
	"bytes"
	"io"
	"time"

	"github.com/google/uuid"
)

// ExtractedOffer is one supplier's priced contract terms. JSON names are the ones the
// completion provider is instructed to emit and must not change.
type ExtractedOffer struct {
	ID                    string    `db:"id" json:"id,omitempty"`
	OwnerID               uuid.UUID `db:"owner_id" json:"-"`
	Fournisseur           string    `db:"fournisseur" json:"fournisseur"`
	TypeContrat           string    `db:"type_contrat" json:"typeContrat"`
	PrixMolecule          float64   `db:"prix_molecule" json:"prixMolecule"`
	CEE                   float64   `db:"cee" json:"cee"`
	Transport             float64   `db:"transport" json:"transport"`
	AbonnementF           float64   `db:"abonnement_f" json:"abonnementF"`
	Distribution          float64   `db:"distribution" json:"distribution"`
	TransportAnn          float64   `db:"transport_ann" json:"transportAnn"`
	CTA                   float64   `db:"cta" json:"cta"`
	TICGN                 float64   `db:"ticgn" json:"ticgn"`
	ConsommationReference *float64  `db:"consommation_reference" json:"consommationReference,omitempty"`
	SourceFile            *string   `db:"source_file" json:"sourceFile,omitempty"`
}

// DefaultOffer returns an offer carrying every tariff default.
func DefaultOffer(fournisseur, typeContrat string) ExtractedOffer {
	return ExtractedOffer{
		Fournisseur:  fournisseur,
		TypeContrat:  typeContrat,
		PrixMolecule: DefaultPrixMolecule,
		CEE:          DefaultCEE,
		Transport:    DefaultTransport,
		AbonnementF:  DefaultAbonnementF,
		Distribution: DefaultDistribution,
		TransportAnn: DefaultTransportAnn,
		CTA:          DefaultCTA,
		TICGN:        DefaultTICGN,
	}
}

// RawDocument is the text obtained from one uploaded file.
type RawDocument struct {
	FileName string
	RawText  string
}

// ProcessingStep is a progress event emitted while a batch runs.
type ProcessingStep struct {
	Step        string  `json:"step"`
	Progress    float64 `json:"progress"`
	FileName    string  `json:"fileName,omitempty"`
	OffersFound *int    `json:"offersFound,omitempty"`
}

// SourceFile is an uploaded file as seen by the extraction pipeline. Open is only
// called once the declared size has been accepted.
type SourceFile struct {
	Name        string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

// NewBytesFile wraps in-memory content as a SourceFile.
func NewBytesFile(name, contentType string, data []byte) SourceFile {
	return SourceFile{
		Name:        name,
		ContentType: contentType,
		Size:        int64(len(data)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
	}
}

// ReadAll opens the file and returns its whole content.
func (f SourceFile) ReadAll() ([]byte, error) {
	if f.Open == nil {
		return nil, ErrReadFailed
	}
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return io.ReadAll(rc)
}

// SourceDocument records where an uploaded file was archived.
type SourceDocument struct {
	ID          uuid.UUID `db:"id" json:"id"`
	OwnerID     uuid.UUID `db:"owner_id" json:"-"`
	FileName    string    `db:"file_name" json:"fileName"`
	ContentType string    `db:"content_type" json:"contentType"`
	FileSize    int64     `db:"file_size" json:"fileSize"`
	S3Bucket    string    `db:"s3_bucket" json:"-"`
	S3Key       string    `db:"s3_key" json:"-"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}
