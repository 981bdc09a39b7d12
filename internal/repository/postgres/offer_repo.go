package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gascompare/internal/domain"
	"gascompare/internal/port"
)

const offerColumns = `id, owner_id, fournisseur, type_contrat, prix_molecule, cee, transport,
	abonnement_f, distribution, transport_ann, cta, ticgn, consommation_reference, source_file`

type offerRepo struct {
	db *sqlx.DB
}

// NewOfferRepo creates a new PostgreSQL-backed OfferRepository.
func NewOfferRepo(db *sqlx.DB) port.OfferRepository {
	return &offerRepo{db: db}
}

func (r *offerRepo) CreateBatch(ctx context.Context, ownerID uuid.UUID, offers []domain.ExtractedOffer) error {
	if len(offers) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("offerRepo.CreateBatch begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC()
	query := `INSERT INTO offers
		(` + offerColumns + `, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	for i := range offers {
		o := &offers[i]
		if o.ID == "" {
			o.ID = uuid.NewString()
		}
		o.OwnerID = ownerID
		_, err := tx.ExecContext(ctx, query,
			o.ID, o.OwnerID, o.Fournisseur, o.TypeContrat, o.PrixMolecule, o.CEE, o.Transport,
			o.AbonnementF, o.Distribution, o.TransportAnn, o.CTA, o.TICGN,
			o.ConsommationReference, o.SourceFile, now, now)
		if err != nil {
			return fmt.Errorf("offerRepo.CreateBatch insert %q: %w", o.Fournisseur, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("offerRepo.CreateBatch commit: %w", err)
	}
	return nil
}

func (r *offerRepo) GetByID(ctx context.Context, ownerID uuid.UUID, offerID string) (*domain.ExtractedOffer, error) {
	var offer domain.ExtractedOffer
	err := r.db.GetContext(ctx, &offer,
		"SELECT "+offerColumns+" FROM offers WHERE id = $1 AND owner_id = $2", offerID, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("offerRepo.GetByID: %w", err)
	}
	return &offer, nil
}

func (r *offerRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.ExtractedOffer, error) {
	offers := []domain.ExtractedOffer{}
	err := r.db.SelectContext(ctx, &offers,
		"SELECT "+offerColumns+" FROM offers WHERE owner_id = $1 ORDER BY created_at, id", ownerID)
	if err != nil {
		return nil, fmt.Errorf("offerRepo.ListByOwner: %w", err)
	}
	return offers, nil
}

func (r *offerRepo) Update(ctx context.Context, offer *domain.ExtractedOffer) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE offers SET fournisseur = $1, type_contrat = $2, prix_molecule = $3, cee = $4,
			transport = $5, abonnement_f = $6, distribution = $7, transport_ann = $8, cta = $9,
			ticgn = $10, consommation_reference = $11, updated_at = $12
		 WHERE id = $13 AND owner_id = $14`,
		offer.Fournisseur, offer.TypeContrat, offer.PrixMolecule, offer.CEE,
		offer.Transport, offer.AbonnementF, offer.Distribution, offer.TransportAnn, offer.CTA,
		offer.TICGN, offer.ConsommationReference, time.Now().UTC(),
		offer.ID, offer.OwnerID)
	if err != nil {
		return fmt.Errorf("offerRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *offerRepo) Delete(ctx context.Context, ownerID uuid.UUID, offerID string) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM offers WHERE id = $1 AND owner_id = $2", offerID, ownerID)
	if err != nil {
		return fmt.Errorf("offerRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
