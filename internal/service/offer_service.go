package service

import (
	"context"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"gascompare/internal/config"
	"gascompare/internal/domain"
	"gascompare/internal/port"
	"gascompare/internal/ranking"
)

// OfferInput creates or patches an offer. Nil fields keep their current
// value (or the manual-entry default on create).
type OfferInput struct {
	Fournisseur           *string  `json:"fournisseur" validate:"omitnil,min=1,max=255"`
	TypeContrat           *string  `json:"typeContrat" validate:"omitempty,max=255"`
	PrixMolecule          *float64 `json:"prixMolecule" validate:"omitempty,gte=0"`
	CEE                   *float64 `json:"cee" validate:"omitempty,gte=0"`
	Transport             *float64 `json:"transport" validate:"omitempty,gte=0"`
	AbonnementF           *float64 `json:"abonnementF" validate:"omitempty,gte=0"`
	Distribution          *float64 `json:"distribution" validate:"omitempty,gte=0"`
	TransportAnn          *float64 `json:"transportAnn" validate:"omitempty,gte=0"`
	CTA                   *float64 `json:"cta" validate:"omitempty,gte=0"`
	TICGN                 *float64 `json:"ticgn" validate:"omitempty,gte=0"`
	ConsommationReference *float64 `json:"consommationReference" validate:"omitempty,gte=0"`
}

// CompareInput overrides the configured comparison parameters.
type CompareInput struct {
	ConsumptionMWh *float64 `form:"consumption" validate:"omitempty,gte=0,lte=10000000"`
	TVAFixe        *float64 `form:"tva_fixe" validate:"omitempty,gte=0,lte=1"`
	TVAVar         *float64 `form:"tva_var" validate:"omitempty,gte=0,lte=1"`
	Query          string   `form:"q" validate:"max=200"`
}

// OfferService manages a user's offers and ranks them.
type OfferService interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]domain.ExtractedOffer, error)
	Create(ctx context.Context, ownerID uuid.UUID, input OfferInput) (*domain.ExtractedOffer, error)
	Update(ctx context.Context, ownerID uuid.UUID, offerID string, input OfferInput) (*domain.ExtractedOffer, error)
	Delete(ctx context.Context, ownerID uuid.UUID, offerID string) error
	Compare(ctx context.Context, ownerID uuid.UUID, input CompareInput) (*ranking.Comparison, error)
}

type offerService struct {
	repo     port.OfferRepository
	defaults ranking.Params
	validate *validator.Validate
}

// NewOfferService creates a new OfferService with the given default comparison parameters.
func NewOfferService(repo port.OfferRepository, cfg config.RankingConfig) OfferService {
	return &offerService{
		repo: repo,
		defaults: ranking.Params{
			ConsumptionMWh: cfg.ConsumptionMWh,
			TVAFixe:        cfg.TVAFixe,
			TVAVar:         cfg.TVAVar,
		},
		validate: validator.New(),
	}
}

// ManualOffer returns the row a user starts from when adding an offer by hand.
func ManualOffer() domain.ExtractedOffer {
	return domain.ExtractedOffer{
		Fournisseur: domain.ManualOfferSupplier,
		TypeContrat: domain.ManualOfferContract,
		TICGN:       domain.DefaultTICGN,
	}
}

func (s *offerService) List(ctx context.Context, ownerID uuid.UUID) ([]domain.ExtractedOffer, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *offerService) Create(ctx context.Context, ownerID uuid.UUID, input OfferInput) (*domain.ExtractedOffer, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	offer := ManualOffer()
	input.apply(&offer)
	offer.ID = uuid.NewString()
	offer.OwnerID = ownerID

	batch := []domain.ExtractedOffer{offer}
	if err := s.repo.CreateBatch(ctx, ownerID, batch); err != nil {
		return nil, fmt.Errorf("offerService.Create: %w", err)
	}

	log.Printf("offerService.Create: created offer %s (%s) for owner %s", batch[0].ID, batch[0].Fournisseur, ownerID)
	return &batch[0], nil
}

func (s *offerService) Update(ctx context.Context, ownerID uuid.UUID, offerID string, input OfferInput) (*domain.ExtractedOffer, error) {
	if _, err := uuid.Parse(offerID); err != nil {
		return nil, domain.ErrNotFound
	}
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	offer, err := s.repo.GetByID(ctx, ownerID, offerID)
	if err != nil {
		return nil, err
	}

	input.apply(offer)
	offer.OwnerID = ownerID
	if err := s.repo.Update(ctx, offer); err != nil {
		return nil, err
	}
	return offer, nil
}

func (s *offerService) Delete(ctx context.Context, ownerID uuid.UUID, offerID string) error {
	if _, err := uuid.Parse(offerID); err != nil {
		return domain.ErrNotFound
	}
	log.Printf("offerService.Delete: deleting offer %s for owner %s", offerID, ownerID)
	return s.repo.Delete(ctx, ownerID, offerID)
}

func (s *offerService) Compare(ctx context.Context, ownerID uuid.UUID, input CompareInput) (*ranking.Comparison, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	params := s.defaults
	if input.ConsumptionMWh != nil {
		params.ConsumptionMWh = *input.ConsumptionMWh
	}
	if input.TVAFixe != nil {
		params.TVAFixe = *input.TVAFixe
	}
	if input.TVAVar != nil {
		params.TVAVar = *input.TVAVar
	}

	offers, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	cmp := ranking.Compute(offers, params, input.Query)
	return &cmp, nil
}

func (in OfferInput) apply(o *domain.ExtractedOffer) {
	if in.Fournisseur != nil {
		o.Fournisseur = *in.Fournisseur
	}
	if in.TypeContrat != nil {
		o.TypeContrat = *in.TypeContrat
	}
	setFloat(&o.PrixMolecule, in.PrixMolecule)
	setFloat(&o.CEE, in.CEE)
	setFloat(&o.Transport, in.Transport)
	setFloat(&o.AbonnementF, in.AbonnementF)
	setFloat(&o.Distribution, in.Distribution)
	setFloat(&o.TransportAnn, in.TransportAnn)
	setFloat(&o.CTA, in.CTA)
	setFloat(&o.TICGN, in.TICGN)
	if in.ConsommationReference != nil {
		v := *in.ConsommationReference
		o.ConsommationReference = &v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
