package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gascompare/internal/service"
)

// OfferHandler handles manual offer management.
type OfferHandler struct {
	offerService service.OfferService
}

// NewOfferHandler creates a new OfferHandler.
func NewOfferHandler(offerService service.OfferService) *OfferHandler {
	return &OfferHandler{offerService: offerService}
}

// List handles GET /api/v1/offers
// @Summary List offers
// @Description List every offer of the authenticated user, oldest first
// @Tags offers
// @Produce json
// @Success 200 {object} Response{data=[]domain.ExtractedOffer} "Offers"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /offers [get]
func (h *OfferHandler) List(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	offers, err := h.offerService.List(c.Request.Context(), owner)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, offers, PagMeta{Total: len(offers), Offset: 0, Limit: len(offers)})
}

// Create handles POST /api/v1/offers
// @Summary Add an offer manually
// @Description Omitted fields take the manual-entry defaults ("Nouveau fournisseur", "Fixe 12 mois", zero prices, TICGN 17.16)
// @Tags offers
// @Accept json
// @Produce json
// @Param body body OfferRequest false "Offer fields"
// @Success 201 {object} Response{data=domain.ExtractedOffer} "Created offer"
// @Failure 400 {object} ErrorResponseBody "Invalid input"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /offers [post]
func (h *OfferHandler) Create(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	var input service.OfferInput
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
			return
		}
	}

	offer, err := h.offerService.Create(c.Request.Context(), owner, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, offer)
}

// Update handles PUT /api/v1/offers/:id
// @Summary Edit an offer
// @Description Only the fields present in the body are changed
// @Tags offers
// @Accept json
// @Produce json
// @Param id path string true "Offer ID (UUID)"
// @Param body body OfferRequest true "Fields to change"
// @Success 200 {object} Response{data=domain.ExtractedOffer} "Updated offer"
// @Failure 400 {object} ErrorResponseBody "Invalid input"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Offer not found"
// @Security BearerAuth
// @Router /offers/{id} [put]
func (h *OfferHandler) Update(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	var input service.OfferInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	offer, err := h.offerService.Update(c.Request.Context(), owner, c.Param("id"), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, offer)
}

// Delete handles DELETE /api/v1/offers/:id
// @Summary Delete an offer
// @Tags offers
// @Produce json
// @Param id path string true "Offer ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Offer deleted"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Offer not found"
// @Security BearerAuth
// @Router /offers/{id} [delete]
func (h *OfferHandler) Delete(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	if err := h.offerService.Delete(c.Request.Context(), owner, c.Param("id")); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "offer deleted"})
}
