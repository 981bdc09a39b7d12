package handler

import (
	"bytes"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gascompare/internal/export"
	"gascompare/internal/service"
)

// ComparisonHandler ranks offers and exports the ranking.
type ComparisonHandler struct {
	offerService service.OfferService
	now          func() time.Time
}

// NewComparisonHandler creates a new ComparisonHandler.
func NewComparisonHandler(offerService service.OfferService) *ComparisonHandler {
	return &ComparisonHandler{offerService: offerService, now: time.Now}
}

// Compare handles GET /api/v1/comparison
// @Summary Rank offers by yearly cost
// @Description Computes variable, fixed, HT and TTC yearly costs and sorts offers by TTC, cheapest first
// @Tags comparison
// @Produce json
// @Param consumption query number false "Yearly consumption in MWh" default(600)
// @Param tva_fixe query number false "VAT rate on fixed costs" default(0.055)
// @Param tva_var query number false "VAT rate on variable costs" default(0.2)
// @Param q query string false "Case-insensitive filter on supplier and contract type"
// @Success 200 {object} Response{data=ranking.Comparison} "Ranked offers"
// @Failure 400 {object} ErrorResponseBody "Invalid parameters"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /comparison [get]
func (h *ComparisonHandler) Compare(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	var input service.CompareInput
	if err := c.ShouldBindQuery(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	cmp, err := h.offerService.Compare(c.Request.Context(), owner, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, cmp)
}

// Export handles GET /api/v1/comparison/export
// @Summary Export the ranking
// @Description Downloads the ranked offers as CSV (UTF-8 with BOM, ';' separated) or XLSX
// @Tags comparison
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param format query string false "csv or xlsx" default(csv)
// @Param consumption query number false "Yearly consumption in MWh"
// @Param tva_fixe query number false "VAT rate on fixed costs"
// @Param tva_var query number false "VAT rate on variable costs"
// @Param q query string false "Filter on supplier and contract type"
// @Success 200 {file} file "Export file"
// @Failure 400 {object} ErrorResponseBody "Invalid parameters"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /comparison/export [get]
func (h *ComparisonHandler) Export(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	format, valid := export.ParseFormat(c.Query("format"))
	if !valid {
		RespondError(c, http.StatusBadRequest, "INVALID_FORMAT", "format must be csv or xlsx")
		return
	}

	var input service.CompareInput
	if err := c.ShouldBindQuery(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	cmp, err := h.offerService.Compare(c.Request.Context(), owner, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	// Render fully before writing headers so a failure still yields a JSON error.
	var buf bytes.Buffer
	if err := export.Write(&buf, format, *cmp); err != nil {
		HandleError(c, err)
		return
	}

	filename := export.BuildFilename("comparatif-gaz", format, h.now())
	log.Printf("comparisonHandler.Export: owner %s, %d offer(s), %s", owner, len(cmp.Offers), filename)

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}
