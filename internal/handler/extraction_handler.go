package handler

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"gascompare/internal/domain"
	"gascompare/internal/service"
)

// MaxBatchFiles caps how many files a single extraction request may carry.
const MaxBatchFiles = 20

// ExtractionHandler handles contract document uploads.
type ExtractionHandler struct {
	extractionService service.ExtractionService
}

// NewExtractionHandler creates a new ExtractionHandler.
func NewExtractionHandler(extractionService service.ExtractionService) *ExtractionHandler {
	return &ExtractionHandler{extractionService: extractionService}
}

// Extract handles POST /api/v1/extractions
// @Summary Extract offers from contract documents
// @Description Upload one or more contract documents (PDF, image, DOCX, text; max 10MB each).
// @Description Files that cannot be read or analysed are reported in the steps; the batch continues.
// @Tags extractions
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "Contract documents (repeat the field for several files)"
// @Success 200 {object} Response{data=service.BatchResult} "Extracted offers with progress steps"
// @Failure 400 {object} ErrorResponseBody "No file provided"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 503 {object} ErrorResponseBody "Document analysis not configured"
// @Security BearerAuth
// @Router /extractions [post]
func (h *ExtractionHandler) Extract(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "multipart field 'files' is required")
		return
	}

	headers := form.File["files"]
	if len(headers) == 0 {
		headers = form.File["file"]
	}
	if len(headers) == 0 {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "multipart field 'files' is required")
		return
	}
	if len(headers) > MaxBatchFiles {
		RespondError(c, http.StatusBadRequest, "TOO_MANY_FILES",
			fmt.Sprintf("at most %d files per request", MaxBatchFiles))
		return
	}

	files := make([]domain.SourceFile, 0, len(headers))
	for _, fh := range headers {
		files = append(files, sourceFile(fh))
	}

	result, err := h.extractionService.ProcessFiles(c.Request.Context(), owner, files)
	if err != nil {
		HandleError(c, err)
		return
	}

	log.Printf("extractionHandler.Extract: owner %s, %d file(s), %d offer(s), %d warning(s)",
		owner, len(files), len(result.Offers), len(result.Warnings))
	RespondOK(c, result)
}

func sourceFile(fh *multipart.FileHeader) domain.SourceFile {
	return domain.SourceFile{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}
