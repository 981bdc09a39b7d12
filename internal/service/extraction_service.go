package service

import (
	"context"
	"fmt"
	"log"
	"path"
	"strings"

	"github.com/google/uuid"

	"gascompare/internal/domain"
	"gascompare/internal/extraction"
	"gascompare/internal/port"
)

// BatchResult is the outcome of one uploaded batch.
type BatchResult struct {
	Offers   []domain.ExtractedOffer `json:"offers"`
	Steps    []domain.ProcessingStep `json:"steps"`
	Warnings []string                `json:"warnings,omitempty"`
}

// BatchProcessor runs the extraction pipeline over a batch of files.
type BatchProcessor interface {
	ProcessFiles(ctx context.Context, files []domain.SourceFile, onProgress extraction.ProgressFunc) ([]domain.ExtractedOffer, error)
	Ready() bool
}

// ExtractionService extracts offers from uploaded files, archives the
// sources and persists the offers for their owner.
type ExtractionService interface {
	ProcessFiles(ctx context.Context, ownerID uuid.UUID, files []domain.SourceFile) (*BatchResult, error)
	Ready() bool
}

// ArchiveConfig controls where source documents are archived. An empty
// bucket disables archiving.
type ArchiveConfig struct {
	Bucket      string
	MaxFileSize int64
}

type extractionService struct {
	processor BatchProcessor
	offerRepo port.OfferRepository
	docRepo   port.SourceDocumentRepository
	storage   port.ObjectStorage
	archive   ArchiveConfig
}

// NewExtractionService creates a new ExtractionService. offerRepo, docRepo and
// storage may be nil; the matching step is then skipped.
func NewExtractionService(
	processor BatchProcessor,
	offerRepo port.OfferRepository,
	docRepo port.SourceDocumentRepository,
	storage port.ObjectStorage,
	archive ArchiveConfig,
) ExtractionService {
	return &extractionService{
		processor: processor,
		offerRepo: offerRepo,
		docRepo:   docRepo,
		storage:   storage,
		archive:   archive,
	}
}

func (s *extractionService) Ready() bool {
	return s.processor.Ready()
}

func (s *extractionService) ProcessFiles(ctx context.Context, ownerID uuid.UUID, files []domain.SourceFile) (*BatchResult, error) {
	result := &BatchResult{Steps: []domain.ProcessingStep{}}

	offers, err := s.processor.ProcessFiles(ctx, files, func(step domain.ProcessingStep) {
		result.Steps = append(result.Steps, step)
	})
	if err != nil {
		return nil, err
	}
	result.Offers = offers

	log.Printf("extractionService.ProcessFiles: %d file(s) for owner %s produced %d offer(s)",
		len(files), ownerID, len(offers))

	for _, f := range files {
		if w := s.archiveFile(ctx, ownerID, f); w != "" {
			result.Warnings = append(result.Warnings, w)
		}
	}

	if s.offerRepo != nil && len(offers) > 0 {
		if err := s.offerRepo.CreateBatch(ctx, ownerID, result.Offers); err != nil {
			log.Printf("extractionService.ProcessFiles: failed to persist offers: %v", err)
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Les offres n'ont pas pu être enregistrées : %v", err))
		}
	}

	return result, nil
}

// archiveFile stores one source document and returns a warning on failure.
func (s *extractionService) archiveFile(ctx context.Context, ownerID uuid.UUID, f domain.SourceFile) string {
	if s.storage == nil || s.archive.Bucket == "" {
		return ""
	}
	if s.archive.MaxFileSize > 0 && f.Size > s.archive.MaxFileSize {
		return ""
	}

	docID := uuid.New()
	key := fmt.Sprintf("owners/%s/documents/%s/%s", ownerID, docID, safeBaseName(f.Name))

	rc, err := f.Open()
	if err != nil {
		log.Printf("extractionService.archiveFile: failed to open %s: %v", f.Name, err)
		return fmt.Sprintf("Archivage impossible de %s : %v", f.Name, err)
	}
	defer func() { _ = rc.Close() }()

	contentType := f.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if _, err := s.storage.Upload(ctx, port.ArchiveInput{
		Bucket:      s.archive.Bucket,
		Key:         key,
		Body:        rc,
		ContentType: contentType,
		Size:        f.Size,
	}); err != nil {
		log.Printf("extractionService.archiveFile: S3 upload failed for %s: %v", f.Name, err)
		return fmt.Sprintf("Archivage impossible de %s : %v", f.Name, err)
	}

	if s.docRepo == nil {
		return ""
	}
	doc := &domain.SourceDocument{
		ID:          docID,
		OwnerID:     ownerID,
		FileName:    f.Name,
		ContentType: contentType,
		FileSize:    f.Size,
		S3Bucket:    s.archive.Bucket,
		S3Key:       key,
	}
	if err := s.docRepo.Create(ctx, doc); err != nil {
		log.Printf("extractionService.archiveFile: failed to record %s: %v", f.Name, err)
		if delErr := s.storage.Delete(ctx, s.archive.Bucket, key); delErr != nil {
			log.Printf("extractionService.archiveFile: failed to remove orphan %s: %v", key, delErr)
		}
		return fmt.Sprintf("Archivage non référencé pour %s : %v", f.Name, err)
	}
	return ""
}

func safeBaseName(name string) string {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	if base == "." || base == "/" || base == "" {
		return "document"
	}
	return base
}
