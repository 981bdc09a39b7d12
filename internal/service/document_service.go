package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"gascompare/internal/domain"
	"gascompare/internal/port"
)

// DocumentService gives owners access to the source documents archived
// during extraction.
type DocumentService interface {
	List(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]domain.SourceDocument, int, error)
	Download(ctx context.Context, ownerID, docID uuid.UUID) (*domain.SourceDocument, []byte, error)
	Delete(ctx context.Context, ownerID, docID uuid.UUID) error
}

type documentService struct {
	docRepo port.SourceDocumentRepository
	storage port.ObjectStorage
}

// NewDocumentService creates a new DocumentService. storage may be nil when
// archiving is disabled; content access then fails with ErrStorageUnavailable.
func NewDocumentService(docRepo port.SourceDocumentRepository, storage port.ObjectStorage) DocumentService {
	return &documentService{docRepo: docRepo, storage: storage}
}

func (s *documentService) List(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]domain.SourceDocument, int, error) {
	return s.docRepo.ListByOwner(ctx, ownerID, offset, limit)
}

func (s *documentService) Download(ctx context.Context, ownerID, docID uuid.UUID) (*domain.SourceDocument, []byte, error) {
	doc, err := s.docRepo.GetByID(ctx, ownerID, docID)
	if err != nil {
		return nil, nil, err
	}
	if s.storage == nil {
		return nil, nil, domain.ErrStorageUnavailable
	}

	data, err := s.storage.Download(ctx, doc.S3Bucket, doc.S3Key)
	if err != nil {
		log.Printf("documentService.Download: failed to fetch %s: %v", doc.S3Key, err)
		return nil, nil, err
	}
	return doc, data, nil
}

func (s *documentService) Delete(ctx context.Context, ownerID, docID uuid.UUID) error {
	log.Printf("documentService.Delete: deleting document %s for owner %s", docID, ownerID)

	doc, err := s.docRepo.GetByID(ctx, ownerID, docID)
	if err != nil {
		return err
	}
	if s.storage == nil {
		return domain.ErrStorageUnavailable
	}

	if err := s.storage.Delete(ctx, doc.S3Bucket, doc.S3Key); err != nil {
		log.Printf("documentService.Delete: failed to delete from S3: %v", err)
		return fmt.Errorf("deleting from storage: %w", err)
	}

	return s.docRepo.Delete(ctx, ownerID, docID)
}
