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

type sourceDocumentRepo struct {
	db *sqlx.DB
}

// NewSourceDocumentRepo creates a new PostgreSQL-backed SourceDocumentRepository.
func NewSourceDocumentRepo(db *sqlx.DB) port.SourceDocumentRepository {
	return &sourceDocumentRepo{db: db}
}

func (r *sourceDocumentRepo) Create(ctx context.Context, doc *domain.SourceDocument) error {
	doc.CreatedAt = time.Now().UTC()

	query := `INSERT INTO source_documents
		(id, owner_id, file_name, content_type, file_size, s3_bucket, s3_key, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query,
		doc.ID, doc.OwnerID, doc.FileName, doc.ContentType, doc.FileSize,
		doc.S3Bucket, doc.S3Key, doc.CreatedAt)
	if err != nil {
		return fmt.Errorf("sourceDocumentRepo.Create: %w", err)
	}
	return nil
}

func (r *sourceDocumentRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]domain.SourceDocument, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM source_documents WHERE owner_id = $1", ownerID)
	if err != nil {
		return nil, 0, fmt.Errorf("sourceDocumentRepo.ListByOwner count: %w", err)
	}

	docs := []domain.SourceDocument{}
	err = r.db.SelectContext(ctx, &docs,
		`SELECT * FROM source_documents
		 WHERE owner_id = $1
		 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		ownerID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("sourceDocumentRepo.ListByOwner: %w", err)
	}
	return docs, total, nil
}

func (r *sourceDocumentRepo) GetByID(ctx context.Context, ownerID, docID uuid.UUID) (*domain.SourceDocument, error) {
	var doc domain.SourceDocument
	err := r.db.GetContext(ctx, &doc,
		"SELECT * FROM source_documents WHERE id = $1 AND owner_id = $2", docID, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("sourceDocumentRepo.GetByID: %w", err)
	}
	return &doc, nil
}

func (r *sourceDocumentRepo) Delete(ctx context.Context, ownerID, docID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM source_documents WHERE id = $1 AND owner_id = $2", docID, ownerID)
	if err != nil {
		return fmt.Errorf("sourceDocumentRepo.Delete: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sourceDocumentRepo.Delete rows: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
