// @title Gas Compare API
// @version 1.0
// @description Extracts natural-gas supply offers from contract documents and ranks them by yearly cost.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"gascompare/internal/completion"
	_ "gascompare/internal/completion/claude"
	_ "gascompare/internal/completion/gemini"
	_ "gascompare/internal/completion/openai"
	"gascompare/internal/config"
	"gascompare/internal/domain"
	"gascompare/internal/extraction"
	"gascompare/internal/handler"
	"gascompare/internal/port"
	"gascompare/internal/repository/postgres"
	"gascompare/internal/router"
	"gascompare/internal/service"
	s3storage "gascompare/internal/storage/s3"
	"gascompare/internal/textextract"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	offerRepo := postgres.NewOfferRepo(db)
	docRepo := postgres.NewSourceDocumentRepo(db)

	// Initialize storage
	var storage port.ObjectStorage
	if cfg.S3.Bucket != "" {
		storage, err = s3storage.NewArchive(ctx, &cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 archive: %w", err)
		}
	} else {
		log.Println("S3 bucket not configured; uploaded documents will not be archived")
	}

	// Initialize completion provider chain
	completer, err := completion.NewFromConfig(&cfg.Completion)
	if err != nil {
		if !errors.Is(err, domain.ErrCompletionNotConfigured) {
			return fmt.Errorf("failed to initialize completion provider: %w", err)
		}
		log.Printf("Completion provider not configured (%v); extraction requests will be refused", err)
	}

	extractor := textextract.NewExtractor(textextract.Config{
		MaxPDFPages: cfg.Extraction.MaxPDFPages,
		OCRBinary:   cfg.Extraction.OCRBinary,
		OCRLanguage: cfg.Extraction.OCRLanguage,
	})
	processor := extraction.NewProcessor(extractor, completer, extraction.Config{
		MaxFileSize:               cfg.Extraction.MaxFileSizeBytes(),
		MinTextLength:             cfg.Extraction.MinTextLength,
		MaxRequestChars:           cfg.Extraction.MaxRequestChars,
		FallbackOnCompletionError: cfg.Extraction.FallbackOnCompletionError,
	})

	// Initialize services
	authSvc := service.NewAuthService(cfg.JWT)
	extractionSvc := service.NewExtractionService(processor, offerRepo, docRepo, storage, service.ArchiveConfig{
		Bucket:      cfg.S3.Bucket,
		MaxFileSize: cfg.Extraction.MaxFileSizeBytes(),
	})
	offerSvc := service.NewOfferService(offerRepo, cfg.Ranking)
	documentSvc := service.NewDocumentService(docRepo, storage)

	// Setup router
	r := router.Setup(authSvc, router.Handlers{
		Extraction: handler.NewExtractionHandler(extractionSvc),
		Offer:      handler.NewOfferHandler(offerSvc),
		Comparison: handler.NewComparisonHandler(offerSvc),
		Document:   handler.NewDocumentHandler(documentSvc),
		Health:     handler.NewHealthHandler(db, extractionSvc),
	}, cfg.CORS.AllowedOrigins, cfg.Extraction.MaxFileSizeBytes())

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Println("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
