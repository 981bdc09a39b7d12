package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"

	"gascompare/internal/completion"
	"gascompare/internal/config"
	"gascompare/internal/domain"
	"gascompare/internal/extraction"
	"gascompare/internal/port"
	"gascompare/internal/ranking"
	"gascompare/internal/textextract"
)

var extractCmd = &cobra.Command{
	Use:   "extract FILE...",
	Short: "Extract offers from local contract files",
	Long: "Reads each file (PDF, image, DOCX or text), extracts its gas offers with the configured " +
		"completion provider and prints them as JSON. --offline skips the provider and uses keyword matching only.",
	Args: cobra.MinimumNArgs(1),
	RunE: runExtract,
}

var (
	extractOutputFile string
	extractOffline    bool
	extractRank       bool
	extractQuiet      bool
)

func init() {
	extractCmd.Flags().StringVarP(&extractOutputFile, "out", "o", "", "Write JSON to this file instead of stdout")
	extractCmd.Flags().BoolVar(&extractOffline, "offline", false, "Use keyword extraction only, without a completion provider")
	extractCmd.Flags().BoolVar(&extractRank, "rank", false, "Rank the extracted offers with the configured ranking parameters")
	extractCmd.Flags().BoolVarP(&extractQuiet, "quiet", "q", false, "Do not print progress to stderr")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	files := make([]domain.SourceFile, 0, len(args))
	for _, path := range args {
		file, err := localFile(path)
		if err != nil {
			return err
		}
		files = append(files, file)
	}

	extractor := textextract.NewExtractor(textextract.Config{
		MaxPDFPages: cfg.Extraction.MaxPDFPages,
		OCRBinary:   cfg.Extraction.OCRBinary,
		OCRLanguage: cfg.Extraction.OCRLanguage,
	})

	var offers []domain.ExtractedOffer
	if extractOffline {
		offers, err = extractOfflineOffers(ctx, cmd, extractor, files)
	} else {
		offers, err = extractWithCompletion(ctx, cmd, cfg, extractor, files)
	}
	if err != nil {
		return err
	}

	out, closeOut, err := openOutput(cmd.OutOrStdout(), extractOutputFile)
	if err != nil {
		return err
	}
	defer func() { _ = closeOut() }()

	if extractRank {
		params := ranking.Params{
			ConsumptionMWh: cfg.Ranking.ConsumptionMWh,
			TVAFixe:        cfg.Ranking.TVAFixe,
			TVAVar:         cfg.Ranking.TVAVar,
		}
		return writeJSON(out, ranking.Compute(offers, params, ""))
	}
	return writeJSON(out, offers)
}

func extractWithCompletion(ctx context.Context, cmd *cobra.Command, cfg *config.Config, extractor port.TextExtractor, files []domain.SourceFile) ([]domain.ExtractedOffer, error) {
	completer, err := completion.NewFromConfig(&cfg.Completion)
	if err != nil {
		if errors.Is(err, domain.ErrCompletionNotConfigured) {
			return nil, fmt.Errorf("%w (set GASCOMPARE_COMPLETION_API_KEY or use --offline)", err)
		}
		return nil, fmt.Errorf("failed to initialize completion provider: %w", err)
	}

	processor := extraction.NewProcessor(extractor, completer, extraction.Config{
		MaxFileSize:               cfg.Extraction.MaxFileSizeBytes(),
		MinTextLength:             cfg.Extraction.MinTextLength,
		MaxRequestChars:           cfg.Extraction.MaxRequestChars,
		FallbackOnCompletionError: cfg.Extraction.FallbackOnCompletionError,
	})

	return processor.ProcessFiles(ctx, files, func(step domain.ProcessingStep) {
		if !extractQuiet {
			fmt.Fprintf(cmd.ErrOrStderr(), "[%3.0f%%] %s\n", step.Progress, step.Step)
		}
	})
}

func extractOfflineOffers(ctx context.Context, cmd *cobra.Command, extractor port.TextExtractor, files []domain.SourceFile) ([]domain.ExtractedOffer, error) {
	offers := make([]domain.ExtractedOffer, 0)
	for _, file := range files {
		text, err := extractor.Extract(ctx, file)
		if err != nil {
			if !extractQuiet {
				fmt.Fprintf(cmd.ErrOrStderr(), "skipping %s: %v\n", file.Name, err)
			}
			continue
		}
		source := file.Name
		for _, offer := range extraction.FallbackExtract(text, file.Name) {
			offer.SourceFile = &source
			offers = append(offers, offer)
		}
	}
	return offers, nil
}

func localFile(path string) (domain.SourceFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return domain.SourceFile{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return domain.SourceFile{}, fmt.Errorf("%s is a directory", path)
	}
	return domain.SourceFile{
		Name:        filepath.Base(path),
		ContentType: mime.TypeByExtension(filepath.Ext(path)),
		Size:        info.Size(),
		Open: func() (io.ReadCloser, error) {
			return os.Open(path)
		},
	}, nil
}
