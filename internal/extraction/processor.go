package extraction

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"gascompare/internal/domain"
	"gascompare/internal/port"
)

// Decoding parameters for extraction calls.
const (
	CompletionTemperature     = 0.05
	CompletionMaxOutputTokens = 3000
)

// Config bounds the work done per file.
type Config struct {
	MaxFileSize     int64 // bytes
	MinTextLength   int   // characters, after trimming
	MaxRequestChars int   // characters of raw text handed to the prompt builder
	// FallbackOnCompletionError also routes failed completion calls to the
	// keyword extractor instead of failing the file.
	FallbackOnCompletionError bool
}

// DefaultConfig returns the limits used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		MaxFileSize:     10 * 1024 * 1024,
		MinTextLength:   50,
		MaxRequestChars: 15000,
	}
}

// ProgressFunc observes a batch. It is called synchronously from ProcessFiles.
type ProgressFunc func(step domain.ProcessingStep)

// Extraction is the outcome of one document.
type Extraction struct {
	Class        domain.DocumentClass
	Payload      PayloadKind
	Candidates   int
	UsedFallback bool
	Model        string
	Offers       []domain.ExtractedOffer
}

// Processor runs uploaded files through text extraction, classification,
// completion and normalization, one file at a time.
type Processor struct {
	extractor port.TextExtractor
	completer port.Completer
	cfg       Config
	newID     func() string
}

// NewProcessor wires a Processor. A nil completer is accepted so that a
// server without credentials can still boot; ProcessFiles then fails with
// domain.ErrCompletionNotConfigured.
func NewProcessor(extractor port.TextExtractor, completer port.Completer, cfg Config) *Processor {
	def := DefaultConfig()
	if cfg.MaxFileSize <= 0 {
		cfg.MaxFileSize = def.MaxFileSize
	}
	if cfg.MinTextLength <= 0 {
		cfg.MinTextLength = def.MinTextLength
	}
	if cfg.MaxRequestChars <= 0 {
		cfg.MaxRequestChars = def.MaxRequestChars
	}
	return &Processor{
		extractor: extractor,
		completer: completer,
		cfg:       cfg,
		newID:     uuid.NewString,
	}
}

// Ready reports whether a completion provider is configured.
func (p *Processor) Ready() bool {
	return p.completer != nil
}

// ProcessFiles extracts offers from every file in order. Per-file failures
// are reported through onProgress and never abort the batch; the only error
// returned is a missing completion provider, detected before any file is read.
func (p *Processor) ProcessFiles(ctx context.Context, files []domain.SourceFile, onProgress ProgressFunc) ([]domain.ExtractedOffer, error) {
	if p.completer == nil {
		return nil, domain.ErrCompletionNotConfigured
	}

	emit := func(step domain.ProcessingStep) {
		if onProgress != nil {
			onProgress(step)
		}
	}

	emit(domain.ProcessingStep{Step: fmt.Sprintf("Démarrage de l'analyse de %d fichier(s)", len(files)), Progress: 0})

	all := make([]domain.ExtractedOffer, 0)
	total := float64(len(files))
	for i, file := range files {
		share := float64(i) / total

		emit(domain.ProcessingStep{
			Step:     "Lecture de " + file.Name,
			Progress: share * 20,
			FileName: file.Name,
		})

		text, err := p.readText(ctx, file)
		if err != nil {
			log.Printf("extraction.Processor.ProcessFiles: reading %s: %v", file.Name, err)
			emit(failureStep(fmt.Sprintf("Erreur de lecture de %s : %v", file.Name, err), share*90, file.Name))
			continue
		}

		if len([]rune(strings.TrimSpace(text))) < p.cfg.MinTextLength {
			log.Printf("extraction.Processor.ProcessFiles: %s: %v", file.Name, domain.ErrTextTooShort)
			emit(failureStep(fmt.Sprintf("Texte insuffisant extrait de %s", file.Name), share*50, file.Name))
			continue
		}

		doc := domain.RawDocument{FileName: file.Name, RawText: truncateChars(text, p.cfg.MaxRequestChars)}
		class := Classify(doc.RawText)
		emit(domain.ProcessingStep{
			Step:     fmt.Sprintf("Analyse de %s (%s)", file.Name, class),
			Progress: share * 60,
			FileName: file.Name,
		})

		result, err := p.extract(ctx, doc, class)
		if err != nil {
			log.Printf("extraction.Processor.ProcessFiles: %s: %v", file.Name, err)
			emit(failureStep(fmt.Sprintf("Erreur d'analyse de %s : %v", file.Name, err), share*90, file.Name))
			continue
		}

		source := file.Name
		for _, offer := range result.Offers {
			offer.ID = p.newID()
			offer.SourceFile = &source
			all = append(all, offer)
		}

		found := len(result.Offers)
		msg := fmt.Sprintf("%d offre(s) extraite(s) de %s", found, file.Name)
		switch {
		case found == 0:
			msg = "Aucune offre trouvée dans " + file.Name
		case result.UsedFallback:
			msg += " (méthode de secours)"
		}
		emit(domain.ProcessingStep{Step: msg, Progress: share * 90, FileName: file.Name, OffersFound: &found})
	}

	count := len(all)
	emit(domain.ProcessingStep{
		Step:        fmt.Sprintf("Analyse terminée : %d offre(s) extraite(s)", count),
		Progress:    100,
		OffersFound: &count,
	})
	return all, nil
}

// ExtractOffers classifies one document and turns it into normalized offers.
// Unknown-supplier offers are dropped. IDs and source files are left unset.
func (p *Processor) ExtractOffers(ctx context.Context, doc domain.RawDocument) (*Extraction, error) {
	if p.completer == nil {
		return nil, domain.ErrCompletionNotConfigured
	}
	return p.extract(ctx, doc, Classify(doc.RawText))
}

func (p *Processor) extract(ctx context.Context, doc domain.RawDocument, class domain.DocumentClass) (*Extraction, error) {
	result := &Extraction{Class: class}

	resp, err := p.completer.Complete(ctx, port.CompletionRequest{
		SystemPrompt:    SystemPrompt,
		UserPrompt:      BuildPrompt(doc.RawText, doc.FileName, class),
		Temperature:     CompletionTemperature,
		MaxOutputTokens: CompletionMaxOutputTokens,
		JSONOutput:      true,
	})
	if err != nil {
		if !p.cfg.FallbackOnCompletionError && !errors.Is(err, domain.ErrMalformedCompletion) {
			return nil, fmt.Errorf("completing %s: %w", doc.FileName, err)
		}
		log.Printf("extraction.Processor.extract: completion failed for %s, using keyword fallback: %v", doc.FileName, err)
		result.UsedFallback = true
		result.Offers = FallbackExtract(doc.RawText, doc.FileName)
		result.Candidates = len(result.Offers)
		return result, nil
	}
	result.Model = resp.Model

	payload := ParsePayload(resp.Text)
	result.Payload = payload.Kind
	if payload.Kind == PayloadUnparseable {
		log.Printf("extraction.Processor.extract: unparseable completion for %s, using keyword fallback: %v", doc.FileName, payload.Err)
		result.UsedFallback = true
		result.Offers = FallbackExtract(doc.RawText, doc.FileName)
		result.Candidates = len(result.Offers)
		return result, nil
	}

	result.Candidates = len(payload.Records)
	result.Offers = make([]domain.ExtractedOffer, 0, len(payload.Records))
	for _, rec := range payload.Records {
		offer := NormalizeOffer(rec)
		if !IsUsable(offer) {
			continue
		}
		result.Offers = append(result.Offers, offer)
	}
	return result, nil
}

func (p *Processor) readText(ctx context.Context, file domain.SourceFile) (string, error) {
	if file.Size > p.cfg.MaxFileSize {
		return "", fmt.Errorf("%w: %s is %.1f MB (max %.0f MB)", domain.ErrFileTooLarge,
			file.Name, float64(file.Size)/(1024*1024), float64(p.cfg.MaxFileSize)/(1024*1024))
	}
	text, err := p.extractor.Extract(ctx, file)
	if err != nil {
		return "", err
	}
	return text, nil
}

func failureStep(msg string, progress float64, fileName string) domain.ProcessingStep {
	zero := 0
	return domain.ProcessingStep{Step: msg, Progress: progress, FileName: fileName, OffersFound: &zero}
}
