package completion

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"gascompare/internal/domain"
	"gascompare/internal/port"
)

// failureKind classifies why a provider did not produce a usable answer.
type failureKind int

const (
	failUnavailable failureKind = iota // transport error or non-2xx status
	failRateLimited                    // 429, provider is put on cooldown
	failMalformed                      // provider answered, output unusable
	failCanceled                       // caller gave up, chain stops
)

func classifyFailure(ctx context.Context, err error) failureKind {
	var rlErr *RateLimitError
	switch {
	case ctx.Err() != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)):
		return failCanceled
	case errors.As(err, &rlErr):
		return failRateLimited
	case errors.Is(err, domain.ErrMalformedCompletion):
		return failMalformed
	default:
		return failUnavailable
	}
}

// providerSlot is one entry of the chain with its rate-limit cooldown.
type providerSlot struct {
	name      string
	completer port.Completer

	mu            sync.RWMutex
	cooldownUntil time.Time
}

func (s *providerSlot) coolingDown(now time.Time) (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cooldownUntil, now.Before(s.cooldownUntil)
}

func (s *providerSlot) coolDown(until time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if until.After(s.cooldownUntil) {
		s.cooldownUntil = until
	}
}

// FallbackCompleter asks providers in order until one answers.
//
// A rate-limited provider is skipped until its Retry-After has passed. A
// malformed answer moves on to the next provider, but if nobody does better
// the chain reports ErrMalformedCompletion so the caller can fall back to
// keyword extraction. Cancellation of ctx ends the chain immediately.
type FallbackCompleter struct {
	slots []*providerSlot
	now   func() time.Time
}

// NewFallbackCompleter creates a FallbackCompleter from an ordered list of completers and their names.
func NewFallbackCompleter(completers []port.Completer, names []string) *FallbackCompleter {
	slots := make([]*providerSlot, len(completers))
	for i, c := range completers {
		name := fmt.Sprintf("provider-%d", i+1)
		if i < len(names) {
			name = names[i]
		}
		slots[i] = &providerSlot{name: name, completer: c}
	}
	return &FallbackCompleter{slots: slots, now: time.Now}
}

// chainOutcome collects the failures of one pass over the chain.
type chainOutcome struct {
	malformed   error
	unavailable error
	earliest    time.Time
}

func (o *chainOutcome) noteCooldown(until time.Time) {
	if o.earliest.IsZero() || until.Before(o.earliest) {
		o.earliest = until
	}
}

func (o *chainOutcome) err(now time.Time) error {
	switch {
	case o.malformed != nil:
		return fmt.Errorf("all completion providers failed: %w", o.malformed)
	case o.unavailable != nil:
		return fmt.Errorf("all completion providers failed: %w", o.unavailable)
	default:
		wait := o.earliest.Sub(now)
		if wait < time.Second {
			wait = time.Second
		}
		return NewRateLimitError("all", errors.New("all completion providers rate limited"), int(wait.Seconds()))
	}
}

func (f *FallbackCompleter) Complete(ctx context.Context, req port.CompletionRequest) (*port.CompletionResponse, error) {
	now := f.now()
	var outcome chainOutcome

	for _, slot := range f.slots {
		if until, cooling := slot.coolingDown(now); cooling {
			log.Printf("completion.FallbackCompleter: skipping %s (rate limited until %s)", slot.name, until.Format(time.RFC3339))
			outcome.noteCooldown(until)
			continue
		}

		resp, err := slot.completer.Complete(ctx, req)
		if err == nil {
			return resp, nil
		}

		switch classifyFailure(ctx, err) {
		case failCanceled:
			return nil, err
		case failRateLimited:
			var rlErr *RateLimitError
			errors.As(err, &rlErr)
			until := now.Add(rlErr.RetryAfter)
			slot.coolDown(until)
			outcome.noteCooldown(until)
			log.Printf("completion.FallbackCompleter: %s rate limited for %s", slot.name, rlErr.RetryAfter)
		case failMalformed:
			log.Printf("completion.FallbackCompleter: %s returned an unusable answer: %v", slot.name, err)
			if outcome.malformed == nil {
				outcome.malformed = err
			}
		default:
			log.Printf("completion.FallbackCompleter: %s unavailable: %v", slot.name, err)
			outcome.unavailable = err
		}
	}

	return nil, outcome.err(now)
}
