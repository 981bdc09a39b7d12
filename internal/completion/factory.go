package completion

import (
	"fmt"
	"log"
	"strings"

	"gascompare/internal/config"
	"gascompare/internal/domain"
	"gascompare/internal/port"
)

// ProviderFactory creates a Completer from a provider config.
type ProviderFactory func(cfg *config.CompletionProviderConfig) (port.Completer, error)

// registry of provider factories, populated by init() in each provider package.
var providers = map[string]ProviderFactory{}

// RegisterProvider registers a completion provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// NewCompleter creates a Completer from a provider config using the registered factory.
func NewCompleter(cfg *config.CompletionProviderConfig) (port.Completer, error) {
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown completion provider: %s", cfg.Provider)
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrCompletionNotConfigured, cfg.Provider)
	}
	return factory(cfg)
}

// NewFromConfig builds the configured provider chain. With a single provider
// the client is returned as is; with several they are wrapped in a
// FallbackCompleter. Secondary and tertiary providers that cannot be built
// are skipped; a missing primary credential is an error.
func NewFromConfig(cfg *config.CompletionConfig) (port.Completer, error) {
	primaryCfg := cfg.PrimaryConfig()
	primary, err := NewCompleter(primaryCfg)
	if err != nil {
		return nil, err
	}

	completers := []port.Completer{primary}
	names := []string{primaryCfg.Provider}
	for _, extra := range []*config.CompletionProviderConfig{cfg.SecondaryConfig(), cfg.TertiaryConfig()} {
		if extra == nil {
			continue
		}
		c, err := NewCompleter(extra)
		if err != nil {
			log.Printf("completion.NewFromConfig: skipping %s: %v", extra.Provider, err)
			continue
		}
		completers = append(completers, c)
		names = append(names, extra.Provider)
	}

	if len(completers) == 1 {
		return primary, nil
	}
	return NewFallbackCompleter(completers, names), nil
}
