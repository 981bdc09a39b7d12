package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gascompare/internal/config"
)

func TestCompletionConfig_PrimaryConfig_LegacyFallback(t *testing.T) {
	cfg := config.CompletionConfig{
		Provider:     "openai",
		APIKey:       "sk-legacy",
		DefaultModel: "gpt-4o-mini",
		TimeoutSecs:  30,
	}

	primary := cfg.PrimaryConfig()

	assert.Equal(t, "openai", primary.Provider)
	assert.Equal(t, "sk-legacy", primary.APIKey)
	assert.Equal(t, "gpt-4o-mini", primary.DefaultModel)
	assert.Equal(t, 30, primary.TimeoutSecs)
}

func TestCompletionConfig_PrimaryConfig_ExplicitPrimary(t *testing.T) {
	cfg := config.CompletionConfig{
		Provider: "legacy-should-be-ignored",
		Primary: config.CompletionProviderConfig{
			Provider:     "claude",
			APIKey:       "sk-primary",
			DefaultModel: "claude-sonnet-4-20250514",
		},
	}

	primary := cfg.PrimaryConfig()

	assert.Equal(t, "claude", primary.Provider)
	assert.Equal(t, "sk-primary", primary.APIKey)
}

func TestCompletionConfig_SecondaryAndTertiary(t *testing.T) {
	cfg := config.CompletionConfig{Provider: "openai", APIKey: "sk"}
	assert.Nil(t, cfg.SecondaryConfig())
	assert.Nil(t, cfg.TertiaryConfig())

	cfg.Secondary = config.CompletionProviderConfig{Provider: "gemini", APIKey: "gk"}
	cfg.Tertiary = config.CompletionProviderConfig{Provider: "claude", APIKey: "ck"}
	require.NotNil(t, cfg.SecondaryConfig())
	require.NotNil(t, cfg.TertiaryConfig())
	assert.Equal(t, "gemini", cfg.SecondaryConfig().Provider)
	assert.Equal(t, "claude", cfg.TertiaryConfig().Provider)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, int64(10), cfg.Extraction.MaxFileSizeMB)
	assert.Equal(t, int64(10*1024*1024), cfg.Extraction.MaxFileSizeBytes())
	assert.Equal(t, 50, cfg.Extraction.MinTextLength)
	assert.Equal(t, 15000, cfg.Extraction.MaxRequestChars)
	assert.Equal(t, 15, cfg.Extraction.MaxPDFPages)
	assert.Equal(t, "fra+eng", cfg.Extraction.OCRLanguage)
	assert.False(t, cfg.Extraction.FallbackOnCompletionError)
	assert.Equal(t, 600.0, cfg.Ranking.ConsumptionMWh)
	assert.Equal(t, 0.055, cfg.Ranking.TVAFixe)
	assert.Equal(t, 0.2, cfg.Ranking.TVAVar)
	assert.Equal(t, 24*time.Hour, cfg.JWT.AccessTokenExpiry)
	assert.NotEmpty(t, cfg.CORS.AllowedOrigins)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("GASCOMPARE_EXTRACTION_MAX_FILE_SIZE_MB", "5")
	t.Setenv("GASCOMPARE_EXTRACTION_FALLBACK_ON_COMPLETION_ERROR", "true")
	t.Setenv("GASCOMPARE_COMPLETION_PRIMARY_PROVIDER", "claude")
	t.Setenv("GASCOMPARE_COMPLETION_PRIMARY_API_KEY", "sk-ant")
	t.Setenv("GASCOMPARE_RANKING_CONSUMPTION_MWH", "1200")
	t.Setenv("GASCOMPARE_CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, int64(5), cfg.Extraction.MaxFileSizeMB)
	assert.True(t, cfg.Extraction.FallbackOnCompletionError)
	assert.Equal(t, "claude", cfg.Completion.PrimaryConfig().Provider)
	assert.Equal(t, "sk-ant", cfg.Completion.PrimaryConfig().APIKey)
	assert.Equal(t, 1200.0, cfg.Ranking.ConsumptionMWh)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_PortOverride(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("GASCOMPARE_SERVER_PORT", "")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Port)
}

func TestLoad_RejectsNonPositiveFileSize(t *testing.T) {
	t.Setenv("GASCOMPARE_EXTRACTION_MAX_FILE_SIZE_MB", "0")

	_, err := config.Load()
	assert.Error(t, err)
}
