package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "GASCOMPARE"

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	DB         DBConfig
	JWT        JWTConfig
	S3         S3Config
	Log        LogConfig
	CORS       CORSConfig
	Completion CompletionConfig
	Extraction ExtractionConfig
	Ranking    RankingConfig
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// CompletionProviderConfig holds settings for a single LLM completion provider.
type CompletionProviderConfig struct {
	Provider     string `mapstructure:"provider"`
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
}

// CompletionConfig holds completion provider settings with fallback support.
type CompletionConfig struct {
	// Legacy flat fields
	Provider     string `mapstructure:"provider"`
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`

	Primary   CompletionProviderConfig `mapstructure:"primary"`
	Secondary CompletionProviderConfig `mapstructure:"secondary"`
	Tertiary  CompletionProviderConfig `mapstructure:"tertiary"`
}

// PrimaryConfig returns the primary provider config, falling back to the flat fields.
func (c *CompletionConfig) PrimaryConfig() *CompletionProviderConfig {
	if c.Primary.Provider != "" {
		return &c.Primary
	}
	return &CompletionProviderConfig{
		Provider:     c.Provider,
		APIKey:       c.APIKey,
		DefaultModel: c.DefaultModel,
		TimeoutSecs:  c.TimeoutSecs,
	}
}

// SecondaryConfig returns the secondary provider config, or nil if not configured.
func (c *CompletionConfig) SecondaryConfig() *CompletionProviderConfig {
	if c.Secondary.Provider != "" {
		return &c.Secondary
	}
	return nil
}

// TertiaryConfig returns the tertiary provider config, or nil if not configured.
func (c *CompletionConfig) TertiaryConfig() *CompletionProviderConfig {
	if c.Tertiary.Provider != "" {
		return &c.Tertiary
	}
	return nil
}

// ExtractionConfig bounds document processing.
type ExtractionConfig struct {
	MaxFileSizeMB             int64  `mapstructure:"max_file_size_mb"`
	MinTextLength             int    `mapstructure:"min_text_length"`
	MaxRequestChars           int    `mapstructure:"max_request_chars"`
	MaxPDFPages               int    `mapstructure:"max_pdf_pages"`
	OCRBinary                 string `mapstructure:"ocr_binary"`
	OCRLanguage               string `mapstructure:"ocr_language"`
	FallbackOnCompletionError bool   `mapstructure:"fallback_on_completion_error"`
}

// MaxFileSizeBytes returns the upload limit in bytes.
func (e *ExtractionConfig) MaxFileSizeBytes() int64 {
	return e.MaxFileSizeMB * 1024 * 1024
}

// RankingConfig holds the default cost-comparison parameters.
type RankingConfig struct {
	ConsumptionMWh float64 `mapstructure:"consumption_mwh"`
	TVAFixe        float64 `mapstructure:"tva_fixe"`
	TVAVar         float64 `mapstructure:"tva_var"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret            string        `mapstructure:"secret"`
	AccessTokenExpiry time.Duration `mapstructure:"access_expiry"`
	Issuer            string        `mapstructure:"issuer"`
}

// S3Config holds the document archive settings. An empty bucket disables archiving.
type S3Config struct {
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the GASCOMPARE_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "180s")
	v.SetDefault("server.environment", "development")

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "gascompare")
	v.SetDefault("db.password", "gascompare_secret")
	v.SetDefault("db.name", "gascompare_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 10)
	v.SetDefault("db.max_idle", 5)

	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "24h")
	v.SetDefault("jwt.issuer", "gascompare")

	v.SetDefault("s3.region", "eu-west-3")
	v.SetDefault("s3.bucket", "")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.access_key", "")
	v.SetDefault("s3.secret_key", "")

	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	v.SetDefault("cors.allowed_origins", "http://localhost:5173,http://127.0.0.1:5173,http://localhost:3000")

	v.SetDefault("completion.provider", "openai")
	v.SetDefault("completion.api_key", "")
	v.SetDefault("completion.default_model", "gpt-4o-mini")
	v.SetDefault("completion.timeout_secs", 60)
	for _, slot := range []string{"primary", "secondary", "tertiary"} {
		v.SetDefault("completion."+slot+".provider", "")
		v.SetDefault("completion."+slot+".api_key", "")
		v.SetDefault("completion."+slot+".default_model", "")
		v.SetDefault("completion."+slot+".timeout_secs", 60)
	}

	v.SetDefault("extraction.max_file_size_mb", 10)
	v.SetDefault("extraction.min_text_length", 50)
	v.SetDefault("extraction.max_request_chars", 15000)
	v.SetDefault("extraction.max_pdf_pages", 15)
	v.SetDefault("extraction.ocr_binary", "tesseract")
	v.SetDefault("extraction.ocr_language", "fra+eng")
	v.SetDefault("extraction.fallback_on_completion_error", false)

	v.SetDefault("ranking.consumption_mwh", 600)
	v.SetDefault("ranking.tva_fixe", 0.055)
	v.SetDefault("ranking.tva_var", 0.2)

	// Nested keys are bound explicitly so they resolve without a config file.
	for _, key := range v.AllKeys() {
		_ = v.BindEnv(key, envName(key))
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if GASCOMPARE_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv(envName("server.port")) == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:            v.GetString("jwt.secret"),
		AccessTokenExpiry: v.GetDuration("jwt.access_expiry"),
		Issuer:            v.GetString("jwt.issuer"),
	}
	cfg.S3 = S3Config{
		Region:    v.GetString("s3.region"),
		Bucket:    v.GetString("s3.bucket"),
		Endpoint:  v.GetString("s3.endpoint"),
		AccessKey: v.GetString("s3.access_key"),
		SecretKey: v.GetString("s3.secret_key"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	cfg.Completion = CompletionConfig{
		Provider:     v.GetString("completion.provider"),
		APIKey:       v.GetString("completion.api_key"),
		DefaultModel: v.GetString("completion.default_model"),
		TimeoutSecs:  v.GetInt("completion.timeout_secs"),
		Primary:      providerConfig(v, "primary"),
		Secondary:    providerConfig(v, "secondary"),
		Tertiary:     providerConfig(v, "tertiary"),
	}

	cfg.Extraction = ExtractionConfig{
		MaxFileSizeMB:             v.GetInt64("extraction.max_file_size_mb"),
		MinTextLength:             v.GetInt("extraction.min_text_length"),
		MaxRequestChars:           v.GetInt("extraction.max_request_chars"),
		MaxPDFPages:               v.GetInt("extraction.max_pdf_pages"),
		OCRBinary:                 v.GetString("extraction.ocr_binary"),
		OCRLanguage:               v.GetString("extraction.ocr_language"),
		FallbackOnCompletionError: v.GetBool("extraction.fallback_on_completion_error"),
	}

	cfg.Ranking = RankingConfig{
		ConsumptionMWh: v.GetFloat64("ranking.consumption_mwh"),
		TVAFixe:        v.GetFloat64("ranking.tva_fixe"),
		TVAVar:         v.GetFloat64("ranking.tva_var"),
	}

	if cfg.Extraction.MaxFileSizeMB <= 0 {
		return nil, fmt.Errorf("extraction.max_file_size_mb must be positive, got %d", cfg.Extraction.MaxFileSizeMB)
	}
	if cfg.Ranking.ConsumptionMWh < 0 || cfg.Ranking.TVAFixe < 0 || cfg.Ranking.TVAVar < 0 {
		return nil, fmt.Errorf("ranking parameters must not be negative")
	}

	return cfg, nil
}

func providerConfig(v *viper.Viper, slot string) CompletionProviderConfig {
	prefix := "completion." + slot + "."
	return CompletionProviderConfig{
		Provider:     v.GetString(prefix + "provider"),
		APIKey:       v.GetString(prefix + "api_key"),
		DefaultModel: v.GetString(prefix + "default_model"),
		TimeoutSecs:  v.GetInt(prefix + "timeout_secs"),
	}
}

func envName(key string) string {
	return envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}
