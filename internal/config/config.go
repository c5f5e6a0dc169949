package config

import (
	"fmt"
	"path/filepath"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port int        `mapstructure:"port"`
	CORS CORSConfig `mapstructure:"cors"`

	// TemplateFile optionally overrides the embedded dashboard template.
	TemplateFile string `mapstructure:"template_file" validate:"omitempty,file"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type SheetsConfig struct {
	SpreadsheetID string `mapstructure:"spreadsheet_id" validate:"required"`

	// CredentialsJSON is bound to GCP_CREDENTIALS_JSON and takes precedence
	// over CredentialsFile when present.
	CredentialsJSON string `mapstructure:"credentials_json"`
	CredentialsFile string `mapstructure:"credentials_file"`

	SnapshotFile string `mapstructure:"snapshot_file"`
	BaseURL      string `mapstructure:"base_url"`
}

type GeminiConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

type FetchConfig struct {
	// Command is the argv the dashboard runs to refresh the snapshot.
	Command []string `mapstructure:"command"`
}

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Sheets SheetsConfig `mapstructure:"sheets"`
	Gemini GeminiConfig `mapstructure:"gemini"`
	Fetch  FetchConfig  `mapstructure:"fetch"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/encuestas")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors.allowed_origins", []string{})
	v.SetDefault("sheets.spreadsheet_id", "1p5KpYbewyBt6mHVp8Jxgkq9t0Y4tPyLtSaEa4BU_-n4")
	v.SetDefault("sheets.credentials_file", filepath.Join("credentials", "credentials.json"))
	v.SetDefault("sheets.snapshot_file", "temp_sheet_data.json")
	v.SetDefault("sheets.base_url", "https://sheets.googleapis.com")
	v.SetDefault("gemini.model", "gemini-1.5-pro")
	v.SetDefault("gemini.base_url", "https://generativelanguage.googleapis.com")
	v.SetDefault("fetch.command", []string{"encuestas", "fetch"})

	// Secrets come from the environment only, never from the config file.
	if err := v.BindEnv("sheets.credentials_json", "GCP_CREDENTIALS_JSON"); err != nil {
		return nil, fmt.Errorf("failed to bind GCP_CREDENTIALS_JSON environment variable: %w", err)
	}
	if err := v.BindEnv("gemini.api_key", "GOOGLE_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind GOOGLE_API_KEY environment variable: %w", err)
	}
	if err := v.BindEnv("gemini.model", "GEMINI_MODEL"); err != nil {
		return nil, fmt.Errorf("failed to bind GEMINI_MODEL environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}

// Load reads the configuration from configFile, or from the default search
// paths when configFile is empty.
func Load(configFile string) (*Config, error) {
	loader, err := NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("NewConfigLoader() > %w", err)
	}
	return loader.Load()
}
