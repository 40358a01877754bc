package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Ollama   OllamaConfig
	Cache    CacheConfig
	Workflow WorkflowConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// OllamaConfig holds text generation configuration. When Enabled is false
// the workflow runs fully rule-based.
type OllamaConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	BaseURL string        `mapstructure:"base_url"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// CacheConfig holds answer cache configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// WorkflowConfig holds workflow input/output configuration
type WorkflowConfig struct {
	InputFile string `mapstructure:"input_file"`
	OutputDir string `mapstructure:"output_dir"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/glowgen/")

	v.SetEnvPrefix("GLOWGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional; env vars and defaults carry the rest.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Ollama defaults
	v.SetDefault("ollama.enabled", true)
	v.SetDefault("ollama.base_url", "http://localhost:11434")
	v.SetDefault("ollama.model", "llama3.2")
	v.SetDefault("ollama.timeout", "60s")

	// Cache defaults
	v.SetDefault("cache.ttl", "24h")

	// Workflow defaults
	v.SetDefault("workflow.input_file", "data/input_product.json")
	v.SetDefault("workflow.output_dir", "output")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Ollama.Enabled && config.Ollama.BaseURL == "" {
		return fmt.Errorf("ollama base URL is required when ollama is enabled (set GLOWGEN_OLLAMA_BASE_URL)")
	}

	if config.Ollama.Enabled && config.Ollama.Model == "" {
		return fmt.Errorf("ollama model is required when ollama is enabled (set GLOWGEN_OLLAMA_MODEL)")
	}

	if config.Workflow.OutputDir == "" {
		return fmt.Errorf("workflow output directory is required (set GLOWGEN_WORKFLOW_OUTPUT_DIR)")
	}

	return nil
}
