// Package config loads the application configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	Log    LogConfig
	Rules  RulesConfig
	PDF    PDFConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
	MaxUploadMB  int64         `mapstructure:"max_upload_mb"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// RulesConfig points at the credit rules file. A missing file or an empty
// path runs without rules.
type RulesConfig struct {
	Path string `mapstructure:"path"`
}

// PDFConfig holds headless browser settings for PDF export.
type PDFConfig struct {
	BrowserBin string        `mapstructure:"browser_bin"`
	ControlURL string        `mapstructure:"control_url"`
	NoSandbox  bool          `mapstructure:"no_sandbox"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

// MaxUploadBytes returns the upload limit in bytes.
func (s ServerConfig) MaxUploadBytes() int64 {
	return s.MaxUploadMB << 20
}

// Load reads configuration from environment variables with the GRADCHECK_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("GRADCHECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.port", ":3000")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.max_upload_mb", 5)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("rules.path", "configs/rules.yaml")

	v.SetDefault("pdf.browser_bin", "")
	v.SetDefault("pdf.control_url", "")
	v.SetDefault("pdf.no_sandbox", true)
	v.SetDefault("pdf.timeout", "30s")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":          "GRADCHECK_SERVER_PORT",
		"server.read_timeout":  "GRADCHECK_SERVER_READ_TIMEOUT",
		"server.write_timeout": "GRADCHECK_SERVER_WRITE_TIMEOUT",
		"server.environment":   "GRADCHECK_SERVER_ENVIRONMENT",
		"server.max_upload_mb": "GRADCHECK_SERVER_MAX_UPLOAD_MB",
		"log.level":            "GRADCHECK_LOG_LEVEL",
		"log.format":           "GRADCHECK_LOG_FORMAT",
		"rules.path":           "GRADCHECK_RULES_PATH",
		"pdf.browser_bin":      "GRADCHECK_PDF_BROWSER_BIN",
		"pdf.control_url":      "GRADCHECK_PDF_CONTROL_URL",
		"pdf.no_sandbox":       "GRADCHECK_PDF_NO_SANDBOX",
		"pdf.timeout":          "GRADCHECK_PDF_TIMEOUT",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Hosting platforms set PORT. Use it unless GRADCHECK_SERVER_PORT is explicit.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("GRADCHECK_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
		MaxUploadMB:  v.GetInt64("server.max_upload_mb"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.Rules = RulesConfig{
		Path: v.GetString("rules.path"),
	}
	cfg.PDF = PDFConfig{
		BrowserBin: v.GetString("pdf.browser_bin"),
		ControlURL: v.GetString("pdf.control_url"),
		NoSandbox:  v.GetBool("pdf.no_sandbox"),
		Timeout:    v.GetDuration("pdf.timeout"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.MaxUploadMB <= 0 {
		return fmt.Errorf("server.max_upload_mb must be positive, got %d", c.Server.MaxUploadMB)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format must be console or json, got %q", c.Log.Format)
	}
	return nil
}
