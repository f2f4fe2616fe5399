package config

import (
	"log"
	"os"
	"strings"
)

// Config holds the named secrets the assistant depends on. A missing secret
// disables the corresponding capability; it never aborts startup. The
// services nil-check themselves and answer with a "not configured" message,
// so the chat keeps working in a degraded mode.
type Config struct {
	GeminiAPIKey      string
	GoogleCredentials []byte // service account JSON
	SheetID           string
	Port              string
}

// Load reads configuration from the environment. GOOGLE_CREDENTIALS accepts
// either the service-account JSON inline or a path to the JSON file.
func Load() *Config {
	cfg := &Config{
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		SheetID:      os.Getenv("GOOGLE_SHEET_ID"),
		Port:         os.Getenv("PORT"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	if raw := strings.TrimSpace(os.Getenv("GOOGLE_CREDENTIALS")); raw != "" {
		if strings.HasPrefix(raw, "{") {
			cfg.GoogleCredentials = []byte(raw)
		} else {
			b, err := os.ReadFile(raw)
			if err != nil {
				log.Printf("⚠️  Could not read GOOGLE_CREDENTIALS file %q: %v", raw, err)
			} else {
				cfg.GoogleCredentials = b
			}
		}
	}

	if cfg.GeminiAPIKey == "" {
		log.Println("⚠️  GEMINI_API_KEY not set. Gemini AI will be unavailable.")
	}
	if len(cfg.GoogleCredentials) == 0 {
		log.Println("⚠️  GOOGLE_CREDENTIALS not set. Google Sheets will be unavailable.")
	}
	if cfg.SheetID == "" {
		log.Println("⚠️  GOOGLE_SHEET_ID not set. Google Sheets will be unavailable.")
	}

	return cfg
}

func (c *Config) GeminiConfigured() bool {
	return c.GeminiAPIKey != ""
}

func (c *Config) SheetsConfigured() bool {
	return len(c.GoogleCredentials) > 0 && c.SheetID != ""
}

// Mask shortens a secret for startup logging.
func Mask(s string) string {
	if len(s) <= 10 {
		return "****"
	}
	return s[:4] + "…" + s[len(s)-4:]
}
