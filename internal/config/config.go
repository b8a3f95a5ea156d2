package config

import (
	"os"
)

// Config holds the application configuration
type Config struct {
	Port      string
	StaticDir string

	// Sheet locations. Schedule and hotels are required for a snapshot
	// build; guests and meta may be left unset.
	ScheduleSheetURL string
	HotelsSheetURL   string
	GuestsSheetURL   string
	MetaSheetURL     string

	OpenAIAPIKey string
	OpenAIModel  string

	// Defaults used when the meta sheet is absent or silent.
	CoupleNames string
	WeddingName string
	City        string
}

// LoadConfig loads configuration from environment variables or defaults.
// Missing required sheet URLs are not rejected here; they surface as a
// configuration error when the first snapshot build runs.
func LoadConfig() *Config {
	return &Config{
		Port:             getEnv("PORT", "8080"),
		StaticDir:        getEnv("STATIC_DIR", "web"),
		ScheduleSheetURL: getEnv("SCHEDULE_SHEET_URL", ""),
		HotelsSheetURL:   getEnv("HOTELS_SHEET_URL", ""),
		GuestsSheetURL:   getEnv("GUESTS_SHEET_URL", ""),
		MetaSheetURL:     getEnv("META_SHEET_URL", ""),
		OpenAIAPIKey:     getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:      getEnv("OPENAI_MODEL", ""),
		CoupleNames:      getEnv("COUPLE_NAMES", "the happy couple"),
		WeddingName:      getEnv("WEDDING_NAME", "the wedding"),
		City:             getEnv("WEDDING_CITY", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
