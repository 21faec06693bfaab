package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Search catchment
	CenterLat float64
	CenterLng float64
	RadiusKm  float64
	GridSize  int

	// Marketplace search
	MarketplaceURL string
	SearchURL      string
	SearchQuery    string
	MinPrice       int
	MaxPrice       int
	MaxListings    int
	MaxMessages    int

	// Browser session
	Headless    bool
	ChromeBin   string
	UserAgent   string
	Locale      string
	Timezone    string
	AuthWaitSec int
	MaxRetries  int

	// Output sinks
	DataDir     string
	PersonaPath string

	// PostgreSQL (optional sink, enabled when host is set)
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string

	// Telegram notification (optional, enabled when token+chat are set)
	TelegramToken  string
	TelegramChatID int64

	Verbose bool
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		CenterLat: getEnvFloat("DUBLIN_LAT", 53.3498053),
		CenterLng: getEnvFloat("DUBLIN_LNG", -6.2603097),
		RadiusKm:  getEnvFloat("SEARCH_RADIUS_KM", 30),
		GridSize:  getEnvInt("SEARCH_GRID_SIZE", 5),

		MarketplaceURL: getEnv("MARKETPLACE_URL", "https://www.facebook.com/"),
		SearchURL:      getEnv("MARKETPLACE_SEARCH_URL", "https://www.facebook.com/marketplace/dublin/search"),
		SearchQuery:    getEnv("SEARCH_QUERY", "accommodation room dublin"),
		MinPrice:       getEnvInt("MIN_PRICE", 0),
		MaxPrice:       getEnvInt("MAX_PRICE", 1000),
		MaxListings:    getEnvInt("MAX_LISTINGS", 20),
		MaxMessages:    getEnvInt("MAX_MESSAGES", 10),

		Headless:  getEnvBool("HEADLESS", false),
		ChromeBin: getEnv("CHROME_BIN", ""),
		UserAgent: getEnv("USER_AGENT", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) "+
			"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"),
		Locale:      getEnv("BROWSER_LOCALE", "en-US"),
		Timezone:    getEnv("BROWSER_TIMEZONE", "Europe/Dublin"),
		AuthWaitSec: getEnvInt("AUTH_WAIT_SEC", 120),
		MaxRetries:  getEnvInt("MAX_RETRIES", 3),

		DataDir:     getEnv("DATA_DIR", "./data"),
		PersonaPath: getEnv("PERSONA_PATH", ""),

		PostgresHost:     getEnv("POSTGRES_HOST", ""),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "accommodation"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", ""),
		PostgresDB:       getEnv("POSTGRES_DB", "accommodation_db"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),

		TelegramToken:  getEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramChatID: getEnvInt64("TELEGRAM_CHAT_ID", 0),

		Verbose: getEnvBool("VERBOSE", false),
	}
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return "host=" + c.PostgresHost +
		" port=" + c.PostgresPort +
		" user=" + c.PostgresUser +
		" password=" + c.PostgresPassword +
		" dbname=" + c.PostgresDB +
		" sslmode=" + c.PostgresSSLMode
}

// PostgresEnabled reports whether the Postgres sink is configured.
func (c *Config) PostgresEnabled() bool {
	return c.PostgresHost != ""
}

// TelegramEnabled reports whether the Telegram notifier is configured.
func (c *Config) TelegramEnabled() bool {
	return c.TelegramToken != "" && c.TelegramChatID != 0
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.ParseInt(val, 10, 64)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if val := os.Getenv(key); val != "" {
		f, err := strconv.ParseFloat(val, 64)
		if err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		b, err := strconv.ParseBool(val)
		if err == nil {
			return b
		}
	}
	return fallback
}
