package config

import (
	"bufio"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultBaseURL     = "https://api.opendota.com/api"
	defaultCacheDir    = "cache"
	defaultDistDir     = "dist"
	defaultReportsFile = "reports.yaml"
	propertiesFile     = "opendota.properties"
)

type Config struct {
	OpenDotaAPIKey    string
	OpenDotaBaseURL   string
	CacheDir          string
	DistDir           string
	ReportsFile       string
	DiscordWebhookURL string
	Debug             bool
}

// Load lee .env (si existe) y las variables de entorno.
// Ninguna variable es obligatoria: sin API key OpenDota funciona con límites más bajos.
func Load() (*Config, error) {
	// No es crítico si no existe el archivo
	_ = godotenv.Load()

	cfg := &Config{
		OpenDotaAPIKey:    os.Getenv("OPENDOTA_API_KEY"),
		OpenDotaBaseURL:   getEnv("OPENDOTA_BASE_URL", defaultBaseURL),
		CacheDir:          getEnv("CACHE_DIR", defaultCacheDir),
		DistDir:           getEnv("DIST_DIR", defaultDistDir),
		ReportsFile:       getEnv("REPORTS_FILE", defaultReportsFile),
		DiscordWebhookURL: os.Getenv("DISCORD_WEBHOOK_URL"),
		Debug:             os.Getenv("DEBUG") == "true",
	}

	if cfg.OpenDotaAPIKey == "" {
		if key, ok := readPropertiesKey(propertiesFile); ok {
			cfg.OpenDotaAPIKey = key
		}
	}

	return cfg, nil
}

// readPropertiesKey busca "api_key=..." en el archivo legado opendota.properties
func readPropertiesKey(path string) (string, bool) {
	f, err := os.Open(path)
	if err != nil {
		return "", false
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "api_key=") {
			key := strings.TrimSpace(strings.SplitN(line, "=", 2)[1])
			return key, key != ""
		}
	}
	return "", false
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
