package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

func Load() App {
	_ = godotenv.Load()

	cfg := App{
		Port:              getenv("APP_PORT", "8080"),
		SpreadsheetID:     must("GOOGLE_SPREADSHEET_ID"),
		SheetName:         getenv("MASTER_SHEET_NAME", "MST工具治具"),
		CredentialsJSON:   os.Getenv("GOOGLE_CREDENTIALS_JSON"),
		CredentialsFile:   os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE"),
		AllowedOrigins:    splitOrigins(getenv("ALLOWED_ORIGINS", "http://localhost:3000")),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		Env:               getenv("APP_ENV", "dev"),
	}
	if cfg.CredentialsJSON == "" && cfg.CredentialsFile == "" {
		slog.Error("required env missing", "key", "GOOGLE_CREDENTIALS_JSON or GOOGLE_SERVICE_ACCOUNT_FILE")
		panic("missing google credentials")
	}
	return cfg
}

// Credentials resolves the service account blob, inline JSON first.
func (a App) Credentials() ([]byte, error) {
	if a.CredentialsJSON != "" {
		return []byte(a.CredentialsJSON), nil
	}
	return os.ReadFile(a.CredentialsFile)
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		slog.Error("required env missing", "key", k)
		panic("missing env " + k)
	}
	return v
}
