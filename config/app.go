package config

type App struct {
	Port              string   `env:"APP_PORT" default:"8080"`
	SpreadsheetID     string   `env:"GOOGLE_SPREADSHEET_ID,required"`
	SheetName         string   `env:"MASTER_SHEET_NAME" default:"MST工具治具"`
	CredentialsJSON   string   `env:"GOOGLE_CREDENTIALS_JSON"`
	CredentialsFile   string   `env:"GOOGLE_SERVICE_ACCOUNT_FILE"`
	AllowedOrigins    []string `env:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	JWTSecret         string   `env:"JWT_SECRET"`
	AdminPasswordHash string   `env:"ADMIN_PASSWORD_HASH"`
	Env               string   `env:"APP_ENV" default:"dev"`
}

// AuthEnabled reports whether the JWT-protected mutation surface is
// configured. Both knobs unset keeps the API public.
func (a App) AuthEnabled() bool {
	return a.JWTSecret != "" && a.AdminPasswordHash != ""
}
