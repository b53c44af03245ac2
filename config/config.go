package config

import (
	"os"
)

// Имена переменных окружения. Совпадают с теми, что использует
// GitHub Actions воркфлоу синка.
const (
	EnvWbApiToken         = "WB_API_TOKEN_CONTENT"
	EnvSupabaseURL        = "SUPABASE_URL"
	EnvSupabaseServiceKey = "SUPABASE_SERVICE_ROLE_KEY"
)

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
