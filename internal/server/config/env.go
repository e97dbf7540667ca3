package config

import (
	"os"
	"strings"

	"github.com/dmitrijs2005/expenzo/internal/flagx"
	"github.com/joho/godotenv"
)

// Environment variables understood by the server.
const (
	EnvPort           = "PORT"
	EnvDatabaseDSN    = "DATABASE_DSN"
	EnvJWTSecret      = "JWT_SECRET"
	EnvBuildMode      = "BUILD_MODE"
	EnvTrustedProxies = "TRUSTED_PROXIES"
)

// parseEnv loads a .env file (the one named by -env, or ./.env when it
// exists) without overriding variables already set in the process, then
// copies the known variables into config.
func parseEnv(config *Config) {
	if path := flagx.DotEnvFlags(); path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
	} else {
		// a missing ./.env is fine
		_ = godotenv.Load()
	}

	if port := strings.TrimSpace(os.Getenv(EnvPort)); port != "" {
		config.EndpointAddrHTTP = ":" + strings.TrimPrefix(port, ":")
	}
	if dsn := os.Getenv(EnvDatabaseDSN); dsn != "" {
		config.DatabaseDSN = dsn
	}
	if secret := os.Getenv(EnvJWTSecret); secret != "" {
		config.SecretKey = secret
	}
	if mode := os.Getenv(EnvBuildMode); mode != "" {
		config.BuildMode = mode
	}
	if proxies := os.Getenv(EnvTrustedProxies); proxies != "" {
		config.TrustedProxies = splitList(proxies)
	}
}

// splitList splits a comma separated value, dropping blanks.
func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
