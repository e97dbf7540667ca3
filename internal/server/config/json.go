package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/expenzo/internal/flagx"
	"github.com/dmitrijs2005/expenzo/internal/timex"
)

// JsonConfig is the on-disk shape of the server config file. Durations use
// timex.Duration so "24h" and integer nanoseconds are both accepted.
// Absent fields leave the current value untouched.
type JsonConfig struct {
	EndpointAddrHTTP            *string         `json:"endpoint_addr_http"`
	DatabaseDSN                 *string         `json:"database_dsn"`
	SecretKey                   *string         `json:"secret_key"`
	AccessTokenValidityDuration *timex.Duration `json:"access_token_validity_duration"`
	LoginRateLimit              *int            `json:"login_rate_limit"`
	TrustedProxies              *[]string       `json:"trusted_proxies"`
	LogFile                     *string         `json:"log_file"`
	BuildMode                   *string         `json:"build_mode"`
}

// parseJson overlays values from the file named by -c / -config.
// Without the flag nothing happens. An unreadable file or invalid JSON
// panics: the server must not start with a half-applied config.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setIf(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setIf(&config.DatabaseDSN, c.DatabaseDSN)
	setIf(&config.SecretKey, c.SecretKey)
	setIf(&config.LoginRateLimit, c.LoginRateLimit)
	setIf(&config.TrustedProxies, c.TrustedProxies)
	setIf(&config.LogFile, c.LogFile)
	setIf(&config.BuildMode, c.BuildMode)
	if c.AccessTokenValidityDuration != nil {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
