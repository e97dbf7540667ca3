package config

import "time"

// Config holds runtime settings for the expenzo CLI.
//
// Fields:
//   - ServerEndpointAddr: base URL of the expenzo API.
//   - SessionDBPath: SQLite file holding the local session.
//   - RequestTimeout: per-request HTTP timeout.
//   - LogoutDelay: pause between logout and the login prompt.
type Config struct {
	ServerEndpointAddr string
	SessionDBPath      string
	RequestTimeout     time.Duration
	LogoutDelay        time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://127.0.0.1:8080"
	c.SessionDBPath = "session.db"
	c.RequestTimeout = 10 * time.Second
	c.LogoutDelay = time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
