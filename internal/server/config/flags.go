package config

import (
	"flag"
	"os"
	"strings"
	"time"

	"github.com/dmitrijs2005/expenzo/internal/flagx"
)

// parseFlags populates server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-t int      access token validity, minutes
//	-l int      login attempts per IP per minute
//	-f string   log file path (rotated)
//	-m string   build mode ("development" or "production")
//	-r string   trusted proxies, comma separated addresses or CIDRs
//
// os.Args is filtered first so that -c / -env never trip the FlagSet.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-l", "-f", "-m", "-r"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	accessTokenValidityDuration := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access_token_validity_duration (in minutes)")

	fs.IntVar(&config.LoginRateLimit, "l", config.LoginRateLimit, "login attempts per minute per IP")
	fs.StringVar(&config.LogFile, "f", config.LogFile, "log file")
	fs.StringVar(&config.BuildMode, "m", config.BuildMode, "build mode")
	trustedProxies := fs.String("r", strings.Join(config.TrustedProxies, ","), "trusted proxies (comma separated)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			config.AccessTokenValidityDuration = time.Duration(*accessTokenValidityDuration) * time.Minute
		case "r":
			config.TrustedProxies = splitList(*trustedProxies)
		}
	})
}
