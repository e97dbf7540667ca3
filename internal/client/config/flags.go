package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/expenzo/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-p", "-t", "-w"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "base URL of the API server")
	fs.StringVar(&cfg.SessionDBPath, "p", cfg.SessionDBPath, "session database path")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	logoutDelay := fs.Int("w", int(cfg.LogoutDelay.Milliseconds()), "logout delay (in milliseconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// durations are only rewritten when given, so finer JSON values survive
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
		case "w":
			cfg.LogoutDelay = time.Duration(*logoutDelay) * time.Millisecond
		}
	})
}
