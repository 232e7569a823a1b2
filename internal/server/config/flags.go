package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/corpdesk/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-a string   HTTP bind address (e.g. ":4000")
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-t int      access token validity, minutes
//	-r int      refresh token validity, days
//	-m int      max open DB connections
//	-o string   comma separated CORS origins
//	-l string   log backend (slog|zap)
//	-w int      expired token sweep interval, minutes (0 disables)
//
// args are filtered with flagx.FilterArgs first so -c/-config and flags of
// other components do not make parsing fail.
func parseFlags(config *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-d", "-s", "-t", "-r", "-m", "-o", "-l", "-w"})

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	accessMinutes := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access token validity (in minutes)")
	refreshDays := fs.Int("r", int(config.RefreshTokenValidityDuration.Hours()/24), "refresh token validity (in days)")

	fs.IntVar(&config.DBMaxOpenConns, "m", config.DBMaxOpenConns, "max open database connections")
	origins := fs.String("o", "", "comma separated CORS allowed origins")
	fs.StringVar(&config.LogBackend, "l", config.LogBackend, "log backend (slog|zap)")
	sweepMinutes := fs.Int("w", int(config.TokenSweepInterval.Minutes()), "expired refresh token sweep interval (in minutes, 0 disables)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["t"] {
		config.AccessTokenValidityDuration = time.Duration(*accessMinutes) * time.Minute
	}
	if set["r"] {
		config.RefreshTokenValidityDuration = time.Duration(*refreshDays) * 24 * time.Hour
	}
	if set["o"] {
		config.AllowedOrigins = splitList(*origins)
	}
	if set["w"] {
		config.TokenSweepInterval = time.Duration(*sweepMinutes) * time.Minute
	}
	return nil
}
