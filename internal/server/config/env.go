package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/corpdesk/internal/timex"
)

// lookupFunc matches os.LookupEnv.
type lookupFunc func(key string) (string, bool)

// parseEnv overlays environment variables onto config.
//
//	PORT                        listen port, bound on all interfaces
//	DATABASE_URL                full DSN; otherwise PGHOST/PGPORT/PGUSER/PGPASSWORD/PGDATABASE
//	JWT_SECRET                  access token signing secret
//	JWT_EXPIRES_IN              access token lifetime ("15m", "1h", "1d")
//	REFRESH_TOKEN_EXPIRES_DAYS  refresh token lifetime in days
//	PGPOOL_MAX                  connection pool size
//	CORS_ALLOWED_ORIGINS        comma separated origins
//	LOG_BACKEND                 slog | zap
//	TOKEN_SWEEP_INTERVAL        expired refresh token purge interval, "0" disables
func parseEnv(config *Config, lookup lookupFunc) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get("PORT"); ok {
		config.EndpointAddrHTTP = ":" + v
	}

	if v, ok := get("DATABASE_URL"); ok {
		config.DatabaseDSN = v
	} else if dsn, ok := dsnFromPG(config.DatabaseDSN, get); ok {
		config.DatabaseDSN = dsn
	}

	if v, ok := get("JWT_SECRET"); ok {
		config.SecretKey = v
	}

	if v, ok := get("JWT_EXPIRES_IN"); ok {
		d, err := timex.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("JWT_EXPIRES_IN: %w", err)
		}
		config.AccessTokenValidityDuration = d
	}

	if v, ok := get("REFRESH_TOKEN_EXPIRES_DAYS"); ok {
		days, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("REFRESH_TOKEN_EXPIRES_DAYS: %w", err)
		}
		config.RefreshTokenValidityDuration = time.Duration(days) * 24 * time.Hour
	}

	if v, ok := get("PGPOOL_MAX"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PGPOOL_MAX: %w", err)
		}
		config.DBMaxOpenConns = n
	}

	if v, ok := get("CORS_ALLOWED_ORIGINS"); ok {
		config.AllowedOrigins = splitList(v)
	}

	if v, ok := get("LOG_BACKEND"); ok {
		config.LogBackend = v
	}

	if v, ok := get("TOKEN_SWEEP_INTERVAL"); ok {
		d, err := timex.ParseDuration(v)
		if v == "0" {
			d, err = 0, nil
		}
		if err != nil {
			return fmt.Errorf("TOKEN_SWEEP_INTERVAL: %w", err)
		}
		config.TokenSweepInterval = d
	}

	return nil
}

// dsnFromPG builds a DSN from the libpq-style PG* variables, filling the gaps
// from the current DSN. ok is false when none of them is set.
func dsnFromPG(current string, get func(string) (string, bool)) (string, bool) {
	host, hasHost := get("PGHOST")
	port, hasPort := get("PGPORT")
	user, hasUser := get("PGUSER")
	password, hasPassword := get("PGPASSWORD")
	database, hasDatabase := get("PGDATABASE")
	if !hasHost && !hasPort && !hasUser && !hasPassword && !hasDatabase {
		return "", false
	}

	u, err := url.Parse(current)
	if err != nil || u.Scheme == "" {
		u = &url.URL{Scheme: "postgres", Host: "localhost:5432"}
	}

	curHost, curPort, err := net.SplitHostPort(u.Host)
	if err != nil {
		curHost, curPort = u.Host, "5432"
	}
	if hasHost {
		curHost = host
	}
	if hasPort {
		curPort = port
	}
	u.Host = net.JoinHostPort(curHost, curPort)

	curUser, curPassword := "", ""
	if u.User != nil {
		curUser = u.User.Username()
		curPassword, _ = u.User.Password()
	}
	if hasUser {
		curUser = user
	}
	if hasPassword {
		curPassword = password
	}
	if curPassword != "" {
		u.User = url.UserPassword(curUser, curPassword)
	} else if curUser != "" {
		u.User = url.User(curUser)
	}

	if hasDatabase {
		u.Path = "/" + database
	}

	return u.String(), true
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
