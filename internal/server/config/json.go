package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/corpdesk/internal/flagx"
	"github.com/dmitrijs2005/corpdesk/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Durations go through
// timex.Duration so both "15m"/"7d" strings and integer nanoseconds parse.
type JsonConfig struct {
	EndpointAddrHTTP             string          `json:"endpoint_addr_http"`
	DatabaseDSN                  string          `json:"database_dsn"`
	SecretKey                    string          `json:"secret_key"`
	AccessTokenValidityDuration  timex.Duration  `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration timex.Duration  `json:"refresh_token_validity_duration"`
	DBMaxOpenConns               int             `json:"db_max_open_conns"`
	AllowedOrigins               []string        `json:"allowed_origins"`
	LogBackend                   string          `json:"log_backend"`
	TokenSweepInterval           *timex.Duration `json:"token_sweep_interval"`
}

// parseJson overlays values from the file named by -c/-config onto config.
// Only keys present in the file (non-zero values) replace the current ones,
// except token_sweep_interval which may be set to 0 explicitly.
func parseJson(config *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return err
	}

	if c.EndpointAddrHTTP != "" {
		config.EndpointAddrHTTP = c.EndpointAddrHTTP
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.AccessTokenValidityDuration.Duration != 0 {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.RefreshTokenValidityDuration.Duration != 0 {
		config.RefreshTokenValidityDuration = c.RefreshTokenValidityDuration.Duration
	}
	if c.DBMaxOpenConns != 0 {
		config.DBMaxOpenConns = c.DBMaxOpenConns
	}
	if len(c.AllowedOrigins) > 0 {
		config.AllowedOrigins = c.AllowedOrigins
	}
	if c.LogBackend != "" {
		config.LogBackend = c.LogBackend
	}
	if c.TokenSweepInterval != nil {
		config.TokenSweepInterval = c.TokenSweepInterval.Duration
	}
	return nil
}
