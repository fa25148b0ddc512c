package config

import "time"

// Config holds runtime settings for the journal CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the backend REST API.
//   - DatabasePath: path of the local sqlite database file.
//   - RequestTimeout: per-request timeout for API calls.
//   - ProbeInterval: how often the client probes server reachability.
//   - ProbeTimeout: timeout for a single reachability probe.
//   - PageLimit: page size used when fetching entries from the server.
type Config struct {
	ServerBaseURL  string
	DatabasePath   string
	RequestTimeout time.Duration
	ProbeInterval  time.Duration
	ProbeTimeout   time.Duration
	PageLimit      int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8080"
	c.DatabasePath = "gamelog.db"
	c.RequestTimeout = 10 * time.Second
	c.ProbeInterval = 3 * time.Second
	c.ProbeTimeout = 2 * time.Second
	c.PageLimit = 25
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
