package config

import (
	"time"

	"github.com/dmitrijs2005/zkkeeper/internal/client/keyworker"
)

// Config holds runtime settings for the zkkeeper CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the backend gRPC endpoint.
//   - OnlineCheckInterval: how often the client pings the server.
//   - DatabasePath: local SQLite file holding profiles (no secrets).
//   - WorkerTimeout: how long a caller waits on the key worker.
//   - CallTimeout: upper bound for a single RPC.
//   - Profile: profile used when a command names none.
type Config struct {
	ServerEndpointAddr  string
	OnlineCheckInterval time.Duration
	DatabasePath        string
	WorkerTimeout       time.Duration
	CallTimeout         time.Duration
	Profile             string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.OnlineCheckInterval = 3 * time.Second
	c.DatabasePath = "zkkeeper.db"
	c.WorkerTimeout = keyworker.DefaultTimeout
	c.CallTimeout = 15 * time.Second
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
