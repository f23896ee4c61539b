package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/zkkeeper/internal/flagx"
	"github.com/dmitrijs2005/zkkeeper/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify intervals either as
// strings like "3s" or as integer nanoseconds. Absent fields keep their
// current value.
type JsonConfig struct {
	ServerEndpointAddr  *string         `json:"server_endpoint_addr"`
	OnlineCheckInterval *timex.Duration `json:"online_check_interval"`
	DatabasePath        *string         `json:"database_path"`
	WorkerTimeout       *timex.Duration `json:"worker_timeout"`
	CallTimeout         *timex.Duration `json:"call_timeout"`
	Profile             *string         `json:"profile"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Read or unmarshal errors panic.
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerEndpointAddr != nil {
		cfg.ServerEndpointAddr = *jc.ServerEndpointAddr
	}
	if jc.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.WorkerTimeout != nil {
		cfg.WorkerTimeout = jc.WorkerTimeout.Duration
	}
	if jc.CallTimeout != nil {
		cfg.CallTimeout = jc.CallTimeout.Duration
	}
	if jc.Profile != nil {
		cfg.Profile = *jc.Profile
	}
}
