package config

import (
	"encoding/hex"
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/zkkeeper/internal/flagx"
	"github.com/dmitrijs2005/zkkeeper/internal/timex"
)

// JsonConfig is the on-disk shape of the server config. Durations use
// timex.Duration ("10m" or integer nanoseconds) and secrets are hex strings.
// Absent fields keep their current value.
type JsonConfig struct {
	EndpointAddrGRPC             *string         `json:"endpoint_addr_grpc"`
	DatabaseDSN                  *string         `json:"database_dsn"`
	TokenStore                   *string         `json:"token_store"`
	RedisAddr                    *string         `json:"redis_addr"`
	SecretKey                    *string         `json:"secret_key"`
	Pepper                       *string         `json:"pepper"`
	FakeSaltSecret               *string         `json:"fake_salt_secret"`
	VerifierIterations           *int            `json:"verifier_iterations"`
	LockoutThreshold             *int            `json:"lockout_threshold"`
	LockoutDuration              *timex.Duration `json:"lockout_duration"`
	AccessTokenValidityDuration  *timex.Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration *timex.Duration `json:"refresh_token_validity_duration"`
	SupportedSchemaVersions      []int           `json:"supported_schema_versions"`
}

// parseJson loads the file named by -c/-config, if any, into config.
// An unreadable file or invalid JSON panics: the server must not start on a
// half-applied configuration.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()

	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.TokenStore, c.TokenStore)
	setString(&config.RedisAddr, c.RedisAddr)
	setString(&config.SecretKey, c.SecretKey)
	setHex(&config.Pepper, c.Pepper)
	setHex(&config.FakeSaltSecret, c.FakeSaltSecret)

	if c.VerifierIterations != nil {
		config.VerifierIterations = *c.VerifierIterations
	}
	if c.LockoutThreshold != nil {
		config.LockoutThreshold = *c.LockoutThreshold
	}
	if c.LockoutDuration != nil {
		config.LockoutDuration = c.LockoutDuration.Duration
	}
	if c.AccessTokenValidityDuration != nil {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.RefreshTokenValidityDuration != nil {
		config.RefreshTokenValidityDuration = c.RefreshTokenValidityDuration.Duration
	}
	if c.SupportedSchemaVersions != nil {
		config.SupportedSchemaVersions = c.SupportedSchemaVersions
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setHex(dst *[]byte, v *string) {
	if v == nil {
		return
	}
	b, err := hex.DecodeString(*v)
	if err != nil {
		panic(err)
	}
	*dst = b
}
