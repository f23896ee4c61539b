package config

import (
	"bytes"
	"flag"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	pepper := strings.Repeat("ab", 32)
	fake := strings.Repeat("cd", 32)

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "Test1 OK", args: []string{"cmd",
			"-a", "127.0.0.1:9090", "-d", "db", "-k", "redis", "-R", "redis:6379", "-s", "secret",
			"-p", pepper, "-f", fake, "-i", "1000", "-l", "5", "-L", "15",
			"-t", "1", "-r", "3", "-v", "1,2",
		}, expectPanic: false,
			expected: &Config{
				EndpointAddrGRPC:             "127.0.0.1:9090",
				DatabaseDSN:                  "db",
				TokenStore:                   "redis",
				RedisAddr:                    "redis:6379",
				SecretKey:                    "secret",
				Pepper:                       bytes.Repeat([]byte{0xab}, 32),
				FakeSaltSecret:               bytes.Repeat([]byte{0xcd}, 32),
				VerifierIterations:           1000,
				LockoutThreshold:             5,
				LockoutDuration:              15 * time.Minute,
				AccessTokenValidityDuration:  1 * time.Minute,
				RefreshTokenValidityDuration: 3 * time.Minute,
				SupportedSchemaVersions:      []int{1, 2},
			}},
		{name: "short pepper panics", args: []string{"cmd", "-p", "abcd"}, expectPanic: true},
		{name: "bad int panics", args: []string{"cmd", "-i", "many"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)

			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
