package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/zkkeeper/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-d string   PostgreSQL DSN
//	-k string   refresh token store: postgres | redis | memory
//	-R string   Redis address
//	-s string   JWT HMAC secret key
//	-p hex      verifier pepper (32 bytes)
//	-f hex      fake salt secret (32 bytes)
//	-i int      verifier PBKDF2 iterations
//	-l int      lockout threshold
//	-L int      lockout duration, minutes
//	-t int      access token validity, minutes
//	-r int      refresh token validity, minutes
//	-v list     supported schema versions, e.g. "1,2"
//
// Duration flags are integers in minutes.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-k", "-R", "-s", "-p", "-f", "-i", "-l", "-L", "-t", "-r", "-v"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.TokenStore, "k", config.TokenStore, "refresh token store (postgres, redis, memory)")
	fs.StringVar(&config.RedisAddr, "R", config.RedisAddr, "redis address")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.Var(flagx.HexBytes{Target: &config.Pepper, Size: secretSize}, "p", "verifier pepper (hex)")
	fs.Var(flagx.HexBytes{Target: &config.FakeSaltSecret, Size: secretSize}, "f", "fake salt secret (hex)")
	fs.IntVar(&config.VerifierIterations, "i", config.VerifierIterations, "verifier iterations")
	fs.IntVar(&config.LockoutThreshold, "l", config.LockoutThreshold, "failed logins before lockout")

	lockoutDuration := fs.Int("L", int(config.LockoutDuration.Minutes()), "lockout duration (in minutes)")
	accessTokenValidityDuration := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access_token_validity_duration (in minutes)")
	refreshTokenValidityDuration := fs.Int("r", int(config.RefreshTokenValidityDuration.Minutes()), "refresh_token_validity_duration (in minutes)")

	fs.Var(flagx.IntList{Target: &config.SupportedSchemaVersions}, "v", "supported schema versions")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.LockoutDuration = time.Duration(*lockoutDuration) * time.Minute
	config.AccessTokenValidityDuration = time.Duration(*accessTokenValidityDuration) * time.Minute
	config.RefreshTokenValidityDuration = time.Duration(*refreshTokenValidityDuration) * time.Minute
}
