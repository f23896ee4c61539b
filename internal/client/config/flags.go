package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/zkkeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   address and port of the backend server
//	-i int      online check interval (seconds)
//	-d string   local database path
//	-w int      key worker timeout (seconds)
//	-t int      RPC timeout (seconds)
//	-p string   profile to use
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-i", "-d", "-w", "-t", "-p"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "local database path")
	fs.StringVar(&cfg.Profile, "p", cfg.Profile, "profile")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	workerTimeout := fs.Int("w", int(cfg.WorkerTimeout.Seconds()), "key worker timeout (in seconds)")
	callTimeout := fs.Int("t", int(cfg.CallTimeout.Seconds()), "rpc timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
	cfg.WorkerTimeout = time.Duration(*workerTimeout) * time.Second
	cfg.CallTimeout = time.Duration(*callTimeout) * time.Second
}
