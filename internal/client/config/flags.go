package config

import (
	"flag"
	"os"
	"time"

	"github.com/Moha-Why/WorkOut-sub000/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path to the local sqlite database
//	-r string   Postgres DSN of the remote store
//	-t string   access token (JWT) identifying the user
//	-u string   user id override
//	-i int      full sync interval in seconds
//	-o int      online check interval in seconds
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-r", "-t", "-u", "-i", "-o"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to local database")
	fs.StringVar(&cfg.RemoteDSN, "r", cfg.RemoteDSN, "remote store DSN")
	fs.StringVar(&cfg.AccessToken, "t", cfg.AccessToken, "access token")
	fs.StringVar(&cfg.UserID, "u", cfg.UserID, "user id override")
	syncInterval := fs.Int("i", int(cfg.SyncInterval.Seconds()), "full sync interval (in seconds)")
	checkInterval := fs.Int("o", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.SyncInterval = time.Duration(*syncInterval) * time.Second
	cfg.OnlineCheckInterval = time.Duration(*checkInterval) * time.Second
}
