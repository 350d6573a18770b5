// Command dashctl performs operator maintenance directly against the
// dashboard's data directory: creating accounts, resetting passwords and
// 2FA, and (de)activating users. Stop the server first when using bolt.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/morjahome/dashboard/internal/dashboard/app"
	"github.com/morjahome/dashboard/internal/dashboard/service"
)

func main() {
	envFile := flag.String("env-file", ".env", "Path to a .env file")
	driver := flag.String("driver", "", "Store driver override (sqlite or bolt)")
	dataPath := flag.String("data", "", "Data directory override")
	flag.Usage = printUsage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	// gen-secret needs no store
	if args[0] == "gen-secret" {
		if err := genSecret(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	cfg, err := app.LoadConfig(*envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if *driver != "" {
		cfg.StoreDriver = *driver
	}
	if *dataPath != "" {
		cfg.DataPath = *dataPath
	}
	cfg.LogFormat = "text"
	logger := app.NewLogger(cfg)

	db, err := app.OpenStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open store: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close store", slog.Any("error", err))
		}
	}()

	c := &commands{
		store:        db,
		accounts:     &service.AccountService{Store: db},
		out:          os.Stdout,
		readPassword: readPassword,
	}

	if err := c.run(context.Background(), args[0], args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: dashctl [flags] <command> [args]

Commands:
  gen-secret
  list-users
  create-user -username NAME -email ADDR [-roles links,photos] [-admin] [-generate]
  set-password USERNAME
  reset-2fa USERNAME
  set-active USERNAME true|false

Flags:
`)
	flag.PrintDefaults()
}
