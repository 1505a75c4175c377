package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	flag "github.com/spf13/pflag"

	"github.com/five82/tailview/internal/app"
	"github.com/five82/tailview/internal/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		// pflag has already printed the error and usage.
		return 2
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "tailview: %v\n", err)
		return 1
	}
	return 0
}

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("tailview", flag.ContinueOnError)
	fs.String("config", "", "override config path (default "+config.DefaultPath()+")")
	fs.String("api", "", "haminer web UI address, host:port or URL (optional)")
	fs.BoolP("verbose", "v", false, "trace every received log line in the diagnostic log")
	return fs
}

func parseFlags(args []string) (app.Options, error) {
	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return app.Options{}, err
	}
	configPath, _ := fs.GetString("config")
	apiBind, _ := fs.GetString("api")
	verbose, _ := fs.GetBool("verbose")
	return app.Options{
		ConfigPath: configPath,
		APIBind:    apiBind,
		Verbose:    verbose,
	}, nil
}
