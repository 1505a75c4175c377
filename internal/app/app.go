package app

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/five82/tailview/internal/config"
	"github.com/five82/tailview/internal/diag"
	"github.com/five82/tailview/internal/tail"
	"github.com/five82/tailview/internal/ui"
	"github.com/five82/tailview/internal/viewer"
)

// Options configure the tailview application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/tailview/prefs.toml
	APIBind    string // overrides api_bind from the config file
	Verbose    bool   // forces debug diagnostics
}

// Run boots the tailview TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	prefsPath := opts.PrefsPath
	if strings.TrimSpace(prefsPath) == "" {
		prefsPath = config.DefaultPrefsPath()
	}
	userPrefs := config.LoadPrefs(prefsPath)

	logger, closeLog, err := diag.New(diag.Options{Path: cfg.DiagLog, Verbose: cfg.Verbose})
	if err != nil {
		return fmt.Errorf("init diagnostics: %w", err)
	}
	defer func() { _ = closeLog() }()

	client, err := tail.NewClient(cfg.APIBind)
	if err != nil {
		return fmt.Errorf("init tail client: %w", err)
	}
	logger.Info("starting", zap.String("endpoint", client.Endpoint()))

	v := viewer.New(client, logger.Named("viewer"))

	return ui.Run(ui.Options{
		Context:   ctx,
		Endpoint:  client.Endpoint(),
		Prefs:     userPrefs,
		PrefsPath: prefsPath,
		Activate: func(doc viewer.Document) error {
			if err := v.Activate(ctx, doc, ui.LogPaneID); err != nil {
				return fmt.Errorf("activate log tail: %w", err)
			}
			return nil
		},
	})
}

// loadConfig reads the config file and applies command line overrides.
func loadConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, err
	}
	if bind := strings.TrimSpace(opts.APIBind); bind != "" {
		cfg.APIBind = bind
	}
	if opts.Verbose {
		cfg.Verbose = true
	}
	return cfg, nil
}
