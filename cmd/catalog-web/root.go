package main

import (
	"fmt"
	"io"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"aquarium-catalog/internal/adapters/catalogapi"
	"aquarium-catalog/internal/config"
	"aquarium-catalog/internal/platform/httpclient"
	"aquarium-catalog/internal/platform/logger"
)

type rootOptions struct {
	cfgFile string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "catalog-web",
		Short: "Aquarium species catalog web front",
		Long: `catalog-web renders the aquarium species catalog (fish and plant lists,
detail pages and the search overlay) from the species REST API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// .env opcional, no pisa variables ya definidas
			_ = godotenv.Load()
		},
	}
	cmd.PersistentFlags().StringVar(&opts.cfgFile, "config", config.DefaultPath, "config file path")

	cmd.AddCommand(
		newServeCmd(opts),
		newRenderCmd(opts),
		newExportCmd(opts),
		newConfigCmd(opts),
	)
	return cmd
}

func (o *rootOptions) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(o.cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// app es lo que comparten los comandos: config, logger y cliente de la API.
type app struct {
	cfg     *config.Config
	log     logger.Logger
	catalog *catalogapi.Client
}

func (o *rootOptions) newApp(logOut io.Writer) (*app, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}
	log := logger.NewWithWriter(cfg.LoggerOptions(), logOut)

	hc, err := httpclient.New(httpclient.Config{
		BaseURL:   cfg.API.BaseURL,
		Timeout:   cfg.API.Timeout,
		UserAgent: cfg.AppName,
		Logger:    log,
	})
	if err != nil {
		return nil, fmt.Errorf("api client: %w", err)
	}
	return &app{cfg: cfg, log: log, catalog: catalogapi.NewClient(hc)}, nil
}

func (a *app) sync() {
	if s, ok := a.log.(interface{ Sync() error }); ok {
		_ = s.Sync()
	}
}
