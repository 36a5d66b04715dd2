package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/fasthttp/deeplink"
	"github.com/fasthttp/deeplink/internal/config"
	"github.com/fasthttp/deeplink/internal/logging"
)

const defaultConfig = "deeplinks.yaml"

type options struct {
	config    string
	logLevel  string
	logFormat string
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "deeplink",
		Short: "Match URLs against a deep link registry",
		Long: `Match URLs against the templates of a deep link registry.

The registry is a YAML file naming each template in template notation:

  templates:
    - name: product
      template: "/product/{id:int}?{ref?}"

Examples:
  deeplink check
  deeplink match "app://product/42?ref=mail"
  deeplink match --config shop.yaml https://shop.example.com/product/42`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.config, "config", "c", defaultConfig, "Registry file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn or error (default from registry)")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "Log format: console, dev, json or text (default from registry)")

	cmd.AddCommand(
		matchCmd(opts),
		checkCmd(opts),
	)

	return cmd
}

// load reads the registry and builds the logger its settings and the flags
// describe. Flags win over the registry.
func (o *options) load(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(o.config)
	if err != nil {
		return nil, nil, err
	}

	settings := cfg.Log
	if o.logLevel != "" {
		settings.Level = o.logLevel
	}
	if o.logFormat != "" {
		settings.Format = o.logFormat
	}

	logCfg, err := settings.Logging(cmd.ErrOrStderr())
	if err != nil {
		return nil, nil, err
	}

	logger := logging.New(logCfg)
	logger.Debug("registry loaded", slog.String("path", o.config), slog.Int("templates", len(cfg.Templates)))

	return cfg, logger, nil
}

func entries[T any](cfg *config.Config, factory func(name string) deeplink.Factory[T]) []deeplink.Entry[T] {
	out := make([]deeplink.Entry[T], 0, len(cfg.Templates))

	for _, e := range cfg.Templates {
		out = append(out, deeplink.Entry[T]{
			Name:     e.Name,
			Template: e.Parsed(),
			New:      factory(e.Name),
		})
	}

	return out
}
