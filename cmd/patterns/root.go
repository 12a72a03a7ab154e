package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/patterns/catalogue"
	"github.com/katalvlaran/patterns/internal/config"
	"github.com/katalvlaran/patterns/internal/logger"
)

const (
	flagConfig   = "config"
	flagLogLevel = "log-level"
	flagOutput   = "output"
)

// app carries the state shared by subcommands.
type app struct {
	v          *viper.Viper
	configPath string
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:           "patterns",
		Short:         "Run classic design pattern demos",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&a.configPath, flagConfig, "", "path to a YAML config file")
	root.PersistentFlags().String(flagLogLevel, config.DefaultLogLevel, "log level (debug, info, warn, error)")
	_ = a.v.BindPFlag(config.KeyLogLevel, root.PersistentFlags().Lookup(flagLogLevel))

	root.AddCommand(a.newRunCmd(), a.newListCmd())

	return root
}

func (a *app) newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [slug...]",
		Short: "Run demos in catalogue order, or the given ones in the given order",
		Example: `  patterns run
  patterns run adapter criteria
  PATTERNS_DEMOS=facade,builder patterns run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.v, a.configPath)
			if err != nil {
				return err
			}

			lvl, err := logger.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			lggr, err := logger.NewCLILogger(lvl)
			if err != nil {
				return err
			}
			defer func() { _ = lggr.Sync() }()

			slugs := cfg.Demos
			if len(args) > 0 {
				slugs = args
			}
			demos, err := catalogue.Select(slugs...)
			if err != nil {
				return err
			}

			lggr.Debug("starting", zap.Strings("demos", slugs))
			r := catalogue.NewRunner(cmd.OutOrStdout(),
				catalogue.WithLogger(lggr),
				catalogue.WithBanner(cfg.Banner))

			return r.Run(demos)
		},
	}
}

func (a *app) newListCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available demos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			demos := catalogue.All()
			switch output {
			case "yaml":
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				if err := enc.Encode(demos); err != nil {
					return err
				}

				return enc.Close()
			case "text":
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				for _, d := range demos {
					fmt.Fprintf(tw, "%s\t%s\n", d.Slug, d.Name)
				}

				return tw.Flush()
			default:
				return fmt.Errorf("unknown output format %q (want text or yaml)", output)
			}
		},
	}
	cmd.Flags().StringVarP(&output, flagOutput, "o", "text", "output format: text or yaml")

	return cmd
}
