package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/symcalc/symcalc/config"
)

// Version is the symcalc version, set at build time.
var Version = "0.1.0"

// app carries the state shared by the subcommands once the configuration is loaded.
type app struct {
	cfgFile string
	cfg     *config.Config
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {

	a := new(app)

	rootCmd := &cobra.Command{
		Use:   "symcalc",
		Short: "Arbitrary precision calculator and equation solver",
		Long: `symcalc evaluates complex expressions at arbitrary precision and solves
equations for an unknown in closed form, up to polynomials of degree four in
the unknown or in a function of it.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "version" {
				return nil
			}
			return a.load(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: ./"+config.FileName+")")
	flags.UintP("precision", "p", config.DefaultPrecision, "working precision in bits")
	flags.IntP("digits", "d", config.DefaultDigits, "significant digits printed")
	flags.StringP("output", "o", config.DefaultOutput, "output format (text|table|json|yaml)")
	flags.String("log-level", config.DefaultLogLevel, "log level (debug|info|warn|error)")
	flags.Bool("sci", false, "print values in scientific notation")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return config.OutputFormats, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newSolveCmd(a))
	rootCmd.AddCommand(newEvalCmd(a))
	rootCmd.AddCommand(newSelftestCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// load reads the configuration and sets up the logger.
func (a *app) load(cmd *cobra.Command) error {

	cfg, used, err := config.Load(a.cfgFile, cmd.Root().PersistentFlags())
	if err != nil {
		return err
	}

	var level slog.Level
	if err = level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return fmt.Errorf("invalid log_level: %w", err)
	}

	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	if used != "" {
		a.logger.Debug("loaded config file", "path", used)
	}
	a.logger.Debug("configuration", "precision", cfg.Precision, "digits", cfg.Digits, "output", cfg.Output)

	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "symcalc v%s\n", Version)
		},
	}
}
