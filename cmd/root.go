package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/c0depwn/jackfront/config"
	"github.com/c0depwn/jackfront/console"
	"github.com/c0depwn/jackfront/logging"
)

var (
	rootFlagConfig   string
	rootFlagLogLevel string
	rootFlagNoColor  bool
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "jackfront",
		Short: "Syntax analyzer for the Jack language",
	}

	rootCmd.PersistentFlags().StringVarP(&rootFlagConfig, "config", "c", "", "configuration file (.toml, .yaml or .yml)")
	rootCmd.PersistentFlags().StringVar(&rootFlagLogLevel, "log-level", "", "log level, one of [debug, info, warn, error]")
	rootCmd.PersistentFlags().BoolVar(&rootFlagNoColor, "no-color", false, "disable coloured output")

	rootCmd.AddCommand(newLexCommand())
	rootCmd.AddCommand(newParseCommand())
	rootCmd.AddCommand(newAnalyzeCommand())
	rootCmd.AddCommand(newCompareCommand())

	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	return rootCmd
}

func Exec() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := newRootCommand().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the configuration file if one was given
// and applies the global flags on top of it.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if rootFlagConfig != "" {
		loaded, err := config.Load(rootFlagConfig)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if rootFlagLogLevel != "" {
		cfg.Log.Level = rootFlagLogLevel
	}
	if rootFlagNoColor {
		cfg.Console.Color = false
	}
	return cfg, nil
}

func newLogger(cfg *config.Config, out io.Writer) *slog.Logger {
	return logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: out,
	})
}

func newPrinter(cfg *config.Config, out io.Writer) *console.Printer {
	return console.New(out, cfg.Console.Color)
}

func openFile(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	stat, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if stat.IsDir() {
		_ = f.Close()
		return nil, fmt.Errorf("'%s' is a directory, please provide a file", path)
	}
	return f, nil
}
