package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/c0depwn/jackfront/analyzer"
	"github.com/c0depwn/jackfront/console"
	"github.com/c0depwn/jackfront/parser"
)

var (
	analyzeFlagOut      string
	analyzeFlagWorkers  int
	analyzeFlagTokens   bool
	analyzeFlagReport   string
	analyzeFlagFailFast bool
	analyzeFlagDebug    bool
)

func newAnalyzeCommand() *cobra.Command {
	analyzeCmd := &cobra.Command{
		Use:   "analyze [path...]",
		Short: "Write the markup of every .jack file in the given files or directories",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runAnalyzer,
	}

	analyzeCmd.Flags().StringVarP(&analyzeFlagOut, "out", "o", "", "output directory, defaults to the directory of each source")
	analyzeCmd.Flags().IntVarP(&analyzeFlagWorkers, "workers", "w", 1, "number of files analyzed in parallel")
	analyzeCmd.Flags().BoolVarP(&analyzeFlagTokens, "tokens", "t", false, "additionally write the token dump <Name>T.xml")
	analyzeCmd.Flags().StringVar(&analyzeFlagReport, "report", "", "write a YAML report of the batch to this file")
	analyzeCmd.Flags().BoolVar(&analyzeFlagFailFast, "fail-fast", false, "stop at the first failing file")
	analyzeCmd.Flags().BoolVar(&analyzeFlagDebug, "debug", false, "enable additional debugging asserts")

	return analyzeCmd
}

func runAnalyzer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("out") {
		cfg.Output.Dir = analyzeFlagOut
	}
	if flags.Changed("workers") {
		cfg.Batch.Workers = analyzeFlagWorkers
	}
	if flags.Changed("tokens") {
		cfg.Output.Tokens = analyzeFlagTokens
	}
	if flags.Changed("fail-fast") {
		cfg.Batch.ContinueOnError = !analyzeFlagFailFast
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	printer := newPrinter(cfg, cmd.OutOrStdout())
	log := newLogger(cfg, cmd.ErrOrStderr())

	sources, err := analyzer.Discover(args...)
	if err != nil {
		return err
	}
	for _, source := range sources {
		printer.Message(fmt.Sprintf("File capture at %s", source))
	}

	opts := analyzer.OptionsFromConfig(cfg)
	if analyzeFlagDebug {
		opts.ParserOptions = append(opts.ParserOptions, parser.EnableDebug())
	}

	report, err := analyzer.New(opts, log).Run(cmd.Context(), sources)
	if err != nil {
		return err
	}

	for _, res := range report.Files {
		printResult(printer, res)
	}

	printer.Bar()
	printer.Finish(report.Summary(), "run "+report.RunID)

	if analyzeFlagReport != "" {
		if err := writeReport(analyzeFlagReport, report); err != nil {
			return err
		}
	}

	if report.Failed() {
		return fmt.Errorf("%d of %d file(s) failed", report.Totals.Failed, report.Totals.Files)
	}
	return nil
}

func printResult(printer *console.Printer, res analyzer.Result) {
	name := filepath.Base(res.Source)

	printer.Bar()
	printer.Message(fmt.Sprintf("Working on %s", name))

	switch res.Status {
	case analyzer.StatusOK:
		lines := []string{fmt.Sprintf("Compiled %s to %s", name, res.Output)}
		if res.TokenOutput != "" {
			lines = append(lines, fmt.Sprintf("Tokens written to %s", res.TokenOutput))
		}
		printer.Success(lines...)
	case analyzer.StatusSkipped:
		printer.Message(fmt.Sprintf("Skipped %s", name))
	default:
		printer.Error(fmt.Sprintf("%s: %s", res.Status, name), res.Message)
	}
}

func writeReport(path string, report *analyzer.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := report.WriteYAML(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
