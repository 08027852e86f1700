package cmd

import (
	"github.com/spf13/cobra"

	"github.com/c0depwn/jackfront/lexer"
	"github.com/c0depwn/jackfront/parser"
	"github.com/c0depwn/jackfront/tree"
)

var (
	parseFlagDebug bool
	parseFlagTrace bool
)

func newParseCommand() *cobra.Command {
	parseCmd := &cobra.Command{
		Use:   "parse [source_file]",
		Short: "Invoke the parser and print the resulting markup",
		Args:  cobra.ExactArgs(1),
		RunE:  runParser,
	}

	parseCmd.PersistentFlags().BoolVar(&parseFlagDebug, "debug", false, "enable additional debugging asserts")
	parseCmd.PersistentFlags().BoolVar(&parseFlagTrace, "trace", false, "enable trace of called parse functions")

	return parseCmd
}

func runParser(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	f, err := openFile(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	tokens, err := lexer.Tokenize(f)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	var parserOptions []parser.Option
	if parseFlagDebug {
		parserOptions = append(parserOptions, parser.EnableDebug())
	}
	if parseFlagTrace {
		parserOptions = append(parserOptions, parser.EnableTrace(out))
	}

	// the markup is only written once the whole file has been parsed
	rec := tree.NewRecorder()
	if err := parser.ParseFile(tokens, rec, parserOptions...); err != nil {
		return err
	}

	x := tree.NewXMLWriter(out, tree.WithIndent(cfg.Output.Indent), tree.WithPadding(cfg.Output.PadLeaves))
	if err := rec.Replay(x); err != nil {
		return err
	}
	return x.Finish()
}
