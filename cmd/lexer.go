package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/c0depwn/jackfront/lexer"
	"github.com/c0depwn/jackfront/token"
	"github.com/c0depwn/jackfront/tree"
)

var lexFlagXML bool

func newLexCommand() *cobra.Command {
	lexCmd := &cobra.Command{
		Use:   "lex [source_file]",
		Short: "Show the output of the lexical analysis",
		Args:  cobra.ExactArgs(1),
		RunE:  runLexer,
	}

	lexCmd.Flags().BoolVar(&lexFlagXML, "xml", false, "write the tokens as <tokens> markup")

	return lexCmd
}

func runLexer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	f, err := openFile(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	out := cmd.OutOrStdout()

	if lexFlagXML {
		tokens, err := lexer.Tokenize(f)
		if err != nil {
			return err
		}

		x := tree.NewXMLWriter(out, tree.WithIndent(cfg.Output.Indent), tree.WithPadding(cfg.Output.PadLeaves))
		if err := tree.EmitTokens(x, tokens); err != nil {
			return err
		}
		return x.Finish()
	}

	src, err := io.ReadAll(f)
	if err != nil {
		return err
	}

	l := lexer.New(string(src))

	for {
		t, err := l.Next()
		if err != nil {
			return err
		}
		if t.Kind == token.EOF {
			break
		}

		fmt.Fprintf(out, "%-6s %-16s %s\n", t.Position, t.Kind, t.Literal)
	}

	return nil
}
