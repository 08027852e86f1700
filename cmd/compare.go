package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/c0depwn/jackfront/tree"
)

func newCompareCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "compare [expected] [actual]",
		Short: "Compare two markup files structurally",
		Long: "Compare two markup files structurally.\n" +
			"Node names, leaf kinds and leaf texts are compared, whitespace between elements is ignored.",
		Args: cobra.ExactArgs(2),
		RunE: runCompare,
	}
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	expected, err := decodeFile(args[0])
	if err != nil {
		return err
	}
	actual, err := decodeFile(args[1])
	if err != nil {
		return err
	}

	differences, err := tree.Compare(expected, actual)
	if err != nil {
		return err
	}

	printer := newPrinter(cfg, cmd.OutOrStdout())

	if len(differences) == 0 {
		printer.Success(fmt.Sprintf("%s and %s are equal", args[0], args[1]))
		return nil
	}

	lines := make([]string, 0, len(differences)+1)
	lines = append(lines, fmt.Sprintf("%s and %s differ", args[0], args[1]))
	for _, d := range differences {
		lines = append(lines, d.String())
	}
	printer.Error(lines...)

	return fmt.Errorf("found %d difference(s)", len(differences))
}

func decodeFile(path string) (*tree.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	n, err := tree.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("cannot decode '%s': %w", path, err)
	}
	return n, nil
}
