package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.gatech.edu/CS2200/CS2200-Assembly-Server/assembler"
	"github.gatech.edu/CS2200/CS2200-Assembly-Server/isa"
)

var isaPath string

// loadSpec returns the table in the .isa file at path, or the default table when path is empty.
func loadSpec(path string) (isa.InstructionSpec, error) {
	if path == "" {
		return isa.DefaultSpec(), nil
	}
	return isa.LoadIsaFile(path)
}

// checkFiles writes one line per diagnostic in the usual file:line:col form and returns how many
// were errors.
func checkFiles(w io.Writer, spec isa.InstructionSpec, paths []string) (int, error) {
	errorCount := 0
	for _, path := range paths {
		b, err := os.ReadFile(path)
		if err != nil {
			return errorCount, err
		}

		res := assembler.ValidateText(string(b), spec)
		for _, d := range res.Diagnostics {
			fmt.Fprintf(w, "%s:%d:%d: %s: %s\n", path, d.Range.Start.Line+1, d.Range.Start.Char+1, d.Severity, d.Message)
			if d.Severity == assembler.Error {
				errorCount++
			}
		}
	}
	return errorCount, nil
}

var checkCmd = &cobra.Command{
	Use:          "check file...",
	Short:        "Report diagnostics for assembly files",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		spec, err := loadSpec(isaPath)
		if err != nil {
			return err
		}
		errorCount, err := checkFiles(cmd.OutOrStdout(), spec, args)
		if err != nil {
			return err
		}
		if errorCount > 0 {
			return fmt.Errorf("%d error(s)", errorCount)
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().StringVar(&isaPath, "isa", "", "validate against the table in this .isa file")
	rootCmd.AddCommand(checkCmd)
}
