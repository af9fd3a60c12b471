package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"github.gatech.edu/CS2200/CS2200-Assembly-Server/isa"
)

var dumpSpec bool

func printCatalog(w io.Writer, spec isa.InstructionSpec, dump bool) {
	if dump {
		spew.Fdump(w, spec)
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, entry := range isa.Catalog(spec) {
		fmt.Fprintf(tw, "%s\t%s\n", entry.Mnemonic, entry.Detail)
	}
	tw.Flush()
}

var catalogCmd = &cobra.Command{
	Use:          "catalog",
	Short:        "List the mnemonics of an instruction table",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		spec, err := loadSpec(isaPath)
		if err != nil {
			return err
		}
		printCatalog(cmd.OutOrStdout(), spec, dumpSpec)
		return nil
	},
}

func init() {
	catalogCmd.Flags().StringVar(&isaPath, "isa", "", "list the table in this .isa file")
	catalogCmd.Flags().BoolVar(&dumpSpec, "dump", false, "dump the whole table structure")
	rootCmd.AddCommand(catalogCmd)
}
