package cmd

import (
	"github.com/spf13/cobra"
	"github.gatech.edu/CS2200/CS2200-Assembly-Server/languageServer"
)

// languageServerCmd serves one editor over stdin and stdout
var languageServerCmd = &cobra.Command{
	Use:   "languageServer",
	Short: "Run the language server over stdio",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		languageServer.ListenAndServe()
	},
}

func init() {
	rootCmd.AddCommand(languageServerCmd)
}
