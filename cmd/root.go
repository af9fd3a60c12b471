package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.gatech.edu/CS2200/CS2200-Assembly-Server/languageServer"
	"github.gatech.edu/CS2200/CS2200-Assembly-Server/util"
)

var (
	debug       bool
	logEndpoint string
	tcpAddr     string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cs2200asm",
	Short: "Language server and checker for CS2200 assembly",
	Long: `cs2200asm validates CS2200 assembly against the instruction table of the
course ISA, or against a custom table loaded from an .isa file.

Without a subcommand the language server listens for TCP connections so it
can be debugged remotely.`,
	Args: cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		util.LoggingEnabled = debug
		util.LogEndpoint = logEndpoint
	},
	Run: func(cmd *cobra.Command, args []string) {
		if err := languageServer.ListenAndServeTCP(tcpAddr); err != nil {
			log.Fatalf("CS2200 Language Server: %v", err)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log every request to stderr")
	rootCmd.PersistentFlags().StringVar(&logEndpoint, "log-endpoint", "", "also POST debug messages to this URL")
	rootCmd.Flags().StringVar(&tcpAddr, "addr", ":2035", "TCP address to listen on")
}
