package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.gatech.edu/CS2200/CS2200-Assembly-Server/languageServer"
)

var websocketAddr string

var websocketCmd = &cobra.Command{
	Use:   "websocket",
	Short: "Run the language server for browser-hosted editors",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := languageServer.ListenAndServeWebSocket(websocketAddr); err != nil {
			log.Fatalf("CS2200 Language Server: %v", err)
		}
	},
}

func init() {
	websocketCmd.Flags().StringVar(&websocketAddr, "addr", ":2036", "address to accept WebSocket connections on")
	rootCmd.AddCommand(websocketCmd)
}
