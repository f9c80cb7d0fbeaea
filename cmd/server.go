package cmd

import (
	"kc414/server"

	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the KC414 HTTP server",
	Long:  `Start the HTTP server serving the catalog, booking, contact, and order APIs. Configuration comes from the environment.`,
	Run: func(cmd *cobra.Command, args []string) {
		server.Start()
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
