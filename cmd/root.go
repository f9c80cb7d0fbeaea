package cmd

import (
	"fmt"
	"os"

	"kc414/server"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "kc414",
	Short: "KC414 is the artist's promotional site backend.",
	Run: func(cmd *cobra.Command, args []string) {
		server.Start()
	},
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
