// Command storefront serves the catalog and checkout API.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/storefront/pkg/logger"
)

func main() {
	err := rootCmd.Execute()
	logger.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "storefront",
	Short:         "Storefront catalog and checkout API",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routeListCmd)
	rootCmd.AddCommand(seedCmd)
}
