package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "inkpress",
	Short: "A blog and project-showcase publishing engine",
	Long: `inkpress scaffolds and manages sites built on the inkpress engine.

Example usage:
  inkpress new github.com/user/mysite   # Create a new site project
  inkpress post "Why Go"                # Scaffold a new blog post file
  inkpress import content/              # Import markdown content into the database
  inkpress serve --config config.yaml   # Serve a site with the starter views`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the inkpress version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("inkpress %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
