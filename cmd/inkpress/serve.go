package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/inkpress/inkpress"
	"github.com/inkpress/inkpress/views"
)

var serveConfig string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a site with the built-in starter views",
	Long: `Serve starts the engine directly from a config file, rendering with the
plain starter views. Generated sites get their own main package via
"inkpress new"; serve is the quick path for previewing imported content.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := inkpress.LoadConfig(serveConfig)
		if err != nil {
			return err
		}

		if dir := cfg.ContentDir; dir != "" {
			if _, err := os.Stat(dir); err == nil {
				store, err := inkpress.NewStore(cfg.DatabasePath)
				if err != nil {
					return fmt.Errorf("open store: %w", err)
				}
				n, err := store.ImportDir(dir)
				store.Close()
				if err != nil {
					return err
				}
				fmt.Printf("imported %d entries from %s\n", n, dir)
			}
		}

		app := inkpress.New(cfg, views.Starter(cfg.Name))
		defer app.Close()
		return app.Start()
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveConfig, "config", "config.yaml", "path to the site config file")
	rootCmd.AddCommand(serveCmd)
}
