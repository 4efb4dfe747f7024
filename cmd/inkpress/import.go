package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inkpress/inkpress"
)

var importDB string

var importCmd = &cobra.Command{
	Use:   "import <content-dir>",
	Short: "Import markdown content files into the site database",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := inkpress.NewStore(importDB)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer store.Close()

		n, err := store.ImportDir(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("imported %d entries into %s\n", n, importDB)
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importDB, "db", "data/site.db", "path to the SQLite database")
	rootCmd.AddCommand(importCmd)
}
