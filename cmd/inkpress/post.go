package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/template"
	"time"

	"github.com/spf13/cobra"

	"github.com/inkpress/inkpress"
	"github.com/inkpress/inkpress/scaffold"
)

var (
	postDir    string
	postSeries string
)

var postCmd = &cobra.Command{
	Use:   "post <title>",
	Short: "Scaffold a new blog post file with front matter",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPost(args[0])
	},
}

func init() {
	postCmd.Flags().StringVar(&postDir, "dir", "content", "content directory to create the post in")
	postCmd.Flags().StringVar(&postSeries, "series", "", "series the post belongs to")
	rootCmd.AddCommand(postCmd)
}

// postData holds the variables for the post scaffold template.
type postData struct {
	Title  string
	Date   string
	Series string
}

func runPost(title string) error {
	slug := inkpress.Slugify(title)
	if slug == "" {
		return fmt.Errorf("title %q yields an empty slug", title)
	}

	outPath := filepath.Join(postDir, slug+".md")
	if _, err := os.Stat(outPath); err == nil {
		return fmt.Errorf("%s already exists", outPath)
	}

	raw, err := scaffold.Templates.ReadFile("templates/post.md.tmpl")
	if err != nil {
		return fmt.Errorf("read post template: %w", err)
	}
	tmpl, err := template.New("post.md.tmpl").Parse(string(raw))
	if err != nil {
		return fmt.Errorf("parse post template: %w", err)
	}

	if err := os.MkdirAll(postDir, 0o755); err != nil {
		return err
	}
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}
	defer f.Close()

	data := postData{
		Title:  title,
		Date:   time.Now().Format("2006-01-02"),
		Series: postSeries,
	}
	if err := tmpl.Execute(f, data); err != nil {
		return fmt.Errorf("execute post template: %w", err)
	}

	fmt.Printf("created %s (draft)\n", outPath)
	return nil
}
