package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/julien-sobczak/the-fieldwriter/pkg/markdown"
)

var fromMarkdown bool

func init() {
	saveCmd.Flags().BoolVarP(&fromMarkdown, "from-markdown", "m", false, "convert the content from Markdown to HTML first")
	rootCmd.AddCommand(saveCmd)
}

var saveCmd = &cobra.Command{
	Use:   "save [file]",
	Short: "Save",
	Long:  `Turn authored HTML into its storage form: sanitize, then rewrite resolvable URLs into reference tags.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		content := ReadContent(args)
		if fromMarkdown {
			content = markdown.ToHTML(content)
		}

		pipeline := CurrentPipeline()
		if normalized := pipeline.Normalize(content, siteID); normalized == nil {
			// An empty value stores nothing at all
			return
		}

		saved, err := pipeline.Save(content, siteID)
		if err != nil {
			color.Red("%v", err)
			os.Exit(1)
		}
		fmt.Println(saved)
	},
}
