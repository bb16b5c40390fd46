package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(displayCmd)
}

var displayCmd = &cobra.Command{
	Use:   "display [file]",
	Short: "Display",
	Long:  `Turn stored content into renderable HTML by resolving every reference tag.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		content := ReadContent(args)
		fmt.Println(CurrentPipeline().Display(content, siteID))
	},
}
