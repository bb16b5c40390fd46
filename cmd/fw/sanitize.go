package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(sanitizeCmd)
}

var sanitizeCmd = &cobra.Command{
	Use:   "sanitize [file]",
	Short: "Sanitize",
	Long:  `Run the sanitization stage alone, without rewriting URLs into reference tags.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		content := ReadContent(args)

		pipeline := CurrentPipeline()
		// No registry means Save stops after sanitization
		pipeline.Registry = nil

		cleaned, err := pipeline.Save(content, siteID)
		if err != nil {
			color.Red("%v", err)
			os.Exit(1)
		}
		fmt.Println(cleaned)
	},
}
