package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/julien-sobczak/the-fieldwriter/internal/field"
	"github.com/julien-sobczak/the-fieldwriter/internal/fixture"
)

var verboseInfo bool
var verboseDebug bool
var verboseTrace bool

var fixtureFile string
var settingsFile string
var configDir string
var siteID int

var rootCmd = &cobra.Command{
	Use:   "fw",
	Short: "The FieldWriter transforms rich-content field values",
	Long:  `A transformation pipeline between authored HTML and its portable storage form using reference tags.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Enable verbose output. The most verbose level wins when multiple flags are passed.
		if verboseInfo {
			field.CurrentLogger().SetVerboseLevel(field.VerboseInfo)
		}
		if verboseDebug {
			field.CurrentLogger().SetVerboseLevel(field.VerboseDebug)
		}
		if verboseTrace {
			field.CurrentLogger().SetVerboseLevel(field.VerboseTrace)
		}
	},
}

func init() {
	// Use PersistentFlags to make flags accessible to sub-commands
	rootCmd.PersistentFlags().BoolVarP(&verboseInfo, "v", "", false, "enable verbose info output")
	rootCmd.PersistentFlags().BoolVarP(&verboseDebug, "vv", "", false, "enable verbose debug output")
	rootCmd.PersistentFlags().BoolVarP(&verboseTrace, "vvv", "", false, "enable verbose trace output")
	rootCmd.PersistentFlags().StringVarP(&fixtureFile, "fixture", "f", "", "YAML file describing sites, volumes, entries, and assets")
	rootCmd.PersistentFlags().StringVarP(&settingsFile, "settings", "s", "", "TOML file with the field settings")
	rootCmd.PersistentFlags().StringVarP(&configDir, "config", "c", "", "directory containing purifier policy files")
	rootCmd.PersistentFlags().IntVarP(&siteID, "site", "", 0, "site context of the content")
}

// CurrentPipeline assembles a pipeline from the persistent flags.
func CurrentPipeline() *field.Pipeline {
	pipeline := &field.Pipeline{
		ConfigDir: configDir,
	}

	if fixtureFile != "" {
		store, err := fixture.Load(fixtureFile)
		if err != nil {
			color.Red("%v", err)
			os.Exit(1)
		}
		pipeline.Resolver = store
		pipeline.Registry = store
	}

	if settingsFile != "" {
		settings, err := field.LoadSettings(settingsFile)
		if err != nil {
			color.Red("%v", err)
			os.Exit(1)
		}
		pipeline.Definition = settings
		pipeline.PageTrigger = settings.PageTrigger
	}

	return pipeline
}

// ReadContent returns the content to transform: the file passed as argument,
// or stdin when no argument is given.
func ReadContent(args []string) string {
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			color.Red("%v", err)
			os.Exit(1)
		}
		return string(data)
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		color.Red("%v", err)
		os.Exit(1)
	}
	return string(data)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
