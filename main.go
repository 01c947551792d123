package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configPath    string
	modelPath     string
	templatesPath string
	outputPath    string
	langName      string
	moduleNames   []string
	verbose       bool
)

var rootCmd = &cobra.Command{
	Use:   "java2scala",
	Short: "Generate Scala extensions for Vert.x Java APIs",
	Long: `java2scala reads a model of a Vert.x Java API and writes one Scala package
object per module. The package objects add Option returning variants of
methods with nullable values and Future returning variants of methods taking
an async result callback.

Examples:
  java2scala generate                          # Use java2scala.toml
  java2scala generate --model core.yaml -o out # Override the model and output`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the package objects of a model",
	RunE:  runGenerate,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Configuration file (default: "+DefaultConfigFile+" if present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every rendered type")

	generateCmd.Flags().StringVarP(&modelPath, "model", "m", "", "Model file")
	generateCmd.Flags().StringVarP(&templatesPath, "templates", "t", "", "Directory overriding the built in templates")
	generateCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output directory")
	generateCmd.Flags().StringVar(&langName, "lang", "", "Language name of the translated packages")
	generateCmd.Flags().StringSliceVar(&moduleNames, "module", nil, "Only generate the named modules")

	rootCmd.AddCommand(generateCmd)
}

// resolveConfig applies the command line flags on top of the file settings
func resolveConfig(cmd *cobra.Command) (Config, error) {
	config, err := LoadConfig(configPath)
	if err != nil {
		return Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("model") {
		config.Model = modelPath
	}
	if flags.Changed("templates") {
		config.Templates = templatesPath
	}
	if flags.Changed("output") {
		config.Output = outputPath
	}
	if flags.Changed("lang") {
		config.Lang = langName
	}
	if flags.Changed("module") {
		config.Modules = moduleNames
	}
	if verbose {
		config.LogLevel = "debug"
	}
	return config, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	config, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	level, err := log.ParseLevel(config.LogLevel)
	if err != nil {
		return errors.Wrapf(err, "log level %q", config.LogLevel)
	}
	log.SetLevel(level)

	generator, err := NewGenerator(config)
	if err != nil {
		return err
	}

	written, err := generator.Run(config.Modules)
	if err != nil {
		return err
	}
	for _, path := range written {
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
