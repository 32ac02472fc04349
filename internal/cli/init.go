package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/yaklabco/doctidy/internal/logging"
	"github.com/yaklabco/doctidy/pkg/config"
)

// configFilePermissions is the file mode for configuration files.
const configFilePermissions = 0644

const defaultConfigName = ".doctidy.yaml"

func newInitCommand() *cobra.Command {
	var force bool
	var output string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a doctidy configuration file",
		Long: `Create a .doctidy.yaml configuration file in the current directory
with the default settings, ready to customize.

Examples:
  doctidy init                  Create .doctidy.yaml
  doctidy init --output cfg.yml Write to a custom path`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit(force, output)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing configuration file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file path (default: "+defaultConfigName+")")

	return cmd
}

func runInit(force bool, output string) error {
	logger := logging.Default()

	outputPath := output
	if outputPath == "" {
		outputPath = defaultConfigName
	}

	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", outputPath)
		}
	}

	data, err := yaml.Marshal(config.NewConfig())
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	header := []byte("# doctidy configuration\n# See `doctidy check --help` for matching flags.\n")
	if err := os.WriteFile(outputPath, append(header, data...), configFilePermissions); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}

	logger.Info("configuration created", logging.FieldPath, outputPath)
	return nil
}
