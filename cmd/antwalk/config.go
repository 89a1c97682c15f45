package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/antwalk/internal/config"
	"github.com/vovakirdan/antwalk/internal/export"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration antwalk would use, as YAML, after the config
file and global flags are applied. The output is a valid config file.

Config files are searched in this order:
  --config <path>
  ~/.antwalk/config.yaml
  ./configs/antwalk.yaml
  built-in defaults

Examples:
  antwalk config
  antwalk config > ~/.antwalk/config.yaml`,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	data, err := config.Marshal(appCfg)
	if err != nil {
		return err
	}
	fmt.Fprint(out, string(data))

	fmt.Fprint(out, "\n# Output formats:")
	for _, f := range export.Formats() {
		fmt.Fprintf(out, " %s", f.Name)
	}
	fmt.Fprintln(out)
	return nil
}
