package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/sehadnassim/Nassim-srsran5g-simulated-rf-profile/internal/config"
	"github.com/sehadnassim/Nassim-srsran5g-simulated-rf-profile/internal/param"
	"github.com/sehadnassim/Nassim-srsran5g-simulated-rf-profile/internal/profile"
	"github.com/sehadnassim/Nassim-srsran5g-simulated-rf-profile/internal/ui"
	"github.com/spf13/cobra"
)

var (
	outputFile   string
	nodeType     string
	bindingsFile string
	paramFlags   map[string]string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Build the request RSpec and write it to stdout",
	Long: `Bind the profile parameters, build the request (one node, one Ansible
role, the build-5GC override, four startup services and the tour) and write
the RSpec to stdout or to --output.

Parameter precedence, lowest first: config file, --bindings file, --param,
--nodetype.`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default: stdout)")
	generateCmd.Flags().StringVar(&nodeType, "nodetype", "", "node hardware type: d430, d740")
	generateCmd.Flags().StringVar(&bindingsFile, "bindings", "", "JSON file of parameter bindings")
	generateCmd.Flags().StringToStringVarP(&paramFlags, "param", "p", nil, "parameter binding name=value (repeatable)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		ui.Error("Failed to load config", err.Error(), "run 'srsran-profile init' to create a config file")
		return err
	}

	applyFlagOverrides(cfg)

	raw, err := collectBindings(cfg)
	if err != nil {
		ui.Error("Failed to read parameter bindings", err.Error(), "")
		return err
	}

	b := profile.NewBuilder(cfg.Settings(), logger)

	if cfg.Output == "" || cfg.Output == "-" {
		return emit(b, cmd.OutOrStdout(), raw)
	}

	var buf bytes.Buffer
	if err := emit(b, &buf, raw); err != nil {
		return err
	}
	if err := os.WriteFile(cfg.Output, buf.Bytes(), 0644); err != nil {
		ui.Error("Failed to write output", err.Error(), "")
		return err
	}
	ui.Success(fmt.Sprintf("Generated %s", cfg.Output))
	return nil
}

func emit(b *profile.Builder, w io.Writer, raw map[string]string) error {
	if err := b.Emit(w, raw); err != nil {
		reportBuildError(err)
		return err
	}
	return nil
}

func applyFlagOverrides(cfg *config.Config) {
	if outputFile != "" {
		cfg.Output = outputFile
	}
	if bindingsFile != "" {
		cfg.Bindings = bindingsFile
	}
}

// collectBindings merges parameter input in precedence order.
func collectBindings(cfg *config.Config) (map[string]string, error) {
	raw := make(map[string]string)
	for k, v := range cfg.Params {
		raw[k] = v
	}

	if cfg.Bindings != "" {
		fromFile, err := param.LoadBindings(cfg.Bindings)
		if err != nil {
			return nil, err
		}
		for k, v := range fromFile {
			raw[k] = v
		}
	}

	for k, v := range paramFlags {
		raw[k] = v
	}
	if nodeType != "" {
		raw[profile.ParamNodeType] = nodeType
	}
	return raw, nil
}
