package cmd

import (
	"fmt"

	"github.com/sehadnassim/Nassim-srsran5g-simulated-rf-profile/internal/param"
	"github.com/sehadnassim/Nassim-srsran5g-simulated-rf-profile/internal/profile"
	"github.com/spf13/cobra"
)

var paramsFormat string

var paramsCmd = &cobra.Command{
	Use:   "params",
	Short: "Print the profile's parameter definitions",
	Long: `Print every declared parameter with its type, default and legal values,
in the JSON shape the portal reads when it builds the parameter form.`,
	RunE: runParams,
}

func init() {
	rootCmd.AddCommand(paramsCmd)
	paramsCmd.Flags().StringVar(&paramsFormat, "format", "json", "output format: json, yaml")
}

func runParams(cmd *cobra.Command, args []string) error {
	ctx := param.NewContext()
	if err := profile.DeclareParameters(ctx); err != nil {
		return err
	}

	var out []byte
	var err error
	switch paramsFormat {
	case "json":
		out, err = ctx.DumpJSON()
	case "yaml", "yml":
		out, err = ctx.DumpYAML()
	default:
		return fmt.Errorf("unknown format %q: use json or yaml", paramsFormat)
	}
	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(out)
	return err
}
