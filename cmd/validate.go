package cmd

import (
	"errors"
	"fmt"

	"github.com/sehadnassim/Nassim-srsran5g-simulated-rf-profile/internal/check"
	"github.com/sehadnassim/Nassim-srsran5g-simulated-rf-profile/internal/config"
	"github.com/sehadnassim/Nassim-srsran5g-simulated-rf-profile/internal/param"
	"github.com/sehadnassim/Nassim-srsran5g-simulated-rf-profile/internal/profile"
	"github.com/sehadnassim/Nassim-srsran5g-simulated-rf-profile/internal/ui"
	"github.com/spf13/cobra"
)

var repoDir string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate parameters, settings and the profile repository",
	Long: `Check that the parameter bindings are legal, the settings can be
rendered into startup commands, and, with --repo, that the playbook and
bootstrap files the node will run exist in the profile repository.`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVar(&repoDir, "repo", "", "profile repository checkout to check")
	validateCmd.Flags().StringVar(&nodeType, "nodetype", "", "node hardware type: d430, d740")
	validateCmd.Flags().StringVar(&bindingsFile, "bindings", "", "JSON file of parameter bindings")
	validateCmd.Flags().StringToStringVarP(&paramFlags, "param", "p", nil, "parameter binding name=value (repeatable)")
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		ui.Error("Failed to load config", err.Error(), "run 'srsran-profile init' to create a config file")
		return err
	}
	applyFlagOverrides(cfg)
	if repoDir != "" {
		cfg.Repo = repoDir
	}

	ui.Println(ui.Bold("Validating profile..."))

	passed := 0
	failed := 0

	settings := cfg.Settings()
	if err := settings.Validate(); err != nil {
		for _, e := range unjoin(err) {
			ui.ValidationErr("profile", e.Error(), "")
			failed++
		}
	} else {
		ui.ValidationOK("profile", "settings valid")
		passed++
	}

	raw, err := collectBindings(cfg)
	if err != nil {
		ui.ValidationErr("bindings", err.Error(), "")
		failed++
	} else {
		n, bad := validateParameters(raw)
		passed += n
		failed += bad
	}

	results, _ := check.Run(check.Target{RepoRoot: cfg.Repo, Settings: settings})
	for _, r := range results {
		switch {
		case r.Skipped:
			ui.CheckSkipped(r.Name)
		case r.OK():
			ui.ValidationOK(r.Name, "ok")
			passed++
		default:
			for _, ve := range r.Errors {
				ui.ValidationErr(ve.Field, ve.Message, ve.Suggestion)
				failed++
			}
		}
	}

	ui.Println("")
	if failed == 0 {
		ui.Success(fmt.Sprintf("%d checks passed, 0 errors", passed))
		return nil
	}
	ui.Println(fmt.Sprintf("%d checks passed, %d errors", passed, failed))
	return fmt.Errorf("%d validation errors", failed)
}

// validateParameters binds raw input and reports each parameter.
func validateParameters(raw map[string]string) (passed, failed int) {
	ctx := param.NewContext()
	if err := profile.DeclareParameters(ctx); err != nil {
		ui.ValidationErr("parameters", err.Error(), "")
		return 0, 1
	}

	vals := ctx.Bind(raw)
	bad := make(map[string]bool)
	for _, e := range ctx.Errors() {
		var perr *param.Error
		if errors.As(e, &perr) {
			ui.ValidationErr("params."+perr.Parameter, perr.Message, perr.Suggestion)
			bad[perr.Parameter] = true
		} else {
			ui.ValidationErr("parameters", e.Error(), "")
		}
		failed++
	}

	for _, p := range ctx.Parameters() {
		if bad[p.Name] {
			continue
		}
		v, _ := vals.String(p.Name)
		ui.ValidationOK("params."+p.Name, v)
		passed++
	}
	return passed, failed
}
