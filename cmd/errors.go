package cmd

import (
	"errors"

	"github.com/sehadnassim/Nassim-srsran5g-simulated-rf-profile/internal/param"
	"github.com/sehadnassim/Nassim-srsran5g-simulated-rf-profile/internal/profile"
	"github.com/sehadnassim/Nassim-srsran5g-simulated-rf-profile/internal/ui"
)

// reportBuildError prints a build failure, one entry per parameter problem.
func reportBuildError(err error) {
	var berr *profile.BuildError
	if !errors.As(err, &berr) {
		ui.Error("Build failed", err.Error(), "")
		return
	}

	if berr.Stage == profile.StageParametersBound {
		ui.Println(ui.Bold("Invalid parameters:"))
		for _, e := range unjoin(berr.Err) {
			var perr *param.Error
			if errors.As(e, &perr) {
				ui.ValidationErr(perr.Parameter, perr.Message, perr.Suggestion)
			} else {
				ui.ValidationErr("parameters", e.Error(), "")
			}
		}
		return
	}

	ui.Error("Build failed", berr.Error(), "")
}

// unjoin splits an errors.Join result into its parts.
func unjoin(err error) []error {
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		return j.Unwrap()
	}
	return []error{err}
}
