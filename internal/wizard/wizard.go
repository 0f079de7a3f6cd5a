package wizard

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/sehadnassim/Nassim-srsran5g-simulated-rf-profile/internal/param"
)

// Run executes the interactive wizard and returns the user's answers.
func Run(detection DetectionResult, nodeTypes []param.LegalValue, defaultPlaybook string) (*WizardAnswers, error) {
	answers := &WizardAnswers{
		Repo:     detection.RepoRoot,
		LogLevel: "warn",
	}
	if len(nodeTypes) > 0 {
		answers.NodeType = nodeTypes[0].Value
	}

	var hints []string
	if detection.RepoRoot != "" {
		hints = append(hints, fmt.Sprintf("Profile repository found: %s", detection.RepoRoot))
	}
	if detection.Playbook != "" {
		hints = append(hints, fmt.Sprintf("Playbook found: %s", detection.Playbook))
	}
	if detection.RepoRoot != "" && !detection.Bootstrap {
		hints = append(hints, "Bootstrap submodule missing (git submodule update --init)")
	}

	desc := "Pick the hardware for the experiment node."
	if len(hints) > 0 {
		desc += "\n\nAuto-detected:\n  " + strings.Join(hints, "\n  ")
	}

	options := make([]huh.Option[string], len(nodeTypes))
	for i, nt := range nodeTypes {
		options[i] = huh.NewOption(nt.Label, nt.Value)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Node type").
				Description(desc).
				Options(options...).
				Value(&answers.NodeType),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Profile repository path").
				Description("Used by 'validate' to check the playbook and bootstrap files").
				Value(&answers.Repo),
			huh.NewInput().
				Title("Output file (optional)").
				Description("Leave empty to write the request to stdout").
				Value(&answers.Output),
			huh.NewSelect[string]().
				Title("Log level").
				Options(
					huh.NewOption("Warnings and errors", "warn"),
					huh.NewOption("Info", "info"),
					huh.NewOption("Debug - every build stage", "debug"),
				).
				Value(&answers.LogLevel),
		),
	)

	if err := form.Run(); err != nil {
		return nil, err
	}

	if pb := filepath.Base(detection.Playbook); detection.Playbook != "" && pb != defaultPlaybook {
		answers.PlaybookFile = pb
	}

	return answers, nil
}
