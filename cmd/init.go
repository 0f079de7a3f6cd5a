package cmd

import (
	"fmt"
	"os"

	"github.com/sehadnassim/Nassim-srsran5g-simulated-rf-profile/internal/config"
	"github.com/sehadnassim/Nassim-srsran5g-simulated-rf-profile/internal/profile"
	"github.com/sehadnassim/Nassim-srsran5g-simulated-rf-profile/internal/ui"
	"github.com/sehadnassim/Nassim-srsran5g-simulated-rf-profile/internal/wizard"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a profile.yml config file interactively",
	Long: `Look for the profile repository (the ansible/ tree and the bootstrap
submodule), ask for the node type and write profile.yml.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	configPath := "profile.yml"

	if _, err := os.Stat(configPath); err == nil {
		fmt.Fprintf(os.Stderr, "%s already exists.\n", configPath)
		fmt.Fprint(os.Stderr, "Overwrite? [y/N] ")
		var answer string
		_, _ = fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			ui.Println("Aborted.")
			return nil
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	settings := cfg.Settings()

	ui.Println(ui.Bold("Scanning for the profile repository..."))
	detection := wizard.Detect(nil, settings.PlaybookDir, settings.PlaybookFile, settings.BootstrapDir)

	answers, err := wizard.Run(detection, profile.HardwareTypes(), settings.PlaybookFile)
	if err != nil {
		return fmt.Errorf("wizard: %w", err)
	}

	content, err := wizard.GenerateConfig(*answers)
	if err != nil {
		return fmt.Errorf("generating config: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	ui.Success(fmt.Sprintf("Created %s", configPath))
	ui.Println("")
	ui.Println(fmt.Sprintf("Next step: %s", ui.Bold("srsran-profile generate > request.xml")))
	ui.Println(fmt.Sprintf("           %s", ui.Hint("or run 'srsran-profile validate' to check the repository")))

	return nil
}
