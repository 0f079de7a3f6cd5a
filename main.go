package main

import (
	"os"

	"github.com/sehadnassim/Nassim-srsran5g-simulated-rf-profile/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
