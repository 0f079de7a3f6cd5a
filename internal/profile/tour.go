package profile

import (
	_ "embed"

	"github.com/sehadnassim/Nassim-srsran5g-simulated-rf-profile/internal/model"
)

//go:embed tour/description.md
var tourDescription string

//go:embed tour/instructions.md
var tourInstructions string

// Tour returns the experiment overview and post-provisioning instructions.
func Tour() *model.Tour {
	return model.NewMarkdownTour(tourDescription, tourInstructions)
}
