package render

import (
	"github.com/sehadnassim/Nassim-srsran5g-simulated-rf-profile/internal/model"
)

// Renderer defines the interface for request document encoders.
type Renderer interface {
	Render(req *model.Request) ([]byte, error)
}
