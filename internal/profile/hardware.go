package profile

import (
	"github.com/sehadnassim/Nassim-srsran5g-simulated-rf-profile/internal/param"
)

// ParamNodeType is the name of the node hardware type parameter.
const ParamNodeType = "nodetype"

var hardwareTypes = []param.LegalValue{
	{Value: "d430", Label: "Emulab, d430"},
	{Value: "d740", Label: "Emulab, d740"},
}

// HardwareTypes returns the node types this profile can run on. The first
// entry is the default.
func HardwareTypes() []param.LegalValue {
	out := make([]param.LegalValue, len(hardwareTypes))
	copy(out, hardwareTypes)
	return out
}

// DeclareParameters registers the profile's parameters on ctx.
func DeclareParameters(ctx *param.Context) error {
	return ctx.Define(param.Parameter{
		Name:        ParamNodeType,
		Description: "Type of compute node to used.",
		Type:        param.TypeString,
		Default:     hardwareTypes[0].Value,
		Legal:       HardwareTypes(),
		Advanced:    true,
	})
}
