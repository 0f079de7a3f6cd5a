package profile

import (
	"testing"

	"github.com/sehadnassim/Nassim-srsran5g-simulated-rf-profile/internal/param"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettingsValid(t *testing.T) {
	s := DefaultSettings()
	require.NoError(t, s.Validate())
	assert.Equal(t, "single_node_oran", s.PlaybookName())
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *Settings)
	}{
		{"empty image", func(s *Settings) { s.DiskImage = "" }},
		{"blank log", func(s *Settings) { s.SetupLog = "  " }},
		{"backtick user command", func(s *Settings) { s.UserCommand = "`id -un`" }},
		{"flat namespace", func(s *Settings) { s.CollectionNamespace = "nextg_utils" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(&s)
			assert.Error(t, s.Validate())
		})
	}
}

func TestDeclareParameters(t *testing.T) {
	ctx := param.NewContext()
	require.NoError(t, DeclareParameters(ctx))

	p, ok := ctx.Lookup(ParamNodeType)
	require.True(t, ok)
	assert.Equal(t, "d430", p.Default)
	assert.True(t, p.Advanced)
	assert.Equal(t, []param.LegalValue{
		{Value: "d430", Label: "Emulab, d430"},
		{Value: "d740", Label: "Emulab, d740"},
	}, p.Legal)
}

func TestHardwareTypesIsCopy(t *testing.T) {
	hw := HardwareTypes()
	hw[0].Value = "changed"
	assert.Equal(t, "d430", HardwareTypes()[0].Value)
}

func TestTourVerbatim(t *testing.T) {
	tour := Tour()
	assert.Contains(t, tour.Description.Body, "### srsRAN 5G with Open5GS and Simulated RF")
	assert.Contains(t, tour.Instructions.Body, "sudo ip netns exec ue1 ping 10.45.0.1")
	assert.Contains(t, tour.Instructions.Body, "sudo gnb -c /etc/srsran/gnb.conf")
}
