package profile

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/sehadnassim/Nassim-srsran5g-simulated-rf-profile/internal/model"
	"github.com/sehadnassim/Nassim-srsran5g-simulated-rf-profile/internal/param"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ubuntuImage = "urn:publicid:IDN+emulab.net+image+emulab-ops//UBUNTU22-64-STD"

func TestBuildLegalNodeTypes(t *testing.T) {
	for _, hw := range HardwareTypes() {
		t.Run(hw.Value, func(t *testing.T) {
			b := NewBuilder(DefaultSettings(), nil)
			req, err := b.Build(map[string]string{ParamNodeType: hw.Value})
			require.NoError(t, err)
			require.Len(t, req.Nodes, 1)
			assert.Equal(t, hw.Value, req.Nodes[0].HardwareType)
			assert.Equal(t, StageTourAttached, b.Stage())
		})
	}
}

func TestBuildShape(t *testing.T) {
	req, err := NewBuilder(DefaultSettings(), nil).Build(nil)
	require.NoError(t, err)

	require.Len(t, req.Nodes, 1)
	require.Len(t, req.Roles, 1)
	require.Len(t, req.Overrides, 1)
	assert.Equal(t, model.Override{Name: "srsran_project_build_5gc", Value: "true"}, req.Overrides[0])

	role := req.Roles[0]
	assert.Equal(t, "single_node_oran", role.Name)
	assert.Equal(t, "ansible", role.Path)
	assert.Equal(t, []model.Playbook{{Name: "single_node_oran", Path: "single_node_oran.yml"}}, role.Playbooks)

	node := req.Nodes[0]
	assert.Equal(t, "node", node.ClientID)
	assert.Equal(t, ubuntuImage, node.DiskImage)
	require.NotNil(t, node.RoleBinding)
	assert.Equal(t, "single_node_oran", node.RoleBinding.Role)

	require.NotNil(t, req.Tour)
	assert.NotEmpty(t, strings.TrimSpace(req.Tour.Description.Body))
	assert.NotEmpty(t, strings.TrimSpace(req.Tour.Instructions.Body))
}

func TestBuildServiceOrder(t *testing.T) {
	req, err := NewBuilder(DefaultSettings(), nil).Build(nil)
	require.NoError(t, err)

	svcs := req.Nodes[0].Services
	require.Len(t, svcs, 4)
	for _, svc := range svcs {
		assert.Equal(t, model.ShellSh, svc.Shell)
	}
	assert.Contains(t, svcs[0].Command, "emulab-ansible-bootstrap/head.sh")
	assert.Contains(t, svcs[1].Command, "ansible-galaxy collection install")
	assert.Contains(t, svcs[2].Command, "ansible-galaxy install -r")
	assert.Contains(t, svcs[3].Command, "run-automation.sh")
}

func TestBuildDefaultNodeType(t *testing.T) {
	req, err := NewBuilder(DefaultSettings(), nil).Build(nil)
	require.NoError(t, err)
	assert.Equal(t, HardwareTypes()[0].Value, req.Nodes[0].HardwareType)
	assert.Equal(t, "d430", req.Nodes[0].HardwareType)
}

func TestBuildD740DiffersOnlyInHardware(t *testing.T) {
	def, err := NewBuilder(DefaultSettings(), nil).Build(nil)
	require.NoError(t, err)
	d740, err := NewBuilder(DefaultSettings(), nil).Build(map[string]string{ParamNodeType: "d740"})
	require.NoError(t, err)

	assert.Equal(t, "d740", d740.Nodes[0].HardwareType)
	assert.Equal(t, ubuntuImage, d740.Nodes[0].DiskImage)

	diff := cmp.Diff(def, d740, cmpopts.IgnoreFields(model.Node{}, "HardwareType"))
	assert.Empty(t, diff)
}

func TestBuildIllegalNodeType(t *testing.T) {
	b := NewBuilder(DefaultSettings(), nil)
	req, err := b.Build(map[string]string{ParamNodeType: "m400"})
	require.Error(t, err)
	assert.Nil(t, req)
	assert.Equal(t, StageFailed, b.Stage())

	var berr *BuildError
	require.True(t, errors.As(err, &berr))
	assert.Equal(t, StageParametersBound, berr.Stage)
	assert.ErrorIs(t, err, param.ErrInvalidValue)
	assert.Contains(t, err.Error(), "binding parameters")
}

func TestBuildBadSettings(t *testing.T) {
	s := DefaultSettings()
	s.DiskImage = ""

	b := NewBuilder(s, nil)
	_, err := b.Build(nil)
	require.Error(t, err)

	var berr *BuildError
	require.True(t, errors.As(err, &berr))
	assert.Equal(t, StageStart, berr.Stage)
}

func TestBuildInvalidNodeName(t *testing.T) {
	s := DefaultSettings()
	s.NodeName = "not valid"

	_, err := NewBuilder(s, nil).Build(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidRequest)
}

func TestEmitDeterministic(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, NewBuilder(DefaultSettings(), nil).Emit(&a, map[string]string{ParamNodeType: "d740"}))
	require.NoError(t, NewBuilder(DefaultSettings(), nil).Emit(&b, map[string]string{ParamNodeType: "d740"}))
	assert.Equal(t, a.Bytes(), b.Bytes())
	assert.Contains(t, a.String(), `<hardware_type name="d740"></hardware_type>`)
}

func TestEmitStage(t *testing.T) {
	b := NewBuilder(DefaultSettings(), nil)
	var out bytes.Buffer
	require.NoError(t, b.Emit(&out, nil))
	assert.Equal(t, StageEmitted, b.Stage())
	assert.Equal(t, 1, strings.Count(out.String(), "<?xml"))
}

func TestEmitFailureWritesNothing(t *testing.T) {
	var out bytes.Buffer
	err := NewBuilder(DefaultSettings(), nil).Emit(&out, map[string]string{ParamNodeType: "bogus"})
	require.Error(t, err)
	assert.Zero(t, out.Len())
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("closed") }

func TestEmitWriteError(t *testing.T) {
	b := NewBuilder(DefaultSettings(), nil)
	err := b.Emit(failingWriter{}, nil)
	require.Error(t, err)

	var berr *BuildError
	require.True(t, errors.As(err, &berr))
	assert.Equal(t, StageEmitted, berr.Stage)
	assert.Equal(t, StageFailed, b.Stage())
}

func TestStageString(t *testing.T) {
	assert.Equal(t, "parameters-bound", StageParametersBound.String())
	assert.Equal(t, "stage(42)", Stage(42).String())
}

func TestBuildLogsBoundValues(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := NewBuilder(DefaultSettings(), logger).Build(map[string]string{ParamNodeType: "d740"})
	require.NoError(t, err)

	var bound string
	for _, line := range strings.Split(logs.String(), "\n") {
		if strings.Contains(line, `"msg":"parameters bound"`) {
			bound = line
		}
	}
	require.NotEmpty(t, bound, logs.String())
	assert.Contains(t, bound, `"values":{"nodetype":"d740"}`)
}
