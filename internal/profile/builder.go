package profile

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/sehadnassim/Nassim-srsran5g-simulated-rf-profile/internal/model"
	"github.com/sehadnassim/Nassim-srsran5g-simulated-rf-profile/internal/param"
	"github.com/sehadnassim/Nassim-srsran5g-simulated-rf-profile/internal/render"
)

// Stage is a step of a build. Builds move through the stages in order and
// stop at StageEmitted or StageFailed.
type Stage int

const (
	StageStart Stage = iota
	StageParametersDeclared
	StageParametersBound
	StageTopologyBuilt
	StageServicesAttached
	StageTourAttached
	StageEmitted
	StageFailed
)

var stageNames = map[Stage]string{
	StageStart:              "start",
	StageParametersDeclared: "parameters-declared",
	StageParametersBound:    "parameters-bound",
	StageTopologyBuilt:      "topology-built",
	StageServicesAttached:   "services-attached",
	StageTourAttached:       "tour-attached",
	StageEmitted:            "emitted",
	StageFailed:             "failed",
}

var stageActions = map[Stage]string{
	StageStart:              "checking settings",
	StageParametersDeclared: "declaring parameters",
	StageParametersBound:    "binding parameters",
	StageTopologyBuilt:      "building topology",
	StageServicesAttached:   "attaching startup services",
	StageTourAttached:       "attaching tour",
	StageEmitted:            "emitting request",
}

func (s Stage) String() string {
	if n, ok := stageNames[s]; ok {
		return n
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

func (s Stage) action() string {
	if a, ok := stageActions[s]; ok {
		return a
	}
	return s.String()
}

// Builder turns parameter input into a request document.
type Builder struct {
	Settings Settings
	Renderer render.Renderer
	Logger   *slog.Logger

	stage Stage
}

// NewBuilder returns a builder that renders indented XML.
func NewBuilder(s Settings, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Builder{
		Settings: s,
		Renderer: &render.XMLRenderer{Indent: "  "},
		Logger:   logger,
	}
}

// Stage returns the last stage the builder reached.
func (b *Builder) Stage() Stage {
	return b.stage
}

func (b *Builder) advance(s Stage) {
	b.stage = s
	b.Logger.Debug("build stage reached", "stage", s.String())
}

// fail records the failure of the step that would have reached next.
func (b *Builder) fail(next Stage, err error) error {
	b.stage = StageFailed
	b.Logger.Debug("build failed", "stage", next.String(), "error", err)
	return &BuildError{Stage: next, Err: err}
}

// Build binds raw parameter input and assembles the request. No request is
// returned unless every step succeeded.
func (b *Builder) Build(raw map[string]string) (*model.Request, error) {
	b.stage = StageStart
	s := b.Settings

	if err := s.Validate(); err != nil {
		return nil, b.fail(StageStart, err)
	}

	ctx := param.NewContext()
	if err := DeclareParameters(ctx); err != nil {
		return nil, b.fail(StageParametersDeclared, err)
	}
	b.advance(StageParametersDeclared)

	vals := ctx.Bind(raw)
	if err := ctx.Verify(); err != nil {
		return nil, b.fail(StageParametersBound, err)
	}
	nodeType, err := vals.String(ParamNodeType)
	if err != nil {
		return nil, b.fail(StageParametersBound, err)
	}
	b.advance(StageParametersBound)
	b.Logger.Debug("parameters bound", "values", vals.Map())

	req := model.NewRequest()
	role := &model.Role{
		Name: s.RoleName,
		Path: s.PlaybookDir,
		Playbooks: []model.Playbook{
			{Name: s.PlaybookName(), Path: s.PlaybookFile},
		},
	}
	if err := req.AddRole(role); err != nil {
		return nil, b.fail(StageTopologyBuilt, err)
	}
	req.AddOverride(model.Override{Name: s.OverrideKey, Value: s.OverrideValue})

	node := req.RawPC(s.NodeName)
	node.HardwareType = nodeType
	node.DiskImage = s.DiskImage
	node.BindRole(model.RoleBinding{Role: s.RoleName})
	b.advance(StageTopologyBuilt)

	cmds, err := Commands(s)
	if err != nil {
		return nil, b.fail(StageServicesAttached, err)
	}
	for _, c := range cmds {
		node.AddService(model.Execute{Shell: model.ShellSh, Command: c.Command})
		b.Logger.Debug("startup service attached", "name", c.Name)
	}
	b.advance(StageServicesAttached)

	req.SetTour(Tour())
	b.advance(StageTourAttached)

	if err := req.Validate(); err != nil {
		return nil, b.fail(StageEmitted, err)
	}

	return req, nil
}

// Emit builds the request, renders it completely in memory and writes it to
// w in a single call, so a failure never leaves a partial document.
func (b *Builder) Emit(w io.Writer, raw map[string]string) error {
	req, err := b.Build(raw)
	if err != nil {
		return err
	}

	out, err := b.Renderer.Render(req)
	if err != nil {
		return b.fail(StageEmitted, err)
	}
	if _, err := w.Write(out); err != nil {
		return b.fail(StageEmitted, err)
	}

	b.advance(StageEmitted)
	b.Logger.Info("request emitted", "bytes", len(out))
	return nil
}
