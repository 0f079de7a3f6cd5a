package check

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

func init() {
	Register(func() RegisteredCheck { return &RequirementsCheck{} })
}

// RequirementsCheck parses an optional requirements.yml next to the playbook.
type RequirementsCheck struct{}

type requirementsFile struct {
	Collections []any `yaml:"collections"`
	Roles       []any `yaml:"roles"`
}

func (rc *RequirementsCheck) Metadata() CheckMetadata {
	return CheckMetadata{
		Name:        "requirements",
		DisplayName: "Galaxy requirements",
		Description: "Parses the local requirements.yml, when present",
	}
}

func (rc *RequirementsCheck) path(t Target) string {
	return filepath.Join(t.RepoRoot, t.Settings.PlaybookDir, "requirements.yml")
}

func (rc *RequirementsCheck) Enabled(t Target) bool {
	if t.RepoRoot == "" {
		return false
	}
	_, err := os.Stat(rc.path(t))
	return err == nil
}

func (rc *RequirementsCheck) Validate(t Target) []ValidationError {
	rel := filepath.Join(t.Settings.PlaybookDir, "requirements.yml")
	data, err := os.ReadFile(rc.path(t))
	if err != nil {
		return []ValidationError{{Field: rel, Message: err.Error()}}
	}

	// The legacy format is a bare list of roles.
	var legacy []any
	if err := yaml.Unmarshal(data, &legacy); err == nil && len(legacy) > 0 {
		return nil
	}

	var req requirementsFile
	if err := yaml.Unmarshal(data, &req); err != nil {
		return []ValidationError{{
			Field:      rel,
			Message:    fmt.Sprintf("invalid YAML: %v", err),
			Suggestion: "see 'ansible-galaxy install -r' for the file format",
		}}
	}
	if len(req.Collections) == 0 && len(req.Roles) == 0 {
		return []ValidationError{{
			Field:      rel,
			Message:    "declares neither collections nor roles",
			Suggestion: "remove the file or list the collections the playbook needs",
		}}
	}
	return nil
}
