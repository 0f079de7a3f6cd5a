package check

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sehadnassim/Nassim-srsran5g-simulated-rf-profile/internal/util"
	"gopkg.in/yaml.v3"
)

func init() {
	Register(func() RegisteredCheck { return &PlaybookCheck{} })
}

// PlaybookCheck verifies the role's playbook exists and is a list of plays.
type PlaybookCheck struct{}

func (pc *PlaybookCheck) Metadata() CheckMetadata {
	return CheckMetadata{
		Name:        "playbook",
		DisplayName: "Ansible playbook",
		Description: "Parses the playbook referenced by the role",
	}
}

func (pc *PlaybookCheck) Enabled(t Target) bool {
	return t.RepoRoot != ""
}

func (pc *PlaybookCheck) Validate(t Target) []ValidationError {
	rel := filepath.Join(t.Settings.PlaybookDir, t.Settings.PlaybookFile)
	path := filepath.Join(t.RepoRoot, rel)

	data, err := os.ReadFile(path)
	if err != nil {
		return []ValidationError{{
			Field:      rel,
			Message:    fmt.Sprintf("playbook not readable: %v", err),
			Suggestion: "check playbook_dir and playbook_file, or pass --repo",
		}}
	}

	var plays []map[string]any
	if err := yaml.Unmarshal([]byte(util.StripJinja2(string(data))), &plays); err != nil {
		return []ValidationError{{
			Field:      rel,
			Message:    fmt.Sprintf("not a list of plays: %v", err),
			Suggestion: "a playbook is a YAML list of plays with 'hosts'",
		}}
	}
	if len(plays) == 0 {
		return []ValidationError{{Field: rel, Message: "playbook has no plays"}}
	}

	var errs []ValidationError
	for i, play := range plays {
		_, hasHosts := play["hosts"]
		_, hasImport := play["import_playbook"]
		if !hasImport {
			_, hasImport = play["ansible.builtin.import_playbook"]
		}
		if !hasHosts && !hasImport {
			errs = append(errs, ValidationError{
				Field:      fmt.Sprintf("%s[%d]", rel, i),
				Message:    "play has neither 'hosts' nor 'import_playbook'",
				Suggestion: "add 'hosts: all' to the play",
			})
		}
	}
	return errs
}
