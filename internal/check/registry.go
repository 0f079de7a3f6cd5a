package check

import "github.com/sehadnassim/Nassim-srsran5g-simulated-rf-profile/internal/profile"

// Target is the profile repository being checked.
type Target struct {
	RepoRoot string // local checkout that is mounted at Settings.RepositoryDir on the node
	Settings profile.Settings
}

// RegisteredCheck defines the interface for self-registering preflight checks.
type RegisteredCheck interface {
	Metadata() CheckMetadata
	Enabled(t Target) bool
	Validate(t Target) []ValidationError
}

// CheckMetadata describes a check for listing and reporting.
type CheckMetadata struct {
	Name        string // internal key, e.g. "playbook"
	DisplayName string // human-readable, e.g. "Ansible playbook"
	Description string // one-line description
}

// ValidationError reports a repository problem with a suggested fix.
type ValidationError struct {
	Field      string // path or setting, e.g. "ansible/single_node_oran.yml"
	Message    string // what's wrong
	Suggestion string // how to fix it
}

var registry []func() RegisteredCheck

// Register adds a check factory to the global registry.
// Each check calls this in its init().
func Register(factory func() RegisteredCheck) {
	registry = append(registry, factory)
}

// All returns fresh instances of every registered check.
func All() []RegisteredCheck {
	out := make([]RegisteredCheck, len(registry))
	for i, f := range registry {
		out[i] = f()
	}
	return out
}
