package check

import (
	"fmt"
	"os"
	"path/filepath"
)

func init() {
	Register(func() RegisteredCheck { return &BootstrapCheck{} })
}

// BootstrapCheck verifies the bootstrap head script the first startup
// service runs.
type BootstrapCheck struct{}

func (bc *BootstrapCheck) Metadata() CheckMetadata {
	return CheckMetadata{
		Name:        "bootstrap",
		DisplayName: "Ansible bootstrap",
		Description: "Checks the bootstrap submodule head script",
	}
}

func (bc *BootstrapCheck) Enabled(t Target) bool {
	return t.RepoRoot != ""
}

func (bc *BootstrapCheck) Validate(t Target) []ValidationError {
	rel := filepath.Join(t.Settings.BootstrapDir, "head.sh")
	info, err := os.Stat(filepath.Join(t.RepoRoot, rel))
	if err != nil {
		return []ValidationError{{
			Field:      rel,
			Message:    fmt.Sprintf("file not found: %s", rel),
			Suggestion: "run 'git submodule update --init' in the profile repository",
		}}
	}
	if info.IsDir() {
		return []ValidationError{{Field: rel, Message: "is a directory"}}
	}
	if info.Mode().Perm()&0o111 == 0 {
		return []ValidationError{{
			Field:      rel,
			Message:    "not executable",
			Suggestion: "chmod +x " + rel,
		}}
	}
	return nil
}
