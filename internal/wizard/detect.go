package wizard

import (
	"os"
	"path/filepath"
)

// DetectionResult holds what was found in the working directory.
type DetectionResult struct {
	RepoRoot     string // directory holding the profile repository, empty if not found
	Playbook     string // playbook path relative to RepoRoot
	Bootstrap    bool   // bootstrap submodule checked out
	Requirements bool   // local requirements.yml present
}

// Detector abstracts filesystem lookups for testing.
type Detector interface {
	Stat(path string) (os.FileInfo, error)
	Glob(pattern string) ([]string, error)
}

// OSDetector uses the real OS for detection.
type OSDetector struct{}

func (OSDetector) Stat(path string) (os.FileInfo, error) { return os.Stat(path) }
func (OSDetector) Glob(pattern string) ([]string, error) { return filepath.Glob(pattern) }

// Detect looks for a profile repository in the working directory or its parent.
// The playbook named playbookFile wins when present; any other *.yml in
// playbookDir is only used when it is missing.
func Detect(d Detector, playbookDir, playbookFile, bootstrapDir string) DetectionResult {
	if d == nil {
		d = OSDetector{}
	}

	result := DetectionResult{}

	for _, root := range []string{".", ".."} {
		info, err := d.Stat(filepath.Join(root, playbookDir))
		if err != nil || !info.IsDir() {
			continue
		}
		result.RepoRoot = root

		if playbookFile != "" {
			if info, err := d.Stat(filepath.Join(root, playbookDir, playbookFile)); err == nil && !info.IsDir() {
				result.Playbook = filepath.Join(playbookDir, playbookFile)
			}
		}

		matches, _ := d.Glob(filepath.Join(root, playbookDir, "*.yml"))
		for _, m := range matches {
			if filepath.Base(m) == "requirements.yml" {
				result.Requirements = true
				continue
			}
			if result.Playbook == "" {
				if rel, err := filepath.Rel(root, m); err == nil {
					result.Playbook = rel
				}
			}
		}
		break
	}

	if result.RepoRoot != "" {
		if _, err := d.Stat(filepath.Join(result.RepoRoot, bootstrapDir, "head.sh")); err == nil {
			result.Bootstrap = true
		}
	}

	return result
}
