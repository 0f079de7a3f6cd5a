package check

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sehadnassim/Nassim-srsran5g-simulated-rf-profile/internal/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validPlaybook = `---
- name: single node oran
  hosts: all
  become: true
  vars:
    build_5gc: "{{ srsran_project_build_5gc | default(false) }}"
  roles:
{% if open5gs %}
    - dustinmaas.nextg_utils.open5gs
{% endif %}
    - dustinmaas.nextg_utils.srsran_project
`

// writeRepo lays out a profile repository under a temp dir.
func writeRepo(t *testing.T, playbook string, headMode os.FileMode) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "ansible"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "emulab-ansible-bootstrap"), 0o755))
	if playbook != "" {
		require.NoError(t, os.WriteFile(filepath.Join(root, "ansible", "single_node_oran.yml"), []byte(playbook), 0o644))
	}
	if headMode != 0 {
		require.NoError(t, os.WriteFile(filepath.Join(root, "emulab-ansible-bootstrap", "head.sh"), []byte("#!/bin/sh\n"), headMode))
	}
	return root
}

func target(root string) Target {
	return Target{RepoRoot: root, Settings: profile.DefaultSettings()}
}

func TestRegistry(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range All() {
		names[c.Metadata().Name] = true
	}
	assert.True(t, names["playbook"])
	assert.True(t, names["bootstrap"])
	assert.True(t, names["requirements"])
}

func TestRunValidRepo(t *testing.T) {
	root := writeRepo(t, validPlaybook, 0o755)

	results, err := Run(target(root))
	require.NoError(t, err)

	var ran, skipped int
	for _, r := range results {
		if r.Skipped {
			skipped++
			continue
		}
		assert.True(t, r.OK(), "%s: %v", r.Name, r.Errors)
		ran++
	}
	assert.Equal(t, 2, ran)
	assert.Equal(t, 1, skipped) // no requirements.yml
}

func TestRunMissingFiles(t *testing.T) {
	root := writeRepo(t, "", 0)

	_, err := Run(target(root))
	require.Error(t, err)

	var cerr *CheckError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, 2, cerr.Count)
	assert.ElementsMatch(t, []string{"playbook", "bootstrap"}, cerr.Failed)
}

func TestRunNoRepoSkipsAll(t *testing.T) {
	results, err := Run(target(""))
	require.NoError(t, err)
	for _, r := range results {
		assert.True(t, r.Skipped)
	}
}

func TestPlaybookCheck(t *testing.T) {
	tests := []struct {
		name     string
		playbook string
		wantErrs int
	}{
		{"valid with jinja", validPlaybook, 0},
		{"import only", "- import_playbook: other.yml\n", 0},
		{"fqcn import", "- ansible.builtin.import_playbook: other.yml\n", 0},
		{"mapping", "hosts: all\n", 1},
		{"empty list", "[]\n", 1},
		{"play without hosts", "- name: a\n  hosts: all\n- name: b\n  tasks: []\n", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := writeRepo(t, tt.playbook, 0o755)
			errs := (&PlaybookCheck{}).Validate(target(root))
			assert.Len(t, errs, tt.wantErrs)
		})
	}
}

func TestBootstrapNotExecutable(t *testing.T) {
	root := writeRepo(t, validPlaybook, 0o644)
	errs := (&BootstrapCheck{}).Validate(target(root))
	require.Len(t, errs, 1)
	assert.Equal(t, "not executable", errs[0].Message)
	assert.Contains(t, errs[0].Suggestion, "chmod +x")
}

func TestRequirementsCheck(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantErrs int
	}{
		{"collections", "collections:\n  - name: community.general\n", 0},
		{"roles", "roles:\n  - name: geerlingguy.docker\n", 0},
		{"legacy list", "- src: geerlingguy.docker\n", 0},
		{"empty mapping", "other: 1\n", 1},
		{"bad yaml", "collections: [\n", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := writeRepo(t, validPlaybook, 0o755)
			require.NoError(t, os.WriteFile(filepath.Join(root, "ansible", "requirements.yml"), []byte(tt.content), 0o644))

			rc := &RequirementsCheck{}
			require.True(t, rc.Enabled(target(root)))
			assert.Len(t, rc.Validate(target(root)), tt.wantErrs)
		})
	}
}
