// Package profile builds the request for the single-node srsRAN/Open5GS
// simulated-RF experiment.
package profile

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

// Settings are the fixed values the request is built from. They are
// resolved once at startup and passed by value to the Builder.
type Settings struct {
	NodeName  string
	DiskImage string

	RoleName     string
	PlaybookDir  string
	PlaybookFile string

	OverrideKey   string
	OverrideValue string

	RepositoryDir    string
	BootstrapDir     string
	SetupLog         string
	AnsibleVenv      string
	AutomationScript string

	CollectionsDir      string
	CollectionNamespace string
	CollectionRepo      string

	// UserCommand prints the experiment owner's local account name on the node.
	UserCommand string
}

// DefaultSettings returns the values the provisioning environment expects.
func DefaultSettings() Settings {
	return Settings{
		NodeName:  "node",
		DiskImage: "urn:publicid:IDN+emulab.net+image+emulab-ops//UBUNTU22-64-STD",

		RoleName:     "single_node_oran",
		PlaybookDir:  "ansible",
		PlaybookFile: "single_node_oran.yml",

		OverrideKey:   "srsran_project_build_5gc",
		OverrideValue: "true",

		RepositoryDir:    "/local/repository",
		BootstrapDir:     "emulab-ansible-bootstrap",
		SetupLog:         "/local/logs/setup.log",
		AnsibleVenv:      "/local/setup/venv/default/bin",
		AutomationScript: "/local/setup/ansible/run-automation.sh",

		CollectionsDir:      "~/.ansible/collections/ansible_collections",
		CollectionNamespace: "dustinmaas/nextg_utils",
		CollectionRepo:      "git+https://gitlab.flux.utah.edu/dmaas/ansible-nextg",

		UserCommand: "geni-get user_urn | cut -f4 -d+",
	}
}

// PlaybookName is the logical playbook name, the file name without extension.
func (s Settings) PlaybookName() string {
	return strings.TrimSuffix(s.PlaybookFile, path.Ext(s.PlaybookFile))
}

// Validate reports empty fields and values that cannot be embedded in the
// startup commands.
func (s Settings) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"node_name", s.NodeName},
		{"disk_image", s.DiskImage},
		{"role_name", s.RoleName},
		{"playbook_dir", s.PlaybookDir},
		{"playbook_file", s.PlaybookFile},
		{"override_key", s.OverrideKey},
		{"repository_dir", s.RepositoryDir},
		{"bootstrap_dir", s.BootstrapDir},
		{"setup_log", s.SetupLog},
		{"ansible_venv", s.AnsibleVenv},
		{"automation_script", s.AutomationScript},
		{"collections_dir", s.CollectionsDir},
		{"collection_namespace", s.CollectionNamespace},
		{"collection_repo", s.CollectionRepo},
		{"user_command", s.UserCommand},
	}

	var errs []error
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs = append(errs, fmt.Errorf("settings: %s must not be empty", r.field))
		}
	}
	if strings.Contains(s.UserCommand, "`") {
		errs = append(errs, fmt.Errorf("settings: user_command must not contain backticks"))
	}
	if strings.Count(s.CollectionNamespace, "/") != 1 {
		errs = append(errs, fmt.Errorf("settings: collection_namespace %q must be <namespace>/<name>", s.CollectionNamespace))
	}
	return errors.Join(errs...)
}
