package profile

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/sehadnassim/Nassim-srsran5g-simulated-rf-profile/internal/util"
)

// Startup command names, in the order they must run on the node.
const (
	CommandBootstrap           = "bootstrap"
	CommandCollectionInstall   = "collection-install"
	CommandRequirementsInstall = "requirements-install"
	CommandAutomationRun       = "automation-run"
)

// StartupCommand is a rendered shell command for the node's service list.
type StartupCommand struct {
	Name    string
	Command string
}

const asUserTemplate = "sudo -u `{{ .UserCommand }}` -Hi /bin/sh -c {{ squote .Inner }}"

var commandTemplates = []struct {
	name   string
	asUser bool
	text   string
}{
	{
		name:   CommandBootstrap,
		asUser: true,
		text:   `EMULAB_ANSIBLE_NOAUTO=1 {{ .RepositoryDir }}/{{ .BootstrapDir }}/head.sh >{{ .SetupLog }} 2>&1`,
	},
	{
		name: CommandCollectionInstall,
		text: `{{ .AnsibleVenv }}/ansible-galaxy collection install {{ .CollectionRepo }} >> {{ .SetupLog }} 2>&1`,
	},
	{
		name: CommandRequirementsInstall,
		text: `{{ .AnsibleVenv }}/ansible-galaxy install -r {{ .CollectionsDir }}/{{ .CollectionNamespace }}/requirements.yml >> {{ .SetupLog }} 2>&1`,
	},
	{
		name:   CommandAutomationRun,
		asUser: true,
		text:   `{{ .AutomationScript }} >> {{ .SetupLog }} 2>&1`,
	},
}

var funcs = template.FuncMap{"squote": util.SingleQuote}

var asUser = template.Must(template.New("as-user").Funcs(funcs).Parse(asUserTemplate))

// Commands renders the four startup commands from s. The order is fixed:
// each step needs the filesystem state left by the one before it.
func Commands(s Settings) ([]StartupCommand, error) {
	out := make([]StartupCommand, 0, len(commandTemplates))
	for _, ct := range commandTemplates {
		tmpl, err := template.New(ct.name).Option("missingkey=error").Parse(ct.text)
		if err != nil {
			return nil, fmt.Errorf("parsing %s command: %w", ct.name, err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, s); err != nil {
			return nil, fmt.Errorf("rendering %s command: %w", ct.name, err)
		}
		cmd := buf.String()

		if ct.asUser {
			buf.Reset()
			data := struct {
				UserCommand string
				Inner       string
			}{s.UserCommand, cmd}
			if err := asUser.Execute(&buf, data); err != nil {
				return nil, fmt.Errorf("rendering %s command: %w", ct.name, err)
			}
			cmd = buf.String()
		}

		out = append(out, StartupCommand{Name: ct.name, Command: cmd})
	}
	return out, nil
}
