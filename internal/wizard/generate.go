package wizard

import (
	"bytes"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

// WizardAnswers holds all user responses from the wizard.
type WizardAnswers struct {
	NodeType string
	Output   string // empty for stdout
	Repo     string

	// Written under profile: only when it differs from the default
	PlaybookFile string

	LogLevel string
}

const configTemplate = `# srsran-profile configuration

{{- if .Output }}
output: {{ yamlScalar .Output }}
{{- end }}
{{- if .Repo }}
repo: {{ yamlScalar .Repo }}
{{- end }}

params:
  nodetype: {{ yamlScalar .NodeType }}

{{- if .PlaybookFile }}

profile:
  playbook_file: {{ yamlScalar .PlaybookFile }}
{{- end }}

log:
  level: {{ yamlScalar .LogLevel }}
`

// yamlScalar encodes s as a single-line YAML scalar, quoting it when needed.
func yamlScalar(s string) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	if err := enc.Encode(s); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	out := strings.TrimSuffix(buf.String(), "\n")
	if strings.Contains(out, "\n") {
		// block scalars do not fit on the key's line
		return yamlDoubleQuote(s), nil
	}
	return out, nil
}

func yamlDoubleQuote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\r", `\r`, "\t", `\t`)
	return `"` + r.Replace(s) + `"`
}

// GenerateConfig renders the YAML config from wizard answers.
func GenerateConfig(answers WizardAnswers) (string, error) {
	if answers.NodeType == "" {
		answers.NodeType = "d430"
	}
	if answers.LogLevel == "" {
		answers.LogLevel = "warn"
	}

	tmpl, err := template.New("config").Funcs(template.FuncMap{"yamlScalar": yamlScalar}).Parse(configTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, answers); err != nil {
		return "", err
	}

	return buf.String(), nil
}
