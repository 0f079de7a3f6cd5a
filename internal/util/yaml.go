package util

import "regexp"

var (
	jinjaVarPattern   = regexp.MustCompile(`\{\{[^}]*\}\}`)
	jinjaBlockPattern = regexp.MustCompile(`\{%-?[^%]*-?%\}|\{#[^#]*#\}`)
)

// StripJinja2 replaces Jinja2 {{ var }} expressions with a placeholder value
// and drops {% block %} and {# comment #} tags so playbooks and templates can
// be parsed by a standard YAML parser.
func StripJinja2(content string) string {
	content = jinjaBlockPattern.ReplaceAllString(content, "")
	return jinjaVarPattern.ReplaceAllString(content, "PLACEHOLDER")
}
