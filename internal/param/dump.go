package param

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Definition is the exported form of a parameter, keyed by name in dumps.
type Definition struct {
	Type         Type         `json:"type" yaml:"type"`
	Description  string       `json:"description" yaml:"description"`
	DefaultValue string       `json:"defaultValue" yaml:"defaultValue"`
	LegalValues  []LegalValue `json:"legalValues,omitempty" yaml:"legalValues,omitempty"`
	Advanced     bool         `json:"advanced" yaml:"advanced"`
	Group        string       `json:"groupId,omitempty" yaml:"groupId,omitempty"`
}

// Definitions returns the exported definitions of all declared parameters.
func (c *Context) Definitions() map[string]Definition {
	out := make(map[string]Definition, len(c.params))
	for _, p := range c.params {
		out[p.Name] = Definition{
			Type:         p.Type,
			Description:  p.Description,
			DefaultValue: p.Default,
			LegalValues:  p.Legal,
			Advanced:     p.Advanced,
			Group:        p.Group,
		}
	}
	return out
}

// DumpJSON encodes the definitions as indented JSON. Map keys are sorted by
// encoding/json, so output is stable.
func (c *Context) DumpJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c.Definitions()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DumpYAML encodes the definitions as YAML.
func (c *Context) DumpYAML() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c.Definitions()); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// LoadBindings reads a JSON object of parameter name to value, the form the
// portal hands to a profile. Non-string scalars are converted to strings.
func LoadBindings(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing bindings %s: %w", path, err)
	}

	out := make(map[string]string, len(raw))
	for k, v := range raw {
		switch x := v.(type) {
		case string:
			out[k] = x
		case bool:
			out[k] = strconv.FormatBool(x)
		case float64:
			out[k] = strconv.FormatFloat(x, 'f', -1, 64)
		default:
			return nil, fmt.Errorf("parsing bindings %s: %s: unsupported value %v", path, k, v)
		}
	}
	return out, nil
}
