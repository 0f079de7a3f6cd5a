// Package param declares typed profile parameters, binds user input to them
// and verifies the result before anything is built.
package param

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Type is the value type of a parameter.
type Type string

const (
	TypeString  Type = "string"
	TypeInteger Type = "integer"
	TypeBoolean Type = "boolean"
)

var (
	ErrUnknownParameter = errors.New("unknown parameter")
	ErrInvalidValue     = errors.New("invalid value")
	ErrNotDeclared      = errors.New("parameter not declared")
)

// LegalValue is one allowed value with its display label.
type LegalValue struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// Parameter describes a single user-facing input.
type Parameter struct {
	Name        string
	Description string
	Type        Type
	Default     string
	Legal       []LegalValue // empty means any value of Type
	Advanced    bool
	Group       string
}

func (p Parameter) allows(v string) bool {
	if len(p.Legal) == 0 {
		return true
	}
	for _, lv := range p.Legal {
		if lv.Value == v {
			return true
		}
	}
	return false
}

func (p Parameter) legalList() string {
	vals := make([]string, len(p.Legal))
	for i, lv := range p.Legal {
		vals[i] = lv.Value
	}
	return strings.Join(vals, ", ")
}

func (p Parameter) checkType(v string) error {
	switch p.Type {
	case TypeInteger:
		if _, err := strconv.Atoi(v); err != nil {
			return fmt.Errorf("%q is not an integer", v)
		}
	case TypeBoolean:
		if _, err := strconv.ParseBool(v); err != nil {
			return fmt.Errorf("%q is not a boolean", v)
		}
	}
	return nil
}

// Error reports a problem with one parameter and how to fix it.
type Error struct {
	Parameter  string
	Message    string
	Suggestion string
	Err        error
}

func (e *Error) Error() string {
	return fmt.Sprintf("parameter %s: %s", e.Parameter, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Context holds declared parameters in declaration order and the errors
// collected while binding them.
type Context struct {
	params []Parameter
	index  map[string]int
	errs   []error
}

// NewContext returns an empty parameter context.
func NewContext() *Context {
	return &Context{index: make(map[string]int)}
}

// Define registers a parameter. The default must satisfy the type and, when
// legal values are given, be one of them.
func (c *Context) Define(p Parameter) error {
	if p.Name == "" {
		return fmt.Errorf("define: parameter name must not be empty")
	}
	if _, dup := c.index[p.Name]; dup {
		return fmt.Errorf("define %s: already declared", p.Name)
	}
	if p.Type == "" {
		p.Type = TypeString
	}
	if err := p.checkType(p.Default); err != nil {
		return fmt.Errorf("define %s: default %w", p.Name, err)
	}
	if !p.allows(p.Default) {
		return fmt.Errorf("define %s: default %q is not a legal value (%s)", p.Name, p.Default, p.legalList())
	}
	c.index[p.Name] = len(c.params)
	c.params = append(c.params, p)
	return nil
}

// Parameters returns the declared parameters in declaration order.
func (c *Context) Parameters() []Parameter {
	out := make([]Parameter, len(c.params))
	copy(out, c.params)
	return out
}

// Lookup returns a declared parameter by name.
func (c *Context) Lookup(name string) (Parameter, bool) {
	i, ok := c.index[name]
	if !ok {
		return Parameter{}, false
	}
	return c.params[i], true
}

// Bind resolves every declared parameter from raw input, falling back to the
// default. Problems are collected and reported by Verify; the returned Values
// must not be used unless Verify returns nil.
func (c *Context) Bind(raw map[string]string) Values {
	vals := make(map[string]string, len(c.params))

	unknown := make([]string, 0)
	for name := range raw {
		if _, ok := c.index[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		c.errs = append(c.errs, &Error{
			Parameter:  name,
			Message:    "not declared by this profile",
			Suggestion: "run 'srsran-profile params' to list parameters",
			Err:        ErrUnknownParameter,
		})
	}

	for _, p := range c.params {
		v, ok := raw[p.Name]
		if !ok {
			v = p.Default
		}
		if err := p.checkType(v); err != nil {
			c.errs = append(c.errs, &Error{Parameter: p.Name, Message: err.Error(), Err: ErrInvalidValue})
			continue
		}
		if !p.allows(v) {
			c.errs = append(c.errs, &Error{
				Parameter:  p.Name,
				Message:    fmt.Sprintf("%q is not a legal value", v),
				Suggestion: "use one of: " + p.legalList(),
				Err:        ErrInvalidValue,
			})
			continue
		}
		vals[p.Name] = v
	}

	return Values{m: vals}
}

// Verify returns every collected error joined together, or nil.
func (c *Context) Verify() error {
	return errors.Join(c.errs...)
}

// Errors returns the collected parameter errors.
func (c *Context) Errors() []error {
	out := make([]error, len(c.errs))
	copy(out, c.errs)
	return out
}

// Values is the immutable result of a successful bind.
type Values struct {
	m map[string]string
}

// String returns the bound value of a declared parameter.
func (v Values) String(name string) (string, error) {
	s, ok := v.m[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotDeclared, name)
	}
	return s, nil
}

// Map returns a copy of all bound values.
func (v Values) Map() map[string]string {
	out := make(map[string]string, len(v.m))
	for k, s := range v.m {
		out[k] = s
	}
	return out
}
