package model

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidRequest is wrapped by every error returned from Validate.
var ErrInvalidRequest = errors.New("invalid request")

var clientIDPattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9-]*$`)

// Validate checks internal consistency: unique, well-formed client IDs,
// role bindings that reference declared roles, non-empty playbook lists and
// known tour text types.
func (r *Request) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...)))
	}

	for _, role := range r.Roles {
		if len(role.Playbooks) == 0 {
			fail("role %q has no playbooks", role.Name)
		}
		for _, pb := range role.Playbooks {
			if pb.Name == "" || pb.Path == "" {
				fail("role %q has a playbook without name or path", role.Name)
			}
		}
	}

	seen := make(map[string]bool)
	for _, n := range r.Nodes {
		if !clientIDPattern.MatchString(n.ClientID) {
			fail("node client_id %q is not a valid identifier", n.ClientID)
		}
		if seen[n.ClientID] {
			fail("node client_id %q declared twice", n.ClientID)
		}
		seen[n.ClientID] = true

		if n.HardwareType == "" {
			fail("node %q has no hardware type", n.ClientID)
		}
		if n.RoleBinding != nil && r.Role(n.RoleBinding.Role) == nil {
			fail("node %q is bound to undeclared role %q", n.ClientID, n.RoleBinding.Role)
		}
		for i, svc := range n.Services {
			if svc.Shell != ShellSh && svc.Shell != ShellBash {
				fail("node %q service %d uses unsupported shell %q", n.ClientID, i, svc.Shell)
			}
			if strings.TrimSpace(svc.Command) == "" {
				fail("node %q service %d has an empty command", n.ClientID, i)
			}
		}
	}

	for _, o := range r.Overrides {
		if o.Name == "" {
			fail("override without a name")
		}
	}

	if r.Tour != nil {
		for _, t := range []Text{r.Tour.Description, r.Tour.Instructions} {
			if t.Type != TextMarkdown && t.Type != TextText {
				fail("tour text type %q is not supported", t.Type)
			}
		}
	}

	return errors.Join(errs...)
}
