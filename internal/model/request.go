package model

import "fmt"

// Request is the top-level aggregate emitted to the provisioning service.
type Request struct {
	Nodes     []*Node
	Roles     []*Role
	Overrides []Override
	Tour      *Tour
}

// NewRequest creates an empty request.
func NewRequest() *Request {
	return &Request{}
}

// RawPC declares a bare-metal node and returns it for further configuration.
func (r *Request) RawPC(clientID string) *Node {
	n := &Node{
		ClientID:  clientID,
		Exclusive: true,
	}
	r.Nodes = append(r.Nodes, n)
	return n
}

// AddRole registers an automation role. Role names are unique within a request.
func (r *Request) AddRole(role *Role) error {
	if role == nil || role.Name == "" {
		return fmt.Errorf("role name must not be empty")
	}
	if r.Role(role.Name) != nil {
		return fmt.Errorf("role %q already declared", role.Name)
	}
	r.Roles = append(r.Roles, role)
	return nil
}

// Role returns the declared role with the given name, or nil.
func (r *Request) Role(name string) *Role {
	for _, role := range r.Roles {
		if role.Name == name {
			return role
		}
	}
	return nil
}

// AddOverride appends an automation override.
func (r *Request) AddOverride(o Override) {
	r.Overrides = append(r.Overrides, o)
}

// SetTour attaches the tour, replacing any previous one.
func (r *Request) SetTour(t *Tour) {
	r.Tour = t
}
