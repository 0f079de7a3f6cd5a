package model

// Role names an Ansible role and the playbooks run against nodes bound to it.
type Role struct {
	Name      string
	Path      string // playbook directory, relative to the profile repository
	Playbooks []Playbook
}

// Playbook is a single playbook reference.
type Playbook struct {
	Name string
	Path string
}

// RoleBinding attaches a node to a declared role.
type RoleBinding struct {
	Role string
}

// Override is a key/value pair injected into the automation context.
type Override struct {
	Name  string
	Value string
}
