package model

// Shell names accepted by the provisioning service for execute services.
const (
	ShellSh   = "sh"
	ShellBash = "bash"
)

// Node is a compute resource declaration.
type Node struct {
	ClientID     string
	Exclusive    bool
	HardwareType string
	DiskImage    string
	Services     []Execute
	RoleBinding  *RoleBinding
}

// Execute is a startup service: a command run once by the node at boot.
type Execute struct {
	Shell   string
	Command string
}

// AddService appends a startup service. Services run in insertion order.
func (n *Node) AddService(e Execute) {
	n.Services = append(n.Services, e)
}

// BindRole binds the node to a role, replacing any previous binding.
func (n *Node) BindRole(b RoleBinding) {
	n.RoleBinding = &b
}
