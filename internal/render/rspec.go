package render

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/sehadnassim/Nassim-srsran5g-simulated-rf-profile/internal/model"
)

// Namespaces used by the request document.
const (
	NamespaceRSpec  = "http://www.geni.net/resources/rspec/3"
	NamespaceEmulab = "http://www.protogeni.net/resources/rspec/ext/emulab/1"
	NamespaceTour   = "http://www.protogeni.net/resources/rspec/ext/apt-tour/1"
	NamespaceXSI    = "http://www.w3.org/2001/XMLSchema-instance"

	schemaLocation = NamespaceRSpec + " " + NamespaceRSpec + "/request.xsd"
	sliverRawPC    = "raw-pc"
)

// XMLRenderer encodes requests as XML.
type XMLRenderer struct {
	Indent string // empty for compact output
}

type xmlRSpec struct {
	XMLName        xml.Name      `xml:"rspec"`
	Xmlns          string        `xml:"xmlns,attr"`
	XmlnsEmulab    string        `xml:"xmlns:emulab,attr"`
	XmlnsXSI       string        `xml:"xmlns:xsi,attr"`
	SchemaLocation string        `xml:"xsi:schemaLocation,attr"`
	Type           string        `xml:"type,attr"`
	Roles          []xmlRole     `xml:"emulab:ansible_role"`
	Overrides      []xmlOverride `xml:"emulab:ansible_override"`
	Nodes          []xmlNode     `xml:"node"`
	Tour           *xmlTour      `xml:"rspec_tour"`
}

type xmlRole struct {
	Name      string        `xml:"name,attr"`
	Path      string        `xml:"path,attr,omitempty"`
	Playbooks []xmlPlaybook `xml:"emulab:ansible_playbook"`
}

type xmlPlaybook struct {
	Name string `xml:"name,attr"`
	Path string `xml:"path,attr"`
}

type xmlOverride struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

type xmlNode struct {
	ClientID     string          `xml:"client_id,attr"`
	Exclusive    bool            `xml:"exclusive,attr"`
	SliverType   xmlSliverType   `xml:"sliver_type"`
	HardwareType *xmlName        `xml:"hardware_type"`
	Services     *xmlServices    `xml:"services"`
	RoleBinding  *xmlRoleBinding `xml:"emulab:ansible_role_binding"`
}

type xmlSliverType struct {
	Name      string   `xml:"name,attr"`
	DiskImage *xmlName `xml:"disk_image"`
}

type xmlName struct {
	Name string `xml:"name,attr"`
}

type xmlServices struct {
	Execute []xmlExecute `xml:"execute"`
}

type xmlExecute struct {
	Shell   string `xml:"shell,attr"`
	Command string `xml:"command,attr"`
}

type xmlRoleBinding struct {
	Role string `xml:"role,attr"`
}

type xmlTour struct {
	Xmlns        string  `xml:"xmlns,attr"`
	Description  xmlText `xml:"description"`
	Instructions xmlText `xml:"instructions"`
}

type xmlText struct {
	Type string
	Body string
}

// MarshalXML writes the body as character data without escaping newlines,
// so markdown stays readable in the document.
func (t xmlText) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "type"}, Value: t.Type})
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if err := e.EncodeToken(xml.CharData(t.Body)); err != nil {
		return err
	}
	return e.EncodeToken(start.End())
}

// Render validates the request and encodes it. Nothing is returned unless the
// whole document encoded cleanly.
func (r *XMLRenderer) Render(req *model.Request) ([]byte, error) {
	if req == nil {
		return nil, fmt.Errorf("render: nil request")
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	doc := toXML(req)

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	if r.Indent != "" {
		enc.Indent("", r.Indent)
	}
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("render: encoding rspec: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("render: encoding rspec: %w", err)
	}
	buf.WriteByte('\n')

	return buf.Bytes(), nil
}

func toXML(req *model.Request) *xmlRSpec {
	doc := &xmlRSpec{
		Xmlns:          NamespaceRSpec,
		XmlnsEmulab:    NamespaceEmulab,
		XmlnsXSI:       NamespaceXSI,
		SchemaLocation: schemaLocation,
		Type:           "request",
	}

	for _, role := range req.Roles {
		xr := xmlRole{Name: role.Name, Path: role.Path}
		for _, pb := range role.Playbooks {
			xr.Playbooks = append(xr.Playbooks, xmlPlaybook{Name: pb.Name, Path: pb.Path})
		}
		doc.Roles = append(doc.Roles, xr)
	}

	for _, o := range req.Overrides {
		doc.Overrides = append(doc.Overrides, xmlOverride{Name: o.Name, Value: o.Value})
	}

	for _, n := range req.Nodes {
		doc.Nodes = append(doc.Nodes, nodeToXML(n))
	}

	if req.Tour != nil {
		doc.Tour = &xmlTour{
			Xmlns:        NamespaceTour,
			Description:  xmlText{Type: string(req.Tour.Description.Type), Body: req.Tour.Description.Body},
			Instructions: xmlText{Type: string(req.Tour.Instructions.Type), Body: req.Tour.Instructions.Body},
		}
	}

	return doc
}

func nodeToXML(n *model.Node) xmlNode {
	xn := xmlNode{
		ClientID:   n.ClientID,
		Exclusive:  n.Exclusive,
		SliverType: xmlSliverType{Name: sliverRawPC},
	}
	if n.DiskImage != "" {
		xn.SliverType.DiskImage = &xmlName{Name: n.DiskImage}
	}
	if n.HardwareType != "" {
		xn.HardwareType = &xmlName{Name: n.HardwareType}
	}
	if len(n.Services) > 0 {
		xn.Services = &xmlServices{}
		for _, svc := range n.Services {
			xn.Services.Execute = append(xn.Services.Execute, xmlExecute{Shell: svc.Shell, Command: svc.Command})
		}
	}
	if n.RoleBinding != nil {
		xn.RoleBinding = &xmlRoleBinding{Role: n.RoleBinding.Role}
	}
	return xn
}
