package model

// TextType identifies the markup of a tour text block.
type TextType string

const (
	TextMarkdown TextType = "markdown"
	TextText     TextType = "text"
)

// Text is a marked-up text block.
type Text struct {
	Type TextType
	Body string
}

// Tour is the human-readable description attached to a request.
type Tour struct {
	Description  Text
	Instructions Text
}

// NewMarkdownTour builds a tour whose blocks are both markdown.
func NewMarkdownTour(description, instructions string) *Tour {
	return &Tour{
		Description:  Text{Type: TextMarkdown, Body: description},
		Instructions: Text{Type: TextMarkdown, Body: instructions},
	}
}
