package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#DC2626")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#CA8A04"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#16A34A"))
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")).Italic(true)
	boldStyle    = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))
)

// out receives every status line. Stdout is reserved for the request document.
var out io.Writer = os.Stderr

// SetOutput redirects status output and returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	prev := out
	out = w
	return prev
}

// FormatError returns a styled multi-line error message.
func FormatError(title, detail, suggestion string) string {
	s := errorStyle.Render("Error: "+title) + "\n"
	if detail != "" {
		s += "  " + detail + "\n"
	}
	if suggestion != "" {
		s += "  " + hintStyle.Render("Hint: "+suggestion) + "\n"
	}
	return s
}

// Error prints a styled error message.
func Error(title, detail, suggestion string) {
	fmt.Fprint(out, FormatError(title, detail, suggestion))
}

// CheckSkipped prints a styled status when a check does not apply.
func CheckSkipped(name string) {
	fmt.Fprintf(out, "  %s %s\n", dimStyle.Render("--"), dimStyle.Render(name+" (skipped)"))
}

// Success prints a green success message.
func Success(msg string) {
	fmt.Fprintln(out, successStyle.Render(msg))
}

// Warn prints a yellow warning message.
func Warn(msg string) {
	fmt.Fprintln(out, warnStyle.Render("Warning: "+msg))
}

// Println prints a plain status line.
func Println(s string) {
	fmt.Fprintln(out, s)
}

// Bold renders text in bold.
func Bold(s string) string {
	return boldStyle.Render(s)
}

// Hint renders text in dim italic.
func Hint(s string) string {
	return hintStyle.Render(s)
}

// ValidationOK prints a green check for a valid field.
func ValidationOK(field, detail string) {
	fmt.Fprintf(out, "  %s %s: %s\n", successStyle.Render("OK "), field, detail)
}

// ValidationErr prints a red error for an invalid field.
func ValidationErr(field, message, suggestion string) {
	fmt.Fprintf(out, "  %s %s: %s\n", errorStyle.Render("ERR"), field, message)
	if suggestion != "" {
		fmt.Fprintf(out, "      %s\n", hintStyle.Render("Hint: "+suggestion))
	}
}
