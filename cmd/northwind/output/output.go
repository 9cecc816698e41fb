package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	// Color styles for terminal output
	colorSuccess = lipgloss.Color("#10B981")
	colorWarning = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorInfo    = lipgloss.Color("#3B82F6")
	colorMuted   = lipgloss.Color("#6B7280")
	colorPrimary = lipgloss.Color("#7C3AED")

	successStyle = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(colorInfo)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	primaryStyle = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
)

var (
	out    io.Writer = os.Stdout
	errOut io.Writer = os.Stderr
)

// SetWriters redirects status and error output.
func SetWriters(stdout, stderr io.Writer) {
	out = stdout
	errOut = stderr
}

// DisableColor renders every style as plain text.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// Success prints a success message
func Success(format string, args ...any) {
	fmt.Fprint(out, successStyle.Render("✓ "))
	fmt.Fprintf(out, format+"\n", args...)
}

// Warning prints a warning message
func Warning(format string, args ...any) {
	fmt.Fprint(out, warningStyle.Render("⚠ "))
	fmt.Fprintf(out, format+"\n", args...)
}

// Error prints an error message to stderr
func Error(format string, args ...any) {
	fmt.Fprint(errOut, errorStyle.Render("✗ "))
	fmt.Fprintf(errOut, format+"\n", args...)
}

// Info prints an info message
func Info(format string, args ...any) {
	fmt.Fprint(out, infoStyle.Render("ℹ "))
	fmt.Fprintf(out, format+"\n", args...)
}

// Muted prints a muted message
func Muted(format string, args ...any) {
	fmt.Fprintln(out, mutedStyle.Render(fmt.Sprintf(format, args...)))
}

// Primary prints a primary message
func Primary(format string, args ...any) {
	fmt.Fprintln(out, primaryStyle.Render(fmt.Sprintf(format, args...)))
}

// Section prints a section header
func Section(title string) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, primaryStyle.Render(title))
	fmt.Fprintln(out, mutedStyle.Render(strings.Repeat("═", lipgloss.Width(title))))
	fmt.Fprintln(out)
}

// StatusIcon returns a colored icon for the outcome of a run
func StatusIcon(err error) string {
	if err != nil {
		return errorStyle.Render("✗")
	}
	return successStyle.Render("✓")
}
