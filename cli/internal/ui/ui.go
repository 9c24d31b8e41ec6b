package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

var (
	// Colors
	PrimaryColor   = lipgloss.Color("#00D9FF")
	SuccessColor   = lipgloss.Color("#00FF88")
	WarningColor   = lipgloss.Color("#FFB800")
	ErrorColor     = lipgloss.Color("#FF4444")
	SecondaryColor = lipgloss.Color("#6C757D")

	// Styles
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	SecondaryStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor)
)

// Success prints a success message
func Success(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, SuccessStyle.Render("✓ "+fmt.Sprintf(format, args...)))
}

// Error prints an error message
func Error(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, ErrorStyle.Render("✗ "+fmt.Sprintf(format, args...)))
}

// Warning prints a warning message
func Warning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, WarningStyle.Render("⚠ "+fmt.Sprintf(format, args...)))
}

// Info prints an info message
func Info(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, InfoStyle.Render("ℹ "+fmt.Sprintf(format, args...)))
}

// Title prints a bold heading with an optional dimmed subtitle.
func Title(w io.Writer, title, subtitle string) {
	if subtitle == "" {
		fmt.Fprintln(w, TitleStyle.Render(title))
		return
	}
	fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Bottom,
		TitleStyle.Render(title), " ", SecondaryStyle.Render(subtitle)))
}

// Table prints a table using pterm
func Table(w io.Writer, headers []string, rows [][]string) error {
	data := pterm.TableData{headers}
	data = append(data, rows...)
	return pterm.DefaultTable.WithHasHeader().WithData(data).WithWriter(w).Render()
}

// Highlight colors s for emphasis inside plain text.
func Highlight(s string) string {
	return color.New(color.FgCyan, color.Bold).Sprint(s)
}

// Markdown renders markdown content for the terminal.
func Markdown(w io.Writer, content string) error {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return err
	}

	out, err := r.Render(content)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, out)
	return err
}

// DisableColor turns off styling, for piped output and tests.
func DisableColor() {
	color.NoColor = true
	pterm.DisableStyling()
	lipgloss.SetColorProfile(termenv.Ascii)
}
