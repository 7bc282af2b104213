package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorGray  = lipgloss.Color("245")
)

var (
	styleKey     = lipgloss.NewStyle().Foreground(colorGray)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
)

const iconSuccess = "✓"

func printSuccess(w io.Writer, msg string) {
	fmt.Fprintf(w, "%s %s\n", styleSuccess.Render(iconSuccess), msg)
}

func printKeyValue(w io.Writer, key string, value any) {
	fmt.Fprintf(w, "  %s %s\n", styleKey.Render(key+":"), styleNumber.Render(fmt.Sprint(value)))
}
