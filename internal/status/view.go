package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Render renders the status data to a string
func Render(data *Data) string {
	var b strings.Builder

	b.WriteString(renderHeader(data))
	b.WriteString("\n\n")
	b.WriteString(renderTool(data))
	b.WriteString("\n")
	b.WriteString(renderFlags(data))
	b.WriteString("\n")
	b.WriteString(renderHooks(data))

	return b.String()
}

func renderHeader(data *Data) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("liumcomp ") + valueStyle.Render(data.Version) + "\n")
	b.WriteString(keyStyle.Render("Directory: ") + valueStyle.Render(data.CurrentDir))
	return b.String()
}

func renderTool(data *Data) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Tool") + "\n")

	if data.ToolErr != nil {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			errorStyle.Render("✗"),
			valueStyle.Render(data.Tool+" not found on PATH")))
	} else {
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			successStyle.Render("✓"),
			valueStyle.Render(data.Tool),
			subtleStyle.Render("("+data.ToolPath+")")))
	}

	configSource := data.ConfigPath
	if configSource == "" {
		configSource = "built-in defaults"
	}
	b.WriteString("  " + keyStyle.Render("Config:  ") + valueStyle.Render(configSource) + "\n")
	b.WriteString("  " + keyStyle.Render("Timeout: ") + valueStyle.Render(fmt.Sprintf("%dms", data.TimeoutMs)) + "\n")

	return b.String()
}

func renderFlags(data *Data) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Option sets") + "\n")
	b.WriteString("  " + keyStyle.Render("directory: ") + valueStyle.Render(strings.Join(data.Flags.Dir, " ")) + "\n")
	b.WriteString("  " + keyStyle.Render("no-value:  ") + valueStyle.Render(strings.Join(data.Flags.Todo, " ")) + "\n")
	b.WriteString("  " + keyStyle.Render("device:    ") + valueStyle.Render(data.Flags.Dut) + "\n")
	b.WriteString("  " + keyStyle.Render("servo:     ") + valueStyle.Render(data.Flags.Serial) + "\n")
	return b.String()
}

func renderHooks(data *Data) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Shell hooks") + "\n")

	for _, hook := range data.Hooks {
		mark := errorStyle.Render("✗")
		state := "not installed"
		if hook.Installed {
			mark = successStyle.Render("✓")
			state = "installed"
		}
		b.WriteString(fmt.Sprintf("  %s %s %s %s\n",
			mark,
			valueStyle.Render(hook.Shell),
			valueStyle.Render(state),
			subtleStyle.Render("("+hook.RCFile+")")))
	}

	return b.String()
}
