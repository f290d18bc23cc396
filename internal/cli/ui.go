package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/pgfplots/pkg/compile"
)

// stdout receives status lines. Tests swap it for a buffer.
var stdout io.Writer = os.Stdout

var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorBlue   = lipgloss.Color("75")
	colorWhite  = lipgloss.Color("255")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleLink    = lipgloss.NewStyle().Foreground(colorBlue).Underline(true)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleKey     = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	// A cache hit is the good case, so it gets the success color.
	styleCached = lipgloss.NewStyle().Foreground(colorGreen)
	styleFresh  = lipgloss.NewStyle().Foreground(colorGray)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
	separator   = " · "
)

func printLine(s string) {
	fmt.Fprintln(stdout, s)
}

func printSuccess(format string, args ...any) {
	printLine(styleIconSuccess.Render(iconSuccess) + " " + fmt.Sprintf(format, args...))
}

func printError(format string, args ...any) {
	printLine(styleIconError.Render(iconError) + " " + fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...any) {
	printLine(styleIconWarning.Render(iconWarning) + " " + styleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) {
	printLine(styleIconInfo.Render(iconInfo) + " " + fmt.Sprintf(format, args...))
}

// printDetail prints an indented, muted line.
func printDetail(format string, args ...any) {
	printLine("  " + styleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints the path of a written artifact or source file.
func printFile(path string) {
	printLine("  " + styleDim.Render(iconArrow) + " " + styleValue.Render(path))
}

func printKeyValue(key, value string) {
	printLine(styleKey.Render(key) + " " + styleValue.Render(value))
}

// printResult summarizes a compilation as "strategy · duration · cached|fresh".
func printResult(res *compile.Result) {
	status := styleFresh.Render("fresh")
	if res.Cached {
		status = styleCached.Render("cached")
	}
	parts := []string{
		styleDim.Render(res.Strategy),
		styleDim.Render(res.Duration.Round(time.Millisecond).String()),
		status,
	}
	printLine("  " + strings.Join(parts, styleDim.Render(separator)))
}

// printNextStep suggests a follow-up command.
func printNextStep(description, cmd string) {
	printLine(styleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}
