package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorRed   = lipgloss.Color("167")
	colorWhite = lipgloss.Color("255")
	colorDim   = lipgloss.Color("240")
)

var (
	StyleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	StyleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	StyleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	StyleDim     = lipgloss.NewStyle().Foreground(colorDim)
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	StyleError   = lipgloss.NewStyle().Foreground(colorRed)
)

func printSuccess(format string, args ...any) {
	fmt.Println(StyleSuccess.Render("✓") + " " + fmt.Sprintf(format, args...))
}

// printRow 左侧标签固定宽度
func printRow(label, value string) {
	fmt.Println(StyleDim.Width(14).Render(label) + value)
}

func renderBool(b bool) string {
	if b {
		return "✅"
	}
	return "❌"
}
