package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Pane is a rounded card. Title and Badge sit in the top border, left and
// right respectively. Highlight switches the border to the accent color.
type Pane struct {
	Title     string
	Badge     string
	Height    int
	Content   string
	Highlight bool
}

var (
	paneBorderColor    = lipgloss.Color("#6c7086")
	paneHighlightColor = lipgloss.Color("#89b4fa")
	paneTextColor      = lipgloss.Color("#cdd6f4")
)

// ContentWidth is the usable text width inside a pane rendered at width.
func ContentWidth(width int) int {
	return max(1, width-4)
}

func (p Pane) Render(width, height int) string {
	if width <= 0 {
		return ""
	}
	h := p.Height
	if h < 3 {
		h = 3
	}
	if height > 0 && h > height {
		h = max(3, height)
	}
	if width < 4 {
		width = 4
	}

	border := paneBorderColor
	if p.Highlight {
		border = paneHighlightColor
	}
	borderStyle := lipgloss.NewStyle().Foreground(border)
	titleStyle := lipgloss.NewStyle().Foreground(paneTextColor).Bold(true)

	innerWidth := width - 2
	contentWidth := innerWidth - 2

	top := borderStyle.Render("╭") + p.topBorder(innerWidth, borderStyle, titleStyle) + borderStyle.Render("╮")

	v := borderStyle.Render("│")
	innerHeight := h - 2
	contentLines := splitLines(p.Content)
	rows := make([]string, 0, h)
	rows = append(rows, top)
	for i := 0; i < innerHeight; i++ {
		line := ""
		if i < len(contentLines) {
			line = contentLines[i]
		}
		rows = append(rows, v+" "+padRight(line, contentWidth)+" "+v)
	}
	bottom := borderStyle.Render("╰" + strings.Repeat("─", innerWidth) + "╯")
	rows = append(rows, bottom)

	return strings.Join(rows, "\n")
}

func (p Pane) topBorder(innerWidth int, borderStyle, titleStyle lipgloss.Style) string {
	left := ""
	if t := strings.TrimSpace(p.Title); t != "" {
		left = " " + t + " "
	}
	right := ""
	if b := strings.TrimSpace(p.Badge); b != "" {
		right = " " + b + " "
	}
	leftDash := 0
	if left != "" {
		leftDash = 1
	}
	rightDash := 0
	if right != "" {
		rightDash = 1
	}
	budget := innerWidth - leftDash - rightDash
	if ansi.StringWidth(left)+ansi.StringWidth(right) > budget {
		right = ""
		rightDash = 0
		budget = innerWidth - leftDash
		left = ansi.Truncate(left, max(0, budget), "")
	}
	fill := max(0, innerWidth-leftDash-rightDash-ansi.StringWidth(left)-ansi.StringWidth(right))
	return borderStyle.Render(strings.Repeat("─", leftDash)) +
		titleStyle.Render(left) +
		borderStyle.Render(strings.Repeat("─", fill)) +
		titleStyle.Render(right) +
		borderStyle.Render(strings.Repeat("─", rightDash))
}

func splitLines(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
