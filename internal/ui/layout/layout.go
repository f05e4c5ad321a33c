package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lessonloop/internal/ui/theme"
)

const (
	MinWidth  = 60
	MinHeight = 20

	// Below this width the studio stacks its result panes.
	CompactWidthThreshold = 100
)

// KeyHint is one footer entry.
type KeyHint struct {
	Key         string
	Description string
}

func IsCompactWidth(width int) bool {
	return width < CompactWidthThreshold
}

func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks the user to grow the terminal.
func RenderMinSizeMessage(width, height int) string {
	msg := fmt.Sprintf("Terminal too small (%d x %d).\nResize to at least %d x %d.",
		width, height, MinWidth, MinHeight)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Align(lipgloss.Center).Render(msg))
}

// bar is the bordered strip used for both header and footer.
func bar(width int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// spread lays out left, center and right across width, keeping at least
// one space between neighbours.
func spread(width int, left, center, right string) string {
	lw, cw, rw := lipgloss.Width(left), lipgloss.Width(center), lipgloss.Width(right)
	gapL := max(1, (width-cw)/2-lw)
	gapR := max(1, width-lw-gapL-cw-rw)
	return left + strings.Repeat(" ", gapL) + center + strings.Repeat(" ", gapR) + right
}

// RenderHeader shows the app name, the screen title and the model in use.
// The model is highlighted as a warning when running offline.
func RenderHeader(title, model string, width int) string {
	modelStyle := lipgloss.NewStyle().Foreground(theme.Secondary)
	if model == "offline" {
		modelStyle = modelStyle.Foreground(theme.Warning)
	}

	return bar(width, spread(max(0, width-4),
		theme.Title.Render("  Lessonloop"),
		lipgloss.NewStyle().Foreground(theme.Text).Render(title),
		modelStyle.Render("● "+model),
	))
}

func RenderFooter(hints []KeyHint, width int) string {
	key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = key.Render(h.Key) + " " + desc.Render(h.Description)
	}
	return bar(width, "  "+strings.Join(parts, "   "))
}

// RenderFrame stacks header, content and footer. Content is clipped to the
// rows left between them.
func RenderFrame(header, content, footer string, width, height int) string {
	rows := max(0, height-lipgloss.Height(header)-lipgloss.Height(footer))
	body := lipgloss.NewStyle().
		Width(width).
		Height(rows).
		MaxHeight(rows).
		Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
