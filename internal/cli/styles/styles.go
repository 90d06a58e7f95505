// Package styles holds the lipgloss styles used for human-readable output
package styles

import (
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"

	"github.com/thenoetrevino/todolist/internal/models"
)

// Palette used by every style
const (
	ColorAccent  = "#7D56F4"
	ColorTitle   = "#FAFAFA"
	ColorSubtle  = "#8A8A8A"
	ColorNormal  = "#DDDDDD"
	ColorSuccess = "#04B575"
	ColorWarning = "#F2C94C"
	ColorDanger  = "#EB5757"
)

// CardWidth is the outer width of a rendered card
const CardWidth = 80

var (
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorAccent)).
			Padding(1, 2).
			Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorTitle))

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSubtle))

	// For field labels like "Status:", "Priority:"
	FieldStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorAccent))

	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal))

	// For section headers like "Description", "Labels"
	SectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorAccent)).
			Bold(true).
			MarginTop(1)

	SuccessStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorSuccess))

	MutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSubtle)).
			Italic(true)
)

// ColoredText renders text with a hex color
func ColoredText(text, hexColor string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// BoldColoredText renders bold text with a hex color
func BoldColoredText(text, hexColor string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// RenderLabelChip renders a label as "[name]" with the label's color
func RenderLabelChip(label *models.Label) string {
	return BoldColoredText("["+label.Name+"]", label.Color)
}

// RenderLabelChips renders labels separated by spaces
func RenderLabelChips(labels []*models.Label) string {
	chips := make([]string, 0, len(labels))
	for _, l := range labels {
		chips = append(chips, RenderLabelChip(l))
	}
	return strings.Join(chips, " ")
}

// RenderStatus colors a status by how far along it is
func RenderStatus(s models.Status) string {
	switch s {
	case models.StatusDone:
		return BoldColoredText(string(s), ColorSuccess)
	case models.StatusInProgress:
		return BoldColoredText(string(s), ColorWarning)
	default:
		return ValueStyle.Render(string(s))
	}
}

// RenderPriority colors a priority by urgency
func RenderPriority(p models.Priority) string {
	switch p {
	case models.PriorityHigh:
		return BoldColoredText(string(p), ColorDanger)
	case models.PriorityLow:
		return ColoredText(string(p), ColorSubtle)
	default:
		return ColoredText(string(p), ColorWarning)
	}
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}

// Glamour renderers are expensive to build, keep one per width
var rendererCache sync.Map // map[int]*glamour.TermRenderer

func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// RenderMarkdown renders a task description as markdown, falling back to the
// raw text when rendering fails
func RenderMarkdown(text string, width int) string {
	if text == "" {
		return MutedStyle.Render("No description")
	}
	renderer, err := getRenderer(width)
	if err != nil {
		return text
	}
	rendered, err := renderer.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimSpace(rendered)
}
