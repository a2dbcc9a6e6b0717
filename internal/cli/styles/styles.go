// Package styles renders the human-readable CLI output.
package styles

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"

	"github.com/thenoetrevino/taskboard/internal/models"
)

const (
	accent  = "#7D56F4"
	title   = "#FAFAFA"
	subtle  = "#9B9B9B"
	normal  = "#DDDDDD"
	errorFg = "#FFFFFF"
	errorBg = "#D9534F"
	infoFg  = "#FFFFFF"
	infoBg  = "#5CB85C"
	warnFg  = "#000000"
	warnBg  = "#F0AD4E"
)

// CardWidth is the width of bordered detail views
const CardWidth = 72

var (
	CardStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(accent)).Padding(1, 2).Width(CardWidth)
	TitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(title))
	SubtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(subtle))
	LabelStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(accent))
	ValueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(normal))
	SectionStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(accent)).MarginTop(1)

	BlockedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(errorFg)).Background(lipgloss.Color(errorBg)).Padding(0, 1)
	SuccessStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(infoFg)).Background(lipgloss.Color(infoBg)).Padding(0, 1)
	WarningStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(warnFg)).Background(lipgloss.Color(warnBg)).Padding(0, 1)
)

// Print writes s to w, dropping colors the writer cannot display
func Print(w io.Writer, s string) error {
	_, err := lipgloss.Fprintln(w, s)
	return err
}

// Field renders "Label: value"
func Field(label, value string) string {
	return LabelStyle.Render(label+":") + " " + ValueStyle.Render(value)
}

// KindBadge renders a column kind
func KindBadge(kind models.ColumnKind) string {
	switch kind {
	case models.KindFinal:
		return SuccessStyle.Render(string(kind))
	case models.KindCancel:
		return WarningStyle.Render(string(kind))
	default:
		return SubtitleStyle.Render("[" + string(kind) + "]")
	}
}

// Blocked renders the blocked marker with its reason
func Blocked(reason string) string {
	if reason == "" {
		return BlockedStyle.Render("BLOCKED")
	}
	return BlockedStyle.Render("BLOCKED") + " " + ValueStyle.Render(reason)
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}

// Header renders a title followed by a dimmed id
func Header(name string, id int64) string {
	return TitleStyle.Render(name) + " " + SubtitleStyle.Render(fmt.Sprintf("#%d", id))
}

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

// Markdown renders a card description, falling back to the raw text
func Markdown(description string, width int) string {
	if strings.TrimSpace(description) == "" {
		return SubtitleStyle.Italic(true).Render("No description")
	}

	renderer, err := getRenderer(width)
	if err != nil {
		return description
	}
	rendered, err := renderer.Render(description)
	if err != nil {
		return description
	}
	return strings.TrimSpace(rendered)
}
