package queue

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/murrasil/console/internal/api"
)

// Styles
var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)

	selectedCardStyle = cardStyle.
				BorderForeground(lipgloss.Color("62"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)

	sourceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255"))

	previewStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	actionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("78"))

	busyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212"))

	placeholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241")).
				Padding(1, 2)

	errorPlaceholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("196")).
				Padding(1, 2)
)

const previewLimit = 180

// renderCard renders one news item for the active tab.
func (m Model) renderCard(item api.NewsItem, selected bool) string {
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		categoryStyle.Render(item.Category),
		" ",
		sourceStyle.Render(item.SourceName),
		"  ",
		timeStyle.Render(TimeAgo(item.PublishedAt, time.Now())),
	)

	lines := []string{header, titleStyle.Render(item.TitleAr)}

	// Body preview and legal actions depend on the tab, not the item.
	switch m.tab {
	case api.StatusNew:
		if p := excerpt(item.SummaryAr); p != "" {
			lines = append(lines, previewStyle.Render(p))
		}
		if m.busy[item.ID] {
			lines = append(lines, busyStyle.Render("⋯ writing article"))
		} else {
			lines = append(lines, actionStyle.Render("[a] approve & write  [x] reject"))
		}
	case api.StatusApproved:
		if p := excerpt(item.ArticleAr); p != "" {
			lines = append(lines, previewStyle.Render(p))
		}
		lines = append(lines, actionStyle.Render("[enter] view full article"))
	case api.StatusRejected:
		lines = append(lines, actionStyle.Render("[u] restore"))
	}

	style := cardStyle
	if selected {
		style = selectedCardStyle
	}
	width := m.width - 4
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(strings.Join(lines, "\n"))
}

// excerpt trims a body to a short single-paragraph preview.
func excerpt(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	runes := []rune(s)
	if len(runes) > previewLimit {
		return string(runes[:previewLimit]) + "…"
	}
	return s
}
