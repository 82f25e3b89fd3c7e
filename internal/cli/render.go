package cli

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/hearthside/yearbook/memory"
	"github.com/hearthside/yearbook/review"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#9CF566")).
			MarginBottom(1)

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F5A623"))

	categoryStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#9CF566"))

	keywordStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#0D0208")).
			Background(lipgloss.Color("#9CF566")).
			Padding(0, 1).
			MarginRight(1)

	faintStyle = lipgloss.NewStyle().
			Faint(true)

	summaryStyle = lipgloss.NewStyle().
			Width(76)
)

func renderMemory(r memory.Record) string {
	var b strings.Builder
	b.WriteString(categoryStyle.Render("[" + string(r.Category) + "]"))
	b.WriteString(" ")
	b.WriteString(headingStyle.Render(r.Author))
	b.WriteString(": ")
	b.WriteString(r.Content)
	when := time.UnixMilli(r.Timestamp).Format("Jan 2, 2006")
	b.WriteString(" ")
	b.WriteString(faintStyle.Render("(" + when + ")"))
	if r.ImageURL != "" {
		b.WriteString(" ")
		b.WriteString(faintStyle.Render("[photo]"))
	}
	return b.String()
}

func renderResult(result *review.Result) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Our Family's 2025 Year in Review"))
	b.WriteString("\n\n")
	b.WriteString(summaryStyle.Render(result.Summary))
	b.WriteString("\n\n")

	b.WriteString(headingStyle.Render("Themes of the year"))
	b.WriteString("\n")
	for _, kw := range result.Keywords {
		b.WriteString(keywordStyle.Render(kw))
	}
	b.WriteString("\n\n")

	b.WriteString(headingStyle.Render("The soundtrack"))
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(result.SuggestedPlaylist.Title))
	b.WriteString("\n")
	b.WriteString(summaryStyle.Render(result.SuggestedPlaylist.Description))
	return b.String()
}
