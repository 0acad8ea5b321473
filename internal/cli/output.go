package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mixassio/todolist/internal/models"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	idStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	dateStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("111"))
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
)

// renderEntries lays the entries out as "id  date  title" lines under a
// header. An empty slice renders a short notice instead.
func renderEntries(entries []models.Entry) string {
	if len(entries) == 0 {
		return renderNotice("no entries")
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%4s  %-10s  %s", "ID", "DATE", "TITLE")))
	for _, e := range entries {
		b.WriteByte('\n')
		b.WriteString(idStyle.Render(fmt.Sprintf("%4d", e.ID)))
		b.WriteString("  ")
		b.WriteString(dateStyle.Render(e.Date.String()))
		b.WriteString("  ")
		b.WriteString(e.Title)
	}
	return b.String()
}

func renderError(err error) string {
	return errorStyle.Render("error: " + err.Error())
}

func renderNotice(s string) string {
	return noticeStyle.Render(s)
}
