package report

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/metcalfc/pyeongsam/internal/tracker"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true)

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	headStyle = lipgloss.NewStyle().
			Bold(true).
			MarginTop(1)

	itemStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	completeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4CAF50")).
			Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFAA00")).
			Bold(true)
)

// Text renders a snapshot as a styled plain-text report.
type Text struct{}

func (Text) Render(w io.Writer, s tracker.Snapshot) error {
	_, err := io.WriteString(w, TextBody(s)+"\n")
	return err
}

// TextBody returns the report without a trailing newline.
func TextBody(s tracker.Snapshot) string {
	var lines []string
	lines = append(lines,
		titleStyle.Render(Title),
		subtleStyle.Render(Rule),
		"",
		DateLine(s),
		headStyle.Render(ProgressHead),
		ChaptersLine(s),
	)

	if s.Completed() {
		lines = append(lines, "", completeStyle.Render(CompleteMsg))
	} else {
		lines = append(lines, headStyle.Render(TodayHead))
		for _, l := range ReadingLines(s) {
			lines = append(lines, itemStyle.Render(l))
		}
		if s.FinishesToday() {
			lines = append(lines, warnStyle.Render(FinishMsg))
		}
	}

	lines = append(lines, "", PercentLine(s))
	return strings.Join(lines, "\n")
}
