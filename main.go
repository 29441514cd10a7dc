//go:build !gui

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/metcalfc/pyeongsam/internal/config"
	"github.com/metcalfc/pyeongsam/internal/plan"
	"github.com/metcalfc/pyeongsam/internal/report"
	"github.com/metcalfc/pyeongsam/internal/tracker"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF"))

	ruleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	headStyle = lipgloss.NewStyle().
			Bold(true).
			MarginTop(1)

	itemStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000"))

	controlsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Italic(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFAA00")).
			Bold(true)

	completeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF00")).
			Bold(true)
)

type model struct {
	tracker  *tracker.Tracker
	snap     tracker.Snapshot
	input    textinput.Model
	bar      progress.Model
	barWidth int
	err      error
	quitting bool
	width    int
	height   int
}

func newModel(tr *tracker.Tracker, d plan.Date, barWidth int) model {
	in := textinput.New()
	in.Prompt = "날짜 입력: "
	in.Placeholder = "YYYY-MM-DD"
	in.CharLimit = 10
	in.Width = 12
	in.Focus()

	m := model{
		tracker:  tr,
		input:    in,
		bar:      progress.New(progress.WithSolidFill("#4CAF50"), progress.WithWidth(barWidth)),
		barWidth: barWidth,
		width:    80,
		height:   24,
	}
	m.selectDate(d)
	return m
}

func (m *model) selectDate(d plan.Date) {
	m.snap = m.tracker.At(d)
	m.err = nil
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

// dateRune reports whether r belongs in a YYYY-MM-DD input.
func dateRune(r rune) bool {
	return unicode.IsDigit(r) || r == '-'
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit

		case tea.KeyEnter:
			value := strings.TrimSpace(m.input.Value())
			if value == "" {
				return m, nil
			}
			d, err := plan.ParseDate(value)
			if err != nil {
				m.err = err
				return m, nil
			}
			m.selectDate(d)
			m.input.Reset()
			return m, nil

		case tea.KeyEsc:
			m.input.Reset()
			m.err = nil
			return m, nil

		case tea.KeyLeft:
			m.selectDate(m.snap.Date.AddDays(-1))
			return m, nil

		case tea.KeyRight:
			m.selectDate(m.snap.Date.AddDays(1))
			return m, nil

		case tea.KeyUp:
			m.selectDate(m.snap.Date.AddDays(-7))
			return m, nil

		case tea.KeyDown:
			m.selectDate(m.snap.Date.AddDays(7))
			return m, nil

		case tea.KeyBackspace:
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd

		case tea.KeyRunes:
			if len(msg.Runes) > 0 && dateRune(msg.Runes[0]) {
				var cmd tea.Cmd
				m.input, cmd = m.input.Update(msg)
				return m, cmd
			}
			switch msg.String() {
			case "q", "Q":
				m.quitting = true
				return m, tea.Quit
			case "t", "T":
				m.selectDate(m.tracker.Today())
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.Width = max(10, min(m.barWidth, msg.Width-4))
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	s := m.snap
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(report.Title))
	sb.WriteString("\n")
	sb.WriteString(ruleStyle.Render(report.Rule))
	sb.WriteString("\n\n")

	sb.WriteString(m.input.View())
	sb.WriteString("\n")
	if m.err != nil {
		sb.WriteString(errorStyle.Render(m.err.Error()))
		sb.WriteString("\n")
	}
	sb.WriteString(report.DateLine(s))
	sb.WriteString("\n")

	sb.WriteString(headStyle.Render(report.ProgressHead))
	sb.WriteString("\n")
	sb.WriteString(report.ChaptersLine(s))
	sb.WriteString("\n")

	if s.Completed() {
		sb.WriteString("\n")
		sb.WriteString(completeStyle.Render(report.CompleteMsg))
		sb.WriteString("\n")
	} else {
		sb.WriteString(headStyle.Render(report.TodayHead))
		sb.WriteString("\n")
		for _, line := range report.ReadingLines(s) {
			sb.WriteString(itemStyle.Render(line))
			sb.WriteString("\n")
		}
		if s.FinishesToday() {
			sb.WriteString(warnStyle.Render(report.FinishMsg))
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(m.bar.ViewAs(s.Fraction()))
	sb.WriteString("\n")
	sb.WriteString(report.PercentLine(s))
	sb.WriteString("\n\n")

	sb.WriteString(controlsStyle.Render("←/→: day  ↑/↓: week  T: today  ENTER: go to date  ESC: clear  Q: quit"))

	return sb.String()
}

// isTerminal reports whether f is attached to a character device.
func isTerminal(f *os.File) bool {
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}

func main() {
	dateFlag := flag.String("date", "", "Date to show as YYYY-MM-DD (default: today)")
	printFlag := flag.Bool("print", false, "Print a report instead of starting the interactive form")
	formatFlag := flag.String("format", "", "Report format for -print: text or html")
	configPath := flag.String("config", config.Path(), "Path to config file")
	showVersion := flag.Bool("v", false, "Show version information")
	showVersionLong := flag.Bool("version", false, "Show version information")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Pyeongsam - Bible Reading Plan Progress\n\n")
		fmt.Fprintf(os.Stderr, "Three chapters every weekday, five every Sunday, from January 1.\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  pyeongsam [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  pyeongsam                          Open the form at today\n")
		fmt.Fprintf(os.Stderr, "  pyeongsam -date 2024-01-07         Open the form at a date\n")
		fmt.Fprintf(os.Stderr, "  pyeongsam -print                   Print today's reading\n")
		fmt.Fprintf(os.Stderr, "  pyeongsam -print -format html      Print today's reading as HTML\n")
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  ←/→      Previous/next day\n")
		fmt.Fprintf(os.Stderr, "  ↑/↓      Previous/next week\n")
		fmt.Fprintf(os.Stderr, "  T        Today\n")
		fmt.Fprintf(os.Stderr, "  0-9, -   Type a date, ENTER to jump\n")
		fmt.Fprintf(os.Stderr, "  Q        Quit\n")
	}
	flag.Parse()

	if *showVersion || *showVersionLong {
		fmt.Printf("pyeongsam %s (commit: %s, built: %s)\n", version, commit, date)
		os.Exit(0)
	}

	cfg, tr, start, err := setup(*configPath, *dateFlag)
	if err != nil {
		fail("%v", err)
	}
	if *formatFlag != "" {
		cfg.Format = *formatFlag
	}

	if *printFlag || !isTerminal(os.Stdout) {
		r, err := report.ForFormat(cfg.Format)
		if err != nil {
			fail("%v", err)
		}
		if err := r.Render(os.Stdout, tr.At(start)); err != nil {
			fail("%v", err)
		}
		return
	}

	if os.Getenv("PYEONGSAM_DEBUG") != "" {
		f, err := tea.LogToFile("debug.log", "pyeongsam")
		if err != nil {
			fail("%v", err)
		}
		defer f.Close()
		log.Printf("starting at %s", start)
	}

	p := tea.NewProgram(newModel(tr, start, cfg.BarWidth), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fail("%v", err)
	}
}
