//go:build gui

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/metcalfc/pyeongsam/internal/config"
	"github.com/metcalfc/pyeongsam/internal/plan"
	"github.com/metcalfc/pyeongsam/internal/report"
	"github.com/metcalfc/pyeongsam/internal/tracker"
)

// form holds the widgets that change with the selected date.
type form struct {
	tracker   *tracker.Tracker
	date      *widget.DateEntry
	dateLabel *widget.Label
	chapters  *widget.Label
	todayHead *widget.Label
	reading   *widget.Label
	banner    *widget.Label
	bar       *widget.ProgressBar
	percent   *widget.Label
	current   plan.Date
}

func newForm(tr *tracker.Tracker) *form {
	f := &form{
		tracker:   tr,
		date:      widget.NewDateEntry(),
		dateLabel: widget.NewLabel(""),
		chapters:  widget.NewLabel(""),
		todayHead: widget.NewLabelWithStyle(report.TodayHead, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		reading:   widget.NewLabel(""),
		banner:    widget.NewLabel(""),
		bar:       widget.NewProgressBar(),
		percent:   widget.NewLabel(""),
	}
	f.banner.Importance = widget.SuccessImportance
	f.banner.Wrapping = fyne.TextWrapWord
	f.date.OnChanged = func(t *time.Time) {
		if t != nil {
			f.show(plan.DateOf(*t))
		}
	}
	return f
}

func (f *form) content() fyne.CanvasObject {
	return container.NewVBox(
		widget.NewLabelWithStyle(report.Title, fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle(report.Rule, fyne.TextAlignCenter, fyne.TextStyle{Italic: true}),
		f.date,
		f.dateLabel,
		widget.NewSeparator(),
		widget.NewLabelWithStyle(report.ProgressHead, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		f.chapters,
		f.todayHead,
		f.reading,
		f.banner,
		f.bar,
		f.percent,
	)
}

// show recomputes and redraws everything for d.
func (f *form) show(d plan.Date) {
	if d == f.current && f.chapters.Text != "" {
		return
	}
	f.current = d
	s := f.tracker.At(d)

	f.dateLabel.SetText(report.DateLine(s))
	f.chapters.SetText(report.ChaptersLine(s))

	switch {
	case s.Completed():
		f.todayHead.Hide()
		f.reading.Hide()
		f.banner.SetText(report.CompleteMsg)
		f.banner.Importance = widget.SuccessImportance
		f.banner.Show()
	case s.FinishesToday():
		f.showReading(s)
		f.banner.SetText(report.FinishMsg)
		f.banner.Importance = widget.WarningImportance
		f.banner.Show()
	default:
		f.showReading(s)
		f.banner.Hide()
	}

	f.bar.SetValue(s.Fraction())
	f.percent.SetText(report.PercentLine(s))
}

func (f *form) showReading(s tracker.Snapshot) {
	f.reading.SetText(strings.Join(report.ReadingLines(s), "\n"))
	f.todayHead.Show()
	f.reading.Show()
}

// step moves the selection by n days and syncs the date entry.
func (f *form) step(n int) {
	t := f.current.AddDays(n).Time()
	f.date.SetDate(&t)
	f.show(plan.DateOf(t))
}

func main() {
	dateFlag := flag.String("date", "", "Date to show as YYYY-MM-DD (default: today)")
	configPath := flag.String("config", config.Path(), "Path to config file")
	showVersion := flag.Bool("v", false, "Show version information")
	showVersionLong := flag.Bool("version", false, "Show version information")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Gpyeongsam - Bible Reading Plan Progress (GUI)\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  gpyeongsam [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion || *showVersionLong {
		fmt.Printf("gpyeongsam %s (commit: %s, built: %s)\n", version, commit, date)
		os.Exit(0)
	}

	_, tr, start, err := setup(*configPath, *dateFlag)
	if err != nil {
		fail("%v", err)
	}

	a := app.New()
	w := a.NewWindow("평삼주오")

	f := newForm(tr)
	t := start.Time()
	f.date.SetDate(&t)
	f.show(start)

	// Arrow keys reach the canvas only while the date entry is unfocused.
	w.Canvas().SetOnTypedKey(func(key *fyne.KeyEvent) {
		switch key.Name {
		case fyne.KeyLeft:
			f.step(-1)
		case fyne.KeyRight:
			f.step(1)
		case fyne.KeyUp:
			f.step(-7)
		case fyne.KeyDown:
			f.step(7)
		case fyne.KeyEscape, fyne.KeyQ:
			a.Quit()
		}
	})
	w.Canvas().SetOnTypedRune(func(r rune) {
		switch r {
		case 't', 'T':
			today := tr.Today().Time()
			f.date.SetDate(&today)
			f.show(tr.Today())
		}
	})

	w.SetContent(container.NewPadded(f.content()))
	w.Resize(fyne.NewSize(480, 640))
	w.ShowAndRun()
}
