// Package report renders tracker snapshots for non-interactive output.
package report

import (
	"fmt"
	"io"

	"github.com/metcalfc/pyeongsam/internal/tracker"
)

// Strings shared by every front end.
const (
	Title        = "📖 평삼주오: 성경 읽기 진도 계산기"
	Rule         = "📌 평일에는 3장, 주일에는 5장 읽기"
	ProgressHead = "📅 읽기 진도"
	TodayHead    = "📖 오늘 읽을 부분:"
	Check        = "✔︎"
	CompleteMsg  = "🎊 축하합니다! 올해 성경 읽기를 완료하셨습니다!"
	FinishMsg    = "올해의 성경 읽기를 완료했습니다!"
)

var weekdays = [...]string{"일", "월", "화", "수", "목", "금", "토"}

// DateLine formats the selected date with its Korean weekday.
func DateLine(s tracker.Snapshot) string {
	return fmt.Sprintf("🗓️ %s (%s)", s.Date, weekdays[s.Date.Weekday()])
}

// ChaptersLine formats the running total.
func ChaptersLine(s tracker.Snapshot) string {
	return fmt.Sprintf("총 읽은 장 수: %d장", s.ChaptersRead)
}

// PercentLine formats the clamped progress to one decimal place.
func PercentLine(s tracker.Snapshot) string {
	return fmt.Sprintf("전체 진행률: %.1f%%", s.DisplayPercent())
}

// ReadingLines returns today's chapters as checklist entries.
func ReadingLines(s tracker.Snapshot) []string {
	lines := make([]string, 0, len(s.Reading.Chapters))
	for _, p := range s.Reading.Chapters {
		lines = append(lines, Check+" "+p.String())
	}
	return lines
}

// Renderer writes a snapshot in one output format.
type Renderer interface {
	Render(w io.Writer, s tracker.Snapshot) error
}

// ForFormat returns the renderer registered under name.
func ForFormat(name string) (Renderer, error) {
	switch name {
	case "text":
		return Text{}, nil
	case "html":
		return HTML{}, nil
	}
	return nil, fmt.Errorf("unknown format %q", name)
}
