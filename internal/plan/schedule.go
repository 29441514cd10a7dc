package plan

import "time"

const (
	WeekdayChapters = 3
	SundayChapters  = 5
)

// ChaptersForDay returns the chapters due on d.
func ChaptersForDay(d Date) int {
	if d.Weekday() == time.Sunday {
		return SundayChapters
	}
	return WeekdayChapters
}

// Accumulate returns the chapters due from start through target inclusive.
// An inverted range yields 0.
func Accumulate(start, target Date) int {
	total := 0
	for d := start; !d.After(target); d = d.AddDays(1) {
		total += ChaptersForDay(d)
	}
	return total
}
