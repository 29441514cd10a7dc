package plan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBibleTable(t *testing.T) {
	assert.Equal(t, 66, Bible.Len())
	assert.Equal(t, 1189, Bible.Total())
	assert.Equal(t, Book{"창세기", 50}, Bible.Book(0))
	assert.Equal(t, Book{"요한계시록", 22}, Bible.Book(65))

	i, ok := Bible.Index("시편")
	require.True(t, ok)
	assert.Equal(t, 150, Bible.Book(i).Chapters)

	_, ok = Bible.Index("토빗")
	assert.False(t, ok)
}

func TestBooksReturnsCopy(t *testing.T) {
	books := Bible.Books()
	books[0].Chapters = 1
	assert.Equal(t, 50, Bible.Book(0).Chapters)
}

func TestNewBookTableErrors(t *testing.T) {
	tests := []struct {
		name  string
		books []Book
		want  error
	}{
		{"empty", nil, ErrEmptyTable},
		{"zero chapters", []Book{{"A", 2}, {"B", 0}}, ErrBadChapterCount},
		{"negative chapters", []Book{{"A", -1}}, ErrBadChapterCount},
		{"duplicate", []Book{{"A", 2}, {"A", 3}}, ErrDuplicateBook},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBookTable(tt.books)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestMustBookTablePanics(t *testing.T) {
	assert.Panics(t, func() { MustBookTable(nil) })
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		total   int
		book    string
		chapter int
	}{
		{"start", 0, "창세기", 1},
		{"negative clamps to start", -7, "창세기", 1},
		{"last chapter of first book", 49, "창세기", 50},
		{"book boundary", 50, "출애굽기", 1},
		{"inside exodus", 53, "출애굽기", 4},
		{"single-chapter book", 888, "오바댜", 1},
		{"last chapter", 1188, "요한계시록", 22},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Bible.Resolve(tt.total)
			assert.False(t, p.Done)
			assert.Equal(t, tt.book, p.Book)
			assert.Equal(t, tt.chapter, p.Chapter)
		})
	}
}

func TestResolveCompleted(t *testing.T) {
	assert.Equal(t, Completed, Bible.Resolve(1189))
	assert.Equal(t, Completed, Bible.Resolve(5000))
	assert.Equal(t, CompletedLabel, Bible.Resolve(1189).String())
}

func TestResolveChapterInRange(t *testing.T) {
	for total := 0; total < Bible.Total(); total++ {
		p := Bible.Resolve(total)
		require.False(t, p.Done, "total %d", total)
		require.GreaterOrEqual(t, p.Chapter, 1)
		require.LessOrEqual(t, p.Chapter, Bible.Book(p.Index).Chapters)
		require.Equal(t, total, Bible.Offset(p))
	}
}

func TestPositionString(t *testing.T) {
	assert.Equal(t, "출애굽기 1장", Bible.Resolve(50).String())
}

func TestWalk(t *testing.T) {
	names := func(r Reading) []string {
		var out []string
		for _, p := range r.Chapters {
			out = append(out, p.String())
		}
		return out
	}

	t.Run("within one book", func(t *testing.T) {
		r := Bible.Walk(Bible.Resolve(3), 3)
		assert.Equal(t, []string{"창세기 4장", "창세기 5장", "창세기 6장"}, names(r))
		assert.Equal(t, "창세기 7장", r.Next.String())
		assert.False(t, r.Exhausted)
	})

	t.Run("rolls into next book", func(t *testing.T) {
		i, _ := Bible.Index("룻기")
		r := Bible.Walk(Position{Index: i, Book: "룻기", Chapter: 3}, 5)
		assert.Equal(t, []string{"룻기 3장", "룻기 4장", "사무엘상 1장", "사무엘상 2장", "사무엘상 3장"}, names(r))
		assert.Equal(t, "사무엘상 4장", r.Next.String())
	})

	t.Run("skips through single-chapter book", func(t *testing.T) {
		i, _ := Bible.Index("아모스")
		r := Bible.Walk(Position{Index: i, Book: "아모스", Chapter: 9}, 3)
		assert.Equal(t, []string{"아모스 9장", "오바댜 1장", "요나 1장"}, names(r))
	})

	t.Run("stops at end of table", func(t *testing.T) {
		r := Bible.Walk(Bible.Resolve(1187), 5)
		assert.Equal(t, []string{"요한계시록 21장", "요한계시록 22장"}, names(r))
		assert.True(t, r.Exhausted)
		assert.Equal(t, Completed, r.Next)
	})

	t.Run("ends exactly at end of table", func(t *testing.T) {
		r := Bible.Walk(Bible.Resolve(1186), 3)
		assert.Len(t, r.Chapters, 3)
		assert.False(t, r.Exhausted)
		assert.Equal(t, Completed, r.Next)
	})

	t.Run("from completed", func(t *testing.T) {
		r := Bible.Walk(Completed, 3)
		assert.Empty(t, r.Chapters)
		assert.True(t, r.Exhausted)
	})

	t.Run("zero chapters", func(t *testing.T) {
		from := Bible.Resolve(10)
		r := Bible.Walk(from, 0)
		assert.Empty(t, r.Chapters)
		assert.Equal(t, from, r.Next)
	})
}

func TestWalkMatchesResolve(t *testing.T) {
	for total := 0; total < Bible.Total(); total += 7 {
		for _, n := range []int{WeekdayChapters, SundayChapters} {
			r := Bible.Walk(Bible.Resolve(total), n)
			assert.Equal(t, Bible.Resolve(total+n), r.Next, "total %d n %d", total, n)
		}
	}
}

func TestChaptersForDay(t *testing.T) {
	start := NewDate(2024, time.January, 1)
	for i := 0; i < 14; i++ {
		d := start.AddDays(i)
		want := WeekdayChapters
		if d.Weekday() == time.Sunday {
			want = SundayChapters
		}
		assert.Equal(t, want, ChaptersForDay(d), d.String())
	}
	assert.Equal(t, SundayChapters, ChaptersForDay(NewDate(2024, time.January, 7)))
	assert.Equal(t, WeekdayChapters, ChaptersForDay(NewDate(2024, time.January, 6)))
}

func TestAccumulate(t *testing.T) {
	jan1 := NewDate(2024, time.January, 1)

	t.Run("first week", func(t *testing.T) {
		assert.Equal(t, 23, Accumulate(jan1, NewDate(2024, time.January, 7)))
	})

	t.Run("single day", func(t *testing.T) {
		for i := 0; i < 7; i++ {
			d := jan1.AddDays(i)
			assert.Equal(t, ChaptersForDay(d), Accumulate(d, d))
		}
	})

	t.Run("inverted range", func(t *testing.T) {
		assert.Equal(t, 0, Accumulate(NewDate(2024, time.March, 1), jan1))
	})

	t.Run("leap year", func(t *testing.T) {
		// 366 days, 52 Sundays
		assert.Equal(t, 1202, Accumulate(jan1, NewDate(2024, time.December, 31)))
	})

	t.Run("monotonic by one day", func(t *testing.T) {
		prev := Accumulate(jan1, jan1)
		for d := jan1.AddDays(1); d.Year == 2024; d = d.AddDays(1) {
			got := Accumulate(jan1, d)
			require.Equal(t, prev+ChaptersForDay(d), got, d.String())
			prev = got
		}
	})
}

func TestDayBoundaryContinuity(t *testing.T) {
	jan1 := NewDate(2025, time.January, 1)
	for d := jan1; d.Year == 2025; d = d.AddDays(1) {
		next := d.AddDays(1)
		r := Bible.Walk(Bible.Resolve(Accumulate(jan1, d)), ChaptersForDay(next))
		want := Completed
		if next.Year == 2025 {
			want = Bible.Resolve(Accumulate(jan1, next))
		}
		require.Equal(t, want, r.Next, d.String())
	}
}

func TestDate(t *testing.T) {
	d, err := ParseDate("2024-02-28")
	require.NoError(t, err)
	assert.Equal(t, Date{2024, time.February, 28}, d)
	assert.Equal(t, "2024-02-29", d.AddDays(1).String())
	assert.Equal(t, "2024-03-01", d.AddDays(2).String())
	assert.Equal(t, "2023-12-31", NewDate(2024, time.January, 1).AddDays(-1).String())
	assert.Equal(t, Date{2024, time.February, 1}, NewDate(2024, time.January, 32))
	assert.Equal(t, Date{2024, time.January, 1}, d.StartOfYear())

	assert.True(t, d.Before(d.AddDays(1)))
	assert.True(t, d.AddDays(1).After(d))
	assert.Equal(t, 0, d.Compare(d))

	_, err = ParseDate("2024-13-01")
	assert.Error(t, err)
	_, err = ParseDate("tomorrow")
	assert.Error(t, err)
}

func TestDateOfIgnoresClock(t *testing.T) {
	seoul := time.FixedZone("KST", 9*60*60)
	late := time.Date(2024, time.January, 6, 23, 59, 0, 0, seoul)
	assert.Equal(t, NewDate(2024, time.January, 6), DateOf(late))
	assert.Equal(t, NewDate(2024, time.January, 6), DateOf(late.In(time.UTC)))
}
