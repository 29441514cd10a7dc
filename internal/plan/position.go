package plan

import "fmt"

// CompletedLabel is shown in place of a book name once the plan is done.
const CompletedLabel = "완독"

// Position is a chapter within a BookTable, or the Completed sentinel.
type Position struct {
	Index   int // book index in the table
	Book    string
	Chapter int // 1-based
	Done    bool
}

// Completed marks a count that has consumed the whole table.
var Completed = Position{Index: -1, Book: CompletedLabel, Done: true}

func (p Position) String() string {
	if p.Done {
		return CompletedLabel
	}
	return fmt.Sprintf("%s %d장", p.Book, p.Chapter)
}

// Reading is the list of chapters due on one day.
type Reading struct {
	Chapters []Position
	// Next is the first chapter after the list.
	Next Position
	// Exhausted is set when the table ran out before the list was full.
	Exhausted bool
}

// Walk lists n chapters starting at from, rolling over into the next book
// when one runs out. It stops early, without wrapping, at the end of the
// table.
func (t *BookTable) Walk(from Position, n int) Reading {
	from = t.Resolve(t.Offset(from))
	if from.Done {
		return Reading{Next: Completed, Exhausted: n > 0}
	}

	r := Reading{Chapters: make([]Position, 0, n)}
	idx, ch := from.Index, from.Chapter
	for remaining := n; remaining > 0; {
		book := t.books[idx]
		left := book.Chapters - ch + 1
		take := min(left, remaining)
		for i := 0; i < take; i++ {
			r.Chapters = append(r.Chapters, Position{Index: idx, Book: book.Name, Chapter: ch + i})
		}
		remaining -= take
		ch += take

		if ch > book.Chapters {
			if idx+1 >= len(t.books) {
				r.Next = Completed
				r.Exhausted = remaining > 0
				return r
			}
			idx++
			ch = 1
		}
	}

	r.Next = Position{Index: idx, Book: t.books[idx].Name, Chapter: ch}
	return r
}
