// Package plan implements the yearly 평삼주오 reading plan: three chapters on
// weekdays, five on Sundays, walked through the canonical 66-book table.
package plan

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrEmptyTable      = errors.New("book table is empty")
	ErrBadChapterCount = errors.New("chapter count must be positive")
	ErrDuplicateBook   = errors.New("duplicate book name")
)

// Book is one entry of a BookTable.
type Book struct {
	Name     string
	Chapters int
}

// BookTable is an immutable, ordered list of books with cumulative chapter
// offsets computed once at construction.
type BookTable struct {
	books   []Book
	offsets []int // chapters in all books before index i
	ends    []int // offsets[i] + books[i].Chapters
	index   map[string]int
	total   int
}

// NewBookTable validates books and precomputes offsets.
func NewBookTable(books []Book) (*BookTable, error) {
	if len(books) == 0 {
		return nil, ErrEmptyTable
	}

	t := &BookTable{
		books:   make([]Book, len(books)),
		offsets: make([]int, len(books)),
		ends:    make([]int, len(books)),
		index:   make(map[string]int, len(books)),
	}
	copy(t.books, books)

	sum := 0
	for i, b := range t.books {
		if b.Chapters <= 0 {
			return nil, fmt.Errorf("%s: %w", b.Name, ErrBadChapterCount)
		}
		if _, ok := t.index[b.Name]; ok {
			return nil, fmt.Errorf("%s: %w", b.Name, ErrDuplicateBook)
		}
		t.index[b.Name] = i
		t.offsets[i] = sum
		sum += b.Chapters
		t.ends[i] = sum
	}
	t.total = sum
	return t, nil
}

// MustBookTable is like NewBookTable but panics on invalid input.
func MustBookTable(books []Book) *BookTable {
	t, err := NewBookTable(books)
	if err != nil {
		panic(err)
	}
	return t
}

// Len returns the number of books.
func (t *BookTable) Len() int { return len(t.books) }

// Total returns the number of chapters across all books.
func (t *BookTable) Total() int { return t.total }

// Book returns the book at index i.
func (t *BookTable) Book(i int) Book { return t.books[i] }

// Books returns a copy of the table's entries.
func (t *BookTable) Books() []Book {
	out := make([]Book, len(t.books))
	copy(out, t.books)
	return out
}

// Index returns the position of the named book.
func (t *BookTable) Index(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

// Offset returns the number of chapters that precede p. A completed
// position maps to Total.
func (t *BookTable) Offset(p Position) int {
	if p.Done || p.Index < 0 || p.Index >= len(t.books) {
		return t.total
	}
	return t.offsets[p.Index] + p.Chapter - 1
}

// Resolve maps a cumulative chapter count onto the next unread chapter.
// Counts at a book boundary land on chapter 1 of the following book.
func (t *BookTable) Resolve(total int) Position {
	if total < 0 {
		total = 0
	}
	i := sort.Search(len(t.ends), func(i int) bool { return t.ends[i] > total })
	if i == len(t.ends) {
		return Completed
	}
	return Position{
		Index:   i,
		Book:    t.books[i].Name,
		Chapter: total - t.offsets[i] + 1,
	}
}

// Bible is the canonical 66-book table, 1189 chapters in all.
var Bible = MustBookTable([]Book{
	// 구약
	{"창세기", 50},
	{"출애굽기", 40},
	{"레위기", 27},
	{"민수기", 36},
	{"신명기", 34},
	{"여호수아", 24},
	{"사사기", 21},
	{"룻기", 4},
	{"사무엘상", 31},
	{"사무엘하", 24},
	{"열왕기상", 22},
	{"열왕기하", 25},
	{"역대상", 29},
	{"역대하", 36},
	{"에스라", 10},
	{"느헤미야", 13},
	{"에스더", 10},
	{"욥기", 42},
	{"시편", 150},
	{"잠언", 31},
	{"전도서", 12},
	{"아가", 8},
	{"이사야", 66},
	{"예레미야", 52},
	{"예레미야애가", 5},
	{"에스겔", 48},
	{"다니엘", 12},
	{"호세아", 14},
	{"요엘", 3},
	{"아모스", 9},
	{"오바댜", 1},
	{"요나", 4},
	{"미가", 7},
	{"나훔", 3},
	{"하박국", 3},
	{"스바냐", 3},
	{"학개", 2},
	{"스가랴", 14},
	{"말라기", 4},
	// 신약
	{"마태복음", 28},
	{"마가복음", 16},
	{"누가복음", 24},
	{"요한복음", 21},
	{"사도행전", 28},
	{"로마서", 16},
	{"고린도전서", 16},
	{"고린도후서", 13},
	{"갈라디아서", 6},
	{"에베소서", 6},
	{"빌립보서", 4},
	{"골로새서", 4},
	{"데살로니가전서", 5},
	{"데살로니가후서", 3},
	{"디모데전서", 6},
	{"디모데후서", 4},
	{"디도서", 3},
	{"빌레몬서", 1},
	{"히브리서", 13},
	{"야고보서", 5},
	{"베드로전서", 5},
	{"베드로후서", 3},
	{"요한일서", 5},
	{"요한이서", 1},
	{"요한삼서", 1},
	{"유다서", 1},
	{"요한계시록", 22},
})
