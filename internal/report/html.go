package report

import (
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/metcalfc/pyeongsam/internal/tracker"
)

// HTML renders a snapshot as a standalone <section> fragment.
type HTML struct{}

func (HTML) Render(w io.Writer, s tracker.Snapshot) error {
	if err := html.Render(w, BuildHTML(s)); err != nil {
		return fmt.Errorf("rendering html: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// BuildHTML returns the node tree for s.
func BuildHTML(s tracker.Snapshot) *html.Node {
	root := element(atom.Section, "pyeongsam")
	root.AppendChild(textElement(atom.H1, "", Title))
	root.AppendChild(textElement(atom.P, "rule", Rule))
	root.AppendChild(textElement(atom.P, "date", DateLine(s)))
	root.AppendChild(textElement(atom.H2, "", ProgressHead))
	root.AppendChild(textElement(atom.P, "chapters", ChaptersLine(s)))

	if s.Completed() {
		root.AppendChild(textElement(atom.P, "complete", CompleteMsg))
	} else {
		root.AppendChild(textElement(atom.H3, "", TodayHead))
		list := element(atom.Ul, "reading")
		for _, l := range ReadingLines(s) {
			list.AppendChild(textElement(atom.Li, "", l))
		}
		root.AppendChild(list)
		if s.FinishesToday() {
			root.AppendChild(textElement(atom.P, "finished", FinishMsg))
		}
	}

	bar := element(atom.Progress, "")
	bar.Attr = append(bar.Attr,
		html.Attribute{Key: "max", Val: "100"},
		html.Attribute{Key: "value", Val: fmt.Sprintf("%.1f", s.DisplayPercent())},
	)
	root.AppendChild(bar)
	root.AppendChild(textElement(atom.P, "percent", PercentLine(s)))
	return root
}

func element(a atom.Atom, class string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return n
}

func textElement(a atom.Atom, class, text string) *html.Node {
	n := element(a, class)
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return n
}
