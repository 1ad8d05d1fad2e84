package cdk

import (
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/odvcencio/cdk/pkg/ui/backend"
	"github.com/odvcencio/cdk/pkg/ui/terminal"
)

// AlphaListContent is what NewAlphaList needs besides position and options.
// A zero Height shows every item, a zero Width fits the longest item.
type AlphaListContent struct {
	Title  string
	Label  string
	Items  []string
	Width  int
	Height int
	Filler rune
}

// AlphaList is a pick list kept in alphabetical order with incremental
// prefix search.
type AlphaList struct {
	widget
	interactive

	title     string
	label     string
	items     []string
	selected  int
	top       int
	prefix    []rune
	filler    rune
	highlight backend.Style
	width     int
	height    int
	collator  *collate.Collator
}

// NewAlphaList creates an alpha list on c and registers it.
func NewAlphaList(c *Canvas, at Position, content AlphaListContent, opts DrawingOptions) (*AlphaList, error) {
	if err := c.usable(); err != nil {
		return nil, err
	}
	l := &AlphaList{
		title:     content.Title,
		label:     content.Label,
		filler:    content.Filler,
		highlight: c.theme.Highlight,
		width:     max(content.Width, 0),
		height:    max(content.Height, 0),
	}
	if l.filler == 0 {
		l.filler = c.theme.Filler
	}
	l.SetContents(content.Items)

	if err := l.attach(c, KindAlphaList, l, at, opts); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *AlphaList) sorter() *collate.Collator {
	if l.collator == nil {
		l.collator = collate.New(language.Und, collate.IgnoreCase)
	}
	return l.collator
}

// Contents returns the items in display order.
func (l *AlphaList) Contents() []string {
	return slices.Clone(l.items)
}

// SetContents replaces the items. They are sorted, the selection and prefix
// reset.
func (l *AlphaList) SetContents(items []string) {
	l.items = slices.Clone(items)
	l.sorter().SortStrings(l.items)
	l.selected = 0
	l.top = 0
	l.prefix = nil
}

// AddItem inserts item at its sorted position. The selected item stays
// selected.
func (l *AlphaList) AddItem(item string) {
	cur := l.Selected()
	i, _ := slices.BinarySearchFunc(l.items, item, l.sorter().CompareString)
	l.items = slices.Insert(l.items, i, item)
	if cur != "" && i <= l.selected {
		l.selected++
	}
	l.scroll()
}

// DeleteItem removes the first item equal to item and reports whether one
// was found.
func (l *AlphaList) DeleteItem(item string) bool {
	i := slices.Index(l.items, item)
	if i < 0 {
		return false
	}
	l.items = slices.Delete(l.items, i, i+1)
	if i < l.selected || l.selected >= len(l.items) {
		l.selected = max(l.selected-1, 0)
	}
	l.scroll()
	return true
}

// CurrentItem returns the selected index.
func (l *AlphaList) CurrentItem() int { return l.selected }

// SetCurrentItem selects item i, clamped to the list.
func (l *AlphaList) SetCurrentItem(i int) {
	l.selected = max(min(i, len(l.items)-1), 0)
	l.scroll()
}

// Selected returns the selected item, "" when the list is empty.
func (l *AlphaList) Selected() string {
	if len(l.items) == 0 {
		return ""
	}
	return l.items[l.selected]
}

// Prefix returns the search text typed so far.
func (l *AlphaList) Prefix() string { return string(l.prefix) }

func (l *AlphaList) FillerChar() rune             { return l.filler }
func (l *AlphaList) SetFillerChar(r rune)         { l.filler = r }
func (l *AlphaList) Highlight() backend.Style     { return l.highlight }
func (l *AlphaList) SetHighlight(s backend.Style) { l.highlight = s }

// Activate runs the list until an item is confirmed or the list is
// abandoned. Confirming returns the selected item, every other exit "".
func (l *AlphaList) Activate(keys ...terminal.KeyEvent) (string, error) {
	return activate[string](&l.widget, &l.interactive, alphaListEditor{l}, keys)
}

// match returns the first item starting with prefix, ignoring case.
func (l *AlphaList) match(prefix string) int {
	prefix = strings.ToLower(prefix)
	return slices.IndexFunc(l.items, func(item string) bool {
		return strings.HasPrefix(strings.ToLower(item), prefix)
	})
}

func (l *AlphaList) rows() int {
	if l.height > 0 {
		return l.height
	}
	return max(len(l.items), 1)
}

func (l *AlphaList) scroll() {
	rows := l.rows()
	if l.selected < l.top {
		l.top = l.selected
	}
	if l.selected >= l.top+rows {
		l.top = l.selected - rows + 1
	}
	l.top = max(min(l.top, len(l.items)-rows), 0)
}

func (l *AlphaList) selectIndex(i int) editResult {
	if len(l.items) == 0 {
		return editRejected
	}
	i = max(min(i, len(l.items)-1), 0)
	if i == l.selected {
		return editRejected
	}
	l.selected = i
	l.prefix = []rune(l.items[i])
	l.scroll()
	return editAccepted
}

type alphaListEditor struct{ l *AlphaList }

func (ed alphaListEditor) begin() { ed.l.prefix = nil }

func (ed alphaListEditor) edit(key terminal.KeyEvent) editResult {
	l := ed.l
	switch {
	case key.IsPrintable():
		next := string(l.prefix) + string(key.Rune)
		i := l.match(next)
		if i < 0 {
			return editRejected
		}
		l.prefix = []rune(next)
		l.selected = i
		l.scroll()
		return editAccepted
	case key.Is(terminal.KeyBackspace):
		if len(l.prefix) == 0 {
			return editRejected
		}
		l.prefix = l.prefix[:len(l.prefix)-1]
		if i := l.match(string(l.prefix)); len(l.prefix) > 0 && i >= 0 {
			l.selected = i
			l.scroll()
		}
		return editAccepted
	case key.Is(terminal.KeyUp):
		return l.selectIndex(l.selected - 1)
	case key.Is(terminal.KeyDown):
		return l.selectIndex(l.selected + 1)
	case key.Is(terminal.KeyPageUp):
		return l.selectIndex(l.selected - l.rows())
	case key.Is(terminal.KeyPageDown):
		return l.selectIndex(l.selected + l.rows())
	case key.Is(terminal.KeyHome):
		return l.selectIndex(0)
	case key.Is(terminal.KeyEnd):
		return l.selectIndex(len(l.items) - 1)
	default:
		return editIgnored
	}
}

func (ed alphaListEditor) result(exit ExitType) string {
	if exit != ExitNormal {
		return ""
	}
	return ed.l.Selected()
}

func (ed alphaListEditor) display() string { return string(ed.l.prefix) }

func (l *AlphaList) frame() Frame {
	f := l.baseFrame()

	width := l.width
	for _, item := range l.items {
		width = max(width, utf8.RuneCountInString(item))
	}
	width = max(width, 1)

	if l.title != "" {
		f.Lines = append(f.Lines, TextLine(l.title))
	}

	field := []rune(string(l.prefix))
	if len(field) > width {
		field = field[len(field)-width:]
	}
	for len(field) < width {
		field = append(field, l.filler)
	}
	f.Lines = append(f.Lines, TextLine(l.label+string(field)))
	f.Cursor = &Cursor{X: utf8.RuneCountInString(l.label) + min(len(l.prefix), width-1), Y: len(f.Lines) - 1}

	rows := l.rows()
	for i := l.top; i < l.top+rows; i++ {
		text := ""
		if i < len(l.items) {
			text = l.items[i]
		}
		pad := width - utf8.RuneCountInString(text)
		line := TextLine(text + strings.Repeat(" ", max(pad, 0)))
		if i == l.selected && i < len(l.items) {
			line.Spans = []Span{{Start: 0, End: width, Style: l.highlight}}
		}
		f.Lines = append(f.Lines, line)
	}
	return f
}
