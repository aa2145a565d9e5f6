package places

import (
	"strings"

	"github.com/ytget/tripwise/internal/model"
)

// NoHighlight is the highlight index when no row is highlighted
const NoHighlight = -1

// Searcher ranks cities for a query
type Searcher interface {
	Search(query string, opts SearchOptions) []model.City
}

// Autocomplete is the state of a destination input with a suggestion panel
type Autocomplete struct {
	source      Searcher
	opts        SearchOptions
	query       string
	suggestions []model.City
	highlight   int
	open        bool
}

// NewAutocomplete creates matcher state backed by source
func NewAutocomplete(source Searcher, opts SearchOptions) *Autocomplete {
	return &Autocomplete{
		source:    source,
		opts:      opts,
		highlight: NoHighlight,
	}
}

// SetOptions replaces search options; takes effect on the next search
func (a *Autocomplete) SetOptions(opts SearchOptions) {
	a.opts = opts
}

// Query returns the current text
func (a *Autocomplete) Query() string { return a.query }

// Suggestions returns the ranked candidates currently shown
func (a *Autocomplete) Suggestions() []model.City { return a.suggestions }

// Highlight returns the highlighted row or NoHighlight
func (a *Autocomplete) Highlight() int { return a.highlight }

// IsOpen reports whether the suggestion panel is visible
func (a *Autocomplete) IsOpen() bool { return a.open }

// SetQuery records typed text and refreshes suggestions
func (a *Autocomplete) SetQuery(q string) {
	a.query = q
	a.refresh()
}

// Focus re-runs the search for the current text
func (a *Autocomplete) Focus() {
	a.refresh()
}

func (a *Autocomplete) refresh() {
	a.highlight = NoHighlight
	if len([]rune(strings.TrimSpace(a.query))) < MinQueryLength {
		a.suggestions = nil
		a.open = false
		return
	}
	a.suggestions = a.source.Search(a.query, a.opts)
	a.open = len(a.suggestions) > 0
}

// Select commits a city: the text becomes the canonical name and the panel closes
func (a *Autocomplete) Select(city model.City) {
	a.query = city.Name
	a.close()
}

// Next moves the highlight down, stopping at the last row
func (a *Autocomplete) Next() {
	if !a.open {
		return
	}
	if a.highlight < len(a.suggestions)-1 {
		a.highlight++
	}
}

// Prev moves the highlight up, down to NoHighlight
func (a *Autocomplete) Prev() {
	if !a.open {
		return
	}
	if a.highlight > NoHighlight {
		a.highlight--
	}
}

// Hover highlights row i when it is in range
func (a *Autocomplete) Hover(i int) {
	if !a.open || i < 0 || i >= len(a.suggestions) {
		return
	}
	a.highlight = i
}

// Confirm selects the highlighted city. It returns false when nothing was committed.
func (a *Autocomplete) Confirm() (model.City, bool) {
	if !a.open || a.highlight < 0 || a.highlight >= len(a.suggestions) {
		return model.City{}, false
	}
	city := a.suggestions[a.highlight]
	a.Select(city)
	return city, true
}

// Dismiss closes the panel, keeping the text
func (a *Autocomplete) Dismiss() {
	if !a.open {
		return
	}
	a.open = false
	a.highlight = NoHighlight
}

// ClickOutside closes the panel, keeping the text
func (a *Autocomplete) ClickOutside() {
	a.open = false
	a.highlight = NoHighlight
}

// Clear empties the text and closes the panel
func (a *Autocomplete) Clear() {
	a.query = ""
	a.close()
}

func (a *Autocomplete) close() {
	a.suggestions = nil
	a.highlight = NoHighlight
	a.open = false
}
