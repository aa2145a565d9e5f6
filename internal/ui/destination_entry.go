package ui

import (
	"image/color"
	"sync/atomic"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/tripwise/internal/model"
	"github.com/ytget/tripwise/internal/places"
)

// DestinationEntry is a single-line entry with a city suggestion panel.
// Arrow keys move the highlight, Return commits it and Escape closes the panel.
// All methods must be called on the Fyne goroutine.
type DestinationEntry struct {
	widget.Entry

	ac         *places.Autocomplete
	rows       []*suggestionRow
	list       *fyne.Container
	panel      *fyne.Container
	focused    bool
	selecting  bool
	pressing   atomic.Bool
	closeTimer *time.Timer

	// OnQueryChanged is called with the entry text after every edit or selection
	OnQueryChanged func(string)
}

// NewDestinationEntry creates the entry around an autocomplete state machine
func NewDestinationEntry(ac *places.Autocomplete) *DestinationEntry {
	e := &DestinationEntry{ac: ac}
	e.ExtendBaseWidget(e)
	e.OnChanged = e.onTextChanged

	e.list = container.NewVBox()
	bg := canvas.NewRectangle(theme.Color(theme.ColorNameInputBackground))
	bg.CornerRadius = theme.Size(theme.SizeNameInputRadius)
	e.panel = container.NewStack(bg, e.list)
	e.panel.Hide()
	return e
}

// Panel returns the suggestion panel, placed directly under the entry by the caller
func (e *DestinationEntry) Panel() fyne.CanvasObject {
	return e.panel
}

// Autocomplete exposes the underlying state
func (e *DestinationEntry) Autocomplete() *places.Autocomplete {
	return e.ac
}

// Load replaces the text without opening the panel
func (e *DestinationEntry) Load(text string) {
	e.selecting = true
	e.SetText(text)
	e.selecting = false
	e.ac.SetQuery(text)
	e.ac.ClickOutside()
	e.refreshPanel()
}

// Clear empties the entry and closes the panel
func (e *DestinationEntry) Clear() {
	e.ac.Clear()
	e.selecting = true
	e.SetText("")
	e.selecting = false
	e.refreshPanel()
	e.notify("")
}

// TypedKey handles suggestion navigation while the panel is open
func (e *DestinationEntry) TypedKey(key *fyne.KeyEvent) {
	if e.ac.IsOpen() {
		switch key.Name {
		case fyne.KeyDown:
			e.ac.Next()
			e.refreshPanel()
			return
		case fyne.KeyUp:
			e.ac.Prev()
			e.refreshPanel()
			return
		case fyne.KeyReturn, fyne.KeyEnter:
			if city, ok := e.ac.Confirm(); ok {
				e.commit(city)
				return
			}
		case fyne.KeyEscape:
			e.ac.Dismiss()
			e.refreshPanel()
			return
		}
	}
	e.Entry.TypedKey(key)
}

// FocusGained reopens suggestions for the current text
func (e *DestinationEntry) FocusGained() {
	e.focused = true
	e.stopCloseTimer()
	e.Entry.FocusGained()
	e.ac.Focus()
	e.refreshPanel()
}

// FocusLost closes the panel after a short delay so a tapped row still registers.
// The entry loses focus on press, so a row held down keeps the panel open until release.
func (e *DestinationEntry) FocusLost() {
	e.focused = false
	e.Entry.FocusLost()
	e.scheduleClose()
}

func (e *DestinationEntry) scheduleClose() {
	e.stopCloseTimer()
	e.closeTimer = time.AfterFunc(SuggestionCloseDelay, func() {
		fyne.Do(func() {
			if e.focused || e.pressing.Load() {
				return
			}
			e.ac.ClickOutside()
			e.refreshPanel()
		})
	})
}

func (e *DestinationEntry) stopCloseTimer() {
	if e.closeTimer != nil {
		e.closeTimer.Stop()
		e.closeTimer = nil
	}
}

func (e *DestinationEntry) onTextChanged(text string) {
	if e.selecting {
		return
	}
	e.ac.SetQuery(text)
	e.refreshPanel()
	e.notify(text)
}

func (e *DestinationEntry) commit(city model.City) {
	e.selecting = true
	e.SetText(city.Name)
	e.selecting = false
	e.refreshPanel()
	e.notify(city.Name)
}

func (e *DestinationEntry) notify(text string) {
	if e.OnQueryChanged != nil {
		e.OnQueryChanged(text)
	}
}

func (e *DestinationEntry) onRowTapped(i int) {
	suggestions := e.ac.Suggestions()
	if !e.ac.IsOpen() || i < 0 || i >= len(suggestions) {
		return
	}
	e.stopCloseTimer()
	city := suggestions[i]
	e.ac.Select(city)
	e.commit(city)
}

func (e *DestinationEntry) onRowPressed() {
	e.pressing.Store(true)
}

// onRowReleased closes the panel later if the release did not land on a row
func (e *DestinationEntry) onRowReleased() {
	e.pressing.Store(false)
	if !e.focused && e.ac.IsOpen() {
		e.scheduleClose()
	}
}

func (e *DestinationEntry) onRowHovered(i int) {
	if e.ac.Highlight() == i {
		return
	}
	e.ac.Hover(i)
	e.refreshPanel()
}

// refreshPanel syncs rows and visibility with the autocomplete state
func (e *DestinationEntry) refreshPanel() {
	if !e.ac.IsOpen() {
		e.panel.Hide()
		return
	}

	suggestions := e.ac.Suggestions()
	for len(e.rows) < len(suggestions) {
		row := newSuggestionRow(len(e.rows), e)
		e.rows = append(e.rows, row)
		e.list.Add(row)
	}
	for i, row := range e.rows {
		if i >= len(suggestions) {
			row.Hide()
			continue
		}
		row.update(suggestions[i], i == e.ac.Highlight())
		row.Show()
	}
	e.panel.Show()
	e.panel.Refresh()
}

// visibleRows returns the number of rows currently shown
func (e *DestinationEntry) visibleRows() int {
	if !e.panel.Visible() {
		return 0
	}
	n := 0
	for _, row := range e.rows {
		if row.Visible() {
			n++
		}
	}
	return n
}

// suggestionRow is one tappable city in the panel
type suggestionRow struct {
	widget.BaseWidget

	index       int
	highlighted bool
	background  *canvas.Rectangle
	label       *widget.Label
	owner       *DestinationEntry
}

var (
	_ fyne.Tappable     = (*suggestionRow)(nil)
	_ desktop.Hoverable = (*suggestionRow)(nil)
	_ desktop.Mouseable = (*suggestionRow)(nil)
)

func newSuggestionRow(index int, owner *DestinationEntry) *suggestionRow {
	r := &suggestionRow{
		index:      index,
		background: canvas.NewRectangle(color.Transparent),
		label:      widget.NewLabel(""),
		owner:      owner,
	}
	r.background.SetMinSize(fyne.NewSize(0, SuggestionRowHeight))
	r.label.Truncation = fyne.TextTruncateEllipsis
	r.ExtendBaseWidget(r)
	return r
}

func (r *suggestionRow) update(city model.City, highlighted bool) {
	text := city.Label()
	if city.Emoji != "" {
		text = city.Emoji + " " + text
	}
	r.highlighted = highlighted
	if highlighted {
		r.background.FillColor = theme.Color(theme.ColorNameSelection)
	} else {
		r.background.FillColor = color.Transparent
	}
	r.label.SetText(text)
	r.background.Refresh()
}

// Tapped selects the row's city
func (r *suggestionRow) Tapped(*fyne.PointEvent) {
	r.owner.pressing.Store(false)
	r.owner.onRowTapped(r.index)
}

// MouseDown holds the panel open until the button is released
func (r *suggestionRow) MouseDown(*desktop.MouseEvent) {
	r.owner.onRowPressed()
}

func (r *suggestionRow) MouseUp(*desktop.MouseEvent) {
	r.owner.onRowReleased()
}

// MouseIn moves the highlight to this row
func (r *suggestionRow) MouseIn(*desktop.MouseEvent) {
	r.owner.onRowHovered(r.index)
}

func (r *suggestionRow) MouseMoved(*desktop.MouseEvent) {}
func (r *suggestionRow) MouseOut()                      {}

func (r *suggestionRow) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(r.background, r.label))
}
