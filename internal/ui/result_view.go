package ui

import (
	"net/url"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/tripwise/internal/itinerary"
)

// ResultView renders a generated itinerary with export and share actions
type ResultView struct {
	localization *Localization
	mobile       *MobileUI

	title   *widget.TextSegment
	heading *widget.RichText
	summary *widget.Label
	budget  *widget.Label
	days    *fyne.Container
	content fyne.CanvasObject

	OnExport      func(itinerary.Format)
	OnShare       func()
	OnPlanAnother func()
	OnOpenMap     func(*url.URL)
}

// NewResultView creates an empty result view
func NewResultView(localization *Localization, mobile *MobileUI) *ResultView {
	v := &ResultView{localization: localization, mobile: mobile}
	v.createUI()
	return v
}

// Container returns the root object of the view
func (v *ResultView) Container() fyne.CanvasObject {
	return v.content
}

func (v *ResultView) createUI() {
	v.title = &widget.TextSegment{Style: widget.RichTextStyleHeading}
	v.heading = widget.NewRichText(v.title)
	v.summary = widget.NewLabel("")
	v.summary.Wrapping = fyne.TextWrapWord
	v.budget = widget.NewLabel("")

	jsonBtn := widget.NewButtonWithIcon(v.localization.GetText(KeyDownloadJSON), theme.DownloadIcon(), func() {
		v.export(itinerary.FormatJSON)
	})
	pdfBtn := widget.NewButtonWithIcon(v.localization.GetText(KeyDownloadPDF), theme.DocumentIcon(), func() {
		v.export(itinerary.FormatPDF)
	})
	shareBtn := widget.NewButtonWithIcon(v.localization.GetText(KeyShare), theme.MailSendIcon(), func() {
		if v.OnShare != nil {
			v.OnShare()
		}
	})
	againBtn := widget.NewButtonWithIcon(v.localization.GetText(KeyPlanAnother), theme.ContentAddIcon(), func() {
		if v.OnPlanAnother != nil {
			v.OnPlanAnother()
		}
	})
	againBtn.Importance = widget.HighImportance

	actions := v.mobile.CreateAdaptiveContainer(4, jsonBtn, pdfBtn, shareBtn, againBtn)
	header := container.NewVBox(v.heading, v.summary, v.budget, actions, widget.NewSeparator())

	v.days = container.NewVBox()
	v.content = container.NewBorder(header, nil, nil, nil, container.NewVScroll(v.days))
}

func (v *ResultView) export(f itinerary.Format) {
	if v.OnExport != nil {
		v.OnExport(f)
	}
}

// Show replaces the rendered plan
func (v *ResultView) Show(view itinerary.View) {
	v.title.Text = IconPin + " " + view.Destination
	v.heading.Refresh()
	v.summary.SetText(view.Summary)
	if view.Budget != "" {
		v.budget.SetText(IconPrice + " " + view.Budget)
		v.budget.Show()
	} else {
		v.budget.Hide()
	}

	v.days.RemoveAll()
	for _, day := range view.Days {
		v.days.Add(v.dayCard(day))
	}
	v.days.Refresh()
}

func (v *ResultView) dayCard(day itinerary.DayBlock) fyne.CanvasObject {
	body := container.NewVBox()
	for i, a := range day.Activities {
		if i > 0 {
			body.Add(widget.NewSeparator())
		}
		body.Add(v.activityRow(a))
	}

	if day.ShowTips() {
		tips := container.NewVBox(widget.NewLabelWithStyle(IconTips+" "+v.localization.GetText(KeyDailyTips), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
		for _, tip := range day.Tips {
			l := widget.NewLabel(BulletPrefix + tip)
			l.Wrapping = fyne.TextWrapWord
			tips.Add(l)
		}
		body.Add(widget.NewSeparator())
		body.Add(tips)
	}

	return widget.NewCard(day.Heading, "", body)
}

func (v *ResultView) activityRow(a itinerary.ActivityBlock) fyne.CanvasObject {
	row := container.NewVBox(widget.NewLabelWithStyle(a.Name, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))

	var meta []string
	if a.Time != "" {
		meta = append(meta, IconClock+" "+a.Time)
	}
	if a.Transport != "" {
		meta = append(meta, IconTransit+" "+a.Transport)
	}
	if a.Price != "" {
		meta = append(meta, IconPrice+" "+a.Price)
	}
	if len(meta) > 0 {
		row.Add(widget.NewLabel(strings.Join(meta, "   ")))
	}

	if a.Description != "" {
		desc := widget.NewLabel(a.Description)
		desc.Wrapping = fyne.TextWrapWord
		row.Add(desc)
	}

	if u := itinerary.MapURL(a.Link); u != nil {
		mapBtn := widget.NewButton(IconMap+" "+v.localization.GetText(KeyViewOnMap), func() {
			if v.OnOpenMap != nil {
				v.OnOpenMap(u)
			}
		})
		mapBtn.Importance = widget.LowImportance
		row.Add(container.NewHBox(mapBtn))
	}
	return row
}

// Title returns the rendered heading text
func (v *ResultView) Title() string {
	return v.title.Text
}

// DayCount returns the number of rendered day cards
func (v *ResultView) DayCount() int {
	return len(v.days.Objects)
}
