package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/tripwise/internal/model"
	"github.com/ytget/tripwise/internal/planner"
)

// HeroView is the landing screen shown while the form is closed
type HeroView struct {
	planner      planner.Planner
	localization *Localization
	mobile       *MobileUI

	startBtn    *widget.Button
	popularBtns []*widget.Button
	content     fyne.CanvasObject
}

// NewHeroView creates the landing screen
func NewHeroView(p planner.Planner, localization *Localization, mobile *MobileUI) *HeroView {
	v := &HeroView{planner: p, localization: localization, mobile: mobile}
	v.createUI()
	return v
}

// Container returns the root object of the view
func (v *HeroView) Container() fyne.CanvasObject {
	return v.content
}

func (v *HeroView) createUI() {
	logo := canvas.NewImageFromResource(LoadLogoResource())
	logo.SetMinSize(fyne.NewSize(72, 72))
	logo.FillMode = canvas.ImageFillContain

	title := canvas.NewText(v.localization.GetText(KeyAppTitle), theme.Color(theme.ColorNamePrimary))
	title.TextSize = 32
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	tagline := widget.NewLabel(v.localization.GetText(KeyTagline))
	tagline.Alignment = fyne.TextAlignCenter
	tagline.Wrapping = fyne.TextWrapWord

	v.startBtn = widget.NewButtonWithIcon(v.localization.GetText(KeyStartPlanning), theme.NavigateNextIcon(), v.planner.Open)
	v.startBtn.Importance = widget.HighImportance

	popularLabel := widget.NewLabelWithStyle(v.localization.GetText(KeyPopular), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	var buttons []fyne.CanvasObject
	for _, opt := range model.PopularDestinations() {
		destination := opt.Value
		btn := widget.NewButton(opt.DisplayLabel(), func() {
			v.planner.OpenWith(destination)
		})
		v.popularBtns = append(v.popularBtns, btn)
		buttons = append(buttons, btn)
	}

	body := container.NewVBox(
		container.NewCenter(logo),
		title,
		tagline,
		container.NewCenter(v.mobile.TouchTarget(v.startBtn)),
		widget.NewSeparator(),
		popularLabel,
		v.mobile.CreateAdaptiveContainer(3, buttons...),
	)

	v.content = container.NewVScroll(container.NewVBox(layout.NewSpacer(), v.mobile.Centered(body), layout.NewSpacer()))
}
