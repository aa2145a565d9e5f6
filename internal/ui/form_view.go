package ui

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/tripwise/internal/model"
	"github.com/ytget/tripwise/internal/places"
	"github.com/ytget/tripwise/internal/planner"
)

// DateLayout is the wire format of trip dates
const DateLayout = "2006-01-02"

var errDateFormat = errors.New("use YYYY-MM-DD")

// validateDate accepts empty text; the step check reports missing dates
func validateDate(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if _, err := time.Parse(DateLayout, text); err != nil {
		return errDateFormat
	}
	return nil
}

// FormView is the three-step trip form
type FormView struct {
	planner      planner.Planner
	localization *Localization
	mobile       *MobileUI

	stepLabel  *widget.Label
	titleLabel *widget.Label
	stepBar    *widget.ProgressBar
	steps      []*fyne.Container

	destination  *DestinationEntry
	startDate    *widget.Entry
	endDate      *widget.Entry
	travelers    *widget.Entry
	travelerType *widget.Select
	travelStyle  *widget.Select
	budget       *widget.Entry
	interests    *widget.Entry
	special      *widget.Entry
	pills        map[string]*widget.Button

	backBtn     *widget.Button
	nextBtn     *widget.Button
	generateBtn *widget.Button
	cancelBtn   *widget.Button

	content fyne.CanvasObject

	// OnGenerate is called when the last step is submitted
	OnGenerate func()
}

// NewFormView creates the form bound to a planner
func NewFormView(p planner.Planner, ac *places.Autocomplete, localization *Localization, mobile *MobileUI) *FormView {
	v := &FormView{
		planner:      p,
		localization: localization,
		mobile:       mobile,
		pills:        make(map[string]*widget.Button),
	}
	v.createUI(ac)
	return v
}

// Container returns the root object of the view
func (v *FormView) Container() fyne.CanvasObject {
	return v.content
}

// Destination returns the autocomplete entry
func (v *FormView) Destination() *DestinationEntry {
	return v.destination
}

func (v *FormView) text(key string) string {
	return v.localization.GetText(key)
}

func (v *FormView) createUI(ac *places.Autocomplete) {
	v.stepLabel = widget.NewLabel("")
	v.titleLabel = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	v.stepBar = widget.NewProgressBar()
	v.stepBar.Min = 0
	v.stepBar.Max = planner.LastStep
	v.stepBar.TextFormatter = func() string { return "" }

	v.steps = []*fyne.Container{
		v.createWhereWhenStep(ac),
		v.createTravelersStep(),
		v.createPreferencesStep(),
	}

	v.backBtn = widget.NewButtonWithIcon(v.text(KeyBack), theme.NavigateBackIcon(), v.planner.Back)
	v.nextBtn = widget.NewButtonWithIcon(v.text(KeyNext), theme.NavigateNextIcon(), func() {
		v.planner.Next()
	})
	v.nextBtn.Importance = widget.HighImportance
	v.generateBtn = widget.NewButtonWithIcon(v.text(KeyGenerate), theme.ConfirmIcon(), func() {
		if v.OnGenerate != nil {
			v.OnGenerate()
		}
	})
	v.generateBtn.Importance = widget.HighImportance
	v.cancelBtn = widget.NewButton(v.text(KeyCancel), v.planner.Cancel)
	v.cancelBtn.Importance = widget.LowImportance

	header := container.NewVBox(
		container.NewBorder(nil, nil, v.titleLabel, v.cancelBtn),
		v.stepLabel,
		v.stepBar,
	)

	stepStack := container.NewStack()
	for _, step := range v.steps {
		stepStack.Add(step)
	}

	actions := v.mobile.TouchTarget(container.NewHBox(v.backBtn, layout.NewSpacer(), v.nextBtn, v.generateBtn))

	form := container.NewVBox(header, widget.NewSeparator(), stepStack, widget.NewSeparator(), actions)
	v.content = container.NewVScroll(v.mobile.Centered(form))
}

func (v *FormView) createWhereWhenStep(ac *places.Autocomplete) *fyne.Container {
	v.destination = NewDestinationEntry(ac)
	v.destination.SetPlaceHolder(v.text(KeyDestinationHint))
	v.destination.OnQueryChanged = v.planner.SetDestination

	v.startDate = widget.NewEntry()
	v.startDate.SetPlaceHolder(v.text(KeyDateHint))
	v.startDate.Validator = validateDate
	v.startDate.OnChanged = func(s string) { v.planner.SetStartDate(strings.TrimSpace(s)) }

	v.endDate = widget.NewEntry()
	v.endDate.SetPlaceHolder(v.text(KeyDateHint))
	v.endDate.Validator = validateDate
	v.endDate.OnChanged = func(s string) { v.planner.SetEndDate(strings.TrimSpace(s)) }

	dates := v.mobile.CreateAdaptiveContainer(2,
		container.NewVBox(widget.NewLabel(v.text(KeyStartDate)), v.startDate),
		container.NewVBox(widget.NewLabel(v.text(KeyEndDate)), v.endDate),
	)

	return container.NewVBox(
		widget.NewLabel(v.text(KeyDestination)),
		v.destination,
		v.destination.Panel(),
		dates,
	)
}

func (v *FormView) createTravelersStep() *fyne.Container {
	v.travelers = widget.NewEntry()
	v.travelers.OnChanged = v.planner.SetTravelersText

	v.travelerType = widget.NewSelect(displayLabels(model.TravelerTypeOptions()), func(label string) {
		if value, ok := model.ValueFor(model.TravelerTypeOptions(), label); ok {
			v.planner.SetTravelerType(model.TravelerType(value))
		}
	})

	v.travelStyle = widget.NewSelect(displayLabels(model.TravelStyleOptions()), func(label string) {
		if value, ok := model.ValueFor(model.TravelStyleOptions(), label); ok {
			v.planner.SetTravelStyle(model.TravelStyle(value))
		}
	})

	v.budget = widget.NewEntry()
	v.budget.SetPlaceHolder(v.text(KeyBudgetHint))
	v.budget.OnChanged = v.planner.SetBudget

	return container.NewVBox(
		widget.NewLabel(v.text(KeyTravelers)),
		v.travelers,
		widget.NewLabel(v.text(KeyTravelerType)),
		v.travelerType,
		widget.NewLabel(v.text(KeyTravelStyle)),
		v.travelStyle,
		widget.NewLabel(v.text(KeyBudget)),
		v.budget,
	)
}

func (v *FormView) createPreferencesStep() *fyne.Container {
	var pills []fyne.CanvasObject
	for _, opt := range model.InterestOptions() {
		value := opt.Value
		btn := widget.NewButton(opt.DisplayLabel(), func() {
			v.planner.ToggleInterest(value)
		})
		v.pills[value] = btn
		pills = append(pills, btn)
	}

	v.interests = widget.NewEntry()
	v.interests.SetPlaceHolder(v.text(KeyInterestsHint))
	v.interests.OnChanged = v.planner.SetInterests

	v.special = widget.NewMultiLineEntry()
	v.special.SetPlaceHolder(v.text(KeySpecialHint))
	v.special.SetMinRowsVisible(3)
	v.special.OnChanged = v.planner.SetSpecialRequests

	return container.NewVBox(
		widget.NewLabel(v.text(KeyInterests)),
		v.mobile.CreateAdaptiveContainer(4, pills...),
		v.interests,
		widget.NewLabel(v.text(KeySpecialRequests)),
		v.special,
	)
}

// Load copies the planner's fields into the widgets
func (v *FormView) Load(snap planner.Snapshot) {
	req := snap.Request
	v.destination.Load(req.Destination)
	setTextIfChanged(v.startDate, req.StartDate)
	setTextIfChanged(v.endDate, req.EndDate)
	if n, err := strconv.Atoi(strings.TrimSpace(v.travelers.Text)); err != nil || n != req.NumTravelers {
		v.travelers.SetText(strconv.Itoa(req.NumTravelers))
	}
	v.travelerType.SetSelected(model.LabelFor(model.TravelerTypeOptions(), string(req.TravelerType)))
	v.travelStyle.SetSelected(model.LabelFor(model.TravelStyleOptions(), string(req.TravelStyle)))
	setTextIfChanged(v.budget, req.Budget)
	setTextIfChanged(v.special, req.SpecialRequests)
	v.Render(snap)
}

// Render updates step visibility, buttons and pills
func (v *FormView) Render(snap planner.Snapshot) {
	step := min(max(snap.Step, planner.FirstStep), planner.LastStep)
	for i, c := range v.steps {
		if i == step-1 {
			c.Show()
		} else {
			c.Hide()
		}
	}

	titles := []string{KeyStepWhereWhen, KeyStepWho, KeyStepPreferences}
	v.titleLabel.SetText(v.text(titles[step-1]))
	v.stepLabel.SetText(fmt.Sprintf(v.text(KeyStepOf), step, planner.LastStep))
	v.stepBar.SetValue(float64(step))

	if step == planner.FirstStep {
		v.backBtn.Disable()
	} else {
		v.backBtn.Enable()
	}

	if step == planner.LastStep {
		v.nextBtn.Hide()
		v.generateBtn.Show()
	} else {
		v.nextBtn.Show()
		v.generateBtn.Hide()
	}

	if v.planner.CanProceed() {
		v.nextBtn.Enable()
	} else {
		v.nextBtn.Disable()
	}

	if snap.Loading() {
		v.generateBtn.Disable()
	} else {
		v.generateBtn.Enable()
	}

	for value, btn := range v.pills {
		importance := widget.MediumImportance
		if slices.Contains(snap.Interests, value) {
			importance = widget.HighImportance
		}
		if btn.Importance != importance {
			btn.Importance = importance
			btn.Refresh()
		}
	}

	setTextIfChanged(v.interests, snap.Request.Interests)
}

func setTextIfChanged(e *widget.Entry, text string) {
	if e.Text != text {
		e.SetText(text)
	}
}

func displayLabels(options []model.Option) []string {
	labels := make([]string, 0, len(options))
	for _, o := range options {
		labels = append(labels, o.DisplayLabel())
	}
	return labels
}
