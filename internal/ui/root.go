package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/tripwise/internal/api"
	"github.com/ytget/tripwise/internal/config"
	"github.com/ytget/tripwise/internal/itinerary"
	"github.com/ytget/tripwise/internal/model"
	"github.com/ytget/tripwise/internal/places"
	"github.com/ytget/tripwise/internal/planner"
	"github.com/ytget/tripwise/internal/platform"
	"github.com/ytget/tripwise/internal/progress"
)

// ServiceConfigurer is the part of the API client that settings can change
type ServiceConfigurer interface {
	BaseURL() string
	SetBaseURL(baseURL string)
	SetTimeouts(connect, request time.Duration)
}

// ViewKind is the screen currently shown
type ViewKind int

const (
	ViewHero ViewKind = iota
	ViewForm
	ViewLoading
	ViewResult
)

// String returns the view name for logs
func (k ViewKind) String() string {
	switch k {
	case ViewHero:
		return "hero"
	case ViewForm:
		return "form"
	case ViewLoading:
		return "loading"
	case ViewResult:
		return "result"
	default:
		return "unknown"
	}
}

// ViewFor picks the screen for a planner state. Loading wins over everything
// and a result is shown only once its submission has settled.
func ViewFor(snap planner.Snapshot) ViewKind {
	switch {
	case snap.Loading():
		return ViewLoading
	case snap.Result != nil && snap.Status.IsFinished():
		return ViewResult
	case snap.FormOpen:
		return ViewForm
	default:
		return ViewHero
	}
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	planner      planner.Planner
	service      ServiceConfigurer
	settings     *config.Settings
	localization *Localization
	mobile       *MobileUI
	autocomplete *places.Autocomplete
	simulator    *progress.Simulator

	hero    *HeroView
	form    *FormView
	loading *LoadingView
	result  *ResultView

	body        *fyne.Container
	currentView ViewKind
	shownResult *model.ItineraryDocument
	language    string
	rendering   bool
	renderAgain bool

	ctx    context.Context
	cancel context.CancelFunc

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite
	notificationTimer     *time.Timer
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, p planner.Planner, service ServiceConfigurer, settings *config.Settings, catalog places.Searcher) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ctx, cancel := context.WithCancel(context.Background())

	ui := &RootUI{
		window:       window,
		app:          app,
		planner:      p,
		service:      service,
		settings:     settings,
		localization: localization,
		mobile:       NewMobileUI(app),
		autocomplete: places.NewAutocomplete(catalog, searchOptions(settings)),
		simulator:    progress.NewSimulator(),
		currentView:  -1,
		language:     settings.GetLanguage(),
		ctx:          ctx,
		cancel:       cancel,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	window.SetOnClosed(ui.Shutdown)

	ui.planner.SetUpdateCallback(ui.onPlannerUpdate)

	ui.setupUI()
	log.Printf("RootUI initialized, service at %s", service.BaseURL())
	return ui
}

func searchOptions(settings *config.Settings) places.SearchOptions {
	return places.SearchOptions{
		Limit:     settings.GetSuggestionLimit(),
		Substring: settings.GetSubstringMatches(),
	}
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	logo := canvas.NewImageFromResource(LoadLogoResource())
	logo.SetMinSize(fyne.NewSize(28, 28))
	logo.FillMode = canvas.ImageFillContain

	brand := widget.NewLabelWithStyle(ui.localization.GetText(KeyAppTitle), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	topPanel := container.NewBorder(nil, nil, container.NewHBox(logo, brand), settingsBtn)

	// Notification panel under the top bar (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignLeading
	ui.notificationLabel.Wrapping = fyne.TextWrapWord
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewBorder(nil, nil, ui.notificationSpinner, nil, ui.notificationLabel)
	ui.notificationContainer.Hide()

	ui.body = container.NewStack()
	ui.buildViews()

	content := container.NewBorder(
		container.NewVBox(topPanel, ui.notificationContainer),
		nil,
		nil,
		nil,
		ui.body,
	)
	ui.window.SetContent(content)
	ui.render()

	log.Printf("UI setup completed successfully")
}

// buildViews (re)creates the four screens with the current language
func (ui *RootUI) buildViews() {
	ui.hero = NewHeroView(ui.planner, ui.localization, ui.mobile)

	ui.form = NewFormView(ui.planner, ui.autocomplete, ui.localization, ui.mobile)
	ui.form.OnGenerate = ui.onGenerate

	ui.loading = NewLoadingView(ui.simulator, ui.localization, ui.mobile)

	ui.result = NewResultView(ui.localization, ui.mobile)
	ui.result.OnExport = ui.onExport
	ui.result.OnShare = ui.onShare
	ui.result.OnPlanAnother = ui.onPlanAnother
	ui.result.OnOpenMap = ui.onOpenMap

	ui.currentView = -1
	ui.shownResult = nil
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)
	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.language = langCode
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts rebuilds every view; form values live in the planner and survive
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	if ui.currentView == ViewLoading {
		ui.loading.Stop()
	}
	ui.buildViews()
	ui.render()
}

// onPlannerUpdate may run on the submission goroutine
func (ui *RootUI) onPlannerUpdate(planner.Snapshot) {
	fyne.Do(ui.render)
}

// render switches screens on state transitions and refreshes the visible one.
// Widget callbacks fired while rendering schedule one more pass instead of nesting.
func (ui *RootUI) render() {
	if ui.rendering {
		ui.renderAgain = true
		return
	}
	ui.rendering = true
	defer func() { ui.rendering = false }()

	for {
		ui.renderAgain = false
		ui.renderOnce()
		if !ui.renderAgain {
			return
		}
	}
}

// renderOnce reads a fresh snapshot so a stale queued update cannot overwrite typing
func (ui *RootUI) renderOnce() {
	snap := ui.planner.Snapshot()
	next := ViewFor(snap)

	if next != ui.currentView {
		if ui.currentView == ViewLoading {
			ui.loading.Stop()
		}
		switch next {
		case ViewHero:
			ui.show(ui.hero.Container())
		case ViewForm:
			ui.form.Load(snap)
			ui.show(ui.form.Container())
		case ViewLoading:
			ui.loading.Start(ui.ctx, snap.Request.Destination)
			ui.show(ui.loading.Container())
		case ViewResult:
			ui.show(ui.result.Container())
		}
		log.Printf("view: %s -> %s", ui.currentView, next)
		ui.currentView = next
	}

	switch next {
	case ViewForm:
		ui.form.Render(snap)
	case ViewResult:
		if ui.shownResult != snap.Result {
			ui.result.Show(itinerary.Project(snap.Result.Trip()))
			ui.shownResult = snap.Result
		}
	}
}

func (ui *RootUI) show(obj fyne.CanvasObject) {
	ui.body.Objects = []fyne.CanvasObject{obj}
	ui.body.Refresh()
}

// CurrentView returns the screen on display
func (ui *RootUI) CurrentView() ViewKind {
	return ui.currentView
}

// onGenerate submits off the UI goroutine
func (ui *RootUI) onGenerate() {
	ctx := ui.ctx
	go func() {
		err := ui.planner.Submit(ctx)
		if err == nil {
			fyne.Do(ui.hideNotification)
			return
		}
		fyne.Do(func() { ui.showSubmitError(err) })
	}()
}

func (ui *RootUI) showSubmitError(err error) {
	switch {
	case errors.Is(err, planner.ErrSubmissionInFlight), errors.Is(err, context.Canceled):
		return
	case errors.Is(err, planner.ErrIncomplete):
		ui.showNotification(err.Error(), false)
		return
	}
	dialog.ShowInformation(ui.localization.GetText(KeyGenerationFailed), api.UserMessage(err), ui.window)
}

// onExport writes the current plan to the export directory
func (ui *RootUI) onExport(format itinerary.Format) {
	doc := ui.planner.Snapshot().Result
	if doc == nil {
		return
	}

	dir := ui.settings.GetExportDirectory()
	path, err := itinerary.Export(dir, doc, format)
	if err != nil {
		log.Printf("Export to %s failed: %v", dir, err)
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyExportFailed), err), ui.window)
		return
	}

	if err := platform.NotifyMediaScanner(path); err != nil {
		log.Printf("Media scanner notification failed: %v", err)
	}

	ui.showNotification(fmt.Sprintf(ui.localization.GetText(KeyExported), path), false)

	if ui.settings.GetAutoRevealExport() {
		if err := platform.RevealFile(path); err != nil {
			log.Printf("Error revealing file %s: %v", path, err)
		}
	}
}

// onShare uses the Android share sheet when available, otherwise the clipboard
func (ui *RootUI) onShare() {
	doc := ui.planner.Snapshot().Result
	if doc == nil {
		return
	}
	share := itinerary.NewShare(doc.Trip().Destination, ui.settings.GetShareURL())

	if platform.CanShareNatively() {
		err := platform.ShareText(share.Title, share.Text, share.URL)
		if err == nil {
			return
		}
		log.Printf("Native share failed, falling back to clipboard: %v", err)
	}

	ui.app.Clipboard().SetContent(share.ClipboardText())
	ui.showNotification(ui.localization.GetText(KeyCopiedToClip), false)
	dialog.ShowInformation(ui.localization.GetText(KeyShare), share.FallbackMessage(), ui.window)
}

func (ui *RootUI) onPlanAnother() {
	ui.hideNotification()
	ui.planner.Reset()
}

func (ui *RootUI) onOpenMap(u *url.URL) {
	if err := ui.app.OpenURL(u); err != nil {
		log.Printf("Error opening %s: %v", u, err)
		ui.showNotification(err.Error(), false)
	}
}

// showNotification displays a message in the notification panel under the top bar.
// When spinning is true, a spinner is shown to indicate background activity.
// Non-spinning messages hide themselves after ToastAutoHide.
func (ui *RootUI) showNotification(message string, spinning bool) {
	if ui.notificationLabel == nil || ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	ui.notificationLabel.SetText(message)
	if spinning {
		ui.notificationSpinner.Show()
	} else {
		ui.notificationSpinner.Hide()
	}
	ui.notificationContainer.Show()
	ui.notificationContainer.Refresh()

	if ui.notificationTimer != nil {
		ui.notificationTimer.Stop()
		ui.notificationTimer = nil
	}
	if !spinning {
		ui.notificationTimer = time.AfterFunc(ToastAutoHide, func() {
			fyne.Do(ui.hideNotification)
		})
	}
}

// hideNotification hides the notification panel.
func (ui *RootUI) hideNotification() {
	if ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	ui.notificationSpinner.Hide()
	ui.notificationContainer.Hide()
}

// NotificationText returns the visible notification, empty when hidden
func (ui *RootUI) NotificationText() string {
	if ui.notificationContainer == nil || !ui.notificationContainer.Visible() {
		return ""
	}
	return ui.notificationLabel.Text
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.applySettings)
}

// applySettings pushes saved preferences into the running services
func (ui *RootUI) applySettings() {
	ui.service.SetBaseURL(ui.settings.GetAPIBaseURL())
	ui.service.SetTimeouts(ui.settings.GetConnectTimeout(), ui.settings.GetRequestTimeout())
	ui.autocomplete.SetOptions(searchOptions(ui.settings))

	if lang := ui.settings.GetLanguage(); lang != ui.language {
		ui.onLanguageChange(lang)
	}
	log.Printf("Settings applied: service=%s", ui.service.BaseURL())
}

// Shutdown cancels outstanding work and stops timers
func (ui *RootUI) Shutdown() {
	ui.cancel()
	ui.loading.Stop()
	if ui.notificationTimer != nil {
		ui.notificationTimer.Stop()
	}
}
