package ui

import (
	"errors"
	"slices"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/tripwise/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	apiURLEntry         *widget.Entry
	connectTimeoutEntry *widget.Entry
	requestTimeoutEntry *widget.Entry
	suggestionEntry     *widget.Entry
	substringCheck      *widget.Check
	exportDirEntry      *widget.Entry
	autoRevealCheck     *widget.Check
	shareURLEntry       *widget.Entry
	languageSelect      *widget.Select
	languageCodes       map[string]string
	loadedShareURL      string
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// values were written to preferences.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog creates and shows the dialog in one step
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	NewSettingsDialog(settings, localization, window, onSaved).Show()
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

func (sd *SettingsDialog) text(key string) string {
	return sd.localization.GetText(key)
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.apiURLEntry = widget.NewEntry()
	sd.apiURLEntry.SetPlaceHolder(config.DefaultAPIBaseURL)

	sd.connectTimeoutEntry = sd.numberEntry(config.MinConnectTimeout, config.MaxConnectTimeout)
	sd.requestTimeoutEntry = sd.numberEntry(config.MinRequestTimeout, config.MaxRequestTimeout)
	sd.suggestionEntry = sd.numberEntry(config.MinSuggestionLimit, config.MaxSuggestionLimit)

	sd.substringCheck = widget.NewCheck(sd.text(KeySubstringMatches), nil)

	sd.exportDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(sd.text(KeyBrowse), sd.onBrowseDirectory)
	exportDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.exportDirEntry)

	sd.autoRevealCheck = widget.NewCheck(sd.text(KeyAutoReveal), nil)

	sd.shareURLEntry = widget.NewEntry()

	// Language selection shows display names
	sd.languageCodes = make(map[string]string)
	languageOptions := []string{}
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[name] = code
		languageOptions = append(languageOptions, name)
	}
	slices.Sort(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(sd.text(KeyServiceSection)),
		widget.NewSeparator(),
		widget.NewForm(
			widget.NewFormItem(sd.text(KeyAPIBaseURL), sd.apiURLEntry),
			widget.NewFormItem(sd.text(KeyConnectTimeout), sd.connectTimeoutEntry),
			widget.NewFormItem(sd.text(KeyRequestTimeout), sd.requestTimeoutEntry),
		),

		widget.NewLabel(sd.text(KeySearchSection)),
		widget.NewSeparator(),
		widget.NewForm(widget.NewFormItem(sd.text(KeySuggestionLimit), sd.suggestionEntry)),
		sd.substringCheck,

		widget.NewLabel(sd.text(KeyExportSection)),
		widget.NewSeparator(),
		widget.NewForm(
			widget.NewFormItem(sd.text(KeyExportDirectory), exportDirRow),
			widget.NewFormItem(sd.text(KeyShareURL), sd.shareURLEntry),
		),
		sd.autoRevealCheck,

		widget.NewLabel(sd.text(KeyInterfaceSection)),
		widget.NewSeparator(),
		widget.NewForm(widget.NewFormItem(sd.text(KeyLanguage), sd.languageSelect)),
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.text(KeySettings),
		sd.text(KeySave),
		sd.text(KeyCancel),
		container.NewVScroll(form),
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(560, 520))
}

func (sd *SettingsDialog) numberEntry(lo, hi int) *widget.Entry {
	e := widget.NewEntry()
	e.SetPlaceHolder(strconv.Itoa(lo) + "-" + strconv.Itoa(hi))
	e.Validator = func(s string) error {
		if strings.TrimSpace(s) == "" {
			return nil
		}
		if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
			return errors.New(sd.text(KeyInvalidNumber))
		}
		return nil
	}
	return e
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.apiURLEntry.SetText(sd.settings.GetAPIBaseURL())
	sd.connectTimeoutEntry.SetText(strconv.Itoa(int(sd.settings.GetConnectTimeout().Seconds())))
	sd.requestTimeoutEntry.SetText(strconv.Itoa(int(sd.settings.GetRequestTimeout().Seconds())))
	sd.suggestionEntry.SetText(strconv.Itoa(sd.settings.GetSuggestionLimit()))
	sd.substringCheck.SetChecked(sd.settings.GetSubstringMatches())
	sd.exportDirEntry.SetText(sd.settings.GetExportDirectory())
	sd.autoRevealCheck.SetChecked(sd.settings.GetAutoRevealExport())
	sd.loadedShareURL = sd.settings.GetShareURL()
	sd.shareURLEntry.SetText(sd.loadedShareURL)
	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()])
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.exportDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.save()

	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(sd.text(KeySettings), sd.text(KeySettingsSaved), sd.window)
}

// save writes the form into preferences. Unparseable numbers keep the stored value.
func (sd *SettingsDialog) save() {
	if apiURL := strings.TrimSpace(sd.apiURLEntry.Text); apiURL != "" {
		sd.settings.SetAPIBaseURL(apiURL)
	}

	if n, err := strconv.Atoi(strings.TrimSpace(sd.connectTimeoutEntry.Text)); err == nil {
		sd.settings.SetConnectTimeout(n)
	}
	if n, err := strconv.Atoi(strings.TrimSpace(sd.requestTimeoutEntry.Text)); err == nil {
		sd.settings.SetRequestTimeout(n)
	}
	if n, err := strconv.Atoi(strings.TrimSpace(sd.suggestionEntry.Text)); err == nil {
		sd.settings.SetSuggestionLimit(n)
	}
	sd.settings.SetSubstringMatches(sd.substringCheck.Checked)

	if dir := strings.TrimSpace(sd.exportDirEntry.Text); dir != "" {
		sd.settings.SetExportDirectory(dir)
	}
	sd.settings.SetAutoRevealExport(sd.autoRevealCheck.Checked)
	// An untouched share link keeps following the service URL
	if shareURL := strings.TrimSpace(sd.shareURLEntry.Text); shareURL != sd.loadedShareURL {
		sd.settings.SetShareURL(shareURL)
	}

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}
}
