package ui

import (
	_ "embed"

	"fyne.io/fyne/v2"
)

const (
	AppIcon = "tripwise.svg"
)

//go:embed assets/tripwise.svg
var logoSVG []byte

// LogoResource is the embedded application logo
var LogoResource = &fyne.StaticResource{
	StaticName:    AppIcon,
	StaticContent: logoSVG,
}

// LoadLogoResource returns the logo file from the working directory when
// present, otherwise the embedded one
func LoadLogoResource() fyne.Resource {
	if res, err := fyne.LoadResourceFromPath(AppIcon); err == nil {
		return res
	}
	return LogoResource
}
