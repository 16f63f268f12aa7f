package ui

import (
	_ "embed"

	"fyne.io/fyne/v2"
)

const (
	AppIcon = "aurane.svg"
)

//go:embed aurane.svg
var logoSVG []byte

// LogoResource is the embedded application logo
var LogoResource = fyne.NewStaticResource(AppIcon, logoSVG)
