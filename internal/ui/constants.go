package ui

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconCopy     = "📋"
	IconOpen     = "↗"
)

// Window and header sizing
const (
	WindowWidth  float32 = 720
	WindowHeight float32 = 640
	LogoSize     float32 = 40
	TitleSize    float32 = 30
)

// Preview cards
const (
	CardMinWidth      float32 = 360
	SamplePadding     float32 = 8
	SettingsDialogW   float32 = 460
	SettingsDialogH   float32 = 320
	previewSizeFormat         = "%.0f pt"
)
