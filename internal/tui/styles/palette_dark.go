package styles

import "github.com/opencode-ai/osiview/internal/theme"

// DarkPalette is used while the root carries the theme-dark class.
var DarkPalette = Palette{
	Theme: theme.Dark,
	Tokens: ThemeTokens{
		Background: "#0B0F14",
		Panel:      "#121821",
		Text:       "#E6EDF3",
		TextMuted:  "#8B9AAE",
		Border:     "#223043",
		Accent:     "#5B8DEF",
		Focus:      "#7AA2F7",
		Selection:  "#1F2A3A",
		Success:    "#3FB950",
		Warning:    "#D29922",
		Error:      "#F85149",
		MediaLayer: "#F0883E",
		HostLayer:  "#58A6FF",
	},
}
