package styles

import "github.com/opencode-ai/osiview/internal/theme"

// LightPalette is used while the root carries the theme-light class.
var LightPalette = Palette{
	Theme: theme.Light,
	Tokens: ThemeTokens{
		Background: "#FFFFFF",
		Panel:      "#F6F8FA",
		Text:       "#1F2328",
		TextMuted:  "#59636E",
		Border:     "#D1D9E0",
		Accent:     "#0969DA",
		Focus:      "#0550AE",
		Selection:  "#DDF4FF",
		Success:    "#1A7F37",
		Warning:    "#9A6700",
		Error:      "#CF222E",
		MediaLayer: "#BC4C00",
		HostLayer:  "#0969DA",
	},
}
