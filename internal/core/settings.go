package core

import (
	"fmt"
	"strings"
)

// DefaultDateFormat is the display pattern used until the user picks
// another one.
const DefaultDateFormat = "MMM dd, yyyy"

// currencySymbols maps the supported ISO-4217 codes to their display
// symbols. Codes outside this table still format, with the code itself
// as prefix.
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"INR": "₹",
	"CAD": "C$",
	"AUD": "A$",
	"CHF": "Fr",
	"CNY": "¥",
	"SEK": "kr",
	"NZD": "$",
	"BRL": "R$",
	"ZAR": "R",
}

// dateLayouts maps the user-facing format patterns onto Go time
// layouts.
var dateLayouts = map[string]string{
	DefaultDateFormat: "Jan 02, 2006",
	"MM/DD/YYYY":      "01/02/2006",
	"DD/MM/YYYY":      "02/01/2006",
	"YYYY-MM-DD":      "2006-01-02",
}

// ColorPalette is one entry of the fixed palette table. Primary and
// Accent are hex colors consumed by chart rendering.
type ColorPalette struct {
	ID      string
	Name    string
	Primary string
	Accent  string
}

// ColorPalettes is the fixed palette table. The first entry is the
// fallback for unknown palette ids.
var ColorPalettes = []ColorPalette{
	{ID: "default", Name: "Zen Teal", Primary: "#0d9488", Accent: "#f59e0b"},
	{ID: "ocean", Name: "Ocean Blue", Primary: "#2563eb", Accent: "#06b6d4"},
	{ID: "forest", Name: "Forest Green", Primary: "#16a34a", Accent: "#a3e635"},
	{ID: "sunset", Name: "Sunset Orange", Primary: "#ea580c", Accent: "#f43f5e"},
}

// DefaultSettings returns the first-run display preferences.
func DefaultSettings() Settings {
	return Settings{
		Currency:     "USD",
		DateFormat:   DefaultDateFormat,
		ColorPalette: ColorPalettes[0].ID,
	}
}

// Palette resolves the active color palette, falling back to the first
// defined palette for unknown ids.
func (s Settings) Palette() ColorPalette {
	for _, p := range ColorPalettes {
		if p.ID == s.ColorPalette {
			return p
		}
	}
	return ColorPalettes[0]
}

// FormatAmount renders a money value using the active currency. Known
// codes use their symbol ("$60.00", "-€12.50"); unknown codes degrade
// to "CODE 60.00" rather than failing.
func (s Settings) FormatAmount(m Money) string {
	code := strings.ToUpper(strings.TrimSpace(s.Currency))
	sign := ""
	if m.Cents < 0 {
		sign = "-"
		m = m.Abs()
	}
	if symbol, ok := currencySymbols[code]; ok {
		return fmt.Sprintf("%s%s%s", sign, symbol, m.String())
	}
	if code == "" {
		return sign + m.String()
	}
	return fmt.Sprintf("%s%s %s", sign, code, m.String())
}

// FormatDate renders an ISO yyyy-mm-dd string per the active date
// format. Unparsable input is returned verbatim; this never fails.
func (s Settings) FormatDate(isoDate string) string {
	layout, ok := dateLayouts[s.DateFormat]
	if !ok {
		layout = dateLayouts[DefaultDateFormat]
	}
	d, err := ParseDate(isoDate)
	if err != nil {
		return isoDate
	}
	return d.Format(layout)
}

// Merge applies the non-nil fields of patch on top of s and returns the
// result. This is the shallow merge both settings updates and loading
// rely on, so setting keys added later always have a value.
func (s Settings) Merge(patch SettingsPatch) Settings {
	if patch.Currency != nil {
		s.Currency = *patch.Currency
	}
	if patch.DateFormat != nil {
		s.DateFormat = *patch.DateFormat
	}
	if patch.ColorPalette != nil {
		s.ColorPalette = *patch.ColorPalette
	}
	return s
}

// SettingsPatch is a partial settings update; nil fields keep their
// current value.
type SettingsPatch struct {
	Currency     *string `json:"currency,omitempty"`
	DateFormat   *string `json:"dateFormat,omitempty"`
	ColorPalette *string `json:"colorPalette,omitempty"`
}
