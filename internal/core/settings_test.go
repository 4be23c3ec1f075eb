package core

import "testing"

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		currency string
		cents    int64
		out      string
	}{
		{"USD", 6000, "$60.00"},
		{"USD", -6000, "-$60.00"},
		{"EUR", 1250, "€12.50"},
		{"CAD", 100, "C$1.00"},
		// unknown code degrades to a code prefix instead of failing
		{"XYZ", 6000, "XYZ 60.00"},
		{"xyz", -6000, "-XYZ 60.00"},
		{"", 500, "5.00"},
	}
	for _, tc := range cases {
		s := Settings{Currency: tc.currency}
		if got := s.FormatAmount(CentsOf(tc.cents)); got != tc.out {
			t.Fatalf("%s/%d: expected %q, got %q", tc.currency, tc.cents, tc.out, got)
		}
	}
}

func TestFormatDate(t *testing.T) {
	cases := []struct {
		format string
		in     string
		out    string
	}{
		{"MMM dd, yyyy", "2023-10-26", "Oct 26, 2023"},
		{"MM/DD/YYYY", "2023-10-26", "10/26/2023"},
		{"DD/MM/YYYY", "2023-10-26", "26/10/2023"},
		{"YYYY-MM-DD", "2023-10-26", "2023-10-26"},
		// unknown pattern uses the default layout
		{"bogus", "2023-10-26", "Oct 26, 2023"},
		// unparsable input comes back verbatim, never an error
		{"MMM dd, yyyy", "not a date", "not a date"},
		{"MMM dd, yyyy", "", ""},
	}
	for _, tc := range cases {
		s := Settings{DateFormat: tc.format}
		if got := s.FormatDate(tc.in); got != tc.out {
			t.Fatalf("%q(%q): expected %q, got %q", tc.format, tc.in, tc.out, got)
		}
	}
}

func TestPaletteFallback(t *testing.T) {
	s := Settings{ColorPalette: "no-such-palette"}
	if got := s.Palette(); got.ID != ColorPalettes[0].ID {
		t.Fatalf("expected fallback to first palette, got %q", got.ID)
	}
	s = Settings{ColorPalette: "ocean"}
	if got := s.Palette(); got.ID != "ocean" {
		t.Fatalf("expected ocean, got %q", got.ID)
	}
}

func TestSettingsMerge(t *testing.T) {
	base := DefaultSettings()

	eur := "EUR"
	merged := base.Merge(SettingsPatch{Currency: &eur})
	if merged.Currency != "EUR" {
		t.Fatalf("expected EUR, got %q", merged.Currency)
	}
	if merged.DateFormat != base.DateFormat || merged.ColorPalette != base.ColorPalette {
		t.Fatalf("merge touched unrelated fields: %+v", merged)
	}

	// empty patch changes nothing
	if got := base.Merge(SettingsPatch{}); got != base {
		t.Fatalf("empty patch changed settings: %+v", got)
	}
}

func TestDefaultCategories(t *testing.T) {
	n := 0
	cats := DefaultCategories(func() string { n++; return "id" })
	if len(cats) == 0 {
		t.Fatalf("expected built-in categories")
	}
	if n != len(cats) {
		t.Fatalf("expected one fresh id per category")
	}
	seen := map[string]bool{}
	for _, c := range cats {
		if c.IsUserDefined {
			t.Fatalf("built-in %q flagged user-defined", c.Name)
		}
		if seen[c.Name] {
			t.Fatalf("duplicate built-in name %q", c.Name)
		}
		seen[c.Name] = true
	}
	if !seen["Food"] || !seen["Salary"] {
		t.Fatalf("expected Food and Salary in defaults")
	}
}

func TestResolveIconKey(t *testing.T) {
	if got := ResolveIconKey("Utensils"); got != "Utensils" {
		t.Fatalf("expected Utensils, got %q", got)
	}
	if got := ResolveIconKey("NoSuchIcon"); got != FallbackIconKey {
		t.Fatalf("expected fallback, got %q", got)
	}
}
