package palette

import "testing"

func TestInSetPointsAreBlack(t *testing.T) {
	for _, s := range Schemes() {
		got := GetColor(500, 500, s)
		if got != (RGB{0, 0, 0}) {
			t.Errorf("scheme %s: expected black for in-set point, got %v", s, got)
		}
	}
}

func TestChannelsStayInRange(t *testing.T) {
	const maxIter = 1000
	for _, s := range Schemes() {
		for i := 0; i < maxIter; i++ {
			c := GetColor(i, maxIter, s)
			if c.R < 0 || c.R > 255 || c.G < 0 || c.G > 255 || c.B < 0 || c.B > 255 {
				t.Fatalf("scheme %s, iterations %d: channel out of range: %v", s, i, c)
			}
		}
	}
}

func TestGrayscaleMidpoint(t *testing.T) {
	// ratio 0.5 truncates to 127 on every channel
	got := GetColor(50, 100, Grayscale)
	want := RGB{127, 127, 127}
	if got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestSchemeValues(t *testing.T) {
	testCases := []struct {
		name       string
		scheme     Scheme
		iterations int
		maxIter    int
		want       RGB
	}{
		{"fire start is black", Fire, 0, 100, RGB{0, 0, 0}},
		{"fire midpoint is pure red", Fire, 50, 100, RGB{255, 0, 0}},
		{"rainbow start is red", Rainbow, 0, 100, RGB{255, 0, 0}},
		{"grayscale start is black", Grayscale, 0, 100, RGB{0, 0, 0}},
		{"ocean start is deep blue", Ocean, 0, 100, RGB{0, 0, 120}},
		{"sunset start is dusk purple", Sunset, 0, 100, RGB{30, 8, 60}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := GetColor(tc.iterations, tc.maxIter, tc.scheme)
			if got != tc.want {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestUnknownSchemeFallsBackToClassic(t *testing.T) {
	for i := 0; i < 100; i++ {
		got := GetColor(i, 100, Scheme(99))
		want := GetColor(i, 100, Classic)
		if got != want {
			t.Errorf("iterations %d: expected classic fallback %v, got %v", i, want, got)
		}
	}
}

func TestParseScheme(t *testing.T) {
	for _, s := range Schemes() {
		if got := ParseScheme(s.String()); got != s {
			t.Errorf("expected %s to round-trip, got %s", s, got)
		}
	}
	if got := ParseScheme("plasma"); got != Classic {
		t.Errorf("expected unknown name to fall back to classic, got %s", got)
	}
}

func TestTableMatchesGetColor(t *testing.T) {
	const maxIter = 256
	table := Table(maxIter, Volcanic)
	if len(table) != maxIter+1 {
		t.Fatalf("expected %d entries, got %d", maxIter+1, len(table))
	}
	if table[maxIter] != (RGB{0, 0, 0}) {
		t.Errorf("expected last entry black, got %v", table[maxIter])
	}
	for i, c := range table {
		if want := GetColor(i, maxIter, Volcanic); c != want {
			t.Errorf("entry %d: expected %v, got %v", i, want, c)
		}
	}
}
