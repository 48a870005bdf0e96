package metrics

import (
	"slices"
	"testing"
)

func TestExtractElements(t *testing.T) {
	tests := []struct {
		name      string
		selectors []string
		want      []string
	}{
		{"empty", nil, []string{}},
		{"pseudo classes collapse", []string{"a:hover", "a:focus"}, []string{"a"}},
		{"garbage rejected", []string{"> * html div"}, []string{"div"}},
		{"multi element", []string{"nav ul li"}, []string{"li", "nav", "ul"}},
		{"repeated in selector", []string{"a a"}, []string{"a"}},
		{"class tokens kept", []string{"h1", "h2", ".btn:hover"}, []string{".btn", "h1", "h2"}},
		{"pseudo element", []string{"input::placeholder"}, []string{"input"}},
		{"chained pseudo", []string{"a:not(.b):hover"}, []string{"a"}},
		{"only pseudo", []string{":root", "::selection"}, []string{}},
		{"case insensitive garbage", []string{"HTML BODY", "Html > P"}, []string{"BODY", "P"}},
		{"combinators", []string{"ul + li ~ p > a"}, []string{"a", "li", "p", "ul"}},
		{"attribute and id kept", []string{`#main a[href^="http"]`}, []string{"#main", `a[href^="http"]`}},
		{"stripping reorders", []string{"a.b", "a:hover"}, []string{"a", "a.b"}},
		{"whitespace variants", []string{"nav\tul\n li"}, []string{"li", "nav", "ul"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractElements(tt.selectors)
			if !slices.Equal(got, tt.want) {
				t.Errorf("ExtractElements(%q) = %q, want %q", tt.selectors, got, tt.want)
			}
		})
	}
}

func TestExtractElements_Idempotent(t *testing.T) {
	selectors := []string{"nav ul li a:hover", ".btn:focus", "html > body", "input::placeholder", "a.b", "#x * p"}

	first := ExtractElements(selectors)
	second := ExtractElements(first)
	if !slices.Equal(first, second) {
		t.Errorf("second pass changed result: %q -> %q", first, second)
	}
}

func TestExtractElements_OrderIndependent(t *testing.T) {
	selectors := []string{"nav ul li", "a:hover", "a.b", ".btn", "~ p", "h1 h2 h1"}
	want := ExtractElements(selectors)

	reversed := slices.Clone(selectors)
	slices.Reverse(reversed)
	rotated := append(slices.Clone(selectors[3:]), selectors[:3]...)

	for _, perm := range [][]string{reversed, rotated} {
		if got := ExtractElements(perm); !slices.Equal(got, want) {
			t.Errorf("ExtractElements(%q) = %q, want %q", perm, got, want)
		}
	}
}

func TestExtractElements_DoesNotModifyInput(t *testing.T) {
	selectors := []string{"b a", "a:hover"}
	ExtractElements(selectors)
	if !slices.Equal(selectors, []string{"b a", "a:hover"}) {
		t.Errorf("input modified: %q", selectors)
	}
}

func TestTokenize(t *testing.T) {
	got := Tokenize([]string{"a a b", "b  c", ""})
	if want := []string{"a", "b", "b", "c"}; !slices.Equal(got, want) {
		t.Errorf("Tokenize() = %q, want %q", got, want)
	}
}

func TestSortTokens(t *testing.T) {
	in := []string{"ul", "a:hover", "a.b", "A"}
	got := SortTokens(in)
	if want := []string{"A", "a.b", "a:hover", "ul"}; !slices.Equal(got, want) {
		t.Errorf("SortTokens() = %q, want %q", got, want)
	}
	if in[0] != "ul" {
		t.Error("SortTokens() modified its input")
	}
}

func TestDedup(t *testing.T) {
	got := Dedup([]string{"a", "b", "a", "c", "b"})
	if want := []string{"a", "b", "c"}; !slices.Equal(got, want) {
		t.Errorf("Dedup() = %q, want %q", got, want)
	}
}

func TestStripPseudo(t *testing.T) {
	tests := map[string]string{
		"a:hover":                "a",
		"input::placeholder":     "input",
		"li:nth-child(2n+1)":     "li",
		"a:hover.active":         "a",
		"p::first-line:hover":    "p",
		"div":                    "div",
		".btn":                   ".btn",
		":hover":                 "",
		"a:":                     "a:",
		`a[href="x"]`:            `a[href="x"]`,
		"tr:nth-of-type(odd) td": "tr",
	}
	for in, want := range tests {
		if got := StripPseudo([]string{in}); got[0] != want {
			t.Errorf("StripPseudo(%q) = %q, want %q", in, got[0], want)
		}
	}
}

func TestRejectGarbage(t *testing.T) {
	got := RejectGarbage([]string{"", ">", "+", "~", "*", "html", "HTML", "body", ".html", "html5"})
	if want := []string{"body", ".html", "html5"}; !slices.Equal(got, want) {
		t.Errorf("RejectGarbage() = %q, want %q", got, want)
	}
}
