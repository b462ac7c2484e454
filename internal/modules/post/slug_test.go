package post

import (
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Top 10 Buying Tips!", "top-10-buying-tips"},
		{"  Spaces  Everywhere  ", "spaces-everywhere"},
		{"Already-hyphenated title", "already-hyphenated-title"},
		{"under_scored title", "under-scored-title"},
		{"MIXED Case Title", "mixed-case-title"},
		{"Symbols & Punctuation, removed?", "symbols-punctuation-removed"},
		{"2026 Market Outlook", "2026-market-outlook"},
		{"---", ""},
		{"!!!", ""},
		{"房地产投资指南", ""}, // no ASCII alphanumerics
		{"", ""},
	}

	for _, tc := range cases {
		if got := Slugify(tc.title); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}

func TestRandomSlug(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		s := randomSlug(slugFallbackLen)
		if len(s) != slugFallbackLen {
			t.Fatalf("randomSlug length = %d, want %d", len(s), slugFallbackLen)
		}
		for _, r := range s {
			if !strings.ContainsRune(slugAlphabet, r) {
				t.Fatalf("randomSlug produced %q outside alphabet", r)
			}
		}
		seen[s] = true
	}
	if len(seen) < 40 {
		t.Errorf("randomSlug produced only %d distinct values out of 50", len(seen))
	}
}
