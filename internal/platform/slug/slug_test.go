package slug_test

import (
	"strings"
	"testing"

	"pontutor/internal/platform/slug"
)

func TestMake(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"JB‑19 (BJC)":       "jb-19-bjc",
		"  THUNAG OLT  ":     "thunag-olt",
		"":                  "untitled",
		"---":               "untitled",
		"PON Tutor — print": "pon-tutor-print",
	}
	for in, want := range cases {
		if got := slug.Make(in); got != want {
			t.Fatalf("slug.Make(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMakeCapsLength(t *testing.T) {
	t.Parallel()
	got := slug.Make(strings.Repeat("fiber ", 30))
	if len(got) > 48 {
		t.Fatalf("expected at most 48 chars, got %d (%q)", len(got), got)
	}
	if strings.HasSuffix(got, "-") {
		t.Fatalf("slug must not end with a dash: %q", got)
	}
}
