package rewrite

import (
	"strings"
	"testing"
)

func prefixFixer(prefix string) func(href, pagelink string) string {
	return func(href, _ string) string {
		return prefix + href
	}
}

func TestDocument(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		input       string
		wantContain []string
		wantAbsent  []string
	}{
		{
			name:  "rewrites root-relative anchors",
			input: `<p><a href="/wiki/Vehicles">Vehicles</a></p>`,
			wantContain: []string{
				`<a href="/gta/wiki/Vehicles">Vehicles</a>`,
			},
		},
		{
			name:  "leaves absolute anchors alone",
			input: `<a href="https://example.org/wiki/Home">Home</a>`,
			wantContain: []string{
				`<a href="https://example.org/wiki/Home">Home</a>`,
			},
		},
		{
			name:  "leaves protocol-relative anchors alone",
			input: `<a href="//cdn.example.org/style.css">style</a>`,
			wantContain: []string{
				`<a href="//cdn.example.org/style.css">style</a>`,
			},
		},
		{
			name:  "rewrites nested anchors",
			input: `<div><ul><li><a href="/wiki/Cars">Cars</a></li></ul></div>`,
			wantContain: []string{
				`<a href="/gta/wiki/Cars">Cars</a>`,
			},
		},
		{
			name:  "ignores href on non-anchor elements",
			input: `<link href="/style.css"><a href="/wiki/Cars">Cars</a>`,
			wantContain: []string{
				`<link href="/style.css"`,
				`<a href="/gta/wiki/Cars">Cars</a>`,
			},
			wantAbsent: []string{
				`<link href="/gta/style.css"`,
			},
		},
		{
			name: "tolerates malformed markup",
			input: `<p><a href="/wiki/Broken">Broken<p>unclosed`,
			wantContain: []string{
				`href="/gta/wiki/Broken"`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out strings.Builder
			fix := prefixFixer("/gta")
			if err := Document(&out, strings.NewReader(tt.input), fix, "https://proxywiki.example/gta/wiki/Home"); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			got := out.String()
			for _, want := range tt.wantContain {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q:\n%s", want, got)
				}
			}
			for _, absent := range tt.wantAbsent {
				if strings.Contains(got, absent) {
					t.Errorf("output should not contain %q:\n%s", absent, got)
				}
			}
		})
	}
}

func TestDocument_PassesPagelinkThrough(t *testing.T) {
	t.Parallel()

	var gotPagelink string
	fix := func(href, pagelink string) string {
		gotPagelink = pagelink
		return href
	}

	var out strings.Builder
	pagelink := "https://proxywiki.example/gta/wiki/Vehicles"
	err := Document(&out, strings.NewReader(`<a href="/wiki/Cars">x</a>`), fix, pagelink)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPagelink != pagelink {
		t.Errorf("expected pagelink %q, got %q", pagelink, gotPagelink)
	}
}
