package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/PanchamBro/mediawiki-projects-list/internal/model"
)

func sampleOutcomes() []model.Outcome {
	return []model.Outcome{
		{
			Input: "https://foo.wiki.example.org/wiki/Home",
			Project: &model.Resolution{
				FullArticlePath: "https://foo.wiki.example.org/wiki/",
				FullScriptPath:  "https://foo.wiki.example.org/w/",
				WikiProject: model.WikiProject{
					Name:     "wiki.example.org",
					WikiFarm: model.WikiFarmMiraheze,
				},
			},
			IDString: "7-3",
		},
		{
			Input: "https://proxywiki.example/gta/wiki/Cars",
			Proxy: &model.ProxyResolution{
				FullNamePath:    "https://proxywiki.example/gta/wiki/",
				FullArticlePath: "https://proxywiki.example/gta/wiki/",
				FullScriptPath:  "https://gta.wiki.example.org/w/",
				FrontendProxy: model.FrontendProxy{
					Name: "proxywiki.example",
				},
			},
		},
		{
			Input: "https://unrelated.example.com/page",
		},
		{
			Input: "https://broken.example.org/wiki/Home",
			Err:   "expand article path: template index out of range",
		},
	}
}

func TestTextWriter_Write(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	n, err := NewTextWriter(&buf).Write(sampleOutcomes())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != buf.Len() {
		t.Errorf("reported %d bytes, wrote %d", n, buf.Len())
	}

	got := buf.String()
	for _, want := range []string{
		"project:      wiki.example.org (miraheze)",
		"article path: https://foo.wiki.example.org/wiki/",
		"id string:    7-3",
		"proxy:        proxywiki.example",
		"no matching wiki project or frontend proxy",
		"error:        expand article path: template index out of range",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestJSONWriter_Write(t *testing.T) {
	t.Parallel()

	outcomes := sampleOutcomes()

	var buf bytes.Buffer
	n, err := NewJSONWriter(&buf).Write(outcomes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != buf.Len() {
		t.Errorf("reported %d bytes, wrote %d", n, buf.Len())
	}

	var decoded []model.Outcome
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != len(outcomes) {
		t.Fatalf("expected %d outcomes, got %d", len(outcomes), len(decoded))
	}
	if decoded[0].IDString != "7-3" {
		t.Errorf("expected id string to round-trip, got %q", decoded[0].IDString)
	}
	if decoded[2].Matched() {
		t.Error("expected unmatched outcome to stay unmatched")
	}
}

func TestMarkdownWriter_Write(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if _, err := NewMarkdownWriter(&buf).Write(sampleOutcomes()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := buf.String()
	for _, want := range []string{
		"# Resolution Report",
		"## Wiki Projects",
		"## Frontend Proxies",
		"## Unmatched",
		"Miraheze",
		"https://proxywiki.example/gta/wiki/",
		"https://unrelated.example.com/page",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestMarkdownWriter_WriteSkipsEmptySections(t *testing.T) {
	t.Parallel()

	outcomes := []model.Outcome{{Input: "https://unrelated.example.com/page"}}

	var buf bytes.Buffer
	if _, err := NewMarkdownWriter(&buf).Write(outcomes); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := buf.String()
	if strings.Contains(got, "## Wiki Projects") || strings.Contains(got, "## Frontend Proxies") {
		t.Errorf("expected empty sections to be omitted:\n%s", got)
	}
	if !strings.Contains(got, "## Unmatched") {
		t.Errorf("expected unmatched section:\n%s", got)
	}
}

// errWriter fails after the first write to exercise MultiWriter's error
// propagation.
type errWriter struct{}

func (errWriter) Write([]model.Outcome) (int, error) {
	return 0, errors.New("sink failed")
}

func TestMultiWriter_Write(t *testing.T) {
	t.Parallel()

	t.Run("writes to every sink", func(t *testing.T) {
		t.Parallel()

		var a, b bytes.Buffer
		mw := NewMultiWriter(NewTextWriter(&a), NewTextWriter(&b))
		n, err := mw.Write(sampleOutcomes())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.String() != b.String() {
			t.Error("expected identical output in both sinks")
		}
		if n != a.Len()+b.Len() {
			t.Errorf("reported %d bytes, wrote %d", n, a.Len()+b.Len())
		}
	})

	t.Run("stops on first error", func(t *testing.T) {
		t.Parallel()

		var after bytes.Buffer
		mw := NewMultiWriter(errWriter{}, NewTextWriter(&after))
		if _, err := mw.Write(sampleOutcomes()); err == nil {
			t.Fatal("expected an error")
		}
		if after.Len() != 0 {
			t.Error("expected no writes after the failing sink")
		}
	})
}
