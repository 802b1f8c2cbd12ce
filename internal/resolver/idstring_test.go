package resolver

import (
	"net/url"
	"testing"

	"github.com/PanchamBro/mediawiki-projects-list/internal/model"
)

// idProjects returns a catalog entry with an id-string codec. The id
// pattern's first alternative captures a bare id string as group 1 (the
// decode side); the second captures URL components as groups 2 and 3 (the
// encode side).
func idProjects(direction model.Direction) []model.WikiProject {
	return []model.WikiProject{{
		Name:        "example.org",
		Regex:       `^https?://(wiki[0-9-]+\.example\.org)`,
		ArticlePath: "/wiki/",
		ScriptPath:  "/w/",
		IDString: &model.IDString{
			Separator: "-",
			Direction: direction,
			Regex:     `^([0-9]+(?:-[0-9]+)*)$|^https?://wiki([0-9]+)(?:-([0-9]+))?\.example\.org`,
			ScriptPaths: []string{
				"https://wiki$1.example.org/w/index.php",
				"https://wiki$1-$2.example.org/w/index.php",
			},
		},
	}}
}

// mustParse parses a URL or fails the test.
func mustParse(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse %q: %v", raw, err)
	}
	return u
}

func TestResolver_EncodeIDString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		direction model.Direction
		url       string
		want      string
		wantOK    bool
	}{
		{
			name:      "two components joined in match order",
			direction: model.DirectionAsc,
			url:       "https://wiki7-3.example.org/w/index.php",
			want:      "7-3",
			wantOK:    true,
		},
		{
			name:      "optional component absent yields single token",
			direction: model.DirectionAsc,
			url:       "https://wiki7.example.org/w/index.php",
			want:      "7",
			wantOK:    true,
		},
		{
			name:      "desc direction reverses components",
			direction: model.DirectionDesc,
			url:       "https://wiki7-3.example.org/w/index.php",
			want:      "3-7",
			wantOK:    true,
		},
		{
			name:      "hostname outside any id project",
			direction: model.DirectionAsc,
			url:       "https://wiki7.unrelated.net/w/index.php",
			wantOK:    false,
		},
		{
			name:      "matching name but pattern mismatch",
			direction: model.DirectionAsc,
			url:       "https://wikiseven.example.org/w/index.php",
			wantOK:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := New(testCatalog(t, idProjects(tt.direction), nil))
			got, ok := r.EncodeIDString(mustParse(t, tt.url))

			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got ok=%v (id=%q)", tt.wantOK, ok, got)
			}
			if got != tt.want {
				t.Errorf("expected id %q, got %q", tt.want, got)
			}
		})
	}
}

func TestResolver_DecodeIDString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		idString   string
		project    string
		want       string
		wantAbsent bool
	}{
		{
			name:     "single token selects first template",
			idString: "7",
			project:  "example.org",
			want:     "https://wiki7.example.org/w/index.php",
		},
		{
			name:     "two tokens select second template",
			idString: "7-3",
			project:  "example.org",
			want:     "https://wiki7-3.example.org/w/index.php",
		},
		{
			name:       "more tokens than templates",
			idString:   "7-3-2",
			project:    "example.org",
			wantAbsent: true,
		},
		{
			name:       "id string not matching the pattern",
			idString:   "seven",
			project:    "example.org",
			wantAbsent: true,
		},
		{
			name:       "project name is matched exactly not by suffix",
			idString:   "7",
			project:    "wiki.example.org",
			wantAbsent: true,
		},
		{
			name:       "unknown project",
			idString:   "7",
			project:    "unrelated.net",
			wantAbsent: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := New(testCatalog(t, idProjects(model.DirectionAsc), nil))
			u, err := r.DecodeIDString(tt.idString, tt.project)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if tt.wantAbsent {
				if u != nil {
					t.Fatalf("expected absent result, got %q", u.String())
				}
				return
			}
			if u == nil {
				t.Fatal("expected a URL, got absent")
			}
			if u.String() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, u.String())
			}
		})
	}
}

// TestResolver_RoundTripAsc verifies encode-then-decode is an identity for
// asc-direction projects.
func TestResolver_RoundTripAsc(t *testing.T) {
	t.Parallel()

	r := New(testCatalog(t, idProjects(model.DirectionAsc), nil))

	for _, raw := range []string{
		"https://wiki7.example.org/w/index.php",
		"https://wiki7-3.example.org/w/index.php",
		"https://wiki12-9.example.org/w/index.php",
	} {
		id, ok := r.EncodeIDString(mustParse(t, raw))
		if !ok {
			t.Fatalf("encode %q: expected an id string", raw)
		}
		u, err := r.DecodeIDString(id, "example.org")
		if err != nil || u == nil {
			t.Fatalf("decode %q: got url=%v err=%v", id, u, err)
		}
		if u.String() != raw {
			t.Errorf("round trip of %q via %q yielded %q", raw, id, u.String())
		}
	}
}

// TestResolver_DescDirectionNotReversedOnDecode pins the known round-trip
// asymmetry: encode reverses components for desc projects but decode
// substitutes tokens in split order without un-reversing them.
func TestResolver_DescDirectionNotReversedOnDecode(t *testing.T) {
	t.Parallel()

	r := New(testCatalog(t, idProjects(model.DirectionDesc), nil))

	id, ok := r.EncodeIDString(mustParse(t, "https://wiki7-3.example.org/w/index.php"))
	if !ok || id != "3-7" {
		t.Fatalf("expected encoded id \"3-7\", got %q (ok=%v)", id, ok)
	}

	u, err := r.DecodeIDString(id, "example.org")
	if err != nil || u == nil {
		t.Fatalf("decode %q: got url=%v err=%v", id, u, err)
	}

	// The asymmetry: tokens stay in split order, so the decoded URL is
	// NOT the one we encoded.
	if u.String() != "https://wiki3-7.example.org/w/index.php" {
		t.Errorf("expected un-reversed substitution, got %q", u.String())
	}
	if u.String() == "https://wiki7-3.example.org/w/index.php" {
		t.Error("decode started reversing desc tokens; this changes the documented contract")
	}
}

// TestResolver_DecodeReturnsFreshURLValues verifies cache hits hand out
// independently mutable URL values.
func TestResolver_DecodeReturnsFreshURLValues(t *testing.T) {
	t.Parallel()

	r := New(testCatalog(t, idProjects(model.DirectionAsc), nil))

	first, err := r.DecodeIDString("7", "example.org")
	if err != nil || first == nil {
		t.Fatalf("decode: got url=%v err=%v", first, err)
	}
	second, err := r.DecodeIDString("7", "example.org")
	if err != nil || second == nil {
		t.Fatalf("cached decode: got url=%v err=%v", second, err)
	}

	if first == second {
		t.Fatal("expected distinct URL values across calls")
	}
	first.Host = "mutated.example"
	if second.Host == "mutated.example" {
		t.Error("mutating one decoded URL affected another")
	}
}
