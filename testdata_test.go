package webidl_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/go-webidl/parser"
	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/goccy/go-yaml"
	"github.com/kr/pretty"
	"github.com/maruel/natural"
	"github.com/tidwall/match"
)

// fixture is one YAML document under testdata/fixtures/*.yaml: a WebIDL
// snippet plus the properties spec.md §8 expects of it.
type fixture struct {
	Name      string   `yaml:"name"`
	Input     string   `yaml:"input"`
	RoundTrip bool     `yaml:"round_trip"`
	Symbols   []string `yaml:"symbols"`
}

// fixturePattern narrows which fixture files run, the way `go test -run`
// narrows test names; "*" (the default) runs every file. Matching goes
// through tidwall/match, which understands the `*` and `?` wildcards only.
var fixturePattern = "*"

func loadFixtures(t *testing.T) []fixture {
	t.Helper()
	entries, err := filepath.Glob("testdata/fixtures/*.yaml")
	if err != nil {
		t.Fatalf("glob fixtures: %v", err)
	}
	natural.Sort(entries)

	var out []fixture
	for _, path := range entries {
		if !match.Match(filepath.Base(path), fixturePattern) {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read %s: %v", path, err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		for {
			var f fixture
			if err := dec.Decode(&f); err != nil {
				break
			}
			out = append(out, f)
		}
	}
	return out
}

func TestFixtureCorpus(t *testing.T) {
	for _, f := range loadFixtures(t) {
		t.Run(f.Name, func(t *testing.T) {
			p := parser.New()
			if err := p.Parse(f.Input); err != nil {
				t.Fatalf("Parse: %v", err)
			}

			if f.RoundTrip && p.String() != f.Input {
				diff := pretty.Diff(f.Input, p.String())
				t.Errorf("round-trip mismatch for %q:\n%s", f.Name, strings.Join(diff, "\n"))
			}

			for _, name := range f.Symbols {
				if !p.Has(name) {
					t.Errorf("%q: expected symbol %q registered, got keys %v", f.Name, name, p.Keys())
				}
			}

			snaps.MatchSnapshot(t, fmt.Sprintf("%s_output", f.Name), p.String())
		})
	}
}
