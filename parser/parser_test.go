package parser

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cwbudde/go-webidl/errors"
	"github.com/cwbudde/go-webidl/internal/constructs"
	"github.com/gkampitakis/go-snaps/snaps"
)

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		`enum E { "a", "b", };`,
		`typedef sequence<DOMString> StringList;`,
		`[Constructor(long x)] interface I { readonly attribute long n; void set(long v); };`,
		`interface I { getter long (long index); };`,
		`callback C = void (long x, long y);`,
		`dictionary D { required long a; long b = 1; };`,
		`interface mixin M { void foo(); };`,
		`Dog includes Animal;`,
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			p := New()
			if err := p.Parse(in); err != nil {
				t.Fatalf("Parse(%q): %v", in, err)
			}
			if got := p.String(); got != in {
				t.Errorf("round-trip mismatch:\n  input:  %q\n  output: %q", in, got)
			}
		})
	}
}

func TestIdempotence(t *testing.T) {
	in := `[Constructor(long x)] interface I { readonly attribute long n; void set(long v); };`
	p1 := New()
	if err := p1.Parse(in); err != nil {
		t.Fatal(err)
	}
	p2 := New()
	if err := p2.Parse(p1.String()); err != nil {
		t.Fatal(err)
	}
	if p1.String() != p2.String() {
		t.Errorf("not idempotent:\n  first:  %q\n  second: %q", p1.String(), p2.String())
	}
}

func TestSymbolTable(t *testing.T) {
	p := New()
	if err := p.Parse(`interface I {}; typedef long T; enum E { "a" };`); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"I", "T", "E"} {
		if !p.Has(name) {
			t.Errorf("expected %q registered in symbol table", name)
		}
	}
}

func TestReverseDeclarationLookup(t *testing.T) {
	p := New()
	if err := p.Parse(`interface I { void a(); }; interface I { void b(); };`); err != nil {
		t.Fatal(err)
	}
	result := p.Find("I")
	named, ok := result.(interface{ Name() string })
	if !ok || named.Name() != "I" {
		t.Fatalf("Find(%q) returned wrong construct: %v", "I", result)
	}
	all := p.FindAll("I")
	if len(all) != 2 {
		t.Fatalf("FindAll(%q) = %d results, want 2", "I", len(all))
	}
}

func TestPathLookup(t *testing.T) {
	p := New()
	if err := p.Parse(`interface I { void m(long a); };`); err != nil {
		t.Fatal(err)
	}
	result := p.Find("I.m.a")
	if result == nil {
		t.Fatalf("Find(%q) = nil", "I.m.a")
	}
	named, ok := result.(interface{ Name() string })
	if !ok || named.Name() != "a" {
		t.Errorf("Find(%q) = %#v, want argument named a", "I.m.a", result)
	}
}

func TestMethodNameVariants(t *testing.T) {
	p := New()
	if err := p.Parse(`interface I { void foo(optional long a, optional long b); };`); err != nil {
		t.Fatal(err)
	}
	got := p.NormalizedMethodNames("foo()", "I")
	want := []string{"foo(a, b)", "foo(a)", "foo()"}
	if !equalStrings(got, want) {
		t.Errorf("NormalizedMethodNames = %v, want %v", got, want)
	}
}

func TestMethodNameVariantsVariadic(t *testing.T) {
	p := New()
	if err := p.Parse(`interface I { void bar(long x, long... y); };`); err != nil {
		t.Fatal(err)
	}
	got := p.NormalizedMethodNames("bar()", "I")
	want := []string{"bar(x, ...y)"}
	if !equalStrings(got, want) {
		t.Errorf("NormalizedMethodNames = %v, want %v", got, want)
	}
}

func TestCallbackMethodNameVariants(t *testing.T) {
	p := New()
	if err := p.Parse(`callback C = void (long x, long y);`); err != nil {
		t.Fatal(err)
	}
	got := p.NormalizedMethodNames("C()", "")
	want := []string{"C(x, y)"}
	if !equalStrings(got, want) {
		t.Errorf("NormalizedMethodNames = %v, want %v", got, want)
	}
}

func TestArgumentOrderingDiagnostic(t *testing.T) {
	ui := &errors.CollectingUI{}
	p := New(WithUI(ui))
	in := `callback C = void (optional long a, long b);`
	if err := p.Parse(in); err != nil {
		t.Fatal(err)
	}
	found := false
	for _, d := range ui.Diagnostics() {
		if d.Kind == errors.KindError {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an argument-ordering diagnostic, got %v", ui.Diagnostics())
	}
}

func TestRecovery(t *testing.T) {
	p := New()
	in := `interface X { void a(); garbage; void b(); };`
	if err := p.Parse(in); err != nil {
		t.Fatal(err)
	}
	if got := p.String(); got != in {
		t.Errorf("round-trip mismatch after recovery:\n  input:  %q\n  output: %q", in, got)
	}
}

func TestMarkupIdentity(t *testing.T) {
	inputs := []string{
		`enum E { "a", "b", };`,
		`typedef sequence<DOMString> StringList;`,
		`[Constructor(long x)] interface I { readonly attribute long n; void set(long v); };`,
		`interface I { getter long (long index); };`,
		`callback C = void (long x, long y);`,
		`dictionary D { required long a; long b = 1; };`,
		`Dog includes Animal;`,
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			p := New()
			if err := p.Parse(in); err != nil {
				t.Fatalf("Parse(%q): %v", in, err)
			}
			if got := p.Markup(nil); got != p.String() {
				t.Errorf("Markup(nil) != String():\n  markup: %q\n  string: %q", got, p.String())
			}
			// A marker implementing none of the hook interfaces behaves
			// identically to nil: every probe falls back to ("", "").
			if got := p.Markup(struct{}{}); got != p.String() {
				t.Errorf("Markup(noop) != String():\n  markup: %q\n  string: %q", got, p.String())
			}
		})
	}
}

// bracketMarker wraps every declared name and type name in brackets, and
// every keyword/enum value in angle brackets, exercising the full hook
// set a real caller (e.g. a syntax highlighter) would implement.
type bracketMarker struct{}

func (bracketMarker) MarkupName(text string, _ constructs.Construct) (string, string) {
	return "[", "]"
}

func (bracketMarker) MarkupTypeName(text string, _ constructs.Construct) (string, string) {
	return "{", "}"
}

func (bracketMarker) MarkupKeyword(text string, _ constructs.Construct) (string, string) {
	return "<", ">"
}

func (bracketMarker) MarkupEnumValue(text string, _ constructs.Construct) (string, string) {
	return "<", ">"
}

func TestMarkupDecoratesNamesAndTypes(t *testing.T) {
	p := New()
	in := `interface I { readonly attribute long n; };`
	if err := p.Parse(in); err != nil {
		t.Fatal(err)
	}
	got := p.Markup(bracketMarker{})
	for _, want := range []string{"[I]", "[n]"} {
		if !strings.Contains(got, want) {
			t.Errorf("Markup output %q missing %q", got, want)
		}
	}
	if strings.Contains(got, "<long>") {
		t.Errorf("Markup output %q decorated a primitive type as a keyword", got)
	}
	// Stripping the decoration markers back out must recover exactly the
	// original input: the markup tree never changes the underlying text,
	// only wraps it. The input's own braces are marker characters too, so
	// the same stripping is applied to it before comparing.
	strip := strings.NewReplacer("[", "", "]", "", "{", "", "}", "", "<", "", ">", "")
	stripped := strip.Replace(got)
	if want := strip.Replace(in); stripped != want {
		t.Errorf("stripped markup = %q, want %q", stripped, want)
	}
}

func TestMarkupEnumValueAndKeywordHooks(t *testing.T) {
	p := New()
	in := `enum E { "a", "b" };`
	if err := p.Parse(in); err != nil {
		t.Fatal(err)
	}
	got := p.Markup(bracketMarker{})
	for _, want := range []string{`<"a">`, `<"b">`} {
		if !strings.Contains(got, want) {
			t.Errorf("Markup output %q missing %q", got, want)
		}
	}

	kp := New()
	if err := kp.Parse(`interface I { const boolean B = true; };`); err != nil {
		t.Fatal(err)
	}
	if got := kp.Markup(bracketMarker{}); !strings.Contains(got, "<true>") {
		t.Errorf("Markup output %q missing %q", got, "<true>")
	}
}

func TestEndToEndScenarios(t *testing.T) {
	cases := []string{
		`enum E { "a", "b", };`,
		`typedef sequence<DOMString> StringList;`,
		`[Constructor(long x)] interface I { readonly attribute long n; void set(long v); };`,
		`interface I { getter long (long index); };`,
		`callback C = void (long x, long y);`,
	}
	for i, in := range cases {
		p := New()
		if err := p.Parse(in); err != nil {
			t.Fatalf("scenario %d: %v", i+1, err)
		}
		snaps.MatchSnapshot(t, fmt.Sprintf("scenario_%d_output", i+1), p.String())
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
