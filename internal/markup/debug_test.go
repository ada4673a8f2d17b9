package markup

import (
	"testing"
)

func TestDebugJSONRoles(t *testing.T) {
	root := NewGenerator(nil)
	root.AddText("interface ")
	root.AddName("I")
	root.AddText(" {}")

	doc := root.DebugJSON()
	if got := DebugQuery(doc, "children.1.role"); got != "name" {
		t.Errorf("DebugJSON() children.1.role = %q, want %q (doc: %s)", got, "name", doc)
	}
	if got := DebugQuery(doc, "children.1.text"); got != "I" {
		t.Errorf("DebugJSON() children.1.text = %q, want %q (doc: %s)", got, "I", doc)
	}
}

func TestDebugQuery(t *testing.T) {
	root := NewGenerator(nil)
	root.AddName("I")
	doc := root.DebugJSON()

	if got := DebugQuery(doc, "children.0.role"); got != "name" {
		t.Errorf("DebugQuery(role) = %q, want %q", got, "name")
	}
	if got := DebugQuery(doc, "children.0.text"); got != "I" {
		t.Errorf("DebugQuery(text) = %q, want %q", got, "I")
	}
	if got := DebugQuery(doc, "children.0.missing"); got != "" {
		t.Errorf("DebugQuery(missing) = %q, want \"\"", got)
	}
}

func TestDebugQueryMany(t *testing.T) {
	root := NewGenerator(nil)
	root.AddName("a")
	root.AddName("b")
	doc := root.DebugJSON()

	got := DebugQueryMany(doc, "children", "text")
	want := []string{"a", "b"}
	if len(got) != len(want) {
		t.Fatalf("DebugQueryMany = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("DebugQueryMany[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
