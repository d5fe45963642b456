package links

import (
	"reflect"
	"testing"
)

func TestAttributesOrderAndUpsert(t *testing.T) {
	attrs := NewAttributes("href", "/x", "class", "btn")
	attrs.Set("id", "one")
	attrs.Set("class", "btn btn-primary")

	if got := attrs.Keys(); !reflect.DeepEqual(got, []string{"href", "class", "id"}) {
		t.Fatalf("unexpected order: %v", got)
	}
	if value, ok := attrs.Get("class"); !ok || value != "btn btn-primary" {
		t.Fatalf("expected upserted class, got %q", value)
	}
}

func TestAttributesDelete(t *testing.T) {
	attrs := NewAttributes("a", "1", "b", "2", "c", "3")
	snapshot := attrs.Clone()
	attrs.Delete("b")
	attrs.Delete("missing")

	if got := attrs.Keys(); !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Fatalf("unexpected keys after delete: %v", got)
	}
	if got := snapshot.Keys(); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("clone must be unaffected: %v", got)
	}
}

func TestAttributesMergeLastWriteWins(t *testing.T) {
	base := NewAttributes("href", "/x", "class", "btn")
	base.Merge(NewAttributes("class", "custom", "target", "_blank"))

	got := map[string]string{}
	base.Each(func(k, v string) { got[k] = v })
	want := map[string]string{"href": "/x", "class": "custom", "target": "_blank"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Merge() = %v want %v", got, want)
	}
	if got := base.Keys(); !reflect.DeepEqual(got, []string{"href", "class", "target"}) {
		t.Fatalf("unexpected order after merge: %v", got)
	}
}

func TestAttributesFromMapSorted(t *testing.T) {
	attrs := AttributesFromMap(map[string]string{"title": "t", "id": "i", "data-x": "x"})
	if got := attrs.Keys(); !reflect.DeepEqual(got, []string{"data-x", "id", "title"}) {
		t.Fatalf("expected sorted keys, got %v", got)
	}
}

func TestNewAttributesOddPairs(t *testing.T) {
	attrs := NewAttributes("id", "x", "hidden")
	if value, ok := attrs.Get("hidden"); !ok || value != "" {
		t.Fatalf("expected trailing key with empty value, got %q %v", value, ok)
	}
}

func TestStripDataAttributes(t *testing.T) {
	attrs := NewAttributes("data-id", "1", "id", "x", "database", "keep", "data-", "gone")
	stripped := StripDataAttributes(attrs)

	if got := stripped.Keys(); !reflect.DeepEqual(got, []string{"id", "database"}) {
		t.Fatalf("unexpected keys: %v", got)
	}
	if attrs.Len() != 4 {
		t.Fatalf("input must not be modified")
	}
}

func TestHTMLSerializer(t *testing.T) {
	attrs := NewAttributes("href", "/x?a=1&b=2", "class", "btn", " ", "skipped", "title", `"q"`)
	got := HTMLSerializer{}.Serialize(attrs)
	want := ` href="/x?a=1&amp;b=2" class="btn" title="&#34;q&#34;"`
	if got != want {
		t.Fatalf("Serialize() = %q want %q", got, want)
	}
	if out := (HTMLSerializer{}).Serialize(Attributes{}); out != "" {
		t.Fatalf("expected empty output, got %q", out)
	}
}

func TestAttributesCopiesShareStorage(t *testing.T) {
	a := NewAttributes("id", "x")
	b := a
	b.Set("data-x", "1")
	a.Set("data-x", "2")

	if got := a.Keys(); !reflect.DeepEqual(got, []string{"id", "data-x"}) {
		t.Fatalf("unexpected keys on original: %v", got)
	}
	if got := b.Keys(); !reflect.DeepEqual(got, []string{"id", "data-x"}) {
		t.Fatalf("unexpected keys on copy: %v", got)
	}
	want := ` id="x" data-x="2"`
	if got := (HTMLSerializer{}).Serialize(a); got != want {
		t.Fatalf("Serialize() = %q want %q", got, want)
	}

	independent := a.Clone()
	independent.Set("title", "t")
	if a.Has("title") {
		t.Fatalf("clone must not write through to the source")
	}
}

func TestAttributesNormalizeKeys(t *testing.T) {
	attrs := NewAttributes("class", "btn")
	attrs.Set(" class", "a")
	attrs.Set("CLASS ", "b")
	attrs.Set("   ", "ignored")

	if got := attrs.Keys(); !reflect.DeepEqual(got, []string{"class"}) {
		t.Fatalf("expected a single class key, got %v", got)
	}
	if value, _ := attrs.Get("Class"); value != "b" {
		t.Fatalf("expected last write to win, got %q", value)
	}
}

func TestHTMLSerializerSkipsInvalidNames(t *testing.T) {
	tests := []string{
		"onclick=alert(1) x",
		"a b",
		`x"y`,
		"x'y",
		"<script",
		"x>",
		"a/b",
		"a\tb",
	}
	for _, key := range tests {
		t.Run(key, func(t *testing.T) {
			attrs := NewAttributes("id", "x")
			attrs.Set(key, "v")
			if got := (HTMLSerializer{}).Serialize(attrs); got != ` id="x"` {
				t.Fatalf("Serialize() = %q", got)
			}
		})
	}
}
