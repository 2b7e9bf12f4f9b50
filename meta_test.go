package ucf

import (
	"bytes"
	"reflect"
	"testing"
)

func TestMetaAliasing(t *testing.T) {
	pkg := New()
	content := []byte("cookies")
	if err := pkg.Meta.Set("flavour", content); err != nil {
		t.Fatal(err)
	}

	direct, ok := pkg.Get("META-INF/flavour")
	if !ok {
		t.Fatal("META-INF/flavour not visible through the package")
	}
	viewed, ok := pkg.Meta.Get("flavour")
	if !ok {
		t.Fatal("flavour not visible through the view")
	}
	if &direct[0] != &viewed[0] {
		t.Fatal("view and package must share one backing array")
	}

	// Mutation through one path is visible through the other.
	direct[0] = 'C'
	if !bytes.Equal(viewed, []byte("Cookies")) {
		t.Fatalf("mutation not shared: %q", viewed)
	}
}

func TestMetaSetValidates(t *testing.T) {
	pkg := New()
	if err := pkg.Meta.Set("bad:name", nil); err == nil {
		t.Fatal("expected error for illegal name through the view")
	}
	if pkg.Len() != 1 { // mimetype only
		t.Fatalf("failed set must not mutate the package, len=%d", pkg.Len())
	}
}

func TestMetaNamesAndLen(t *testing.T) {
	pkg := New()
	for _, kv := range []struct{ name, val string }{
		{"META-INF/container.xml", "<container/>"},
		{"content.xml", "<doc/>"},
		{"META-INF/signatures.xml", "<sigs/>"},
	} {
		if err := pkg.Set(kv.name, []byte(kv.val)); err != nil {
			t.Fatal(err)
		}
	}

	want := []string{"container.xml", "signatures.xml"}
	if got := pkg.Meta.Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Names: want %v, got %v", want, got)
	}
	if pkg.Meta.Len() != 2 {
		t.Fatalf("Len: want 2, got %d", pkg.Meta.Len())
	}

	if !pkg.Meta.Delete("signatures.xml") {
		t.Fatal("Delete returned false")
	}
	if pkg.Has("META-INF/signatures.xml") {
		t.Fatal("delete through the view must remove the package member")
	}
	if pkg.Meta.Has("signatures.xml") {
		t.Fatal("Has after delete")
	}
}
