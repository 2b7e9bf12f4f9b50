package ucf

import (
	"bytes"
	"errors"
	"reflect"
	"testing"
)

func TestContainerRoundTrip(t *testing.T) {
	lists := map[string][]Rootfile{
		"single": {
			{FullPath: "OEBPS/content.opf", MediaType: "application/oebps-package+xml"},
		},
		"absent-media-type": {
			{FullPath: "doc/main.xml"},
		},
		"multiple": {
			{FullPath: "OEBPS/content.opf", MediaType: "application/oebps-package+xml"},
			{FullPath: "alt/content.opf"},
			{FullPath: "extra/data.xml", MediaType: "application/xml"},
		},
	}
	for name, want := range lists {
		t.Run(name, func(t *testing.T) {
			data, err := buildContainer(want)
			if err != nil {
				t.Fatalf("buildContainer: %v", err)
			}
			got, err := parseContainer(data)
			if err != nil {
				t.Fatalf("parseContainer: %v", err)
			}
			if !reflect.DeepEqual(got, want) {
				t.Fatalf("round trip mismatch\nwant: %#v\ngot:  %#v", want, got)
			}
		})
	}
}

func TestBuildContainerShape(t *testing.T) {
	data, err := buildContainer([]Rootfile{{FullPath: "a.xml"}})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("<?xml")) {
		t.Error("missing XML declaration")
	}
	for _, want := range []string{
		`xmlns="` + ContainerNamespace + `"`,
		`version="1.0"`,
		`full-path="a.xml"`,
		"<rootfiles>",
	} {
		if !bytes.Contains(data, []byte(want)) {
			t.Errorf("output missing %q:\n%s", want, data)
		}
	}
	if bytes.Contains(data, []byte("media-type")) {
		t.Errorf("absent media type must not emit an attribute:\n%s", data)
	}
}

func TestParseContainerWhitespace(t *testing.T) {
	doc := []byte(`<?xml version="1.0" encoding="UTF-8"?>
<container xmlns="urn:oasis:names:tc:opendocument:xmlns:container" version="1.0">
	<rootfiles>
		<rootfile full-path="OEBPS/content.opf" media-type="application/oebps-package+xml"/>
	</rootfiles>
</container>
`)
	got, err := parseContainer(doc)
	if err != nil {
		t.Fatal(err)
	}
	want := []Rootfile{{FullPath: "OEBPS/content.opf", MediaType: "application/oebps-package+xml"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("want %#v, got %#v", want, got)
	}
}

func TestParseContainerMalformed(t *testing.T) {
	_, err := parseContainer([]byte("<container><rootfiles>"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, ErrFormat) {
		t.Fatalf("expected ErrFormat, got %v", err)
	}
}

func TestParseContainerNoRootfiles(t *testing.T) {
	doc := []byte(`<?xml version="1.0"?><container xmlns="urn:oasis:names:tc:opendocument:xmlns:container" version="1.0"/>`)
	got, err := parseContainer(doc)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty list, got %#v", got)
	}
}
