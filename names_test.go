package ucf

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidateNameLegal(t *testing.T) {
	names := []string{
		"mimetype",
		"META-INF/container.xml",
		"OEBPS/content.opf",
		"dir/sub/file.txt",
		"abcdé",
		"name with spaces",
		"trailing.period.ok.txt",
	}
	for _, name := range names {
		if err := ValidateName(name); err != nil {
			t.Errorf("ValidateName(%q): %v", name, err)
		}
	}
}

func TestValidateNameIllegalCharacters(t *testing.T) {
	var illegal []rune
	for r := rune(0); r <= 0x1f; r++ {
		illegal = append(illegal, r)
	}
	illegal = append(illegal, '"', '*', ':', '<', '>', '?', '\\', 0x7f)

	for _, r := range illegal {
		t.Run(fmt.Sprintf("U+%04X", r), func(t *testing.T) {
			err := ValidateName("x" + string(r))
			if err == nil {
				t.Fatalf("ValidateName accepted %q", "x"+string(r))
			}
			if !errors.Is(err, ErrFormat) {
				t.Fatalf("expected ErrFormat, got %v", err)
			}
		})
	}
}

func TestValidateNameTerminalPeriod(t *testing.T) {
	for _, name := range []string{".", "file.", "dir/file."} {
		err := ValidateName(name)
		if err == nil {
			t.Fatalf("ValidateName accepted %q", name)
		}
		if !errors.Is(err, ErrFormat) {
			t.Fatalf("expected ErrFormat, got %v", err)
		}
	}
}

func TestNormalizeName(t *testing.T) {
	cases := []struct {
		a, b string
	}{
		{"café", "café"}, // precomposed vs decomposed
		{"README", "readme"},
		{"CafÉ", "café"},
	}
	for _, c := range cases {
		if normalizeName(c.a) != normalizeName(c.b) {
			t.Errorf("normalizeName(%q) != normalizeName(%q)", c.a, c.b)
		}
	}
	if normalizeName("abcde") == normalizeName("abcdé") {
		t.Error("distinct names normalized to the same form")
	}
}
