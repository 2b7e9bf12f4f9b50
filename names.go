package ucf

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// illegalNameChars are the characters forbidden in archive member names by
// the UCF specification. The directory separator '/' is deliberately absent:
// clients that use it are assumed to mean it.
const illegalNameChars = `"*:<>?\` + ""

// ValidateName reports whether name is legal as a UCF archive member name.
//
// A name is illegal if it ends with a period, or if it contains any of
// " * : < > ? \, the DEL character, or a C0 control character. No other
// constraints (length, path traversal) are enforced here; the archive codec
// applies its own name-safety rules.
func ValidateName(name string) error {
	if strings.HasSuffix(name, ".") {
		return fmt.Errorf("%w: member name must not end with a period: %q", ErrFormat, name)
	}
	for _, r := range name {
		if r < 0x20 || strings.ContainsRune(illegalNameChars, r) {
			return fmt.Errorf("%w: member name contains bad character %q: %q", ErrFormat, r, name)
		}
	}
	return nil
}

// normalizeName maps a member name to its NFKD-normalized, case-folded form.
// Two names with the same normalized form would collide on case-insensitive
// filesystems, so Save rejects packages containing such pairs. A fresh Caser
// per call: cases.Caser carries state and is not safe to share.
func normalizeName(name string) string {
	return cases.Fold().String(norm.NFKD.String(name))
}
