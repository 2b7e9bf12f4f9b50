package ucf

import "strings"

// MetaInf is the reserved top-level namespace for package metadata members.
const MetaInf = "META-INF"

const metaPrefix = MetaInf + "/"

// MetaFiles is a live view of a Package restricted to the META-INF/
// namespace, keyed without the prefix. It is not a copy: a value obtained
// through the view and the same member obtained through the Package share
// one backing array, so mutation through either is visible through both.
type MetaFiles struct {
	pkg *Package
}

// Get returns the content stored under META-INF/<key>.
func (m MetaFiles) Get(key string) ([]byte, bool) {
	return m.pkg.Get(metaPrefix + key)
}

// Set stores data under META-INF/<key>, validating the full member name.
func (m MetaFiles) Set(key string, data []byte) error {
	return m.pkg.Set(metaPrefix+key, data)
}

// Delete removes META-INF/<key>, reporting whether it was present.
func (m MetaFiles) Delete(key string) bool {
	return m.pkg.Delete(metaPrefix + key)
}

// Has reports whether META-INF/<key> exists.
func (m MetaFiles) Has(key string) bool {
	return m.pkg.Has(metaPrefix + key)
}

// Names returns the unprefixed keys of every META-INF/ member, in the
// Package's insertion order.
func (m MetaFiles) Names() []string {
	var names []string
	for _, name := range m.pkg.names {
		if strings.HasPrefix(name, metaPrefix) {
			names = append(names, strings.TrimPrefix(name, metaPrefix))
		}
	}
	return names
}

// Len returns the number of META-INF/ members.
func (m MetaFiles) Len() int {
	n := 0
	for _, name := range m.pkg.names {
		if strings.HasPrefix(name, metaPrefix) {
			n++
		}
	}
	return n
}
